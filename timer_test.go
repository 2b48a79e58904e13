package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerInitialState(t *testing.T) {
	timer := NewTimer(newFakeClock())

	status := timer.Status()

	assert.False(t, status.Running)
	assert.EqualValues(t, 0, status.Seconds)
	assert.Equal(t, "00:00:00", status.Time)
}

func TestTimerStartStopAccumulates(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	timer.Start()

	clock.Advance(5 * time.Second)

	status := timer.Status()

	require.True(t, status.Running)
	require.EqualValues(t, 5, status.Seconds)
	require.Equal(t, "00:00:05", status.Time)

	status = timer.Stop()

	require.False(t, status.Running)
	require.EqualValues(t, 5, status.Seconds)

	// idle timers do not advance
	clock.Advance(5 * time.Second)

	require.EqualValues(t, 5, timer.Status().Seconds)

	timer.Start()

	clock.Advance(2 * time.Second)

	status = timer.Status()

	require.EqualValues(t, 7, status.Seconds)
	require.Equal(t, "00:00:07", status.Time)
}

func TestTimerStartIdempotent(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	timer.Start()

	clock.Advance(3 * time.Second)

	// a second start must keep the original start instant
	timer.Start()

	clock.Advance(2 * time.Second)

	assert.EqualValues(t, 5, timer.Status().Seconds)
}

func TestTimerStopIdempotent(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	timer.Start()

	clock.Advance(4 * time.Second)

	first := timer.Stop()

	clock.Advance(10 * time.Second)

	second := timer.Stop()

	assert.EqualValues(t, 4, first.Seconds)
	assert.EqualValues(t, 4, second.Seconds)
}

func TestTimerResetDiscardsOpenInterval(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	timer.Start()

	clock.Advance(90 * time.Second)

	status := timer.Reset()

	assert.False(t, status.Running)
	assert.EqualValues(t, 0, status.Seconds)
	assert.Equal(t, "00:00:00", status.Time)
}

func TestTimerResetWhileIdle(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	timer.Start()

	clock.Advance(8 * time.Second)

	timer.Stop()

	status := timer.Reset()

	assert.False(t, status.Running)
	assert.EqualValues(t, 0, status.Seconds)
}

func TestTimerTruncatesSubSeconds(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	// each cycle floors its fraction away
	for i := 0; i < 3; i++ {
		timer.Start()

		clock.Advance(900 * time.Millisecond)

		timer.Stop()
	}

	assert.EqualValues(t, 0, timer.Status().Seconds)

	timer.Start()

	clock.Advance(1500 * time.Millisecond)

	assert.EqualValues(t, 1, timer.Stop().Seconds)
}

func TestTimerStatusMonotonicWhileRunning(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	timer.Start()

	var last int64

	for i := 0; i < 10; i++ {
		clock.Advance(700 * time.Millisecond)

		seconds := timer.Status().Seconds

		require.GreaterOrEqual(t, seconds, last)

		last = seconds
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{5, "00:00:05"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3661, "01:01:01"},
		{86400, "24:00:00"},
		{90000, "25:00:00"},
		{360000, "100:00:00"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatSeconds(c.seconds))
	}
}
