package main

import (
	"fmt"
	"sync"
	"time"
)

// Timer is a single stopwatch. It accumulates whole seconds from closed
// running intervals; the currently open interval is only counted when the
// timer is queried or stopped.
type Timer struct {
	mx sync.Mutex

	clock Clock

	running     bool
	startedAt   time.Time
	accumulated int64
}

// TimerStatus is the wire representation of a timer's current state.
type TimerStatus struct {
	Running bool   `json:"running"`
	Seconds int64  `json:"seconds"`
	Time    string `json:"time"`
}

func NewTimer(clock Clock) *Timer {
	return &Timer{
		clock: clock,
	}
}

// Start begins accumulating time. Starting an already running timer keeps
// the original start instant.
func (t *Timer) Start() TimerStatus {
	t.mx.Lock()
	defer t.mx.Unlock()

	if !t.running {
		t.running = true
		t.startedAt = t.clock.Now()
	}

	return t.status()
}

// Stop closes the open interval, adding its elapsed whole seconds to the
// total. Stopping an idle timer changes nothing.
func (t *Timer) Stop() TimerStatus {
	t.mx.Lock()
	defer t.mx.Unlock()

	if t.running {
		t.accumulated += t.openSeconds()
		t.running = false
		t.startedAt = time.Time{}
	}

	return t.status()
}

// Reset returns the timer to the zero idle state. An open running
// interval's elapsed time is discarded, not added to the total.
func (t *Timer) Reset() TimerStatus {
	t.mx.Lock()
	defer t.mx.Unlock()

	t.running = false
	t.startedAt = time.Time{}
	t.accumulated = 0

	return t.status()
}

// Status reports the current total without mutating the timer.
func (t *Timer) Status() TimerStatus {
	t.mx.Lock()
	defer t.mx.Unlock()

	return t.status()
}

// openSeconds truncates the open interval to whole seconds. Fractions are
// lost on every stop, matching the accounting the service has always had.
func (t *Timer) openSeconds() int64 {
	return int64(t.clock.Now().Sub(t.startedAt) / time.Second)
}

func (t *Timer) status() TimerStatus {
	seconds := t.accumulated

	if t.running {
		seconds += t.openSeconds()
	}

	return TimerStatus{
		Running: t.running,
		Seconds: seconds,
		Time:    FormatSeconds(seconds),
	}
}

// FormatSeconds renders a second count as zero-padded HH:MM:SS. The hours
// field grows past 24 instead of wrapping to days.
func FormatSeconds(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
