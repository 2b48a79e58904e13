package main

import (
	"errors"
	"fmt"
)

// Operations accepted by Registry.Apply, matching the route segments.
const (
	OpStart = "start"
	OpStop  = "stop"
	OpReset = "reset"
)

var ErrInvalidTimer = errors.New("invalid timer")

// Registry holds a fixed set of independent timers, addressed by a 1-based
// index. Timers are created once and never added or removed.
type Registry struct {
	timers []*Timer
}

func NewRegistry(count int, clock Clock) *Registry {
	timers := make([]*Timer, count)

	for i := range timers {
		timers[i] = NewTimer(clock)
	}

	return &Registry{
		timers: timers,
	}
}

func (r *Registry) Count() int {
	return len(r.timers)
}

// Get resolves a 1-based index, returning ErrInvalidTimer when it falls
// outside [1, Count].
func (r *Registry) Get(idx int) (*Timer, error) {
	if idx < 1 || idx > len(r.timers) {
		return nil, ErrInvalidTimer
	}

	return r.timers[idx-1], nil
}

// StatusAll reports every timer keyed timer_1..timer_N, without mutating
// any of them.
func (r *Registry) StatusAll() map[string]TimerStatus {
	all := make(map[string]TimerStatus, len(r.timers))

	for i, timer := range r.timers {
		all[fmt.Sprintf("timer_%d", i+1)] = timer.Status()
	}

	return all
}

// Apply runs the named operation on the timer at idx and returns the
// timer's post-operation status.
func (r *Registry) Apply(idx int, op string) (TimerStatus, error) {
	timer, err := r.Get(idx)
	if err != nil {
		return TimerStatus{}, err
	}

	switch op {
	case OpStart:
		return timer.Start(), nil
	case OpStop:
		return timer.Stop(), nil
	case OpReset:
		return timer.Reset(), nil
	}

	return TimerStatus{}, fmt.Errorf("unknown operation %q", op)
}
