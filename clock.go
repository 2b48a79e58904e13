package main

import "time"

// Clock provides the current instant. Timers read it instead of calling
// time.Now directly so tests can supply a fake clock instead of sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
