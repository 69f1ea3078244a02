package usecase

import "time"

type Timer interface {
	Stop() bool
}

// Clock is the time source of the synchronizer. Tests substitute a manual
// clock to fire debounce timers deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
