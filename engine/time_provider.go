package engine

import "time"

// Clock supplies the timestamps render durations are measured with
type Clock interface {
	Now() time.Time
}

// systemClock reads the monotonic wall clock
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
