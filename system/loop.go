package system

import "time"

// Loop paces ticks at a fixed frame duration on the calling goroutine.
type Loop struct {
	Frame time.Duration
	Now   func() time.Time
	Sleep func(time.Duration)
}

func NewLoop(frame time.Duration) *Loop {
	return &Loop{Frame: frame, Now: time.Now, Sleep: time.Sleep}
}

// Run calls tick until quit reports true or tick fails. quit is checked
// before every tick. After each tick the loop sleeps for whatever is left of
// the frame, never a negative amount.
func (l *Loop) Run(quit func() bool, tick func() error) error {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	for quit == nil || !quit() {
		start := now()
		if err := tick(); err != nil {
			return err
		}
		sleep(max(0, l.Frame-now().Sub(start)))
	}
	return nil
}
