package greet

import "time"

// Timer is a repeating countdown. It reports JustFinished on the tick that
// crosses a period boundary and carries the remainder into the next period.
type Timer struct {
	period       time.Duration
	elapsed      time.Duration
	justFinished bool
	times        int
}

// NewTimer creates a repeating timer. A non-positive period never fires.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	if t.period <= 0 || dt <= 0 {
		return
	}

	t.elapsed += dt
	if t.elapsed >= t.period {
		t.times += int(t.elapsed / t.period)
		t.elapsed %= t.period
		t.justFinished = true
	}
}

// JustFinished reports whether the last Tick completed a period.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Elapsed returns time spent in the current period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Period returns the timer period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// TimesFinished returns how many periods completed since creation.
func (t *Timer) TimesFinished() int {
	return t.times
}
