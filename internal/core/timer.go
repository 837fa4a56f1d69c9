package core

import "time"

// FixedStep paces simulation ticks against a frame clock. When more than one
// step has elapsed it fires once and carries the remainder, so a slow frame
// never triggers a burst of catch-up ticks.
type FixedStep struct {
	step time.Duration
	last time.Time
	now  func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Advance(f.now())
}

// Advance is ShouldStep against an explicit clock reading.
func (f *FixedStep) Advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return true
	}
	elapsed := now.Sub(f.last)
	if elapsed <= f.step {
		return false
	}
	f.last = now.Add(-(elapsed % f.step))
	return true
}
