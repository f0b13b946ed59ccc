package core

import "time"

// TimerMode selects whether a timer fires once or keeps firing.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts simulated time toward a duration. Games tick it with the
// fixed step length and poll JustFinished.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	mode         TimerMode
	finished     bool
	justFinished bool
	times        int // periods completed during the last Tick
}

// NewTimer creates a timer with the given duration and mode.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// SetDuration changes the duration without touching elapsed time.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Elapsed returns the time counted in the current period.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// SetElapsed sets the elapsed time. Setting it to the duration or beyond
// makes the next Tick fire.
func (t *Timer) SetElapsed(d time.Duration) {
	t.elapsed = d
}

// Tick advances the timer by delta.
func (t *Timer) Tick(delta time.Duration) {
	t.justFinished = false
	t.times = 0

	if t.mode == TimerOnce && t.finished {
		return
	}

	// Saturate instead of overflowing when elapsed was set near the max.
	if t.elapsed > time.Duration(1<<62) {
		t.elapsed = t.duration
	} else {
		t.elapsed += delta
	}

	if t.duration <= 0 {
		t.finished = true
		t.justFinished = true
		t.times = 1
		return
	}
	if t.elapsed < t.duration {
		return
	}

	t.finished = true
	t.justFinished = true

	if t.mode == TimerOnce {
		t.elapsed = t.duration
		t.times = 1
		return
	}

	t.times = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
}

// JustFinished reports whether the last Tick completed a period.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// TimesFinished returns how many periods the last Tick completed.
func (t *Timer) TimesFinished() int {
	return t.times
}

// Finished reports whether a once-timer is done, or whether a repeating
// timer has completed at least one period.
func (t *Timer) Finished() bool {
	return t.finished
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return ClampF(float64(t.elapsed)/float64(t.duration), 0, 1)
}

// Reset clears elapsed time and finished state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
	t.times = 0
}

// Seconds converts a float seconds value to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
