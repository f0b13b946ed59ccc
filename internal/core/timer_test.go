package core

import (
	"math"
	"testing"
	"time"
)

func TestTimerRepeating(t *testing.T) {
	tm := NewTimer(100*time.Millisecond, TimerRepeating)

	fired := 0
	for i := 0; i < 10; i++ {
		tm.Tick(25 * time.Millisecond)
		if tm.JustFinished() {
			fired++
		}
	}

	// 250ms of ticks over a 100ms period
	if fired != 2 {
		t.Errorf("repeating timer fired %d times, expected 2", fired)
	}
	if tm.Elapsed() != 50*time.Millisecond {
		t.Errorf("elapsed = %v, expected overflow carried to 50ms", tm.Elapsed())
	}
}

func TestTimerJustFinishedIsOneTick(t *testing.T) {
	tm := NewTimer(50*time.Millisecond, TimerRepeating)

	tm.Tick(50 * time.Millisecond)
	if !tm.JustFinished() {
		t.Fatal("timer should fire when elapsed reaches the duration")
	}

	tm.Tick(10 * time.Millisecond)
	if tm.JustFinished() {
		t.Error("JustFinished should clear on the next tick")
	}
}

func TestTimerOnce(t *testing.T) {
	tm := NewTimer(30*time.Millisecond, TimerOnce)

	tm.Tick(20 * time.Millisecond)
	if tm.Finished() {
		t.Fatal("once timer should not finish early")
	}

	tm.Tick(20 * time.Millisecond)
	if !tm.JustFinished() || !tm.Finished() {
		t.Fatal("once timer should finish after its duration")
	}

	tm.Tick(100 * time.Millisecond)
	if tm.JustFinished() {
		t.Error("once timer should fire only once")
	}
	if !tm.Finished() {
		t.Error("once timer should stay finished")
	}

	tm.Reset()
	if tm.Finished() || tm.Elapsed() != 0 {
		t.Error("Reset should clear the timer")
	}
}

func TestTimerElapsedMaxFiresImmediately(t *testing.T) {
	tm := NewTimer(2500*time.Millisecond, TimerRepeating)
	tm.SetElapsed(time.Duration(math.MaxInt64))

	tm.Tick(16 * time.Millisecond)
	if !tm.JustFinished() {
		t.Fatal("timer primed with max elapsed should fire on the first tick")
	}
	if tm.TimesFinished() != 1 {
		t.Errorf("TimesFinished = %d, expected 1", tm.TimesFinished())
	}

	tm.Tick(16 * time.Millisecond)
	if tm.JustFinished() {
		t.Error("timer should wait a full period after the primed fire")
	}
}

func TestTimerFraction(t *testing.T) {
	tm := NewTimer(time.Second, TimerRepeating)
	tm.Tick(250 * time.Millisecond)

	if got := tm.Fraction(); got != 0.25 {
		t.Errorf("Fraction() = %v, expected 0.25", got)
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(1.5); got != 1500*time.Millisecond {
		t.Errorf("Seconds(1.5) = %v, expected 1.5s", got)
	}
}
