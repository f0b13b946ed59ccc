package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionJump)
	f.SetClick(3, 4)

	if !f.Has(ActionJump) || f.Has(ActionPause) {
		t.Error("Has should report only the set actions")
	}
	if f.Click == nil || *f.Click != (Point{3, 4}) {
		t.Errorf("Click = %v, expected (3, 4)", f.Click)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionJump) || clone.Click == nil {
		t.Error("clone should be unaffected by Clear")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on a zero frame should allocate")
	}
}
