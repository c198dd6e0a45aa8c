package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be true after Set")
	}
	if f.Has(ActionToggleMusic) {
		t.Error("Has(ActionToggleMusic) should be false")
	}

	// Zero value frame is usable
	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClicksAndPicks(t *testing.T) {
	f := NewInputFrame()
	f.Click(Pt(10, 20))
	f.Click(Pt(30, 40))
	f.Pick(2)

	if len(f.Clicks) != 2 || f.Clicks[1] != Pt(30, 40) {
		t.Errorf("Clicks = %v, expected two clicks in arrival order", f.Clicks)
	}
	if len(f.Picks) != 1 || f.Picks[0] != 2 {
		t.Errorf("Picks = %v, expected [2]", f.Picks)
	}

	f.Set(ActionToggleSound)
	f.Clear()
	if !f.Empty() {
		t.Errorf("frame should be empty after Clear, got %+v", f)
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
	if SoundError.String() != "error" {
		t.Errorf("SoundError.String() = %q", SoundError.String())
	}
}
