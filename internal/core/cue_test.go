package core

import "testing"

func TestCueFileNames(t *testing.T) {
	expected := map[Cue]string{
		CueBounce:     "bounce.wav",
		CueBrickBreak: "brick_break.wav",
		CueGameOver:   "game_over.wav",
		CueLaser:      "laser.wav",
	}

	cues := AllCues()
	if len(cues) != len(expected) {
		t.Fatalf("AllCues() returned %d cues, expected %d", len(cues), len(expected))
	}
	for _, c := range cues {
		if c.FileName() != expected[c] {
			t.Errorf("%v.FileName() = %q, expected %q", c, c.FileName(), expected[c])
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionFire)
	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("NewInputFrame should set the given actions")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionLaunch) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionLaunch)
	if !zero.Has(ActionLaunch) {
		t.Error("Set on zero frame should allocate")
	}
}
