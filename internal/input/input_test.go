package input

import "testing"

func TestScriptReplaysThenIdles(t *testing.T) {
	s := &Script{Frames: []Frame{Click(10, 20), {QuitToMenu: true}}}

	if f := s.Poll(); !f.Clicked || f.X != 10 || f.Y != 20 {
		t.Errorf("first frame = %+v", f)
	}
	if f := s.Poll(); !f.QuitToMenu || f.Clicked {
		t.Errorf("second frame = %+v", f)
	}
	if f := s.Poll(); f != (Frame{}) {
		t.Errorf("idle frame = %+v", f)
	}
}

func TestHotkeysSkipQuitKey(t *testing.T) {
	seen := make(map[string]bool)
	for _, hk := range hotkeys {
		if hk.name == "Q" {
			t.Error("Q is bound as a hotkey")
		}
		if seen[hk.name] {
			t.Errorf("duplicate hotkey %s", hk.name)
		}
		seen[hk.name] = true
	}
	if len(seen) != 25 {
		t.Errorf("%d hotkeys, want 25", len(seen))
	}
}
