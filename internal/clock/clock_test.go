package clock

import "testing"

func TestWallIsMonotonic(t *testing.T) {
	w := NewWall()
	a := w.Now()
	b := w.Now()
	if a < 0 || b < a {
		t.Errorf("Now went backwards: %v then %v", a, b)
	}
}

func TestManual(t *testing.T) {
	m := &Manual{T: 1}
	m.Advance(0.5)
	if m.Now() != 1.5 {
		t.Errorf("Now = %v, want 1.5", m.Now())
	}
}
