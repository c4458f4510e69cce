package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionReveal) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.SetTarget(Pt(3, 4))
	if !f.Has(ActionUp) || !f.Has(ActionReveal) {
		t.Errorf("expected Up and Reveal to be set, got %v", f.Actions)
	}
	if !f.HasTarget || f.Target != Pt(3, 4) {
		t.Errorf("target = %v (%v), expected (3,4)", f.Target, f.HasTarget)
	}

	f.Clear()
	if f.Has(ActionUp) || f.HasTarget {
		t.Error("Clear should drop actions and target")
	}
}

func TestActionString(t *testing.T) {
	if ActionAutoplay.String() != "Autoplay" {
		t.Errorf("ActionAutoplay.String() = %q", ActionAutoplay.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
