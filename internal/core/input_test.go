package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionClick) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionClick)
	f.Set(ActionLeft)
	if !f.Has(ActionClick) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionClick) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.MovePointer(10)
	f.MovePointer(42)

	if !f.PointerMoved || f.PointerX != 42 {
		t.Errorf("Pointer = (%d, %v), expected last position 42", f.PointerX, f.PointerMoved)
	}

	clone := f.Clone()
	f.Clear()
	if f.PointerMoved {
		t.Error("Clear should reset the pointer")
	}
	if !clone.PointerMoved || clone.PointerX != 42 {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionClick, "Click"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
