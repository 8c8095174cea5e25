package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionMoveLeft)

	if !f.Has(ActionFire) {
		t.Error("Fire should be set")
	}
	if !f.Has(ActionMoveLeft) {
		t.Error("MoveLeft should be set")
	}
	if f.Has(ActionMoveRight) {
		t.Error("MoveRight should not be set")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionMoveLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameNilMap(t *testing.T) {
	// Zero-value frame must not panic
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on zero frame should allocate and store")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)

	clone := f.Clone()
	clone.Set(ActionMoveRight)

	if !clone.Has(ActionFire) {
		t.Error("Clone should carry existing actions")
	}
	if f.Has(ActionMoveRight) {
		t.Error("Mutating clone should not affect the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionMoveLeft, "MoveLeft"},
		{ActionMoveRight, "MoveRight"},
		{ActionStop, "Stop"},
		{ActionFire, "Fire"},
		{ActionReset, "Reset"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.expected)
		}
	}
}
