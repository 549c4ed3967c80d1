package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected int
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"fire only", []Action{ActionFire}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionFire)
	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionFire) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
