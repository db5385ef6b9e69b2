package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		expected    int
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		{"both cancel", true, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := InputFrame{Left: tc.left, Right: tc.right}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("Empty frame should not report actions")
	}

	f.Set(ActionJump)
	f.Left = true
	if !f.Has(ActionJump) {
		t.Error("Set action should be reported")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionJump) {
		t.Error("Clear should drop one-shot actions")
	}
	if !f.Left {
		t.Error("Clear should keep held directions")
	}
	if !clone.Has(ActionJump) || !clone.Left {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Unknown action should stringify as Unknown")
	}
}
