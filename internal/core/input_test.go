package core

import "testing"

func TestActionMovement(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy int
		ok     bool
	}{
		{ActionUp, 0, -1, true},
		{ActionDown, 0, 1, true},
		{ActionLeft, -1, 0, true},
		{ActionRight, 1, 0, true},
		{ActionFire, 0, 0, false},
		{ActionQuit, 0, 0, false},
		{ActionNone, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dx, dy, ok := tc.action.Movement()
			if dx != tc.dx || dy != tc.dy || ok != tc.ok {
				t.Errorf("Movement() = (%d, %d, %v), expected (%d, %d, %v)", dx, dy, ok, tc.dx, tc.dy, tc.ok)
			}
		})
	}
}

func TestLatest(t *testing.T) {
	if got := Latest(); got != ActionNone {
		t.Errorf("Latest() = %v, expected None", got)
	}
	if got := Latest(ActionLeft, ActionFire, ActionNone); got != ActionFire {
		t.Errorf("Latest() = %v, expected Fire", got)
	}
	if got := Latest(ActionQuit, ActionUp); got != ActionUp {
		t.Errorf("Latest() = %v, expected Up", got)
	}
}
