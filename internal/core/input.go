package core

// Action is a player intent, abstracted from physical key presses.
// Backends translate their own key events into actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionFire         // Space
	ActionQuit         // Q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Movement returns the (dx, dy) offset of a movement action, or ok=false for
// anything that does not move the player.
func (a Action) Movement() (dx, dy int, ok bool) {
	switch a {
	case ActionUp:
		return 0, -1, true
	case ActionDown:
		return 0, 1, true
	case ActionLeft:
		return -1, 0, true
	case ActionRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// Latest folds a burst of queued actions into the one that should be applied:
// the freshest action that maps to something. ActionNone entries are skipped.
func Latest(actions ...Action) Action {
	latest := ActionNone
	for _, a := range actions {
		if a != ActionNone {
			latest = a
		}
	}
	return latest
}
