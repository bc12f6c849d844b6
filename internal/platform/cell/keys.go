package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/riverraid/internal/core"
)

// HelpLine describes the bindings handled by MapKey.
const HelpLine = "w/a/s/d or arrows move  space fire  q quit"

// MapKey translates a tcell key event into a player intent.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			return core.ActionUp
		case 's':
			return core.ActionDown
		case 'a':
			return core.ActionLeft
		case 'd':
			return core.ActionRight
		case ' ':
			return core.ActionFire
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}
