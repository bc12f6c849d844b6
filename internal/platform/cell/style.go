package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/riverraid/internal/core"
)

var styles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorBank:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorWater:   tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorEnemy:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorBullet:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorPlayer:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	core.ColorBanner:  tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	core.ColorHint:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

func styleFor(c core.Color) tcell.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}
