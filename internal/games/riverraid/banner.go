package riverraid

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/riverraid/internal/core"
)

// Banner texts.
const (
	WelcomeTitle  = "RIVERRAID"
	GoodbyeTitle  = "GOOD GAME! THANKS"
	ContinueHint  = "Press any key to continue..."
	bannerPadding = 2
)

// WelcomeBanner is shown before the first tick. help, when non-empty, is
// printed under the continue hint.
func WelcomeBanner(cols, rows int, help string) []core.DrawCmd {
	mid := rows / 2
	frame := []core.DrawCmd{
		core.Clear(),
		centered(cols, mid-bannerPadding, WelcomeTitle, core.ColorBanner),
		centered(cols, mid, ContinueHint, core.ColorHint),
	}
	if help != "" {
		frame = append(frame, centered(cols, mid+bannerPadding, help, core.ColorHint))
	}
	return frame
}

// GoodbyeBanner is shown once the player has died.
func GoodbyeBanner(cols, rows int, st core.GameState) []core.DrawCmd {
	mid := rows / 2
	return []core.DrawCmd{
		core.Clear(),
		centered(cols, mid-bannerPadding, GoodbyeTitle, core.ColorBanner),
		centered(cols, mid, fmt.Sprintf("Enemies: %d  Ticks: %d", st.Score, st.Ticks), core.ColorDefault),
		centered(cols, mid+bannerPadding, ContinueHint, core.ColorHint),
	}
}

func centered(cols, y int, text string, c core.Color) core.DrawCmd {
	x := max((cols-utf8.RuneCountInString(text))/2, 0)
	return core.Text(x, y, text, c)
}
