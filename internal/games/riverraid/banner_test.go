package riverraid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/riverraid/internal/core"
)

func TestWelcomeBanner(t *testing.T) {
	s := core.NewScreen(40, 12)
	s.Apply(WelcomeBanner(40, 12, "q quit"))

	out := s.String()
	for _, want := range []string{WelcomeTitle, ContinueHint, "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("welcome banner missing %q:\n%s", want, out)
		}
	}
	if got := strings.TrimSpace(s.Row(4)); got != WelcomeTitle {
		t.Errorf("row 4 = %q, expected title", got)
	}
}

func TestWelcomeBannerWithoutHelp(t *testing.T) {
	if n := len(WelcomeBanner(40, 12, "")); n != 3 {
		t.Errorf("len(frame) = %d, expected 3", n)
	}
}

func TestGoodbyeBanner(t *testing.T) {
	s := core.NewScreen(40, 12)
	s.Apply(GoodbyeBanner(40, 12, core.GameState{Score: 4, Ticks: 120}))

	out := s.String()
	for _, want := range []string{GoodbyeTitle, "Enemies: 4", "Ticks: 120"} {
		if !strings.Contains(out, want) {
			t.Errorf("goodbye banner missing %q:\n%s", want, out)
		}
	}
}

func TestCenteredClampsWideText(t *testing.T) {
	cmd := centered(5, 0, "much too wide", core.ColorDefault)
	if cmd.X != 0 {
		t.Errorf("X = %d, expected 0", cmd.X)
	}
}
