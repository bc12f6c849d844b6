package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/riverraid/internal/core"
	"github.com/vovakirdan/riverraid/internal/registry"
	"github.com/vovakirdan/riverraid/internal/session"
)

// BackendName is the registry name of this backend.
const BackendName = "tea"

func init() {
	registry.Register(BackendName, "Bubble Tea program (default)", Launch)
}

// Launch sizes a session to the current terminal and runs it in the alt screen.
func Launch(ctx context.Context, newSession registry.SessionFactory) (session.Result, error) {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	ctrl, err := newSession(rc.ScreenW, rc.ScreenH)
	if err != nil {
		return session.Result{}, err
	}
	return Run(ctrl, tea.WithContext(ctx))
}
