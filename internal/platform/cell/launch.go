package cell

import (
	"context"
	"fmt"

	"github.com/vovakirdan/riverraid/internal/registry"
	"github.com/vovakirdan/riverraid/internal/session"
)

// BackendName is the registry name of this backend.
const BackendName = "cell"

func init() {
	registry.Register(BackendName, "tcell screen with a polled input loop", Launch)
}

// Launch opens the terminal, sizes a session to it and runs it.
func Launch(ctx context.Context, newSession registry.SessionFactory) (session.Result, error) {
	t, err := Open()
	if err != nil {
		return session.Result{}, fmt.Errorf("cell: open terminal: %w", err)
	}
	defer t.Close()

	cols, rows := t.Size()
	ctrl, err := newSession(cols, rows)
	if err != nil {
		return session.Result{}, err
	}
	return Run(ctx, t, ctrl)
}
