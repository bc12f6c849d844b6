package cell

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/riverraid/internal/games/riverraid"
	"github.com/vovakirdan/riverraid/internal/session"
)

// Run plays one session on t: welcome banner, the session loop, and the
// goodbye banner when the player died. Quit skips the goodbye banner.
func Run(ctx context.Context, t *Terminal, ctrl *session.Controller) (session.Result, error) {
	w := ctrl.World()

	if err := t.Draw(riverraid.WelcomeBanner(w.Cols(), w.Rows(), HelpLine)); err != nil {
		return session.Result{}, fmt.Errorf("cell: welcome: %w", err)
	}
	if err := t.WaitKey(ctx); err != nil {
		if interrupted(err) {
			return ctrl.Finish(session.ReasonInterrupted), nil
		}
		return session.Result{}, fmt.Errorf("cell: welcome: %w", err)
	}

	res, err := ctrl.Run(ctx, t, t)
	if err != nil || res.Reason != session.ReasonDead {
		return res, err
	}

	if err := t.Draw(riverraid.GoodbyeBanner(w.Cols(), w.Rows(), w.State())); err != nil {
		return res, fmt.Errorf("cell: goodbye: %w", err)
	}
	if err := t.WaitKey(ctx); err != nil && !interrupted(err) {
		return res, fmt.Errorf("cell: goodbye: %w", err)
	}
	return res, nil
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
