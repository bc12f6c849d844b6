// Package riverraid implements the river raid simulation: a ship flying up a
// procedurally meandering river, dodging the banks and shooting enemies.
//
// The package is pure game logic. It knows nothing about terminals; a World is
// advanced with Step and drawn with Render, which emits core draw commands.
package riverraid

import (
	"github.com/vovakirdan/riverraid/internal/config"
	"github.com/vovakirdan/riverraid/internal/core"
)

// Status is the player's coarse game state.
// Paused and Animation are representable but no rule currently enters them.
type Status int

const (
	StatusAlive Status = iota
	StatusDead
	StatusPaused
	StatusAnimation
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	case StatusPaused:
		return "paused"
	case StatusAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Cause records what killed the player.
type Cause int

const (
	CauseNone Cause = iota
	CauseBank
	CauseEnemy
)

// String returns the cause name used in logs.
func (c Cause) String() string {
	switch c {
	case CauseBank:
		return "bank"
	case CauseEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// World is the aggregate root of one game session.
type World struct {
	Player core.Point
	River  *River
	Entities
	Status Status
	Cause  Cause

	cols  int
	rows  int
	cfg   config.RiverRaidConfig
	rng   core.Rand
	kills int
	ticks int
}

// NewWorld creates a session on a cols x rows screen.
// The player starts centred on the bottom row of a straight river.
func NewWorld(cols, rows int, cfg config.RiverRaidConfig, rng core.Rand) *World {
	return &World{
		Player: core.Point{X: cols / 2, Y: rows - 1},
		River:  NewRiver(cols, rows, cfg.River),
		Status: StatusAlive,
		cols:   cols,
		rows:   rows,
		cfg:    cfg,
		rng:    rng,
	}
}

// Cols returns max_columns.
func (w *World) Cols() int {
	return w.cols
}

// Rows returns max_rows.
func (w *World) Rows() int {
	return w.rows
}

// Apply performs one player intent. Movement keeps the ship inside
// [1, max-1] on both axes; Fire launches a bullet one row above the ship
// unless a bullet is already live. Quit and None leave the world untouched.
func (w *World) Apply(a core.Action) {
	if dx, dy, ok := a.Movement(); ok {
		p := w.Player.Add(dx, dy)
		// Stay put when the step would leave the playfield
		if p.X >= 1 && p.X <= w.cols-1 && p.Y >= 1 && p.Y <= w.rows-1 {
			w.Player = p
		}
		return
	}

	if a == core.ActionFire {
		w.Fire()
	}
}

// Fire launches a bullet from the player. Returns false when a bullet is already live.
func (w *World) Fire() bool {
	return w.Entities.Fire(w.Player.X, w.Player.Y-1, w.cfg.BulletEnergy(w.rows))
}

// Alive reports whether the session is still running.
func (w *World) Alive() bool {
	return w.Status == StatusAlive
}

// State returns the platform-facing summary.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.kills,
		Ticks:    w.ticks,
		GameOver: w.Status == StatusDead,
		Paused:   w.Status == StatusPaused,
	}
}
