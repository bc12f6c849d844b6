// Package session runs one game of river raid: it polls input, applies at
// most one intent per tick, steps the world, renders and paces the loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/riverraid/internal/config"
	"github.com/vovakirdan/riverraid/internal/core"
	"github.com/vovakirdan/riverraid/internal/games/riverraid"
)

//go:generate go tool mockgen -destination=./mocks/session_mock.go -package=mocks . InputSource,Display

// ErrScreenTooSmall is returned when the terminal cannot fit a river.
var ErrScreenTooSmall = errors.New("screen too small")

// maxDrain bounds how many queued events one tick will swallow.
const maxDrain = 64

// InputSource yields player intents.
// Poll waits up to timeout for one event; ok is false when nothing arrived.
// Keys that map to no intent are reported as core.ActionNone with ok true.
type InputSource interface {
	Poll(timeout time.Duration) (action core.Action, ok bool, err error)
}

// Display presents one complete frame. Implementations flush atomically.
type Display interface {
	Draw(frame []core.DrawCmd) error
}

// EndReason tells why a session stopped.
type EndReason int

const (
	ReasonNone        EndReason = iota // Still running
	ReasonQuit                         // Player asked to quit
	ReasonDead                         // Player crashed
	ReasonInterrupted                  // Context cancelled between ticks
)

func (r EndReason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonDead:
		return "dead"
	case ReasonInterrupted:
		return "interrupted"
	default:
		return "none"
	}
}

// Result summarises a finished session.
type Result struct {
	Reason EndReason
	Score  int
	Ticks  int
}

// Controller exclusively owns one World for the lifetime of a session.
type Controller struct {
	id     string
	world  *riverraid.World
	logger *log.Logger

	tick  time.Duration
	poll  time.Duration
	sleep func(time.Duration)
	rng   core.Rand
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTick overrides the pacing interval.
func WithTick(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tick = d
		}
	}
}

// WithPollTimeout overrides how long Next waits for the first event.
func WithPollTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.poll = d
		}
	}
}

// WithSleep replaces the pacing sleep, mainly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// WithRand injects the random source used by the world.
func WithRand(r core.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// New creates a session on a cols x rows screen.
func New(cols, rows int, cfg config.RiverRaidConfig, opts ...Option) (*Controller, error) {
	fits := core.RuntimeConfig{ScreenW: cols, ScreenH: rows}.Fits()
	if !fits || cols < cfg.River.MinWidth+2 {
		return nil, fmt.Errorf("session: %dx%d, need at least %dx%d: %w",
			cols, rows, core.MinScreenW, core.MinScreenH, ErrScreenTooSmall)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	c := &Controller{
		id:     uuid.NewString(),
		logger: log.New(io.Discard),
		tick:   cfg.Loop.Tick(),
		poll:   cfg.Loop.PollTimeout(),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = core.NewRand(0)
	}
	c.logger = c.logger.With("session", c.id)
	c.world = riverraid.NewWorld(cols, rows, cfg, c.rng)

	c.logger.Info("session started", "cols", cols, "rows", rows, "tick", c.tick)
	return c, nil
}

// ID returns the session id used in logs.
func (c *Controller) ID() string {
	return c.id
}

// World exposes the owned world for inspection.
func (c *Controller) World() *riverraid.World {
	return c.world
}

// Tick returns the pacing interval.
func (c *Controller) Tick() time.Duration {
	return c.tick
}

// Next polls src for one tick's worth of input. After the first event the
// queue is drained without waiting and the freshest mapped intent wins.
func (c *Controller) Next(src InputSource) (core.Action, error) {
	first, ok, err := src.Poll(c.poll)
	if err != nil {
		return core.ActionNone, fmt.Errorf("session: poll input: %w", err)
	}
	if !ok {
		return core.ActionNone, nil
	}

	burst := []core.Action{first}
	for i := 0; i < maxDrain; i++ {
		a, ok, err := src.Poll(0)
		if err != nil {
			return core.ActionNone, fmt.Errorf("session: drain input: %w", err)
		}
		if !ok {
			break
		}
		burst = append(burst, a)
	}
	return core.Latest(burst...), nil
}

// Advance applies one intent and steps the world once.
// Quit ends the session without stepping.
func (c *Controller) Advance(a core.Action) EndReason {
	if a == core.ActionQuit {
		return ReasonQuit
	}

	c.world.Apply(a)
	c.world.Step()

	if !c.world.Alive() {
		c.logger.Debug("player died", "cause", c.world.Cause, "tick", c.world.State().Ticks)
		return ReasonDead
	}
	return ReasonNone
}

// Frame renders the current world.
func (c *Controller) Frame() []core.DrawCmd {
	return riverraid.Render(c.world)
}

// Finish logs the end of the session and returns its summary.
func (c *Controller) Finish(reason EndReason) Result {
	st := c.world.State()
	res := Result{Reason: reason, Score: st.Score, Ticks: st.Ticks}
	c.logger.Info("session ended", "reason", reason, "score", res.Score, "ticks", res.Ticks)
	return res
}

// Run drives the loop until the player quits, dies or ctx is cancelled.
// Cancellation is only observed between ticks. Display and input failures
// abort the session.
func (c *Controller) Run(ctx context.Context, src InputSource, dst Display) (Result, error) {
	for {
		if ctx.Err() != nil {
			return c.Finish(ReasonInterrupted), nil
		}

		action, err := c.Next(src)
		if err != nil {
			c.logger.Error("input failed", "err", err)
			return c.Finish(ReasonNone), err
		}

		reason := c.Advance(action)
		if reason == ReasonQuit {
			return c.Finish(reason), nil
		}

		if err := dst.Draw(c.Frame()); err != nil {
			err = fmt.Errorf("session: draw frame: %w", err)
			c.logger.Error("display failed", "err", err)
			return c.Finish(ReasonNone), err
		}

		if reason == ReasonDead {
			return c.Finish(reason), nil
		}
		c.sleep(c.tick)
	}
}
