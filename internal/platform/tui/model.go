package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/riverraid/internal/core"
	"github.com/vovakirdan/riverraid/internal/games/riverraid"
	"github.com/vovakirdan/riverraid/internal/session"
)

type phase int

const (
	phaseWelcome phase = iota
	phasePlaying
	phaseGoodbye
)

// Model is the Bubble Tea model driving one session.
type Model struct {
	ctrl   *session.Controller
	keys   KeyMap
	help   help.Model
	screen *core.Screen

	phase   phase
	pending core.Action
	frame   string
	result  session.Result
	done    bool
}

// NewModel wraps a session controller. The screen size is taken from the
// controller's world and never changes afterwards.
func NewModel(ctrl *session.Controller) Model {
	w := ctrl.World()
	m := Model{
		ctrl:   ctrl,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(w.Cols(), w.Rows()),
	}
	m.help.Width = w.Cols()
	m.frame = m.paint(riverraid.WelcomeBanner(w.Cols(), w.Rows(), m.help.View(m.keys)))
	return m
}

// Init shows the welcome banner; ticking starts on the first key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit(session.ReasonQuit)
	}

	switch m.phase {
	case phaseWelcome:
		m.phase = phasePlaying
		m.frame = m.paint(m.ctrl.Frame())
		return m, tickCmd(m.ctrl.Tick())

	case phasePlaying:
		a := m.keys.Action(msg)
		if a == core.ActionQuit {
			return m.quit(session.ReasonQuit)
		}
		if a != core.ActionNone {
			m.pending = a
		}
		return m, nil

	case phaseGoodbye:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, nil
	}

	reason := m.ctrl.Advance(m.pending)
	m.pending = core.ActionNone

	if reason == session.ReasonDead {
		m.result = m.ctrl.Finish(reason)
		m.phase = phaseGoodbye
		w := m.ctrl.World()
		m.frame = m.paint(riverraid.GoodbyeBanner(w.Cols(), w.Rows(), w.State()))
		return m, nil
	}

	m.frame = m.paint(m.ctrl.Frame())
	return m, tickCmd(m.ctrl.Tick())
}

func (m Model) quit(reason session.EndReason) (tea.Model, tea.Cmd) {
	if m.phase != phaseGoodbye {
		m.result = m.ctrl.Finish(reason)
	}
	m.done = true
	return m, tea.Quit
}

func (m Model) paint(frame []core.DrawCmd) string {
	m.screen.Apply(frame)
	return RenderScreen(m.screen)
}

// View returns the cached frame.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.frame
}

// Result returns the session summary once the program has exited.
func (m Model) Result() session.Result {
	return m.result
}

// Run starts the Bubble Tea program and blocks until the session ends.
// A program killed through its context reports ReasonInterrupted.
func Run(ctrl *session.Controller, opts ...tea.ProgramOption) (session.Result, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(ctrl), opts...)

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return ctrl.Finish(session.ReasonInterrupted), nil
	}
	if err != nil {
		return session.Result{}, fmt.Errorf("tui: %w", err)
	}
	return final.(Model).Result(), nil
}
