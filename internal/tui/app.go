// Package tui is the terminal surface for the calculator: it forwards key
// presses to the engine and renders the display and keypad.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/keycalc/internal/calc"
	"github.com/jask/keycalc/internal/config"
	"github.com/jask/keycalc/internal/keymap"
)

const appName = "keycalc"

// Model is the Bubble Tea model for one calculator session.
type Model struct {
	engine *calc.Engine
	keys   *keymap.Registry
	log    *logrus.Entry
	styles styles

	cellWidth int
	showHelp  bool
	width     int
	height    int

	lastKey  calc.Key
	pressed  bool
	quitting bool
}

// New builds a model around a fresh engine.
func New(cfg config.Config, keys *keymap.Registry, log *logrus.Entry) Model {
	if keys == nil {
		keys = keymap.New()
	}
	engine := calc.New(
		calc.WithErrorMarker(cfg.UI.ErrorMarker),
		calc.WithLogger(log),
	)
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	return Model{
		engine:    engine,
		keys:      keys,
		log:       log,
		styles:    newStyles(paletteFor(cfg.UI.Theme)),
		cellWidth: max(3, cfg.UI.KeypadWidth),
		showHelp:  cfg.UI.ShowHelp,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Display returns the engine's current display text.
func (m Model) Display() string { return m.engine.Display() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := msg.String()
	b := m.keys.Lookup(name)
	if b == nil {
		m.log.WithField("key", name).Debug("unbound key")
		return m, nil
	}
	switch b.Action {
	case keymap.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}
	k, ok := b.CalcKey()
	if !ok {
		return m, nil
	}
	display := m.engine.Apply(k)
	m.lastKey = k
	m.pressed = true
	m.log.WithFields(logrus.Fields{
		"key":     k.String(),
		"display": display,
		"phase":   m.engine.Phase().String(),
	}).Debug("key applied")
	return m, nil
}
