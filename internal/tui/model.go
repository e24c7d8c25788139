// Package tui renders playback as an interactive terminal bar chart.
//
// The model is a thin view over a playback.Controller: every keypress maps
// to one controller operation, and auto-advance ticks arrive as bubbletea
// messages sent from the controller's render callback. The model itself
// holds no playback state beyond presentation toggles.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/sortscope/internal/playback"
	"github.com/roach88/sortscope/internal/step"
)

// stepMsg signals that the controller advanced the cursor on a tick.
// Payload-free: View pulls the current step from the controller.
type stepMsg struct{}

// Model is the bubbletea model for the visualizer.
type Model struct {
	ctrl *playback.Controller
	keys keyMap
	help help.Model

	width    int
	height   int
	showInfo bool
	quitting bool
}

// NewModel builds a visualizer model over an existing controller. The
// controller's array must already be installed.
func NewModel(ctrl *playback.Controller) Model {
	return Model{
		ctrl: ctrl,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stepMsg:
		// The cursor moved; re-render.
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.PlayPause):
			if m.ctrl.State() == playback.StatePlaying {
				m.ctrl.Pause()
			} else {
				m.ctrl.Start()
			}
			return m, nil

		case key.Matches(msg, m.keys.Fast):
			m.ctrl.FastStart()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.ctrl.Reset()
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.ctrl.Pause()
			m.ctrl.StepBackward()
			return m, nil

		case key.Matches(msg, m.keys.Forward):
			m.ctrl.Pause()
			m.ctrl.StepForward()
			return m, nil

		case key.Matches(msg, m.keys.Slower):
			m.ctrl.SetSpeed(adjacentSpeed(m.ctrl.Speed(), -1))
			return m, nil

		case key.Matches(msg, m.keys.Faster):
			m.ctrl.SetSpeed(adjacentSpeed(m.ctrl.Speed(), +1))
			return m, nil

		case key.Matches(msg, m.keys.NewArray):
			m.ctrl.Randomize(len(m.ctrl.Original()))
			return m, nil

		case key.Matches(msg, m.keys.Info):
			m.showInfo = !m.showInfo
			return m, nil
		}
	}
	return m, nil
}

// adjacentSpeed moves one preset along the slowest-to-fastest order,
// clamped at both ends.
func adjacentSpeed(s playback.Speed, delta int) playback.Speed {
	presets := playback.Speeds()
	for i, p := range presets {
		if p == s {
			next := i + delta
			if next < 0 {
				next = 0
			}
			if next >= len(presets) {
				next = len(presets) - 1
			}
			return presets[next]
		}
	}
	return s
}

// Run starts the visualizer over the given controller and blocks until
// the user quits.
func Run(ctrl *playback.Controller) error {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())

	// Ticks fire on the scheduler goroutine; Send is the safe way into
	// the bubbletea event loop from there.
	ctrl.SetRenderFunc(func(_ step.Step, _, _ int) {
		p.Send(stepMsg{})
	})

	_, err := p.Run()
	ctrl.Pause()
	return err
}
