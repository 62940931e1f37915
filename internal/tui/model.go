// Package tui plays the game in a terminal, locally or over SSH.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/shared/input"
	"survivors-lab/internal/world"
)

// statusRows is the height of the HUD line under the playfield.
const statusRows = 1

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var (
	levelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD94D"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type Config struct {
	World    world.Config
	Width    int
	Height   int
	TickRate int
}

// Model is a bubbletea model owning one World. Each step uses the real time
// elapsed since the previous tick.
type Model struct {
	w      *world.World
	screen *Screen
	keys   *heldKeys

	hpBar  progress.Model
	expBar progress.Model

	tickRate int
	last     time.Time
	quitting bool
}

func NewModel(cfg Config) Model {
	if cfg.TickRate < 1 {
		cfg.TickRate = 30
	}
	m := Model{
		w:        world.NewWorld(cfg.World),
		screen:   NewScreen(cfg.Width, cfg.Height-statusRows),
		keys:     newHeldKeys(),
		hpBar:    progress.New(progress.WithSolidFill("#E62626"), progress.WithoutPercentage()),
		expBar:   progress.New(progress.WithSolidFill("#4D99FF"), progress.WithoutPercentage()),
		tickRate: cfg.TickRate,
	}
	m.sizeBars(cfg.Width)
	world.Present(m.screen, m.w.Frame())
	return m
}

func (m *Model) sizeBars(width int) {
	bw := max(width/4, 5)
	m.hpBar.Width = bw
	m.expBar.Width = bw
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			logger_config.Logger.Info("restart", "elapsed", m.w.Elapsed, "level", m.w.Player.Level)
			m.w.Reset()
			m.keys.Release()
			return m, nil
		}
		m.keys.Press(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-statusRows)
		m.sizeBars(msg.Width)
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			dt := float32(now.Sub(m.last).Seconds())
			f := m.w.Step(dt, input.Poll(m.keys))
			world.Present(m.screen, f)
		}
		m.last = now
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.screen.String() + "\n" + m.status()
}

func (m Model) status() string {
	h := m.w.HUD
	return fmt.Sprintf("HP %s  EXP %s  %s  %s",
		m.hpBar.ViewAs(float64(h.HPRatio())),
		m.expBar.ViewAs(float64(h.ExpRatio())),
		levelStyle.Render(fmt.Sprintf("LV %d", h.Level)),
		hintStyle.Render("wasd/arrows move · r restart · q quit"),
	)
}

// World exposes the simulated world, e.g. for a summary after the program
// exits.
func (m Model) World() *world.World { return m.w }

// Run plays in the local terminal until the player quits.
func Run(cfg Config) (world.Stats, error) {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return world.Stats{}, fmt.Errorf("run terminal ui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.w.Stats, nil
	}
	return world.Stats{}, nil
}
