package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Model is the Bubble Tea model hosting one game.
// It owns the timers: every countdown or frame message carries the token it
// was scheduled with, and the machine drops the ones that went stale.
type Model struct {
	machine  *flappy.Machine
	screen   *core.Screen
	canvas   *core.Canvas
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new model on the title screen.
// A zero seed gives every run a fresh time-based seed.
func NewModel(game config.FlappyConfig, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := []flappy.Option{flappy.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, flappy.WithSeed(cfg.Seed))
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0))
	return Model{
		machine: flappy.NewMachine(game, opts...),
		screen:  screen,
		canvas:  core.NewCanvas(screen, game.Playfield.Width, game.Playfield.Height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		logger:  logger,
	}
}

// Init sets the window title. Nothing is scheduled until the player starts.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("flappy")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isFlapClick(msg) {
			m.machine.Flap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case CountdownMsg:
		next, ok := m.machine.CountdownTick(msg.Token)
		if !ok {
			return m, nil
		}
		return m, m.schedule(next)

	case FrameMsg:
		next, ok := m.machine.Frame(msg.Token)
		if !ok {
			return m, nil
		}
		return m, m.schedule(next)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionFlap:
		m.machine.Flap()
	case core.ActionStart, core.ActionRestart:
		if tok, ok := m.machine.Start(); ok {
			return m, m.schedule(tok)
		}
	}
	return m, nil
}

// handleResize fits the screen to the new terminal size. The simulation runs
// in playfield units and is not touched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// schedule returns the timer command that will deliver tok.
func (m Model) schedule(tok clock.Token) tea.Cmd {
	if d, ok := m.machine.Interval(tok); ok {
		return countdownCmd(d, tok)
	}
	return frameCmd(m.config.TickRate, tok)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.machine.Render(m.canvas)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Machine returns the game state machine.
func (m Model) Machine() *flappy.Machine {
	return m.machine
}

// Screen returns the cell buffer the game is drawn into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program with the given configuration.
func Run(game config.FlappyConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
