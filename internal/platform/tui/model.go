package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model for running the snake game.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	lastTick time.Time
	width    int
	height   int
	paused   bool
	quitting bool

	// Last observed game state, for logging transitions
	wasOver      bool
	lastRestarts int
}

// NewModel creates a new Bubble Tea model driving the given game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	palette := game.Settings().Palette
	return Model{
		game:   game,
		screen: core.NewScreen(game.Width(), game.Height(), palette.Background),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "restarts", m.game.Restarts(), "length", m.game.Snake().Len())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.paused {
		return m, nil
	}

	k := m.keys.GameKey(msg)
	m.logger.Debug("key", "key", msg.String(), "game_key", k)
	m.game.KeyPressed(k)
	m.observe()
	return m, nil
}

// handleTick feeds the time since the previous tick to the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if !m.paused && dt > 0 {
		m.game.Update(dt.Seconds())
		m.observe()
	}

	return m, tickCmd(m.config.TickRate)
}

// observe logs game-over and restart transitions.
func (m *Model) observe() {
	over := m.game.GameOver()
	if over && !m.wasOver {
		x, y := m.game.Snake().HeadPosition()
		m.logger.Info("game over", "length", m.game.Snake().Len(), "head_x", x, "head_y", y)
	}
	m.wasOver = over

	if r := m.game.Restarts(); r != m.lastRestarts {
		m.logger.Info("restart", "restarts", r)
		m.lastRestarts = r
	}
}

// Paused reports whether the driver is holding the game clock.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Draw(m.screen)

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Snake"),
		RenderScreen(m.screen),
		m.statusLine(),
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) statusLine() string {
	switch {
	case m.paused:
		return pausedStyle.Render("Paused - press p to continue")
	case m.game.GameOver():
		return gameOverStyle.Render("Game over - restarting...")
	default:
		return statusStyle.Render(fmt.Sprintf("Length: %d", m.game.Snake().Len()))
	}
}

// Run starts the Bubble Tea program with the given game.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
