package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mattress-hop/internal/core"
)

// Game is the contract between the host and a frame-driven game.
type Game interface {
	Title() string
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	ClickCell(col, row, cols, rows int) bool
}

// Muter is implemented by audio outputs that can be toggled from the keyboard.
type Muter interface {
	ToggleMute() bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	game   Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	muter  Muter
	logger *log.Logger

	hold     holdTracker
	pending  core.InputFrame // one-shot actions collected since the last tick
	lastTick time.Time
	now      func() time.Time

	gameState core.GameState
	width     int
	height    int
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithMuter lets the mute key toggle the given audio output.
func WithMuter(m Muter) Option {
	return func(model *Model) {
		model.muter = m
	}
}

// WithLogger sets the logger for host events.
func WithLogger(l *log.Logger) Option {
	return func(model *Model) {
		if l != nil {
			model.logger = l
		}
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts ...Option) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:    game,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  log.New(io.Discard),
		hold:    newHoldTracker(),
		pending: core.NewInputFrame(),
		now:     time.Now,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameRows())
	for _, opt := range opts {
		opt(&m)
	}
	m.gameState = game.State()
	return m
}

// gameRows is the screen height left after the help line.
func (m Model) gameRows() int {
	return core.Max(1, m.height-m.helpRows())
}

func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = core.Max(rows, len(col))
	}
	return rows
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg, tea.BlurMsg:
		m.hold.release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.gameRows())
		return m, nil
	}

	action, dir := m.keys.MapKey(msg)
	now := m.now()

	switch {
	case dir != 0:
		m.hold.press(dir, now)
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionMute:
		if m.muter != nil {
			muted := m.muter.ToggleMute()
			m.logger.Info("audio toggled", "muted", muted)
		}
	case action == core.ActionJump:
		if m.hold.pressJump(now) {
			m.pending.Set(core.ActionJump)
		}
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleMouse forwards left clicks to the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.game.ClickCell(msg.X, msg.Y, m.screen.Width(), m.screen.Height()) {
		m.logger.Info("round restarted", "via", "mouse")
		m.hold.release()
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its own
// coordinates, so only the render target changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.gameRows())
	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = t.Sub(m.lastTick)
	}
	m.lastTick = t

	in := m.pending.Clone()
	switch m.hold.direction(t) {
	case -1:
		in.Left = true
	case 1:
		in.Right = true
	}

	prev := m.gameState
	m.gameState = m.game.Step(in, dt).State
	m.pending.Clear()

	if m.gameState.GameOver && !prev.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for the game and blocks until it quits.
func Run(game Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
