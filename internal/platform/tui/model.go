package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// EventPlayer reacts to game events with sound.
type EventPlayer interface {
	PlayEvent(e core.Event)
}

// Options wires optional services into a Model. Zero values disable them.
type Options struct {
	Store         *storage.Store // Score history; nil keeps nothing
	Sound         EventPlayer    // nil plays nothing
	Logger        *log.Logger    // nil discards
	Player        string         // Name recorded with scores
	KeyRelease    time.Duration  // Held-key release window
	ScreenshotDir string         // Defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	mouseOn    bool // Whether mouse reporting is currently enabled
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		keys:       NewKeyMapper(opts.KeyRelease),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		mouseOn:    true, // Programs start with mouse reporting on
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, time.Now()) {
		if m.gameState.Active {
			m.saveScore(m.gameState)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize rebuilds the game for the new terminal size.
// A game in progress is recorded and abandoned.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Active {
		m.logger.Info("terminal resized, game abandoned", "score", m.gameState.Score)
		m.saveScore(m.gameState)
	}

	m.keys.ReleaseAll(nil)
	m.inputFrame.Clear()
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m, m.pointerCmd()
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keys.Expire(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tea.Batch(tickCmd(m.config.TickRate), m.pointerCmd())
}

// handleEvents forwards game events to sound, log and score history.
func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		if m.opts.Sound != nil {
			m.opts.Sound.PlayEvent(e)
		}

		switch e.Kind {
		case core.EventGameStarted:
			m.logger.Info("game started")
		case core.EventShipHit:
			m.logger.Info("ship hit", "ships_left", e.Value)
		case core.EventLevelCleared:
			m.logger.Info("level cleared", "level", e.Value)
		case core.EventGameOver:
			m.logger.Info("game over", "score", e.Value, "level", m.gameState.Level)
			m.saveScore(m.gameState)
		}
	}
}

// pointerCmd toggles mouse reporting to match the game's pointer visibility.
func (m *Model) pointerCmd() tea.Cmd {
	want := m.gameState.PointerVisible
	if want == m.mouseOn {
		return nil
	}
	m.mouseOn = want
	if want {
		return tea.EnableMouseCellMotion
	}
	return tea.DisableMouse
}

// saveScore records a finished or abandoned game. Failures are logged only.
func (m *Model) saveScore(st core.GameState) {
	if m.opts.Store == nil || st.Score <= 0 {
		return
	}

	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  st.Score,
		Level:  st.Level,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "score", st.Score, "level", st.Level)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
