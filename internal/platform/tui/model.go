package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide-maze/internal/core"
	"github.com/vovakirdan/slide-maze/internal/registry"
	"github.com/vovakirdan/slide-maze/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	boardStart time.Time
	now        func() time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current board's run has been saved
}

// NewModel creates a new Bubble Tea model for the given game. A nil store
// disables run history; a nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init resets the game and starts the tick loop.
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
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.gameState.Paused {
		m.saveRun()
		m.backToMenu = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !registry.Resize(m.game, msg.Width, msg.Height) {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m = m.step()
	return m, tickCmd(m.config.TickRate)
}

// step feeds the pending input to the game and records finished boards.
func (m Model) step() Model {
	if m.boardStart.IsZero() {
		m.boardStart = m.now()
	}
	// Restart and regenerate abandon the current board.
	if m.inputFrame.Has(core.ActionRestart) || m.inputFrame.Has(core.ActionRegenerate) {
		m.saveRun()
	}

	prev := m.gameState
	m.gameState = m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()

	if m.gameState.Solved && !prev.Solved {
		m.saveRun()
	}
	if boardChanged(prev, m.gameState) {
		m.runSaved = false
		m.boardStart = m.now()
	}
	return m
}

// boardChanged reports whether cur belongs to a different board than prev.
func boardChanged(prev, cur core.GameState) bool {
	return cur.Seed != prev.Seed ||
		(prev.Solved && !cur.Solved) ||
		cur.Steps < prev.Steps ||
		cur.Drags < prev.Drags
}

// saveRun records the current board once. Boards the player never touched
// are not recorded.
func (m *Model) saveRun() {
	st := m.gameState
	if m.runSaved || m.store == nil || (st.Steps == 0 && st.Drags == 0 && !st.Solved) {
		return
	}
	m.runSaved = true

	run := storage.Run{
		GameID:   m.game.ID(),
		Seed:     st.Seed,
		Size:     st.Size,
		Steps:    st.Steps,
		Drags:    st.Drags,
		Solved:   st.Solved,
		Duration: int(m.now().Sub(m.boardStart).Seconds()),
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "game", run.GameID, "solved", run.Solved, "steps", run.Steps)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".slidemaze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (bool, error) {
	p := tea.NewProgram(
		NewModel(game, store, logger, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
