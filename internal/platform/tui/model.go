package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blahos/funfair/internal/core"
	"github.com/blahos/funfair/internal/registry"
	"github.com/blahos/funfair/internal/storage"
)

// holdGrace is how long a movement key counts as held after its latest
// press. Terminals send no key-up events, so a key is considered down
// while auto-repeat keeps refreshing this deadline.
const holdGrace = 200 * time.Millisecond

// maxStep caps the simulated elapsed time after a long stall (terminal
// suspend, debugger). Games clamp internally, but a multi-second jump
// is never what the player wants.
const maxStep = 0.25

// Model is the Bubble Tea model for running funfair games.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	// input accumulates edges and clicks between ticks; holdUntil tracks
	// the auto-repeat deadline per movement action.
	input     core.InputFrame
	holdUntil map[core.Action]time.Time
	lastTick  time.Time

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool

	// sessionMode makes Back return to a wrapping session menu instead
	// of quitting the program.
	sessionMode bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		input:     core.NewInputFrame(),
		holdUntil: make(map[core.Action]time.Time),
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Edges fire once per physical
// press; holdable keys also refresh their held deadline so auto-repeat
// keeps them down.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.saveScore()
		if m.sessionMode {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	if IsHoldable(action) {
		now := time.Now()
		// Auto-repeat arrives while the key is still down; only the first
		// event of a press is an edge.
		if now.After(m.holdUntil[action]) {
			m.input.Press(action)
		}
		m.holdUntil[action] = now.Add(holdGrace)
	} else {
		m.input.Press(action)
	}

	return m, nil
}

// handleMouse tracks the pointer and latches left-button presses as
// clicks. The click queue is drained exactly once on the next tick, so
// no press is lost however long the tick takes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	vp := core.Viewport{W: m.config.ScreenW, H: m.config.ScreenH}
	m.input.Pointer = vp.ToWorld(msg.X, msg.Y)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.AddClick(m.input.Pointer)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Sprites are sized for the screen, so rebuild the game world.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.lastTick = time.Time{}

	return m, nil
}

// handleTick advances the simulation by the measured elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}
	m.lastTick = now

	if m.input.WasPressed(core.ActionRestart) {
		m.saveScore()
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Level state for held keys comes from the auto-repeat deadlines.
	for a, deadline := range m.holdUntil {
		if now.Before(deadline) {
			m.input.Hold(a)
		}
	}

	result := m.game.Step(m.input, dt)
	m.gameState = result.State

	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the session score once, if there is one.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, exit continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".funfair", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// NewSessionModelFor wraps a game for use inside a session: Back leaves
// to the session menu rather than ending the program.
func NewSessionModelFor(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := NewModel(game, store, cfg)
	m.sessionMode = true
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer position and clicks
	)

	_, err := p.Run()
	return err
}
