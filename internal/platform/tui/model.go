package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/invaders"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

// maxConsecutiveFaults is how many ticks in a row may panic before the
// platform gives up and shuts down cleanly.
const maxConsecutiveFaults = 3

// Model is the Bubble Tea model driving the game loop. Key presses
// accumulate in an input frame that is handed to the simulation once per
// tick and then cleared, which makes fire and reset edge-triggered.
type Model struct {
	game   *invaders.Game
	atlas  *sprites.Atlas
	logger *log.Logger

	screen *core.Screen
	keys   KeyMap
	help   help.Model
	input  core.InputFrame
	state  core.GameState

	tickRate int
	width    int
	height   int
	tooSmall bool
	faults   int
	wasOver  bool
	quitting bool
}

// NewModel wires a game, its sprite atlas and a logger into a Bubble Tea
// model. A nil logger discards all output.
func NewModel(game *invaders.Game, atlas *sprites.Atlas, logger *log.Logger, rc core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		atlas:    atlas,
		logger:   logger,
		screen:   core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-1, 1)),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		state:    game.State(),
		tickRate: core.Max(rc.TickRate, 1),
		width:    rc.ScreenW,
		height:   rc.ScreenH,
		tooSmall: rc.ScreenW < minTermWidth || rc.ScreenH < minTermHeight,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "tick_rate", m.tickRate)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.logger.Info("session ended", "score", m.state.Score, "hi_score", m.state.HiScore)
		m.quitting = true
		return m, tea.Quit
	case core.ActionReset:
		// Only meaningful once the round is over; dropping it here keeps
		// stray r presses out of the input frame.
		if m.state.GameOver {
			m.input.Set(action)
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize adopts the new terminal size. The simulation has no notion of
// terminal dimensions, so a resize only rebuilds the cell buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.tooSmall = msg.Width < minTermWidth || msg.Height < minTermHeight

	// The last terminal row belongs to the help bar
	m.screen = core.NewScreen(msg.Width, core.Max(msg.Height-1, 1))
	return m, nil
}

// handleTick advances the simulation by one step and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		// Keep the loop alive but hold the simulation still
		m.input.Clear()
		return m, tickCmd(m.tickRate)
	}

	res, ok := m.safeStep()
	m.input.Clear()
	if !ok {
		if m.faults >= maxConsecutiveFaults {
			m.logger.Error("shutting down after repeated simulation faults", "faults", m.faults)
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.tickRate)
	}

	if res.State.GameOver && !m.wasOver {
		m.logger.Info("round over", "score", res.State.Score, "hi_score", res.State.HiScore)
	}
	if !res.State.GameOver && m.wasOver {
		m.logger.Info("round reset", "lives", res.State.Lives)
	}
	m.wasOver = res.State.GameOver
	m.state = res.State

	return m, tickCmd(m.tickRate)
}

// safeStep runs one simulation step, converting a panic into a logged fault
// instead of tearing down the terminal.
func (m *Model) safeStep() (res core.StepResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.faults++
			m.logger.Error("simulation fault",
				"panic", r,
				"consecutive", m.faults,
				"stack", string(debug.Stack()))
			ok = false
		}
	}()

	res = m.game.Step(m.input)
	m.faults = 0
	return res, true
}

// saveScreenshot writes the current cell buffer to ~/.invaders/screenshots.
func (m *Model) saveScreenshot() {
	if m.screen == nil {
		return
	}
	drawFrame(m.screen, m.game.Frame(), m.atlas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("invaders_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the screen buffer plus the help bar.
func (m Model) View() string {
	if m.quitting || m.screen == nil {
		return ""
	}

	if m.tooSmall {
		drawTooSmall(m.screen, m.width, m.height)
	} else {
		drawFrame(m.screen, m.game.Frame(), m.atlas)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run drives the game under Bubble Tea until the player quits. A loop that
// shut itself down after repeated simulation faults is reported as an error
// so the process can exit non-zero.
func Run(game *invaders.Game, atlas *sprites.Atlas, logger *log.Logger, rc core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, atlas, logger, rc),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.faults >= maxConsecutiveFaults {
		return fmt.Errorf("tui: simulation halted after %d consecutive faults", m.faults)
	}
	return nil
}
