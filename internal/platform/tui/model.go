package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Layout: row 0 is the HUD, the playfield fills the rest of the screen
// buffer and the last terminal line shows key help.
const (
	hudRows  = 1
	helpRows = 1

	minScreenW = 20
	minScreenH = 6
)

// Model is the Bubble Tea model running one asteroids session at a time.
type Model struct {
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	session *asteroids.Session
	screen  *core.Screen
	raster  *core.Raster
	input   *core.InputState
	keys    KeyMap
	help    help.Model

	minCols int // Smallest terminal that holds the minimum world
	minRows int

	start    time.Time // Frame timestamps are measured from here
	state    core.GameState
	running  bool // Whether the tick loop is active
	quitting bool
}

// NewModel creates a model sized for the terminal described by runtime.
// The world bounds are derived from the screen size.
func NewModel(cfg config.AsteroidsConfig, runtime core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-helpRows, 0))
	raster := core.NewRaster(screen, hudRows, cfg.World.PixelScale)
	runtime.WorldW, runtime.WorldH = raster.WorldSize()

	session := asteroids.New(cfg, time.Now)
	session.Reset(runtime)

	minCols, minRows := minTerminal(cfg)

	h := help.New()
	h.ShowAll = false

	logger.Info("session started", "seed", runtime.Seed, "world", fmt.Sprintf("%.0fx%.0f", runtime.WorldW, runtime.WorldH))

	return Model{
		cfg:     cfg,
		runtime: runtime,
		logger:  logger,
		session: session,
		screen:  screen,
		raster:  raster,
		input:   core.NewInputState(cfg.Controls.Hold()),
		keys:    NewKeyMap(cfg.Controls),
		help:    h,
		minCols: minCols,
		minRows: minRows,
		start:   time.Now(),
		running: true,
	}
}

// minTerminal returns the terminal size whose playfield covers
// asteroids.MinWorldSize, never less than the HUD needs.
func minTerminal(cfg config.AsteroidsConfig) (cols, rows int) {
	w, h := asteroids.MinWorldSize(cfg)
	scale := cfg.World.PixelScale
	cols = int(math.Ceil(w / scale))
	rows = hudRows + int(math.Ceil(h/scale/2)) + helpRows
	return max(cols, minScreenW), max(rows, minScreenH)
}

// tooSmall reports whether the terminal cannot show the minimum world.
func (m Model) tooSmall() bool {
	return m.runtime.ScreenW < m.minCols || m.runtime.ScreenH < m.minRows
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers game keys and handles quit/restart.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	if name, ok := m.keys.GameKey(msg); ok {
		m.input.Press(name, time.Now())
	}
	return m, nil
}

// restart replaces the finished session with a fresh one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.runtime.Seed = time.Now().UnixNano()
	m.session = asteroids.New(m.cfg, time.Now)
	m.session.Reset(m.runtime)
	m.input.Reset()
	m.raster.Clear()

	m.state = m.session.State()
	m.keys.SetGameOver(false)
	m.start = time.Now()
	m.running = true

	m.logger.Info("session restarted", "seed", m.runtime.Seed)
	return m, tickCmd(m.runtime.TickRate)
}

// handleResize keeps the world bounds in step with the terminal. The
// session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))

	m.runtime.WorldW, m.runtime.WorldH = m.raster.WorldSize()
	m.session.Resize(m.runtime.WorldW, m.runtime.WorldH)
	m.help.Width = msg.Width

	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick feeds one display refresh to the session. The session is
// paused while the terminal is too small to show it.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}
	if m.tooSmall() {
		return m, tickCmd(m.runtime.TickRate)
	}

	res := m.session.Frame(now.Sub(m.start), m.input.Snapshot(now), m.raster)
	m.state = res.State
	m.logEvents(res.Events)

	if !res.Continue() {
		m.running = false
		m.keys.SetGameOver(true)
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// logEvents records session events.
func (m Model) logEvents(events []asteroids.Event) {
	for _, e := range events {
		switch e.Kind {
		case asteroids.EventRockDestroyed:
			m.logger.Info("rock destroyed", "points", e.Points, "score", m.state.Score)
		case asteroids.EventRockSplit:
			m.logger.Debug("rock split", "children", e.Children, "x", e.Pos.X, "y", e.Pos.Y)
		case asteroids.EventGameOver:
			m.logger.Info("game over", "score", m.state.Score)
		default:
			m.logger.Debug(e.Kind.String(), "x", e.Pos.X, "y", e.Pos.Y)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			m.minCols, m.minRows, m.runtime.ScreenW, m.runtime.ScreenH)
	}

	m.drawHUD()
	if m.state.GameOver {
		m.drawGameOver()
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawHUD writes the status row.
func (m Model) drawHUD() {
	for x := 0; x < m.screen.Width(); x++ {
		m.screen.Set(x, 0, ' ')
	}
	m.screen.DrawText(1, 0, fmt.Sprintf("SCORE %d", m.state.Score), core.ColorBrightWhite)

	status := "ASTEROIDS"
	if m.state.GameOver {
		status = "GAME OVER"
	}
	m.screen.DrawText(m.screen.Width()-len(status)-1, 0, status, core.ColorGray)
}

// drawGameOver overlays the final score on the playfield.
func (m Model) drawGameOver() {
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", m.state.Score)}

	w, h := 22, len(lines)+4
	box := core.NewRect((m.screen.Width()-w)/2, hudRows+(m.screen.Height()-hudRows-h)/2, w, h)
	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorRed
		}
		m.screen.DrawText(box.X+(w-len(line))/2, box.Y+2+i, line, color)
	}
}

// Run starts the Bubble Tea program.
func Run(cfg config.AsteroidsConfig, runtime core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, runtime, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
