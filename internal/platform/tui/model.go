package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfind/internal/config"
	"github.com/vovakirdan/tui-pathfind/internal/core"
	"github.com/vovakirdan/tui-pathfind/internal/demo"
)

// helpHeight is the number of terminal rows reserved for the help line.
const helpHeight = 1

// Model is the Bubble Tea model running the demo.
type Model struct {
	demo       *demo.Demo
	screen     *core.Screen
	timing     config.TimingConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a Bubble Tea model and starts the first run.
// rc holds the full terminal size; one row is kept for the help line.
func NewModel(cfg config.DemoConfig, rc core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	rc.ScreenH = max(rc.ScreenH-helpHeight, 0)

	d := demo.New(cfg, logger)
	if err := d.Reset(rc); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rc.ScreenW

	return Model{
		demo:       d,
		screen:     core.NewScreen(rc.ScreenW, rc.ScreenH),
		timing:     cfg.Timing,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.timing.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, &m.inputFrame)
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
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the screen buffer in sync with the terminal.
// The grid itself is never regenerated.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(msg.Height-helpHeight, 0)
	m.screen.Resize(msg.Width, h)
	m.demo.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one demo frame with the elapsed wall-clock time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.timing.MaxFrameDelta)
	m.lastTick = now

	if !m.inputFrame.Empty() {
		m.logger.Debug("input", "clicks", len(m.inputFrame.Clicks), "dt", dt)
	}
	m.demo.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	return m, tickCmd(m.timing.FPS)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.demo.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".pathfind", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pathfind_%d_%s.txt", m.demo.Seed(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Demo returns the running demo.
func (m Model) Demo() *demo.Demo {
	return m.demo
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.demo.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program.
func Run(cfg config.DemoConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rc, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks pick the goal
	)

	_, err = p.Run()
	return err
}
