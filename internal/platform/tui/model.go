package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/session"
)

// holdWindow is how long a directional key counts as held after its last
// press or repeat. Terminals do not report key releases.
const holdWindow = 250 * time.Millisecond

// Model is the Bubble Tea model hosting a session.
type Model struct {
	sess     *session.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    core.InputFrame
	held     map[core.Action]time.Time
	lastTick time.Time
	now      func() time.Time
	log      *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	sess.Resize(cfg.ScreenW, cfg.ScreenH)

	return Model{
		sess:   sess,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
		held:   make(map[core.Action]time.Time),
		now:    time.Now,
		log:    logger,
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

// handleKey records the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	m.input.Set(action)
	if holdable(action) {
		m.held[action] = m.now()
	}
	return m, nil
}

// handleMouse tracks the pointer and its left-button edges.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := &m.input.Pointer
	p.X, p.Y = msg.X, msg.Y

	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		p.Pressed = true
		p.Down = true
	case tea.MouseActionRelease:
		if p.Down {
			p.Released = true
		}
		p.Down = false
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.sess.Resize(msg.Width, msg.Height)
	m.log.Debug("resize", "w", msg.Width, "h", msg.Height)
	return m, nil
}

// handleTick runs one session frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	clock := m.now()
	for a, at := range m.held {
		if clock.Sub(at) > holdWindow {
			delete(m.held, a)
			continue
		}
		m.input.Hold(a)
	}

	m.sess.Update(dt, m.input)

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.sess.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".nounours", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sess.State(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sess.Draw(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program hosting the session. Any minigame
// still installed when the program ends is unloaded.
func Run(sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(sess, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover and drag need motion without a button
	)

	_, err := p.Run()
	sess.Close()
	return err
}
