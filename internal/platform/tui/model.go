package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/session"
)

// Sounds reacts to round events. audio.Manager implements it.
type Sounds interface {
	HandleEvents(events []core.Event)
	StartRound() int
	Close()
}

// Options configures a Model.
type Options struct {
	Sounds    Sounds
	Keys      *KeyMap
	HoldTicks int
	// ScreenshotDir receives ctrl+s dumps. Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	controls *Controls
	sounds   Sounds
	shotDir  string
	rt       core.RuntimeConfig
	state    core.GameState
	started  bool
	quitting bool
}

// NewModel wraps s. The session is started by Init.
func NewModel(s *session.Session, rt core.RuntimeConfig, opts Options) *Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	h := help.New()
	h.Width = rt.ScreenW

	return &Model{
		session:  s,
		screen:   core.NewScreen(rt.ScreenW, playHeight(rt.ScreenH)),
		keys:     keys,
		help:     h,
		controls: NewControls(opts.HoldTicks),
		sounds:   opts.Sounds,
		shotDir:  opts.ScreenshotDir,
		rt:       rt,
	}
}

// playHeight leaves the bottom row for the help line.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the first round and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.start()
	return tickCmd(m.rt.TickRate)
}

func (m *Model) start() {
	if m.started {
		return
	}
	m.started = true
	rt := m.rt
	rt.ScreenH = playHeight(rt.ScreenH)
	m.session.Start(rt)
	m.state = m.session.Game().State()
	if m.sounds != nil {
		m.sounds.StartRound()
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		return m.quit()
	}

	if _, over := m.session.GameOver(); over {
		if action == core.ActionRestart || action == core.ActionFire {
			m.retry()
		}
		return m, nil
	}
	m.controls.Press(action)
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	if !m.started {
		return
	}
	if _, over := m.session.GameOver(); !over && m.session.Game().State().Score == 0 {
		// Nothing to lose yet: restart at the real size.
		m.session.Resize(msg.Width, playHeight(msg.Height))
		m.controls.Release()
	}
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.start()

	res := m.session.Step(m.controls.Frame())
	m.state = res.State
	if m.sounds != nil && len(res.Events) > 0 {
		m.sounds.HandleEvents(res.Events)
	}
	return m, tickCmd(m.rt.TickRate)
}

func (m *Model) retry() {
	m.session.Decide(session.DecisionRetry)
	m.controls.Release()
	m.state = m.session.Game().State()
	if m.sounds != nil {
		m.sounds.StartRound()
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.session.Decide(session.DecisionQuit)
	m.quitting = true
	if m.sounds != nil {
		m.sounds.Close()
	}
	return m, tea.Quit
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.session.Game().Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the round continues regardless
	os.WriteFile(filepath.Join(m.shotDir, name), []byte(m.screen.String()), 0o600)
}

// View renders the round and the help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Game().Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

// State returns the last observed round state.
func (m *Model) State() core.GameState { return m.state }

// Quitting reports whether the player asked to leave.
func (m *Model) Quitting() bool { return m.quitting }

// Run starts a local Bubble Tea program for s.
func Run(s *session.Session, rt core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(s, rt, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
