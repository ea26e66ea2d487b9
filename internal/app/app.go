package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/interference/internal/config"
	"github.com/abhisek/interference/internal/router"
	"github.com/abhisek/interference/internal/screen"
	"github.com/abhisek/interference/internal/session"
	"github.com/abhisek/interference/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	// Shuffler orders the questions. Nil uses the random shuffler.
	Shuffler session.Shuffler
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	flow   *flow
	width  int
	height int
}

// newAppModel creates a new AppModel showing the intro screen of a fresh
// session.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	f := &flow{
		state: session.NewState(opts.Shuffler),
		cfg:   cfg,
		log:   log,
	}
	log.Debug("session created", zap.String("session_id", f.state.ID))
	return AppModel{
		router: router.New(f.intro()),
		flow:   f,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ResetSessionMsg:
		return m, m.reset()

	case router.PushScreenMsg:
		if m.stale(msg.Screen) {
			return m, nil
		}

	case router.ReplaceScreenMsg:
		if m.stale(msg.Screen) {
			return m, nil
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.flow.log.Info("quit", zap.String("session_id", m.flow.state.ID), zap.Stringer("phase", m.flow.state.Phase))
			return m, tea.Quit
		case "ctrl+r":
			return m, m.reset()
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// stale reports whether s belongs to a session that has since been reset.
// Navigation queued before a reset must not land on top of the new intro.
func (m AppModel) stale(s screen.Screen) bool {
	scoped, ok := s.(screen.SessionScoped)
	if !ok || scoped.SessionID() == m.flow.state.ID {
		return false
	}
	m.flow.log.Debug("dropped navigation from reset session",
		zap.String("screen", s.Title()),
		zap.String("screen_session_id", scoped.SessionID()),
		zap.String("session_id", m.flow.state.ID))
	return true
}

// reset discards the current session and shows the intro screen.
func (m AppModel) reset() tea.Cmd {
	prev := m.flow.state.ID
	session.Reset(m.flow.state)
	m.flow.log.Info("session reset",
		zap.String("previous_session_id", prev),
		zap.String("session_id", m.flow.state.ID))
	return m.router.Reset(m.flow.intro())
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	status := ""
	footerHints := []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	return err
}
