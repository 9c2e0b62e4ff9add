package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/router"
	"github.com/eduplay/eduplay/internal/screen"
	"github.com/eduplay/eduplay/internal/screens/dashboard"
	"github.com/eduplay/eduplay/internal/screens/welcome"
	"github.com/eduplay/eduplay/internal/session"
	"github.com/eduplay/eduplay/internal/ui/components"
	"github.com/eduplay/eduplay/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	sched  *clock.Tea
	toasts *Toaster
	width  int
	height int
}

// NewModel creates the root model. Players without a stored name start on
// the welcome screen, everyone else on the dashboard.
func NewModel(sess *session.Session, sched *clock.Tea, toasts *Toaster) AppModel {
	toDashboard := func() screen.Screen { return dashboard.New(sess) }

	var first screen.Screen
	if sess.HasName() {
		first = toDashboard()
	} else {
		first = welcome.New(sess, toDashboard)
	}

	return AppModel{
		router: router.New(first),
		sess:   sess,
		sched:  sched,
		toasts: toasts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.sched.Flush())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clock.FiredMsg:
		m.sched.Fire(msg)
		return m, m.sched.Flush()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.sched.Flush())
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sess.Name(), m.sess.Score(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	toasts := m.renderToasts()

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if toasts != "" {
		contentHeight -= lipgloss.Height(toasts)
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if toasts != "" {
		content = toasts + "\n" + content
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) renderToasts() string {
	active := m.toasts.Active()
	if len(active) == 0 {
		return ""
	}
	parts := make([]string, len(active))
	for i, n := range active {
		parts[i] = components.Toast(n.Title, n.Detail, m.width)
	}
	return strings.Join(parts, "\n")
}

// Run starts the Bubble Tea program.
func Run(sess *session.Session, sched *clock.Tea, toasts *Toaster) error {
	p := tea.NewProgram(NewModel(sess, sched, toasts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
