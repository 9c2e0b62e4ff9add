package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/router"
	"github.com/eduplay/eduplay/internal/screen"
	"github.com/eduplay/eduplay/internal/ui/components"
	"github.com/eduplay/eduplay/internal/ui/layout"
	"github.com/eduplay/eduplay/internal/ui/theme"
)

const (
	tickInterval = 400 * time.Millisecond
	maxNameLen   = 24
)

// sparkle frames cycle around the banner
var sparkleFrames = []string{"★", "✦", "✧"}

var features = []string{"🎮 Fun Games", "⭐ Earn Points", "🏆 Achievements", "⚡ Offline Play"}

type tickMsg time.Time

// Profile is the part of the session the welcome screen needs.
type Profile interface {
	SubmitName(ctx context.Context, name string) error
}

// WelcomeScreen asks for the player's name, then replaces itself with the
// screen produced by next.
type WelcomeScreen struct {
	profile      Profile
	next         func() screen.Screen
	input        components.TextInput
	tickCount    int
	errMsg       string
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New(profile Profile, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		profile: profile,
		next:    next,
		input:   components.NewTextInput("Enter your name...", false, maxNameLen),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start playing"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.input.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return w, w.submit()
		}
		w.errMsg = ""
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) submit() tea.Cmd {
	if w.transitioned {
		return nil
	}
	if err := w.profile.SubmitName(context.Background(), w.input.Value()); err != nil {
		w.errMsg = "Please enter your name to start!"
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	frame := w.tickCount % len(sparkleFrames)
	sparkle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(sparkleFrames[frame])
	sections = append(sections, sparkle+"  "+components.DefaultBanner(width)+"  "+sparkle)

	tagline := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Learn • Play • Win!")
	sections = append(sections, "", tagline)

	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Turn learning into an adventure with games that make you smarter!")
	sections = append(sections, sub, "")

	featureStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan)
	parts := make([]string, len(features))
	for i, f := range features {
		parts[i] = featureStyle.Render(f)
	}
	sections = append(sections, strings.Join(parts, "   "), "")

	cw := components.ContentWidth(width)
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Ready to Start?")
	form := prompt + "\n\n" + w.input.View()
	sections = append(sections, components.ArcadeCard(form, min(cw, 44)))

	if w.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(w.errMsg))
	} else {
		sections = append(sections, theme.Hint.Render("press Enter to start playing 🚀"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
