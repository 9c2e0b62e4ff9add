// Package mathgame is the screen for the arithmetic game.
package mathgame

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/arithmetic"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/screen"
	"github.com/eduplay/eduplay/internal/ui/components"
	"github.com/eduplay/eduplay/internal/ui/layout"
	"github.com/eduplay/eduplay/internal/ui/theme"
)

// MathScreen shows the current challenge and grades typed answers.
type MathScreen struct {
	games *orchestrator.Orchestrator
	input components.TextInput
}

var _ screen.Screen = (*MathScreen)(nil)
var _ screen.KeyHintProvider = (*MathScreen)(nil)
var _ screen.Closer = (*MathScreen)(nil)

// New creates a MathScreen. The math game must already be selected.
func New(games *orchestrator.Orchestrator) *MathScreen {
	return &MathScreen{
		games: games,
		input: components.NewTextInput("?", true, 4),
	}
}

func (s *MathScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *MathScreen) Title() string {
	return "🔢 Math Adventures"
}

func (s *MathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check answer"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close stops the game when the screen leaves the stack.
func (s *MathScreen) Close() {
	s.games.Exit()
}

func (s *MathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		s.submit()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *MathScreen) submit() {
	if strings.TrimSpace(s.input.Value()) == "" {
		return
	}
	res, err := s.games.SubmitArithmetic(context.Background(), s.input.Value())
	if err != nil || !res.Accepted {
		return
	}
	s.input.Reset()
}

func (s *MathScreen) View(width, height int) string {
	eng := s.games.Arithmetic()
	if eng == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var sections []string

	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Questions completed: %d | Streak: %d🔥", eng.Completed(), eng.Streak()))
	sections = append(sections, stats)

	question := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(eng.Current().String())
	answer := "Answer: " + s.input.View()
	sections = append(sections, components.ArcadeCard(question+"\n\n"+answer, cw))

	if eng.Grading() && eng.LastResult() != nil {
		sections = append(sections, components.Feedback(feedbackText(*eng.LastResult()), eng.LastResult().Correct, cw))
	}

	tips := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("💪 Keep going!   ⭐ Each correct answer = 5+ points")
	sections = append(sections, tips)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func feedbackText(res arithmetic.Result) string {
	if !res.Correct {
		return fmt.Sprintf("💪 Not quite! The answer is %d", res.Answer)
	}
	msg := fmt.Sprintf("🎉 Great job! Correct! +%d points", res.Points)
	if res.StreakAfter > 1 {
		msg += fmt.Sprintf(" (%dx streak!)", res.StreakAfter)
	}
	return msg
}
