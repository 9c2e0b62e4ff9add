// Package spellgame is the screen for the spelling game.
package spellgame

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/screen"
	"github.com/eduplay/eduplay/internal/spelling"
	"github.com/eduplay/eduplay/internal/ui/components"
	"github.com/eduplay/eduplay/internal/ui/layout"
	"github.com/eduplay/eduplay/internal/ui/theme"
)

// SpellScreen shows the scrambled word and grades typed answers.
type SpellScreen struct {
	games *orchestrator.Orchestrator
	input components.TextInput
}

var _ screen.Screen = (*SpellScreen)(nil)
var _ screen.KeyHintProvider = (*SpellScreen)(nil)
var _ screen.Closer = (*SpellScreen)(nil)

// New creates a SpellScreen. The spelling game must already be selected.
func New(games *orchestrator.Orchestrator) *SpellScreen {
	return &SpellScreen{
		games: games,
		input: components.NewTextInput("Type the word...", false, 16),
	}
}

func (s *SpellScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SpellScreen) Title() string {
	return "📝 Word Wizard"
}

func (s *SpellScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check spelling"},
		{Key: "Ctrl+S", Description: "Hear word"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close stops the game when the screen leaves the stack.
func (s *SpellScreen) Close() {
	s.games.Exit()
}

func (s *SpellScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			s.submit()
			return s, nil
		case "ctrl+s":
			_ = s.games.Speak(context.Background())
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SpellScreen) submit() {
	res, err := s.games.SubmitSpelling(context.Background(), s.input.Value())
	if err != nil || !res.Accepted {
		return
	}
	s.input.Reset()
}

func (s *SpellScreen) View(width, height int) string {
	eng := s.games.Spelling()
	if eng == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	round := eng.Current()

	var sections []string

	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Words completed: %d | Streak: %d🔥", eng.Completed(), eng.Streak()))
	sections = append(sections, stats)

	tier := theme.Badge.Render(round.Word.TierLabel())
	label := lipgloss.NewStyle().Foreground(theme.Text).Render("Unscramble these letters:")
	tiles := renderTiles(round.Scrambled)
	hint := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("Hint: " + round.Word.Hint)
	answer := "Answer: " + s.input.View()
	card := tier + "\n\n" + label + "\n\n" + tiles + "\n\n" + hint + "\n\n" + answer
	sections = append(sections, components.ArcadeCard(card, cw))

	if eng.Grading() && eng.LastResult() != nil {
		sections = append(sections, components.Feedback(feedbackText(*eng.LastResult()), eng.LastResult().Correct, cw))
	}

	tips := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("🎯 Harder words = more points!   ⭐ Build streaks for bonus points")
	sections = append(sections, tips)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderTiles(letters []rune) string {
	tile := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Bold(true).
		Padding(0, 1)
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = tile.Render(string(r))
	}
	return strings.Join(parts, " ")
}

func feedbackText(res spelling.Result) string {
	if !res.Correct {
		return "💪 Not quite! The correct spelling is: " + res.Answer
	}
	msg := fmt.Sprintf("🎉 Excellent spelling! +%d points", res.Points)
	if res.StreakAfter > 1 {
		msg += fmt.Sprintf(" (%dx streak!)", res.StreakAfter)
	}
	return msg
}
