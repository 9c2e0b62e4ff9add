// Package memorygame is the screen for the card-matching game.
package memorygame

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/memory"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/screen"
	"github.com/eduplay/eduplay/internal/ui/components"
	"github.com/eduplay/eduplay/internal/ui/layout"
	"github.com/eduplay/eduplay/internal/ui/theme"
)

// Columns is the width of the card grid.
const Columns = 4

// MemoryScreen renders the board as a grid with a movable cursor.
type MemoryScreen struct {
	games  *orchestrator.Orchestrator
	cursor int
}

var _ screen.Screen = (*MemoryScreen)(nil)
var _ screen.KeyHintProvider = (*MemoryScreen)(nil)
var _ screen.Closer = (*MemoryScreen)(nil)

// New creates a MemoryScreen. The memory game must already be selected.
func New(games *orchestrator.Orchestrator) *MemoryScreen {
	return &MemoryScreen{games: games}
}

func (s *MemoryScreen) Init() tea.Cmd {
	return nil
}

func (s *MemoryScreen) Title() string {
	return "🧠 Memory Master"
}

func (s *MemoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Flip"},
		{Key: "R", Description: "New board"},
		{Key: "Esc", Description: "Back"},
	}
}

// Close stops the game when the screen leaves the stack.
func (s *MemoryScreen) Close() {
	s.games.Exit()
}

// Cursor returns the id of the highlighted token.
func (s *MemoryScreen) Cursor() int {
	return s.cursor
}

func (s *MemoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	eng := s.games.Memory()
	if eng == nil {
		return s, nil
	}
	n := len(eng.Tokens())

	switch kmsg.String() {
	case "left", "h":
		if s.cursor%Columns > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor%Columns < Columns-1 && s.cursor+1 < n {
			s.cursor++
		}
	case "up", "k":
		if s.cursor-Columns >= 0 {
			s.cursor -= Columns
		}
	case "down", "j":
		if s.cursor+Columns < n {
			s.cursor += Columns
		}
	case "enter", "space", " ":
		_, _ = s.games.Flip(s.cursor)
	case "r", "R":
		_ = s.games.RestartMemory()
		s.cursor = 0
	}
	return s, nil
}

func (s *MemoryScreen) View(width, height int) string {
	eng := s.games.Memory()
	if eng == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var sections []string

	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Moves: %d | Matches: %d/%d | Time: %s",
			eng.Moves(), eng.Matches(), eng.PairCount(), memory.FormatElapsed(eng.Elapsed())))
	sections = append(sections, stats)

	if eng.PairCount() > 0 {
		progress := float64(eng.Matches()) / float64(eng.PairCount())
		sections = append(sections, components.NewProgressBar("Pairs", progress, false, cw).View())
	}

	if score := eng.Score(); eng.State() == memory.Completed && score != nil {
		sections = append(sections, renderCompletion(eng, *score, cw))
	}

	sections = append(sections, s.renderGrid(eng.Tokens()))

	tips := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("🎯 Find matching pairs. Remember their positions!\n⚡ Fewer moves and faster time = more points!")
	sections = append(sections, tips)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *MemoryScreen) renderGrid(tokens []memory.Token) string {
	var rows []string
	for start := 0; start < len(tokens); start += Columns {
		end := min(start+Columns, len(tokens))
		cards := make([]string, 0, Columns)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(tokens[i], i == s.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func renderCard(tok memory.Token, focused bool) string {
	var style lipgloss.Style
	face := "❓"
	switch {
	case tok.Matched:
		style = theme.CardMatched
		face = tok.Symbol.Glyph()
	case tok.FaceUp:
		style = theme.CardFaceUp
		face = tok.Symbol.Glyph()
	default:
		style = theme.CardHidden
	}
	if focused {
		style = style.BorderForeground(theme.ArcadeYellow).Bold(true)
	}
	return style.Render(face)
}

func renderCompletion(eng *memory.Engine, score memory.Score, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("🎉 Congratulations!")
	summary := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("You completed the memory game in %d moves and %s!",
			eng.Moves(), memory.FormatElapsed(eng.Elapsed())))
	breakdown := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).
		Render(fmt.Sprintf("Base Points: %d   Move Bonus: %d   Time Bonus: %d",
			score.Base, score.MoveBonus, score.TimeBonus))
	total := theme.Correct.Render(fmt.Sprintf("Total: +%d points", score.Total))
	again := theme.Hint.Render("Press R to play again")
	return components.ArcadeCard(strings.Join([]string{title, summary, breakdown, total, again}, "\n"), cw)
}
