package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/screen"
	"github.com/eduplay/eduplay/internal/ui/theme"
)

// PlaceholderScreen is the "coming soon" screen for unreleased games.
type PlaceholderScreen struct {
	info game.Info
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen for info.
func New(info game.Info) *PlaceholderScreen {
	return &PlaceholderScreen{info: info}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(p.info.Emoji + " " + p.info.Title)

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("╌╌ Coming Soon ╌╌\n\nThis game is being built.\nCheck back later!")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title + "\n\n" + body)
}

func (p *PlaceholderScreen) Title() string {
	return p.info.Title
}
