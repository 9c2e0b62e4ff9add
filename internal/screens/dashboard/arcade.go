package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/scoring"
	"github.com/eduplay/eduplay/internal/ui/components"
	"github.com/eduplay/eduplay/internal/ui/theme"
)

// renderGreeting returns the welcome line above the stats.
func renderGreeting(name string, cw int) string {
	title := "Choose Your Adventure!"
	if name != "" {
		title = fmt.Sprintf("Welcome back, %s! 👋", name)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(title) + "\n" +
		lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Pick a game and start earning points while learning! 🌟")
}

// renderStatsBar renders the score, level and catalog counts in a
// double-bordered box matching content width.
func renderStatsBar(score int, catalog []game.Info, cw int, compact bool) string {
	lvl := scoring.LevelFor(score)
	available := 0
	for _, info := range catalog {
		if !info.ComingSoon {
			available++
		}
	}

	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	gameStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(lvl.Emoji+lvl.Name),
			scoreStyle.Render(fmt.Sprintf("⭐%d", score)),
			gameStyle.Render(fmt.Sprintf("🎮%d/%d", available, len(catalog))),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("%s %s LEVEL", lvl.Emoji, strings.ToUpper(lvl.Name))),
			scoreStyle.Render(fmt.Sprintf("⭐ %d POINTS", score)),
			gameStyle.Render(fmt.Sprintf("🎮 %d OF %d GAMES", available, len(catalog))),
		)
		label := "Champion!"
		if lvl.Next > 0 {
			label = fmt.Sprintf("Next: %d pts", lvl.Next)
		}
		bar := components.NewProgressBar(label, lvl.Progress(score), true, cw-6)
		stats += "\n" + bar.View()
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderArcadeMenu renders each menu item as a fixed-width button.
// Coming-soon entries stay selectable but are dimmed and tagged.
func renderArcadeMenu(items []string, selected int, cw int, soon map[int]bool) string {
	var buttons []string
	for i, label := range items {
		if soon[i] && i != selected {
			buttons = append(buttons, lipgloss.NewStyle().
				Width(buttonWidth).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Border).
				Padding(0, 1).
				Render(label+" · soon"))
			continue
		}
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, soon map[int]bool) string {
	var lines []string
	for i, label := range items {
		if soon[i] {
			label += " · soon"
		}
		var line string
		switch {
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		case soon[i]:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderGameCard describes the highlighted game.
func renderGameCard(info game.Info, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(info.Emoji + " " + info.Title)
	if info.ComingSoon {
		title += "  " + theme.Badge.Render("Coming Soon")
	}
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(info.Description)
	meta := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).
		Render(fmt.Sprintf("Difficulty: %s   %s", info.Difficulty, info.Points))
	return components.ArcadeCard(title+"\n"+desc+"\n"+meta, cw)
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + msg)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
