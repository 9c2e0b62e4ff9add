package components

import (
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/ui/theme"
)

// Toast renders a notification box with a bold title and a detail line.
func Toast(title, detail string, width int) string {
	body := theme.ToastTitle.Render(title)
	if detail != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(detail)
	}
	box := theme.Toast.Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
}
