package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/ui/theme"
)

const bannerArt = ` ███████╗██████╗ ██╗   ██╗██████╗ ██╗      █████╗ ██╗   ██╗
 ██╔════╝██╔══██╗██║   ██║██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝
 █████╗  ██║  ██║██║   ██║██████╔╝██║     ███████║ ╚████╔╝
 ██╔══╝  ██║  ██║██║   ██║██╔═══╝ ██║     ██╔══██║  ╚██╔╝
 ███████╗██████╔╝╚██████╔╝██║     ███████╗██║  ██║   ██║
 ╚══════╝╚═════╝  ╚═════╝ ╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝`

const bannerCompact = "E · D · U · P · L · A · Y"

// bannerWidth is the column count of bannerArt.
const bannerWidth = 60

// Banner returns the EDUPLAY title in the given color. Uses a compact
// fallback when width cannot fit the block letters.
func Banner(width int, c color.Color) string {
	style := lipgloss.NewStyle().
		Foreground(c).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// DefaultBanner renders the banner in the primary color.
func DefaultBanner(width int) string {
	return Banner(width, theme.Primary)
}
