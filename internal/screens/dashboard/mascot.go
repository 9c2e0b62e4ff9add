package dashboard

import (
	"charm.land/lipgloss/v2"

	"github.com/eduplay/eduplay/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes from celebrateScore up
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ABC │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ABC │
└─╥═╥─┘
  ╚═╝`

// celebrateScore is the first score that gets the celebrating mascot.
const celebrateScore = 500

// mascotFor picks the mascot for a score.
func mascotFor(score int) MascotVariant {
	if score >= celebrateScore {
		return MascotCelebrating
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary
	if variant == MascotCelebrating {
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
