package dashboard

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/router"
	"github.com/eduplay/eduplay/internal/screen"
	"github.com/eduplay/eduplay/internal/screens/mathgame"
	"github.com/eduplay/eduplay/internal/screens/memorygame"
	"github.com/eduplay/eduplay/internal/screens/placeholder"
	"github.com/eduplay/eduplay/internal/screens/spellgame"
	"github.com/eduplay/eduplay/internal/session"
	"github.com/eduplay/eduplay/internal/ui/components"
	"github.com/eduplay/eduplay/internal/ui/layout"
)

// DashboardScreen lists the games and the player's progress.
type DashboardScreen struct {
	sess    *session.Session
	catalog []game.Info
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen for sess.
func New(sess *session.Session) *DashboardScreen {
	d := &DashboardScreen{
		sess:    sess,
		catalog: game.Catalog(),
	}

	items := make([]components.MenuItem, 0, len(d.catalog)+1)
	for _, info := range d.catalog {
		items = append(items, components.MenuItem{
			Label:  info.Title,
			Action: func() tea.Cmd { return d.open(info) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "EXIT GAME",
		Action: func() tea.Cmd { return tea.Quit },
	})
	d.menu = components.NewMenu(items)
	return d
}

// open starts info's game and pushes its screen. Games that are not
// ready yet get the placeholder.
func (d *DashboardScreen) open(info game.Info) tea.Cmd {
	games := d.sess.Games()
	err := games.Select(info.ID)
	switch {
	case errors.Is(err, orchestrator.ErrComingSoon):
		return push(placeholder.New(info))
	case err != nil:
		d.errMsg = err.Error()
		return nil
	}
	d.errMsg = ""

	switch info.ID {
	case game.Math:
		return push(mathgame.New(games))
	case game.Spelling:
		return push(spellgame.New(games))
	case game.Memory:
		return push(memorygame.New(games))
	}
	return nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

// selectedInfo returns the highlighted game, or false on the exit entry.
func (d *DashboardScreen) selectedInfo() (game.Info, bool) {
	if d.menu.Selected < len(d.catalog) {
		return d.catalog[d.menu.Selected], true
	}
	return game.Info{}, false
}

func (d *DashboardScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderGreeting(d.sess.Name(), cw))
	sections = append(sections, renderStatsBar(d.sess.Score(), d.catalog, cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(d.sess.Score()), cw))
	}

	labels := make([]string, len(d.menu.Items))
	soon := make(map[int]bool)
	for i, item := range d.menu.Items {
		labels[i] = item.Label
		if i < len(d.catalog) && d.catalog[i].ComingSoon {
			soon[i] = true
		}
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(labels, d.menu.Selected, cw, soon))
	} else {
		sections = append(sections, renderArcadeMenu(labels, d.menu.Selected, cw, soon))
	}

	if info, ok := d.selectedInfo(); ok {
		sections = append(sections, renderGameCard(info, cw))
	}
	if d.errMsg != "" {
		sections = append(sections, renderError(d.errMsg, cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}
