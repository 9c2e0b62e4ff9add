package dashboard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/router"
	"github.com/eduplay/eduplay/internal/session"
	"github.com/eduplay/eduplay/internal/store"
)

func newTestDashboard(t *testing.T) (*DashboardScreen, *session.Session) {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()
	sess, err := session.Open(ctx, session.Options{
		KV:    mem,
		Rand:  random.New(1),
		Sched: clock.NewManual(),
		Games: orchestrator.Config{TimeUnit: time.Second},
	})
	require.NoError(t, err)
	require.NoError(t, sess.SubmitName(ctx, "Ava"))
	return New(sess), sess
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg
}

func TestEnterStartsSelectedGame(t *testing.T) {
	tests := []struct {
		downs int
		id    game.ID
		title string
	}{
		{0, game.Math, "🔢 Math Adventures"},
		{1, game.Spelling, "📝 Word Wizard"},
		{2, game.Memory, "🧠 Memory Master"},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			d, sess := newTestDashboard(t)
			for i := 0; i < tt.downs; i++ {
				d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
			}
			_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

			msg := pushed(t, cmd)
			assert.Equal(t, tt.title, msg.Screen.Title())
			assert.Equal(t, tt.id, sess.Games().Active())
		})
	}
}

func TestComingSoonOpensPlaceholder(t *testing.T) {
	d, sess := newTestDashboard(t)
	for i := 0; i < 3; i++ {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	msg := pushed(t, cmd)
	assert.Equal(t, "Puzzle Pro", msg.Screen.Title())
	assert.Equal(t, game.None, sess.Games().Active())
}

func TestViewShowsPlayerAndGames(t *testing.T) {
	d, _ := newTestDashboard(t)
	view := d.View(110, 40)
	assert.Contains(t, view, "Welcome back, Ava!")
	assert.Contains(t, view, "BEGINNER LEVEL")
	assert.Contains(t, view, "Math Adventures")
	assert.Contains(t, view, "Solve fun math problems")
}

func TestMascotFor(t *testing.T) {
	assert.Equal(t, MascotIdle, mascotFor(0))
	assert.Equal(t, MascotCelebrating, mascotFor(500))
}
