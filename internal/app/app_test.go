package app

import (
	"context"
	"strconv"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/router"
	"github.com/eduplay/eduplay/internal/session"
	"github.com/eduplay/eduplay/internal/store"
)

// collect runs cmd and returns the messages it produces. Commands that do
// not finish promptly (ticks) are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// send delivers msg and then any navigation messages it triggers.
func send(m AppModel, msg tea.Msg) AppModel {
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	for _, next := range collect(cmd) {
		switch next.(type) {
		case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
			m = send(m, next)
		}
	}
	return m
}

func typeText(m AppModel, text string) AppModel {
	for _, r := range text {
		m = send(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func newTestModel(t *testing.T, mem *store.Memory) (AppModel, *session.Session) {
	t.Helper()
	sched := clock.NewTea()
	toaster := NewToaster(sched, 3*time.Second)
	sess, err := session.Open(context.Background(), session.Options{
		KV:       mem,
		Awards:   mem,
		Notifier: toaster,
		Rand:     random.New(2),
		Sched:    sched,
		Games:    orchestrator.Config{TimeUnit: time.Second},
	})
	require.NoError(t, err)
	t.Cleanup(sess.Close)

	m := NewModel(sess, sched, toaster)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 50})
	return m, sess
}

func viewString(m AppModel) string {
	return m.View().Content
}

func TestNameEntryThenMathAnswerUpdatesHeader(t *testing.T) {
	m, sess := newTestModel(t, store.NewMemory())
	require.Equal(t, "", m.router.Active().Title(), "starts on the welcome screen")

	m = typeText(m, "Ava")
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "Dashboard", m.router.Active().Title())
	assert.Contains(t, viewString(m), "Welcome to EduPlay, Ava!")

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "🔢 Math Adventures", m.router.Active().Title())

	answer := sess.Games().Arithmetic().Current().Answer
	m = typeText(m, strconv.Itoa(answer))
	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, 5, sess.Score())
	view := viewString(m)
	assert.Contains(t, view, "5 pts")
	assert.Contains(t, view, "You earned 5 points!")
}

func TestEscLeavesGame(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Set(context.Background(), store.KeyPlayerName, "Leo"))
	m, sess := newTestModel(t, mem)
	require.Equal(t, "Dashboard", m.router.Active().Title())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())

	m = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "", string(sess.Games().Active()))
}

func TestTooSmallTerminal(t *testing.T) {
	m, _ := newTestModel(t, store.NewMemory())
	m = send(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, viewString(m), "Terminal too small")
}
