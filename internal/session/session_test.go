package session

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/notify"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/store"
)

func openTestSession(t *testing.T, mem *store.Memory, rec *notify.Recorder) (*Session, *clock.Manual) {
	t.Helper()
	sched := clock.NewManual()
	s, err := Open(context.Background(), Options{
		KV:       mem,
		Awards:   mem,
		Notifier: rec,
		Rand:     random.New(3),
		Sched:    sched,
		Games:    orchestrator.Config{TimeUnit: time.Second},
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, sched
}

func TestOpen_RequiresKV(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	assert.Error(t, err)
}

func TestOpen_LoadsProfile(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Set(ctx, store.KeyPlayerName, "Mia"))
	require.NoError(t, mem.Set(ctx, store.KeyScore, "30"))

	s, _ := openTestSession(t, mem, &notify.Recorder{})
	assert.True(t, s.HasName())
	assert.Equal(t, "Mia", s.Name())
	assert.Equal(t, 30, s.Score())
	assert.NotEmpty(t, s.ID())
}

func TestSubmitName(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	rec := &notify.Recorder{}
	s, _ := openTestSession(t, mem, rec)
	require.False(t, s.HasName())

	assert.ErrorIs(t, s.SubmitName(ctx, "   "), ErrEmptyName)
	assert.False(t, s.HasName())
	assert.Empty(t, rec.Notifications)

	require.NoError(t, s.SubmitName(ctx, "  Leo "))
	assert.Equal(t, "Leo", s.Name())

	stored, ok, err := mem.Get(ctx, store.KeyPlayerName)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Leo", stored)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Welcome to EduPlay, Leo! 🎮", last.Title)
	assert.Equal(t, "Start playing games to earn points!", last.Detail)
}

func TestFirstCorrectAnswerScenario(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	rec := &notify.Recorder{}
	s, _ := openTestSession(t, mem, rec)

	require.NoError(t, s.SubmitName(ctx, "Ava"))
	require.Len(t, rec.Notifications, 1)
	assert.Equal(t, 0, s.Score())

	require.NoError(t, s.Games().Select(game.Math))
	answer := s.Games().Arithmetic().Current().Answer
	res, err := s.Games().SubmitArithmetic(ctx, strconv.Itoa(answer))
	require.NoError(t, err)
	require.True(t, res.Correct)

	assert.Equal(t, 5, s.Score())
	stored, _, _ := mem.Get(ctx, store.KeyScore)
	assert.Equal(t, "5", stored)

	require.Len(t, rec.Notifications, 2)
	assert.Equal(t, "🎉 You earned 5 points!", rec.Notifications[1].Title)
	assert.Equal(t, "Total score: 5", rec.Notifications[1].Detail)

	awards, err := mem.RecentAwards(ctx, 0)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, s.ID(), awards[0].SessionID)
}

func TestWrongAnswerDoesNotNotify(t *testing.T) {
	ctx := context.Background()
	rec := &notify.Recorder{}
	s, _ := openTestSession(t, store.NewMemory(), rec)

	require.NoError(t, s.Games().Select(game.Math))
	wrong := s.Games().Arithmetic().Current().Answer + 1
	_, err := s.Games().SubmitArithmetic(ctx, strconv.Itoa(wrong))
	require.NoError(t, err)

	assert.Empty(t, rec.Notifications)
	assert.Equal(t, 0, s.Score())
}
