package memorygame

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/memory"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/scoring"
	"github.com/eduplay/eduplay/internal/store"
)

func newTestScreen(t *testing.T, pairs int) (*MemoryScreen, *orchestrator.Orchestrator, *scoring.Accumulator, *clock.Manual) {
	t.Helper()
	sched := clock.NewManual()
	acc := scoring.New(context.Background(), store.NewMemory(), scoring.Options{})
	games := orchestrator.New(orchestrator.Config{TimeUnit: time.Second, PairCount: pairs}, random.New(9), sched, acc, nil, zerolog.Nop())
	require.NoError(t, games.Select(game.Memory))
	return New(games), games, acc, sched
}

func press(s *MemoryScreen, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		s.Update(k)
	}
}

var (
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyR     = tea.KeyPressMsg{Code: 'r', Text: "r"}
)

func TestCursorStaysOnBoard(t *testing.T) {
	s, _, _, _ := newTestScreen(t, 6) // 12 tokens, 3 rows

	press(s, keyLeft, keyUp)
	assert.Equal(t, 0, s.Cursor())

	press(s, keyRight, keyRight, keyRight, keyRight)
	assert.Equal(t, 3, s.Cursor(), "cursor stops at the row end")

	press(s, keyDown, keyDown, keyDown)
	assert.Equal(t, 11, s.Cursor(), "cursor stops at the last row")

	press(s, keyUp, keyLeft)
	assert.Equal(t, 6, s.Cursor())
}

func TestEnterFlipsToken(t *testing.T) {
	s, games, _, _ := newTestScreen(t, 6)
	press(s, keyRight, keyEnter)
	assert.Equal(t, []int{1}, games.Memory().Pending())
	assert.True(t, games.Memory().Tokens()[1].FaceUp)
}

func TestClearingBoardAwardsScore(t *testing.T) {
	s, games, acc, sched := newTestScreen(t, 1)

	press(s, keyEnter, keyRight, keyEnter)
	sched.Advance(500 * time.Millisecond)

	assert.Equal(t, 123, acc.Total())
	assert.Contains(t, s.View(100, 40), "Congratulations")
	assert.Equal(t, memory.Completed, games.Memory().State())
}

func TestRestartKey(t *testing.T) {
	s, games, _, _ := newTestScreen(t, 6)
	press(s, keyRight, keyEnter, keyR)
	assert.Equal(t, 0, s.Cursor())
	assert.Empty(t, games.Memory().Pending())
}

func TestViewShowsStats(t *testing.T) {
	s, _, _, _ := newTestScreen(t, 6)
	view := s.View(100, 40)
	assert.Contains(t, view, "Moves: 0")
	assert.Contains(t, view, "Matches: 0/6")
	assert.Contains(t, view, "Time: 0:00")
}
