package orchestrator

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/random"
)

type recordingAwarder struct {
	awards []game.Award
	total  int
}

func (r *recordingAwarder) Award(_ context.Context, a game.Award) int {
	r.awards = append(r.awards, a)
	r.total += a.Points
	return r.total
}

func newTestOrchestrator(pairs int) (*Orchestrator, *clock.Manual, *recordingAwarder) {
	sched := clock.NewManual()
	aw := &recordingAwarder{}
	o := New(Config{TimeUnit: time.Second, PairCount: pairs}, random.New(7), sched, aw, nil, zerolog.Nop())
	return o, sched, aw
}

func TestSelect_Rejections(t *testing.T) {
	o, _, _ := newTestOrchestrator(6)
	require.NoError(t, o.Select(game.Math))

	err := o.Select("chess")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.Equal(t, game.Math, o.Active())

	for _, id := range []game.ID{game.Puzzle, game.Reading, game.Music} {
		err := o.Select(id)
		assert.ErrorIs(t, err, ErrComingSoon, "game %s", id)
		assert.Equal(t, game.Math, o.Active())
	}
	assert.NotNil(t, o.Arithmetic())
}

func TestRouting_NoActiveGame(t *testing.T) {
	o, _, _ := newTestOrchestrator(6)
	ctx := context.Background()

	_, err := o.SubmitArithmetic(ctx, "4")
	assert.ErrorIs(t, err, ErrNoActiveGame)
	_, err = o.SubmitSpelling(ctx, "HAPPY")
	assert.ErrorIs(t, err, ErrNoActiveGame)
	assert.ErrorIs(t, o.Speak(ctx), ErrNoActiveGame)
	_, err = o.Flip(0)
	assert.ErrorIs(t, err, ErrNoActiveGame)
	assert.ErrorIs(t, o.RestartMemory(), ErrNoActiveGame)

	require.NoError(t, o.Select(game.Spelling))
	_, err = o.SubmitArithmetic(ctx, "4")
	assert.ErrorIs(t, err, ErrNoActiveGame, "math routed while spelling runs")
}

func TestArithmetic_ForwardsEveryAward(t *testing.T) {
	o, sched, aw := newTestOrchestrator(6)
	ctx := context.Background()
	require.NoError(t, o.Select(game.Math))

	answer := o.Arithmetic().Current().Answer
	res, err := o.SubmitArithmetic(ctx, strconv.Itoa(answer))
	require.NoError(t, err)
	require.True(t, res.Correct)
	assert.Equal(t, 5, res.Points)

	sched.Advance(2 * time.Second)
	wrong := o.Arithmetic().Current().Answer + 1
	res, err = o.SubmitArithmetic(ctx, strconv.Itoa(wrong))
	require.NoError(t, err)
	require.False(t, res.Correct)

	require.Len(t, aw.awards, 2)
	assert.Equal(t, game.Award{Game: game.Math, Points: 5}, aw.awards[0])
	assert.Equal(t, game.Award{Game: game.Math, Points: 0}, aw.awards[1])
}

func TestArithmetic_RejectedInputNotForwarded(t *testing.T) {
	o, _, aw := newTestOrchestrator(6)
	require.NoError(t, o.Select(game.Math))

	res, err := o.SubmitArithmetic(context.Background(), "twelve")
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Empty(t, aw.awards)
}

func TestSpelling_ForwardsAward(t *testing.T) {
	o, _, aw := newTestOrchestrator(6)
	require.NoError(t, o.Select(game.Spelling))
	require.NoError(t, o.Speak(context.Background()))

	word := o.Spelling().Current().Word
	res, err := o.SubmitSpelling(context.Background(), word.Word)
	require.NoError(t, err)
	require.True(t, res.Correct)

	require.Len(t, aw.awards, 1)
	assert.Equal(t, game.Spelling, aw.awards[0].Game)
	assert.Equal(t, word.Tier*5, aw.awards[0].Points)
}

func TestSwitching_StopsPreviousEngine(t *testing.T) {
	o, sched, _ := newTestOrchestrator(6)
	ctx := context.Background()

	require.NoError(t, o.Select(game.Math))
	math := o.Arithmetic()
	_, err := o.SubmitArithmetic(ctx, strconv.Itoa(math.Current().Answer))
	require.NoError(t, err)
	before := math.Current()

	require.NoError(t, o.Select(game.Spelling))
	assert.Nil(t, o.Arithmetic())
	assert.Equal(t, game.Spelling, o.Active())

	sched.Advance(5 * time.Second)
	assert.Equal(t, before, math.Current(), "stopped engine must not advance")
	assert.True(t, math.Grading())
}

func TestExit(t *testing.T) {
	o, _, _ := newTestOrchestrator(6)
	require.NoError(t, o.Select(game.Memory))
	o.Exit()
	assert.Equal(t, game.None, o.Active())
	assert.Nil(t, o.Memory())
	o.Exit()
	assert.Equal(t, game.None, o.Active())
}

func TestMemory_CompletionForwardsFinalScore(t *testing.T) {
	o, sched, aw := newTestOrchestrator(1)
	require.NoError(t, o.Select(game.Memory))

	res, err := o.Flip(0)
	require.NoError(t, err)
	require.True(t, res.Accepted)
	res, err = o.Flip(1)
	require.NoError(t, err)
	require.NotNil(t, res.Resolution)
	require.True(t, res.Resolution.Matched)
	assert.Empty(t, aw.awards, "award arrives with the deferred resolution")

	sched.Advance(500 * time.Millisecond)

	require.Len(t, aw.awards, 1)
	// 25 base + (20-1)*2 move bonus + 60 time bonus.
	assert.Equal(t, game.Award{Game: game.Memory, Points: 123}, aw.awards[0])
}

func TestMemory_ReselectDropsPendingResolution(t *testing.T) {
	o, sched, aw := newTestOrchestrator(1)
	require.NoError(t, o.Select(game.Memory))
	_, _ = o.Flip(0)
	_, _ = o.Flip(1)

	require.NoError(t, o.Select(game.Memory))
	sched.Advance(2 * time.Second)

	assert.Empty(t, aw.awards)
	for _, tok := range o.Memory().Tokens() {
		assert.False(t, tok.FaceUp)
		assert.False(t, tok.Matched)
	}
}

func TestRestartMemory(t *testing.T) {
	o, _, _ := newTestOrchestrator(6)
	require.NoError(t, o.Select(game.Memory))
	_, _ = o.Flip(0)
	require.NoError(t, o.RestartMemory())
	assert.Empty(t, o.Memory().Pending())
	assert.Zero(t, o.Memory().Moves())
}
