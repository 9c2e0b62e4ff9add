// Package spelling implements the word-unscrambling mini-game.
package spelling

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/speech"
)

const (
	// PointsPerTier is multiplied by the word's tier.
	PointsPerTier = 5

	// StreakBonus is awarded per answer already in the streak.
	StreakBonus = 2

	// AdvanceDelay is the number of time-units before the next round.
	AdvanceDelay = 3
)

// Round is one word presented to the player.
type Round struct {
	Word      Word
	Scrambled []rune
}

// Result is the outcome of a submission. Accepted is false when the
// submission was ignored.
type Result struct {
	Accepted    bool
	Correct     bool
	Points      int
	StreakAfter int
	Answer      string
}

// Options configures an Engine.
type Options struct {
	Speaker    speech.Speaker
	SpeechRate float64
	Logger     zerolog.Logger
}

// Engine holds the state of one spelling game.
type Engine struct {
	rng      random.Source
	sched    clock.Scheduler
	timeUnit time.Duration
	words    []Word
	opts     Options

	generation uint64
	round      Round
	streak     int
	completed  int
	grading    bool
	last       *Result
}

// New creates an engine over the static catalog and starts the first round.
func New(rng random.Source, sched clock.Scheduler, timeUnit time.Duration, opts Options) *Engine {
	if opts.SpeechRate <= 0 {
		opts.SpeechRate = speech.DefaultRate
	}
	e := &Engine{
		rng:      rng,
		sched:    sched,
		timeUnit: timeUnit,
		words:    Catalog(),
		opts:     opts,
	}
	e.NewRound()
	return e
}

// NewRound picks a word, scrambles it and drops any pending advance.
func (e *Engine) NewRound() Round {
	e.generation++
	e.grading = false
	e.last = nil

	w := e.words[e.rng.Intn(len(e.words))]
	e.round = Round{Word: w, Scrambled: Scramble(e.rng, w.Word)}
	return e.round
}

// Submit grades candidate after upper-casing and trimming it. Blank input
// is ignored, as is anything submitted while the previous answer is still
// being shown.
func (e *Engine) Submit(candidate string) Result {
	answer := strings.ToUpper(strings.TrimSpace(candidate))
	if answer == "" || e.grading {
		return Result{}
	}

	res := Result{Accepted: true, Answer: e.round.Word.Word}
	if answer == e.round.Word.Word {
		res.Correct = true
		res.Points = e.round.Word.Tier*PointsPerTier + e.streak*StreakBonus
		e.streak++
	} else {
		e.streak = 0
	}
	res.StreakAfter = e.streak

	e.completed++
	e.grading = true
	e.last = &res

	gen := e.generation
	e.sched.Schedule(AdvanceDelay*e.timeUnit, func() {
		if e.generation != gen {
			return
		}
		e.NewRound()
	})
	return res
}

// Speak reads the current word aloud. Missing or failing speech is ignored.
func (e *Engine) Speak(ctx context.Context) {
	if e.opts.Speaker == nil {
		return
	}
	if err := e.opts.Speaker.Speak(ctx, e.round.Word.Word, e.opts.SpeechRate); err != nil {
		e.opts.Logger.Debug().Err(err).Msg("speak word")
	}
}

// Stop invalidates any pending advance.
func (e *Engine) Stop() {
	e.generation++
}

func (e *Engine) Current() Round      { return e.round }
func (e *Engine) Streak() int         { return e.streak }
func (e *Engine) Completed() int      { return e.completed }
func (e *Engine) Grading() bool       { return e.grading }
func (e *Engine) LastResult() *Result { return e.last }
