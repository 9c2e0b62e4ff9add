// Package orchestrator runs at most one mini-game at a time and forwards
// every award it produces to the score accumulator.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduplay/eduplay/internal/arithmetic"
	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/memory"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/speech"
	"github.com/eduplay/eduplay/internal/spelling"
)

var (
	// ErrNoActiveGame is returned when a gameplay call targets a game that
	// is not running.
	ErrNoActiveGame = errors.New("orchestrator: game not active")

	// ErrComingSoon is returned when selecting a game that is not playable yet.
	ErrComingSoon = errors.New("orchestrator: game coming soon")

	// ErrUnknownGame is returned when selecting an id missing from the catalog.
	ErrUnknownGame = errors.New("orchestrator: unknown game")
)

// Awarder receives every award produced by an engine.
type Awarder interface {
	Award(ctx context.Context, award game.Award) int
}

// Config holds the engine parameters.
type Config struct {
	TimeUnit   time.Duration
	PairCount  int
	SpeechRate float64
}

// Orchestrator owns the active engine.
type Orchestrator struct {
	cfg     Config
	rng     random.Source
	sched   clock.Scheduler
	awarder Awarder
	speaker speech.Speaker
	logger  zerolog.Logger

	active     game.ID
	arithmetic *arithmetic.Engine
	spelling   *spelling.Engine
	memory     *memory.Engine
}

// New creates an orchestrator with no active game.
func New(cfg Config, rng random.Source, sched clock.Scheduler, awarder Awarder, speaker speech.Speaker, logger zerolog.Logger) *Orchestrator {
	if cfg.TimeUnit <= 0 {
		cfg.TimeUnit = time.Second
	}
	if cfg.PairCount == 0 {
		cfg.PairCount = memory.DefaultPairs
	}
	if speaker == nil {
		speaker = speech.Nop{}
	}
	return &Orchestrator{
		cfg:     cfg,
		rng:     rng,
		sched:   sched,
		awarder: awarder,
		speaker: speaker,
		logger:  logger,
	}
}

// Active returns the running game, or game.None.
func (o *Orchestrator) Active() game.ID {
	return o.active
}

// Select starts a fresh instance of id, discarding whatever was running.
func (o *Orchestrator) Select(id game.ID) error {
	info, ok := game.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	if info.ComingSoon {
		return fmt.Errorf("%w: %s", ErrComingSoon, info.Title)
	}

	o.stop()
	switch id {
	case game.Math:
		o.arithmetic = arithmetic.New(o.rng, o.sched, o.cfg.TimeUnit)
	case game.Spelling:
		o.spelling = spelling.New(o.rng, o.sched, o.cfg.TimeUnit, spelling.Options{
			Speaker:    o.speaker,
			SpeechRate: o.cfg.SpeechRate,
			Logger:     o.logger,
		})
	case game.Memory:
		o.memory = memory.New(o.rng, o.sched, o.cfg.TimeUnit, o.cfg.PairCount)
		o.memory.OnComplete(func(s memory.Score) {
			o.award(context.Background(), game.Memory, s.Total)
		})
	}
	o.active = id
	o.logger.Debug().Str("game", string(id)).Msg("game selected")
	return nil
}

// Exit stops the running game and returns to the dashboard.
func (o *Orchestrator) Exit() {
	if o.active == game.None {
		return
	}
	o.logger.Debug().Str("game", string(o.active)).Msg("game exited")
	o.stop()
	o.active = game.None
}

func (o *Orchestrator) stop() {
	if o.arithmetic != nil {
		o.arithmetic.Stop()
		o.arithmetic = nil
	}
	if o.spelling != nil {
		o.spelling.Stop()
		o.spelling = nil
	}
	if o.memory != nil {
		o.memory.Stop()
		o.memory = nil
	}
}

func (o *Orchestrator) award(ctx context.Context, id game.ID, points int) {
	if o.awarder == nil {
		return
	}
	o.awarder.Award(ctx, game.Award{Game: id, Points: points})
}

// SubmitArithmetic grades a typed answer for the math game.
func (o *Orchestrator) SubmitArithmetic(ctx context.Context, input string) (arithmetic.Result, error) {
	if o.arithmetic == nil {
		return arithmetic.Result{}, ErrNoActiveGame
	}
	res := o.arithmetic.SubmitText(input)
	if res.Accepted {
		o.award(ctx, game.Math, res.Points)
	}
	return res, nil
}

// SubmitSpelling grades a typed word for the spelling game.
func (o *Orchestrator) SubmitSpelling(ctx context.Context, input string) (spelling.Result, error) {
	if o.spelling == nil {
		return spelling.Result{}, ErrNoActiveGame
	}
	res := o.spelling.Submit(input)
	if res.Accepted {
		o.award(ctx, game.Spelling, res.Points)
	}
	return res, nil
}

// Speak reads the current spelling word aloud.
func (o *Orchestrator) Speak(ctx context.Context) error {
	if o.spelling == nil {
		return ErrNoActiveGame
	}
	o.spelling.Speak(ctx)
	return nil
}

// Flip turns a memory token face up.
func (o *Orchestrator) Flip(id int) (memory.FlipResult, error) {
	if o.memory == nil {
		return memory.FlipResult{}, ErrNoActiveGame
	}
	return o.memory.Flip(id), nil
}

// RestartMemory deals a new memory board.
func (o *Orchestrator) RestartMemory() error {
	if o.memory == nil {
		return ErrNoActiveGame
	}
	o.memory.Restart()
	return nil
}

// Arithmetic returns the running math engine, or nil.
func (o *Orchestrator) Arithmetic() *arithmetic.Engine { return o.arithmetic }

// Spelling returns the running spelling engine, or nil.
func (o *Orchestrator) Spelling() *spelling.Engine { return o.spelling }

// Memory returns the running memory engine, or nil.
func (o *Orchestrator) Memory() *memory.Engine { return o.memory }
