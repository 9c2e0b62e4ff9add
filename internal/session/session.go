// Package session wires a player profile to the score accumulator and the
// game orchestrator.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/notify"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/scoring"
	"github.com/eduplay/eduplay/internal/speech"
	"github.com/eduplay/eduplay/internal/store"
)

// ErrEmptyName is returned by SubmitName for a blank name.
var ErrEmptyName = errors.New("session: name is empty")

// Options configures Open. KV is required; everything else may be nil.
type Options struct {
	KV       store.KV
	Awards   store.AwardRepo
	Notifier notify.Notifier
	Speaker  speech.Speaker
	Rand     random.Source
	Sched    clock.Scheduler
	Games    orchestrator.Config
	Logger   zerolog.Logger
}

// Session is one run of the game for one player.
type Session struct {
	id       string
	kv       store.KV
	notifier notify.Notifier
	logger   zerolog.Logger

	name  string
	score *scoring.Accumulator
	games *orchestrator.Orchestrator
}

// Open loads the stored player name and score and prepares the games.
func Open(ctx context.Context, opts Options) (*Session, error) {
	if opts.KV == nil {
		return nil, errors.New("session: nil KV store")
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	if opts.Sched == nil {
		opts.Sched = clock.NewManual()
	}
	if opts.Rand == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("seed random source: %w", err)
		}
		opts.Rand = random.New(seed)
	}

	s := &Session{
		id:       uuid.New().String(),
		kv:       opts.KV,
		notifier: opts.Notifier,
		logger:   opts.Logger.With().Str("component", "session").Logger(),
	}

	name, _, err := opts.KV.Get(ctx, store.KeyPlayerName)
	if err != nil {
		s.logger.Warn().Err(err).Msg("load player name")
	}
	s.name = strings.TrimSpace(name)

	s.score = scoring.New(ctx, opts.KV, scoring.Options{
		Awards:    opts.Awards,
		SessionID: s.id,
		Notifier:  opts.Notifier,
		Logger:    opts.Logger,
	})
	s.games = orchestrator.New(opts.Games, opts.Rand, opts.Sched, s.score, opts.Speaker, opts.Logger)

	s.logger.Info().
		Str("session", s.id).
		Bool("has_name", s.name != "").
		Int("score", s.score.Total()).
		Msg("session opened")
	return s, nil
}

// ID returns the session id stamped on award events.
func (s *Session) ID() string { return s.id }

// Name returns the player name, or "" before one was submitted.
func (s *Session) Name() string { return s.name }

// HasName reports whether a player name is known.
func (s *Session) HasName() bool { return s.name != "" }

// Score returns the running score.
func (s *Session) Score() int { return s.score.Total() }

// Scores returns the accumulator.
func (s *Session) Scores() *scoring.Accumulator { return s.score }

// Games returns the orchestrator.
func (s *Session) Games() *orchestrator.Orchestrator { return s.games }

// SubmitName stores the trimmed player name and sends the welcome
// notification. Blank names are rejected.
func (s *Session) SubmitName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.name = name
	if err := s.kv.Set(ctx, store.KeyPlayerName, name); err != nil {
		s.logger.Error().Err(err).Msg("persist player name")
	}
	s.notifier.Notify(notify.Notification{
		Title:  fmt.Sprintf("Welcome to EduPlay, %s! 🎮", name),
		Detail: "Start playing games to earn points!",
	})
	return nil
}

// Close stops the running game.
func (s *Session) Close() {
	s.games.Exit()
}
