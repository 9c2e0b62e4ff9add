// Package scoring keeps the running session score and persists it after
// every award.
package scoring

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/notify"
	"github.com/eduplay/eduplay/internal/store"
)

// Options configures an Accumulator. Every field is optional.
type Options struct {
	Awards    store.AwardRepo
	SessionID string
	Notifier  notify.Notifier
	Logger    zerolog.Logger
}

// Accumulator owns the session score.
type Accumulator struct {
	kv    store.KV
	opts  Options
	total int
}

// New loads the persisted score from kv. A missing or malformed value
// starts the score at zero.
func New(ctx context.Context, kv store.KV, opts Options) *Accumulator {
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}
	a := &Accumulator{kv: kv, opts: opts}
	a.total = a.load(ctx)
	return a
}

func (a *Accumulator) load(ctx context.Context) int {
	if a.kv == nil {
		return 0
	}
	raw, ok, err := a.kv.Get(ctx, store.KeyScore)
	if err != nil {
		a.opts.Logger.Warn().Err(err).Msg("load score")
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		a.opts.Logger.Warn().Str("value", raw).Msg("ignoring malformed stored score")
		return 0
	}
	return n
}

// Total returns the current score.
func (a *Accumulator) Total() int {
	return a.total
}

// Award adds award.Points to the total and returns the new total. Zero
// points change nothing. Negative points are a programming error.
func (a *Accumulator) Award(ctx context.Context, award game.Award) int {
	if award.Points < 0 {
		panic(fmt.Sprintf("scoring: negative award %d for %q", award.Points, award.Game))
	}
	if award.Points == 0 {
		return a.total
	}

	a.total += award.Points
	a.persist(ctx)
	a.record(ctx, award)

	a.opts.Logger.Info().
		Str("game", string(award.Game)).
		Int("points", award.Points).
		Int("total", a.total).
		Msg("points awarded")

	a.opts.Notifier.Notify(notify.Notification{
		Title:  fmt.Sprintf("🎉 You earned %d points!", award.Points),
		Detail: fmt.Sprintf("Total score: %d", a.total),
	})
	return a.total
}

// Reset sets the score back to zero and clears the award log.
func (a *Accumulator) Reset(ctx context.Context) error {
	a.total = 0
	if a.kv != nil {
		if err := a.kv.Delete(ctx, store.KeyScore); err != nil {
			return fmt.Errorf("reset score: %w", err)
		}
	}
	if a.opts.Awards != nil {
		if err := a.opts.Awards.ClearAwards(ctx); err != nil {
			return fmt.Errorf("reset awards: %w", err)
		}
	}
	return nil
}

func (a *Accumulator) persist(ctx context.Context) {
	if a.kv == nil {
		return
	}
	if err := a.kv.Set(ctx, store.KeyScore, strconv.Itoa(a.total)); err != nil {
		a.opts.Logger.Error().Err(err).Int("total", a.total).Msg("persist score")
	}
}

func (a *Accumulator) record(ctx context.Context, award game.Award) {
	if a.opts.Awards == nil {
		return
	}
	err := a.opts.Awards.AppendAward(ctx, store.AwardEventData{
		SessionID: a.opts.SessionID,
		Game:      string(award.Game),
		Points:    award.Points,
		Total:     a.total,
	})
	if err != nil {
		a.opts.Logger.Error().Err(err).Str("game", string(award.Game)).Msg("record award")
	}
}
