package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eduplay/eduplay/internal/app"
	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/config"
	"github.com/eduplay/eduplay/internal/logging"
	"github.com/eduplay/eduplay/internal/random"
	"github.com/eduplay/eduplay/internal/session"
	"github.com/eduplay/eduplay/internal/speech"
	"github.com/eduplay/eduplay/internal/store"
)

// toastLifetime is how many time units a notification stays on screen.
const toastLifetime = 3

// runApp loads config, opens the store, builds the session, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(cfg)
	defer closeLog()

	kv, awards, closeStore := openStorage(cmd, cfg, logger)
	defer closeStore()

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return fmt.Errorf("seed random source: %w", err)
		}
	}

	var speaker speech.Speaker = speech.Nop{}
	if cfg.Speech {
		speaker = speech.Detect(cfg.SpeechCommand, logger)
	}

	sched := clock.NewTea()
	toaster := app.NewToaster(sched, toastLifetime*cfg.TimeUnit)

	sess, err := session.Open(ctx, session.Options{
		KV:       kv,
		Awards:   awards,
		Notifier: toaster,
		Speaker:  speaker,
		Rand:     random.New(seed),
		Sched:    sched,
		Games:    cfg.Games(),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer sess.Close()

	logger.Info().Str("session", sess.ID()).Int64("seed", seed).Msg("session started")
	return app.Run(sess, sched, toaster)
}

// openLogger writes logs to a file so they never draw over the TUI. When
// the file cannot be opened logging is disabled.
func openLogger(cfg config.Config) (zerolog.Logger, func()) {
	path := cfg.LogFile
	if path == "" {
		p, err := logging.DefaultLogPath()
		if err != nil {
			return zerolog.Nop(), func() {}
		}
		path = p
	}
	logger, closer, err := logging.Open(path, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return zerolog.Nop(), func() {}
	}
	return logger, func() { _ = closer.Close() }
}

// openStorage opens the SQLite store, falling back to an in-memory store
// so the games remain playable when the database is unavailable.
func openStorage(cmd *cobra.Command, cfg config.Config, logger zerolog.Logger) (store.KV, store.AwardRepo, func()) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err == nil {
		var st *store.Store
		if st, err = store.Open(dbPath); err == nil {
			return st.KV(), st.AwardRepo(), func() { _ = st.Close() }
		}
	}
	logger.Warn().Err(err).Msg("storage unavailable, progress will not be saved")
	fmt.Fprintln(os.Stderr, "Storage unavailable, progress will not be saved:", err)
	mem := store.NewMemory()
	return mem.KV(), mem.AwardRepo(), func() {}
}
