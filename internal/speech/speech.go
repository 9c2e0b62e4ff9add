// Package speech reads words aloud for the spelling game. Speech is an
// optional capability: when no synthesizer is available the Nop speaker is
// used and the game carries on silently.
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// DefaultRate is the utterance rate used for spelling words, relative to
// the synthesizer's normal speed.
const DefaultRate = 0.7

// baseWordsPerMinute is the normal speed of espeak and say.
const baseWordsPerMinute = 175

// Speaker speaks text at a relative rate (1.0 is normal speed).
type Speaker interface {
	Speak(ctx context.Context, text string, rate float64) error
}

// Nop is a Speaker that does nothing.
type Nop struct{}

func (Nop) Speak(context.Context, string, float64) error { return nil }

// knownCommands are probed in order by Detect.
var knownCommands = []string{"espeak-ng", "espeak", "say"}

// Command speaks through an external synthesizer process.
type Command struct {
	path   string
	logger zerolog.Logger
}

// Detect returns a Command speaker for override, or for the first known
// synthesizer found on PATH. It falls back to Nop.
func Detect(override string, logger zerolog.Logger) Speaker {
	candidates := knownCommands
	if override != "" {
		candidates = []string{override}
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			logger.Debug().Str("command", path).Msg("speech synthesizer found")
			return &Command{path: path, logger: logger}
		}
	}
	logger.Debug().Msg("no speech synthesizer available")
	return Nop{}
}

// Speak starts the synthesizer and returns without waiting for it to
// finish talking.
func (c *Command) Speak(ctx context.Context, text string, rate float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(c.path, Args(filepath.Base(c.path), text, rate)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", filepath.Base(c.path), err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			c.logger.Debug().Err(err).Msg("speech process exited")
		}
	}()
	return nil
}

// Args builds the command line for the named synthesizer.
func Args(name, text string, rate float64) []string {
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(baseWordsPerMinute * rate))
	switch name {
	case "espeak", "espeak-ng":
		return []string{"-s", wpm, text}
	case "say":
		return []string{"-r", wpm, text}
	default:
		return []string{text}
	}
}
