package store

import (
	"context"
	"time"
)

// Keys used by the game in the key-value store.
const (
	KeyScore      = "eduplay-score"
	KeyPlayerName = "eduplay-username"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// AwardEventData captures a single point award.
type AwardEventData struct {
	SessionID string
	Game      string
	Points    int
	Total     int
}

// AwardRecord is a stored award event.
type AwardRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Game      string
	Points    int
	Total     int
}

// AwardRepo provides append and query access to award events.
type AwardRepo interface {
	// AppendAward records an award with the next global sequence number.
	AppendAward(ctx context.Context, data AwardEventData) error

	// RecentAwards returns the newest awards first. limit <= 0 means all.
	RecentAwards(ctx context.Context, limit int) ([]AwardRecord, error)

	// TotalsByGame sums points per game.
	TotalsByGame(ctx context.Context) (map[string]int, error)

	// ClearAwards deletes every award event.
	ClearAwards(ctx context.Context) error
}
