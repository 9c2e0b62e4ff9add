// Package game holds the identifiers and catalog shared by the engines,
// the orchestrator and the dashboard.
package game

// ID identifies a dashboard game.
type ID string

const (
	None     ID = ""
	Math     ID = "math"
	Spelling ID = "spelling"
	Memory   ID = "memory"
	Puzzle   ID = "puzzle"
	Reading  ID = "reading"
	Music    ID = "music"
)

// Info describes a dashboard entry.
type Info struct {
	ID          ID
	Title       string
	Description string
	Difficulty  string
	Points      string
	Emoji       string
	ComingSoon  bool
}

var catalog = []Info{
	{ID: Math, Title: "Math Adventures", Description: "Solve fun math problems and earn points!", Difficulty: "Easy", Points: "5-15 pts", Emoji: "🔢"},
	{ID: Spelling, Title: "Word Wizard", Description: "Master spelling with exciting word challenges!", Difficulty: "Medium", Points: "10-20 pts", Emoji: "📝"},
	{ID: Memory, Title: "Memory Master", Description: "Test your memory with colorful card matching!", Difficulty: "Medium", Points: "15-25 pts", Emoji: "🧠"},
	{ID: Puzzle, Title: "Puzzle Pro", Description: "Coming Soon! Logic puzzles and brain teasers", Difficulty: "Hard", Points: "20-30 pts", Emoji: "🧩", ComingSoon: true},
	{ID: Reading, Title: "Reading Quest", Description: "Coming Soon! Reading comprehension adventures", Difficulty: "Easy", Points: "5-15 pts", Emoji: "📚", ComingSoon: true},
	{ID: Music, Title: "Melody Maker", Description: "Coming Soon! Learn music theory through games", Difficulty: "Medium", Points: "10-25 pts", Emoji: "🎵", ComingSoon: true},
}

// Catalog returns all dashboard games in display order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Info, bool) {
	for _, info := range catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// Playable reports whether id names a game that can be started.
func Playable(id ID) bool {
	info, ok := Lookup(id)
	return ok && !info.ComingSoon
}

// Award is a point award emitted by an engine. Points is never negative.
type Award struct {
	Game   ID
	Points int
}
