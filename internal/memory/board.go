package memory

import "fmt"

// Symbol identifies the picture on a token.
type Symbol int

var symbols = [...]string{"🎯", "🌟", "🎮", "🎨", "🎪", "🎭", "🎬", "🎵", "🏆", "💎", "🚀", "⚡"}

const (
	// MaxPairs is the number of distinct symbols available.
	MaxPairs = len(symbols)

	// DefaultPairs is the board size of a standard game (12 tokens).
	DefaultPairs = 6
)

// Glyph returns the emoji drawn for s.
func (s Symbol) Glyph() string {
	if s < 0 || int(s) >= len(symbols) {
		return "?"
	}
	return symbols[s]
}

// Token is one card on the board. Its ID is its position.
type Token struct {
	ID      int
	Symbol  Symbol
	FaceUp  bool
	Matched bool
}

// Hidden reports whether the token shows its back.
func (t Token) Hidden() bool {
	return !t.FaceUp && !t.Matched
}

// State is the board-level state.
type State int

const (
	InProgress State = iota
	Completed
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Scoring constants for a completed board.
const (
	BasePoints       = 25
	MoveTarget       = 20
	MoveBonusPerMove = 2
	TimeTarget       = 60
)

// Score is the breakdown of a completed game.
type Score struct {
	Base      int
	MoveBonus int
	TimeBonus int
	Total     int
}

// FinalScore computes the completion score. Both bonuses bottom out at
// zero, so the total is never below BasePoints.
func FinalScore(moves, elapsedSeconds int) Score {
	s := Score{
		Base:      BasePoints,
		MoveBonus: max(0, MoveTarget-moves) * MoveBonusPerMove,
		TimeBonus: max(0, TimeTarget-elapsedSeconds),
	}
	s.Total = s.Base + s.MoveBonus + s.TimeBonus
	return s
}

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
