package scoring

// Level is a named score band shown on the dashboard.
type Level struct {
	Name  string
	Emoji string
	Floor int
	// Next is the score at which the following level starts, or 0 for
	// the top level.
	Next int
}

var levels = []Level{
	{Name: "Beginner", Emoji: "⭐", Floor: 0, Next: 200},
	{Name: "Scholar", Emoji: "🥉", Floor: 200, Next: 500},
	{Name: "Expert", Emoji: "🏆", Floor: 500, Next: 1000},
	{Name: "Champion", Emoji: "👑", Floor: 1000},
}

// LevelFor returns the level band containing score.
func LevelFor(score int) Level {
	lvl := levels[0]
	for _, l := range levels {
		if score >= l.Floor {
			lvl = l
		}
	}
	return lvl
}

// Progress returns how far score is through its level, in [0,1]. The top
// level always reports 1.
func (l Level) Progress(score int) float64 {
	if l.Next == 0 {
		return 1
	}
	p := float64(score-l.Floor) / float64(l.Next-l.Floor)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
