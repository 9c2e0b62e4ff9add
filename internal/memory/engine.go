// Package memory implements the card-matching mini-game.
//
// Tokens move Hidden → FaceUp → Matched, or back to Hidden when the pair
// differs. Pair resolution and the elapsed-time counter run on scheduled
// callbacks; each callback remembers the board generation it was scheduled
// for and does nothing once a new board has been dealt.
package memory

import (
	"fmt"
	"time"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/random"
)

// Resolution tells whether the pending pair matched.
type Resolution struct {
	Matched bool
}

// FlipResult is the outcome of a flip. PendingPair and Resolution are set
// when the flip turned the second token of a pair face up.
type FlipResult struct {
	Accepted    bool
	PendingPair []int
	Resolution  *Resolution
}

// Engine holds one board.
type Engine struct {
	rng      random.Source
	sched    clock.Scheduler
	timeUnit time.Duration

	generation uint64
	pairCount  int
	tokens     []Token
	pending    []int
	moves      int
	matches    int
	elapsed    int
	state      State
	ticking    bool
	score      *Score
	onComplete func(Score)
}

// New creates an engine and deals a board of pairCount pairs.
func New(rng random.Source, sched clock.Scheduler, timeUnit time.Duration, pairCount int) *Engine {
	e := &Engine{rng: rng, sched: sched, timeUnit: timeUnit}
	e.NewGame(pairCount)
	return e
}

// OnComplete registers fn to receive the final score when the board is
// cleared.
func (e *Engine) OnComplete(fn func(Score)) {
	e.onComplete = fn
}

// NewGame deals a fresh shuffled board and resets every counter. Pending
// reveals and ticks of the previous board are abandoned.
func (e *Engine) NewGame(pairCount int) {
	if pairCount < 1 || pairCount > MaxPairs {
		panic(fmt.Sprintf("memory: pair count %d out of range 1..%d", pairCount, MaxPairs))
	}

	e.generation++
	e.pairCount = pairCount
	e.tokens = make([]Token, 0, 2*pairCount)
	for i := 0; i < 2; i++ {
		for s := 0; s < pairCount; s++ {
			e.tokens = append(e.tokens, Token{Symbol: Symbol(s)})
		}
	}
	random.Shuffle(e.rng, len(e.tokens), func(i, j int) {
		e.tokens[i], e.tokens[j] = e.tokens[j], e.tokens[i]
	})
	for i := range e.tokens {
		e.tokens[i].ID = i
	}

	e.pending = nil
	e.moves = 0
	e.matches = 0
	e.elapsed = 0
	e.state = InProgress
	e.ticking = false
	e.score = nil
}

// Restart deals a new board of the same size.
func (e *Engine) Restart() {
	e.NewGame(e.pairCount)
}

// Flip turns token id face up. It is ignored when the board is complete,
// the id is unknown, the token is already face up or matched, or a pair is
// still waiting to be resolved.
func (e *Engine) Flip(id int) FlipResult {
	if e.state == Completed || id < 0 || id >= len(e.tokens) {
		return FlipResult{}
	}
	tok := &e.tokens[id]
	if tok.FaceUp || tok.Matched || len(e.pending) >= 2 {
		return FlipResult{}
	}

	tok.FaceUp = true
	e.pending = append(e.pending, id)
	if len(e.pending) < 2 {
		return FlipResult{Accepted: true}
	}

	e.moves++
	if !e.ticking {
		e.startTicking()
	}

	a, b := e.pending[0], e.pending[1]
	matched := e.tokens[a].Symbol == e.tokens[b].Symbol
	delay := e.timeUnit
	if matched {
		delay = e.timeUnit / 2
	}

	gen := e.generation
	e.sched.Schedule(delay, func() {
		e.resolve(gen, a, b, matched)
	})

	return FlipResult{
		Accepted:    true,
		PendingPair: []int{a, b},
		Resolution:  &Resolution{Matched: matched},
	}
}

func (e *Engine) resolve(gen uint64, a, b int, matched bool) {
	if gen != e.generation {
		return
	}
	if matched {
		e.tokens[a].Matched = true
		e.tokens[b].Matched = true
		e.matches++
	} else {
		e.tokens[a].FaceUp = false
		e.tokens[b].FaceUp = false
	}
	e.pending = nil

	if e.matches == e.pairCount {
		e.state = Completed
		score := FinalScore(e.moves, e.elapsed)
		e.score = &score
		if e.onComplete != nil {
			e.onComplete(score)
		}
	}
}

func (e *Engine) startTicking() {
	e.ticking = true
	gen := e.generation
	var tick func()
	tick = func() {
		if gen != e.generation || e.state == Completed {
			return
		}
		e.elapsed++
		e.sched.Schedule(e.timeUnit, tick)
	}
	e.sched.Schedule(e.timeUnit, tick)
}

// ComputeFinalScore returns the score for the current moves and time.
func (e *Engine) ComputeFinalScore() int {
	return FinalScore(e.moves, e.elapsed).Total
}

// Stop abandons pending reveals and ticks without touching the board.
func (e *Engine) Stop() {
	e.generation++
	e.ticking = false
}

// Tokens returns a copy of the board in position order.
func (e *Engine) Tokens() []Token {
	out := make([]Token, len(e.tokens))
	copy(out, e.tokens)
	return out
}

// Pending returns the ids of face-up tokens awaiting resolution.
func (e *Engine) Pending() []int {
	return append([]int(nil), e.pending...)
}

// Score returns the final score once the board is complete, else nil.
func (e *Engine) Score() *Score { return e.score }

func (e *Engine) PairCount() int { return e.pairCount }
func (e *Engine) Moves() int     { return e.moves }
func (e *Engine) Matches() int   { return e.matches }
func (e *Engine) Elapsed() int   { return e.elapsed }
func (e *Engine) State() State   { return e.state }
