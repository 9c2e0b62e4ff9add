// Package arithmetic implements the math mini-game: random two-operand
// questions with a streak bonus.
package arithmetic

import (
	"time"

	"github.com/eduplay/eduplay/internal/clock"
	"github.com/eduplay/eduplay/internal/random"
)

const (
	MinOperand = 1
	MaxOperand = 20

	// BasePoints is awarded for every correct answer; the current streak
	// is added on top.
	BasePoints = 5

	// AdvanceDelay is the number of time-units a graded challenge stays on
	// screen before the next one is generated.
	AdvanceDelay = 2
)

// Result is the outcome of a submission. Accepted is false when the
// submission was ignored, in which case nothing changed.
type Result struct {
	Accepted    bool
	Correct     bool
	Points      int
	StreakAfter int
	Answer      int
}

// Engine holds the state of one math game.
type Engine struct {
	rng      random.Source
	sched    clock.Scheduler
	timeUnit time.Duration

	generation uint64
	challenge  Challenge
	streak     int
	completed  int
	grading    bool
	last       *Result
}

// New creates an engine and generates its first challenge.
func New(rng random.Source, sched clock.Scheduler, timeUnit time.Duration) *Engine {
	e := &Engine{rng: rng, sched: sched, timeUnit: timeUnit}
	e.NewChallenge()
	return e
}

// NewChallenge discards the current challenge and any pending advance and
// draws a new one.
func (e *Engine) NewChallenge() Challenge {
	e.generation++
	e.grading = false
	e.last = nil

	op := Operators[e.rng.Intn(len(Operators))]
	a := random.Between(e.rng, MinOperand, MaxOperand)
	b := random.Between(e.rng, MinOperand, MaxOperand)
	e.challenge = NewChallengeFrom(op, a, b)
	return e.challenge
}

// Submit grades candidate against the current challenge. The next
// challenge is scheduled AdvanceDelay time-units later whatever the result;
// submissions made before it arrives are not accepted.
func (e *Engine) Submit(candidate int) Result {
	if e.grading {
		return Result{}
	}

	res := Result{Accepted: true, Answer: e.challenge.Answer}
	if candidate == e.challenge.Answer {
		res.Correct = true
		res.Points = BasePoints + e.streak
		e.streak++
	} else {
		e.streak = 0
	}
	res.StreakAfter = e.streak

	e.completed++
	e.grading = true
	e.last = &res

	gen := e.generation
	e.sched.Schedule(AdvanceDelay*e.timeUnit, func() {
		if e.generation != gen {
			return
		}
		e.NewChallenge()
	})
	return res
}

// SubmitText parses input and grades it. Unparseable input is ignored.
func (e *Engine) SubmitText(input string) Result {
	n, err := ParseAnswer(input)
	if err != nil {
		return Result{}
	}
	return e.Submit(n)
}

// Stop invalidates any pending advance.
func (e *Engine) Stop() {
	e.generation++
}

// Current returns the challenge on screen.
func (e *Engine) Current() Challenge { return e.challenge }

// Streak returns the number of consecutive correct answers.
func (e *Engine) Streak() int { return e.streak }

// Completed returns how many challenges have been graded.
func (e *Engine) Completed() int { return e.completed }

// Grading reports whether the current challenge has been answered and is
// waiting for the next one.
func (e *Engine) Grading() bool { return e.grading }

// LastResult returns the result shown for the current challenge, or nil.
func (e *Engine) LastResult() *Result { return e.last }
