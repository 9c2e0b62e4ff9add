package arithmetic

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is one of the three supported arithmetic operations.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
)

// Operators lists every operator in selection order.
var Operators = []Operator{Add, Subtract, Multiply}

// Symbol returns the operator as shown to the player.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	default:
		return "?"
	}
}

// Apply computes a <op> b.
func (o Operator) Apply(a, b int) int {
	switch o {
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	default:
		return a + b
	}
}

// Challenge is one arithmetic question. It is immutable once created.
type Challenge struct {
	A        int
	B        int
	Operator Operator
	Answer   int
}

// NewChallengeFrom builds a challenge from raw operands, swapping them for
// subtraction so the result is never negative.
func NewChallengeFrom(op Operator, a, b int) Challenge {
	if op == Subtract && b > a {
		a, b = b, a
	}
	return Challenge{A: a, B: b, Operator: op, Answer: op.Apply(a, b)}
}

// String renders the question, e.g. "4 × 5 = ?".
func (c Challenge) String() string {
	return fmt.Sprintf("%d %s %d = ?", c.A, c.Operator.Symbol(), c.B)
}

// ParseAnswer parses a typed answer. Whitespace is trimmed and leading
// zeros are ignored ("007" is 7).
func ParseAnswer(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("empty answer")
	}
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}
	return int(n), nil
}
