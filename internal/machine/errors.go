package machine

import (
	"errors"
	"fmt"
)

// ErrHalted indicates Step was called after the machine reached q_halt.
var ErrHalted = errors.New("machine: already halted")

// InvalidInputError reports a character outside {a, b} in the input
// string. Raised at construction; no steps execute.
type InvalidInputError struct {
	Char     rune
	Position int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("machine: invalid input character %q at position %d (alphabet is {a, b})", e.Char, e.Position)
}

// UndefinedTransitionError reports a missing transition table entry. This
// is a defect in the program table, not bad input: the table is total for
// every configuration reachable from {a, b} input.
type UndefinedTransitionError struct {
	State  State
	Symbol Symbol
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("machine: no transition for state %s reading %q", e.State, byte(e.Symbol))
}

// StepLimitExceededError reports that Run hit its safety bound before
// halting. It carries the partial trace so callers can still display what
// happened.
type StepLimitExceededError struct {
	Limit int
	Trace []StepRecord
}

func (e *StepLimitExceededError) Error() string {
	return fmt.Sprintf("machine: exceeded step limit %d without halting", e.Limit)
}
