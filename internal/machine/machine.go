package machine

import (
	"context"
	"time"
)

// DefaultMaxSteps bounds Run when the caller passes no limit. The
// palindrome program takes O(n²) steps, so this covers inputs far beyond
// anything the CLI renders; the guard exists for table defects, not
// expected inputs.
const DefaultMaxSteps = 100000

// Machine is one simulation instance: tape, head, control state, step
// counter and trace. Construct one per input string.
type Machine struct {
	input   string
	tape    *Tape
	head    int
	state   State
	steps   int
	verdict Verdict
	trace   []StepRecord
}

// New validates the input over {a, b} and returns a machine in its
// initial configuration (head 0, state q0, empty trace).
func New(input string) (*Machine, error) {
	for i, c := range input {
		if c != 'a' && c != 'b' {
			return nil, &InvalidInputError{Char: c, Position: i}
		}
	}
	return &Machine{input: input, tape: NewTape(input), state: StateScan}, nil
}

func (m *Machine) Input() string { return m.input }
func (m *Machine) Head() int     { return m.head }
func (m *Machine) State() State  { return m.state }
func (m *Machine) Steps() int    { return m.steps }
func (m *Machine) Tape() *Tape   { return m.tape }

// Trace returns the executed transitions in execution order. The slice is
// the machine's own; callers must not modify it.
func (m *Machine) Trace() []StepRecord { return m.trace }

// Halted reports whether the machine reached q_halt.
func (m *Machine) Halted() bool { return m.state == StateHalt }

// Verdict reports the decision once the accept or reject branch has been
// entered, which can be several bookkeeping steps before Halted: the
// verdict is determined even while the marker is still being written.
func (m *Machine) Verdict() (Verdict, bool) {
	return m.verdict, m.verdict != VerdictNone
}

// Reset restores the initial configuration for the original input.
func (m *Machine) Reset() {
	m.tape = NewTape(m.input)
	m.head = 0
	m.state = StateScan
	m.steps = 0
	m.verdict = VerdictNone
	m.trace = nil
}

// Step executes exactly one transition: look up (state, read), write,
// move, switch state, append the record. Returns ErrHalted in q_halt and
// UndefinedTransitionError if the table has no entry for the pair.
func (m *Machine) Step() (StepRecord, error) {
	if m.state == StateHalt {
		return StepRecord{}, ErrHalted
	}
	read := m.tape.Read(m.head)
	rule, ok := program[transKey{m.state, read}]
	if !ok {
		return StepRecord{}, &UndefinedTransitionError{State: m.state, Symbol: read}
	}

	rec := StepRecord{
		Step:      m.steps,
		State:     m.state,
		Position:  m.head,
		Read:      read,
		Write:     rule.Write,
		Move:      rule.Move,
		NextState: rule.Next,
	}

	m.tape.Write(m.head, rule.Write)
	m.head += rule.Move.offset()
	m.state = rule.Next
	m.steps++
	m.trace = append(m.trace, rec)

	switch rule.Next {
	case StateAccept:
		m.verdict = VerdictAccept
	case StateReject:
		m.verdict = VerdictReject
	}

	return rec, nil
}

// Result is the outcome of a completed Run.
type Result struct {
	Input     string
	Verdict   Verdict
	Trace     []StepRecord
	Steps     int
	Elapsed   time.Duration
	FinalTape string
}

// Run steps the machine to q_halt. maxSteps <= 0 means DefaultMaxSteps.
// The context is checked between steps so callers can interrupt long
// runs; the engine itself never blocks.
func (m *Machine) Run(ctx context.Context, maxSteps int) (*Result, error) {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	start := time.Now()
	for !m.Halted() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if m.steps >= maxSteps {
			return nil, &StepLimitExceededError{Limit: maxSteps, Trace: m.trace}
		}
		if _, err := m.Step(); err != nil {
			return nil, err
		}
	}

	verdict, _ := m.Verdict()
	return &Result{
		Input:     m.input,
		Verdict:   verdict,
		Trace:     m.trace,
		Steps:     m.steps,
		Elapsed:   time.Since(start),
		FinalTape: m.tape.Contents(),
	}, nil
}
