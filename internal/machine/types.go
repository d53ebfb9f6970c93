package machine

import "fmt"

// Symbol is a single tape cell value. The input alphabet is {a, b}; the
// machine additionally writes the blank and the verdict marker letters.
type Symbol byte

const (
	SymbolA Symbol = 'a'
	SymbolB Symbol = 'b'
	Blank   Symbol = 'B'
)

func (s Symbol) String() string { return string(byte(s)) }

// Move is a head movement direction.
type Move byte

const (
	MoveLeft  Move = 'L'
	MoveRight Move = 'R'
	MoveStay  Move = 'S'
)

func (m Move) String() string { return string(byte(m)) }

func (m Move) offset() int {
	switch m {
	case MoveLeft:
		return -1
	case MoveRight:
		return 1
	default:
		return 0
	}
}

// ParseMove converts the wire form ("L"/"R"/"S") back to a Move.
func ParseMove(s string) (Move, error) {
	switch s {
	case "L":
		return MoveLeft, nil
	case "R":
		return MoveRight, nil
	case "S":
		return MoveStay, nil
	}
	return 0, fmt.Errorf("machine: unknown move %q", s)
}

// State is a control state of the machine.
type State uint8

const (
	StateScan    State = iota // q0: pick up the leftmost unmatched symbol
	StateSweepA               // q1: carry 'a' right to the end
	StateSweepB               // q2: carry 'b' right to the end
	StateMatchA               // q3: rightmost symbol must be 'a'
	StateMatchB               // q4: rightmost symbol must be 'b'
	StateRewind               // q5: return left to the next unmatched symbol
	StateAccept               // q_yes: sweep left, then write YES
	StateWriteY               // qy1
	StateWriteE               // qy2
	StateWriteS               // qy3
	StateReject               // q_no: sweep left, then write NO
	StateWriteN               // qn1
	StateWriteO               // qn2
	StateHalt                 // q_halt

	numStates
)

// stateNames holds the classical names; these appear in run logs and are
// part of the external log contract.
var stateNames = [numStates]string{
	"q0", "q1", "q2", "q3", "q4", "q5",
	"q_yes", "qy1", "qy2", "qy3",
	"q_no", "qn1", "qn2",
	"q_halt",
}

func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ParseState converts a classical state name back to a State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("machine: unknown state %q", name)
}

// Verdict is the machine's decision for an input.
type Verdict uint8

const (
	VerdictNone Verdict = iota
	VerdictAccept
	VerdictReject
)

func (v Verdict) String() string {
	switch v {
	case VerdictAccept:
		return "ACCEPT"
	case VerdictReject:
		return "REJECT"
	}
	return "UNDECIDED"
}

// Marker returns the tape marker written for the verdict ("YES"/"NO").
func (v Verdict) Marker() string {
	switch v {
	case VerdictAccept:
		return "YES"
	case VerdictReject:
		return "NO"
	}
	return ""
}

// Rule is one entry of the transition table.
type Rule struct {
	Write Symbol
	Move  Move
	Next  State
}

// StepRecord captures one executed transition. The ordered sequence of
// records is the complete trace; renderers and loggers depend on nothing
// else.
type StepRecord struct {
	Step      int
	State     State
	Position  int
	Read      Symbol
	Write     Symbol
	Move      Move
	NextState State
}
