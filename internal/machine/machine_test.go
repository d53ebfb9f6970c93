package machine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustRun(t *testing.T, input string) *Result {
	t.Helper()
	m, err := New(input)
	if err != nil {
		t.Fatalf("new %q: %v", input, err)
	}
	res, err := m.Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("run %q: %v", input, err)
	}
	return res
}

func TestNewInvalidInput(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		pos   int
	}{
		{"abc", 'c', 2},
		{"xab", 'x', 0},
		{"aBa", 'B', 1},
		{"ab a", ' ', 2},
	}

	for _, tt := range tests {
		_, err := New(tt.input)
		if err == nil {
			t.Errorf("%q: expected error, got nil", tt.input)
			continue
		}
		var inv *InvalidInputError
		if !errors.As(err, &inv) {
			t.Errorf("%q: expected InvalidInputError, got %v", tt.input, err)
			continue
		}
		if inv.Char != tt.char || inv.Position != tt.pos {
			t.Errorf("%q: got char %q pos %d, want %q pos %d", tt.input, inv.Char, inv.Position, tt.char, tt.pos)
		}
	}
}

func TestRunVerdicts(t *testing.T) {
	tests := []struct {
		input   string
		verdict Verdict
	}{
		{"abba", VerdictAccept},
		{"abab", VerdictReject},
		{"aba", VerdictAccept},
		{"a", VerdictAccept},
		{"b", VerdictAccept},
		{"", VerdictAccept},
		{"ab", VerdictReject},
		{"ba", VerdictReject},
		{"aab", VerdictReject},
		{"bab", VerdictAccept},
		{"aabbaa", VerdictAccept},
		{"ababa", VerdictAccept},
		{"aaabbb", VerdictReject},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := mustRun(t, tt.input)
			if res.Verdict != tt.verdict {
				t.Fatalf("verdict %v, want %v", res.Verdict, tt.verdict)
			}
			switch tt.verdict {
			case VerdictAccept:
				if res.FinalTape != "YES" {
					t.Errorf("final tape %q, want YES", res.FinalTape)
				}
			case VerdictReject:
				// A mismatched symbol may survive right of the marker.
				if !strings.HasPrefix(res.FinalTape, "NO") {
					t.Errorf("final tape %q, want NO prefix", res.FinalTape)
				}
			}
		})
	}
}

func TestStepCountFixtures(t *testing.T) {
	// Regression fixtures, hand-traced against the table.
	tests := []struct {
		input string
		steps int
	}{
		{"abba", 19},
		{"a", 7},
		{"", 5},
	}

	for _, tt := range tests {
		res := mustRun(t, tt.input)
		if res.Steps != tt.steps {
			t.Errorf("%q: %d steps, want %d", tt.input, res.Steps, tt.steps)
		}
		if len(res.Trace) != res.Steps {
			t.Errorf("%q: trace length %d != step count %d", tt.input, len(res.Trace), res.Steps)
		}
	}
}

func TestDeterministicTrace(t *testing.T) {
	a := mustRun(t, "abba")
	b := mustRun(t, "abba")
	if !reflect.DeepEqual(a.Trace, b.Trace) {
		t.Error("repeated runs produced different traces")
	}
}

func TestStepLimit(t *testing.T) {
	m, err := New("abba")
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Run(context.Background(), 5)
	var limErr *StepLimitExceededError
	if !errors.As(err, &limErr) {
		t.Fatalf("expected StepLimitExceededError, got %v", err)
	}
	if limErr.Limit != 5 {
		t.Errorf("limit %d, want 5", limErr.Limit)
	}
	if len(limErr.Trace) != 5 {
		t.Errorf("partial trace length %d, want 5", len(limErr.Trace))
	}
}

func TestStepAfterHalt(t *testing.T) {
	m, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	if !m.Halted() {
		t.Fatal("machine not halted after run")
	}
	if _, err := m.Step(); !errors.Is(err, ErrHalted) {
		t.Errorf("expected ErrHalted, got %v", err)
	}
}

func TestCallerDrivenLoop(t *testing.T) {
	// Run must be reproducible as a plain loop over Step, so renderers
	// can interleave drawing between steps.
	m, err := New("abba")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; !m.Halted(); i++ {
		if i > DefaultMaxSteps {
			t.Fatal("machine did not halt")
		}
		if _, err := m.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if m.Steps() != 19 {
		t.Errorf("stepped %d times, want 19", m.Steps())
	}
	if v, ok := m.Verdict(); !ok || v != VerdictAccept {
		t.Errorf("verdict %v (known=%v), want ACCEPT", v, ok)
	}
}

func TestVerdictKnownBeforeHalt(t *testing.T) {
	m, err := New("a")
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := m.Step(); err != nil {
			t.Fatal(err)
		}
		if _, ok := m.Verdict(); ok {
			break
		}
	}
	if m.Halted() {
		t.Error("verdict should be known before q_halt")
	}
	for !m.Halted() {
		if _, err := m.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if v, _ := m.Verdict(); v != VerdictAccept {
		t.Errorf("verdict %v, want ACCEPT", v)
	}
}

func TestReset(t *testing.T) {
	m, err := New("abab")
	if err != nil {
		t.Fatal(err)
	}
	first, err := m.Run(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}

	m.Reset()
	if m.State() != StateScan || m.Head() != 0 || m.Steps() != 0 || len(m.Trace()) != 0 {
		t.Fatal("reset did not restore the initial configuration")
	}
	if _, ok := m.Verdict(); ok {
		t.Fatal("verdict survived reset")
	}

	second, err := m.Run(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if second.Verdict != first.Verdict || second.Steps != first.Steps {
		t.Error("rerun after reset diverged")
	}
}

func TestReplayInvariant(t *testing.T) {
	for _, input := range []string{"", "a", "ab", "aba", "abba", "abab", "aaabbb", "bbabb"} {
		res := mustRun(t, input)
		tape, err := Replay(input, res.Trace)
		if err != nil {
			t.Errorf("%q: replay failed: %v", input, err)
			continue
		}
		if tape != res.FinalTape {
			t.Errorf("%q: replay tape %q, direct %q", input, tape, res.FinalTape)
		}
	}
}

func TestReplayDetectsCorruption(t *testing.T) {
	res := mustRun(t, "abba")
	trace := make([]StepRecord, len(res.Trace))
	copy(trace, res.Trace)
	trace[3].Read = Blank

	if _, err := Replay("abba", trace); err == nil {
		t.Error("expected error for corrupted trace")
	}
	if _, err := Replay("abba", res.Trace); err != nil {
		t.Errorf("clean trace rejected: %v", err)
	}
}

func TestRunContextCanceled(t *testing.T) {
	m, err := New("abba")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Run(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestStateMoveRoundTrip(t *testing.T) {
	for s := StateScan; s < StateHalt+1; s++ {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("state %v: parse returned %v, %v", s, got, err)
		}
	}
	for _, mv := range []Move{MoveLeft, MoveRight, MoveStay} {
		got, err := ParseMove(mv.String())
		if err != nil || got != mv {
			t.Errorf("move %v: parse returned %v, %v", mv, got, err)
		}
	}
	if _, err := ParseState("q99"); err == nil {
		t.Error("expected error for unknown state")
	}
	if _, err := ParseMove("X"); err == nil {
		t.Error("expected error for unknown move")
	}
}
