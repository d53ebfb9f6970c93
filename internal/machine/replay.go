package machine

import "fmt"

// Replay applies a recorded trace to a fresh tape initialized from input
// and returns the resulting tape contents, without re-running the
// program. Each record's position and read symbol are checked against the
// tape, so a trace paired with the wrong input (or a corrupted log) fails
// instead of silently producing a wrong tape.
func Replay(input string, trace []StepRecord) (string, error) {
	tape := NewTape(input)
	pos := 0
	for i, rec := range trace {
		if rec.Position != pos {
			return "", fmt.Errorf("machine: replay step %d at position %d, record says %d", i, pos, rec.Position)
		}
		if got := tape.Read(rec.Position); got != rec.Read {
			return "", fmt.Errorf("machine: replay step %d read %q, record says %q", i, byte(got), byte(rec.Read))
		}
		tape.Write(rec.Position, rec.Write)
		pos += rec.Move.offset()
	}
	return tape.Contents(), nil
}
