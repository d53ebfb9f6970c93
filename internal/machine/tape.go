package machine

import "strings"

// Tape is a sparse, effectively unbounded cell store. Unwritten positions
// read as blank; positions may be negative (the accept sweep visits -1).
type Tape struct {
	cells map[int]Symbol
}

func NewTape(input string) *Tape {
	cells := make(map[int]Symbol, len(input))
	for i := 0; i < len(input); i++ {
		cells[i] = Symbol(input[i])
	}
	return &Tape{cells: cells}
}

func (t *Tape) Read(pos int) Symbol {
	if s, ok := t.cells[pos]; ok {
		return s
	}
	return Blank
}

func (t *Tape) Write(pos int, s Symbol) { t.cells[pos] = s }

// Bounds returns the extent of cells ever touched. ok is false for a tape
// with no cells (empty input before any step).
func (t *Tape) Bounds() (min, max int, ok bool) {
	first := true
	for pos := range t.cells {
		if first || pos < min {
			min = pos
		}
		if first || pos > max {
			max = pos
		}
		first = false
	}
	return min, max, !first
}

// Contents returns the non-blank cells in positional order, e.g. "YES"
// after an accepting run.
func (t *Tape) Contents() string {
	min, max, ok := t.Bounds()
	if !ok {
		return ""
	}
	var b strings.Builder
	for pos := min; pos <= max; pos++ {
		if s := t.Read(pos); s != Blank {
			b.WriteByte(byte(s))
		}
	}
	return b.String()
}

// Window returns width consecutive symbols starting at start, blanks where
// nothing was written. Renderers use it to show a fixed viewport around
// the head.
func (t *Tape) Window(start, width int) []Symbol {
	out := make([]Symbol, width)
	for i := range out {
		out[i] = t.Read(start + i)
	}
	return out
}
