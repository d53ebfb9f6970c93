package viz

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/tmsim/internal/machine"
)

// TapeWindow renders a width-cell viewport centered on the head as two
// plain-text lines: the cells and a caret marking the head. Cells are
// three characters wide, matching the classical display.
func TapeWindow(t *machine.Tape, head, width int) string {
	if width < 1 {
		width = 1
	}
	start := head - width/2

	var cells, caret strings.Builder
	for i := 0; i < width; i++ {
		cells.WriteString(fmt.Sprintf(" %c ", byte(t.Read(start+i))))
		if start+i == head {
			caret.WriteString(" ^ ")
		} else {
			caret.WriteString("   ")
		}
	}
	return cells.String() + "\n" + caret.String()
}

// StyledTapeWindow is TapeWindow with lipgloss styling: the head cell is
// highlighted, blanks dimmed, verdict letters emphasized.
func StyledTapeWindow(t *machine.Tape, head, width int) string {
	if width < 1 {
		width = 1
	}
	start := head - width/2

	var cells, caret strings.Builder
	for i := 0; i < width; i++ {
		pos := start + i
		sym := t.Read(pos)
		cell := fmt.Sprintf(" %c ", byte(sym))

		style := cellStyle
		switch {
		case pos == head:
			style = headCellStyle
		case sym == machine.Blank:
			style = blankCellStyle
		case sym != machine.SymbolA && sym != machine.SymbolB:
			style = markerStyle
		}
		cells.WriteString(style.Render(cell))

		if pos == head {
			caret.WriteString(yellow.Render(" ^ "))
		} else {
			caret.WriteString("   ")
		}
	}
	return cells.String() + "\n" + caret.String()
}

// VerdictBanner renders the final verdict line.
func VerdictBanner(v machine.Verdict) string {
	switch v {
	case machine.VerdictAccept:
		return acceptBanner.Render("✓ PALINDROME — machine accepted (YES)")
	case machine.VerdictReject:
		return rejectBanner.Render("✗ NOT A PALINDROME — machine rejected (NO)")
	}
	return dim.Render("running...")
}

// WriteStepTable writes the trace as an aligned table.
func WriteStepTable(w io.Writer, trace []machine.StepRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tSTATE\tPOS\tREAD\tWRITE\tMOVE\tNEXT")
	for _, rec := range trace {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			rec.Step, rec.State, rec.Position, rec.Read, rec.Write, rec.Move, rec.NextState)
	}
	return tw.Flush()
}
