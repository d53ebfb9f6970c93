package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

// ExportJSONStdout writes a stored log to stdout in the interchange
// format.
func ExportJSONStdout(log *RunLog) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

// WriteTraceCSV writes the trace in CSV form, one executed transition per
// row.
func WriteTraceCSV(w io.Writer, log *RunLog) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"step", "state", "position", "read", "write", "move", "new_state"}); err != nil {
		return err
	}
	for _, e := range log.ExecutionLog {
		row := []string{
			strconv.Itoa(e.Step),
			e.State,
			strconv.Itoa(e.Position),
			e.Read,
			e.Write,
			e.Move,
			e.NewState,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
