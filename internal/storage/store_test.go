package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tmsim/internal/machine"
)

func runMachine(t *testing.T, input string) *machine.Result {
	t.Helper()
	m, err := machine.New(input)
	require.NoError(t, err)
	res, err := m.Run(context.Background(), 0)
	require.NoError(t, err)
	return res
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	res := runMachine(t, "abba")
	runID, err := st.Save(res)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "run_"))

	log, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "abba", log.InputString)
	assert.Equal(t, 19, log.TotalSteps)
	assert.Equal(t, "YES", log.FinalResult)
	assert.Len(t, log.ExecutionLog, 19)
	assert.Equal(t, "q0", log.ExecutionLog[0].State)
	assert.Equal(t, "q_halt", log.ExecutionLog[18].NewState)
}

func TestLogContractFieldNames(t *testing.T) {
	// The JSON field names are consumed by external tooling; lock them.
	res := runMachine(t, "ab")
	log := NewRunLog(res)

	data, err := json.Marshal(log)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	for _, key := range []string{"timestamp", "input_string", "total_steps", "execution_time", "final_result", "execution_log"} {
		assert.Contains(t, top, key)
	}

	var entries []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(top["execution_log"], &entries))
	require.NotEmpty(t, entries)
	for _, key := range []string{"step", "state", "position", "read", "write", "move", "new_state"} {
		assert.Contains(t, entries[0], key)
	}

	assert.Equal(t, "NO", log.FinalResult)
}

func TestLoadTraceReplays(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	res := runMachine(t, "abab")
	runID, err := st.Save(res)
	require.NoError(t, err)

	log, recs, err := st.LoadTrace(runID)
	require.NoError(t, err)
	require.Len(t, recs, res.Steps)

	tape, err := machine.Replay(log.InputString, recs)
	require.NoError(t, err)
	assert.Equal(t, res.FinalTape, tape)
}

func TestRecordsFromLogRejectsBadEntries(t *testing.T) {
	res := runMachine(t, "a")
	log := NewRunLog(res)

	bad := log
	bad.ExecutionLog = append([]LogEntry(nil), log.ExecutionLog...)
	bad.ExecutionLog[0].State = "q99"
	_, err := RecordsFromLog(&bad)
	assert.Error(t, err)

	bad.ExecutionLog[0].State = "q0"
	bad.ExecutionLog[0].Move = "X"
	_, err = RecordsFromLog(&bad)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	id1, err := st.Save(runMachine(t, "a"))
	require.NoError(t, err)
	id2, err := st.Save(runMachine(t, "ab"))
	require.NoError(t, err)

	// A stray file must not break listing.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.txt"), []byte("x"), 0644))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, id1, runs[0].ID)
	assert.Equal(t, id2, runs[1].ID)
	assert.Equal(t, "a", runs[0].InputString)
}

func TestWriteTraceCSV(t *testing.T) {
	res := runMachine(t, "a")
	log := NewRunLog(res)

	var buf bytes.Buffer
	require.NoError(t, WriteTraceCSV(&buf, &log))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, res.Steps+1)
	assert.Equal(t, "step,state,position,read,write,move,new_state", lines[0])
	assert.Equal(t, "0,q0,0,a,B,R,q1", lines[1])
}
