// Package storage persists completed runs. Each run gets a directory
// under the data dir holding run.json (the interchange format log viewers
// consume; field names are a stable contract) and trace.csv.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/tmsim/internal/machine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunLog is the persisted-run interchange format. Field names and the
// per-step ordering are part of the external contract; do not rename.
type RunLog struct {
	Timestamp     time.Time  `json:"timestamp"`
	InputString   string     `json:"input_string"`
	TotalSteps    int        `json:"total_steps"`
	ExecutionTime float64    `json:"execution_time"`
	FinalResult   string     `json:"final_result"`
	ExecutionLog  []LogEntry `json:"execution_log"`
}

// LogEntry is one executed transition in wire form.
type LogEntry struct {
	Step     int    `json:"step"`
	State    string `json:"state"`
	Position int    `json:"position"`
	Read     string `json:"read"`
	Write    string `json:"write"`
	Move     string `json:"move"`
	NewState string `json:"new_state"`
}

// RunInfo pairs a stored log with its run ID (the directory name).
type RunInfo struct {
	ID string
	RunLog
}

// NewRunLog converts an engine result to the wire form. execution_time is
// seconds.
func NewRunLog(res *machine.Result) RunLog {
	log := RunLog{
		Timestamp:     time.Now(),
		InputString:   res.Input,
		TotalSteps:    res.Steps,
		ExecutionTime: res.Elapsed.Seconds(),
		FinalResult:   res.Verdict.Marker(),
		ExecutionLog:  make([]LogEntry, len(res.Trace)),
	}
	for i, rec := range res.Trace {
		log.ExecutionLog[i] = LogEntry{
			Step:     rec.Step,
			State:    rec.State.String(),
			Position: rec.Position,
			Read:     rec.Read.String(),
			Write:    rec.Write.String(),
			Move:     rec.Move.String(),
			NewState: rec.NextState.String(),
		}
	}
	return log
}

// RecordsFromLog converts wire entries back to engine records, so stored
// traces can be replayed or plotted without re-running the machine.
func RecordsFromLog(log *RunLog) ([]machine.StepRecord, error) {
	recs := make([]machine.StepRecord, len(log.ExecutionLog))
	for i, e := range log.ExecutionLog {
		state, err := machine.ParseState(e.State)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		next, err := machine.ParseState(e.NewState)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		move, err := machine.ParseMove(e.Move)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if len(e.Read) != 1 || len(e.Write) != 1 {
			return nil, fmt.Errorf("entry %d: malformed symbol %q/%q", i, e.Read, e.Write)
		}
		recs[i] = machine.StepRecord{
			Step:      e.Step,
			State:     state,
			Position:  e.Position,
			Read:      machine.Symbol(e.Read[0]),
			Write:     machine.Symbol(e.Write[0]),
			Move:      move,
			NextState: next,
		}
	}
	return recs, nil
}

// Save writes run.json and trace.csv for a completed run and returns the
// run ID. Nanosecond IDs keep batch runs within one second distinct.
func (s *Store) Save(res *machine.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	log := NewRunLog(res)

	logFile, err := os.Create(filepath.Join(runDir, "run.json"))
	if err != nil {
		return "", err
	}
	defer logFile.Close()

	enc := json.NewEncoder(logFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(log); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	return runID, WriteTraceCSV(csvFile, &log)
}

// List returns the stored runs, oldest first.
func (s *Store) List() ([]RunInfo, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunInfo{}, nil
		}
		return nil, err
	}

	runs := make([]RunInfo, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		log, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, RunInfo{ID: entry.Name(), RunLog: *log})
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunLog, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "run.json"))
	if err != nil {
		return nil, err
	}

	var log RunLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// LoadTrace loads a stored run and decodes its trace to engine records.
func (s *Store) LoadTrace(runID string) (*RunLog, []machine.StepRecord, error) {
	log, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	recs, err := RecordsFromLog(log)
	if err != nil {
		return nil, nil, err
	}
	return log, recs, nil
}
