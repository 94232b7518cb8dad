package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fab-twin/waferslip/internal/cosim"
)

// Store persists co-simulation runs, one directory per run with a
// metadata.json and the sampled trace as trace.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Scenario      string    `json:"scenario"`
	Timestamp     time.Time `json:"timestamp"`
	WaferType     string    `json:"wafer_type"`
	StepSize      float64   `json:"step_size"`
	Duration      float64   `json:"duration"`
	SlipAlarms    int       `json:"slip_alarms"`
	MaxSlipFactor float64   `json:"max_slip_factor"`
}

// Save writes the run to disk and returns its generated ID.
func (s *Store) Save(sc cosim.Scenario, trace *cosim.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%s", sc.Name, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Scenario:      sc.Name,
		Timestamp:     time.Now(),
		WaferType:     sc.WaferType.String(),
		StepSize:      sc.StepSize,
		Duration:      sc.Duration(),
		SlipAlarms:    trace.SlipAlarms,
		MaxSlipFactor: trace.MaxSlipFactor,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "slip_factor", "max_safe_acceleration", "is_slipping"}); err != nil {
		return "", err
	}
	for i := range trace.Times {
		row := []string{
			strconv.FormatFloat(trace.Times[i], 'f', 6, 64),
			strconv.FormatFloat(trace.SlipFactor[i], 'f', 6, 64),
			strconv.FormatFloat(trace.MaxSafeAccel[i], 'f', 6, 64),
			strconv.FormatBool(trace.Slipping[i]),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrace reads the sampled trace back from trace.csv.
func (s *Store) LoadTrace(runID string) (*cosim.Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	trace := &cosim.Trace{}
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 4 {
			return nil, fmt.Errorf("storage: malformed trace row %d in %s", i, runID)
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, err
		}
		slip, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, err
		}
		maxAcc, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, err
		}
		slipping, err := strconv.ParseBool(rec[3])
		if err != nil {
			return nil, err
		}

		trace.Times = append(trace.Times, t)
		trace.SlipFactor = append(trace.SlipFactor, slip)
		trace.MaxSafeAccel = append(trace.MaxSafeAccel, maxAcc)
		trace.Slipping = append(trace.Slipping, slipping)
		if slipping {
			trace.SlipAlarms++
		}
		if slip > trace.MaxSlipFactor {
			trace.MaxSlipFactor = slip
		}
	}

	return trace, nil
}
