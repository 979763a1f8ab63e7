package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/growvec/internal/scenario"
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

type RunMetadata struct {
	ID            string             `json:"id"`
	Scenario      string             `json:"scenario"`
	Constructor   string             `json:"constructor"`
	Timestamp     time.Time          `json:"timestamp"`
	Steps         int                `json:"steps"`
	Errors        int                `json:"errors"`
	FinalSize     int                `json:"final_size"`
	FinalCapacity int                `json:"final_capacity"`
	Elements      string             `json:"elements"`
	Metrics       map[string]float64 `json:"metrics"`
}

var stepHeader = []string{"step", "op", "arg", "size", "capacity", "delta", "output", "error"}

func (s *Store) Save(result *scenario.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", dirSafe(result.Name), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    result.Name,
		Constructor: result.Constructor,
		Timestamp:   now,
		Steps:       len(result.Steps),
		Errors:      result.Errors,
		Metrics:     result.Metrics,
	}
	if result.Final != nil {
		meta.FinalSize = result.Final.Len()
		meta.FinalCapacity = result.Final.Cap()
		meta.Elements = result.Final.String()
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

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(stepHeader); err != nil {
		return "", err
	}
	for _, step := range result.Steps {
		row := []string{
			strconv.Itoa(step.Index),
			step.Op,
			step.Arg,
			strconv.Itoa(step.Size),
			strconv.Itoa(step.Capacity),
			strconv.Itoa(step.Delta),
			step.Output,
			step.Err,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// dirSafe keeps a scenario name from leaving baseDir when used in a run ID.
func dirSafe(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(name)
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
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

func (s *Store) LoadSteps(runID string) ([]scenario.Step, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(stepHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []scenario.Step{}, nil
	}

	steps := make([]scenario.Step, 0, len(records)-1)
	for i, record := range records[1:] {
		index, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("steps.csv row %d: %w", i+1, err)
		}
		size, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("steps.csv row %d: %w", i+1, err)
		}
		capacity, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("steps.csv row %d: %w", i+1, err)
		}
		delta, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("steps.csv row %d: %w", i+1, err)
		}

		steps = append(steps, scenario.Step{
			Index:    index,
			Op:       record[1],
			Arg:      record[2],
			Size:     size,
			Capacity: capacity,
			Delta:    delta,
			Output:   record[6],
			Err:      record[7],
		})
	}

	return steps, nil
}
