// Package storage persists sampled trajectories so saved runs can be
// re-plotted or exported without re-simulating. Each run gets its own
// directory with metadata.json and samples.csv; a sqlite index beside
// them serves listings.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/worldsim/internal/world"
)

type Store struct {
	baseDir string
	ix      *index
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the data directory and opens the run index.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	ix, err := openIndex(filepath.Join(s.baseDir, "runs.db"))
	if err != nil {
		return err
	}
	s.ix = ix
	return nil
}

func (s *Store) Close() error {
	if s.ix == nil {
		return nil
	}
	return s.ix.close()
}

type RunMetadata struct {
	ID           string    `json:"id"`
	Scenario     string    `json:"scenario"`
	Timestamp    time.Time `json:"timestamp"`
	DT           float64   `json:"dt"`
	StartTime    float64   `json:"start_time"`
	EndTime      float64   `json:"end_time"`
	SamplePeriod int       `json:"sample_period"`
	Samples      int       `json:"samples"`
	Fields       []string  `json:"fields"`
}

// sampleFields is the CSV column order: time first, then every other
// snapshot field in sorted order.
func sampleFields() []string {
	fields := []string{"time"}
	for _, name := range world.FieldNames() {
		if name != "time" {
			fields = append(fields, name)
		}
	}
	return fields
}

// Save writes one run: metadata.json, samples.csv, and an index row.
// period is the tick interval the samples were taken at.
func (s *Store) Save(scenario string, cfg world.Config, period int, samples []world.Snapshot) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	fields := sampleFields()
	meta := RunMetadata{
		ID:           runID,
		Scenario:     scenario,
		Timestamp:    time.Now(),
		DT:           cfg.DT,
		StartTime:    cfg.StartTime,
		EndTime:      cfg.EndTime,
		SamplePeriod: period,
		Samples:      len(samples),
		Fields:       fields,
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

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(fields); err != nil {
		return "", err
	}
	for i := range samples {
		row := make([]string, 0, len(fields))
		for _, name := range fields {
			v, _ := samples[i].Field(name)
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	if err := s.ix.add(meta); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns run summaries from the index, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	return s.ix.list()
}

// Load reads one run's full metadata.
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

// LoadSamples reads a run's samples back as the CSV header plus one
// row of values per sampled instant.
func (s *Store) LoadSamples(runID string) ([]string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("storage: run %s has no samples", runID)
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("storage: bad sample value %q: %w", field, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
