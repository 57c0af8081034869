// Package storage persists experiment runs as per-run directories with
// metadata and raw outcomes.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/qrand/internal/analysis"
	"github.com/san-kum/qrand/internal/qrand"
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
	ID        string             `json:"id"`
	Source    string             `json:"source"`
	Timestamp time.Time          `json:"timestamp"`
	Samples   int                `json:"samples"`
	Seed      int64              `json:"seed"`
	Alphabet  int                `json:"alphabet"`
	Summary   map[string]float64 `json:"summary"`
}

// Save writes metadata.json and outcomes.csv under <base>/<source>_<unix>.
func (s *Store) Save(sourceName string, seed int64, seq qrand.Sequence, report *analysis.Report) (string, error) {
	runID := fmt.Sprintf("%s_%d", sourceName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Source:    sourceName,
		Timestamp: time.Now(),
		Samples:   len(seq),
		Seed:      seed,
		Alphabet:  report.Alphabet.Size(),
		Summary:   report.Summary(),
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

	csvFile, err := os.Create(filepath.Join(runDir, "outcomes.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "outcome"}); err != nil {
		return "", err
	}
	for i, v := range seq {
		if err := w.Write([]string{strconv.Itoa(i), strconv.Itoa(v)}); err != nil {
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

// LoadOutcomes reads back the raw sequence of a saved run.
func (s *Store) LoadOutcomes(runID string) (qrand.Sequence, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "outcomes.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return qrand.Sequence{}, nil
	}

	seq := make(qrand.Sequence, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		v, err := strconv.Atoi(records[i][1])
		if err != nil {
			continue
		}
		seq = append(seq, v)
	}

	return seq, nil
}

// ExportJSON dumps a run (metadata plus outcomes) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, seq qrand.Sequence) error {
	payload := struct {
		RunMetadata
		Outcomes qrand.Sequence `json:"outcomes"`
	}{
		RunMetadata: *meta,
		Outcomes:    seq,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
