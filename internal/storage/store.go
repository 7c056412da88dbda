// Package storage persists recorded simulation runs: one directory per
// run holding metadata.json and a states.csv of body positions.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbitview/internal/vec"
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

// RunMetadata describes one recorded run.
type RunMetadata struct {
	ID         string             `json:"id"`
	System     string             `json:"system"`
	Timestamp  time.Time          `json:"timestamp"`
	Integrator string             `json:"integrator"`
	Speed      float64            `json:"speed"`
	Samples    int                `json:"samples"`
	Ticks      int                `json:"ticks"`
	Bodies     []string           `json:"bodies"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Result is the recorded output of a headless run: one row of body
// positions per simulation sample.
type Result struct {
	Times     []float64
	Positions [][]vec.Vec3
	Metrics   map[string]float64
}

// Save writes the run under a timestamped id and returns it.
func (s *Store) Save(system, integrator string, speed float64, samples, ticks int, bodies []string, result *Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", system, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		System:     system,
		Timestamp:  time.Now(),
		Integrator: integrator,
		Speed:      speed,
		Samples:    samples,
		Ticks:      ticks,
		Bodies:     bodies,
		Metrics:    result.Metrics,
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

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, id := range bodies {
		header = append(header, id+"_x", id+"_y", id+"_z")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, row := range result.Positions {
		rec := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, p := range row {
			rec = append(rec,
				strconv.FormatFloat(p.X, 'e', 9, 64),
				strconv.FormatFloat(p.Y, 'e', 9, 64),
				strconv.FormatFloat(p.Z, 'e', 9, 64))
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run.
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

// Load reads one run's metadata.
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

// LoadPositions reads the recorded time and position rows back.
func (s *Store) LoadPositions(runID string) ([]float64, [][]vec.Vec3, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]vec.Vec3{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	positions := make([][]vec.Vec3, 0, len(records)-1)

	for _, rec := range records[1:] {
		if len(rec) < 4 || (len(rec)-1)%3 != 0 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}

		row := make([]vec.Vec3, 0, (len(rec)-1)/3)
		ok := true
		for j := 1; j+2 < len(rec); j += 3 {
			x, ex := strconv.ParseFloat(rec[j], 64)
			y, ey := strconv.ParseFloat(rec[j+1], 64)
			z, ez := strconv.ParseFloat(rec[j+2], 64)
			if ex != nil || ey != nil || ez != nil {
				ok = false
				break
			}
			row = append(row, vec.Vec3{X: x, Y: y, Z: z})
		}
		if !ok {
			continue
		}
		times = append(times, t)
		positions = append(positions, row)
	}

	return times, positions, nil
}

// ExportJSON writes the whole run as one json document to stdout.
func (s *Store) ExportJSON(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, positions, err := s.LoadPositions(runID)
	if err != nil {
		return err
	}

	doc := struct {
		Meta      *RunMetadata `json:"meta"`
		Times     []float64    `json:"times"`
		Positions [][]vec.Vec3 `json:"positions"`
	}{meta, times, positions}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
