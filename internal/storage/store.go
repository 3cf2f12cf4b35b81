package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/acidbase/internal/chem"
	"github.com/san-kum/acidbase/internal/sweep"
)

const (
	metadataFile = "metadata.json"
	speciesFile  = "species.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

var csvHeader = []string{"concentration", "solute", "product", "h3o", "oh", "h2o", "ph"}

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
	Kind      chem.Kind          `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Strength  float64            `json:"strength"`
	MinC      float64            `json:"min_concentration"`
	MaxC      float64            `json:"max_concentration"`
	Points    int                `json:"points"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg sweep.Config, result *sweep.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", cfg.Kind, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      cfg.Kind,
		Timestamp: now,
		Strength:  cfg.Strength,
		MinC:      cfg.MinC,
		MaxC:      cfg.MaxC,
		Points:    len(result.Points),
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, speciesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for _, p := range result.Points {
		row := []string{
			formatFloat(p.Concentration),
			formatFloat(p.Solute),
			formatFloat(p.Product),
			formatFloat(p.Hydronium),
			formatFloat(p.Hydroxide),
			formatFloat(p.Water),
			formatFloat(p.PH),
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

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns every stored run, oldest first. Directories without readable
// metadata are skipped.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadPoints reads the species table of a run back into sweep points.
func (s *Store) LoadPoints(runID string) ([]sweep.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, speciesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []sweep.Point{}, nil
	}

	points := make([]sweep.Point, 0, len(records)-1)
	for i, record := range records[1:] {
		var vals [7]float64
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s row %d: %w", runID, i+1, err)
			}
			vals[j] = v
		}
		points = append(points, sweep.Point{
			Concentration: vals[0],
			Concentrations: chem.Concentrations{
				Solute:    vals[1],
				Product:   vals[2],
				Hydronium: vals[3],
				Hydroxide: vals[4],
				Water:     vals[5],
			},
			PH: vals[6],
		})
	}

	return points, nil
}
