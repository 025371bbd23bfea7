package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/accrete/internal/accrete"
)

// Store archives finished runs, one directory per run holding metadata.json
// and planets.csv. Only results are kept; a run cannot be resumed.
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
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Source     string             `json:"source"`
	Star       accrete.Star       `json:"star"`
	NumPlanets int                `json:"planets"`
	Nuclei     int                `json:"nuclei"`
	Merges     int                `json:"merges"`
	Metrics    map[string]float64 `json:"metrics"`
}

var planetHeader = []string{"axis", "eccentricity", "mass", "earth_mass", "gas_giant"}

func (s *Store) Save(seed int64, source string, result *accrete.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("run_%d_%d", seed, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  now,
		Seed:       seed,
		Source:     source,
		Star:       result.Star,
		NumPlanets: len(result.Planets),
		Nuclei:     result.Nuclei,
		Merges:     result.Merges,
		Metrics:    result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "planets.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WritePlanetsCSV(csvFile, result.Planets); err != nil {
		return "", err
	}
	return runID, nil
}

// WritePlanetsCSV writes one row per planet under a header row.
func WritePlanetsCSV(f io.Writer, planets accrete.Planets) error {
	w := csv.NewWriter(f)
	if err := w.Write(planetHeader); err != nil {
		return err
	}
	for _, p := range planets {
		row := []string{
			strconv.FormatFloat(p.Axis, 'g', -1, 64),
			strconv.FormatFloat(p.Eccn, 'g', -1, 64),
			strconv.FormatFloat(p.Mass, 'g', -1, 64),
			strconv.FormatFloat(p.EarthMass(), 'g', -1, 64),
			strconv.FormatBool(p.GasGiant),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns archived runs, oldest first.
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

// LoadPlanets reads a run's planets back, bound to the run's star.
func (s *Store) LoadPlanets(runID string) (accrete.Planets, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "planets.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return accrete.Planets{}, nil
	}

	planets := make(accrete.Planets, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < len(planetHeader) {
			return nil, fmt.Errorf("planets.csv row %d: expected %d fields, got %d", i+1, len(planetHeader), len(record))
		}
		var vals [3]float64
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("planets.csv row %d: %w", i+1, err)
			}
			vals[j] = v
		}
		giant, err := strconv.ParseBool(record[4])
		if err != nil {
			return nil, fmt.Errorf("planets.csv row %d: %w", i+1, err)
		}
		planets = append(planets, accrete.Planetesimal{
			Star:     meta.Star,
			Axis:     vals[0],
			Eccn:     vals[1],
			Mass:     vals[2],
			GasGiant: giant,
		})
	}
	return planets, nil
}
