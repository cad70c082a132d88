package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dvllgmz/escapelab/internal/escape"
	"github.com/dvllgmz/escapelab/internal/plane"
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
	Variant       string             `json:"variant"`
	Timestamp     time.Time          `json:"timestamp"`
	TopLeftRe     float64            `json:"top_left_re"`
	TopLeftIm     float64            `json:"top_left_im"`
	BottomRightRe float64            `json:"bottom_right_re"`
	BottomRightIm float64            `json:"bottom_right_im"`
	Step          float64            `json:"step"`
	CRe           float64            `json:"c_re"`
	CIm           float64            `json:"c_im"`
	MaxIterations int                `json:"max_iterations"`
	Rows          int                `json:"rows"`
	Cols          int                `json:"cols"`
	Stats         map[string]float64 `json:"stats"`
}

// Region reconstructs the sampling region this run was rendered over.
func (m *RunMetadata) Region() plane.Region {
	return plane.Region{
		TopLeft:     complex(m.TopLeftRe, m.TopLeftIm),
		BottomRight: complex(m.BottomRightRe, m.BottomRightIm),
		Step:        m.Step,
	}
}

func (s *Store) Save(variant string, region plane.Region, c complex128, maxIterations int, in escape.Intensity, stats map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", variant, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Variant:       variant,
		Timestamp:     time.Now(),
		TopLeftRe:     real(region.TopLeft),
		TopLeftIm:     imag(region.TopLeft),
		BottomRightRe: real(region.BottomRight),
		BottomRightIm: imag(region.BottomRight),
		Step:          region.Step,
		CRe:           real(c),
		CIm:           imag(c),
		MaxIterations: maxIterations,
		Rows:          in.Rows(),
		Cols:          in.Cols(),
		Stats:         stats,
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

	csvPath := filepath.Join(runDir, "intensity.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	for _, row := range in {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadIntensity(runID string) (escape.Intensity, error) {
	csvPath := filepath.Join(s.baseDir, runID, "intensity.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	in := make(escape.Intensity, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("corrupt intensity data in %s: %w", runID, err)
			}
			row = append(row, v)
		}
		in = append(in, row)
	}

	return in, nil
}
