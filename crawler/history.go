package crawler

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/baldhumanity/mazecrawler/maze"
)

// GenerationRecord is the per-generation summary kept in a run history. Genomes are not recorded.
type GenerationRecord struct {
	Generation  int
	Points      int
	Path        []maze.Position
	Termination Termination
	Control     bool
	Trials      int
	MeanPoints  float64
	StdevPoints float64
}

// History is the replayable record of one run: its maze and the winner of every generation.
type History struct {
	RunID    string
	Started  time.Time
	Maze     maze.Grid
	Records  []GenerationRecord
	Finished bool
}

// HistoryReporter collects a History while a simulation runs.
type HistoryReporter struct {
	History *History
}

// NewHistoryReporter starts an empty history for the simulation's run.
func NewHistoryReporter(s *Simulation) *HistoryReporter {
	return &HistoryReporter{History: &History{
		RunID:   s.RunID.String(),
		Started: time.Now(),
		Maze:    s.Maze.Clone(),
	}}
}

func (h *HistoryReporter) StartGeneration(int) {}

func (h *HistoryReporter) EndGeneration(result *GenerationResult) {
	path := make([]maze.Position, len(result.Path))
	copy(path, result.Path)
	h.History.Records = append(h.History.Records, GenerationRecord{
		Generation:  result.Generation,
		Points:      result.Points,
		Path:        path,
		Termination: result.Termination,
		Control:     result.Control,
		Trials:      result.Trials,
		MeanPoints:  result.MeanPoints,
		StdevPoints: result.StdevPoints,
	})
}

func (h *HistoryReporter) Complete(*GenerationResult) {
	h.History.Finished = true
}

// SaveHistory writes the history to a gzip-compressed gob file.
func SaveHistory(history *History, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create history file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(history); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush history file '%s': %w", filePath, err)
	}
	return nil
}

// LoadHistory reads a history written by SaveHistory.
func LoadHistory(filePath string) (*History, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for history: %w", err)
	}
	defer gzReader.Close()

	history := &History{}
	if err := gob.NewDecoder(gzReader).Decode(history); err != nil {
		return nil, fmt.Errorf("failed to decode history from '%s': %w", filePath, err)
	}
	return history, nil
}

// Best returns the record with the most points, the earliest one on ties.
func (h *History) Best() (GenerationRecord, bool) {
	if len(h.Records) == 0 {
		return GenerationRecord{}, false
	}
	best := h.Records[0]
	for _, r := range h.Records[1:] {
		if r.Points > best.Points {
			best = r
		}
	}
	return best, true
}
