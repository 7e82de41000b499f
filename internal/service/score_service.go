package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"aiseek/internal/models"

	log "github.com/sirupsen/logrus"
)

// ScoreArchive is a score log that accepts several entries in one append
type ScoreArchive interface {
	ReadAll(ctx context.Context) ([]models.ScoreEntry, error)
	AppendAll(ctx context.Context, entries []models.ScoreEntry) error
}

// ScoreExport is the file format written by Export
type ScoreExport struct {
	Version    string              `json:"version"`
	ExportedAt time.Time           `json:"exported_at"`
	Scores     []models.ScoreEntry `json:"scores"`
}

// ScoreService reads, summarises and moves the score log
type ScoreService struct {
	scores ScoreArchive
}

func NewScoreService(scores ScoreArchive) *ScoreService {
	return &ScoreService{scores: scores}
}

// List returns every won game in the order it was recorded
func (s *ScoreService) List(ctx context.Context) ([]models.ScoreEntry, error) {
	return s.scores.ReadAll(ctx)
}

// Summary counts wins per difficulty and finds the latest win
func (s *ScoreService) Summary(ctx context.Context) (*models.ScoreSummary, error) {
	entries, err := s.scores.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.ScoreSummary{
		TotalWins:    len(entries),
		ByDifficulty: make(map[models.Difficulty]int, len(models.Difficulties)),
	}
	for _, d := range models.Difficulties {
		summary.ByDifficulty[d] = 0
	}
	for _, e := range entries {
		summary.ByDifficulty[e.Difficulty]++
	}
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		summary.LastWin = &last
	}
	return summary, nil
}

// Export writes the score log to outputPath as indented JSON
func (s *ScoreService) Export(ctx context.Context, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	n, err := s.ExportTo(ctx, file)
	if err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outputPath, err)
	}

	log.WithFields(log.Fields{"path": outputPath, "scores": n}).Info("Scores exported")
	return nil
}

// ExportTo writes the score log to w and returns the number of entries
func (s *ScoreService) ExportTo(ctx context.Context, w io.Writer) (int, error) {
	entries, err := s.scores.ReadAll(ctx)
	if err != nil {
		return 0, err
	}

	export := ScoreExport{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Scores:     entries,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return 0, fmt.Errorf("failed to encode scores: %w", err)
	}
	return len(entries), nil
}

// Import reads an export file and appends its entries to the log. The
// existing entries are kept as they are.
func (s *ScoreService) Import(ctx context.Context, inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	n, err := s.ImportFromReader(ctx, file)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"path": inputPath, "scores": n}).Info("Scores imported")
	return nil
}

// ImportFromReader is Import over an arbitrary reader
func (s *ScoreService) ImportFromReader(ctx context.Context, r io.Reader) (int, error) {
	var export ScoreExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return 0, fmt.Errorf("failed to decode scores: %w", err)
	}

	for i, e := range export.Scores {
		if e.Word == "" {
			return 0, fmt.Errorf("score %d has no word", i)
		}
		d, err := models.ParseDifficulty(string(e.Difficulty))
		if err != nil {
			return 0, fmt.Errorf("score %d: %w", i, err)
		}
		export.Scores[i].Difficulty = d
	}

	if err := s.scores.AppendAll(ctx, export.Scores); err != nil {
		return 0, err
	}
	return len(export.Scores), nil
}
