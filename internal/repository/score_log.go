package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"aiseek/internal/models"
)

// ScoreLog keeps the score entries as one JSON array in a KVStore. Appends
// read the whole array and write it back; there is a single writer.
type ScoreLog struct {
	kv  KVStore
	key string
}

// NewScoreLog creates a score log stored under ScoresKey
func NewScoreLog(kv KVStore) *ScoreLog {
	return &ScoreLog{kv: kv, key: ScoresKey}
}

// ReadAll returns every entry in insertion order, or an empty slice
func (l *ScoreLog) ReadAll(ctx context.Context) ([]models.ScoreEntry, error) {
	raw, ok, err := l.kv.Get(ctx, l.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read score log: %w", err)
	}
	entries := []models.ScoreEntry{}
	if !ok || raw == "" {
		return entries, nil
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode score log: %w", err)
	}
	return entries, nil
}

// Append adds entry to the end of the log
func (l *ScoreLog) Append(ctx context.Context, entry models.ScoreEntry) error {
	return l.AppendAll(ctx, []models.ScoreEntry{entry})
}

// AppendAll adds entries to the end of the log in one write. Existing
// entries are never changed or removed.
func (l *ScoreLog) AppendAll(ctx context.Context, entries []models.ScoreEntry) error {
	existing, err := l.ReadAll(ctx)
	if err != nil {
		return err
	}
	return l.write(ctx, append(existing, entries...))
}

func (l *ScoreLog) write(ctx context.Context, entries []models.ScoreEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode score log: %w", err)
	}
	if err := l.kv.Set(ctx, l.key, string(data)); err != nil {
		return fmt.Errorf("failed to write score log: %w", err)
	}
	return nil
}

// Close releases the underlying store
func (l *ScoreLog) Close() error {
	return l.kv.Close()
}
