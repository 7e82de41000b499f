package repository

import (
	"context"
	"errors"

	"aiseek/internal/models"
)

// ScoresKey is the key the score log is stored under
const ScoresKey = "hangmanScores"

// ErrUnsupportedStore is returned by Open for an unknown SCORE_STORE value
var ErrUnsupportedStore = errors.New("unsupported score store")

// ScoreStore is the append-only log of won games
type ScoreStore interface {
	ReadAll(ctx context.Context) ([]models.ScoreEntry, error)
	Append(ctx context.Context, entry models.ScoreEntry) error
}

// KVStore is a string key/value store. Get reports false for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
