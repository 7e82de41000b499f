package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"aiseek/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKVStore is an in-memory KVStore for tests
type memKVStore struct {
	values map[string]string
	setErr error
}

func newMemKVStore() *memKVStore {
	return &memKVStore{values: make(map[string]string)}
}

func (m *memKVStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKVStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *memKVStore) Close() error { return nil }

func TestScoreLog_ReadAllEmpty(t *testing.T) {
	log := NewScoreLog(newMemKVStore())

	entries, err := log.ReadAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestScoreLog_AppendKeepsOrderAndDuplicates(t *testing.T) {
	kv := newMemKVStore()
	log := NewScoreLog(kv)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC)

	first := models.NewScoreEntry("DOG", models.DifficultyEasy, at)
	second := models.NewScoreEntry("PEWDIEPIE", models.DifficultyHard, at.Add(time.Minute))

	require.NoError(t, log.Append(ctx, first))
	require.NoError(t, log.Append(ctx, second))
	require.NoError(t, log.Append(ctx, first))

	entries, err := log.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ScoreEntry{first, second, first}, entries)
	assert.JSONEq(t,
		`[{"word":"DOG","difficulty":"easy","date":"2024-03-01T11:30:00Z"},
		  {"word":"PEWDIEPIE","difficulty":"hard","date":"2024-03-01T11:31:00Z"},
		  {"word":"DOG","difficulty":"easy","date":"2024-03-01T11:30:00Z"}]`,
		kv.values[ScoresKey])
}

func TestScoreLog_CorruptValue(t *testing.T) {
	kv := newMemKVStore()
	kv.values[ScoresKey] = "{not json"

	_, err := NewScoreLog(kv).ReadAll(context.Background())
	assert.Error(t, err)

	err = NewScoreLog(kv).Append(context.Background(), models.ScoreEntry{Word: "CAT"})
	assert.Error(t, err)
	assert.Equal(t, "{not json", kv.values[ScoresKey])
}

func TestScoreLog_WriteFailure(t *testing.T) {
	kv := newMemKVStore()
	kv.setErr = errors.New("disk full")

	err := NewScoreLog(kv).Append(context.Background(), models.ScoreEntry{Word: "CAT"})
	assert.ErrorIs(t, err, kv.setErr)
}

func TestScoreLog_AppendAllKeepsExisting(t *testing.T) {
	kv := newMemKVStore()
	log := NewScoreLog(kv)
	ctx := context.Background()
	dog := models.ScoreEntry{Word: "DOG", Difficulty: models.DifficultyEasy, Date: "2024-03-01T11:30:00Z"}
	urdu := models.ScoreEntry{Word: "URDU", Difficulty: models.DifficultyHard, Date: "2024-03-02T09:00:00Z"}

	require.NoError(t, log.Append(ctx, dog))
	require.NoError(t, log.AppendAll(ctx, nil))
	require.NoError(t, log.AppendAll(ctx, []models.ScoreEntry{urdu}))

	entries, err := log.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ScoreEntry{dog, urdu}, entries)
}

func TestScoreLog_AppendAllToEmptyLog(t *testing.T) {
	kv := newMemKVStore()
	require.NoError(t, NewScoreLog(kv).AppendAll(context.Background(), nil))
	assert.Equal(t, "[]", kv.values[ScoresKey])
}
