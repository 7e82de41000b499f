package repository

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"aiseek/internal/config"
	"aiseek/internal/database"
	"aiseek/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// exerciseKVStore runs the behaviour every KVStore must share
func exerciseKVStore(t *testing.T, kv KVStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	require.NoError(t, kv.Set(ctx, "k", "v2"))
	require.NoError(t, kv.Set(ctx, "other", ""))

	value, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	value, ok, err = kv.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)

	log := NewScoreLog(kv)
	entry := models.NewScoreEntry("BRIDGE", models.DifficultyMedium, time.Now())
	require.NoError(t, log.Append(ctx, entry))
	entries, err := log.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ScoreEntry{entry}, entries)
}

func TestFileKVStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	exerciseKVStore(t, NewFileKVStore(path))

	// Survives a reopen
	value, ok, err := NewFileKVStore(path).Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestFileKVStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0o644))

	_, _, err := NewFileKVStore(path).Get(context.Background(), ScoresKey)
	assert.Error(t, err)
}

func TestSQLKVStore_SQLite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := database.Initialize(filepath.Join(t.TempDir(), "hangman.db"))
	require.NoError(t, err)
	store := NewSQLKVStore(db)
	defer store.Close()

	exerciseKVStore(t, store)
}

func TestSQLKVStore_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("aiseek_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{
			"test":      "aiseek-repository",
			"test-name": t.Name(),
		}),
	)
	if err != nil {
		t.Skipf("Skipping postgres test, container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(ctx, "postgres", database.DialectConfig{URL: connStr})
	require.NoError(t, err)
	store := NewSQLKVStore(db)
	defer store.Close()

	exerciseKVStore(t, store)
}

func TestRedisKVStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	store, err := NewRedisKVStore(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), db)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	t.Cleanup(func() {
		store.client.Del(ctx, redisKeyPrefix+"k", redisKeyPrefix+"other", redisKeyPrefix+ScoresKey)
	})

	exerciseKVStore(t, store)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("file", func(t *testing.T) {
		log, err := Open(ctx, &config.Config{ScoreStore: "file", ScoresPath: filepath.Join(dir, "scores.json")})
		require.NoError(t, err)
		defer log.Close()
		_, isFile := log.kv.(*FileKVStore)
		assert.True(t, isFile)
	})

	t.Run("sqlite", func(t *testing.T) {
		log, err := Open(ctx, &config.Config{ScoreStore: "sqlite", DatabasePath: filepath.Join(dir, "hangman.db")})
		require.NoError(t, err)
		defer log.Close()
		_, isSQL := log.kv.(*SQLKVStore)
		assert.True(t, isSQL)
	})

	t.Run("postgres without url", func(t *testing.T) {
		_, err := Open(ctx, &config.Config{ScoreStore: "postgres"})
		assert.Error(t, err)
	})

	t.Run("redis without addr", func(t *testing.T) {
		_, err := Open(ctx, &config.Config{ScoreStore: "redis"})
		assert.Error(t, err)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Open(ctx, &config.Config{ScoreStore: "etcd"})
		assert.ErrorIs(t, err, ErrUnsupportedStore)
	})
}
