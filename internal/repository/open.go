package repository

import (
	"context"
	"fmt"

	"aiseek/internal/config"
	"aiseek/internal/database"

	log "github.com/sirupsen/logrus"
)

// Open builds the score log on the backend named by cfg.ScoreStore
func Open(ctx context.Context, cfg *config.Config) (*ScoreLog, error) {
	kv, err := openKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("store", cfg.ScoreStore).Debug("Score store opened")
	return NewScoreLog(kv), nil
}

func openKV(ctx context.Context, cfg *config.Config) (KVStore, error) {
	switch cfg.ScoreStore {
	case "file", "":
		return NewFileKVStore(cfg.ScoresPath), nil
	case "sqlite", "sqlite3":
		db, err := database.Open(ctx, cfg.ScoreStore, database.DialectConfig{Path: cfg.DatabasePath})
		if err != nil {
			return nil, err
		}
		return NewSQLKVStore(db), nil
	case "postgres", "postgresql", "mysql":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the %s score store", cfg.ScoreStore)
		}
		db, err := database.Open(ctx, cfg.ScoreStore, database.DialectConfig{URL: cfg.DatabaseURL})
		if err != nil {
			return nil, err
		}
		return NewSQLKVStore(db), nil
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required for the redis score store")
		}
		return NewRedisKVStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, cfg.ScoreStore)
	}
}
