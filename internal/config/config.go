package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"aiseek/internal/models"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration
type Config struct {
	// Assistant
	OllamaURL        string
	OllamaModel      string
	AssistantEnabled bool
	AssistantTimeout time.Duration
	HintLimit        int
	QuestionLimit    int

	// Game
	Difficulty models.Difficulty
	WordsFile  string

	// Score log
	ScoreStore    string
	ScoresPath    string
	DatabasePath  string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Observability
	MetricsPath string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from a .env file, if present, and environment
// variables with sensible defaults
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to read .env file")
	}

	difficulty, err := models.ParseDifficulty(getEnv("DIFFICULTY", string(models.DifficultyHard)))
	if err != nil {
		log.WithError(err).Warn("Invalid DIFFICULTY, using hard")
		difficulty = models.DifficultyHard
	}

	return &Config{
		OllamaURL:        getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:      getEnv("OLLAMA_MODEL", "gemma3:4b"),
		AssistantEnabled: getEnvBool("ASSISTANT_ENABLED", true),
		AssistantTimeout: getEnvDuration("ASSISTANT_TIMEOUT", 0),
		HintLimit:        getEnvInt("HINT_LIMIT", 102),
		QuestionLimit:    getEnvInt("QUESTION_LIMIT", 0),

		Difficulty: difficulty,
		WordsFile:  getEnv("WORDS_FILE", ""),

		ScoreStore:    strings.ToLower(getEnv("SCORE_STORE", "file")),
		ScoresPath:    getEnv("SCORES_PATH", "./hangman_scores.json"),
		DatabasePath:  getEnv("DB_PATH", "./hangman.db"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MetricsPath: getEnv("METRICS_PATH", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": value}).Warn("Invalid integer, using default")
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": value}).Warn("Invalid boolean, using default")
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.WithFields(log.Fields{"key": key, "value": value}).Warn("Invalid duration, using default")
		return defaultValue
	}
	return d
}
