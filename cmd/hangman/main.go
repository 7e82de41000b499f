package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"aiseek/internal/assistant"
	"aiseek/internal/config"
	"aiseek/internal/console"
	"aiseek/internal/game"
	"aiseek/internal/logging"
	"aiseek/internal/repository"
	"aiseek/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logging.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	// Stop on interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lists := game.DefaultWordLists()
	if cfg.WordsFile != "" {
		loaded, err := game.LoadWordLists(cfg.WordsFile)
		if err != nil {
			log.Fatalf("Failed to load word lists: %v", err)
		}
		lists = loaded
	}

	scores, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open score store: %v", err)
	}
	defer scores.Close()

	registry := prometheus.NewRegistry()
	metrics := assistant.NewMetrics(registry)

	client := assistant.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.AssistantTimeout)
	asst := assistant.New(client, assistant.Config{
		HintLimit:     cfg.HintLimit,
		QuestionLimit: cfg.QuestionLimit,
	}, metrics)

	session := service.NewGameSession(service.SessionConfig{
		Lists:            lists,
		Difficulty:       cfg.Difficulty,
		AssistantEnabled: cfg.AssistantEnabled,
	}, asst, scores)
	if err := session.Start(cfg.Difficulty); err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	log.WithFields(log.Fields{
		"model":      client.Model(),
		"store":      cfg.ScoreStore,
		"difficulty": cfg.Difficulty,
	}).Debug("Starting hangman")

	runErr := console.New(session, service.NewScoreService(scores), os.Stdin, os.Stdout).Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.WithError(runErr).Error("Console stopped")
	}

	if cfg.MetricsPath != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsPath, registry); err != nil {
			log.WithError(err).Warn("Failed to write metrics")
		}
	}
}
