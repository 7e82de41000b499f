// Package assistant produces hints and answers for a hangman game by
// prompting a locally hosted language model. Every failure is masked behind a
// fixed fallback text; callers never see an error from the service.
package assistant

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultHintLimit is the number of hints allowed per game
	DefaultHintLimit = 102

	HintLimitMessage     = "Hint limit reached"
	EmptyResponseMessage = "Couldn't get a hint this time."
	FallbackMessage      = "Try common vowels or consonants."
)

// Config bounds assistant usage per game.
// QuestionLimit of zero or less leaves questions uncapped.
type Config struct {
	HintLimit     int
	QuestionLimit int
}

// Assistant gates, prompts and post-processes generation requests
type Assistant struct {
	generator Generator
	cfg       Config
	metrics   *Metrics
}

// HintRequest is the game state a hint is based on
type HintRequest struct {
	SecretWord     string
	GuessedLetters []string
	UsageCount     int
}

// QuestionRequest is a free-text question from the player
type QuestionRequest struct {
	SecretWord string
	Question   string
	UsageCount int
}

// New creates an assistant. metrics may be nil.
func New(generator Generator, cfg Config, metrics *Metrics) *Assistant {
	return &Assistant{
		generator: generator,
		cfg:       cfg,
		metrics:   metrics,
	}
}

// HintLimit returns the per-game hint cap
func (a *Assistant) HintLimit() int {
	return a.cfg.HintLimit
}

// HintAllowed reports whether another hint may be requested at usage
func (a *Assistant) HintAllowed(usage int) bool {
	return usage < a.cfg.HintLimit
}

// QuestionAllowed reports whether another question may be asked at usage
func (a *Assistant) QuestionAllowed(usage int) bool {
	return a.cfg.QuestionLimit <= 0 || usage < a.cfg.QuestionLimit
}

// RequestHint starts a hint request. The returned bool is false when the
// usage cap was reached; the task then already holds HintLimitMessage and no
// call was made. Admitted requests count against the budget whatever their outcome.
func (a *Assistant) RequestHint(ctx context.Context, req HintRequest) (*Task, bool) {
	if !a.HintAllowed(req.UsageCount) {
		a.countLimited(KindHint)
		return resolvedTask(KindHint, Result{Text: HintLimitMessage, Limited: true}), false
	}

	prompt := BuildPrompt(PromptContext{
		Kind:           KindHint,
		SecretWord:     req.SecretWord,
		GuessedLetters: req.GuessedLetters,
	})
	return startTask(ctx, KindHint, func(ctx context.Context) Result {
		return a.generate(ctx, KindHint, prompt)
	}), true
}

// AskQuestion starts a question request. Questions are uncapped unless a
// QuestionLimit is configured, in which case they are gated like hints.
func (a *Assistant) AskQuestion(ctx context.Context, req QuestionRequest) (*Task, bool) {
	if !a.QuestionAllowed(req.UsageCount) {
		a.countLimited(KindQuestion)
		return resolvedTask(KindQuestion, Result{Text: HintLimitMessage, Limited: true}), false
	}

	prompt := BuildPrompt(PromptContext{
		Kind:       KindQuestion,
		SecretWord: req.SecretWord,
		Question:   req.Question,
	})
	return startTask(ctx, KindQuestion, func(ctx context.Context) Result {
		return a.generate(ctx, KindQuestion, prompt)
	}), true
}

func (a *Assistant) generate(ctx context.Context, kind Kind, prompt string) Result {
	start := time.Now()
	if a.metrics != nil {
		a.metrics.Requests.WithLabelValues(kind.String()).Inc()
	}

	text, err := a.generator.Generate(ctx, prompt)

	if a.metrics != nil {
		a.metrics.Duration.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())
	}

	if err != nil {
		log.WithFields(log.Fields{
			"kind":     kind.String(),
			"duration": time.Since(start),
			"error":    err,
		}).Warn("Assistant request failed, using fallback")
		if a.metrics != nil {
			a.metrics.Failures.WithLabelValues(kind.String()).Inc()
		}
		return Result{Text: FallbackMessage, Err: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.WithField("kind", kind.String()).Debug("Assistant returned an empty response")
		return Result{Text: EmptyResponseMessage}
	}

	log.WithFields(log.Fields{
		"kind":     kind.String(),
		"duration": time.Since(start),
		"length":   len(text),
	}).Debug("Assistant request completed")

	return Result{Text: text}
}

func (a *Assistant) countLimited(kind Kind) {
	log.WithField("kind", kind.String()).Info("Assistant usage limit reached")
	if a.metrics != nil {
		a.metrics.Limited.WithLabelValues(kind.String()).Inc()
	}
}
