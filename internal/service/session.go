package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"aiseek/internal/assistant"
	"aiseek/internal/game"
	"aiseek/internal/models"
	"aiseek/internal/repository"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrAssistantDisabled is returned for hint requests while the AI toggle is off
	ErrAssistantDisabled = errors.New("assistant is disabled")
	// ErrEmptyQuestion is returned when the question text is blank
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrNoGame is returned by assistant requests before Start
	ErrNoGame = errors.New("no game in progress")
)

// SessionConfig holds the settings a session starts with
type SessionConfig struct {
	Lists            game.WordLists
	Difficulty       models.Difficulty
	AssistantEnabled bool
}

// GameSession is the single live hangman session. It owns the current game,
// the assistant display state and the win path into the score log.
//
// A session is driven from one goroutine. Assistant tasks run elsewhere but
// their results are only applied through Apply on the driving goroutine.
type GameSession struct {
	lists     game.WordLists
	assistant *assistant.Assistant
	scores    repository.ScoreStore

	intn func(int) int
	now  func() time.Time

	game             *game.Game
	difficulty       models.Difficulty
	assistantEnabled bool
	hint             string
	answer           string
	questionsAsked   int
}

// NewGameSession creates a session. Call Start before anything else.
func NewGameSession(cfg SessionConfig, asst *assistant.Assistant, scores repository.ScoreStore) *GameSession {
	lists := cfg.Lists
	if lists == nil {
		lists = game.DefaultWordLists()
	}
	return &GameSession{
		lists:            lists,
		assistant:        asst,
		scores:           scores,
		intn:             rand.IntN,
		now:              time.Now,
		difficulty:       cfg.Difficulty,
		assistantEnabled: cfg.AssistantEnabled,
	}
}

// Start begins a new game at difficulty
func (s *GameSession) Start(difficulty models.Difficulty) error {
	g, err := game.Start(s.lists, difficulty, s.intn)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	s.game = g
	s.difficulty = difficulty
	s.hint = ""
	s.questionsAsked = 0

	log.WithFields(log.Fields{
		"game_id":    g.ID(),
		"difficulty": difficulty,
	}).Info("Game started")
	return nil
}

// Restart begins a new game at the current difficulty. The last answer to a
// question stays on screen; the hint is cleared.
func (s *GameSession) Restart() error {
	return s.Start(s.difficulty)
}

// Guess applies one letter. A win appends exactly one entry to the score log;
// a failure to persist is logged and does not change the outcome.
func (s *GameSession) Guess(ctx context.Context, letter rune) game.GuessResult {
	if s.game == nil {
		return game.GuessIgnored
	}

	result := s.game.Guess(letter)
	switch result {
	case game.GuessWon:
		s.persistScore(ctx)
	case game.GuessLost:
		log.WithFields(log.Fields{
			"game_id":    s.game.ID(),
			"difficulty": s.difficulty,
		}).Info("Game lost")
	}
	return result
}

func (s *GameSession) persistScore(ctx context.Context) {
	entry := models.NewScoreEntry(s.game.Word(), s.game.Difficulty(), s.now())
	fields := log.Fields{
		"game_id":    s.game.ID(),
		"difficulty": entry.Difficulty,
	}

	if err := s.scores.Append(ctx, entry); err != nil {
		log.WithFields(fields).WithError(err).Warn("Failed to save score")
		return
	}
	log.WithFields(fields).Info("Game won, score saved")
}

// RequestHint asks the assistant for a hint about the current game. Admitted
// requests count against the hint budget whether or not they succeed. At the
// cap the returned task already holds the limit message.
func (s *GameSession) RequestHint(ctx context.Context) (*assistant.Task, error) {
	if !s.assistantEnabled {
		return nil, ErrAssistantDisabled
	}
	if s.game == nil {
		return nil, ErrNoGame
	}

	task, admitted := s.assistant.RequestHint(ctx, assistant.HintRequest{
		SecretWord:     s.game.Word(),
		GuessedLetters: s.game.GuessedLetters(),
		UsageCount:     s.game.HintsUsed(),
	})
	if admitted {
		s.game.RecordHint()
	}
	return task, nil
}

// AskQuestion sends a free-text question about the current word
func (s *GameSession) AskQuestion(ctx context.Context, question string) (*assistant.Task, error) {
	if s.game == nil {
		return nil, ErrNoGame
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	task, admitted := s.assistant.AskQuestion(ctx, assistant.QuestionRequest{
		SecretWord: s.game.Word(),
		Question:   question,
		UsageCount: s.questionsAsked,
	})
	if admitted {
		s.questionsAsked++
	}
	return task, nil
}

// Apply shows a completed task's text in the hint or answer slot. The last
// task applied wins.
func (s *GameSession) Apply(task *assistant.Task) {
	switch task.Kind {
	case assistant.KindHint:
		s.ApplyHint(task)
	case assistant.KindQuestion:
		s.ApplyAnswer(task)
	}
}

func (s *GameSession) ApplyHint(task *assistant.Task) {
	s.hint = task.Result().Text
}

func (s *GameSession) ApplyAnswer(task *assistant.Task) {
	s.answer = task.Result().Text
}

// ToggleAssistant flips the AI switch and returns the new state
func (s *GameSession) ToggleAssistant() bool {
	s.assistantEnabled = !s.assistantEnabled
	return s.assistantEnabled
}

// Snapshot returns the view of the session used for rendering
func (s *GameSession) Snapshot() models.HangmanGameState {
	state := models.HangmanGameState{
		Difficulty:       s.difficulty,
		MaxAttempts:      game.MaxAttempts,
		Hint:             s.hint,
		Answer:           s.answer,
		HintLimit:        s.assistant.HintLimit(),
		QuestionsAsked:   s.questionsAsked,
		AssistantEnabled: s.assistantEnabled,
	}
	if s.game == nil {
		return state
	}

	state.GameID = s.game.ID()
	state.MaskedWord = s.game.MaskedWord()
	state.GuessedLetters = s.game.GuessedLetters()
	state.AttemptsRemaining = s.game.AttemptsRemaining()
	state.Outcome = s.game.Outcome()
	state.Message = s.game.Message()
	state.HintsUsed = s.game.HintsUsed()
	return state
}
