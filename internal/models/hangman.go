package models

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty selects which word list a game draws from
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every tier in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts user input into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Outcome is the terminal state of a hangman game
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// IsTerminal reports whether no further guesses are accepted
func (o Outcome) IsTerminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// ScoreEntry is one won game in the score log
type ScoreEntry struct {
	Word       string     `json:"word"`
	Difficulty Difficulty `json:"difficulty"`
	Date       string     `json:"date"`
}

// NewScoreEntry stamps a won word with the given time in ISO-8601 form
func NewScoreEntry(word string, difficulty Difficulty, at time.Time) ScoreEntry {
	return ScoreEntry{
		Word:       word,
		Difficulty: difficulty,
		Date:       at.UTC().Format(time.RFC3339Nano),
	}
}

// HangmanGameState is a read-only view of the live game used for rendering
type HangmanGameState struct {
	GameID            string
	Difficulty        Difficulty
	MaskedWord        string
	GuessedLetters    []string
	AttemptsRemaining int
	MaxAttempts       int
	Outcome           Outcome
	Message           string
	Hint              string
	Answer            string
	HintsUsed         int
	HintLimit         int
	QuestionsAsked    int
	AssistantEnabled  bool
}

// IsComplete reports whether the game has ended
func (s HangmanGameState) IsComplete() bool {
	return s.Outcome.IsTerminal()
}

// ScoreSummary aggregates the score log for display
type ScoreSummary struct {
	TotalWins    int
	ByDifficulty map[Difficulty]int
	LastWin      *ScoreEntry
}
