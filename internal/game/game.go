// Package game implements the hangman state machine.
//
// A Game is created per round and is only ever touched from a single
// goroutine; it holds no locks.
package game

import (
	"fmt"
	"sort"
	"strings"

	"aiseek/internal/models"

	"github.com/google/uuid"
)

// MaxAttempts is the number of wrong guesses allowed per game
const MaxAttempts = 6

// WinMessage is shown once every letter has been found
const WinMessage = "You won!"

// GuessResult describes what a call to Guess did
type GuessResult int

const (
	// GuessIgnored means the guess changed nothing: repeated letter,
	// non-letter input or a finished game.
	GuessIgnored GuessResult = iota
	GuessHit
	GuessMiss
	GuessWon
	GuessLost
)

func (r GuessResult) String() string {
	switch r {
	case GuessHit:
		return "hit"
	case GuessMiss:
		return "miss"
	case GuessWon:
		return "won"
	case GuessLost:
		return "lost"
	default:
		return "ignored"
	}
}

// Game holds the state of one hangman round
type Game struct {
	id                string
	difficulty        models.Difficulty
	word              string
	guessed           map[rune]bool
	attemptsRemaining int
	outcome           models.Outcome
	message           string
	hintsUsed         int
}

// New creates a game for word. The word is upper-cased.
func New(difficulty models.Difficulty, word string) *Game {
	return &Game{
		id:                uuid.NewString(),
		difficulty:        difficulty,
		word:              strings.ToUpper(word),
		guessed:           make(map[rune]bool),
		attemptsRemaining: MaxAttempts,
		outcome:           models.OutcomeInProgress,
	}
}

// Start picks a word uniformly from the difficulty's list and creates a game for it
func Start(lists WordLists, difficulty models.Difficulty, intn func(int) int) (*Game, error) {
	word, err := lists.Pick(difficulty, intn)
	if err != nil {
		return nil, err
	}
	return New(difficulty, word), nil
}

func (g *Game) ID() string                    { return g.id }
func (g *Game) Word() string                  { return g.word }
func (g *Game) Difficulty() models.Difficulty { return g.difficulty }
func (g *Game) AttemptsRemaining() int        { return g.attemptsRemaining }
func (g *Game) Outcome() models.Outcome       { return g.outcome }
func (g *Game) Message() string               { return g.message }
func (g *Game) HintsUsed() int                { return g.hintsUsed }

// HasGuessed reports whether letter was already tried, ignoring case
func (g *Game) HasGuessed(letter rune) bool {
	return g.guessed[toUpper(letter)]
}

// GuessedLetters returns the tried letters in alphabetical order
func (g *Game) GuessedLetters() []string {
	letters := make([]string, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, string(r))
	}
	sort.Strings(letters)
	return letters
}

// Guess applies one letter.
//
// A miss decrements the attempts counter first and the game is lost when it
// reaches zero, so the losing guess is the one that uses the last attempt.
func (g *Game) Guess(letter rune) GuessResult {
	letter = toUpper(letter)
	if g.outcome.IsTerminal() || !isLetter(letter) || g.guessed[letter] {
		return GuessIgnored
	}

	g.guessed[letter] = true

	if !strings.ContainsRune(g.word, letter) {
		g.attemptsRemaining--
		if g.attemptsRemaining <= 0 {
			g.attemptsRemaining = 0
			g.outcome = models.OutcomeLost
			g.message = fmt.Sprintf("Game Over! The word was %q", g.word)
			return GuessLost
		}
		return GuessMiss
	}

	if g.isSolved() {
		g.outcome = models.OutcomeWon
		g.message = WinMessage
		return GuessWon
	}
	return GuessHit
}

// RecordHint counts one admitted hint request
func (g *Game) RecordHint() {
	g.hintsUsed++
}

// MaskedWord renders the word with unknown letters as underscores, e.g. "D _ G"
func (g *Game) MaskedWord() string {
	var b strings.Builder
	for i, r := range g.word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if g.guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (g *Game) isSolved() bool {
	for _, r := range g.word {
		if !g.guessed[r] {
			return false
		}
	}
	return true
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
