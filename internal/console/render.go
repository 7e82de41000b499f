package console

import (
	"fmt"
	"io"
	"strings"

	"aiseek/internal/models"
)

const (
	title        = "AI SEEK: Hangman"
	keyboardRow  = 7
	usedKey      = "·"
	emptyDisplay = "—"
	lowAttempts  = 2
)

// Render draws the board for state
func Render(w io.Writer, state models.HangmanGameState, pending int) {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s  [%s]\n", title, state.Difficulty)

	attempts := fmt.Sprintf("%d", state.AttemptsRemaining)
	if state.AttemptsRemaining <= lowAttempts {
		attempts += " (!)"
	}
	fmt.Fprintf(&b, "Attempts Left: %s\n\n", attempts)
	fmt.Fprintf(&b, "    %s\n\n", state.MaskedWord)

	if state.Message != "" {
		fmt.Fprintf(&b, "%s\n\n", state.Message)
	}

	fmt.Fprintf(&b, "Hint: %s\n", orDash(state.Hint))
	if state.Answer != "" {
		fmt.Fprintf(&b, "AI says: %s\n", state.Answer)
	}
	b.WriteString("\n")

	writeKeyboard(&b, state)

	ai := "Off"
	if state.AssistantEnabled {
		ai = "On"
	}
	fmt.Fprintf(&b, "\nAI: %s  Hints: %d/%d", ai, state.HintsUsed, state.HintLimit)
	if pending > 0 {
		fmt.Fprintf(&b, "  (thinking: %d)", pending)
	}
	b.WriteString("\n")

	io.WriteString(w, b.String())
}

func writeKeyboard(b *strings.Builder, state models.HangmanGameState) {
	used := make(map[string]bool, len(state.GuessedLetters))
	for _, l := range state.GuessedLetters {
		used[l] = true
	}

	for i := 0; i < 26; i++ {
		letter := string(rune('A' + i))
		if used[letter] || state.IsComplete() {
			letter = usedKey
		}
		b.WriteString(letter)
		if (i+1)%keyboardRow == 0 || i == 25 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
}

// RenderSummary prints the score log summary
func RenderSummary(w io.Writer, summary *models.ScoreSummary) {
	fmt.Fprintf(w, "\nWins: %d", summary.TotalWins)
	for _, d := range models.Difficulties {
		fmt.Fprintf(w, "  %s: %d", d, summary.ByDifficulty[d])
	}
	fmt.Fprintln(w)
	if summary.LastWin != nil {
		fmt.Fprintf(w, "Last win: %s (%s) on %s\n", summary.LastWin.Word, summary.LastWin.Difficulty, summary.LastWin.Date)
	}
}

const helpText = `
Type letters to guess them. Commands:
  :hint              ask the AI for a hint
  :ask <question>    ask the AI anything about the word
  :restart           start a new word
  :difficulty <d>    switch to easy, medium or hard and restart
  :ai                turn the AI on or off
  :scores            show your wins
  :help              show this text
  :quit              leave
`

func orDash(s string) string {
	if s == "" {
		return emptyDisplay
	}
	return s
}
