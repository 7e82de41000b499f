package assistant

import (
	"fmt"
	"strings"
)

// Kind identifies which assistant flow a prompt or task belongs to
type Kind int

const (
	KindHint Kind = iota
	KindQuestion
)

func (k Kind) String() string {
	if k == KindQuestion {
		return "question"
	}
	return "hint"
}

// PromptContext carries every input a prompt may depend on.
// GuessedLetters is only used by hint prompts and Question only by question prompts.
type PromptContext struct {
	Kind           Kind
	SecretWord     string
	GuessedLetters []string
	Question       string
}

const hintTemplate = `Give a helpful, single-sentence hint for guessing the word "%s".
Only these letters have been guessed so far: %s.
Don't reveal the word, just give a strategic hint for what letter or pattern to try next.

The hint should be in English and not contain any special characters or emojis.
The hint should be a single sentence, and not more than 20 words long.
The hint should be related to the word itself, not to how it sounds.`

const questionTemplate = `You are an expert Hangman assistant. The secret word is "%s", but NEVER reveal the word or any of its letters.

A player asked: "%s".

If the question relates to the word or seems to be a guess in disguise, respond with a strategic, clever hint that nudges the player toward useful patterns (like prefixes, suffixes, or common letter positions) without directly revealing any letters or the word.

If the question is off-topic or too direct, reply with encouragement, redirection, or a gentle puzzle-style clue.

Keep it brief, engaging, and fun. Do not use phrases like "I can't tell you that" or "I'm not allowed to reveal". Just stay helpful and sneaky.`

// BuildPrompt renders the prompt text for ctx
func BuildPrompt(ctx PromptContext) string {
	switch ctx.Kind {
	case KindQuestion:
		return fmt.Sprintf(questionTemplate, ctx.SecretWord, ctx.Question)
	default:
		guessed := "none"
		if len(ctx.GuessedLetters) > 0 {
			guessed = strings.Join(ctx.GuessedLetters, ", ")
		}
		return fmt.Sprintf(hintTemplate, ctx.SecretWord, guessed)
	}
}
