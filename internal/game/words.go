package game

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"aiseek/internal/models"
)

// WordLists maps each difficulty tier to its candidate words
type WordLists map[models.Difficulty][]string

// DefaultWordLists returns the built-in word lists
func DefaultWordLists() WordLists {
	return WordLists{
		models.DifficultyEasy:   {"dog", "book", "dog"},
		models.DifficultyMedium: {"planet", "bridge", "rocket"},
		models.DifficultyHard:   {"Urdu", "BRUH", "PewDiePie"},
	}
}

// LoadWordLists reads word lists from a JSON file shaped like
// {"easy": ["..."], "medium": ["..."], "hard": ["..."]}.
// Tiers missing from the file keep their default list.
func LoadWordLists(path string) (WordLists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word lists: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode word lists: %w", err)
	}

	lists := DefaultWordLists()
	for key, words := range raw {
		difficulty, err := models.ParseDifficulty(key)
		if err != nil {
			return nil, err
		}
		lists[difficulty] = words
	}

	if err := lists.Validate(); err != nil {
		return nil, err
	}
	return lists, nil
}

// Validate checks that every tier has at least one word and that words use only A-Z
func (l WordLists) Validate() error {
	for _, difficulty := range models.Difficulties {
		words := l[difficulty]
		if len(words) == 0 {
			return fmt.Errorf("word list for %s is empty", difficulty)
		}
		for _, word := range words {
			if word == "" {
				return fmt.Errorf("word list for %s contains an empty word", difficulty)
			}
			for _, r := range strings.ToUpper(word) {
				if !isLetter(r) {
					return fmt.Errorf("word %q in %s list has non-letter %q", word, difficulty, r)
				}
			}
		}
	}
	return nil
}

// Pick selects a word uniformly by index and upper-cases it
func (l WordLists) Pick(difficulty models.Difficulty, intn func(int) int) (string, error) {
	words := l[difficulty]
	if len(words) == 0 {
		return "", fmt.Errorf("no words for difficulty %q", difficulty)
	}
	return strings.ToUpper(words[intn(len(words))]), nil
}
