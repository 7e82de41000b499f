package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"aiseek/internal/assistant"
	"aiseek/internal/game"
	"aiseek/internal/models"
	"aiseek/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGenerator is a mock implementation of assistant.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockScoreStore is a mock implementation of the score log
type MockScoreStore struct {
	mock.Mock
}

func (m *MockScoreStore) ReadAll(ctx context.Context) ([]models.ScoreEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]models.ScoreEntry)
	return entries, args.Error(1)
}

func (m *MockScoreStore) Append(ctx context.Context, entry models.ScoreEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockScoreStore) AppendAll(ctx context.Context, entries []models.ScoreEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func newTestConsole(t *testing.T, gen *MockGenerator, scores *MockScoreStore, in string) (*Console, *bytes.Buffer) {
	t.Helper()
	lists := game.WordLists{
		models.DifficultyEasy:   {"dog"},
		models.DifficultyMedium: {"planet"},
		models.DifficultyHard:   {"urdu"},
	}
	session := service.NewGameSession(service.SessionConfig{
		Lists:            lists,
		Difficulty:       models.DifficultyEasy,
		AssistantEnabled: true,
	}, assistant.New(gen, assistant.Config{HintLimit: assistant.DefaultHintLimit}, nil), scores)
	require.NoError(t, session.Start(models.DifficultyEasy))

	var out bytes.Buffer
	return New(session, service.NewScoreService(scores), strings.NewReader(in), &out), &out
}

func TestRun_PlaysToAWin(t *testing.T) {
	scores := new(MockScoreStore)
	scores.On("Append", mock.Anything, mock.MatchedBy(func(e models.ScoreEntry) bool {
		return e.Word == "DOG" && e.Difficulty == models.DifficultyEasy
	})).Return(nil).Once()

	c, out := newTestConsole(t, new(MockGenerator), scores, "x\nd\nog\n:quit\n")

	require.NoError(t, c.Run(context.Background()))

	assert.Contains(t, out.String(), "D O G")
	assert.Contains(t, out.String(), game.WinMessage)
	assert.Contains(t, out.String(), "Attempts Left: 5")
	scores.AssertExpectations(t)
}

func TestRun_EndOfInput(t *testing.T) {
	c, _ := newTestConsole(t, new(MockGenerator), new(MockScoreStore), "a\n")
	assert.NoError(t, c.Run(context.Background()))
}

func TestRun_AppliesCompletedHint(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("It barks.", nil).Once()

	c, out := newTestConsole(t, gen, new(MockScoreStore), "")

	_, err := c.Execute(context.Background(), ":hint")
	require.NoError(t, err)
	assert.Equal(t, 1, c.pending)

	select {
	case task := <-c.completed:
		c.pending--
		c.session.Apply(task)
	case <-time.After(time.Second):
		t.Fatal("hint never completed")
	}
	c.render()

	assert.Contains(t, out.String(), "Hint: It barks.")
	assert.Contains(t, out.String(), "Hints: 1/102")
	gen.AssertExpectations(t)
}

func TestExecute_Commands(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown", func(t *testing.T) {
		c, _ := newTestConsole(t, new(MockGenerator), new(MockScoreStore), "")
		_, err := c.Execute(ctx, ":dance")
		assert.Error(t, err)
	})

	t.Run("quit", func(t *testing.T) {
		c, _ := newTestConsole(t, new(MockGenerator), new(MockScoreStore), "")
		quit, err := c.Execute(ctx, ":q")
		require.NoError(t, err)
		assert.True(t, quit)
	})

	t.Run("toggle blocks hints", func(t *testing.T) {
		gen := new(MockGenerator)
		c, _ := newTestConsole(t, gen, new(MockScoreStore), "")
		_, err := c.Execute(ctx, ":ai")
		require.NoError(t, err)
		_, err = c.Execute(ctx, ":hint")
		assert.ErrorIs(t, err, service.ErrAssistantDisabled)
		gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("empty question", func(t *testing.T) {
		c, _ := newTestConsole(t, new(MockGenerator), new(MockScoreStore), "")
		_, err := c.Execute(ctx, ":ask")
		assert.ErrorIs(t, err, service.ErrEmptyQuestion)
	})

	t.Run("difficulty", func(t *testing.T) {
		c, _ := newTestConsole(t, new(MockGenerator), new(MockScoreStore), "")
		_, err := c.Execute(ctx, ":difficulty medium")
		require.NoError(t, err)
		assert.Equal(t, models.DifficultyMedium, c.session.Snapshot().Difficulty)

		_, err = c.Execute(ctx, ":difficulty brutal")
		assert.Error(t, err)
	})

	t.Run("scores", func(t *testing.T) {
		scores := new(MockScoreStore)
		scores.On("ReadAll", mock.Anything).Return([]models.ScoreEntry{
			{Word: "DOG", Difficulty: models.DifficultyEasy, Date: "2024-03-01T11:30:00Z"},
		}, nil)
		c, out := newTestConsole(t, new(MockGenerator), scores, "")
		_, err := c.Execute(ctx, ":scores")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Wins: 1")
		assert.Contains(t, out.String(), "Last win: DOG")
	})

	t.Run("non letters ignored", func(t *testing.T) {
		c, _ := newTestConsole(t, new(MockGenerator), new(MockScoreStore), "")
		_, err := c.Execute(ctx, "1?!")
		require.NoError(t, err)
		state := c.session.Snapshot()
		assert.Empty(t, state.GuessedLetters)
		assert.Equal(t, game.MaxAttempts, state.AttemptsRemaining)
	})
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	Render(&out, models.HangmanGameState{
		Difficulty:        models.DifficultyHard,
		MaskedWord:        "_ R _ _",
		GuessedLetters:    []string{"R", "Z"},
		AttemptsRemaining: 2,
		HintLimit:         102,
		AssistantEnabled:  false,
	}, 1)

	text := out.String()
	assert.Contains(t, text, "[hard]")
	assert.Contains(t, text, "Attempts Left: 2 (!)")
	assert.Contains(t, text, "_ R _ _")
	assert.Contains(t, text, "Hint: —")
	assert.Contains(t, text, "P Q · S T U")
	assert.Contains(t, text, "AI: Off")
	assert.Contains(t, text, "(thinking: 1)")
	assert.NotContains(t, text, "AI says")
}

func TestRun_CancelsPendingRequestsOnQuit(t *testing.T) {
	cancelled := make(chan struct{})
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
		close(cancelled)
	}).Return("", context.Canceled).Once()

	c, _ := newTestConsole(t, gen, new(MockScoreStore), ":hint\n:quit\n")

	require.NoError(t, c.Run(context.Background()))

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("pending hint request outlived the console")
	}
}
