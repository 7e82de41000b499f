package service

import (
	"context"

	"aiseek/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockScoreStore is a mock implementation of repository.ScoreStore and ScoreArchive
type MockScoreStore struct {
	mock.Mock
}

func (m *MockScoreStore) ReadAll(ctx context.Context) ([]models.ScoreEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]models.ScoreEntry)
	return entries, args.Error(1)
}

func (m *MockScoreStore) Append(ctx context.Context, entry models.ScoreEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockScoreStore) AppendAll(ctx context.Context, entries []models.ScoreEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockGenerator is a mock implementation of assistant.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
