package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/repository"
)

// MockScoreRepository is a mock implementation of repository.ScoreRepository.
// RecordSubmission applies the fold to the prev and history values configured
// via Prev and History, so callers can assert on the folded record.
type MockScoreRepository struct {
	mock.Mock
	Prev    *models.ProgressRecord
	History models.ScoreHistory
}

func (m *MockScoreRepository) RecordSubmission(ctx context.Context, score models.ScoreRecord, fold repository.ProgressFold) (models.ProgressRecord, error) {
	args := m.Called(ctx, score, fold)
	if err := args.Error(1); err != nil {
		return models.ProgressRecord{}, err
	}
	if rec, ok := args.Get(0).(models.ProgressRecord); ok {
		return rec, nil
	}
	return fold(m.Prev, m.History), nil
}

func (m *MockScoreRepository) ListScores(ctx context.Context, profileID int64, algorithm models.Algorithm, limit int) ([]models.ScoreRecord, error) {
	args := m.Called(ctx, profileID, algorithm, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScoreRecord), args.Error(1)
}

func (m *MockScoreRepository) Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}
