package repository

import (
	"context"

	"github.com/vytor/algogame/internal/models"
)

// ProgressFold computes the progress record that replaces prev. history
// already includes the submission being recorded.
type ProgressFold func(prev *models.ProgressRecord, history models.ScoreHistory) models.ProgressRecord

// ProfileRepository handles profile data access
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, username string) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}

// ScoreRepository owns the score history and the progress records derived from it.
type ScoreRepository interface {
	// RecordSubmission inserts score and replaces the (profile, algorithm)
	// progress record with fold's result, as one atomic read-modify-write.
	RecordSubmission(ctx context.Context, score models.ScoreRecord, fold ProgressFold) (models.ProgressRecord, error)
	ListScores(ctx context.Context, profileID int64, algorithm models.Algorithm, limit int) ([]models.ScoreRecord, error)
	Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error)
}

// ProgressRepository reads progress records.
type ProgressRepository interface {
	Get(ctx context.Context, profileID int64, algorithm models.Algorithm) (*models.ProgressRecord, error)
	List(ctx context.Context, profileID int64) ([]models.AlgorithmProgress, error)
}
