package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vytor/algogame/internal/catalog"
	"github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/progress"
	"github.com/vytor/algogame/internal/quiz"
	"github.com/vytor/algogame/internal/repository"
	"github.com/vytor/algogame/internal/scoring"
)

// MaxLeaderboardLimit caps caller-supplied leaderboard sizes.
const MaxLeaderboardLimit = 100

// ScoreService scores submissions and owns everything derived from them:
// progress records, score history and the leaderboard.
type ScoreService interface {
	Submit(ctx context.Context, identity models.Identity, sub models.Submission) (models.ScoreResult, error)
	Progress(ctx context.Context, identity models.Identity) ([]models.AlgorithmProgress, error)
	History(ctx context.Context, identity models.Identity, alg models.Algorithm, limit int) ([]models.ScoreRecord, error)
	Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error)
}

type scoreService struct {
	scoreRepo        repository.ScoreRepository
	progressRepo     repository.ProgressRepository
	catalog          *catalog.Catalog
	quiz             *quiz.Bank
	leaderboardLimit int
	newSubmissionID  func() string
}

// NewScoreService creates a new ScoreService. leaderboardLimit is used when a
// leaderboard query does not ask for a size.
func NewScoreService(scoreRepo repository.ScoreRepository, progressRepo repository.ProgressRepository, cat *catalog.Catalog, bank *quiz.Bank, leaderboardLimit int) ScoreService {
	return &scoreService{
		scoreRepo:        scoreRepo,
		progressRepo:     progressRepo,
		catalog:          cat,
		quiz:             bank,
		leaderboardLimit: leaderboardLimit,
		newSubmissionID:  uuid.NewString,
	}
}

func (s *scoreService) Submit(ctx context.Context, identity models.Identity, sub models.Submission) (models.ScoreResult, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"algorithm": sub.Algorithm,
		"level_id":  sub.LevelID,
	})
	log.Debug("scoring submission: guest=%t steps=%d size=%d", identity.Guest, sub.UserSteps, len(sub.UserArray))

	if !identity.Guest && identity.ProfileID <= 0 {
		return models.ScoreResult{}, errors.NewUnauthorizedError("sign in or play as guest to submit")
	}
	if sub.TimeTaken < 0 {
		return models.ScoreResult{}, errors.NewValidationError("time_taken", "must not be negative")
	}
	if sub.HintsUsed < 0 {
		return models.ScoreResult{}, errors.NewValidationError("hints_used", "must not be negative")
	}

	result, err := scoring.Evaluate(sub.Algorithm, sub.UserArray, sub.UserSteps)
	if err != nil {
		log.Debug("rejecting submission: %v", err)
		return models.ScoreResult{}, err
	}

	if !identity.Guest {
		record := models.ScoreRecord{
			SubmissionID: s.newSubmissionID(),
			ProfileID:    identity.ProfileID,
			Algorithm:    sub.Algorithm,
			Level:        sub.LevelID,
			Difficulty:   sub.Difficulty,
			Steps:        sub.UserSteps,
			OptimalSteps: result.OptimalSteps,
			Efficiency:   result.Efficiency,
			TimeTaken:    sub.TimeTaken,
			HintsUsed:    sub.HintsUsed,
			Completed:    result.Completed,
		}
		levelID := sub.LevelID
		next, err := s.scoreRepo.RecordSubmission(ctx, record, func(prev *models.ProgressRecord, history models.ScoreHistory) models.ProgressRecord {
			return progress.Next(levelID, prev, history)
		})
		if err != nil {
			log.Error("failed to record submission for profile %d: %v", identity.ProfileID, err)
			return models.ScoreResult{}, errors.NewPersistenceError(err)
		}
		log.Info("submission recorded: profile_id=%d efficiency=%.2f current_level=%d",
			identity.ProfileID, result.Efficiency, next.CurrentLevel)
	}

	if q, ok := s.quiz.Random(sub.Algorithm); ok {
		result.QuizQuestion = &q
	}
	return result, nil
}

// Progress returns the caller's records in catalog order. Guests have none.
func (s *scoreService) Progress(ctx context.Context, identity models.Identity) ([]models.AlgorithmProgress, error) {
	log := logger.FromContext(ctx)
	if identity.Guest || identity.ProfileID <= 0 {
		return []models.AlgorithmProgress{}, nil
	}
	log.Debug("loading progress: profile_id=%d", identity.ProfileID)

	records, err := s.progressRepo.List(ctx, identity.ProfileID)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewPersistenceError(err)
	}

	byAlg := make(map[models.Algorithm]models.AlgorithmProgress, len(records))
	for _, rec := range records {
		byAlg[rec.Algorithm] = rec
	}

	out := make([]models.AlgorithmProgress, 0, len(records))
	for _, alg := range s.catalog.Algorithms() {
		if rec, ok := byAlg[alg]; ok {
			out = append(out, rec)
			delete(byAlg, alg)
		}
	}
	// Records for algorithms the catalog no longer lists keep storage order.
	for _, rec := range records {
		if _, ok := byAlg[rec.Algorithm]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *scoreService) History(ctx context.Context, identity models.Identity, alg models.Algorithm, limit int) ([]models.ScoreRecord, error) {
	log := logger.FromContext(ctx)
	if identity.Guest || identity.ProfileID <= 0 {
		return []models.ScoreRecord{}, nil
	}
	if alg != "" && !alg.Valid() {
		return nil, errors.NewUnknownAlgorithmError(string(alg))
	}
	if limit < 0 {
		return nil, errors.NewValidationError("limit", "must not be negative")
	}

	scores, err := s.scoreRepo.ListScores(ctx, identity.ProfileID, alg, limit)
	if err != nil {
		log.Error("failed to list scores: %v", err)
		return nil, errors.NewPersistenceError(err)
	}
	if scores == nil {
		scores = []models.ScoreRecord{}
	}
	return scores, nil
}

func (s *scoreService) Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	if filter.Algorithm != "" && !filter.Algorithm.Valid() {
		return nil, errors.NewUnknownAlgorithmError(string(filter.Algorithm))
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be one of easy, medium, hard")
	}
	switch {
	case filter.Limit == 0:
		filter.Limit = s.leaderboardLimit
	case filter.Limit < 0 || filter.Limit > MaxLeaderboardLimit:
		return nil, errors.NewValidationError("limit", "must be between 1 and 100")
	}

	entries, err := s.scoreRepo.Leaderboard(ctx, filter)
	if err != nil {
		log.Error("failed to load leaderboard: %v", err)
		return nil, errors.NewPersistenceError(err)
	}
	return entries, nil
}
