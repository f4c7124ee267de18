package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/repository"
)

type scoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new ScoreRepository implementation
func NewScoreRepository(db *sql.DB) repository.ScoreRepository {
	return &scoreRepository{db: db}
}

// RecordSubmission inserts the score, aggregates the user's history for the
// algorithm and upserts the folded progress record in one transaction.
func (r *scoreRepository) RecordSubmission(ctx context.Context, score models.ScoreRecord, fold repository.ProgressFold) (models.ProgressRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo").WithFields(map[string]any{
		"profile_id": score.ProfileID,
		"algorithm":  score.Algorithm,
	})
	log.Debug("recording submission %s for level %d", score.SubmissionID, score.Level)

	var next models.ProgressRecord
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		query, args, err := sqlBuilder.
			Insert("scores").
			Columns("submission_id", "profile_id", "algorithm", "level", "difficulty",
				"steps", "optimal_steps", "efficiency", "time_taken", "hints_used", "completed").
			Values(score.SubmissionID, score.ProfileID, score.Algorithm, score.Level, score.Difficulty,
				score.Steps, score.OptimalSteps, score.Efficiency, score.TimeTaken, score.HintsUsed, score.Completed).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert score: %v", err)
			return err
		}

		history, err := scoreHistory(ctx, tx, score.ProfileID, score.Algorithm)
		if err != nil {
			log.Error("failed to aggregate score history: %v", err)
			return err
		}

		prev, err := getProgress(ctx, tx, score.ProfileID, score.Algorithm)
		if err != nil {
			log.Error("failed to read progress: %v", err)
			return err
		}

		next = fold(prev, history)

		query, args, err = sqlBuilder.
			Insert("user_progress").
			Columns("profile_id", "algorithm", "current_level", "total_levels_completed", "average_efficiency", "updated_at").
			Values(score.ProfileID, score.Algorithm, next.CurrentLevel, next.TotalLevelsCompleted, next.AverageEfficiency,
				squirrel.Expr("CURRENT_TIMESTAMP")).
			Suffix(`ON CONFLICT(profile_id, algorithm) DO UPDATE SET
    current_level = excluded.current_level,
    total_levels_completed = excluded.total_levels_completed,
    average_efficiency = excluded.average_efficiency,
    updated_at = excluded.updated_at`).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to upsert progress: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return models.ProgressRecord{}, err
	}

	log.Debug("progress updated: current_level=%d completed=%d avg=%.2f",
		next.CurrentLevel, next.TotalLevelsCompleted, next.AverageEfficiency)
	return next, nil
}

func scoreHistory(ctx context.Context, q querier, profileID int64, algorithm models.Algorithm) (models.ScoreHistory, error) {
	query, args, err := sqlBuilder.
		Select(
			"COUNT(*)",
			"COALESCE(MAX(level), 0)",
			"COALESCE(SUM(completed), 0)",
			"COALESCE(AVG(efficiency), 0)",
		).
		From("scores").
		Where(squirrel.Eq{"profile_id": profileID, "algorithm": algorithm}).
		ToSql()
	if err != nil {
		return models.ScoreHistory{}, err
	}

	var h models.ScoreHistory
	err = q.QueryRowContext(ctx, query, args...).Scan(&h.Attempts, &h.MaxLevel, &h.CompletedCount, &h.AverageEfficiency)
	return h, err
}

func getProgress(ctx context.Context, q querier, profileID int64, algorithm models.Algorithm) (*models.ProgressRecord, error) {
	query, args, err := sqlBuilder.
		Select("current_level", "total_levels_completed", "average_efficiency").
		From("user_progress").
		Where(squirrel.Eq{"profile_id": profileID, "algorithm": algorithm}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.ProgressRecord
	err = q.QueryRowContext(ctx, query, args...).Scan(&p.CurrentLevel, &p.TotalLevelsCompleted, &p.AverageEfficiency)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *scoreRepository) ListScores(ctx context.Context, profileID int64, algorithm models.Algorithm, limit int) ([]models.ScoreRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")
	log.Debug("listing scores: profile_id=%d algorithm=%s limit=%d", profileID, algorithm, limit)

	sb := sqlBuilder.
		Select("id", "submission_id", "profile_id", "algorithm", "level", "difficulty", "steps",
			"optimal_steps", "efficiency", "time_taken", "hints_used", "completed", "created_at").
		From("scores").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("created_at DESC", "id DESC")
	if algorithm != "" {
		sb = sb.Where(squirrel.Eq{"algorithm": algorithm})
	}
	if limit > 0 {
		sb = sb.Limit(uint64(limit))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	var scores []models.ScoreRecord
	for rows.Next() {
		var s models.ScoreRecord
		if err := rows.Scan(&s.ID, &s.SubmissionID, &s.ProfileID, &s.Algorithm, &s.Level, &s.Difficulty, &s.Steps,
			&s.OptimalSteps, &s.Efficiency, &s.TimeTaken, &s.HintsUsed, &s.Completed, &s.CreatedAt); err != nil {
			log.Error("failed to scan score row: %v", err)
			return nil, err
		}
		scores = append(scores, s)
	}

	log.Debug("found %d scores", len(scores))
	return scores, rows.Err()
}

func (r *scoreRepository) Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("score_repo")
	log.Debug("loading leaderboard: algorithm=%q difficulty=%q limit=%d", filter.Algorithm, filter.Difficulty, filter.Limit)

	sb := sqlBuilder.
		Select("p.username", "s.algorithm", "s.efficiency", "s.level", "s.difficulty").
		From("scores s").
		Join("profiles p ON p.id = s.profile_id").
		OrderBy("s.efficiency DESC", "s.id ASC")
	if filter.Algorithm != "" {
		sb = sb.Where(squirrel.Eq{"s.algorithm": filter.Algorithm})
	}
	if filter.Difficulty != "" {
		sb = sb.Where(squirrel.Eq{"s.difficulty": filter.Difficulty})
	}
	if filter.Limit > 0 {
		sb = sb.Limit(uint64(filter.Limit))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Algorithm, &e.Efficiency, &e.Level, &e.Difficulty); err != nil {
			log.Error("failed to scan leaderboard row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
