package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, profileID int64, algorithm models.Algorithm) (*models.ProgressRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: profile_id=%d algorithm=%s", profileID, algorithm)

	p, err := getProgress(ctx, r.db, profileID, algorithm)
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *progressRepository) List(ctx context.Context, profileID int64) ([]models.AlgorithmProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress: profile_id=%d", profileID)

	query, args, err := sqlBuilder.
		Select("algorithm", "current_level", "total_levels_completed", "average_efficiency").
		From("user_progress").
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("algorithm ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []models.AlgorithmProgress
	for rows.Next() {
		var p models.AlgorithmProgress
		if err := rows.Scan(&p.Algorithm, &p.CurrentLevel, &p.TotalLevelsCompleted, &p.AverageEfficiency); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
