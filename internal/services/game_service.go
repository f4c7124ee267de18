package services

import (
	"context"

	"github.com/vytor/algogame/internal/catalog"
	"github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/hint"
	"github.com/vytor/algogame/internal/logger"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/puzzle"
	"github.com/vytor/algogame/internal/quiz"
	"github.com/vytor/algogame/internal/repository"
)

// GameService serves the read-only side of the game: the level catalog,
// puzzle generation, hints and quiz questions.
type GameService interface {
	Overview(ctx context.Context, identity models.Identity) ([]models.AlgorithmLevels, error)
	Level(ctx context.Context, alg models.Algorithm, diff models.Difficulty, levelID int) (models.LevelSpec, error)
	Puzzle(ctx context.Context, alg models.Algorithm, diff models.Difficulty, levelID int, seed *int64) (models.Puzzle, error)
	Hint(ctx context.Context, alg models.Algorithm, n, userSteps int) string
	Quiz(ctx context.Context, alg models.Algorithm) (models.QuizQuestion, error)
}

type gameService struct {
	catalog      *catalog.Catalog
	generator    *puzzle.Generator
	quiz         *quiz.Bank
	progressRepo repository.ProgressRepository
}

// NewGameService creates a new GameService
func NewGameService(cat *catalog.Catalog, generator *puzzle.Generator, bank *quiz.Bank, progressRepo repository.ProgressRepository) GameService {
	return &gameService{
		catalog:      cat,
		generator:    generator,
		quiz:         bank,
		progressRepo: progressRepo,
	}
}

func (s *gameService) Overview(ctx context.Context, identity models.Identity) ([]models.AlgorithmLevels, error) {
	log := logger.FromContext(ctx)
	log.Debug("building level overview: guest=%t profile_id=%d", identity.Guest, identity.ProfileID)

	overview := s.catalog.Overview()
	if identity.Guest || identity.ProfileID == 0 {
		return overview, nil
	}

	records, err := s.progressRepo.List(ctx, identity.ProfileID)
	if err != nil {
		log.Error("failed to load progress for overview: %v", err)
		return nil, errors.NewPersistenceError(err)
	}

	current := make(map[models.Algorithm]int, len(records))
	for _, rec := range records {
		current[rec.Algorithm] = rec.CurrentLevel
	}
	for i := range overview {
		overview[i].CurrentLevel = current[overview[i].Algorithm]
	}
	return overview, nil
}

func (s *gameService) Level(ctx context.Context, alg models.Algorithm, diff models.Difficulty, levelID int) (models.LevelSpec, error) {
	logger.FromContext(ctx).Debug("looking up level: %s/%s/%d", alg, diff, levelID)
	return s.catalog.Lookup(alg, diff, levelID)
}

func (s *gameService) Puzzle(ctx context.Context, alg models.Algorithm, diff models.Difficulty, levelID int, seed *int64) (models.Puzzle, error) {
	log := logger.FromContext(ctx)

	level, err := s.catalog.Lookup(alg, diff, levelID)
	if err != nil {
		log.Debug("puzzle requested for unknown level %s/%s/%d", alg, diff, levelID)
		return models.Puzzle{}, err
	}

	var p models.Puzzle
	if seed != nil {
		p, err = puzzle.Generate(level, *seed)
	} else {
		p, err = s.generator.Generate(level)
	}
	if err != nil {
		if errors.Is(err, errors.ErrRangeTooSmall) {
			log.Error("level catalog is inconsistent: %v", err)
			return models.Puzzle{}, err
		}
		log.Error("failed to generate puzzle: %v", err)
		return models.Puzzle{}, errors.NewInternalError(err)
	}

	log.Debug("puzzle generated: level=%d seed=%d", level.ID, p.Seed)
	return p, nil
}

func (s *gameService) Hint(ctx context.Context, alg models.Algorithm, n, userSteps int) string {
	logger.FromContext(ctx).Debug("selecting hint: algorithm=%s n=%d steps=%d", alg, n, userSteps)
	return hint.Select(alg, n, userSteps)
}

func (s *gameService) Quiz(ctx context.Context, alg models.Algorithm) (models.QuizQuestion, error) {
	q, ok := s.quiz.Random(alg)
	if !ok {
		logger.FromContext(ctx).Debug("no quiz questions for %s", alg)
		return models.QuizQuestion{}, errors.NewNotFoundError("quiz question", string(alg))
	}
	return q, nil
}
