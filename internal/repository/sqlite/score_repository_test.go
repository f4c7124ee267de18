package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/progress"
	"github.com/vytor/algogame/internal/repository"
	"github.com/vytor/algogame/internal/repository/sqlite"
	"github.com/vytor/algogame/internal/testutil"
)

type ScoreRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	repo     repository.ScoreRepository
	progress repository.ProgressRepository
	profiles repository.ProfileRepository
}

func (s *ScoreRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewScoreRepository(s.db)
	s.progress = sqlite.NewProgressRepository(s.db)
	s.profiles = sqlite.NewProfileRepository(s.db)
}

func (s *ScoreRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ScoreRepositorySuite) newProfile(name string) int64 {
	p, err := s.profiles.Upsert(context.Background(), name)
	s.Require().NoError(err)
	return p.ID
}

func foldFor(levelID int) repository.ProgressFold {
	return func(prev *models.ProgressRecord, h models.ScoreHistory) models.ProgressRecord {
		return progress.Next(levelID, prev, h)
	}
}

func score(profileID int64, id string, alg models.Algorithm, level int, eff float64) models.ScoreRecord {
	return models.ScoreRecord{
		SubmissionID: id,
		ProfileID:    profileID,
		Algorithm:    alg,
		Level:        level,
		Difficulty:   models.Easy,
		Steps:        10,
		OptimalSteps: 8,
		Efficiency:   eff,
		TimeTaken:    30,
		HintsUsed:    1,
		Completed:    eff >= 80,
	}
}

func (s *ScoreRepositorySuite) TestFirstSubmissionCreatesProgress() {
	ctx := context.Background()
	pid := s.newProfile("ada")

	rec, err := s.repo.RecordSubmission(ctx, score(pid, "s1", models.BubbleSort, 1, 100), foldFor(1))
	s.Require().NoError(err)
	s.Equal(models.ProgressRecord{CurrentLevel: 2, TotalLevelsCompleted: 1, AverageEfficiency: 100}, rec)

	stored, err := s.progress.Get(ctx, pid, models.BubbleSort)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(rec, *stored)
}

func (s *ScoreRepositorySuite) TestHistoryFeedsTheFold() {
	ctx := context.Background()
	pid := s.newProfile("ada")

	_, err := s.repo.RecordSubmission(ctx, score(pid, "s1", models.InsertionSort, 9, 90), foldFor(9))
	s.Require().NoError(err)

	var seen models.ScoreHistory
	var seenPrev *models.ProgressRecord
	_, err = s.repo.RecordSubmission(ctx, score(pid, "s2", models.InsertionSort, 9, 50), func(prev *models.ProgressRecord, h models.ScoreHistory) models.ProgressRecord {
		seen, seenPrev = h, prev
		return progress.Next(9, prev, h)
	})
	s.Require().NoError(err)

	s.Equal(2, seen.Attempts)
	s.Equal(9, seen.MaxLevel)
	s.Equal(1, seen.CompletedCount)
	s.InDelta(70.0, seen.AverageEfficiency, 1e-9)
	s.Require().NotNil(seenPrev)
	s.Equal(10, seenPrev.CurrentLevel)
}

func (s *ScoreRepositorySuite) TestHistoryIsScopedPerAlgorithmAndProfile() {
	ctx := context.Background()
	ada := s.newProfile("ada")
	grace := s.newProfile("grace")

	_, err := s.repo.RecordSubmission(ctx, score(ada, "s1", models.BubbleSort, 3, 100), foldFor(3))
	s.Require().NoError(err)
	_, err = s.repo.RecordSubmission(ctx, score(grace, "s2", models.BubbleSort, 5, 40), foldFor(5))
	s.Require().NoError(err)

	rec, err := s.repo.RecordSubmission(ctx, score(ada, "s3", models.SelectionSort, 1, 60), foldFor(1))
	s.Require().NoError(err)
	s.Equal(models.ProgressRecord{CurrentLevel: 2, TotalLevelsCompleted: 0, AverageEfficiency: 60}, rec)

	list, err := s.progress.List(ctx, ada)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(models.BubbleSort, list[0].Algorithm)
	s.Equal(4, list[0].CurrentLevel)
	s.Equal(models.SelectionSort, list[1].Algorithm)
}

func (s *ScoreRepositorySuite) TestDuplicateSubmissionRollsBack() {
	ctx := context.Background()
	pid := s.newProfile("ada")

	_, err := s.repo.RecordSubmission(ctx, score(pid, "dup", models.BubbleSort, 1, 100), foldFor(1))
	s.Require().NoError(err)

	called := false
	_, err = s.repo.RecordSubmission(ctx, score(pid, "dup", models.BubbleSort, 2, 100), func(prev *models.ProgressRecord, h models.ScoreHistory) models.ProgressRecord {
		called = true
		return progress.Next(2, prev, h)
	})
	s.Require().Error(err)
	s.False(called)

	stored, err := s.progress.Get(ctx, pid, models.BubbleSort)
	s.Require().NoError(err)
	s.Equal(2, stored.CurrentLevel)
}

func (s *ScoreRepositorySuite) TestConcurrentSubmissionsAreSerialized() {
	ctx := context.Background()
	pid := s.newProfile("ada")

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.repo.RecordSubmission(ctx, score(pid, fmt.Sprintf("c%d", i), models.MergeSort, 20, 100), foldFor(20))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	stored, err := s.progress.Get(ctx, pid, models.MergeSort)
	s.Require().NoError(err)
	s.Equal(n, stored.TotalLevelsCompleted)
	s.Equal(21, stored.CurrentLevel)
}

func (s *ScoreRepositorySuite) TestListScoresNewestFirst() {
	ctx := context.Background()
	pid := s.newProfile("ada")
	for i := 1; i <= 3; i++ {
		_, err := s.repo.RecordSubmission(ctx, score(pid, fmt.Sprintf("s%d", i), models.QuickSort, 30+i, 90), foldFor(30+i))
		s.Require().NoError(err)
	}

	scores, err := s.repo.ListScores(ctx, pid, models.QuickSort, 2)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	s.Equal("s3", scores[0].SubmissionID)
	s.Equal("s2", scores[1].SubmissionID)
	s.True(scores[0].Completed)
	s.Equal(models.Easy, scores[0].Difficulty)

	none, err := s.repo.ListScores(ctx, pid, models.BubbleSort, 0)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *ScoreRepositorySuite) TestLeaderboardFiltersAndOrders() {
	ctx := context.Background()
	ada := s.newProfile("ada")
	grace := s.newProfile("grace")

	_, err := s.repo.RecordSubmission(ctx, score(ada, "a1", models.BubbleSort, 1, 75), foldFor(1))
	s.Require().NoError(err)
	_, err = s.repo.RecordSubmission(ctx, score(grace, "g1", models.BubbleSort, 1, 100), foldFor(1))
	s.Require().NoError(err)
	hard := score(ada, "a2", models.MergeSort, 24, 90)
	hard.Difficulty = models.Hard
	_, err = s.repo.RecordSubmission(ctx, hard, foldFor(24))
	s.Require().NoError(err)

	all, err := s.repo.Leaderboard(ctx, models.LeaderboardFilter{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("grace", all[0].Username)
	s.Equal(100.0, all[0].Efficiency)
	s.Equal(models.MergeSort, all[1].Algorithm)

	bubble, err := s.repo.Leaderboard(ctx, models.LeaderboardFilter{Algorithm: models.BubbleSort, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(bubble, 1)
	s.Equal("grace", bubble[0].Username)

	hardOnly, err := s.repo.Leaderboard(ctx, models.LeaderboardFilter{Difficulty: models.Hard})
	s.Require().NoError(err)
	s.Require().Len(hardOnly, 1)
	s.Equal(24, hardOnly[0].Level)
}

func TestScoreRepositorySuite(t *testing.T) {
	suite.Run(t, new(ScoreRepositorySuite))
}
