// Package progress folds a scored submission into a learner's per-algorithm
// progress record. It is pure: the caller supplies the current record and
// the history aggregate read inside its own transaction.
package progress

import "github.com/vytor/algogame/internal/models"

// Next computes the record that replaces prev after a submission for
// levelID. history must already include that submission.
//
// CurrentLevel is one past the highest level attempted (levelID when history
// is empty) and never moves backwards. The completion count and average are
// recomputed from history rather than incremented.
func Next(levelID int, prev *models.ProgressRecord, history models.ScoreHistory) models.ProgressRecord {
	highest := levelID
	if history.Attempts > 0 && history.MaxLevel > highest {
		highest = history.MaxLevel
	}
	current := highest + 1
	if prev != nil && prev.CurrentLevel > current {
		current = prev.CurrentLevel
	}

	return models.ProgressRecord{
		CurrentLevel:         current,
		TotalLevelsCompleted: history.CompletedCount,
		AverageEfficiency:    history.AverageEfficiency,
	}
}
