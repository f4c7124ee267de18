// Package scoring compares a learner's step count against the instrumented
// algorithm's count for the learner's final array.
package scoring

import (
	"math"

	apperrors "github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/sorting"
)

// CompletionThreshold is the efficiency a level needs to count as completed.
const CompletionThreshold = 80.0

// Efficiency is optimal/userSteps as a percentage rounded to two decimals,
// or 0 when userSteps is not positive. It exceeds 100 whenever the learner
// reports fewer steps than the count recomputed from their final array.
func Efficiency(optimalSteps, userSteps int) float64 {
	if userSteps <= 0 {
		return 0
	}
	pct := float64(optimalSteps) / float64(userSteps) * 100
	return math.Round(pct*100) / 100
}

func Completed(efficiency float64) bool {
	return efficiency >= CompletionThreshold
}

// Evaluate scores a submission. The array is used exactly as submitted and
// is not modified. The returned result has no quiz question attached.
func Evaluate(algorithm models.Algorithm, userArray []int, userSteps int) (models.ScoreResult, error) {
	count, ok := sorting.Lookup(algorithm)
	if !ok {
		return models.ScoreResult{}, apperrors.NewUnknownAlgorithmError(string(algorithm))
	}
	optimal := count(userArray)
	eff := Efficiency(optimal, userSteps)
	return models.ScoreResult{
		OptimalSteps: optimal,
		Efficiency:   eff,
		Completed:    Completed(eff),
	}, nil
}
