package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/scoring"
)

func TestEvaluate_BubbleExample(t *testing.T) {
	res, err := scoring.Evaluate(models.BubbleSort, []int{4, 2, 3, 1}, 6)
	require.NoError(t, err)

	assert.Equal(t, 6, res.OptimalSteps)
	assert.Equal(t, 100.0, res.Efficiency)
	assert.True(t, res.Completed)
	assert.Nil(t, res.QuizQuestion)
}

func TestEvaluate_ZeroOrNegativeStepsNeverComplete(t *testing.T) {
	arrays := [][]int{nil, {1}, {4, 2, 3, 1}, {1, 2, 3, 4, 5, 6, 7, 8}}
	for _, alg := range models.Algorithms {
		for _, a := range arrays {
			for _, steps := range []int{0, -3} {
				res, err := scoring.Evaluate(alg, a, steps)
				require.NoError(t, err)
				assert.Zero(t, res.Efficiency, "%s %v steps=%d", alg, a, steps)
				assert.False(t, res.Completed)
			}
		}
	}
}

func TestEvaluate_UsesFinalArrayOrder(t *testing.T) {
	unsorted, err := scoring.Evaluate(models.InsertionSort, []int{4, 2, 3, 1}, 5)
	require.NoError(t, err)
	sorted, err := scoring.Evaluate(models.InsertionSort, []int{1, 2, 3, 4}, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, unsorted.OptimalSteps)
	assert.Equal(t, 0, sorted.OptimalSteps)
	assert.False(t, sorted.Completed)
}

func TestEvaluate_DoesNotMutateArray(t *testing.T) {
	a := []int{9, 3, 7, 1}
	_, err := scoring.Evaluate(models.QuickSort, a, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 3, 7, 1}, a)
}

func TestEvaluate_UnknownAlgorithm(t *testing.T) {
	_, err := scoring.Evaluate(models.Algorithm("bogo_sort"), []int{2, 1}, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnknownAlgorithm)
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name           string
		optimal, steps int
		want           float64
	}{
		{"exact", 6, 6, 100},
		{"rounded to two decimals", 2, 3, 66.67},
		{"above one hundred", 10, 4, 250},
		{"zero optimal", 0, 5, 0},
		{"zero steps", 6, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.Efficiency(tt.optimal, tt.steps))
		})
	}
}

func TestCompleted_Boundary(t *testing.T) {
	assert.True(t, scoring.Completed(80))
	assert.True(t, scoring.Completed(80.01))
	assert.False(t, scoring.Completed(79.99))
	assert.True(t, scoring.Completed(250))

	res, err := scoring.Evaluate(models.SelectionSort, []int{5, 4, 3, 2, 1}, 12)
	require.NoError(t, err)
	assert.Equal(t, 83.33, res.Efficiency)
	assert.True(t, res.Completed)

	// 8/10 lands exactly on the threshold.
	assert.Equal(t, 80.0, scoring.Efficiency(8, 10))
	assert.True(t, scoring.Completed(scoring.Efficiency(8, 10)))
}
