package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/quiz"
)

func defaultBank(t *testing.T) *quiz.Bank {
	t.Helper()
	b, err := quiz.Default()
	require.NoError(t, err)
	return b
}

func TestDefault_QuestionCounts(t *testing.T) {
	b := defaultBank(t)

	assert.Len(t, b.Questions(models.BubbleSort), 2)
	assert.Len(t, b.Questions(models.InsertionSort), 1)
	assert.Len(t, b.Questions(models.SelectionSort), 1)
	assert.Empty(t, b.Questions(models.MergeSort))
	assert.Empty(t, b.Questions(models.QuickSort))
}

func TestDefault_QuestionsAreWellFormed(t *testing.T) {
	b := defaultBank(t)
	for _, alg := range models.Algorithms {
		for _, q := range b.Questions(alg) {
			assert.NotEmpty(t, q.Question)
			assert.Len(t, q.Options, quiz.OptionCount)
			assert.GreaterOrEqual(t, q.CorrectIndex, 0)
			assert.Less(t, q.CorrectIndex, quiz.OptionCount)
			assert.NotEmpty(t, q.Explanation)
		}
	}
}

func TestRandom_UsesPicker(t *testing.T) {
	b := defaultBank(t).WithPicker(func(n int) int { return n - 1 })

	q, ok := b.Random(models.BubbleSort)
	require.True(t, ok)
	assert.Equal(t, "How many passes does Bubble Sort need for an array of n elements?", q.Question)
	assert.Equal(t, 1, q.CorrectIndex)
}

func TestRandom_Absent(t *testing.T) {
	b := defaultBank(t)

	_, ok := b.Random(models.QuickSort)
	assert.False(t, ok)
	_, ok = b.Random(models.Algorithm("bogo_sort"))
	assert.False(t, ok)
}

func TestRandom_CoversEveryQuestion(t *testing.T) {
	b := defaultBank(t)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		q, ok := b.Random(models.BubbleSort)
		require.True(t, ok)
		seen[q.Question] = true
	}
	assert.Len(t, seen, 2)
}

func TestRandom_ReturnsCopies(t *testing.T) {
	b := defaultBank(t)
	q, _ := b.Random(models.InsertionSort)
	q.Options[0] = "mutated"

	again, _ := b.Random(models.InsertionSort)
	assert.Equal(t, "Random array", again.Options[0])
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"three options", "bubble_sort:\n  - {question: q, options: [a, b, c], correct: 0, explanation: e}\n", "want 4 options"},
		{"bad index", "bubble_sort:\n  - {question: q, options: [a, b, c, d], correct: 4, explanation: e}\n", "out of range"},
		{"unknown algorithm", "bogo_sort: []\n", "bogo_sort"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quiz.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
