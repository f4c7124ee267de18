package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/algogame/internal/models"
	"github.com/vytor/algogame/internal/sorting"
)

func randomArrays(t *testing.T, count int) [][]int {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	arrays := make([][]int, 0, count)
	for i := 0; i < count; i++ {
		n := rng.Intn(17)
		a := make([]int, n)
		for j := range a {
			a[j] = rng.Intn(50) - 10
		}
		arrays = append(arrays, a)
	}
	return arrays
}

func inversions(a []int) int {
	count := 0
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				count++
			}
		}
	}
	return count
}

func TestExamples(t *testing.T) {
	tests := []struct {
		name  string
		fn    func([]int) int
		input []int
		want  int
	}{
		{"bubble reverse-ish", sorting.BubbleSort[int], []int{4, 2, 3, 1}, 6},
		{"selection reverse-ish", sorting.SelectionSort[int], []int{4, 2, 3, 1}, 6},
		{"insertion already sorted", sorting.InsertionSort[int], []int{1, 2, 3, 4}, 0},
		{"insertion counts inversions", sorting.InsertionSort[int], []int{4, 2, 3, 1}, 5},
		{"merge", sorting.MergeSort[int], []int{4, 2, 3, 1}, 5},
		{"merge sorted", sorting.MergeSort[int], []int{1, 2, 3, 4}, 4},
		{"quick", sorting.QuickSort[int], []int{4, 2, 3, 1}, 6},
		{"quick sorted is worst case", sorting.QuickSort[int], []int{1, 2, 3, 4, 5}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.input))
		})
	}
}

func TestEmptyAndSingleton(t *testing.T) {
	for _, alg := range models.Algorithms {
		count, ok := sorting.Lookup(alg)
		require.True(t, ok, "no counter for %s", alg)
		assert.Equal(t, 0, count(nil), "%s on nil", alg)
		assert.Equal(t, 0, count([]int{}), "%s on empty", alg)
		assert.Equal(t, 0, count([]int{7}), "%s on singleton", alg)
	}
}

func TestQuadraticCountsIgnoreContent(t *testing.T) {
	for _, a := range randomArrays(t, 200) {
		n := len(a)
		want := n * (n - 1) / 2
		assert.Equal(t, want, sorting.BubbleSort(a), "bubble %v", a)
		assert.Equal(t, want, sorting.SelectionSort(a), "selection %v", a)
	}
}

func TestInsertionSortEqualsInversions(t *testing.T) {
	for _, a := range randomArrays(t, 200) {
		assert.Equal(t, inversions(a), sorting.InsertionSort(a), "insertion %v", a)
	}
}

func TestMergeSortBounded(t *testing.T) {
	for _, a := range randomArrays(t, 200) {
		n := len(a)
		steps := sorting.MergeSort(a)
		if n < 2 {
			assert.Zero(t, steps)
			continue
		}
		assert.GreaterOrEqual(t, steps, n/2, "merge %v", a)
		assert.LessOrEqual(t, steps, n*ceilLog2(n), "merge %v", a)
	}
}

func TestQuickSortBounded(t *testing.T) {
	for _, a := range randomArrays(t, 200) {
		n := len(a)
		assert.LessOrEqual(t, sorting.QuickSort(a), n*(n-1)/2, "quick %v", a)
	}
}

func TestDoesNotMutateInputAndIsIdempotent(t *testing.T) {
	for _, a := range randomArrays(t, 100) {
		for _, alg := range models.Algorithms {
			count, _ := sorting.Lookup(alg)
			before := slices.Clone(a)

			first := count(a)
			second := count(a)

			assert.Equal(t, before, a, "%s mutated its input", alg)
			assert.Equal(t, first, second, "%s not idempotent on %v", alg, a)
		}
	}
}

func TestGenericOverStrings(t *testing.T) {
	words := []string{"pear", "apple", "fig"}
	assert.Equal(t, 3, sorting.BubbleSort(words))
	assert.Equal(t, 2, sorting.InsertionSort(words))
	assert.Equal(t, []string{"pear", "apple", "fig"}, words)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := sorting.Lookup(models.Algorithm("bogo_sort"))
	assert.False(t, ok)
}

func ceilLog2(n int) int {
	k := 0
	for 1<<k < n {
		k++
	}
	return k
}
