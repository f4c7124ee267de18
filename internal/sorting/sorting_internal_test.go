package sorting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalSortsProduceNonDecreasingOrder(t *testing.T) {
	sorters := map[string]func([]int) ([]int, int){
		"bubble":    bubbleSort[int],
		"insertion": insertionSort[int],
		"selection": selectionSort[int],
		"merge":     mergeSort[int],
		"quick":     quickSort[int],
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		input := make([]int, rng.Intn(17))
		for j := range input {
			input[j] = rng.Intn(20)
		}
		want := slices.Sorted(slices.Values(input))

		for name, sortFn := range sorters {
			got, _ := sortFn(slices.Clone(input))
			assert.Equal(t, len(input), len(got), name)
			if len(input) > 0 {
				assert.Equal(t, want, got, "%s on %v", name, input)
			}
		}
	}
}
