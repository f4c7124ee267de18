// Package hint picks the hint a learner sees while sorting.
package hint

import (
	"fmt"

	"github.com/vytor/algogame/internal/models"
)

// StepsPerHint is how many learner steps it takes to unlock the next hint.
const StepsPerHint = 3

// NoHints is the single hint for algorithms without authored hints.
const NoHints = "No hints available"

// Hints returns the ordered hints for algorithm, general strategy first. The
// last hint is specific to a puzzle with n elements.
func Hints(algorithm models.Algorithm, n int) []string {
	pairs := n * (n - 1) / 2
	switch algorithm {
	case models.BubbleSort:
		return []string{
			"Compare adjacent elements and swap if they're in wrong order",
			"After each pass, the largest element 'bubbles up' to the end",
			"You need n-1 passes for n elements",
			fmt.Sprintf("For %d elements, optimal steps are %d", n, pairs),
		}
	case models.InsertionSort:
		return []string{
			"Build sorted array one element at a time",
			"Take each element and insert it into correct position in sorted part",
			"Left side of current element is always sorted",
			fmt.Sprintf("For %d elements, worst case is %d steps", n, pairs),
		}
	case models.SelectionSort:
		return []string{
			"Find minimum element and place it at beginning",
			"Repeat for remaining unsorted portion",
			"Each pass places one element in correct position",
			fmt.Sprintf("For %d elements, you need %d comparisons", n, pairs),
		}
	case models.MergeSort:
		return []string{
			"Divide array into two halves recursively",
			"Merge sorted halves back together",
			"Use two-pointer technique for merging",
			"Time complexity is O(n log n) - very efficient!",
		}
	case models.QuickSort:
		return []string{
			"Choose a pivot element",
			"Partition array around pivot",
			"Recursively sort sub-arrays",
			"Average case is O(n log n) - very fast!",
		}
	default:
		return []string{NoHints}
	}
}

// Index is the hint position for userSteps: one step up every StepsPerHint
// steps, saturating at last. Negative step counts select the first hint.
func Index(userSteps, count int) int {
	if count <= 0 || userSteps < 0 {
		return 0
	}
	return min(userSteps/StepsPerHint, count-1)
}

// Select returns the hint for a learner who has taken userSteps steps on a
// puzzle of n elements.
func Select(algorithm models.Algorithm, n, userSteps int) string {
	hints := Hints(algorithm, n)
	return hints[Index(userSteps, len(hints))]
}
