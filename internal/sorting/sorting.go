// Package sorting implements the instrumented sorting algorithms used to
// score a learner's solution. Every exported function sorts a private copy of
// its input and returns the number of basic operations it performed; the
// caller's slice is never modified.
package sorting

import (
	"cmp"
	"slices"

	"github.com/vytor/algogame/internal/models"
)

// StepCounter returns the optimal step count for values.
type StepCounter func(values []int) int

var counters = map[models.Algorithm]StepCounter{
	models.BubbleSort:    BubbleSort[int],
	models.InsertionSort: InsertionSort[int],
	models.SelectionSort: SelectionSort[int],
	models.MergeSort:     MergeSort[int],
	models.QuickSort:     QuickSort[int],
}

// Lookup returns the step counter registered for algorithm.
func Lookup(algorithm models.Algorithm) (StepCounter, bool) {
	c, ok := counters[algorithm]
	return c, ok
}

// BubbleSort counts every adjacent comparison, swap or not: always n(n-1)/2.
func BubbleSort[T cmp.Ordered](values []T) int {
	_, steps := bubbleSort(slices.Clone(values))
	return steps
}

// InsertionSort counts element shifts inside the inner loop.
func InsertionSort[T cmp.Ordered](values []T) int {
	_, steps := insertionSort(slices.Clone(values))
	return steps
}

// SelectionSort counts comparisons in the minimum search: always n(n-1)/2.
func SelectionSort[T cmp.Ordered](values []T) int {
	_, steps := selectionSort(slices.Clone(values))
	return steps
}

// MergeSort counts comparisons made while merging sorted halves.
func MergeSort[T cmp.Ordered](values []T) int {
	_, steps := mergeSort(slices.Clone(values))
	return steps
}

// QuickSort counts comparisons against the pivot in Lomuto partitioning
// with the last element as pivot.
func QuickSort[T cmp.Ordered](values []T) int {
	_, steps := quickSort(slices.Clone(values))
	return steps
}

func bubbleSort[T cmp.Ordered](a []T) ([]T, int) {
	steps := 0
	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			steps++
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
	return a, steps
}

func insertionSort[T cmp.Ordered](a []T) ([]T, int) {
	steps := 0
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			steps++
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
	return a, steps
}

func selectionSort[T cmp.Ordered](a []T) ([]T, int) {
	steps := 0
	n := len(a)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			steps++
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
	}
	return a, steps
}

func mergeSort[T cmp.Ordered](a []T) ([]T, int) {
	if len(a) <= 1 {
		return a, 0
	}
	mid := len(a) / 2
	left, leftSteps := mergeSort(a[:mid:mid])
	right, rightSteps := mergeSort(a[mid:])
	steps := leftSteps + rightSteps

	merged := make([]T, 0, len(a))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		steps++
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged, steps
}

func quickSort[T cmp.Ordered](a []T) ([]T, int) {
	steps := 0
	var recurse func(low, high int)
	recurse = func(low, high int) {
		if low >= high {
			return
		}
		p := partition(a, low, high, &steps)
		recurse(low, p-1)
		recurse(p+1, high)
	}
	recurse(0, len(a)-1)
	return a, steps
}

func partition[T cmp.Ordered](a []T, low, high int, steps *int) int {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		*steps++
		if a[j] <= pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1
}
