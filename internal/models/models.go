package models

// Algorithm names one of the instrumented sorting algorithms.
type Algorithm string

const (
	BubbleSort    Algorithm = "bubble_sort"
	InsertionSort Algorithm = "insertion_sort"
	SelectionSort Algorithm = "selection_sort"
	MergeSort     Algorithm = "merge_sort"
	QuickSort     Algorithm = "quick_sort"
)

// Algorithms lists every playable algorithm in presentation order.
var Algorithms = []Algorithm{BubbleSort, InsertionSort, SelectionSort, MergeSort, QuickSort}

// Valid reports whether a is one of the known algorithms.
func (a Algorithm) Valid() bool {
	for _, known := range Algorithms {
		if a == known {
			return true
		}
	}
	return false
}

// Title returns a human readable name, e.g. "Bubble Sort".
func (a Algorithm) Title() string {
	switch a {
	case BubbleSort:
		return "Bubble Sort"
	case InsertionSort:
		return "Insertion Sort"
	case SelectionSort:
		return "Selection Sort"
	case MergeSort:
		return "Merge Sort"
	case QuickSort:
		return "Quick Sort"
	default:
		return string(a)
	}
}

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties is the fixed presentation order of difficulty tiers.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}
