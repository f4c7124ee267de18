package models

// ValueRange is the half-open interval [Low, High) puzzle values are drawn from.
type ValueRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Width is the number of distinct values available in the range.
func (r ValueRange) Width() int {
	return r.High - r.Low
}

// LevelSpec is an immutable puzzle template from the level catalog.
type LevelSpec struct {
	ID          int        `json:"id"`
	Algorithm   Algorithm  `json:"algorithm"`
	Difficulty  Difficulty `json:"difficulty"`
	Size        int        `json:"size"`
	Range       ValueRange `json:"range"`
	Description string     `json:"description"`
}

// Puzzle is a generated array for one level. Seed reproduces the same array.
type Puzzle struct {
	Level LevelSpec `json:"level_data"`
	Array []int     `json:"array"`
	Seed  int64     `json:"seed"`
}

// AlgorithmLevels groups the catalog entries of one algorithm by difficulty.
type AlgorithmLevels struct {
	Algorithm    Algorithm                  `json:"algorithm"`
	Title        string                     `json:"title"`
	Levels       map[Difficulty][]LevelSpec `json:"levels"`
	CurrentLevel int                        `json:"current_level,omitempty"`
}
