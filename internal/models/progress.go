package models

// ProgressRecord is the per-user, per-algorithm rollup.
type ProgressRecord struct {
	CurrentLevel         int     `json:"current_level"`
	TotalLevelsCompleted int     `json:"total_levels_completed"`
	AverageEfficiency    float64 `json:"average_efficiency"`
}

// AlgorithmProgress pairs an algorithm with its progress record.
type AlgorithmProgress struct {
	Algorithm Algorithm `json:"algorithm"`
	ProgressRecord
}

// ScoreHistory aggregates every recorded submission of a user for one
// algorithm, including the one currently being recorded.
type ScoreHistory struct {
	Attempts          int
	MaxLevel          int
	CompletedCount    int
	AverageEfficiency float64
}
