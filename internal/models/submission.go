package models

import "time"

// Submission is a learner's solved puzzle as sent by the caller.
type Submission struct {
	Algorithm  Algorithm  `json:"algorithm"`
	Difficulty Difficulty `json:"difficulty"`
	LevelID    int        `json:"level_id"`
	UserArray  []int      `json:"array"`
	UserSteps  int        `json:"steps"`
	TimeTaken  int        `json:"time_taken"`
	HintsUsed  int        `json:"hints_used"`
}

// ScoreResult is returned once per submission and never stored by the engine.
type ScoreResult struct {
	OptimalSteps int           `json:"optimal_steps"`
	Efficiency   float64       `json:"efficiency"`
	Completed    bool          `json:"completed"`
	QuizQuestion *QuizQuestion `json:"quiz_question"`
}

// ScoreRecord is the persisted history row for one scored submission.
type ScoreRecord struct {
	ID           int64      `json:"id"`
	SubmissionID string     `json:"submission_id"`
	ProfileID    int64      `json:"profile_id"`
	Algorithm    Algorithm  `json:"algorithm"`
	Level        int        `json:"level"`
	Difficulty   Difficulty `json:"difficulty"`
	Steps        int        `json:"steps"`
	OptimalSteps int        `json:"optimal_steps"`
	Efficiency   float64    `json:"efficiency"`
	TimeTaken    int        `json:"time_taken"`
	HintsUsed    int        `json:"hints_used"`
	Completed    bool       `json:"completed"`
	CreatedAt    time.Time  `json:"created_at"`
}

type LeaderboardEntry struct {
	Username   string     `json:"username"`
	Algorithm  Algorithm  `json:"algorithm"`
	Efficiency float64    `json:"efficiency"`
	Level      int        `json:"level"`
	Difficulty Difficulty `json:"difficulty"`
}

type LeaderboardFilter struct {
	Algorithm  Algorithm
	Difficulty Difficulty
	Limit      int
}
