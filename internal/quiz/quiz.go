// Package quiz holds the multiple-choice questions shown after a submission.
package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/vytor/algogame/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// OptionCount is the number of choices every question offers.
const OptionCount = 4

type questionEntry struct {
	Question    string   `yaml:"question"`
	Options     []string `yaml:"options"`
	Correct     int      `yaml:"correct"`
	Explanation string   `yaml:"explanation"`
}

// Bank is read-only after construction.
type Bank struct {
	questions map[models.Algorithm][]models.QuizQuestion
	pick      func(n int) int
}

var loadDefault = sync.OnceValues(func() (*Bank, error) {
	return Parse(questionsYAML)
})

// Default returns the embedded question bank, parsing it on first use.
func Default() (*Bank, error) {
	return loadDefault()
}

// Parse builds a bank from YAML keyed by algorithm name.
func Parse(data []byte) (*Bank, error) {
	var raw map[string][]questionEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz bank: %w", err)
	}

	b := &Bank{
		questions: make(map[models.Algorithm][]models.QuizQuestion, len(raw)),
		pick:      rand.Intn,
	}
	var errs []error
	for name, entries := range raw {
		alg := models.Algorithm(name)
		if !alg.Valid() {
			errs = append(errs, fmt.Errorf("unknown algorithm %q", name))
			continue
		}
		for i, e := range entries {
			if len(e.Options) != OptionCount {
				errs = append(errs, fmt.Errorf("%s question %d: want %d options, got %d", name, i, OptionCount, len(e.Options)))
				continue
			}
			if e.Correct < 0 || e.Correct >= OptionCount {
				errs = append(errs, fmt.Errorf("%s question %d: correct index %d out of range", name, i, e.Correct))
				continue
			}
			b.questions[alg] = append(b.questions[alg], models.QuizQuestion{
				Question:     e.Question,
				Options:      e.Options,
				CorrectIndex: e.Correct,
				Explanation:  e.Explanation,
			})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid quiz bank: %w", err)
	}
	return b, nil
}

// WithPicker returns a copy of the bank that chooses questions with pick,
// which must return a value in [0, n).
func (b *Bank) WithPicker(pick func(n int) int) *Bank {
	return &Bank{questions: b.questions, pick: pick}
}

// Questions returns the questions for algorithm; empty when none are authored.
func (b *Bank) Questions(algorithm models.Algorithm) []models.QuizQuestion {
	qs := b.questions[algorithm]
	out := make([]models.QuizQuestion, len(qs))
	for i, q := range qs {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// Random picks one question for algorithm uniformly at random. It reports
// false when the algorithm has no questions.
func (b *Bank) Random(algorithm models.Algorithm) (models.QuizQuestion, bool) {
	qs := b.questions[algorithm]
	if len(qs) == 0 {
		return models.QuizQuestion{}, false
	}
	q := qs[b.pick(len(qs))]
	q.Options = slices.Clone(q.Options)
	return q, true
}
