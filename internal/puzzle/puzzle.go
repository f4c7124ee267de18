// Package puzzle generates the arrays a learner sorts by hand.
package puzzle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	apperrors "github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/models"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Generator draws puzzles for catalog levels.
type Generator struct {
	newSeed func() (int64, error)
}

func NewGenerator() *Generator {
	return &Generator{newSeed: NewSeed}
}

// Generate draws a fresh puzzle for level with a random seed.
func (g *Generator) Generate(level models.LevelSpec) (models.Puzzle, error) {
	seed, err := g.newSeed()
	if err != nil {
		return models.Puzzle{}, err
	}
	return Generate(level, seed)
}

// Generate draws level.Size distinct values uniformly from the level's
// half-open range. The same level and seed always yield the same array.
func Generate(level models.LevelSpec, seed int64) (models.Puzzle, error) {
	values, err := Sample(rand.New(rand.NewSource(seed)), level.Range, level.Size)
	if err != nil {
		if appErr, ok := apperrors.As(err); ok && appErr.Code == apperrors.ErrCodeRangeTooSmall {
			return models.Puzzle{}, apperrors.NewRangeTooSmallError(level.ID, level.Size, level.Range.Width())
		}
		return models.Puzzle{}, err
	}
	return models.Puzzle{Level: level, Array: values, Seed: seed}, nil
}

// Sample picks size distinct integers from [r.Low, r.High) without
// replacement, in draw order.
func Sample(rng *rand.Rand, r models.ValueRange, size int) ([]int, error) {
	width := r.Width()
	if size < 0 {
		return nil, fmt.Errorf("sample size must not be negative, got %d", size)
	}
	if width < size {
		return nil, apperrors.NewRangeTooSmallError(0, size, width)
	}

	// Partial Fisher-Yates over the range.
	pool := make([]int, width)
	for i := range pool {
		pool[i] = r.Low + i
	}
	for i := 0; i < size; i++ {
		j := i + rng.Intn(width-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:size:size], nil
}
