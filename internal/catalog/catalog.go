// Package catalog holds the static level table. It is parsed once from the
// embedded levels.yaml and is read-only afterwards, so a *Catalog is safe for
// concurrent use without locking.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	apperrors "github.com/vytor/algogame/internal/errors"
	"github.com/vytor/algogame/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var levelsYAML []byte

type levelEntry struct {
	ID          int    `yaml:"id"`
	Size        int    `yaml:"size"`
	Range       []int  `yaml:"range"`
	Description string `yaml:"description"`
}

type algorithmEntry struct {
	Name   string `yaml:"name"`
	Levels struct {
		Easy   []levelEntry `yaml:"easy"`
		Medium []levelEntry `yaml:"medium"`
		Hard   []levelEntry `yaml:"hard"`
	} `yaml:"levels"`
}

type catalogFile struct {
	Algorithms []algorithmEntry `yaml:"algorithms"`
}

type Catalog struct {
	order  []models.Algorithm
	levels map[models.Algorithm]map[models.Difficulty][]models.LevelSpec
	byID   map[int]models.LevelSpec
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(levelsYAML)
})

// Default returns the embedded catalog, parsing it on first use.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Parse builds a catalog from YAML and checks its consistency: known
// algorithms, globally unique ids, size >= 1 and a range wide enough to
// sample size distinct values.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level catalog: %w", err)
	}

	c := &Catalog{
		levels: make(map[models.Algorithm]map[models.Difficulty][]models.LevelSpec),
		byID:   make(map[int]models.LevelSpec),
	}

	var errs []error
	for _, a := range f.Algorithms {
		alg := models.Algorithm(a.Name)
		if !alg.Valid() {
			errs = append(errs, fmt.Errorf("unknown algorithm %q", a.Name))
			continue
		}
		if _, dup := c.levels[alg]; dup {
			errs = append(errs, fmt.Errorf("algorithm %q listed twice", a.Name))
			continue
		}
		c.order = append(c.order, alg)
		c.levels[alg] = make(map[models.Difficulty][]models.LevelSpec)

		tiers := map[models.Difficulty][]levelEntry{
			models.Easy:   a.Levels.Easy,
			models.Medium: a.Levels.Medium,
			models.Hard:   a.Levels.Hard,
		}
		for _, diff := range models.Difficulties {
			for _, e := range tiers[diff] {
				spec, err := e.toSpec(alg, diff)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if prev, dup := c.byID[spec.ID]; dup {
					errs = append(errs, fmt.Errorf("level id %d used by %s/%s and %s/%s", spec.ID, prev.Algorithm, prev.Difficulty, alg, diff))
					continue
				}
				c.byID[spec.ID] = spec
				c.levels[alg][diff] = append(c.levels[alg][diff], spec)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid level catalog: %w", err)
	}
	return c, nil
}

func (e levelEntry) toSpec(alg models.Algorithm, diff models.Difficulty) (models.LevelSpec, error) {
	if len(e.Range) != 2 {
		return models.LevelSpec{}, fmt.Errorf("level %d: range must be [low, high]", e.ID)
	}
	spec := models.LevelSpec{
		ID:          e.ID,
		Algorithm:   alg,
		Difficulty:  diff,
		Size:        e.Size,
		Range:       models.ValueRange{Low: e.Range[0], High: e.Range[1]},
		Description: e.Description,
	}
	if spec.Size < 1 {
		return models.LevelSpec{}, fmt.Errorf("level %d: size must be at least 1", e.ID)
	}
	if spec.Range.Width() < spec.Size {
		return models.LevelSpec{}, apperrors.NewRangeTooSmallError(spec.ID, spec.Size, spec.Range.Width())
	}
	return spec, nil
}

// Lookup finds a level by algorithm, difficulty and id.
func (c *Catalog) Lookup(alg models.Algorithm, diff models.Difficulty, id int) (models.LevelSpec, error) {
	for _, spec := range c.levels[alg][diff] {
		if spec.ID == id {
			return spec, nil
		}
	}
	return models.LevelSpec{}, apperrors.NewNotFoundError("level", fmt.Sprintf("%s/%s/%d", alg, diff, id))
}

// Level finds a level by its global id.
func (c *Catalog) Level(id int) (models.LevelSpec, bool) {
	spec, ok := c.byID[id]
	return spec, ok
}

// Levels returns a copy of the levels for one algorithm and difficulty.
func (c *Catalog) Levels(alg models.Algorithm, diff models.Difficulty) []models.LevelSpec {
	return slices.Clone(c.levels[alg][diff])
}

// Algorithms returns the algorithms in catalog order.
func (c *Catalog) Algorithms() []models.Algorithm {
	return slices.Clone(c.order)
}

// Overview groups every level by algorithm, in catalog order.
func (c *Catalog) Overview() []models.AlgorithmLevels {
	out := make([]models.AlgorithmLevels, 0, len(c.order))
	for _, alg := range c.order {
		group := models.AlgorithmLevels{
			Algorithm: alg,
			Title:     alg.Title(),
			Levels:    make(map[models.Difficulty][]models.LevelSpec),
		}
		for _, diff := range models.Difficulties {
			if specs := c.levels[alg][diff]; len(specs) > 0 {
				group.Levels[diff] = slices.Clone(specs)
			}
		}
		out = append(out, group)
	}
	return out
}
