package life

import (
	"slices"

	"github.com/pkg/errors"

	"mad-life/pkg/core"
)

// point is a cell offset as (column, row).
type point [2]int

var patterns = map[string][]point{
	"empty":   nil,
	"glider":  {{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}},
	"blinker": {{1, 2}, {2, 2}, {3, 2}},
	"block":   {{1, 1}, {2, 1}, {1, 2}, {2, 2}},
}

const patternRandom = "random"

// Patterns lists the pattern names accepted by Seed.
func Patterns() []string {
	names := []string{patternRandom}
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func knownPattern(name string) bool {
	if name == patternRandom {
		return true
	}
	_, ok := patterns[name]
	return ok
}

// Seed sets the cells of the named pattern alive on l, leaving other cells
// untouched. If any pattern cell falls outside the grid nothing is written.
// The "random" pattern instead overwrites every cell, each alive with
// probability density, from a generator seeded with seed.
func Seed(l *Life, name string, seed int64, density float64) error {
	if name == patternRandom {
		buf := make([]uint8, len(l.cur.Cells()))
		core.NewRNG(seed).FillBinary(buf, density)
		return l.Restore(buf)
	}
	cells, ok := patterns[name]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	for _, p := range cells {
		if err := l.check(p[0], p[1]); err != nil {
			return errors.Wrapf(err, "seed %s", name)
		}
	}
	for _, p := range cells {
		l.cur.Set(p[0], p[1], 1)
	}
	return nil
}
