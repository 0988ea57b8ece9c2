// Package generate builds the integer arrays fed to the benchmark.
package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// Pattern selects the shape of a generated array.
type Pattern string

const (
	// PatternRandom draws every element uniformly from [Min, Max].
	PatternRandom Pattern = "random"
	// PatternSorted is a random draw sorted ascending.
	PatternSorted Pattern = "sorted"
	// PatternReversed is a random draw sorted descending.
	PatternReversed Pattern = "reversed"
	// PatternEqual repeats a single random value.
	PatternEqual Pattern = "equal"
	// PatternFewUnique draws from a handful of distinct values.
	PatternFewUnique Pattern = "few-unique"
)

const fewUniqueValues = 4

var (
	ErrNegativeSize   = errors.New("size must not be negative")
	ErrInvalidRange   = errors.New("min must not exceed max")
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Config describes an array to generate.
type Config struct {
	Size    int
	Min     int
	Max     int // inclusive
	Seed    uint64
	Pattern Pattern
}

// DefaultConfig is the demo input: 100 random values in [0, 1000].
func DefaultConfig() Config {
	return Config{
		Size:    100,
		Min:     0,
		Max:     1000,
		Pattern: PatternRandom,
	}
}

// Patterns lists the supported patterns.
func Patterns() []Pattern {
	return []Pattern{PatternRandom, PatternSorted, PatternReversed, PatternEqual, PatternFewUnique}
}

// ParsePattern resolves a pattern name; the empty string means random.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return PatternRandom, nil
	}
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Patterns(), p) {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// Validate checks the config without generating anything.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, c.Size)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, c.Min, c.Max)
	}
	_, err := ParsePattern(string(c.Pattern))
	return err
}

// Ints generates an array per cfg. A zero seed draws a time-based seed;
// any other seed makes the output reproducible.
func Ints(cfg Config) ([]int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pattern, _ := ParsePattern(string(cfg.Pattern))

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // G115: any bit pattern is a valid seed
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // G404: benchmark input, not crypto
	// The span is computed in uint64 so ranges wider than math.MaxInt do
	// not overflow; the addition wraps back into [Min, Max].
	span := uint64(cfg.Max) - uint64(cfg.Min) //nolint:gosec // G115: two's complement difference
	draw := func() int {
		if span == math.MaxUint64 {
			return int(r.Uint64()) //nolint:gosec // G115: full int range
		}
		return cfg.Min + int(r.Uint64N(span+1)) //nolint:gosec // G115: wraps into [Min, Max]
	}

	out := make([]int, cfg.Size)
	switch pattern {
	case PatternEqual:
		v := draw()
		for i := range out {
			out[i] = v
		}
	case PatternFewUnique:
		values := make([]int, fewUniqueValues)
		for i := range values {
			values[i] = draw()
		}
		for i := range out {
			out[i] = values[r.IntN(len(values))]
		}
	default:
		for i := range out {
			out[i] = draw()
		}
	}

	switch pattern {
	case PatternSorted:
		slices.Sort(out)
	case PatternReversed:
		slices.Sort(out)
		slices.Reverse(out)
	}
	return out, nil
}
