package life

import "strconv"

const (
	// DefaultTimestep is the number of Advance calls per generation.
	DefaultTimestep = 6
	// MaxCells caps width*height. Each grid holds two buffers of this size.
	MaxCells = 1 << 28
)

// Config holds parameters for a Life grid.
type Config struct {
	Width    int
	Height   int
	Timestep int

	// Pattern names the seed applied by Reset. See Patterns.
	Pattern string
	Seed    int64
	// Density is the alive probability used by the "random" pattern.
	Density float64
}

// DefaultConfig returns the default configuration: a 136x70 board seeded
// with a glider, advancing once every six host frames.
func DefaultConfig() Config {
	return Config{
		Width:    136,
		Height:   70,
		Timestep: DefaultTimestep,
		Pattern:  "glider",
		Seed:     42,
		Density:  0.2,
	}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["timestep"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Timestep = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
