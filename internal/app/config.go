package app

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"mad-life/internal/save"
	"mad-life/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Scale    int
	TPS      int
	Timestep int
	Pattern  string
	Seed     int64
	Density  float64

	SaveDir  string
	SaveName string

	ShowGrid bool
	ShowUI   bool
}

// NewConfig returns a Config populated with sensible defaults: a 136x70
// board drawn at 10px per cell, 60 frames per second and one generation
// every six frames.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Width:    lc.Width,
		Height:   lc.Height,
		Scale:    10,
		TPS:      60,
		Timestep: lc.Timestep,
		Pattern:  lc.Pattern,
		Seed:     lc.Seed,
		Density:  lc.Density,
		SaveDir:  save.DefaultDir,
		SaveName: save.DefaultName,
		ShowGrid: true,
		ShowUI:   true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.IntVar(&c.Timestep, "timestep", c.Timestep, "host frames per generation")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(life.Patterns(), ", "))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for the random pattern")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for save files")
	fs.StringVar(&c.SaveName, "save-file", c.SaveName, "file name used by the save and load keys")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines")
	fs.BoolVar(&c.ShowUI, "ui", c.ShowUI, "draw the status overlay")
}

// Validate reports settings the host cannot run with. Grid parameters are
// validated by life.NewWithConfig.
func (c *Config) Validate() error {
	if c.Scale < 1 {
		return errors.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.TPS < 1 {
		return errors.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	return nil
}

// Life returns the grid configuration described by c.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:    c.Width,
		Height:   c.Height,
		Timestep: c.Timestep,
		Pattern:  c.Pattern,
		Seed:     c.Seed,
		Density:  c.Density,
	}
}

// NewGrid builds the grid described by c and applies its initial pattern.
func (c *Config) NewGrid() (*life.Life, error) {
	g, err := life.NewWithConfig(c.Life())
	if err != nil {
		return nil, err
	}
	if err := g.Reset(c.Seed); err != nil {
		return nil, err
	}
	return g, nil
}
