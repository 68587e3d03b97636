package app

import (
	"log"

	"mad-life/internal/save"
)

// Editor is the capability the input layer holds on a grid it does not own.
type Editor interface {
	Set(x, y int) error
	Unset(x, y int) error
	TogglePause()
	Paused() bool
	ClearAll()
	Step()
	Reset(seed int64) error
}

// Grid is everything the host loop needs from the simulation.
type Grid interface {
	Editor
	save.Source
	save.Target
	Advance() bool
	CopyCells(dst []uint8) []uint8
	Generation() int
	Population() int
	Timestep() int
}

// Key is a decoded command key.
type Key int

const (
	KeyPause Key = iota
	KeyClear
	KeyGrid
	KeyUI
	KeySave
	KeyLoad
	KeyStep
	KeyReset
)

// Input is one frame of decoded device state.
type Input struct {
	// CursorX and CursorY are in screen pixels and may lie outside the window.
	CursorX, CursorY int
	// Left paints cells alive, Right erases them. Left wins when both are held.
	Left, Right bool
	// Keys lists the command keys pressed since the previous frame.
	Keys []Key
}

// View holds the display toggles driven by input.
type View struct {
	ShowGrid bool
	ShowUI   bool
}

// Controller turns decoded input into grid calls and owns the display
// toggles. It does not own the grid.
type Controller struct {
	grid  Grid
	store save.Store
	name  string
	seed  int64

	screenW, screenH int
	view             View

	logger *log.Logger
}

// NewController wires a grid to the input layer using cfg for the screen
// size, save location, reset seed and initial toggles.
func NewController(grid Grid, cfg *Config) *Controller {
	h, w := grid.Dimensions()
	return &Controller{
		grid:    grid,
		store:   save.NewStore(cfg.SaveDir),
		name:    cfg.SaveName,
		seed:    cfg.Seed,
		screenW: w * cfg.Scale,
		screenH: h * cfg.Scale,
		view:    View{ShowGrid: cfg.ShowGrid, ShowUI: cfg.ShowUI},
		logger:  log.Default(),
	}
}

// SetLogger replaces the logger used for save/load reports.
func (c *Controller) SetLogger(l *log.Logger) { c.logger = l }

// View returns the current display toggles.
func (c *Controller) View() View { return c.view }

// Apply handles one frame of input.
func (c *Controller) Apply(in Input) {
	for _, k := range in.Keys {
		c.handleKey(k)
	}
	if !in.Left && !in.Right {
		return
	}
	h, w := c.grid.Dimensions()
	x, y := CellAt(in.CursorX, in.CursorY, c.screenW, c.screenH, w, h)
	var err error
	if in.Left {
		err = c.grid.Set(x, y)
	} else {
		err = c.grid.Unset(x, y)
	}
	if err != nil {
		c.logger.Printf("edit cell (%d,%d): %v", x, y, err)
	}
}

func (c *Controller) handleKey(k Key) {
	switch k {
	case KeyPause:
		c.grid.TogglePause()
	case KeyClear:
		c.grid.ClearAll()
	case KeyGrid:
		c.view.ShowGrid = !c.view.ShowGrid
	case KeyUI:
		c.view.ShowUI = !c.view.ShowUI
	case KeySave:
		if err := c.store.Save(c.name, c.grid); err != nil {
			c.logger.Printf("save failed: %v", err)
			return
		}
		c.logger.Printf("saved %s", c.store.Path(c.name))
	case KeyLoad:
		if err := c.store.Load(c.name, c.grid); err != nil {
			c.logger.Printf("load failed: %v", err)
			return
		}
		c.logger.Printf("loaded %s", c.store.Path(c.name))
	case KeyStep:
		if c.grid.Paused() {
			c.grid.Step()
		}
	case KeyReset:
		if err := c.grid.Reset(c.seed); err != nil {
			c.logger.Printf("reset failed: %v", err)
		}
	}
}

// Frame advances the simulation once per host frame and reports whether a
// generation was computed.
func (c *Controller) Frame() bool { return c.grid.Advance() }

// CellAt maps a cursor position in a screenW x screenH window onto a
// cols x rows grid, clamping positions outside the window to the nearest
// edge cell.
func CellAt(mx, my, screenW, screenH, cols, rows int) (x, y int) {
	return clamp(mx*cols/screenW, 0, cols-1), clamp(my*rows/screenH, 0, rows-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
