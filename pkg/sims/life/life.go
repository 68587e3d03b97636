package life

import (
	"github.com/pkg/errors"

	"mad-life/pkg/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells past the
// edges are treated as dead; there is no wraparound.
//
// Life is not safe for concurrent use. The host loop owns it and serializes
// every call.
type Life struct {
	cfg Config

	cur *core.ByteGrid
	nxt *core.ByteGrid

	throttle *core.Throttle
	paused   bool
	gen      int
}

// New returns an empty height x width grid using the default timestep.
func New(height, width int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Height = height
	cfg.Width = width
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty grid configured from cfg. The configured
// pattern is not applied until Reset.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Width < 1 || cfg.Height < 1 || cfg.Width > MaxCells/cfg.Height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "height %d, width %d", cfg.Height, cfg.Width)
	}
	if cfg.Timestep < 1 {
		return nil, errors.Wrapf(ErrInvalidTimestep, "timestep %d", cfg.Timestep)
	}
	if !knownPattern(cfg.Pattern) {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", cfg.Pattern)
	}
	return &Life{
		cfg:      cfg,
		cur:      core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:      core.NewByteGrid(cfg.Width, cfg.Height),
		throttle: core.NewThrottle(cfg.Timestep),
	}, nil
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Dimensions returns the grid height and width.
func (l *Life) Dimensions() (height, width int) { return l.cur.H, l.cur.W }

// Timestep returns the number of Advance calls per generation.
func (l *Life) Timestep() int { return l.throttle.Every() }

// Counter returns the Advance calls accumulated toward the next generation.
func (l *Life) Counter() int { return l.throttle.Count() }

// Generation returns the number of generations computed so far.
func (l *Life) Generation() int { return l.gen }

// Paused reports whether Advance is currently a no-op.
func (l *Life) Paused() bool { return l.paused }

// TogglePause flips the pause flag.
func (l *Life) TogglePause() { l.paused = !l.paused }

func (l *Life) check(x, y int) error {
	if !l.cur.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: l.cur.W, Height: l.cur.H}
	}
	return nil
}

// Set marks the cell at column x, row y alive.
func (l *Life) Set(x, y int) error {
	if err := l.check(x, y); err != nil {
		return err
	}
	l.cur.Set(x, y, 1)
	return nil
}

// Unset marks the cell at column x, row y dead.
func (l *Life) Unset(x, y int) error {
	if err := l.check(x, y); err != nil {
		return err
	}
	l.cur.Set(x, y, 0)
	return nil
}

// Alive reports whether the cell at column x, row y is alive.
func (l *Life) Alive(x, y int) (bool, error) {
	if err := l.check(x, y); err != nil {
		return false, err
	}
	return l.cur.At(x, y) == 1, nil
}

// ClearAll kills every cell. The throttle, pause flag and generation count
// are left alone.
func (l *Life) ClearAll() { l.cur.Clear() }

// Reset clears the grid, restarts the throttle and generation count and
// applies the configured pattern. seed only affects the "random" pattern.
func (l *Life) Reset(seed int64) error {
	l.cur.Clear()
	l.throttle.Reset()
	l.gen = 0
	return Seed(l, l.cfg.Pattern, seed, l.cfg.Density)
}

// Advance is called once per host frame. It computes one generation every
// Timestep calls and reports whether it did. While paused it does nothing,
// so the throttle keeps its phase across a pause.
func (l *Life) Advance() bool {
	if l.paused {
		return false
	}
	if !l.throttle.Tick() {
		return false
	}
	l.Step()
	return true
}

// Step computes exactly one generation, ignoring the throttle and the pause
// flag. Every next state is read from the current buffer and written to the
// other one; the buffers are swapped once the whole grid is done.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		y0, y1 := max(y-1, 0), min(y+1, h-1)
		for x := 0; x < w; x++ {
			x0, x1 := max(x-1, 0), min(x+1, w-1)
			n := 0
			for ny := y0; ny <= y1; ny++ {
				row := cur[ny*w : ny*w+w]
				for nx := x0; nx <= x1; nx++ {
					n += int(row[nx])
				}
			}
			idx := l.cur.Index(x, y)
			nxt[idx] = nextState(n, int(cur[idx]))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// nextState applies the rule to window, the live count of the clipped 3x3
// block including the cell itself. A window of 3 covers a live cell with two
// neighbors and a dead cell with three; window-self of 3 covers a live cell
// with three neighbors.
func nextState(window, self int) uint8 {
	if window == 3 || window-self == 3 {
		return 1
	}
	return 0
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// Cells returns a row-major copy of the current cell states (0 or 1).
func (l *Life) Cells() []uint8 {
	return l.CopyCells(make([]uint8, len(l.cur.Cells())))
}

// CopyCells copies the row-major cell states into dst, growing it if needed,
// and returns the filled slice. Renderers use it to avoid a per-frame
// allocation.
func (l *Life) CopyCells(dst []uint8) []uint8 {
	src := l.cur.Cells()
	if cap(dst) < len(src) {
		dst = make([]uint8, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}

// Each calls fn for every cell in row-major order.
func (l *Life) Each(fn func(x, y int, alive bool)) {
	w := l.cur.W
	for i, c := range l.cur.Cells() {
		fn(i%w, i/w, c == 1)
	}
}

// Restore overwrites every cell from a row-major buffer of exactly
// height*width values, each 0 or 1. On error the grid is unchanged.
func (l *Life) Restore(cells []uint8) error {
	if want := l.cur.W * l.cur.H; len(cells) != want {
		return errors.Wrapf(ErrFormat, "got %d cells, want %d", len(cells), want)
	}
	for i, c := range cells {
		if c > 1 {
			return errors.Wrapf(ErrFormat, "cell %d has state %d", i, c)
		}
	}
	l.cur.CopyFrom(cells)
	return nil
}
