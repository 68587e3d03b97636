package render

import (
	"image/color"

	"github.com/pkg/errors"
)

// Source is the grid state a renderer reads. It matches life.Life.
type Source interface {
	Dimensions() (height, width int)
	CopyCells(dst []uint8) []uint8
}

// palette holds the RGBA bytes for live and dead cells, resolved once so the
// per-frame fill is a plain copy.
type palette struct {
	alive, dead [4]byte
}

func newPalette(alive, dead color.Color) palette {
	return palette{alive: rgba8(alive), dead: rgba8(dead)}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fill writes one pixel per cell into buf, which holds 4*len(cells) bytes.
func (p palette) fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := &p.dead
		if c != 0 {
			px = &p.alive
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func checkSize(src Source, w, h int) error {
	if sh, sw := src.Dimensions(); sh != h || sw != w {
		return errors.Errorf("[Blit] grid is %dx%d, painter expects %dx%d", sh, sw, h, w)
	}
	return nil
}
