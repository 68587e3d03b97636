//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws a grid as one pixel per cell, scaled up onto the screen.
type GridPainter struct {
	w, h  int
	scale float64
	pal   palette

	img   *ebiten.Image
	cells []uint8
	buf   []byte
}

// NewGridPainter allocates a painter for a w x h grid drawn at scale pixels
// per cell.
func NewGridPainter(w, h, scale int, alive, dead color.Color) *GridPainter {
	return &GridPainter{
		w:     w,
		h:     h,
		scale: float64(scale),
		pal:   newPalette(alive, dead),
		img:   ebiten.NewImage(w, h),
		cells: make([]uint8, w*h),
		buf:   make([]byte, 4*w*h),
	}
}

// Blit copies the current cells of src and draws them onto dst. A grid whose
// size differs from the painter's is reported and nothing is drawn.
func (gp *GridPainter) Blit(dst *ebiten.Image, src Source) error {
	if err := checkSize(src, gp.w, gp.h); err != nil {
		return err
	}
	gp.cells = src.CopyCells(gp.cells)
	gp.pal.fill(gp.buf, gp.cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(gp.scale, gp.scale)
	dst.DrawImage(gp.img, op)
	return nil
}
