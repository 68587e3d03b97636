//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws grid lines on top of the cell image.
type Overlay struct {
	width, height float64
	cols, rows    []float64

	lineColor color.RGBA
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay for a w x h grid drawn at scale pixels
// per cell.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{
		width:     float64(w * scale),
		height:    float64(h * scale),
		cols:      gridLineOffsets(w, scale),
		rows:      gridLineOffsets(h, scale),
		lineColor: color.RGBA{R: 50, G: 50, B: 50, A: 255},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders one-pixel lines along every column and row boundary.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for _, x := range o.cols {
		o.drawRect(screen, x, 0, 1, o.height)
	}
	for _, y := range o.rows {
		o.drawRect(screen, 0, y, o.width, 1)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.lineColor)
	screen.DrawImage(o.pixel, op)
}
