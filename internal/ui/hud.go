//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLeft       = 20
	hudTop        = 10
	hudLineHeight = 22
	hudPadding    = 6
)

// HUD draws the status text in the top-left corner of the screen.
type HUD struct {
	face  font.Face
	fg    color.Color
	panel color.RGBA
	pixel *ebiten.Image
}

// NewHUD constructs a HUD using the 7x13 bitmap font.
func NewHUD() *HUD {
	h := &HUD{
		face:  basicfont.Face7x13,
		fg:    color.White,
		panel: color.RGBA{R: 16, G: 16, B: 20, A: 180},
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the status lines onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	lines := Lines(s)
	width := 0
	for _, line := range lines {
		if w := text.BoundString(h.face, line).Dx(); w > width {
			width = w
		}
	}
	h.drawPanel(screen, width+2*hudPadding, len(lines)*hudLineHeight+hudPadding)

	ascent := h.face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, h.face, hudLeft, hudTop+i*hudLineHeight+ascent, h.fg)
	}
}

func (h *HUD) drawPanel(screen *ebiten.Image, w, ht int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(ht))
	op.GeoM.Translate(float64(hudLeft-hudPadding), float64(hudTop-hudPadding))
	op.ColorScale.ScaleWithColor(h.panel)
	screen.DrawImage(h.pixel, op)
}
