package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestPaletteFill(t *testing.T) {
	pal := newPalette(color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))

	pal.fill(buf, cells)

	want := []byte{
		255, 255, 255, 255,
		10, 20, 30, 255,
		255, 255, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("fill = %v, want %v", buf, want)
	}
}

func TestRGBA8(t *testing.T) {
	if got := rgba8(color.Gray{Y: 50}); got != [4]byte{50, 50, 50, 255} {
		t.Fatalf("rgba8(Gray 50) = %v", got)
	}
	if got := rgba8(color.Black); got != [4]byte{0, 0, 0, 255} {
		t.Fatalf("rgba8(Black) = %v", got)
	}
}

func TestCheckSize(t *testing.T) {
	g := fakeGrid{h: 2, w: 3, cells: make([]uint8, 6)}
	if err := checkSize(g, 3, 2); err != nil {
		t.Fatalf("checkSize matching = %v", err)
	}
	if err := checkSize(g, 2, 3); err == nil {
		t.Fatal("checkSize should reject a transposed grid")
	}
}
