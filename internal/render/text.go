package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	// Block and Blank are the default glyphs for live and dead cells.
	// Each is two columns wide so cells look square in most terminals.
	Block = "██"
	Blank = "  "
)

// Text writes src to w as one line per row, using alive and dead for each
// cell. Empty glyphs fall back to Block and Blank.
func Text(w io.Writer, src Source, alive, dead string) error {
	if alive == "" {
		alive = Block
	}
	if dead == "" {
		dead = Blank
	}
	h, wd := src.Dimensions()
	cells := src.CopyCells(nil)

	bw := bufio.NewWriter(w)
	for y := range h {
		for _, c := range cells[y*wd : (y+1)*wd] {
			if c != 0 {
				bw.WriteString(alive)
			} else {
				bw.WriteString(dead)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Text] failed to write grid")
	}
	return nil
}
