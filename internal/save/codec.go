// Package save reads and writes grids in the plain-text save format: the
// height and width on their own lines, followed by one line per row with a
// '0' or '1' per cell.
package save

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"mad-life/pkg/sims/life"
)

// ErrFormat is matched by every decoding error caused by the input rather
// than by I/O. It is the same value as life.ErrFormat.
var ErrFormat = life.ErrFormat

// Source is the read-only view of a grid needed to encode it.
type Source interface {
	Dimensions() (height, width int)
	Cells() []uint8
}

// Target is a grid whose full state can be replaced in one call.
type Target interface {
	Dimensions() (height, width int)
	Restore(cells []uint8) error
}

// Encode writes src to w.
func Encode(w io.Writer, src Source) error {
	h, wd := src.Dimensions()
	cells := src.Cells()
	if len(cells) != h*wd {
		return errors.Wrapf(ErrFormat, "[Encode] %d cells for a %dx%d grid", len(cells), h, wd)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(h))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(wd))
	bw.WriteByte('\n')
	row := make([]byte, wd+1)
	row[wd] = '\n'
	for y := 0; y < h; y++ {
		for x, c := range cells[y*wd : (y+1)*wd] {
			row[x] = '0' + c
		}
		bw.Write(row)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Encode] failed to write grid")
	}
	return nil
}

// lineReader yields input lines with any trailing '\r' removed and tracks
// the current line number for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &lineReader{sc: sc}
}

func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++
	return strings.TrimRight(lr.sc.Text(), "\r"), true
}

func (lr *lineReader) err() error {
	if err := lr.sc.Err(); err != nil {
		return errors.Wrap(err, "[Decode] failed to read grid")
	}
	return nil
}

// ReadDimensions reads only the header of a saved grid.
func ReadDimensions(r io.Reader) (height, width int, err error) {
	return readHeader(newLineReader(r))
}

func readHeader(lr *lineReader) (height, width int, err error) {
	if height, err = readDimension(lr, "height"); err != nil {
		return 0, 0, err
	}
	if width, err = readDimension(lr, "width"); err != nil {
		return 0, 0, err
	}
	return height, width, nil
}

// Decode reads a grid from r and restores it into dst. The stored
// dimensions must match dst exactly. Nothing is written to dst unless the
// whole input is valid.
func Decode(r io.Reader, dst Target) error {
	lr := newLineReader(r)
	h, wd, err := readHeader(lr)
	if err != nil {
		return err
	}
	wantH, wantW := dst.Dimensions()
	if h != wantH || wd != wantW {
		return errors.Wrapf(ErrFormat, "[Decode] saved grid is %dx%d, live grid is %dx%d", h, wd, wantH, wantW)
	}

	cells := make([]uint8, 0, h*wd)
	for y := 0; y < h; y++ {
		text, ok := lr.next()
		if !ok {
			if err := lr.err(); err != nil {
				return err
			}
			return errors.Wrapf(ErrFormat, "[Decode] expected %d rows, got %d", h, y)
		}
		if len(text) != wd {
			return errors.Wrapf(ErrFormat, "[Decode] line %d has %d cells, want %d", lr.line, len(text), wd)
		}
		for x := 0; x < wd; x++ {
			switch text[x] {
			case '0':
				cells = append(cells, 0)
			case '1':
				cells = append(cells, 1)
			default:
				return errors.Wrapf(ErrFormat, "[Decode] line %d column %d: unexpected %q", lr.line, x+1, text[x])
			}
		}
	}
	for {
		text, ok := lr.next()
		if !ok {
			break
		}
		if strings.TrimSpace(text) != "" {
			return errors.Wrapf(ErrFormat, "[Decode] unexpected data after last row on line %d", lr.line)
		}
	}
	if err := lr.err(); err != nil {
		return err
	}

	return dst.Restore(cells)
}

func readDimension(lr *lineReader, name string) (int, error) {
	text, ok := lr.next()
	if !ok {
		if err := lr.err(); err != nil {
			return 0, err
		}
		return 0, errors.Wrapf(ErrFormat, "[Decode] missing %s", name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "[Decode] %s %q is not a number", name, text)
	}
	if v < 1 {
		return 0, errors.Wrapf(ErrFormat, "[Decode] %s %d must be positive", name, v)
	}
	return v, nil
}
