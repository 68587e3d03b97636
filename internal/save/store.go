package save

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"mad-life/pkg/sims/life"
)

const (
	// DefaultDir is where the GUI writes saves, relative to the working directory.
	DefaultDir = "saves"
	// DefaultName is the file name used by the save and load keys.
	DefaultName = "save.txt"

	maxLine = 1 << 24
)

// ErrBadName is returned for file names that are empty or contain a path.
var ErrBadName = errors.New("save: file name must be a plain name")

// Store reads and writes named save files inside Dir.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir, or DefaultDir when dir is empty.
func NewStore(dir string) Store {
	if dir == "" {
		dir = DefaultDir
	}
	return Store{Dir: dir}
}

// Path returns the file path used for name.
func (s Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return errors.Wrapf(ErrBadName, "%q", name)
	}
	return nil
}

// Save encodes src into Dir/name, creating Dir if needed. The file is
// written to a temporary name first and renamed into place, so a failed
// save never leaves a truncated file behind.
func (s Store) Save(name string, src Source) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "[Save] failed to create directory: %s", s.Dir)
	}
	tmp, err := os.CreateTemp(s.Dir, name+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "[Save] failed to create temp file in: %s", s.Dir)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "[Save] failed to set mode: %s", tmp.Name())
	}
	if err := Encode(tmp, src); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "[Save] failed to encode: %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "[Save] failed to close: %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return errors.Wrapf(err, "[Save] failed to rename into: %s", s.Path(name))
	}
	return nil
}

// Load decodes Dir/name into dst. dst is unchanged on any error.
func (s Store) Load(name string, dst Target) error {
	if err := checkName(name); err != nil {
		return err
	}
	f, err := os.Open(s.Path(name))
	if err != nil {
		return errors.Wrapf(err, "[Load] failed to open file: %s", s.Path(name))
	}
	defer f.Close()

	if err := Decode(f, dst); err != nil {
		return errors.Wrapf(err, "[Load] failed to decode: %s", s.Path(name))
	}
	return nil
}

// ReadFile builds a new grid from the save file at path. The dimensions come
// from the file header; the remaining grid settings come from cfg.
func ReadFile(path string, cfg life.Config) (*life.Life, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to read file: %s", path)
	}
	h, w, err := ReadDimensions(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] bad header: %s", path)
	}
	// Every row takes w+1 bytes, except that the last newline may be missing.
	if w >= len(data) || h > (len(data)+1)/(w+1) {
		return nil, errors.Wrapf(ErrFormat, "[ReadFile] %dx%d header does not fit %d bytes: %s", h, w, len(data), path)
	}
	cfg.Height, cfg.Width = h, w
	g, err := life.NewWithConfig(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to create grid: %s", path)
	}
	if err := Decode(bytes.NewReader(data), g); err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to decode: %s", path)
	}
	return g, nil
}
