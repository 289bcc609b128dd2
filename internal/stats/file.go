// internal/stats/file.go
//
// FileStore keeps the record as seven whitespace-separated integers:
//   "w1 w2 w3 w4 w5 w6 losses"
// A missing file is an empty record; the file is created on first save.
// Saves write a sibling temp file and rename it into place.

package stats

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

func (f *FileStore) Load() (Counts, error) {
	var c Counts
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read %s: %w", f.Path, err)
	}
	fields := strings.Fields(string(b))
	if len(fields) != len(c) {
		return c, fmt.Errorf("%w: %s has %d fields, want %d", ErrCorrupt, f.Path, len(fields), len(c))
	}
	for i, s := range fields {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Counts{}, fmt.Errorf("%w: %s field %d = %q", ErrCorrupt, f.Path, i+1, s)
		}
		c[i] = n
	}
	return c, nil
}

func (f *FileStore) Save(c Counts) error {
	dir := filepath.Dir(f.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n)
	}

	tmp, err := os.CreateTemp(dir, ".stats-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	if _, err := tmp.WriteString(strings.Join(parts, " ")); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", f.Path, err)
	}
	return nil
}
