package fs

import (
	"io"
	"os"
	"path/filepath"
)

// WriteFunc writes content to w.
type WriteFunc func(w io.Writer) error

// WriteFile writes the output of fn to path atomically. Content is written
// to a temporary file in the same directory and renamed into place; on
// failure the temporary file is removed and any existing file is kept.
func WriteFile(path string, fn WriteFunc) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = fn(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
