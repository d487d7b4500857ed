package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrOpen reports that the target file could not be opened or created.
	ErrOpen = errors.New("cannot open file")
	// ErrWrite reports that the target file was created, but writing its
	// content did not complete.
	ErrWrite = errors.New("cannot write file")
)

// Dir is a capability to read and create files inside a single directory.
// Handlers receive one instead of raw filesystem access.
type Dir struct {
	path string
}

func NewDir(path string) Dir {
	return Dir{path: path}
}

// Read returns the contents of the named file. All failure modes (missing
// file, permissions, the name pointing at a directory) look the same to the
// caller.
func (d Dir) Read(name string) ([]byte, error) {
	return os.ReadFile(d.join(name))
}

// Create writes data into the named file, truncating it if it already
// exists. The data is written in full or not at all from the caller's point
// of view: any short write surfaces as ErrWrite. Open and write failures
// stay distinguishable via ErrOpen and ErrWrite.
func (d Dir) Create(name string, data []byte) error {
	file, err := os.OpenFile(d.join(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOpen, err)
	}

	if _, err = file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: %s", ErrWrite, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrWrite, err)
	}

	return nil
}

func (d Dir) join(name string) string {
	return filepath.Join(d.path, name)
}
