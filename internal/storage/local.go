package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local stores blobs in a directory on the local filesystem.
type Local struct {
	dir string
}

// NewLocal creates a local backend rooted at dir, creating it if needed
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Store writes the stream via a temp file and renames it into place, so a
// half-written stream never lands under its final name.
func (l *Local) Store(r io.Reader, ext string) (string, error) {
	tmp, err := os.CreateTemp(l.dir, "pending-")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	name := newName(ext)
	if err := os.Rename(tmp.Name(), filepath.Join(l.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return name, nil
}

// Locate returns the local path of a stored blob
func (l *Local) Locate(name string) (Location, error) {
	if !validName(name) {
		return Location{}, ErrBlobNotFound
	}

	path := filepath.Join(l.dir, name)
	if _, err := os.Stat(path); err != nil {
		return Location{}, ErrBlobNotFound
	}

	return Location{Path: path}, nil
}

// Remove deletes a stored blob
func (l *Local) Remove(name string) error {
	if !validName(name) {
		return ErrBlobNotFound
	}

	err := os.Remove(filepath.Join(l.dir, name))
	if os.IsNotExist(err) {
		return ErrBlobNotFound
	}
	return err
}
