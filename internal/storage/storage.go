// Package storage persists raw uploaded bytes, either on local disk or on
// a remote FTP server. The backend is picked once at startup.
package storage

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrBlobNotFound is returned when a stored blob cannot be located.
var ErrBlobNotFound = errors.New("blob not found")

// Location tells the HTTP layer how to deliver a stored blob: either a
// local file path to serve directly, or a public URL to redirect to.
type Location struct {
	Path string
	URL  string
}

// Backend stores uploaded byte streams under generated names.
type Backend interface {
	// Store writes the stream and returns the generated name.
	Store(r io.Reader, ext string) (string, error)
	// Locate resolves a stored name for retrieval.
	Locate(name string) (Location, error)
	// Remove deletes a stored blob.
	Remove(name string) error
}

// newName generates a stored name from the current time plus the original
// extension. Collisions at millisecond resolution are accepted.
func newName(ext string) string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + ext
}

// validName rejects names that could escape the storage namespace.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\")
}
