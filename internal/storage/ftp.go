package storage

import (
	"io"
	"path"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
)

// FTPConfig holds remote storage configuration
type FTPConfig struct {
	Addr      string // host:port
	User      string
	Password  string
	BasePath  string // remote directory for uploads
	PublicURL string // base URL the client is redirected to for retrieval
}

// FTP stores blobs on a remote FTP server. Retrieval is by redirecting the
// client to the server's public URL, never by proxying bytes.
type FTP struct {
	cfg FTPConfig
}

// NewFTP creates a remote FTP backend
func NewFTP(cfg FTPConfig) *FTP {
	if cfg.BasePath == "" {
		cfg.BasePath = "/"
	}
	return &FTP{cfg: cfg}
}

// Store uploads the stream under the configured base path
func (f *FTP) Store(r io.Reader, ext string) (string, error) {
	conn, err := f.connect()
	if err != nil {
		return "", err
	}
	defer conn.Quit()

	name := newName(ext)
	if err := conn.Stor(path.Join(f.cfg.BasePath, name), r); err != nil {
		return "", err
	}

	return name, nil
}

// Locate returns the public URL for a stored blob. No remote round trip is
// made; a missing blob surfaces as a 404 from the remote server instead.
func (f *FTP) Locate(name string) (Location, error) {
	if !validName(name) {
		return Location{}, ErrBlobNotFound
	}
	return Location{URL: strings.TrimSuffix(f.cfg.PublicURL, "/") + "/" + name}, nil
}

// Remove deletes a stored blob from the remote server
func (f *FTP) Remove(name string) error {
	if !validName(name) {
		return ErrBlobNotFound
	}

	conn, err := f.connect()
	if err != nil {
		return err
	}
	defer conn.Quit()

	return conn.Delete(path.Join(f.cfg.BasePath, name))
}

func (f *FTP) connect() (*ftp.ServerConn, error) {
	conn, err := ftp.Dial(f.cfg.Addr, ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return nil, err
	}

	if err := conn.Login(f.cfg.User, f.cfg.Password); err != nil {
		conn.Quit()
		return nil, err
	}

	return conn, nil
}
