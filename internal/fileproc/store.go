package fileproc

import (
	"io"
	"os"
)

// Store gives the processor access to files on disk.
type Store interface {
	// IsRegular reports whether path names an existing regular file,
	// following symlinks. Any stat failure is reported as false.
	IsRegular(path string) bool
	// Open opens path for reading, and for writing too when writable is set.
	Open(path string, writable bool) (Document, error)
}

// Document is an open file whose content can be replaced in place.
type Document interface {
	io.Reader
	// Replace truncates the document and writes text as its whole content.
	Replace(text string) error
	Close() error
}

// OSStore implements Store using the local file system.
// *Impl methods wrap OS calls and are excluded from coverage requirements.
type OSStore struct{}

// IsRegular reports whether path is an existing regular file.
func (s OSStore) IsRegular(path string) bool {
	return s.IsRegularImpl(path)
}

// IsRegularImpl stats path with os.Stat.
func (OSStore) IsRegularImpl(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Open opens path read-only, or read-write when writable is set.
func (s OSStore) Open(path string, writable bool) (Document, error) {
	return s.OpenImpl(path, writable)
}

// OpenImpl opens the file with os.OpenFile without O_CREATE.
func (OSStore) OpenImpl(path string, writable bool) (Document, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}
	return &osDocument{File: f}, nil
}

// osDocument rewrites through the handle it was read from, so the path,
// inode and permissions of the file stay the same.
type osDocument struct {
	*os.File
}

func (d *osDocument) Replace(text string) error {
	if _, err := d.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := d.Truncate(0); err != nil {
		return err
	}
	_, err := io.WriteString(d.File, text)
	return err
}
