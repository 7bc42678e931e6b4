package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"

	"github.com/dgallion1/docxtract/internal/failure"
)

var (
	ErrPartNotFound = errors.New("part not found in package")
	errIsDirectory  = errors.New("is a directory")
)

// Package is an opened zip container with its parts indexed by name.
type Package struct {
	name  string
	file  *os.File // nil when reading from memory
	ra    io.ReaderAt
	size  int64
	parts map[string]*zip.File
}

// Open opens the file at path as a package. OS-level failures are IO
// errors; anything zip rejects is an Archive error.
func Open(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.IO("open", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, failure.IO("stat", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, failure.IO("open", path, errIsDirectory)
	}

	pkg, err := NewReader(f, info.Size(), path)
	if err != nil {
		f.Close()
		return nil, err
	}
	pkg.file = f
	return pkg, nil
}

// NewReader reads a package from r. name is only used in error messages.
func NewReader(r io.ReaderAt, size int64, name string) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && zr != nil) {
		return nil, failure.Archive("read zip", name, err)
	}

	pkg := &Package{
		name:  name,
		ra:    r,
		size:  size,
		parts: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		pkg.parts[f.Name] = f
	}
	return pkg, nil
}

// Has reports whether the package contains the named part.
func (p *Package) Has(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// Part opens the named part for reading. The caller must close it.
func (p *Package) Part(name string) (io.ReadCloser, error) {
	zf, ok := p.parts[name]
	if !ok {
		return nil, failure.Archive("locate part", name, ErrPartNotFound)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, failure.Archive("open part", name, err)
	}
	return rc, nil
}

// PartSize returns the uncompressed size of the named part, or -1.
func (p *Package) PartSize(name string) int64 {
	zf, ok := p.parts[name]
	if !ok {
		return -1
	}
	return int64(zf.UncompressedSize64)
}

// ReaderAt exposes the underlying container bytes for libraries that
// decode the package themselves.
func (p *Package) ReaderAt() (io.ReaderAt, int64) {
	return p.ra, p.size
}

func (p *Package) Name() string {
	return p.name
}

// Close releases the file handle, if any.
func (p *Package) Close() error {
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	return err
}
