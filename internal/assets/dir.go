package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirLoader reads {name}.css from a style directory. Every read goes through
// an os.Root, so neither the name nor a symlink can reach outside the directory.
type DirLoader struct {
	dir string
}

// OpenDir returns a DirLoader for dir. The directory must exist and be
// readable now; it is reopened on each load.
func OpenDir(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBasePath, abs, err)
	}
	defer root.Close()

	if _, err := fs.ReadDir(root.FS(), "."); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBasePath, abs, err)
	}
	return &DirLoader{dir: abs}, nil
}

// Dir returns the absolute style directory.
func (d *DirLoader) Dir() string {
	return d.dir
}

// LoadStyle reads the named stylesheet.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateStyleName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(d.dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleRead, err)
	}
	defer root.Close()

	file := name + ".css"
	data, err := root.ReadFile(file)
	if err == nil {
		return string(data), nil
	}
	return "", d.classify(root, name, file, err)
}

// classify maps a failed read to the package errors. os.Root does not export
// its escape error, so a symlink entry that cannot be read is treated as one.
func (d *DirLoader) classify(root *os.Root, name, file string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %q in %s", ErrStyleNotFound, name, d.dir)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrStyleRead, err)
	}
	if info, lerr := root.Lstat(file); lerr == nil && info.Mode()&fs.ModeSymlink != 0 {
		return fmt.Errorf("%w: %s links outside %s", ErrPathTraversal, file, d.dir)
	}
	return fmt.Errorf("%w: %v", ErrStyleRead, err)
}

var _ StyleLoader = (*DirLoader)(nil)
