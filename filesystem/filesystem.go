// Package filesystem provides a virtualized abstraction layer for every file the application reads or writes.
//
// It utilizes the afero library to allow seamless switching between OS-level and in-memory filesystem backends.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// EnsureParent creates the directory that will hold path, if path has one.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return API().MkdirAll(dir, os.ModePerm)
}

// FileMode is the permission set given to files written by WriteAtomic.
const FileMode os.FileMode = 0o644

// WriteAtomic writes data to a temporary sibling of path and renames it into place,
// so readers never observe a partially written file at path. The result carries FileMode.
func WriteAtomic(path string, data []byte) (err error) {
	fs := API()

	tmp, err := fs.TempFile(filepath.Dir(path), "."+filepath.Base(path)+"-*.part")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = fs.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	// TempFile creates owner-only files
	if err = fs.Chmod(tmp.Name(), FileMode); err != nil {
		return err
	}

	return fs.Rename(tmp.Name(), path)
}
