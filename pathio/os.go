package pathio

import (
	"io/fs"
	"os"
)

// Open opens the named file for reading.
func Open(name string) (*os.File, error) {
	return Apply(name, os.Open)
}

// Create creates or truncates the named file.
func Create(name string) (*os.File, error) {
	return Apply(name, os.Create)
}

// ReadFile reads the named file.
func ReadFile(name string) ([]byte, error) {
	return Apply(name, os.ReadFile)
}

// WriteFile writes data to the named file, creating it if necessary.
func WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := os.WriteFile(name, data, perm); err != nil {
		return New(name, err)
	}
	return nil
}

// Stat returns the FileInfo of the named file.
func Stat(name string) (fs.FileInfo, error) {
	return Apply(name, os.Stat)
}

// Lstat is like Stat but does not follow symlinks.
func Lstat(name string) (fs.FileInfo, error) {
	return Apply(name, os.Lstat)
}

// Readlink returns the destination of the named symlink.
func Readlink(name string) (string, error) {
	return Apply(name, os.Readlink)
}

// ReadDir reads the named directory.
func ReadDir(name string) ([]fs.DirEntry, error) {
	return Apply(name, os.ReadDir)
}

// MkdirAll creates a directory along with any missing parents.
func MkdirAll(name string, perm fs.FileMode) error {
	if err := os.MkdirAll(name, perm); err != nil {
		return New(name, err)
	}
	return nil
}

// Remove removes the named file or empty directory.
func Remove(name string) error {
	if err := os.Remove(name); err != nil {
		return New(name, err)
	}
	return nil
}
