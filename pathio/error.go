package pathio

import (
	"errors"
	"io/fs"
)

// PathError pairs an error with the path of the resource the failing
// operation worked on. It is immutable once built.
type PathError struct {
	path string
	err  error
}

// New returns a PathError for err at path. An empty path is recorded as ".".
// If err already carries the same path at its top level, err is returned
// as is instead of being wrapped a second time.
func New(path string, err error) *PathError {
	if path == "" {
		path = "."
	}
	if pe, ok := err.(*PathError); ok && pe != nil && pe.path == path {
		return pe
	}
	return &PathError{path: path, err: err}
}

func (e *PathError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return e.path + ": <nil>"
	}
	// The standard library already names the path; print its cause only.
	if fe, ok := e.err.(*fs.PathError); ok && fe.Path == e.path && fe.Err != nil {
		return e.path + ": " + fe.Err.Error()
	}
	return e.path + ": " + e.err.Error()
}

// Unwrap returns the error passed to New.
func (e *PathError) Unwrap() error {
	return e.err
}

// Path returns the path the error refers to.
func (e *PathError) Path() string {
	return e.path
}

// Paths returns every path recorded on err's chain, outermost first.
func Paths(err error) []string {
	var paths []string
	for err != nil {
		if pe, ok := err.(*PathError); ok {
			paths = append(paths, pe.path)
		}
		err = errors.Unwrap(err)
	}
	return paths
}
