package fs

import "errors"

// Sentinel errors for file checks. They are always returned wrapped in a
// *pathio.PathError naming the file.
var (
	ErrUnsupportedType = errors.New("only regular files and directories are supported")
	ErrIsDirectory     = errors.New("is a directory")
	ErrSameFile        = errors.New("source and destination are the same file")
)
