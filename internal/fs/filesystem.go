package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/yarlson/fat/pathio"
)

// FileSystem handles file system operations. Every error it returns names
// the path that failed.
type FileSystem struct{}

// New creates a new FileSystem instance
func New() *FileSystem {
	return &FileSystem{}
}

// Info describes a file
type Info struct {
	Path    string        `json:"path"`
	Size    int64         `json:"size"`
	Mode    iofs.FileMode `json:"mode"`
	ModTime time.Time     `json:"mod_time"`
	IsDir   bool          `json:"is_dir"`
	Symlink string        `json:"symlink,omitempty"`
}

// Stat returns the Info of a file without following symlinks
func (fs *FileSystem) Stat(path string) (*Info, error) {
	fi, err := pathio.Lstat(path)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Path:    path,
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		target, err := pathio.Readlink(path)
		if err != nil {
			return nil, err
		}
		info.Symlink = target
	}

	return info, nil
}

// ValidateReadable checks that path exists and is a regular file or directory
func (fs *FileSystem) ValidateReadable(path string) error {
	info, err := pathio.Stat(path)
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() && !info.IsDir() {
		return pathio.New(path, ErrUnsupportedType)
	}

	if info.IsDir() {
		return nil
	}

	f, err := pathio.Open(path)
	if err != nil {
		return err
	}
	return pathio.Do(path, f.Close)
}

// ReadFile reads a regular file
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	info, err := pathio.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, pathio.New(path, ErrIsDirectory)
	}
	return pathio.ReadFile(path)
}

// Checksum returns the hex encoded SHA-256 of a file's contents
func (fs *FileSystem) Checksum(ctx context.Context, path string) (string, error) {
	info, err := pathio.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", pathio.New(path, ErrIsDirectory)
	}

	return pathio.CallContext(ctx, path, func(ctx context.Context) (string, error) {
		f, err := pathio.Open(path)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()

		h := sha256.New()
		if _, err := io.Copy(h, &fileReader{ctx: ctx, path: path, r: f}); err != nil {
			return "", err
		}
		return hex.EncodeToString(h.Sum(nil)), nil
	})
}

// CopyFile copies src to dst, creating dst's parent directory if needed.
// Errors name whichever of the two paths failed.
func (fs *FileSystem) CopyFile(src, dst string) error {
	srcInfo, err := pathio.Stat(src)
	if err != nil {
		return err
	}
	if srcInfo.IsDir() {
		return pathio.New(src, ErrIsDirectory)
	}

	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return pathio.New(dst, ErrSameFile)
	}

	if err := pathio.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := pathio.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := pathio.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, &fileReader{ctx: context.Background(), path: src, r: in}); err != nil {
		_ = out.Close()
		if _, ok := err.(*pathio.PathError); ok {
			return err
		}
		return pathio.New(dst, err)
	}

	if err := pathio.Do(dst, out.Close); err != nil {
		return err
	}

	return pathio.Do(dst, func() error {
		return os.Chmod(dst, srcInfo.Mode().Perm())
	})
}

// fileReader stops once ctx is done and names path in read errors
type fileReader struct {
	ctx  context.Context
	path string
	r    io.Reader
}

func (f *fileReader) Read(p []byte) (int, error) {
	if err := f.ctx.Err(); err != nil {
		return 0, pathio.New(f.path, err)
	}
	n, err := f.r.Read(p)
	if err != nil && err != io.EOF {
		return n, pathio.New(f.path, err)
	}
	return n, err
}
