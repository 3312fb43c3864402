package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileConfig holds local filesystem source configuration.
type FileConfig struct {
	Root    string `env:"SOURCE_FILE_ROOT" envDefault:"."`
	MaxSize int64  `env:"SOURCE_MAX_SIZE" envDefault:"67108864"`
}

// File reads workbooks from a local directory.
// Paths are resolved under Root; ".." cannot escape it.
type File struct {
	root    string
	maxSize int64
}

// NewFile creates a local file source.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("%w: file root is required", ErrInvalidConfig)
	}
	return &File{root: cfg.Root, maxSize: cfg.MaxSize}, nil
}

// Fetch reads the file at path.
func (s *File) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	full := filepath.Join(s.root, filepath.Clean(string(filepath.Separator)+filepath.FromSlash(path)))
	f, err := os.Open(full)
	if err != nil {
		return nil, wrapFileError(err)
	}
	defer f.Close()

	return readLimited(f, s.maxSize)
}

func wrapFileError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	default:
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
}
