package source

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrymomot/deadline/pkg/cache"
)

// Kinds accepted by New.
const (
	KindDropbox = "dropbox"
	KindS3      = "s3"
	KindFile    = "file"
)

// DefaultMaxSize bounds the number of bytes read from a store.
const DefaultMaxSize int64 = 64 << 20

// Source fetches the raw bytes of a file.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Func adapts a function to Source.
type Func func(ctx context.Context, path string) ([]byte, error)

// Fetch implements Source.
func (f Func) Fetch(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

// Config selects and configures a source.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Kind     string        `env:"SOURCE" envDefault:"dropbox"`
	CacheTTL time.Duration `env:"SOURCE_CACHE_TTL" envDefault:"5m"`
	Dropbox  DropboxConfig
	S3       S3Config
	File     FileConfig
}

// New creates the source selected by cfg.Kind.
// A positive CacheTTL wraps it with Cached.
func New(cfg Config) (Source, error) {
	var (
		src Source
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case KindDropbox:
		src, err = NewDropbox(cfg.Dropbox)
	case KindS3:
		src, err = NewS3(cfg.S3)
	case KindFile:
		src, err = NewFile(cfg.File)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheTTL > 0 {
		return NewCached(src, cache.NewMemory[[]byte](cache.WithDefaultTTL(cfg.CacheTTL))), nil
	}
	return src, nil
}

// readLimited reads r up to limit bytes.
// Returns ErrTooLarge if r holds more.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
