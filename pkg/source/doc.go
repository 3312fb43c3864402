// Package source fetches raw workbook bytes from a file store.
//
// Every implementation satisfies Source:
//
//	type Source interface {
//	    Fetch(ctx context.Context, path string) ([]byte, error)
//	}
//
// Available stores:
//   - Dropbox: refresh-token OAuth2 and the content API download endpoint
//   - S3: any S3-compatible object store (AWS, MinIO, R2)
//   - File: a local directory, for development and tests
//
// Cached wraps any Source with a TTL read-through cache, so variants that
// run together download the workbook once.
//
// Errors are normalized to the sentinels in this package regardless of the
// store: ErrNotFound, ErrAccessDenied and ErrFetchFailed. Use errors.Is:
//
//	raw, err := src.Fetch(ctx, "/schedule.xlsx")
//	if errors.Is(err, source.ErrNotFound) {
//	    // ...
//	}
//
// New builds a Source from Config, which is parsed from the environment
// with caarlos0/env.
package source
