package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a named table does not exist in the store.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store opens named tables for reading.
//
// Decoding a table is a single forward pass, so a blob is a plain
// io.ReadCloser. Open verifies existence: a missing name fails at Open with
// ErrNotFound, never at first read.
type Store interface {
	// Open opens the named table for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Downloader is an optional Store capability: fetch a whole table into w in
// one call. CachingStore prefers it over Open when warming its directory;
// s3.Store implements it with parallel ranged parts.
type Downloader interface {
	Download(ctx context.Context, name string, w io.WriterAt) (int64, error)
}
