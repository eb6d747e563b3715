// Package blobstore provides the byte-source abstraction behind table opens.
//
// A table decode is one forward pass, so the Store contract is intentionally
// minimal: Open returns a plain io.ReadCloser. There is no random access.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: directory-rooted, memory-mapped local files
//   - MemoryStore: in-memory fixtures for tests
//   - s3.Store: Amazon S3 streaming reads, parallel bulk download
//   - minio.Store: MinIO and other S3-compatible endpoints
//   - CachingStore: wraps a remote store, downloads each table at most once
//     into a local directory and serves later opens from disk
//
// # Custom Implementations
//
// Implement the Store interface to read tables from custom backends:
//
//	type Store interface {
//	    Open(ctx context.Context, name string) (io.ReadCloser, error)
//	}
//
// Open must verify existence: a missing table surfaces at Open, as an error
// satisfying errors.Is(err, ErrNotFound), never at first read.
package blobstore
