package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/hupe1980/dbfgo/internal/fs"
	"golang.org/x/sync/errgroup"
)

// CachingStore wraps a remote Store and serves every open from a local
// directory, downloading each table at most once. Later opens hit disk and
// get the mmap path of LocalStore.
//
// Concurrent first opens of the same name may download it more than once;
// each download stages into a unique temp file and renames into place, so a
// partial file is never observed.
type CachingStore struct {
	remote Store
	local  *LocalStore
	fsys   fs.FileSystem
	dir    string
	seq    atomic.Int64
}

// NewCachingStore creates a CachingStore caching remote tables under dir.
// If fsys is nil, fs.Default is used.
func NewCachingStore(remote Store, dir string, fsys fs.FileSystem) (*CachingStore, error) {
	if fsys == nil {
		fsys = fs.Default
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CachingStore{
		remote: remote,
		local:  NewLocalStore(dir),
		fsys:   fsys,
		dir:    dir,
	}, nil
}

// Open serves the named table from the cache directory, downloading it from
// the remote store first on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := s.ensure(ctx, name); err != nil {
		return nil, err
	}
	return s.local.Open(ctx, name)
}

// Prefetch warms the cache for several tables in parallel. The first
// download failure cancels the remaining ones and is returned.
func (s *CachingStore) Prefetch(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	// Limit concurrency to avoid FD exhaustion or rate limits
	g.SetLimit(16)

	for _, name := range names {
		g.Go(func() error {
			return s.ensure(ctx, name)
		})
	}
	return g.Wait()
}

func (s *CachingStore) ensure(ctx context.Context, name string) error {
	path := filepath.Join(s.dir, name)
	if _, err := s.fsys.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return s.download(ctx, name, path)
}

func (s *CachingStore) download(ctx context.Context, name, path string) (err error) {
	if err := s.fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := fmt.Sprintf("%s.download-%d", path, s.seq.Add(1))
	f, err := s.fsys.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = s.fsys.Remove(tmp)
		}
	}()

	if err = s.fetch(ctx, name, f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return s.fsys.Rename(tmp, path)
}

func (s *CachingStore) fetch(ctx context.Context, name string, f fs.File) error {
	if d, ok := s.remote.(Downloader); ok {
		_, err := d.Download(ctx, name, f)
		return err
	}

	rc, err := s.remote.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	_, err = io.Copy(f, rc)
	return err
}
