package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/dbfgo/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore counts remote opens.
type countingStore struct {
	*MemoryStore
	opens atomic.Int32
}

func (c *countingStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	c.opens.Add(1)
	return c.MemoryStore.Open(ctx, name)
}

// downloadStore serves bulk fetches through the Downloader capability.
type downloadStore struct {
	*MemoryStore
	opens     atomic.Int32
	downloads atomic.Int32
}

func (d *downloadStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	d.opens.Add(1)
	return d.MemoryStore.Open(ctx, name)
}

func (d *downloadStore) Download(ctx context.Context, name string, w io.WriterAt) (int64, error) {
	d.downloads.Add(1)

	rc, err := d.MemoryStore.Open(ctx, name)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return 0, err
	}

	n, err := w.WriteAt(data, 0)
	return int64(n), err
}

func TestCachingStore_DownloadsOnce(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	remote := &countingStore{MemoryStore: NewMemoryStore()}
	data := []byte("table bytes")
	require.NoError(t, remote.Put(ctx, "customers.dbf", data))

	store, err := NewCachingStore(remote, dir, nil)
	require.NoError(t, err)

	// 1. First open downloads
	rc, err := store.Open(ctx, "customers.dbf")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.NoError(t, rc.Close())
	assert.Equal(t, int32(1), remote.opens.Load())

	// The cached copy landed under its final name, no temp files left
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "customers.dbf", entries[0].Name())

	// 2. Later opens are served from disk
	rc, err = store.Open(ctx, "customers.dbf")
	require.NoError(t, err)
	got, err = io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.NoError(t, rc.Close())
	assert.Equal(t, int32(1), remote.opens.Load())
}

func TestCachingStore_SubdirNames(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	remote := &countingStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, remote.Put(ctx, "archive/2019.dbf", []byte("old")))

	store, err := NewCachingStore(remote, dir, nil)
	require.NoError(t, err)

	rc, err := store.Open(ctx, "archive/2019.dbf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	_, err = os.Stat(filepath.Join(dir, "archive", "2019.dbf"))
	require.NoError(t, err)
}

func TestCachingStore_Missing(t *testing.T) {
	ctx := context.Background()

	store, err := NewCachingStore(&countingStore{MemoryStore: NewMemoryStore()}, t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.Open(ctx, "absent.dbf")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCachingStore_Prefetch(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	remote := &countingStore{MemoryStore: NewMemoryStore()}
	names := []string{"a.dbf", "b.dbf", "archive/2019.dbf"}
	for _, name := range names {
		require.NoError(t, remote.Put(ctx, name, []byte("data for "+name)))
	}

	store, err := NewCachingStore(remote, dir, nil)
	require.NoError(t, err)

	require.NoError(t, store.Prefetch(ctx, names))
	assert.Equal(t, int32(3), remote.opens.Load())

	// All later opens are local.
	for _, name := range names {
		rc, err := store.Open(ctx, name)
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "data for "+name, string(got))
		require.NoError(t, rc.Close())
	}
	assert.Equal(t, int32(3), remote.opens.Load())

	// Prefetching a missing table fails.
	require.ErrorIs(t, store.Prefetch(ctx, []string{"missing.dbf"}), ErrNotFound)
}

func TestCachingStore_PrefersDownloader(t *testing.T) {
	ctx := context.Background()

	remote := &downloadStore{MemoryStore: NewMemoryStore()}
	data := []byte("bulk fetched bytes")
	require.NoError(t, remote.Put(ctx, "customers.dbf", data))

	store, err := NewCachingStore(remote, t.TempDir(), nil)
	require.NoError(t, err)

	rc, err := store.Open(ctx, "customers.dbf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, data, got)

	assert.Equal(t, int32(1), remote.downloads.Load())
	assert.Equal(t, int32(0), remote.opens.Load())
}

func TestCachingStore_FailedDownloadLeavesNoFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	remote := &countingStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, remote.Put(ctx, "customers.dbf", []byte("table bytes that exceed the budget")))

	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule(".download-", fs.Fault{FailAfterBytes: 4})

	store, err := NewCachingStore(remote, dir, ffs)
	require.NoError(t, err)

	_, err = store.Open(ctx, "customers.dbf")
	require.ErrorIs(t, err, fs.ErrInjected)

	// Neither the staged temp file nor the final name survive the failure.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// A clean store over the same directory recovers.
	store2, err := NewCachingStore(remote, dir, nil)
	require.NoError(t, err)

	rc, err := store2.Open(ctx, "customers.dbf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "table bytes that exceed the budget", string(got))
}
