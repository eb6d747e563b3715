package dbfgo

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/hupe1980/dbfgo/blobstore"
	"github.com/hupe1980/dbfgo/internal/resource"
	"golang.org/x/sync/errgroup"
)

// ReadFile reads all records of the table at path.
func ReadFile(path string, optFns ...Option) ([]Record, error) {
	r, err := Open(path, optFns...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.ReadAll()
}

// Read reads all records of the table from r.
func Read(r io.Reader, optFns ...Option) ([]Record, error) {
	tr, err := NewReader(r, optFns...)
	if err != nil {
		return nil, err
	}
	defer tr.Close()

	return tr.ReadAll()
}

// BatchOption configures ReadTables.
type BatchOption func(*batchOptions)

type batchOptions struct {
	maxConcurrency int
	bytesPerSec    int64
	readerOptions  []Option
}

// WithMaxConcurrency caps how many tables are scanned at once.
// Defaults to GOMAXPROCS.
func WithMaxConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		o.maxConcurrency = n
	}
}

// WithBytesPerSec rate-limits the combined read throughput of the batch.
// Zero means unlimited.
func WithBytesPerSec(n int64) BatchOption {
	return func(o *batchOptions) {
		o.bytesPerSec = n
	}
}

// WithReaderOptions applies reader options to every table in the batch.
func WithReaderOptions(optFns ...Option) BatchOption {
	return func(o *batchOptions) {
		o.readerOptions = append(o.readerOptions, optFns...)
	}
}

// ReadTables reads all records of the named tables from store. Scans run
// concurrently under a shared concurrency and IO budget; the first failure
// cancels the remaining scans.
func ReadTables(ctx context.Context, store blobstore.Store, names []string, optFns ...BatchOption) (map[string][]Record, error) {
	o := batchOptions{
		maxConcurrency: runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	ctrl := resource.NewController(resource.Config{
		MaxConcurrentScans: int64(o.maxConcurrency),
		IOLimitBytesPerSec: o.bytesPerSec,
	})

	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string][]Record, len(names))

	for _, name := range names {
		g.Go(func() error {
			if err := ctrl.AcquireScan(ctx); err != nil {
				return err
			}
			defer ctrl.ReleaseScan()

			records, err := readTable(ctx, store, name, ctrl, o.readerOptions)
			if err != nil {
				return err
			}

			mu.Lock()
			results[name] = records
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readTable(ctx context.Context, store blobstore.Store, name string, ctrl *resource.Controller, optFns []Option) ([]Record, error) {
	src, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("dbf: open %s: %w", name, err)
	}
	defer src.Close()

	r, err := NewReader(ctrl.ThrottleReader(ctx, src), optFns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer r.Close()

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return records, nil
}
