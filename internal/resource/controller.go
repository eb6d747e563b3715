package resource

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentScans is the maximum number of tables scanned at once.
	// If 0, defaults to 1.
	MaxConcurrentScans int64

	// IOLimitBytesPerSec is the maximum read throughput across all scans.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages global resources (concurrency, IO) for batch scans.
type Controller struct {
	cfg Config

	scanSem   *semaphore.Weighted
	ioLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentScans <= 0 {
		cfg.MaxConcurrentScans = 1
	}

	c := &Controller{
		cfg:     cfg,
		scanSem: semaphore.NewWeighted(cfg.MaxConcurrentScans),
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// AcquireScan reserves a scan slot. Blocks if all slots are busy.
func (c *Controller) AcquireScan(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.scanSem.Acquire(ctx, 1)
}

// ReleaseScan releases a scan slot.
func (c *Controller) ReleaseScan() {
	if c == nil {
		return
	}
	c.scanSem.Release(1)
}

// TryAcquireScan attempts to reserve a scan slot without blocking.
func (c *Controller) TryAcquireScan() bool {
	if c == nil {
		return true
	}
	return c.scanSem.TryAcquire(1)
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	return c.ioLimiter.WaitN(ctx, bytes)
}

// TryAcquireIO attempts to acquire IO tokens without blocking.
// Returns true if tokens were acquired, false otherwise.
func (c *Controller) TryAcquireIO(bytes int) bool {
	if c == nil || c.ioLimiter == nil {
		return true
	}
	return c.ioLimiter.AllowN(time.Now(), bytes)
}

// ThrottleReader wraps r so reads are paced by the IO limit. With no limit
// configured it returns r unchanged.
func (c *Controller) ThrottleReader(ctx context.Context, r io.Reader) io.Reader {
	if c == nil || c.ioLimiter == nil {
		return r
	}
	return &throttledReader{ctx: ctx, r: r, limiter: c.ioLimiter}
}

// throttledReader paces an underlying reader with a token bucket. The
// context is carried in the struct since io.Reader has no context
// parameter.
type throttledReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (tr *throttledReader) Read(p []byte) (int, error) {
	// Never request more tokens than the bucket can hold, or WaitN
	// fails outright.
	if burst := tr.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := tr.r.Read(p)
	if n > 0 {
		if werr := tr.limiter.WaitN(tr.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
