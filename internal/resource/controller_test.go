package resource

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_ScanConcurrency(t *testing.T) {
	c := NewController(Config{MaxConcurrentScans: 2})

	// Acquire 2
	require.NoError(t, c.AcquireScan(t.Context()))
	require.NoError(t, c.AcquireScan(t.Context()))

	// Try 3rd
	assert.False(t, c.TryAcquireScan())

	// Release 1
	c.ReleaseScan()

	// Try 3rd again
	assert.True(t, c.TryAcquireScan())
}

func TestController_ScanBlocking(t *testing.T) {
	c := NewController(Config{MaxConcurrentScans: 1})

	require.NoError(t, c.AcquireScan(context.Background()))

	// Second acquire should block until the context expires
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := c.AcquireScan(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	c.ReleaseScan()
	assert.True(t, c.TryAcquireScan())
}

func TestController_IO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1000}) // 1KB/s
	ctx := context.Background()

	// Small acquire
	assert.NoError(t, c.AcquireIO(ctx, 100))
	assert.True(t, c.TryAcquireIO(100))

	// Unlimited
	c2 := NewController(Config{})
	assert.NoError(t, c2.AcquireIO(ctx, 1000000))
	assert.True(t, c2.TryAcquireIO(1000000))
}

func TestController_NilSafe(t *testing.T) {
	var c *Controller

	// All methods should be nil-safe
	assert.NoError(t, c.AcquireScan(context.Background()))
	assert.True(t, c.TryAcquireScan())
	c.ReleaseScan()

	assert.NoError(t, c.AcquireIO(context.Background(), 100))
	assert.True(t, c.TryAcquireIO(100))

	data := bytes.NewReader([]byte("hello"))
	assert.Equal(t, io.Reader(data), c.ThrottleReader(context.Background(), data))
}

func TestThrottleReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10000})
	ctx := context.Background()

	data := bytes.NewReader([]byte("hello world"))
	r := c.ThrottleReader(ctx, data)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}

func TestThrottleReader_CapsAtBurst(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 4})
	ctx := context.Background()

	data := bytes.NewReader([]byte("hello world"))
	r := c.ThrottleReader(ctx, data)

	// A read larger than the bucket is trimmed, not rejected.
	buf := make([]byte, 16)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "hell", string(buf[:n]))
}

func TestThrottleReader_Unlimited(t *testing.T) {
	c := NewController(Config{})

	data := bytes.NewReader([]byte("hello world"))
	assert.Equal(t, io.Reader(data), c.ThrottleReader(context.Background(), data))
}

func TestThrottleReader_ContextCanceled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1}) // Very slow
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	data := bytes.NewReader([]byte("hello world"))
	r := c.ThrottleReader(ctx, data)

	buf := make([]byte, 1000)
	_, err := r.Read(buf)
	assert.Error(t, err)
}
