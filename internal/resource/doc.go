// Package resource implements the Controller for global limits during
// batch table scans.
//
// The Controller provides centralized management of two resource types:
//
//   - Concurrency: Limit the number of tables scanned at once
//   - IO: Rate-limit scan reads to avoid saturating shared storage
//
// # Scan Concurrency
//
// A weighted semaphore caps how many tables are decoded concurrently:
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentScans: 4,
//	})
//
//	if err := rc.AcquireScan(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseScan()
//
// # IO Rate Limiting
//
// A token bucket paces reads so a batch scan does not starve other
// consumers of the same disk or network path:
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	// Direct acquire
//	if err := rc.AcquireIO(ctx, 4096); err != nil {
//	    return err
//	}
//
//	// Or wrap a reader so every Read is paced
//	r := rc.ThrottleReader(ctx, file)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
