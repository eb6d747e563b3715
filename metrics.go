package dbfgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    openCounter   prometheus.Counter
//	    readHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordOpen(duration time.Duration, err error) {
//	    p.openCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordOpen is called after each table open (header and descriptor
	// parse included). duration is the total time taken, err is nil if
	// successful.
	RecordOpen(duration time.Duration, err error)

	// RecordRead is called after each record read. Exhaustion (io.EOF) is
	// not recorded.
	RecordRead(duration time.Duration, err error)

	// RecordScan is called after each eager drain. records is the number of
	// records yielded before the drain ended.
	RecordScan(records int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOpen(time.Duration, error)      {}
func (NoopMetricsCollector) RecordRead(time.Duration, error)      {}
func (NoopMetricsCollector) RecordScan(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpenCount      atomic.Int64
	OpenErrors     atomic.Int64
	ReadCount      atomic.Int64
	ReadErrors     atomic.Int64
	ReadTotalNanos atomic.Int64
	ScanCount      atomic.Int64
	ScanErrors     atomic.Int64
	ScanRecords    atomic.Int64
	ScanTotalNanos atomic.Int64
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(duration time.Duration, err error) {
	b.OpenCount.Add(1)
	if err != nil {
		b.OpenErrors.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(records int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanRecords.Add(int64(records))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OpenCount:      b.OpenCount.Load(),
		OpenErrors:     b.OpenErrors.Load(),
		ReadCount:      b.ReadCount.Load(),
		ReadErrors:     b.ReadErrors.Load(),
		ReadAvgNanos:   b.getAvgReadNanos(),
		ScanCount:      b.ScanCount.Load(),
		ScanErrors:     b.ScanErrors.Load(),
		ScanRecords:    b.ScanRecords.Load(),
		ScanTotalNanos: b.ScanTotalNanos.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReadNanos() int64 {
	count := b.ReadCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OpenCount      int64
	OpenErrors     int64
	ReadCount      int64
	ReadErrors     int64
	ReadAvgNanos   int64
	ScanCount      int64
	ScanErrors     int64
	ScanRecords    int64
	ScanTotalNanos int64
}
