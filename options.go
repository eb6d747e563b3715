package dbfgo

import (
	"log/slog"
)

type options struct {
	skipDeleted      bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Reader construction behavior.
type Option func(*options)

// WithSkipDeleted omits records whose deletion flag is set from the yielded
// sequence. Skipped rows still advance the cursor and still land in the
// Deleted bitmap.
//
// Off by default: a full scan then yields exactly the header's declared
// record count, deleted rows included.
func WithSkipDeleted() Option {
	return func(o *options) {
		o.skipDeleted = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dbfgo.BasicMetricsCollector{}
//	r, _ := dbfgo.Open("stations.dbf", dbfgo.WithMetricsCollector(metrics))
//	// ... drain r ...
//	stats := metrics.GetStats()
//	fmt.Printf("Reads: %d, Avg latency: %dns\n", stats.ReadCount, stats.ReadAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dbfgo.NewJSONLogger(slog.LevelInfo)
//	r, _ := dbfgo.Open("stations.dbf", dbfgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
