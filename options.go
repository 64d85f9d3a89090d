package pagedarray

import (
	"log/slog"
)

// DefaultInitialPageIndex is the number of the first page unless
// WithInitialPageIndex says otherwise.
const DefaultInitialPageIndex = 1

type options struct {
	initialPageIndex int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a PagedArray at construction time.
type Option func(*options)

// WithInitialPageIndex sets the number of the first page.
// Most paginated APIs count from 1 (the default); pass 0 for zero-based pages.
//
// Example:
//
//	arr, _ := pagedarray.New[Item](95, 20, pagedarray.WithInitialPageIndex(0))
//	arr.PageForIndex(94) // 4
func WithInitialPageIndex(page int) Option {
	return func(o *options) {
		o.initialPageIndex = page
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pagedarray.BasicMetricsCollector{}
//	arr, _ := pagedarray.New[Item](100, 10, pagedarray.WithMetricsCollector(metrics))
//	// ... use arr ...
//	stats := metrics.GetStats()
//	fmt.Printf("Accesses: %d, hit ratio: %.2f\n", stats.AccessCount, stats.HitRatio)
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
//	logger := pagedarray.NewJSONLogger(slog.LevelDebug)
//	arr, _ := pagedarray.New[Item](100, 10, pagedarray.WithLogger(logger))
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
	opts := options{
		initialPageIndex: DefaultInitialPageIndex,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
