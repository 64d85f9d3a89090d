package pagedarray

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    misses prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordAccess(hit bool) {
//	    if !hit {
//	        p.misses.Inc()
//	    }
//	}
type MetricsCollector interface {
	// RecordSetPage is called after each SetPage call.
	// size is the number of supplied elements, err is nil if the page was stored.
	RecordSetPage(size int, err error)

	// RecordAccess is called for each observer-aware read.
	// hit reports whether the backing page held the element.
	RecordAccess(hit bool)

	// RecordClear is called after Clear with the number of pages dropped.
	RecordClear(pages int)

	// RecordResize is called after each successful total count change.
	RecordResize(oldCount, newCount int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSetPage(int, error) {}
func (NoopMetricsCollector) RecordAccess(bool)        {}
func (NoopMetricsCollector) RecordClear(int)          {}
func (NoopMetricsCollector) RecordResize(int, int)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// A single collector may be shared by several arrays.
type BasicMetricsCollector struct {
	SetPageCount  atomic.Int64
	SetPageErrors atomic.Int64
	ElementsSet   atomic.Int64
	AccessCount   atomic.Int64
	AccessMisses  atomic.Int64
	ClearCount    atomic.Int64
	PagesCleared  atomic.Int64
	ResizeCount   atomic.Int64
}

// RecordSetPage implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSetPage(size int, err error) {
	b.SetPageCount.Add(1)
	if err != nil {
		b.SetPageErrors.Add(1)
		return
	}
	b.ElementsSet.Add(int64(size))
}

// RecordAccess implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAccess(hit bool) {
	b.AccessCount.Add(1)
	if !hit {
		b.AccessMisses.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(pages int) {
	b.ClearCount.Add(1)
	b.PagesCleared.Add(int64(pages))
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(oldCount, newCount int) {
	b.ResizeCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetPageCount:  b.SetPageCount.Load(),
		SetPageErrors: b.SetPageErrors.Load(),
		ElementsSet:   b.ElementsSet.Load(),
		AccessCount:   b.AccessCount.Load(),
		AccessMisses:  b.AccessMisses.Load(),
		HitRatio:      b.hitRatio(),
		ClearCount:    b.ClearCount.Load(),
		PagesCleared:  b.PagesCleared.Load(),
		ResizeCount:   b.ResizeCount.Load(),
	}
}

func (b *BasicMetricsCollector) hitRatio() float64 {
	count := b.AccessCount.Load()
	if count == 0 {
		return 0
	}
	return float64(count-b.AccessMisses.Load()) / float64(count)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetPageCount  int64
	SetPageErrors int64
	ElementsSet   int64
	AccessCount   int64
	AccessMisses  int64
	HitRatio      float64
	ClearCount    int64
	PagesCleared  int64
	ResizeCount   int64
}
