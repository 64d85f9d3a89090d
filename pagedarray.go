package pagedarray

import (
	"github.com/hupe1980/pagedarray/internal/geometry"
	"github.com/hupe1980/pagedarray/internal/pagestore"
)

// Range is a half-open interval [Start, End) of logical indices.
type Range = geometry.Range

// PagedArray is a fixed-length logical array whose contents arrive in pages.
//
// Only pages passed to SetPage are stored; every other position reads as
// missing. A PagedArray is not safe for concurrent use: callers that populate
// it from several goroutines must serialize access themselves.
type PagedArray[T any] struct {
	geo      geometry.Geometry
	store    *pagestore.Store[T]
	observer Observer[T]

	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty PagedArray of totalCount elements split into pages of
// objectsPerPage elements. Pages are numbered from 1 unless
// WithInitialPageIndex is given.
func New[T any](totalCount, objectsPerPage int, optFns ...Option) (*PagedArray[T], error) {
	opts := applyOptions(optFns)

	geo := geometry.Geometry{
		TotalCount:  totalCount,
		PerPage:     objectsPerPage,
		InitialPage: opts.initialPageIndex,
	}
	if err := geo.Validate(); err != nil {
		return nil, translateError(err)
	}

	return &PagedArray[T]{
		geo:     geo,
		store:   pagestore.New[T](geo.InitialPage),
		metrics: opts.metricsCollector,
		logger:  opts.logger.WithGeometry(totalCount, objectsPerPage, geo.InitialPage),
	}, nil
}

// Len returns the total count. It makes PagedArray usable wherever a length
// is expected.
func (a *PagedArray[T]) Len() int {
	return a.geo.TotalCount
}

// TotalCount returns the number of logical elements.
func (a *PagedArray[T]) TotalCount() int {
	return a.geo.TotalCount
}

// SetTotalCount changes the number of logical elements and recomputes the
// number of pages.
//
// Stored pages are kept. After shrinking, pages and indices beyond the new
// bound become unreachable: reads fail with ErrIndexOutOfRange and views skip
// them, but Pages still reports them until Clear. After growing, a previously
// short last page becomes an ordinary page; its unfilled tail reads as
// missing until the page is set again.
func (a *PagedArray[T]) SetTotalCount(totalCount int) error {
	next := a.geo
	next.TotalCount = totalCount
	if err := next.Validate(); err != nil {
		err = translateError(err)
		a.logger.LogResize(a.geo.TotalCount, totalCount, a.geo.NumberOfPages(), err)
		return err
	}

	old := a.geo.TotalCount
	a.geo = next
	a.logger.LogResize(old, totalCount, next.NumberOfPages(), nil)
	a.metrics.RecordResize(old, totalCount)
	return nil
}

// ObjectsPerPage returns the page capacity.
func (a *PagedArray[T]) ObjectsPerPage() int {
	return a.geo.PerPage
}

// NumberOfPages returns ceil(TotalCount / ObjectsPerPage).
func (a *PagedArray[T]) NumberOfPages() int {
	return a.geo.NumberOfPages()
}

// InitialPageIndex returns the number of the first page.
func (a *PagedArray[T]) InitialPageIndex() int {
	return a.geo.InitialPage
}

// LastPageIndex returns the number of the last page, or InitialPageIndex()-1
// for an empty array.
func (a *PagedArray[T]) LastPageIndex() int {
	return a.geo.LastPage()
}

// PageForIndex returns the page that holds the logical index.
func (a *PagedArray[T]) PageForIndex(index int) (int, error) {
	page, err := a.geo.PageForIndex(index)
	return page, translateError(err)
}

// IndexRangeForPage returns the logical indices covered by page.
// The range of the last page is shorter when TotalCount is not a multiple of
// ObjectsPerPage.
func (a *PagedArray[T]) IndexRangeForPage(page int) (Range, error) {
	r, err := a.geo.IndexRange(page)
	return r, translateError(err)
}

// SetPage stores elems as the contents of page, replacing any previous
// contents. Every page but the last must hold exactly ObjectsPerPage
// elements; the last page must hold exactly the remaining elements. A rejected
// call leaves the array unchanged.
//
// The array takes ownership of elems; callers must not modify the slice
// afterwards.
func (a *PagedArray[T]) SetPage(page int, elems []T) error {
	err := translateError(a.store.Set(a.geo, page, elems))
	a.logger.LogSetPage(page, len(elems), err)
	a.metrics.RecordSetPage(len(elems), err)
	return err
}

// RawAt returns the stored element at index without consulting the
// observer. ok is false when the backing page has not been supplied.
func (a *PagedArray[T]) RawAt(index int) (v T, ok bool, err error) {
	v, ok, err = a.store.Element(a.geo, index)
	return v, ok, translateError(err)
}

// IsPageLoaded reports whether page has been supplied.
func (a *PagedArray[T]) IsPageLoaded(page int) (bool, error) {
	if _, err := a.geo.IndexRange(page); err != nil {
		return false, translateError(err)
	}
	return a.store.Has(page), nil
}

// LoadedPages returns the valid page numbers that have been supplied, in
// ascending order.
func (a *PagedArray[T]) LoadedPages() []int {
	pages := make([]int, 0, a.store.Len())
	for page := range a.store.Pages() {
		if !a.geo.ValidPage(page) {
			break
		}
		pages = append(pages, page)
	}
	return pages
}

// MissingPages returns the valid page numbers that have not been supplied,
// in ascending order. External fetchers use it to decide what to request.
func (a *PagedArray[T]) MissingPages() []int {
	return a.store.Missing(a.geo)
}

// LoadedCount returns the number of stored pages, including pages that lie
// beyond a shrunk total count.
func (a *PagedArray[T]) LoadedCount() int {
	return a.store.Len()
}

// Pages returns a copy of the page mapping. The page slices are shared with
// the array and must not be modified.
func (a *PagedArray[T]) Pages() map[int][]T {
	return a.store.Snapshot()
}

// Clear drops every stored page. The configuration is unchanged.
// Use it when the backing data is known to be stale.
func (a *PagedArray[T]) Clear() {
	n := a.store.Len()
	a.store.Clear()
	a.logger.LogClear(n)
	a.metrics.RecordClear(n)
}
