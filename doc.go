// Package pagedarray provides a sparse, page-backed array for data that
// arrives in batches, such as results streamed from a paginated API.
//
// A PagedArray has a fixed logical length (TotalCount) and is addressed by
// integer index like a slice. Internally only the pages that have been
// supplied are stored; every other position reads as missing rather than
// failing.
//
// # Quick Start
//
//	arr, _ := pagedarray.New[string](10, 3) // pages 1..4, last page holds 1 element
//
//	_ = arr.SetPage(1, []string{"a", "b", "c"})
//	_ = arr.SetPage(4, []string{"j"})
//
//	v, ok, _ := arr.At(1) // "b", true
//	_, ok, _ = arr.At(4)  // "", false: page 2 not loaded
//
// # Pages
//
// Pages are numbered from InitialPageIndex (1 by default, see
// WithInitialPageIndex). Every page except the last must be set with exactly
// ObjectsPerPage elements; the last page holds the remainder. Violations are
// reported as ErrPageSizeMismatch and leave the array unchanged.
//
// # Observers
//
// An Observer registered with SetObserver sees every At call and may replace
// the returned element, typically with a placeholder while it asks an
// external fetcher for the missing page:
//
//	arr.SetObserver(pagedarray.ObserverFunc[string](
//	    func(a *pagedarray.PagedArray[string], i int, r *pagedarray.Element[string]) {
//	        if !r.Present {
//	            page, _ := a.PageForIndex(i)
//	            requests <- page
//	            r.Value, r.Present = "loading…", true
//	        }
//	    }))
//
// # Views
//
// Loaded and EnumerateLoaded traverse stored elements in index order,
// skipping gaps. Dense and DenseWith materialize a fixed-length view aligned
// with logical indices.
//
// # Concurrency
//
// PagedArray performs no locking and no I/O. Fetching pages is the caller's
// business; when pages are delivered from several goroutines, serialize the
// SetPage calls (see examples/fetcher).
package pagedarray
