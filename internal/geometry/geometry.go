// Package geometry maps logical indices onto page numbers and offsets.
//
// All functions are pure: a Geometry is a small value type and every derived
// quantity (page count, last page, range of a page) is computed on demand from
// its three fields, so the derived values can never drift out of sync with the
// total count.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrIndexOutOfRange is returned for a logical index outside [0, TotalCount).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPageOutOfRange is returned for a page number outside the valid page range.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrInvalidGeometry is returned by Validate.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// MaxPages is the largest supported number of pages. Page slots are tracked
// as uint32 values.
const MaxPages = math.MaxUint32

// Geometry describes how a logical index space is cut into pages.
type Geometry struct {
	// TotalCount is the number of logical elements.
	TotalCount int
	// PerPage is the capacity of a page. Must be > 0.
	PerPage int
	// InitialPage is the number of the first page.
	InitialPage int
}

// Range is a half-open interval [Start, End) of logical indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether index lies in the range.
func (r Range) Contains(index int) bool { return index >= r.Start && index < r.End }

func (r Range) String() string { return fmt.Sprintf("[%d, %d)", r.Start, r.End) }

// Validate checks the configuration.
func (g Geometry) Validate() error {
	if g.PerPage <= 0 {
		return fmt.Errorf("%w: objects per page must be positive, got %d", ErrInvalidGeometry, g.PerPage)
	}
	if g.TotalCount < 0 {
		return fmt.Errorf("%w: total count must not be negative, got %d", ErrInvalidGeometry, g.TotalCount)
	}
	if n := g.NumberOfPages(); uint64(n) > MaxPages {
		return fmt.Errorf("%w: %d pages exceed the limit of %d", ErrInvalidGeometry, n, uint64(MaxPages))
	}
	if g.InitialPage > math.MaxInt-g.NumberOfPages() {
		return fmt.Errorf("%w: initial page %d overflows the page range", ErrInvalidGeometry, g.InitialPage)
	}
	return nil
}

// NumberOfPages returns ceil(TotalCount / PerPage).
func (g Geometry) NumberOfPages() int {
	if g.TotalCount <= 0 {
		return 0
	}
	return (g.TotalCount-1)/g.PerPage + 1
}

// LastPage returns the number of the last page. The result is InitialPage-1
// when there are no pages.
func (g Geometry) LastPage() int {
	return g.InitialPage + g.NumberOfPages() - 1
}

// ValidPage reports whether page lies in [InitialPage, LastPage()].
func (g Geometry) ValidPage(page int) bool {
	return page >= g.InitialPage && page <= g.LastPage()
}

// IsLastPage reports whether page is the last valid page.
func (g Geometry) IsLastPage(page int) bool {
	return g.NumberOfPages() > 0 && page == g.LastPage()
}

// Slot returns the zero-based position of page relative to InitialPage.
func (g Geometry) Slot(page int) uint32 {
	return uint32(page - g.InitialPage)
}

// PageOfSlot is the inverse of Slot.
func (g Geometry) PageOfSlot(slot uint32) int {
	return g.InitialPage + int(slot)
}

// PageForIndex returns the page holding the logical index.
func (g Geometry) PageForIndex(index int) (int, error) {
	if index < 0 || index >= g.TotalCount {
		return 0, &IndexError{Index: index, Count: g.TotalCount}
	}
	return index/g.PerPage + g.InitialPage, nil
}

// Locate returns the page holding index and the offset of index within it.
func (g Geometry) Locate(index int) (page, offset int, err error) {
	if index < 0 || index >= g.TotalCount {
		return 0, 0, &IndexError{Index: index, Count: g.TotalCount}
	}
	return index/g.PerPage + g.InitialPage, index % g.PerPage, nil
}

// IndexRange returns the logical indices covered by page. The last page is
// shorter when TotalCount is not a multiple of PerPage.
func (g Geometry) IndexRange(page int) (Range, error) {
	if !g.ValidPage(page) {
		return Range{}, &PageError{Page: page, First: g.InitialPage, Last: g.LastPage()}
	}
	start := (page - g.InitialPage) * g.PerPage
	return Range{Start: start, End: min(start+g.PerPage, g.TotalCount)}, nil
}

// ExpectedLen returns the number of elements a complete page holds, or 0 for
// an invalid page.
func (g Geometry) ExpectedLen(page int) int {
	r, err := g.IndexRange(page)
	if err != nil {
		return 0
	}
	return r.Len()
}

// IndexError describes an index outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// PageError describes a page outside [First, Last].
type PageError struct {
	Page  int
	First int
	Last  int
}

func (e *PageError) Error() string {
	if e.Last < e.First {
		return fmt.Sprintf("page %d out of range: no pages", e.Page)
	}
	return fmt.Sprintf("page %d out of range [%d, %d]", e.Page, e.First, e.Last)
}

func (e *PageError) Unwrap() error { return ErrPageOutOfRange }
