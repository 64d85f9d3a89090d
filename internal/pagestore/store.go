// Package pagestore holds the pages that have been supplied so far.
//
// Pages are kept in a map keyed by page number. A roaring bitmap tracks the
// zero-based slot of every stored page, which gives ascending traversal and
// cheap set arithmetic against the full page range without sorting map keys.
package pagestore

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pagedarray/internal/geometry"
)

// ErrSizeMismatch is returned when a page does not have the expected length.
var ErrSizeMismatch = errors.New("page size mismatch")

// SizeMismatchError describes a rejected page.
type SizeMismatchError struct {
	Page     int
	Expected int
	Actual   int
	// LastPage is set when the page was the last one, in which case Expected
	// is the remainder of the total count rather than the page size.
	LastPage bool
}

func (e *SizeMismatchError) Error() string {
	if e.LastPage {
		return fmt.Sprintf("last page %d requires %d elements, got %d", e.Page, e.Expected, e.Actual)
	}
	return fmt.Sprintf("page %d requires %d elements, got %d", e.Page, e.Expected, e.Actual)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }

// Store is a sparse mapping from page number to page contents.
// It is not safe for concurrent use.
type Store[T any] struct {
	pages  map[int][]T
	loaded *roaring.Bitmap
	origin int
}

// New creates an empty store for pages numbered from origin.
func New[T any](origin int) *Store[T] {
	return &Store[T]{
		pages:  make(map[int][]T),
		loaded: roaring.New(),
		origin: origin,
	}
}

// Set validates elems against g and stores them as page. On error the store
// is left unchanged. The store takes ownership of elems.
func (s *Store[T]) Set(g geometry.Geometry, page int, elems []T) error {
	r, err := g.IndexRange(page)
	if err != nil {
		return err
	}

	if len(elems) != r.Len() {
		return &SizeMismatchError{Page: page, Expected: r.Len(), Actual: len(elems), LastPage: g.IsLastPage(page)}
	}

	s.pages[page] = elems
	s.loaded.Add(s.slot(page))
	return nil
}

// Get returns the stored contents of page.
func (s *Store[T]) Get(page int) ([]T, bool) {
	elems, ok := s.pages[page]
	return elems, ok
}

// Has reports whether page is stored.
func (s *Store[T]) Has(page int) bool {
	_, ok := s.pages[page]
	return ok
}

// Element returns the element at the logical index. A page that is not
// stored, or an offset beyond the stored length, yields ok=false and no error.
func (s *Store[T]) Element(g geometry.Geometry, index int) (v T, ok bool, err error) {
	page, offset, err := g.Locate(index)
	if err != nil {
		return v, false, err
	}
	elems, found := s.pages[page]
	if !found || offset >= len(elems) {
		return v, false, nil
	}
	return elems[offset], true, nil
}

// Len returns the number of stored pages.
func (s *Store[T]) Len() int {
	return len(s.pages)
}

// Clear removes all stored pages.
func (s *Store[T]) Clear() {
	clear(s.pages)
	s.loaded.Clear()
}

// Pages iterates the stored pages in ascending page order.
func (s *Store[T]) Pages() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		it := s.loaded.Iterator()
		for it.HasNext() {
			page := s.origin + int(it.Next())
			if !yield(page, s.pages[page]) {
				return
			}
		}
	}
}

// Missing returns the pages of g that are not stored, in ascending order.
func (s *Store[T]) Missing(g geometry.Geometry) []int {
	n := g.NumberOfPages()
	if n == 0 {
		return nil
	}

	all := roaring.New()
	all.AddRange(0, uint64(n))
	all.AndNot(s.loaded)

	missing := make([]int, 0, all.GetCardinality())
	it := all.Iterator()
	for it.HasNext() {
		missing = append(missing, g.PageOfSlot(it.Next()))
	}
	return missing
}

// Snapshot returns a shallow copy of the page mapping.
func (s *Store[T]) Snapshot() map[int][]T {
	return maps.Clone(s.pages)
}

func (s *Store[T]) slot(page int) uint32 {
	return uint32(page - s.origin)
}
