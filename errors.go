package pagedarray

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pagedarray/internal/geometry"
	"github.com/hupe1980/pagedarray/internal/pagestore"
)

var (
	// ErrIndexOutOfRange is returned when a logical index is negative or not
	// smaller than the total count.
	ErrIndexOutOfRange = errors.New("pagedarray: index out of range")

	// ErrPageOutOfRange is returned when a page number lies outside
	// [InitialPageIndex, InitialPageIndex+NumberOfPages-1].
	ErrPageOutOfRange = errors.New("pagedarray: page out of range")

	// ErrPageSizeMismatch is returned by SetPage when the supplied elements do
	// not fit the page.
	ErrPageSizeMismatch = errors.New("pagedarray: page size mismatch")

	// ErrInvalidConfig is returned for an unusable total count or page size.
	ErrInvalidConfig = errors.New("pagedarray: invalid configuration")
)

// IndexOutOfRangeError indicates an index outside [0, Count).
//
// errors.Is(err, ErrIndexOutOfRange) reports true for this error.
type IndexOutOfRangeError struct {
	Index int
	Count int
	cause error
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("pagedarray: index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Unwrap() []error { return []error{ErrIndexOutOfRange, e.cause} }

// PageOutOfRangeError indicates a page number outside [First, Last].
// Last is smaller than First when the array has no pages.
//
// errors.Is(err, ErrPageOutOfRange) reports true for this error.
type PageOutOfRangeError struct {
	Page  int
	First int
	Last  int
	cause error
}

func (e *PageOutOfRangeError) Error() string {
	if e.Last < e.First {
		return fmt.Sprintf("pagedarray: page %d out of range: array has no pages", e.Page)
	}
	return fmt.Sprintf("pagedarray: page %d out of range [%d, %d]", e.Page, e.First, e.Last)
}

func (e *PageOutOfRangeError) Unwrap() []error { return []error{ErrPageOutOfRange, e.cause} }

// PageSizeMismatchError indicates a rejected SetPage call.
//
// Expected is the exact required length: ObjectsPerPage for every page but
// the last, and the remainder of the total count for the last page.
type PageSizeMismatchError struct {
	Page     int
	Expected int
	Actual   int
	LastPage bool
	cause    error
}

func (e *PageSizeMismatchError) Error() string {
	if e.LastPage {
		return fmt.Sprintf("pagedarray: last page %d requires %d objects, got %d", e.Page, e.Expected, e.Actual)
	}
	return fmt.Sprintf("pagedarray: page %d requires %d objects, got %d", e.Page, e.Expected, e.Actual)
}

func (e *PageSizeMismatchError) Unwrap() []error { return []error{ErrPageSizeMismatch, e.cause} }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ie *geometry.IndexError
	if errors.As(err, &ie) {
		return &IndexOutOfRangeError{Index: ie.Index, Count: ie.Count, cause: err}
	}
	var pe *geometry.PageError
	if errors.As(err, &pe) {
		return &PageOutOfRangeError{Page: pe.Page, First: pe.First, Last: pe.Last, cause: err}
	}
	var sm *pagestore.SizeMismatchError
	if errors.As(err, &sm) {
		return &PageSizeMismatchError{
			Page:     sm.Page,
			Expected: sm.Expected,
			Actual:   sm.Actual,
			LastPage: sm.LastPage,
			cause:    err,
		}
	}
	if errors.Is(err, geometry.ErrInvalidGeometry) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return err
}
