package pagedarray

// Element is the result of a single-index read.
type Element[T any] struct {
	Value T
	// Present is false when the backing page has not been supplied.
	Present bool
}

// Observer is notified on every observer-aware single-index read (At).
//
// WillAccessIndex runs synchronously on the reading goroutine, after the raw
// element has been looked up and before it is returned. It may replace
// *result, for instance with a placeholder while it asks an external fetcher
// for the page. It must not set the page being read.
type Observer[T any] interface {
	WillAccessIndex(a *PagedArray[T], index int, result *Element[T])
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc[T any] func(a *PagedArray[T], index int, result *Element[T])

// WillAccessIndex calls f(a, index, result).
func (f ObserverFunc[T]) WillAccessIndex(a *PagedArray[T], index int, result *Element[T]) {
	f(a, index, result)
}

// Observer returns the registered observer, or nil.
func (a *PagedArray[T]) Observer() Observer[T] {
	return a.observer
}

// SetObserver registers o, replacing any previous observer. Pass nil to
// detach. The array only borrows o; the caller owns its lifetime.
func (a *PagedArray[T]) SetObserver(o Observer[T]) {
	a.observer = o
}

// At returns the element at index, giving the observer a chance to inspect
// or replace it. ok is false when the (possibly replaced) result is missing.
// Indices outside [0, TotalCount) fail with ErrIndexOutOfRange without
// notifying the observer.
func (a *PagedArray[T]) At(index int) (v T, ok bool, err error) {
	v, ok, err = a.RawAt(index)
	if err != nil {
		return v, false, err
	}
	a.metrics.RecordAccess(ok)

	if a.observer == nil {
		return v, ok, nil
	}

	result := Element[T]{Value: v, Present: ok}
	a.observer.WillAccessIndex(a, index, &result)
	return result.Value, result.Present, nil
}
