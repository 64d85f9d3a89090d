package pagedarray

import (
	"iter"
)

// Loaded iterates the stored elements in ascending index order, yielding
// (index, element) pairs. Indices whose page has not been supplied are
// skipped. The observer is not consulted.
//
// Example:
//
//	for i, v := range arr.Loaded() {
//	    fmt.Println(i, v)
//	}
func (a *PagedArray[T]) Loaded() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for page, elems := range a.store.Pages() {
			r, err := a.geo.IndexRange(page)
			if err != nil {
				// Pages are ascending, so everything after this lies beyond TotalCount.
				return
			}
			n := min(len(elems), r.Len())
			for off := 0; off < n; off++ {
				if !yield(r.Start+off, elems[off]) {
					return
				}
			}
		}
	}
}

// EnumerateLoaded calls visit for every stored element in ascending index
// order until visit returns false.
func (a *PagedArray[T]) EnumerateLoaded(visit func(index int, v T) bool) {
	for i, v := range a.Loaded() {
		if !visit(i, v) {
			return
		}
	}
}

// LoadedElements returns the stored elements in ascending index order.
func (a *PagedArray[T]) LoadedElements() []T {
	out := make([]T, 0, a.store.Len()*a.geo.PerPage)
	for _, v := range a.Loaded() {
		out = append(out, v)
	}
	return out
}

// LoadedIndices returns the indices that currently hold an element, in
// ascending order.
func (a *PagedArray[T]) LoadedIndices() []int {
	out := make([]int, 0, a.store.Len()*a.geo.PerPage)
	for i := range a.Loaded() {
		out = append(out, i)
	}
	return out
}

// Dense returns a slice of length TotalCount in which position i describes
// logical index i. Missing positions have Present set to false.
func (a *PagedArray[T]) Dense() []Element[T] {
	out := make([]Element[T], a.geo.TotalCount)
	for i, v := range a.Loaded() {
		out[i] = Element[T]{Value: v, Present: true}
	}
	return out
}

// DenseWith returns a slice of length TotalCount holding the stored element
// at every loaded position and placeholder everywhere else.
func (a *PagedArray[T]) DenseWith(placeholder T) []T {
	out := make([]T, a.geo.TotalCount)
	for i := range out {
		out[i] = placeholder
	}
	for i, v := range a.Loaded() {
		out[i] = v
	}
	return out
}
