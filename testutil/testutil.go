package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0, maxVal).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// ArrivalOrder returns the page numbers of pages in a shuffled order,
// simulating responses that complete out of order.
func (r *RNG) ArrivalOrder(pages map[int][]int) []int {
	order := PageNumbers(pages)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// SparsePages returns a subset of pages where each page is kept with
// probability keepRate.
func (r *RNG) SparsePages(pages map[int][]int, keepRate float64) map[int][]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[int][]int)
	for _, p := range PageNumbers(pages) {
		if r.rand.Float64() < keepRate {
			out[p] = pages[p]
		}
	}
	return out
}

// Sequence returns [0, 1, ..., n-1]. Element i equals its logical index,
// which makes positional checks trivial.
func Sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Paginate cuts data into pages of perPage elements numbered from
// initialPage. The last page holds the remainder.
func Paginate[T any](data []T, perPage, initialPage int) map[int][]T {
	pages := make(map[int][]T)
	for start, page := 0, initialPage; start < len(data); start, page = start+perPage, page+1 {
		end := min(start+perPage, len(data))
		pages[page] = slices.Clone(data[start:end])
	}
	return pages
}

// PageNumbers returns the keys of pages in ascending order.
func PageNumbers[T any](pages map[int][]T) []int {
	out := make([]int, 0, len(pages))
	for p := range pages {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
