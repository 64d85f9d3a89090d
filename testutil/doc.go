// Package testutil provides testing utilities for pagedarray.
//
// This package is intended for use in tests, examples and benchmarks only.
// It provides a seeded random source and helpers that cut a reference
// dataset into the pages a paginated source would deliver.
//
// # Reference Data
//
//	data := testutil.Sequence(10)              // [0 1 2 ... 9]
//	pages := testutil.Paginate(data, 3, 1)     // {1:[0 1 2] 2:[3 4 5] 3:[6 7 8] 4:[9]}
//
// # Arrival Order
//
//	rng := testutil.NewRNG(seed)
//	order := rng.ArrivalOrder(pages)           // page numbers in shuffled order
//	subset := rng.SparsePages(pages, 0.5)      // roughly half of the pages
package testutil
