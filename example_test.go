package pagedarray_test

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/pagedarray"
)

// Example_basic demonstrates setting pages and reading by index.
func Example_basic() {
	arr, err := pagedarray.New[string](10, 3) // pages 1..4
	if err != nil {
		log.Fatal(err)
	}

	_ = arr.SetPage(1, []string{"a", "b", "c"})
	_ = arr.SetPage(4, []string{"j"}) // last page holds the remainder

	v, ok, _ := arr.At(1)
	fmt.Println(v, ok)

	_, ok, _ = arr.At(4)
	fmt.Println(ok)

	fmt.Println(arr.NumberOfPages(), arr.MissingPages())
	// Output:
	// b true
	// false
	// 4 [2 3]
}

// Example_pageSizeMismatch demonstrates the validation performed by SetPage.
func Example_pageSizeMismatch() {
	arr, _ := pagedarray.New[int](10, 3)

	err := arr.SetPage(1, []int{1, 2})
	fmt.Println(errors.Is(err, pagedarray.ErrPageSizeMismatch))
	fmt.Println(err)
	// Output:
	// true
	// pagedarray: page 1 requires 3 objects, got 2
}

// Example_observer demonstrates substituting a placeholder for missing data.
func Example_observer() {
	arr, _ := pagedarray.New[string](6, 2, pagedarray.WithInitialPageIndex(0))
	_ = arr.SetPage(0, []string{"a", "b"})

	requested := map[int]bool{}
	arr.SetObserver(pagedarray.ObserverFunc[string](
		func(a *pagedarray.PagedArray[string], i int, r *pagedarray.Element[string]) {
			if r.Present {
				return
			}
			page, _ := a.PageForIndex(i)
			requested[page] = true
			r.Value, r.Present = "…", true
		}))

	var out []string
	for i := 0; i < arr.Len(); i++ {
		v, _, _ := arr.At(i)
		out = append(out, v)
	}
	fmt.Println(strings.Join(out, " "))
	fmt.Println(requested[1], requested[2])
	// Output:
	// a b … … … …
	// true true
}

// Example_views demonstrates the loaded and dense views.
func Example_views() {
	arr, _ := pagedarray.New[int](7, 3)
	_ = arr.SetPage(2, []int{30, 40, 50})
	_ = arr.SetPage(3, []int{60})

	var out []string
	for i, v := range arr.Loaded() {
		out = append(out, fmt.Sprintf("%d=%d", i, v))
	}
	fmt.Println(strings.Join(out, " "))
	fmt.Println(arr.DenseWith(-1))
	// Output:
	// 3=30 4=40 5=50 6=60
	// [-1 -1 -1 30 40 50 60]
}
