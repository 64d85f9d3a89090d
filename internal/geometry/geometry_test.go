package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberOfPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{10, 3, 4},
		{12, 3, 4},
		{10, 1, 10},
		{10, 100, 1},
	}

	for _, tt := range tests {
		g := Geometry{TotalCount: tt.total, PerPage: tt.perPage, InitialPage: 1}
		assert.Equal(t, tt.want, g.NumberOfPages(), "total=%d perPage=%d", tt.total, tt.perPage)
	}
}

func TestPageForIndex(t *testing.T) {
	g := Geometry{TotalCount: 10, PerPage: 3, InitialPage: 1}

	t.Run("AllIndicesMapIntoValidPages", func(t *testing.T) {
		for i := 0; i < g.TotalCount; i++ {
			page, err := g.PageForIndex(i)
			require.NoError(t, err)
			assert.True(t, g.ValidPage(page), "index %d -> page %d", i, page)
			assert.Equal(t, i/3+1, page)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, i := range []int{-1, 10, 11} {
			_, err := g.PageForIndex(i)
			require.ErrorIs(t, err, ErrIndexOutOfRange)

			var ie *IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, i, ie.Index)
			assert.Equal(t, 10, ie.Count)
		}
	})

	t.Run("ZeroBasedPages", func(t *testing.T) {
		g0 := Geometry{TotalCount: 10, PerPage: 3, InitialPage: 0}
		page, err := g0.PageForIndex(9)
		require.NoError(t, err)
		assert.Equal(t, 3, page)
	})
}

func TestLocate(t *testing.T) {
	g := Geometry{TotalCount: 10, PerPage: 3, InitialPage: 5}

	page, offset, err := g.Locate(7)
	require.NoError(t, err)
	assert.Equal(t, 7, page)
	assert.Equal(t, 1, offset)

	_, _, err = g.Locate(10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestIndexRange(t *testing.T) {
	g := Geometry{TotalCount: 10, PerPage: 3, InitialPage: 1}

	t.Run("FullPages", func(t *testing.T) {
		r, err := g.IndexRange(1)
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 0, End: 3}, r)

		r, err = g.IndexRange(3)
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 6, End: 9}, r)
	})

	t.Run("ShortLastPage", func(t *testing.T) {
		r, err := g.IndexRange(4)
		require.NoError(t, err)
		assert.Equal(t, Range{Start: 9, End: 10}, r)
		assert.Equal(t, 1, r.Len())
		assert.True(t, r.Contains(9))
		assert.False(t, r.Contains(10))
		assert.Equal(t, 1, g.ExpectedLen(4))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, p := range []int{0, 5, -3} {
			_, err := g.IndexRange(p)
			require.ErrorIs(t, err, ErrPageOutOfRange)

			var pe *PageError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, 1, pe.First)
			assert.Equal(t, 4, pe.Last)
		}
		assert.Equal(t, 0, g.ExpectedLen(5))
	})

	t.Run("NoPages", func(t *testing.T) {
		empty := Geometry{TotalCount: 0, PerPage: 3, InitialPage: 1}
		_, err := empty.IndexRange(1)
		require.ErrorIs(t, err, ErrPageOutOfRange)
		assert.Contains(t, err.Error(), "no pages")
		assert.False(t, empty.IsLastPage(0))
	})
}

func TestSlots(t *testing.T) {
	g := Geometry{TotalCount: 100, PerPage: 10, InitialPage: -2}

	assert.Equal(t, uint32(0), g.Slot(-2))
	assert.Equal(t, uint32(9), g.Slot(7))
	assert.Equal(t, 7, g.PageOfSlot(9))
	assert.Equal(t, 7, g.LastPage())
	assert.True(t, g.IsLastPage(7))
	assert.False(t, g.IsLastPage(6))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Geometry{TotalCount: 0, PerPage: 1}.Validate())
	assert.NoError(t, Geometry{TotalCount: 10, PerPage: 3, InitialPage: 1}.Validate())

	assert.ErrorIs(t, Geometry{TotalCount: 10, PerPage: 0}.Validate(), ErrInvalidGeometry)
	assert.ErrorIs(t, Geometry{TotalCount: 10, PerPage: -1}.Validate(), ErrInvalidGeometry)
	assert.ErrorIs(t, Geometry{TotalCount: -1, PerPage: 3}.Validate(), ErrInvalidGeometry)
}
