package pagedarray

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/pagedarray/internal/geometry"
	"github.com/hupe1980/pagedarray/internal/pagestore"
)

func TestTranslateError(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})

	t.Run("Index", func(t *testing.T) {
		err := translateError(&geometry.IndexError{Index: 12, Count: 10})
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, err, geometry.ErrIndexOutOfRange)
		assert.EqualError(t, err, "pagedarray: index 12 out of range [0, 10)")
	})

	t.Run("Page", func(t *testing.T) {
		err := translateError(&geometry.PageError{Page: 0, First: 1, Last: 4})
		assert.ErrorIs(t, err, ErrPageOutOfRange)
		assert.EqualError(t, err, "pagedarray: page 0 out of range [1, 4]")

		err = translateError(&geometry.PageError{Page: 1, First: 1, Last: 0})
		assert.EqualError(t, err, "pagedarray: page 1 out of range: array has no pages")
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		err := translateError(&pagestore.SizeMismatchError{Page: 2, Expected: 3, Actual: 1})
		assert.ErrorIs(t, err, ErrPageSizeMismatch)
		assert.ErrorIs(t, err, pagestore.ErrSizeMismatch)
		assert.EqualError(t, err, "pagedarray: page 2 requires 3 objects, got 1")

		err = translateError(&pagestore.SizeMismatchError{Page: 4, Expected: 1, Actual: 2, LastPage: true})
		assert.EqualError(t, err, "pagedarray: last page 4 requires 1 objects, got 2")
	})

	t.Run("InvalidGeometry", func(t *testing.T) {
		err := translateError(fmt.Errorf("%w: bad", geometry.ErrInvalidGeometry))
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, geometry.ErrInvalidGeometry)
	})

	t.Run("PassThrough", func(t *testing.T) {
		other := errors.New("other")
		assert.Same(t, other, translateError(other))
	})
}
