// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadgrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("textErr", func(t *testing.T) {
		assert.EqualError(t, textErr("foo"), "quadgrid: foo")
	})

	t.Run("fmtErr", func(t *testing.T) {
		assert.EqualError(t, fmtErr("my %s is %s-ed to %d", "bar", "baz", 11), "quadgrid: my bar is baz-ed to 11")
	})

	t.Run("wrapErr", func(t *testing.T) {
		cause := errors.New("the root cause")
		err := wrapErr("the error is %q by", cause, "caused")

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, `quadgrid: the error is "caused" by: the root cause`, err.Error())
	})

	t.Run("textPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "quadgrid: foo", func() {
			textPanic("foo")
		})
	})

	t.Run("fmtPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "quadgrid: my bar is baz-ed to 10", func() {
			fmtPanic("my %s is %s-ed to %d", "bar", "baz", 10)
		})
	})

	t.Run("sentinels", func(t *testing.T) {
		for _, err := range []error{ErrCannotSplit, ErrPointOutsideBounds, ErrInvalidBounds, ErrInvalidRect} {
			assert.True(t, len(err.Error()) > len(packageName))
		}
	})
}
