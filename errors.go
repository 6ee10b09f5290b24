// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrCannotSplit is returned when an insertion would need to
	// subdivide a rectangle that is only a single coordinate wide or
	// tall on one or both axes. A failed operation leaves the tree
	// exactly as it was before the call.
	ErrCannotSplit = textErr("rectangle is too fine to split")
	// ErrPointOutsideBounds is returned by Insert when the target
	// point lies outside the governed rectangle.
	ErrPointOutsideBounds = textErr("point outside governed bounds")
	// ErrInvalidBounds is returned by New when the governed rectangle
	// corners are inverted on either axis.
	ErrInvalidBounds = textErr("invalid bounds: min must not exceed max")
	// ErrInvalidRect is returned by InsertRect when the target
	// rectangle is inverted on either axis.
	ErrInvalidRect = textErr("invalid rectangle: min must not exceed max")
)

const packageName = "quadgrid: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
