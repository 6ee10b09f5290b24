// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadimg

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRect is returned by New when the image rectangle
	// contains no pixels.
	ErrEmptyRect = textErr("image rectangle is empty")
)

const packageName = "quadimg: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}
