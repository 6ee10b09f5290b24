// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadimg_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/bmp"

	"github.com/gogama/quadgrid/quadimg"
)

func Example() {
	m, _ := quadimg.New(image.Rect(0, 0, 8, 8), color.NRGBA{A: 255})
	_ = m.SetRect(image.Rect(0, 4, 8, 8), color.NRGBA{R: 255, A: 255})

	// 64 pixels, but only four uniform regions in the tree.
	fmt.Println(m.Tree())

	// Any image.Image codec can serialize the pixels.
	var buf bytes.Buffer
	_ = bmp.Encode(&buf, m)
	decoded, _ := bmp.Decode(&buf)
	r, _, _, _ := decoded.At(3, 6).RGBA()
	fmt.Println(r >> 8)
	// Output: Quadtree{Bounds:[(0,0),(7,7)],Leaves:4}
	// 255
}
