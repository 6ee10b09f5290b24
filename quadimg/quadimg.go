// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadimg exposes a quadtree-backed pixel buffer. An Image
// stores its pixels in a quadgrid.Quadtree, so large single-color
// regions cost one tree node no matter how many pixels they cover.
//
// Image implements image.Image and draw.Image, which makes it usable
// with the standard library's draw package and with any codec that
// consumes an image.Image, such as golang.org/x/image/bmp.
package quadimg

import (
	"image"
	"image/color"

	"github.com/gogama/quadgrid"
)

// Image is a 2-D pixel buffer backed by a region quadtree of NRGBA
// values.
//
// Point addressability follows the tree's subdivision geometry: an
// Image whose width and height are powers of two can address every
// pixel individually. Other dimensions can reach a state where a
// region one pixel wide or tall cannot be subdivided further; writes
// that hit this report quadgrid.ErrCannotSplit and change nothing.
type Image struct {
	tree *quadgrid.Quadtree[color.NRGBA]
	err  error
}

// New creates an Image covering r, with every pixel initially holding
// bg. Returns ErrEmptyRect when r contains no pixels.
func New(r image.Rectangle, bg color.NRGBA) (*Image, error) {
	r = r.Canon()
	if r.Empty() {
		return nil, ErrEmptyRect
	}
	// image.Rectangle is exclusive of Max, the tree is inclusive.
	tree, err := quadgrid.New(
		quadgrid.Point{X: r.Min.X, Y: r.Min.Y},
		quadgrid.Point{X: r.Max.X - 1, Y: r.Max.Y - 1},
		bg,
	)
	if err != nil {
		return nil, wrapErr("new tree", err)
	}
	return &Image{tree: tree}, nil
}

// FromImage copies src into a new quadtree-backed Image. Rows are
// written as maximal same-color runs, so images with large uniform
// regions consolidate into few nodes.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	m, err := New(b, color.NRGBA{})
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		runStart := b.Min.X
		run := toNRGBA(src.At(b.Min.X, y))
		for x := b.Min.X + 1; x < b.Max.X; x++ {
			c := toNRGBA(src.At(x, y))
			if c == run {
				continue
			}
			if err := m.SetRect(image.Rect(runStart, y, x, y+1), run); err != nil {
				return nil, err
			}
			runStart, run = x, c
		}
		if err := m.SetRect(image.Rect(runStart, y, b.Max.X, y+1), run); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	b := m.tree.Bounds()
	return image.Rect(b.Min.X, b.Min.Y, b.Max.X+1, b.Max.Y+1)
}

// At implements image.Image. Points outside the bounds read as the
// zero color, matching the standard library's in-memory image types.
func (m *Image) At(x, y int) color.Color {
	c, ok := m.tree.Get(quadgrid.Point{X: x, Y: y})
	if !ok {
		return color.NRGBA{}
	}
	return c
}

// Set implements draw.Image. Writes outside the bounds are no-ops,
// matching the standard library's in-memory image types. Since the
// interface leaves no way to report a failed write, the first error is
// retained and available from Err.
func (m *Image) Set(x, y int, c color.Color) {
	err := m.tree.Insert(toNRGBA(c), quadgrid.Point{X: x, Y: y})
	if err == nil || err == quadgrid.ErrPointOutsideBounds {
		return
	}
	if m.err == nil {
		m.err = err
	}
}

// SetRect fills every pixel of r with c. The rectangle is clipped
// against the image bounds; a fully disjoint rectangle writes nothing.
func (m *Image) SetRect(r image.Rectangle, c color.NRGBA) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	return m.tree.InsertRect(c, quadgrid.Rect{
		Min: quadgrid.Point{X: r.Min.X, Y: r.Min.Y},
		Max: quadgrid.Point{X: r.Max.X - 1, Y: r.Max.Y - 1},
	})
}

// Err returns the first error swallowed by Set, or nil.
func (m *Image) Err() error {
	return m.err
}

// Tree returns the underlying quadtree. Mutating it directly is safe
// as long as the Image is not being read concurrently.
func (m *Image) Tree() *quadgrid.Quadtree[color.NRGBA] {
	return m.tree
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
