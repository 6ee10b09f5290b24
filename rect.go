// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadgrid

import "fmt"

// A Point identifies one cell of the integer grid.
type Point struct {
	X int
	Y int
}

// String returns the point in the form "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// A Rect is an axis-aligned rectangle of grid cells, inclusive of both
// corners on both axes. A Rect containing a single cell has Min == Max.
type Rect struct {
	Min Point
	Max Point
}

// String returns the rectangle in the form "[(x0,y0),(x1,y1)]".
func (r Rect) String() string {
	return fmt.Sprintf("[%s,%s]", r.Min, r.Max)
}

// Contains reports whether p lies within r, inclusive on all four
// sides.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Width returns the number of cells r spans on the X axis.
func (r Rect) Width() int {
	return r.Max.X - r.Min.X + 1
}

// Height returns the number of cells r spans on the Y axis.
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y + 1
}

func (r Rect) valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// splittable reports whether r spans at least two cells on both axes,
// the precondition for subdividing it at its midpoint.
func (r Rect) splittable() bool {
	return r.Max.X-r.Min.X >= 1 && r.Max.Y-r.Min.Y >= 1
}

// midX returns the X coordinate of the midline, computed with floor
// division so the lower half keeps the extra cell when the span is
// odd.
func (r Rect) midX() int {
	return r.Min.X + (r.Max.X-r.Min.X)/2
}

// midY returns the Y coordinate of the midline. See midX.
func (r Rect) midY() int {
	return r.Min.Y + (r.Max.Y-r.Min.Y)/2
}

// intersect returns the overlapping region of a and b, comparing the
// per-axis max-of-mins against the min-of-maxes. ok is false when the
// rectangles are disjoint on either axis.
func intersect(a, b Rect) (overlap Rect, ok bool) {
	x0, x1 := maxInt(a.Min.X, b.Min.X), minInt(a.Max.X, b.Max.X)
	if x0 > x1 {
		return Rect{}, false
	}
	y0, y1 := maxInt(a.Min.Y, b.Min.Y), minInt(a.Max.Y, b.Max.Y)
	if y0 > y1 {
		return Rect{}, false
	}
	return Rect{Min: Point{x0, y0}, Max: Point{x1, y1}}, true
}

// splitRect partitions r at the horizontal midline midX and vertical
// midline midY into up to four quadrants, ordered min/min, max/min,
// min/max, max/max. A quadrant is emitted only when it contains at
// least one cell; the lower-index side keeps the midline, so an odd
// span leaves it the extra cell.
func splitRect(r Rect, midX, midY int) []Rect {
	quads := make([]Rect, 0, 4)
	if r.Min.X <= midX && r.Min.Y <= midY {
		quads = append(quads, Rect{r.Min, Point{midX, midY}})
	}
	if r.Max.X > midX && r.Min.Y <= midY {
		quads = append(quads, Rect{Point{midX + 1, r.Min.Y}, Point{r.Max.X, midY}})
	}
	if r.Min.X <= midX && r.Max.Y > midY {
		quads = append(quads, Rect{Point{r.Min.X, midY + 1}, Point{midX, r.Max.Y}})
	}
	if r.Max.X > midX && r.Max.Y > midY {
		quads = append(quads, Rect{Point{midX + 1, midY + 1}, r.Max})
	}
	return quads
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
