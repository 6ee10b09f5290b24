// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadgrid

import "fmt"

// A Quadtree maps every integer grid coordinate within a fixed
// rectangle to a value of type T. Uniform regions are stored as single
// nodes regardless of their size, so a tree whose cells mostly share
// values stays small.
//
// The value type must be comparable, and values are duplicated across
// nodes when a region is subdivided, so T should be a cheap value type
// rather than anything carrying identity.
//
// A Quadtree performs no internal locking. Lookups and iteration may
// run concurrently with one another, but never with Insert or
// InsertRect, which replace whole subtrees in place.
type Quadtree[T comparable] struct {
	root node[T]
}

// New creates a Quadtree governing the rectangle [min, max], inclusive
// of both corners, with every cell initially holding def. Returns
// ErrInvalidBounds when the corners are inverted on either axis.
func New[T comparable](min, max Point, def T) (*Quadtree[T], error) {
	bounds := Rect{Min: min, Max: max}
	if !bounds.valid() {
		return nil, ErrInvalidBounds
	}
	return &Quadtree[T]{root: node[T]{bounds: bounds, value: def}}, nil
}

// Bounds returns the governed rectangle fixed at construction.
func (qt *Quadtree[T]) Bounds() Rect {
	return qt.root.bounds
}

// Insert writes value at point p, subdividing uniform regions as
// needed and consolidating quadrants that become uniform again.
//
// Returns ErrPointOutsideBounds when p lies outside the governed
// rectangle and ErrCannotSplit when reaching p would require
// subdividing a region that is a single cell wide or tall, which can
// happen when the governed rectangle has mismatched spans. Either way
// the tree is left exactly as it was.
func (qt *Quadtree[T]) Insert(value T, p Point) error {
	if !qt.root.bounds.Contains(p) {
		return ErrPointOutsideBounds
	}
	// Validate the whole descent geometrically before mutating
	// anything, so a degenerate split deep in the tree cannot leave a
	// partial write behind.
	if err := checkPoint(qt.root.bounds, p); err != nil {
		return err
	}
	_, err := qt.root.insertValue(value, p)
	return err
}

// InsertRect writes value to every cell of r. The target is clipped
// against the governed rectangle: portions lying outside are silently
// ignored, and a fully disjoint target writes nothing and returns nil.
//
// A target exactly covering a subdivided region replaces that whole
// subtree in one step, regardless of its prior depth.
//
// Returns ErrInvalidRect when r is inverted on either axis and
// ErrCannotSplit under the same conditions as Insert, leaving the tree
// exactly as it was.
func (qt *Quadtree[T]) InsertRect(value T, r Rect) error {
	if !r.valid() {
		return ErrInvalidRect
	}
	target, ok := intersect(qt.root.bounds, r)
	if !ok {
		return nil
	}
	if err := checkRange(qt.root.bounds, target); err != nil {
		return err
	}
	_, err := qt.root.insertValueRange(value, target)
	return err
}

// Get returns the value stored at point p. ok is false when p lies
// outside the governed rectangle.
func (qt *Quadtree[T]) Get(p Point) (value T, ok bool) {
	if !qt.root.bounds.Contains(p) {
		var zero T
		return zero, false
	}
	return qt.root.readValue(p)
}

// Leaves returns the number of uniform regions the tree currently
// stores. A fully uniform tree has exactly one.
func (qt *Quadtree[T]) Leaves() int {
	return qt.root.leaves()
}

// String returns a summary description of the tree.
func (qt *Quadtree[T]) String() string {
	return fmt.Sprintf("Quadtree{Bounds:%s,Leaves:%d}", qt.root.bounds, qt.Leaves())
}
