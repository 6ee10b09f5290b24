// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadgrid

// An Iterator walks every cell of the governed rectangle in row-major
// order: for each row from Min.Y to Max.Y, each column from Min.X to
// Max.X. It is forward-only and not restartable; obtain a fresh one
// from Iter to walk again.
//
// Each step resolves the current cell with a full root-to-leaf lookup,
// so iteration observes mutations made between calls to Next.
type Iterator[T comparable] struct {
	qt   *Quadtree[T]
	next Point
	at   Point
	val  T
	done bool
}

// Iter returns an iterator positioned before the first cell of the
// governed rectangle. Call Next to advance it.
func (qt *Quadtree[T]) Iter() *Iterator[T] {
	return &Iterator[T]{qt: qt, next: qt.root.bounds.Min}
}

// Next advances the iterator to the next cell and reports whether one
// was available. Once Next returns false it keeps returning false.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	val, ok := it.qt.root.readValue(it.next)
	if !ok {
		textPanic("logic error: iterator cursor outside governed bounds")
	}
	it.at, it.val = it.next, val

	bounds := it.qt.root.bounds
	switch {
	case it.next == bounds.Max:
		it.done = true
	case it.next.X == bounds.Max.X:
		it.next.X = bounds.Min.X
		it.next.Y++
	default:
		it.next.X++
	}
	return true
}

// Value returns the value at the iterator's current cell. It is only
// valid after a call to Next that returned true.
func (it *Iterator[T]) Value() T {
	return it.val
}

// At returns the coordinate of the iterator's current cell. It is only
// valid after a call to Next that returned true.
func (it *Iterator[T]) At() Point {
	return it.at
}
