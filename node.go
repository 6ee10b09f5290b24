// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadgrid

// A node is one region of the governed rectangle. A node whose kids
// pointer is nil is a leaf and holds one value for every cell in its
// bounds. A node with a non-nil kids pointer is a branch whose four
// children exactly tile its bounds, in splitRect order.
type node[T comparable] struct {
	bounds Rect
	value  T // leaf payload, meaningful only while kids == nil
	kids   *[4]node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.kids == nil
}

// split subdivides a leaf at the midpoint of its bounds, producing
// four child leaves that inherit the parent's value. Splitting a
// branch is a no-op. Returns ErrCannotSplit, leaving the node
// untouched, when the bounds are a single cell wide or tall.
func (n *node[T]) split() error {
	if !n.isLeaf() {
		return nil
	}
	if !n.bounds.splittable() {
		return ErrCannotSplit
	}
	quads := splitRect(n.bounds, n.bounds.midX(), n.bounds.midY())
	if len(quads) != 4 {
		fmtPanic("logic error: split of %s produced %d quadrants", n.bounds, len(quads))
	}
	var kids [4]node[T]
	for i := range quads {
		kids[i] = node[T]{bounds: quads[i], value: n.value}
	}
	n.kids = &kids
	return nil
}

// consolidate collapses a branch into a leaf carrying the first
// child's value, discarding the children. The caller must have
// verified that the children are uniform: consolidate itself performs
// no check. Consolidating a leaf is a no-op.
func (n *node[T]) consolidate() {
	if n.isLeaf() {
		return
	}
	n.value = n.kids[0].value
	n.kids = nil
}

// readValue resolves the value stored at p. A leaf answers for any
// point, trusting the recursion context; a branch descends into the
// child containing p. ok is false only when no child contains p,
// which is reachable only for points outside the governed rectangle.
func (n *node[T]) readValue(p Point) (value T, ok bool) {
	if n.isLeaf() {
		return n.value, true
	}
	for i := range n.kids {
		if n.kids[i].bounds.Contains(p) {
			return n.kids[i].readValue(p)
		}
	}
	var zero T
	return zero, false
}

// insertValue writes value at p, subdividing leaves on the way down
// and consolidating on the way back up when the touched quadrant left
// all four children as leaves equal to the inserted value. It reports
// whether n is a leaf after the call, which the parent uses to decide
// whether consolidating is worth attempting.
func (n *node[T]) insertValue(value T, p Point) (bool, error) {
	if n.bounds.Min == p && n.bounds.Max == p {
		n.value = value
		return true, nil
	}
	if err := n.split(); err != nil {
		return false, err
	}
	child := -1
	for i := range n.kids {
		if n.kids[i].bounds.Contains(p) {
			child = i
			break
		}
	}
	if child < 0 {
		fmtPanic("logic error: no quadrant of %s contains %s", n.bounds, p)
	}
	childIsLeaf, err := n.kids[child].insertValue(value, p)
	if err != nil {
		return false, err
	}
	if childIsLeaf && n.uniformValue(value) {
		n.consolidate()
	}
	return n.isLeaf(), nil
}

// insertValueRange writes value to every cell of r, which must lie
// within n's bounds. A target covering the bounds exactly replaces the
// whole subtree with a single leaf. Return semantics mirror
// insertValue.
func (n *node[T]) insertValueRange(value T, r Rect) (bool, error) {
	if n.bounds == r {
		n.value = value
		n.kids = nil
		return true, nil
	}
	if err := n.split(); err != nil {
		return false, err
	}
	for i := range n.kids {
		overlap, ok := intersect(n.kids[i].bounds, r)
		if !ok {
			continue
		}
		if _, err := n.kids[i].insertValueRange(value, overlap); err != nil {
			return false, err
		}
	}
	// Unlike point insertion, range insertion merges on mutual
	// equality among the children rather than equality to the
	// inserted value.
	if n.uniform() {
		n.consolidate()
	}
	return n.isLeaf(), nil
}

// uniformValue reports whether all four children are leaves holding v.
func (n *node[T]) uniformValue(v T) bool {
	for i := range n.kids {
		if !n.kids[i].isLeaf() || n.kids[i].value != v {
			return false
		}
	}
	return true
}

// uniform reports whether all four children are leaves holding the
// same value as one another.
func (n *node[T]) uniform() bool {
	for i := range n.kids {
		if !n.kids[i].isLeaf() || n.kids[i].value != n.kids[0].value {
			return false
		}
	}
	return true
}

// leaves counts the leaf nodes in the subtree rooted at n.
func (n *node[T]) leaves() int {
	if n.isLeaf() {
		return 1
	}
	var sum int
	for i := range n.kids {
		sum += n.kids[i].leaves()
	}
	return sum
}

// checkPoint verifies that a point write descending from bounds can
// reach p without hitting a degenerate split. Quadrant geometry is
// deterministic, so the check needs no access to the nodes themselves
// and can run before any mutation. The caller guarantees that bounds
// contains p.
func checkPoint(bounds Rect, p Point) error {
	for bounds.Min != p || bounds.Max != p {
		if !bounds.splittable() {
			return ErrCannotSplit
		}
		quads := splitRect(bounds, bounds.midX(), bounds.midY())
		next := -1
		for i := range quads {
			if quads[i].Contains(p) {
				next = i
				break
			}
		}
		if next < 0 {
			fmtPanic("logic error: no quadrant of %s contains %s", bounds, p)
		}
		bounds = quads[next]
	}
	return nil
}

// checkRange verifies that writing r into a subtree covering bounds
// cannot hit a degenerate split, by the same geometric argument as
// checkPoint. The caller guarantees that r lies within bounds.
func checkRange(bounds, r Rect) error {
	if bounds == r {
		return nil
	}
	if !bounds.splittable() {
		return ErrCannotSplit
	}
	for _, q := range splitRect(bounds, bounds.midX(), bounds.midY()) {
		if overlap, ok := intersect(q, r); ok {
			if err := checkRange(q, overlap); err != nil {
				return err
			}
		}
	}
	return nil
}
