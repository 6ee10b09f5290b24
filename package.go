// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadgrid provides a region quadtree mapping every integer
// grid coordinate within a bounded rectangle to a value, using
// hierarchical subdivision to store large uniform regions compactly.
//
// A Quadtree is created over a fixed rectangle and a default value.
// Point writes (Insert), rectangle writes (InsertRect), point reads
// (Get) and full-grid iteration (Iter) are supported. The tree is
// always maximally consolidated: whenever the four quadrants of a
// subdivided region end up holding the same value, they collapse back
// into a single node.
//
// The tree performs no internal synchronization. Mutating operations
// require exclusive access to the Quadtree; callers sharing a tree
// across goroutines must serialize access externally.
package quadgrid
