// Copyright 2024 The quadgrid (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadgrid

import (
	"math/rand"
	"testing"
)

func BenchmarkQuadtree_Insert(b *testing.B) {
	qt, err := New(Point{0, 0}, Point{1023, 1023}, 0)
	if err != nil {
		b.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := Point{rnd.Intn(1024), rnd.Intn(1024)}
		if err := qt.Insert(i&7, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuadtree_InsertRect(b *testing.B) {
	qt, err := New(Point{0, 0}, Point{1023, 1023}, 0)
	if err != nil {
		b.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		min := Point{rnd.Intn(1000), rnd.Intn(1000)}
		r := Rect{min, Point{min.X + rnd.Intn(24), min.Y + rnd.Intn(24)}}
		if err := qt.InsertRect(i&7, r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuadtree_Get(b *testing.B) {
	qt, err := New(Point{0, 0}, Point{1023, 1023}, 0)
	if err != nil {
		b.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 4096; i++ {
		p := Point{rnd.Intn(1024), rnd.Intn(1024)}
		if err := qt.Insert(i&7, p); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		qt.Get(Point{rnd.Intn(1024), rnd.Intn(1024)})
	}
}

func BenchmarkIterator(b *testing.B) {
	qt, err := New(Point{0, 0}, Point{255, 255}, 0)
	if err != nil {
		b.Fatal(err)
	}
	if err := qt.InsertRect(1, Rect{Point{16, 16}, Point{200, 77}}); err != nil {
		b.Fatal(err)
	}
	var sink int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := qt.Iter()
		for it.Next() {
			sink += it.Value()
		}
	}
	_ = sink
}
