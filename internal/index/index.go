// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index provides an in-memory R-tree over feature bounding boxes,
// used to prune candidate pairs before exact geometry tests.
package index

import (
	"github.com/tidwall/rtree"

	"github.com/madronegeo/sf/geom"
)

// Tree indexes bounding boxes keyed by the position of each feature in its
// collection. The zero value is empty and ready to use.
type Tree struct {
	tree rtree.RTreeG[int]
}

// Build indexes every bound under its slice position. Empty bounds are
// skipped; they can never satisfy a box query.
func Build(bounds []geom.Bound) *Tree {
	t := &Tree{}

	for i, b := range bounds {
		t.Insert(i, b)
	}

	return t
}

// Insert adds a bound under the given position.
func (t *Tree) Insert(i int, b geom.Bound) {
	if b.IsEmpty() {
		return
	}

	t.tree.Insert(b.Min(), b.Max(), i)
}

// Search reports the positions of all indexed bounds intersecting the query
// box, in no particular order.
func (t *Tree) Search(b geom.Bound) []int {
	hits := make([]int, 0)

	t.tree.Search(b.Min(), b.Max(), func(_, _ [2]float64, i int) bool {
		hits = append(hits, i)
		return true
	})

	return hits
}

// SearchPadded reports the positions of all indexed bounds within pad of the
// query box. A pad of zero is a plain intersection search.
func (t *Tree) SearchPadded(b geom.Bound, pad float64) []int {
	q := geom.Bound{
		MinX: b.MinX - pad,
		MinY: b.MinY - pad,
		MaxX: b.MaxX + pad,
		MaxY: b.MaxY + pad,
	}

	return t.Search(q)
}

// Len is the number of indexed bounds.
func (t *Tree) Len() int {
	return t.tree.Len()
}
