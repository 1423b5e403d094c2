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

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/madronegeo/sf/geom"
)

func box(minX, minY, maxX, maxY float64) geom.Bound {
	return geom.Bound{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func TestBuildAndSearch(t *testing.T) {
	tree := Build([]geom.Bound{
		box(0, 0, 10, 10),
		box(20, 20, 30, 30),
		box(5, 5, 15, 15),
	})

	assert.Equal(t, 3, tree.Len())

	assert.ElementsMatch(t, []int{0, 2}, tree.Search(box(8, 8, 9, 9)))
	assert.ElementsMatch(t, []int{1}, tree.Search(box(25, 25, 26, 26)))
	assert.Empty(t, tree.Search(box(100, 100, 110, 110)))

	// box intersection includes shared edges
	assert.ElementsMatch(t, []int{0, 2}, tree.Search(box(10, 10, 12, 12)))
}

func TestSearchPadded(t *testing.T) {
	tree := Build([]geom.Bound{
		box(0, 0, 10, 10),
		box(20, 0, 30, 10),
	})

	q := box(12, 0, 13, 10)

	assert.Empty(t, tree.Search(q))
	assert.ElementsMatch(t, []int{0}, tree.SearchPadded(q, 2))
	assert.ElementsMatch(t, []int{0, 1}, tree.SearchPadded(q, 7))
}

func TestBuildSkipsEmptyBounds(t *testing.T) {
	tree := Build([]geom.Bound{
		box(0, 0, 10, 10),
		*geom.EmptyBound(),
	})

	assert.Equal(t, 1, tree.Len())
	assert.ElementsMatch(t, []int{0}, tree.Search(box(-100, -100, 100, 100)))
}

func TestDegeneratePointBound(t *testing.T) {
	tree := Build([]geom.Bound{box(5, 5, 5, 5)})

	assert.ElementsMatch(t, []int{0}, tree.Search(box(0, 0, 10, 10)))
	assert.Empty(t, tree.Search(box(6, 6, 10, 10)))
}
