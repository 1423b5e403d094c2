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

package sf

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/destel/rill"
	"golang.org/x/exp/constraints"

	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/internal/index"
	"github.com/madronegeo/sf/unit"
)

// Number constrains the cell types a dense matrix can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dense is an immutable row-major matrix.
type Dense[T Number] struct {
	rows  int
	cols  int
	cells []T
}

func newDense[T Number](rows, cols int) *Dense[T] {
	return &Dense[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

// Rows is the row count.
func (d *Dense[T]) Rows() int { return d.rows }

// Cols is the column count.
func (d *Dense[T]) Cols() int { return d.cols }

// At reports the cell at row i, column j.
func (d *Dense[T]) At(i, j int) T { return d.cells[i*d.cols+j] }

// WriteCSV writes the matrix as headerless CSV, one row per line.
func (d *Dense[T]) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	record := make([]string, d.cols)

	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			record[j] = fmt.Sprint(d.At(i, j))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write matrix row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Distances is a dense pairwise distance matrix, every cell expressed in the
// length unit of the collections' shared coordinate reference system.
type Distances struct {
	*Dense[float64]

	unit unit.Unit
}

// Unit reports the length unit every cell is expressed in.
func (d *Distances) Unit() unit.Unit { return d.unit }

// Measure reports the cell at row i, column j as a tagged measure.
func (d *Distances) Measure(i, j int) unit.Measure {
	return unit.New(d.At(i, j), d.unit)
}

// Convert returns a copy of the matrix with every cell expressed in the
// given length unit.
func (d *Distances) Convert(to unit.Unit) (*Distances, error) {
	scale, err := unit.New(1, d.unit).Convert(to)
	if err != nil {
		return nil, err
	}

	out := &Distances{Dense: newDense[float64](d.rows, d.cols), unit: to}
	for i, v := range d.cells {
		out.cells[i] = v * scale.Value
	}

	return out, nil
}

// WriteCSV writes the matrix as headerless CSV with plain decimal cells.
func (d *Distances) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	record := make([]string, d.Cols())

	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			record[j] = strconv.FormatFloat(d.At(i, j), 'f', -1, 64)
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write matrix row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Relation is a sparse boolean pairwise matrix: for every row feature, the
// ascending set of column features it relates to. Row and column indices
// are zero-based; an empty set is a valid answer, not an error.
type Relation struct {
	rows int
	cols int
	sets [][]int
}

// Rows is the row count.
func (r *Relation) Rows() int { return r.rows }

// Cols is the column count.
func (r *Relation) Cols() int { return r.cols }

// Related reports the ascending column indices related to row i.
func (r *Relation) Related(i int) []int {
	cp := make([]int, len(r.sets[i]))
	copy(cp, r.sets[i])

	return cp
}

// Has reports whether row i relates to column j.
func (r *Relation) Has(i, j int) bool {
	set := r.sets[i]
	k := sort.SearchInts(set, j)

	return k < len(set) && set[k] == j
}

// Count is the total number of related pairs.
func (r *Relation) Count() int {
	n := 0
	for _, set := range r.sets {
		n += len(set)
	}

	return n
}

// Dense expands the relation to a 0/1 matrix.
func (r *Relation) Dense() *Dense[uint8] {
	d := newDense[uint8](r.rows, r.cols)

	for i, set := range r.sets {
		for _, j := range set {
			d.cells[i*r.cols+j] = 1
		}
	}

	return d
}

// WriteCSV writes the relation in dense 0/1 CSV form.
func (r *Relation) WriteCSV(w io.Writer) error {
	return r.Dense().WriteCSV(w)
}

// WritePairsCSV writes the relation as a sparse pair list with a "row,col"
// header, one related pair per line in row-major order.
func (r *Relation) WritePairsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"row", "col"}); err != nil {
		return fmt.Errorf("could not write pair header: %w", err)
	}

	for i, set := range r.sets {
		for _, j := range set {
			if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(j)}); err != nil {
				return fmt.Errorf("could not write pair (%d, %d): %w", i, j, err)
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

// DistanceMatrix measures the distance from every feature of a to every
// feature of b. Rows are computed in parallel; the result is identical to
// the serial row-by-row loop. Both collections must share one projected
// coordinate reference system.
func DistanceMatrix(a, b geom.FeatureCollection, opts ...MatrixOption) (*Distances, error) {
	cfg := defaultMatrixConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if a.SRID() != b.SRID() {
		return nil, fmt.Errorf("%w: SRID %d vs %d", geom.ErrCRSMismatch, a.SRID(), b.SRID())
	}

	c, err := requirePlanar(a.SRID())
	if err != nil {
		return nil, err
	}

	d := &Distances{Dense: newDense[float64](a.Len(), b.Len()), unit: c.Unit}

	err = forEachRow(a.Len(), cfg.nCPU, func(i int) ([]float64, error) {
		cells := make([]float64, b.Len())
		ga := a.At(i).Geometry()

		for j := 0; j < b.Len(); j++ {
			cells[j] = planarDistance(ga, b.At(j).Geometry())
		}

		return cells, nil
	}, func(i int, cells []float64) {
		copy(d.cells[i*d.cols:(i+1)*d.cols], cells)
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

// IntersectsMatrix relates every feature of a to the features of b it
// intersects, boundaries included. Both collections must share one
// coordinate reference system.
func IntersectsMatrix(a, b geom.FeatureCollection, opts ...MatrixOption) (*Relation, error) {
	return relationMatrix(a, b, intersects, opts)
}

// WithinMatrix relates every feature of a to the features of b it lies
// within, boundaries included. Both collections must share one coordinate
// reference system.
func WithinMatrix(a, b geom.FeatureCollection, opts ...MatrixOption) (*Relation, error) {
	return relationMatrix(a, b, within, opts)
}

// relationMatrix evaluates pred for every feature pair, pruning pairs whose
// bounding boxes are disjoint first. Both predicates imply overlapping
// bounds, so the pruning cannot change the result.
func relationMatrix(a, b geom.FeatureCollection, pred func(x, y geom.Geometry) bool, opts []MatrixOption) (*Relation, error) {
	cfg := defaultMatrixConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if a.SRID() != b.SRID() {
		return nil, fmt.Errorf("%w: SRID %d vs %d", geom.ErrCRSMismatch, a.SRID(), b.SRID())
	}

	var tree *index.Tree

	if cfg.prefilter {
		bounds := make([]geom.Bound, b.Len())
		for j := 0; j < b.Len(); j++ {
			bounds[j] = b.At(j).Geometry().Bound()
		}

		tree = index.Build(bounds)
	}

	rel := &Relation{rows: a.Len(), cols: b.Len(), sets: make([][]int, a.Len())}

	err := forEachRow(a.Len(), cfg.nCPU, func(i int) ([]int, error) {
		ga := a.At(i).Geometry()

		var candidates []int
		if tree != nil {
			candidates = tree.Search(ga.Bound())
			sort.Ints(candidates)
		} else {
			candidates = make([]int, b.Len())
			for j := range candidates {
				candidates[j] = j
			}
		}

		set := make([]int, 0, len(candidates))

		for _, j := range candidates {
			if pred(ga, b.At(j).Geometry()) {
				set = append(set, j)
			}
		}

		return set, nil
	}, func(i int, set []int) {
		rel.sets[i] = set
	})
	if err != nil {
		return nil, err
	}

	return rel, nil
}

// indexed pairs a row index with its computed cells so that parallel rows
// land in their right place.
type indexed[T any] struct {
	i     int
	cells T
}

// forEachRow computes f for every row index on n goroutines and hands the
// results to sink in arbitrary order; sink runs on a single goroutine.
func forEachRow[T any](rows int, n uint16, f func(i int) (T, error), sink func(i int, cells T)) error {
	ids := make([]int, rows)
	for i := range ids {
		ids[i] = i
	}

	computed := rill.OrderedMap(rill.FromSlice(ids, nil), int(n), func(i int) (indexed[T], error) {
		cells, err := f(i)
		if err != nil {
			return indexed[T]{}, fmt.Errorf("row %d: %w", i, err)
		}

		return indexed[T]{i: i, cells: cells}, nil
	})

	return rill.ForEach(computed, 1, func(row indexed[T]) error {
		sink(row.i, row.cells)

		return nil
	})
}
