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

package geom

import (
	"fmt"
)

// Feature pairs a geometry with its non-spatial attributes. Features are
// immutable; appending a derived attribute produces a new Feature so that
// provenance stays clear.
type Feature struct {
	geometry Geometry
	props    map[string]any
}

// NewFeature constructs a Feature. The property map is copied.
func NewFeature(g Geometry, props map[string]any) Feature {
	cp := make(map[string]any, len(props))
	for k, v := range props {
		cp[k] = v
	}

	return Feature{geometry: g, props: cp}
}

// Geometry reports the feature's geometry.
func (f Feature) Geometry() Geometry { return f.geometry }

// Properties reports a copy of the feature's attributes.
func (f Feature) Properties() map[string]any {
	cp := make(map[string]any, len(f.props))
	for k, v := range f.props {
		cp[k] = v
	}

	return cp
}

// NumProperties is the attribute count.
func (f Feature) NumProperties() int { return len(f.props) }

// WithProperty returns a copy of the feature with one attribute added or
// replaced.
func (f Feature) WithProperty(key string, value any) Feature {
	cp := f.Properties()
	cp[key] = value

	return Feature{geometry: f.geometry, props: cp}
}

// Property returns an attribute value by key.
func (f Feature) Property(key string) (any, bool) {
	v, ok := f.props[key]

	return v, ok
}

// StringProperty returns an attribute as a string, or "" when absent or of
// another type.
func (f Feature) StringProperty(key string) string {
	if v, ok := f.props[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// FloatProperty returns a numeric attribute as float64, or 0 when absent.
func (f Feature) FloatProperty(key string) float64 {
	if v, ok := f.props[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}

	return 0
}

// FeatureCollection is an ordered sequence of features sharing one
// coordinate reference system.
type FeatureCollection struct {
	srid     SRID
	features []Feature
}

// NewFeatureCollection constructs a FeatureCollection, validating that every
// feature carries the collection's SRID.
func NewFeatureCollection(srid SRID, features ...Feature) (FeatureCollection, error) {
	cp := make([]Feature, len(features))

	for i, f := range features {
		if f.geometry == nil {
			return FeatureCollection{}, fmt.Errorf("%w: feature %d has no geometry", ErrInvalidGeometry, i)
		}

		if got := f.geometry.SRID(); got != srid {
			return FeatureCollection{}, fmt.Errorf("%w: feature %d has SRID %d, collection has %d", ErrCRSMismatch, i, got, srid)
		}

		cp[i] = f
	}

	return FeatureCollection{srid: srid, features: cp}, nil
}

// SRID reports the coordinate reference system shared by all features.
func (c FeatureCollection) SRID() SRID { return c.srid }

// Len is the feature count.
func (c FeatureCollection) Len() int { return len(c.features) }

// At reports the i-th feature.
func (c FeatureCollection) At(i int) Feature { return c.features[i] }

// Features reports a copy of the feature sequence.
func (c FeatureCollection) Features() []Feature {
	cp := make([]Feature, len(c.features))
	copy(cp, c.features)

	return cp
}

// Append returns a new collection extended with the given features, each of
// which must carry the collection's SRID.
func (c FeatureCollection) Append(features ...Feature) (FeatureCollection, error) {
	ext := make([]Feature, 0, len(c.features)+len(features))
	ext = append(ext, c.features...)

	for i, f := range features {
		if f.geometry == nil {
			return FeatureCollection{}, fmt.Errorf("%w: feature %d has no geometry", ErrInvalidGeometry, i)
		}

		if got := f.geometry.SRID(); got != c.srid {
			return FeatureCollection{}, fmt.Errorf("%w: feature %d has SRID %d, collection has %d", ErrCRSMismatch, i, got, c.srid)
		}

		ext = append(ext, f)
	}

	return FeatureCollection{srid: c.srid, features: ext}, nil
}

// Filter returns the sub-sequence of features satisfying pred, preserving
// order.
func (c FeatureCollection) Filter(pred func(Feature) bool) FeatureCollection {
	kept := make([]Feature, 0, len(c.features))

	for _, f := range c.features {
		if pred(f) {
			kept = append(kept, f)
		}
	}

	return FeatureCollection{srid: c.srid, features: kept}
}

// Bound reports the bounding box covering every feature.
func (c FeatureCollection) Bound() Bound {
	b := EmptyBound()
	for _, f := range c.features {
		b.ExpandWithBound(f.geometry.Bound())
	}

	return *b
}
