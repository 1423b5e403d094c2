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

package crs

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/unit"
)

// registryFile is the YAML shape of a registry extension file:
//
//	systems:
//	  - srid: 5070
//	    name: NAD83 / Conus Albers
//	    kind: projected
//	    albers:
//	      standard_parallel_1: 29.5
//	      standard_parallel_2: 45.5
//	      latitude_origin: 23
//	      longitude_origin: -96
//	      false_easting: 0
//	      false_northing: 0
type registryFile struct {
	Systems []systemEntry `yaml:"systems"`
}

type systemEntry struct {
	SRID      int32        `yaml:"srid"`
	Name      string       `yaml:"name"`
	Kind      string       `yaml:"kind"`
	Ellipsoid *Ellipsoid   `yaml:"ellipsoid,omitempty"`
	Albers    *albersEntry `yaml:"albers,omitempty"`
}

type albersEntry struct {
	StandardParallel1 float64 `yaml:"standard_parallel_1"`
	StandardParallel2 float64 `yaml:"standard_parallel_2"`
	LatitudeOrigin    float64 `yaml:"latitude_origin"`
	LongitudeOrigin   float64 `yaml:"longitude_origin"`
	FalseEasting      float64 `yaml:"false_easting"`
	FalseNorthing     float64 `yaml:"false_northing"`
}

// LoadRegistry registers the coordinate reference systems described by a YAML
// document, returning the number added. Entries are validated the same way as
// Register; the first invalid entry fails the whole load.
func LoadRegistry(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parsing registry file: %w", err)
	}

	for i, sys := range file.Systems {
		c, err := sys.toCRS()
		if err != nil {
			return i, fmt.Errorf("registry entry %d: %w", i, err)
		}

		if err := Register(c); err != nil {
			return i, fmt.Errorf("registry entry %d: %w", i, err)
		}
	}

	return len(file.Systems), nil
}

// LoadRegistryFile is LoadRegistry reading from a file path.
func LoadRegistryFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return LoadRegistry(f)
}

func (s systemEntry) toCRS() (CRS, error) {
	c := CRS{
		SRID: geom.SRID(s.SRID),
		Name: s.Name,
	}

	if s.Ellipsoid != nil {
		if s.Ellipsoid.SemiMajor <= 0 || s.Ellipsoid.InverseFlattening <= 0 {
			return CRS{}, fmt.Errorf("%w: SRID %d has a degenerate ellipsoid", ErrUnsupportedCRS, s.SRID)
		}

		c.Ellipsoid = *s.Ellipsoid
	} else {
		c.Ellipsoid = GRS80
	}

	switch s.Kind {
	case "geographic":
		c.Kind = Geographic
	case "projected":
		c.Kind = Projected
		c.Unit = unit.Meter

		if s.Albers == nil {
			return CRS{}, fmt.Errorf("%w: projected SRID %d lacks an albers block", ErrUnsupportedCRS, s.SRID)
		}

		c.Albers = &AlbersParams{
			StandardParallel1: geom.Degrees(s.Albers.StandardParallel1),
			StandardParallel2: geom.Degrees(s.Albers.StandardParallel2),
			LatitudeOrigin:    geom.Degrees(s.Albers.LatitudeOrigin),
			LongitudeOrigin:   geom.Degrees(s.Albers.LongitudeOrigin),
			FalseEasting:      s.Albers.FalseEasting,
			FalseNorthing:     s.Albers.FalseNorthing,
		}
	default:
		return CRS{}, fmt.Errorf("%w: SRID %d has unknown kind %q", ErrUnsupportedCRS, s.SRID, s.Kind)
	}

	return c, nil
}
