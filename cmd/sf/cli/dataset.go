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

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/madronegeo/sf"
	"github.com/madronegeo/sf/geom"
	"github.com/madronegeo/sf/internal/packers"
)

// OpenDataset reads the dataset at path with a progress bar on stderr.
// Format and compression are inferred from the file name; opts may extend or
// override them.
func OpenDataset(path string, opts ...sf.DatasetOption) (*sf.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}

	return OpenDatasetFile(f, opts...)
}

// OpenDatasetFile reads a dataset from an already open file, wrapping it
// with a progress bar and inferring format and compression from its name.
// The file is consumed and closed.
func OpenDatasetFile(f *os.File, opts ...sf.DatasetOption) (*sf.Dataset, error) {
	format, err := sf.DetectFormat(f.Name())
	if err != nil {
		f.Close()

		return nil, err
	}

	in, err := WrapInputFile(f)
	if err != nil {
		f.Close()

		return nil, err
	}
	defer in.Close()

	inferred := []sf.DatasetOption{
		sf.WithFormat(format),
		sf.WithCompression(packers.ForPath(f.Name())),
	}

	return sf.ReadDataset(in, append(inferred, opts...)...)
}

// OpenDatasetOrStdin reads the dataset at path, or an uncompressed stream on
// stdin when path is empty.
func OpenDatasetOrStdin(path string, opts ...sf.DatasetOption) (*sf.Dataset, error) {
	if path == "" {
		return sf.ReadDataset(os.Stdin, opts...)
	}

	return OpenDataset(path, opts...)
}

// WriteCollection writes a collection to path, inferring format and
// compression from the name, or as GeoJSON on stdout when path is empty.
func WriteCollection(path string, fc geom.FeatureCollection, opts ...sf.DatasetOption) error {
	if path == "" {
		return sf.WriteDataset(os.Stdout, fc, opts...)
	}

	return sf.WriteDatasetFile(path, fc, opts...)
}

// CreateOutput opens path for writing, or hands back stdout when path is
// empty. The returned func flushes and closes the sink; stdout is left open.
func CreateOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create output: %w", err)
	}

	return f, f.Close, nil
}
