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

// Package packers provides the stream compression codecs understood by the
// dataset readers and writers.
package packers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Compression is an enumeration of stream compression codecs.
type Compression int32

const (
	// None denotes an uncompressed stream.
	None Compression = iota

	// Gzip denotes a gzip stream.
	Gzip

	// Zstd denotes a Zstandard stream.
	Zstd

	// Lz4 denotes an LZ4 frame stream.
	Lz4

	// Xz denotes an xz stream.
	Xz
)

// ErrUnknownCompression is returned when a compression codec is not
// recognized.
var ErrUnknownCompression = errors.New("unknown compression")

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Lz4:
		return "lz4"
	case Xz:
		return "xz"
	default:
		return fmt.Sprintf("Compression(%d)", int32(c))
	}
}

// Extension is the conventional file name suffix for the codec, empty for
// None.
func (c Compression) Extension() string {
	switch c {
	case Gzip:
		return ".gz"
	case Zstd:
		return ".zst"
	case Lz4:
		return ".lz4"
	case Xz:
		return ".xz"
	default:
		return ""
	}
}

// ForPath infers the compression codec from the file name extension, None
// when the extension is not a recognized compression suffix.
func ForPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	case ".lz4":
		return Lz4
	case ".xz":
		return Xz
	default:
		return None
	}
}

// NewReader wraps r with the decompressor for c. The caller must close the
// returned reader to release codec resources; closing it does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return newGzipReader(r)
	case Zstd:
		return newZstdReader(r)
	case Lz4:
		return newLz4Reader(r)
	case Xz:
		return newXzReader(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

// NewWriter wraps w with the compressor for c. The caller must close the
// returned writer to flush the codec; closing it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return newRawWriter(w)
	case Gzip:
		return newGzipWriter(w)
	case Zstd:
		return newZstdWriter(w)
	case Lz4:
		return newLz4Writer(w)
	case Xz:
		return newXzWriter(w)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}
