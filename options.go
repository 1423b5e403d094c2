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
	"runtime"
)

const (
	// DefaultSegments is the default number of edges used to approximate a
	// full circular arc in buffer construction.
	DefaultSegments = 64

	// MinSegments is the smallest accepted arc approximation; coarser
	// values are raised to it.
	MinSegments = 8
)

// DefaultNCpu provides the default number of CPUs used for matrix row
// processing.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// matrixOptions provides optional configuration parameters for pairwise
// matrix construction.
type matrixOptions struct {
	nCPU      uint16 // the number of goroutines computing matrix rows
	prefilter bool   // bounding-box pre-filter in front of exact tests
}

// MatrixOption configures how pairwise matrices are computed.
type MatrixOption func(*matrixOptions)

// WithWorkers lets you set the number of goroutines computing matrix rows.
func WithWorkers(n uint16) MatrixOption {
	return func(o *matrixOptions) {
		o.nCPU = max(n, 1)
	}
}

// WithoutPrefilter disables the bounding-box pre-filter in front of the
// exact predicate tests. The pre-filter never changes results; disabling it
// exists for verifying exactly that.
func WithoutPrefilter() MatrixOption {
	return func(o *matrixOptions) {
		o.prefilter = false
	}
}

// defaultMatrixConfig provides a default configuration for matrix
// construction.
var defaultMatrixConfig = matrixOptions{
	nCPU:      DefaultNCpu(),
	prefilter: true,
}

// bufferOptions provides optional configuration parameters for buffer
// construction.
type bufferOptions struct {
	segments int // edges approximating a full circle
}

// BufferOption configures how buffers are constructed.
type BufferOption func(*bufferOptions)

// WithSegments lets you set the number of edges used to approximate a full
// circular arc. More segments track the true offset curve more closely;
// values below MinSegments are raised to MinSegments.
func WithSegments(n int) BufferOption {
	return func(o *bufferOptions) {
		o.segments = max(n, MinSegments)
	}
}

// defaultBufferConfig provides a default configuration for buffers.
var defaultBufferConfig = bufferOptions{
	segments: DefaultSegments,
}
