// Copyright 2026 matbench Authors
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

package matmul

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/ajroetker/matbench/matrix"
)

// Library delegates the full multiply to the registered BLAS dgemm.
// Its internal algorithm and thread usage are opaque here; the driver
// forwards the thread-count hint before this is called, and the
// library is free to ignore it.
type Library struct{}

func (Library) Name() string { return "library" }

// Multiply computes dst = 1*a*b + 0*dst via dgemm on zero-copy views
// of the row-major backing slices.
func (Library) Multiply(dst, a, b *matrix.Matrix) {
	n := checkDims(dst, a, b)
	blas64.Gemm(blas.NoTrans, blas.NoTrans,
		1,
		blas64.General{Rows: n, Cols: n, Stride: n, Data: a.Data},
		blas64.General{Rows: n, Cols: n, Stride: n, Data: b.Data},
		0,
		blas64.General{Rows: n, Cols: n, Stride: n, Data: dst.Data})
}
