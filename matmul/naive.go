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

import "github.com/ajroetker/matbench/matrix"

// Naive is the reference triple-loop multiply. Every other strategy's
// checksum must match this one within floating-point tolerance.
type Naive struct{}

func (Naive) Name() string { return "naive" }

// Multiply computes dst = a * b with the textbook i-j-k loop. The
// inner reduction runs in a local accumulator so each dst entry is
// written exactly once. O(n^3), no blocking, no parallelism.
func (Naive) Multiply(dst, a, b *matrix.Matrix) {
	n := checkDims(dst, a, b)
	for i := 0; i < n; i++ {
		aRow := a.Data[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += aRow[k] * b.Data[k*n+j]
			}
			dst.Data[i*n+j] = sum
		}
	}
}
