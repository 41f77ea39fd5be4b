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

// Package matrix provides the dense square float64 matrix shared by
// all multiply strategies.
package matrix

import "gonum.org/v1/gonum/mat"

// Matrix is a dense square matrix stored row-major in a flat slice.
// Entry (i, j) lives at Data[i*N+j].
type Matrix struct {
	N    int
	Data []float64
}

// New returns a zeroed n x n matrix. Panics if n <= 0; the driver
// rejects non-positive dimensions before allocation.
func New(n int) *Matrix {
	if n <= 0 {
		panic("matrix: dimension must be positive")
	}
	return &Matrix{N: n, Data: make([]float64, n*n)}
}

// NewPattern returns an n x n matrix filled with a deterministic
// four-value cycle: the entry at linear index i is seed*((i&3)+1),
// so seed, 2*seed, 3*seed, 4*seed repeating in row-major order.
// Checksum comparisons across strategies rely on this exact pattern.
func NewPattern(n int, seed float64) *Matrix {
	m := New(n)
	for i := range m.Data {
		m.Data[i] = seed * float64((i&3)+1)
	}
	return m
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.N+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.N+j] = v }

// Zero clears every entry.
func (m *Matrix) Zero() {
	for i := range m.Data {
		m.Data[i] = 0
	}
}

// Dense returns a gonum view sharing this matrix's backing slice.
// Writes through either side are visible to the other.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.N, m.N, m.Data)
}

// Checksum returns the sum of all entries.
func (m *Matrix) Checksum() float64 {
	return mat.Sum(m.Dense())
}
