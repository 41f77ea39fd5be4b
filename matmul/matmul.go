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

// Package matmul implements the multiply strategies compared by the
// benchmark: the naive triple loop, a BLAS-backed library call, and a
// cache-blocked variant. All strategies compute the same product
// C[i,j] = sum(A[i,k] * B[k,j]) and must agree within floating-point
// accumulation tolerance.
package matmul

import (
	"fmt"
	"strings"

	"github.com/ajroetker/matbench/matrix"
)

// A Multiplier computes dst = a * b for square matrices of equal
// dimension. The interface is deliberately narrow so the BLAS-backed
// strategy can be swapped for a reference implementation in tests.
//
// Implementations panic if the dimensions disagree; the driver
// validates the configuration before dispatch.
type Multiplier interface {
	Multiply(dst, a, b *matrix.Matrix)
	Name() string
}

// Mode identifies a multiply strategy by its single-character CLI code.
type Mode byte

const (
	ModeNaive   Mode = 's'
	ModeLibrary Mode = 'n'
	ModeBlocked Mode = 'b'
)

// ParseMode interprets a CLI mode argument. Only the first byte is
// significant and case is ignored, so "b", "B" and "blocked" all
// select the blocked strategy.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return 0, fmt.Errorf("matmul: empty mode")
	}
	switch m := Mode(strings.ToLower(s)[0]); m {
	case ModeNaive, ModeLibrary, ModeBlocked:
		return m, nil
	default:
		return 0, fmt.Errorf("matmul: invalid mode %q (use s, n, or b)", s)
	}
}

// ForMode returns the Multiplier selected by mode. blockSize is used
// only by the blocked strategy; a non-positive value falls back to
// DefaultBlockSize.
func ForMode(mode Mode, blockSize int) (Multiplier, error) {
	switch mode {
	case ModeNaive:
		return Naive{}, nil
	case ModeLibrary:
		return Library{}, nil
	case ModeBlocked:
		return Blocked{BlockSize: blockSize}, nil
	default:
		return nil, fmt.Errorf("matmul: invalid mode %q (use s, n, or b)", string(mode))
	}
}

func checkDims(dst, a, b *matrix.Matrix) int {
	n := a.N
	if b.N != n || dst.N != n {
		panic("matmul: dimension mismatch")
	}
	return n
}
