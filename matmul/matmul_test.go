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
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/matbench/matrix"
)

// maxRelError returns the largest relative entry-wise difference
// between got and want, with an absolute fallback near zero.
func maxRelError(got, want *matrix.Matrix) float64 {
	var maxErr float64
	for i := range want.Data {
		diff := math.Abs(got.Data[i] - want.Data[i])
		if mag := math.Abs(want.Data[i]); mag > 1 {
			diff /= mag
		}
		if diff > maxErr {
			maxErr = diff
		}
	}
	return maxErr
}

func randomMatrix(n int, rng *rand.Rand) *matrix.Matrix {
	m := matrix.New(n)
	for i := range m.Data {
		m.Data[i] = rng.Float64()*2 - 1
	}
	return m
}

func TestStrategiesAgreeOnPattern(t *testing.T) {
	sizes := []int{1, 2, 3, 5, 8, 16, 31, 64, 100}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			a := matrix.NewPattern(n, 1.0)
			b := matrix.NewPattern(n, 2.0)

			want := matrix.New(n)
			Naive{}.Multiply(want, a, b)

			got := matrix.New(n)
			Library{}.Multiply(got, a, b)
			if err := maxRelError(got, want); err > 1e-9 {
				t.Errorf("Library: max relative error %e exceeds 1e-9", err)
			}

			for _, bs := range []int{1, 3, 16, 64, n, n + 1} {
				got := matrix.New(n)
				Blocked{BlockSize: bs}.Multiply(got, a, b)
				if err := maxRelError(got, want); err > 1e-9 {
					t.Errorf("Blocked bs=%d: max relative error %e exceeds 1e-9", bs, err)
				}
			}
		})
	}
}

func TestStrategiesAgreeOnRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{7, 24, 50}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			a := randomMatrix(n, rng)
			b := randomMatrix(n, rng)

			want := matrix.New(n)
			Naive{}.Multiply(want, a, b)

			got := matrix.New(n)
			Library{}.Multiply(got, a, b)
			if err := maxRelError(got, want); err > 1e-9 {
				t.Errorf("Library: max relative error %e exceeds 1e-9", err)
			}

			got = matrix.New(n)
			Blocked{BlockSize: 16}.Multiply(got, a, b)
			if err := maxRelError(got, want); err > 1e-9 {
				t.Errorf("Blocked: max relative error %e exceeds 1e-9", err)
			}
		})
	}
}

func TestKnownProduct(t *testing.T) {
	// A = [[1,2],[3,4]], B = [[2,4],[6,8]] => C = [[14,20],[30,44]],
	// checksum 108.
	a := matrix.NewPattern(2, 1.0)
	b := matrix.NewPattern(2, 2.0)
	want := []float64{14, 20, 30, 44}

	mults := []Multiplier{
		Naive{},
		Library{},
		Blocked{BlockSize: 1},
		Blocked{BlockSize: 64},
	}
	for _, m := range mults {
		t.Run(m.Name(), func(t *testing.T) {
			c := matrix.New(2)
			m.Multiply(c, a, b)
			for i, w := range want {
				if math.Abs(c.Data[i]-w) > 1e-12 {
					t.Errorf("C[%d] = %g, want %g", i, c.Data[i], w)
				}
			}
			if sum := c.Checksum(); math.Abs(sum-108) > 1e-12 {
				t.Errorf("checksum = %g, want 108", sum)
			}
		})
	}
}

// Blocked accumulates across kk passes, so stale values in dst must
// not leak into the result.
func TestBlockedZeroesDst(t *testing.T) {
	a := matrix.NewPattern(4, 1.0)
	b := matrix.NewPattern(4, 2.0)

	want := matrix.New(4)
	Naive{}.Multiply(want, a, b)

	dirty := matrix.NewPattern(4, 9.0)
	Blocked{BlockSize: 2}.Multiply(dirty, a, b)
	if err := maxRelError(dirty, want); err > 1e-12 {
		t.Errorf("dirty dst: max relative error %e", err)
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "s", want: ModeNaive},
		{in: "S", want: ModeNaive},
		{in: "n", want: ModeLibrary},
		{in: "b", want: ModeBlocked},
		{in: "Blocked", want: ModeBlocked},
		{in: "x", wantErr: true},
		{in: "", wantErr: true},
		{in: "q", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q) = %q, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestForMode(t *testing.T) {
	for _, tc := range []struct {
		mode Mode
		name string
	}{
		{ModeNaive, "naive"},
		{ModeLibrary, "library"},
		{ModeBlocked, "blocked"},
	} {
		m, err := ForMode(tc.mode, 64)
		if err != nil {
			t.Fatalf("ForMode(%q): %v", tc.mode, err)
		}
		if m.Name() != tc.name {
			t.Errorf("ForMode(%q).Name() = %q, want %q", tc.mode, m.Name(), tc.name)
		}
	}

	if _, err := ForMode(Mode('x'), 64); err == nil {
		t.Error("ForMode('x') did not fail")
	}
}

func TestDimensionMismatchPanics(t *testing.T) {
	a := matrix.New(3)
	b := matrix.New(4)
	c := matrix.New(3)
	defer func() {
		if recover() == nil {
			t.Error("mismatched dimensions did not panic")
		}
	}()
	Naive{}.Multiply(c, a, b)
}
