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

package bench

import (
	"fmt"
	"strconv"
)

// Environment hints honored by common BLAS builds. OMP_NUM_THREADS is
// the general OpenMP knob; OPENBLAS_NUM_THREADS is OpenBLAS-specific.
// Both receive the same value.
const (
	envOMPThreads      = "OMP_NUM_THREADS"
	envOpenBLASThreads = "OPENBLAS_NUM_THREADS"
)

// forwardThreadHint propagates the configured thread count to the
// numeric library before any timed work begins. The env vars cover
// cgo BLAS builds; GOMAXPROCS caps gonum's pure-Go dgemm workers.
// The hint is advisory and the library may ignore or cap it.
//
// The setters are injected so tests can observe the forwarded values
// without mutating real process state.
func forwardThreadHint(threads int, setenv func(key, value string) error, setMaxProcs func(int) int) error {
	v := strconv.Itoa(threads)
	if err := setenv(envOMPThreads, v); err != nil {
		return fmt.Errorf("bench: set %s: %w", envOMPThreads, err)
	}
	if err := setenv(envOpenBLASThreads, v); err != nil {
		return fmt.Errorf("bench: set %s: %w", envOpenBLASThreads, err)
	}
	setMaxProcs(threads)
	return nil
}
