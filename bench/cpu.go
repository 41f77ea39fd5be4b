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
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// cpuSummary lists the SIMD features relevant to matmul throughput on
// the current architecture, for debug logging alongside timings.
func cpuSummary() string {
	feats := []string{runtime.GOARCH}
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasAVX512F {
			feats = append(feats, "avx512f")
		}
		if cpu.X86.HasAVX2 {
			feats = append(feats, "avx2")
		}
		if cpu.X86.HasFMA {
			feats = append(feats, "fma")
		}
		if cpu.X86.HasSSE42 {
			feats = append(feats, "sse4.2")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "neon")
		}
		if cpu.ARM64.HasSVE {
			feats = append(feats, "sve")
		}
		if cpu.ARM64.HasASIMDFHM {
			feats = append(feats, "fp16fml")
		}
	}
	return strings.Join(feats, ",")
}
