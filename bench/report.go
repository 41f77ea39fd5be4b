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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/matbench/matmul"
)

// ReportLine formats the single stdout line for a completed run. The
// field order and precision are fixed so result scrapers can parse it:
// N, threads, mode code, block size, seconds, checksum.
func ReportLine(cfg Config, res Result) string {
	return fmt.Sprintf("N=%d threads=%d mode=%c BS=%d time=%.6f sum=%.6f",
		cfg.N, cfg.Threads, byte(cfg.Mode), cfg.BlockSize,
		res.Elapsed.Seconds(), res.Checksum)
}

var titleCaser = cases.Title(language.English)

// StrategyTitle returns the multiplier's display name for log output,
// e.g. "Blocked" for the blocked strategy.
func StrategyTitle(m matmul.Multiplier) string {
	return titleCaser.String(m.Name())
}
