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

// Package bench drives one timed matrix-multiply run: initialize,
// time, multiply, checksum, report. A single straight-line pipeline
// with no goroutines of its own; any parallelism happens inside the
// library multiplier.
package bench

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/ajroetker/matbench/matmul"
	"github.com/ajroetker/matbench/matrix"
)

// Operand seeds. Fixed so checksums are comparable across strategies
// and runs.
const (
	seedA = 1.0
	seedB = 2.0
)

// Result of a single run.
type Result struct {
	Elapsed  time.Duration
	Checksum float64
}

// Runner executes one benchmark run.
type Runner struct {
	cfg    Config
	logger *slog.Logger

	// Process-global setters, replaceable in tests.
	setenv      func(key, value string) error
	setMaxProcs func(int) int
}

// New returns a Runner for cfg. A nil logger falls back to
// slog.Default.
func New(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:         cfg,
		logger:      logger,
		setenv:      os.Setenv,
		setMaxProcs: runtime.GOMAXPROCS,
	}
}

// Run validates the configuration, forwards the thread hint, and times
// exactly one multiply of the patterned operands. The timed region
// contains nothing but the multiply itself.
func (r *Runner) Run() (Result, error) {
	if err := r.cfg.Validate(); err != nil {
		return Result{}, err
	}
	mult, err := matmul.ForMode(r.cfg.Mode, r.cfg.BlockSize)
	if err != nil {
		return Result{}, err
	}
	if err := forwardThreadHint(r.cfg.Threads, r.setenv, r.setMaxProcs); err != nil {
		return Result{}, err
	}

	r.logger.Debug("starting run",
		"n", r.cfg.N,
		"threads", r.cfg.Threads,
		"strategy", StrategyTitle(mult),
		"block_size", r.cfg.BlockSize,
		"cpu", cpuSummary(),
	)

	a := matrix.NewPattern(r.cfg.N, seedA)
	b := matrix.NewPattern(r.cfg.N, seedB)
	c := matrix.New(r.cfg.N)

	start := time.Now()
	mult.Multiply(c, a, b)
	elapsed := time.Since(start)

	res := Result{Elapsed: elapsed, Checksum: c.Checksum()}
	r.logger.Info("run complete",
		"strategy", StrategyTitle(mult),
		"elapsed", elapsed,
		"checksum", res.Checksum,
	)
	return res, nil
}
