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

// matbench times a single dense square matrix multiply and prints one
// result line to stdout.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/matbench/bench"
	"github.com/ajroetker/matbench/matmul"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matbench N threads mode [blockSize]",
		Short: "Benchmark one dense square matrix multiply",
		Long: `matbench times a single N x N float64 matrix multiply and prints one
result line with the elapsed time and a checksum of the product.

Modes (single character, case-insensitive):
  s  naive serial triple loop
  n  library-optimized (BLAS) multiply
  b  cache-blocked multiply, tile width blockSize (default 64)

The threads argument is forwarded to the numeric library via
OMP_NUM_THREADS, OPENBLAS_NUM_THREADS and GOMAXPROCS; it is a hint
and may be ignored.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := bench.DefaultsFromEnv()
			if err != nil {
				return err
			}
			logger, err := newLogger(defs.LogLevel)
			if err != nil {
				return err
			}
			cfg, err := parseConfig(args, defs)
			if err != nil {
				return err
			}
			res, err := bench.New(cfg, logger).Run()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bench.ReportLine(cfg, res))
			return nil
		},
	}
}

// parseConfig turns the positional arguments N, threads, mode and the
// optional blockSize into a validated run configuration.
func parseConfig(args []string, defs bench.Defaults) (bench.Config, error) {
	n, err := parsePositive("N", args[0])
	if err != nil {
		return bench.Config{}, err
	}
	threads, err := parsePositive("threads", args[1])
	if err != nil {
		return bench.Config{}, err
	}
	mode, err := matmul.ParseMode(args[2])
	if err != nil {
		return bench.Config{}, err
	}
	blockSize := defs.BlockSize
	if len(args) >= 4 {
		if blockSize, err = parsePositive("blockSize", args[3]); err != nil {
			return bench.Config{}, err
		}
	}

	cfg := bench.Config{N: n, Threads: threads, Mode: mode, BlockSize: blockSize}
	return cfg, cfg.Validate()
}

func parsePositive(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}

// newLogger builds the stderr text logger. Stdout stays reserved for
// the result line.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
