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

	"github.com/caarlos0/env/v11"

	"github.com/ajroetker/matbench/matmul"
)

// Defaults are environment-supplied fallbacks for settings the CLI
// leaves optional.
type Defaults struct {
	BlockSize int    `env:"MATBENCH_BLOCK_SIZE" envDefault:"64"`
	LogLevel  string `env:"MATBENCH_LOG_LEVEL"  envDefault:"info"`
}

// DefaultsFromEnv reads the MATBENCH_* environment overrides.
func DefaultsFromEnv() (Defaults, error) {
	d := Defaults{}
	if err := env.Parse(&d); err != nil {
		return Defaults{}, fmt.Errorf("bench: parse environment: %w", err)
	}
	return d, nil
}

// Config describes one benchmark run. Immutable after parsing.
type Config struct {
	// N is the matrix dimension.
	N int
	// Threads is the parallelism hint forwarded to the numeric
	// library. Advisory only.
	Threads int
	// Mode selects the multiply strategy.
	Mode matmul.Mode
	// BlockSize is the tile width for the blocked strategy.
	BlockSize int
}

// Validate rejects any configuration the pipeline cannot run. All
// errors are reported before any matrix is allocated or timed.
func (c Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("bench: N must be positive, got %d", c.N)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("bench: threads must be positive, got %d", c.Threads)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("bench: block size must be positive, got %d", c.BlockSize)
	}
	if _, err := matmul.ForMode(c.Mode, c.BlockSize); err != nil {
		return err
	}
	return nil
}
