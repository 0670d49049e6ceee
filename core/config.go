// Copyright 2021 The The 420Integrated Development Group
// This file is part of the go-420coin library.
//
// The go-420coin library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-420coin library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-420coin library. If not, see <http://www.gnu.org/licenses/>.

package core

import (
	"runtime"

	"github.com/420integrated/go-420eof/params"
)

// DefaultConfig contains default settings for batch validation.
var DefaultConfig = Config{
	Fork:           params.LatestRevision,
	Workers:        4,
	SkipDuplicates: true,
	MaxBatchBytes:  64 * 1024 * 1024,
}

func init() {
	if n := runtime.NumCPU(); n > DefaultConfig.Workers {
		DefaultConfig.Workers = n
	}
}

// Config are the configuration parameters of the batch validator.
type Config struct {
	// Fork selects the revision whose rules containers are validated under.
	Fork params.Revision

	Workers        int  // Number of containers validated in parallel
	SkipDuplicates bool // Validate byte-identical containers only once

	// MaxBatchBytes bounds the total size of a batch. Zero disables the limit.
	MaxBatchBytes uint64 `toml:",omitempty"`
}

// sanitize returns a copy of the config with unusable values replaced.
func (c Config) sanitize() Config {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Fork > params.LatestRevision {
		c.Fork = params.LatestRevision
	}
	return c
}
