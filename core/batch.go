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

// Package core validates batches of containers on top of the vm package.
package core

import (
	"context"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set"
	"golang.org/x/sync/errgroup"

	"github.com/420integrated/go-420eof/common"
	"github.com/420integrated/go-420eof/core/vm"
	"github.com/420integrated/go-420eof/crypto"
	"github.com/420integrated/go-420eof/log"
)

// Result is the outcome of validating one container of a batch.
type Result struct {
	Hash      common.Hash // Keccak256 hash of the container
	Size      int         // Length of the container in bytes
	Err       error       // Validation error, nil if the container is valid
	Duplicate bool        // Whether the result was taken from an identical earlier container
}

// Kind classifies the result the way vm.ErrorKind does.
func (r *Result) Kind() string {
	return vm.ErrorKind(r.Err)
}

// ValidateBatch validates every container of codes under the rules selected
// by cfg and returns the results in input order. Rejected containers are
// reported through their Result; the batch itself only fails if it exceeds
// the byte budget or ctx is cancelled.
func ValidateBatch(ctx context.Context, cfg Config, codes [][]byte) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg = cfg.sanitize()
	start := time.Now()

	var total uint64
	for _, code := range codes {
		total += uint64(len(code))
	}
	if cfg.MaxBatchBytes > 0 {
		budget := new(ByteBudget).AddBytes(cfg.MaxBatchBytes)
		if err := budget.SubBytes(total); err != nil {
			return nil, fmt.Errorf("%d bytes in %d containers: %w", total, len(codes), err)
		}
	}
	// Hash everything up front, identical containers are only validated once.
	var (
		results = make([]Result, len(codes))
		unique  = mapset.NewThreadUnsafeSet()
		first   = make(map[common.Hash]int)
		pending = make([]int, 0, len(codes))
	)
	for i, code := range codes {
		results[i].Hash = crypto.Keccak256Hash(code)
		results[i].Size = len(code)

		if cfg.SkipDuplicates && !unique.Add(results[i].Hash) {
			results[i].Duplicate = true
			continue
		}
		first[results[i].Hash] = i
		pending = append(pending, i)
	}
	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for _, i := range pending {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				results[i].Err = vm.ValidateEOF(cfg.Fork, codes[i])
				log.Trace("Validated container", "index", i, "hash", results[i].Hash, "size", results[i].Size, "result", results[i].Kind())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var rejected int
	for i := range results {
		if results[i].Duplicate {
			results[i].Err = results[first[results[i].Hash]].Err
			duplicateCounter.Inc(1)
		}
		if results[i].Err != nil {
			rejected++
		}
		resultCounter(results[i].Err).Inc(1)
	}
	containerCounter.Inc(int64(len(codes)))
	byteCounter.Inc(int64(total))
	batchTimer.UpdateSince(start)

	log.Debug("Validated container batch", "fork", cfg.Fork, "containers", len(codes), "unique", len(pending),
		"rejected", rejected, "elapsed", common.PrettyDuration(time.Since(start)))
	return results, nil
}
