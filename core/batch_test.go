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
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/420integrated/go-420eof/common"
	"github.com/420integrated/go-420eof/core/vm"
	"github.com/420integrated/go-420eof/metrics"
	"github.com/420integrated/go-420eof/params"
)

func hexCodes(t *testing.T, codes ...string) [][]byte {
	out := make([][]byte, len(codes))
	for i, code := range codes {
		b, err := common.ParseHex(code)
		require.NoError(t, err)
		out[i] = b
	}
	return out
}

func TestValidateBatch(t *testing.T) {
	codes := hexCodes(t,
		"EFCAFE01 010001 00 FE",
		"EFCAFE01 010001 00 60",
		"EFCAFE02 010001 030003 00 FE 000000",
		"6001",
		"EFCAFE01 010001 00 FE",
	)
	for _, skip := range []bool{true, false} {
		cfg := Config{Fork: params.Shanghai, Workers: 3, SkipDuplicates: skip}
		results, err := ValidateBatch(context.Background(), cfg, codes)
		require.NoError(t, err)
		require.Len(t, results, len(codes))

		want := []error{nil, vm.ErrTruncatedPush, vm.ErrOddTableSectionSize, vm.ErrInvalidPrefix, nil}
		for i, res := range results {
			assert.Equal(t, want[i], res.Err, "container %d", i)
			assert.Equal(t, len(codes[i]), res.Size)
		}
		assert.Equal(t, skip, results[4].Duplicate)
		assert.False(t, results[0].Duplicate)
		assert.Equal(t, results[0].Hash, results[4].Hash)
		assert.Equal(t, "odd_table_section_size", results[2].Kind())
	}
}

func TestValidateBatchMatchesSingle(t *testing.T) {
	var codes [][]byte
	for n := 0; n < 64; n++ {
		code := bytes.Repeat([]byte{byte(vm.PUSH1)}, n)
		codes = append(codes, append([]byte{0xef, 0xca, 0xfe, 0x01, 0x01, 0x00, byte(n), 0x00}, code...))
	}
	results, err := ValidateBatch(context.Background(), DefaultConfig, codes)
	require.NoError(t, err)
	for i, res := range results {
		if want := vm.ValidateEOF(DefaultConfig.Fork, codes[i]); res.Err != want {
			t.Errorf("container %d: have %v, want %v", i, res.Err, want)
		}
	}
}

func TestValidateBatchEmpty(t *testing.T) {
	results, err := ValidateBatch(context.Background(), DefaultConfig, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidateBatchBudget(t *testing.T) {
	codes := hexCodes(t, "EFCAFE01 010001 00 FE", "EFCAFE01 010001 00 FE")
	cfg := Config{Fork: params.Shanghai, Workers: 1, MaxBatchBytes: 17}

	_, err := ValidateBatch(context.Background(), cfg, codes)
	if !errors.Is(err, ErrBatchTooLarge) {
		t.Fatalf("have %v, want %v", err, ErrBatchTooLarge)
	}
	cfg.MaxBatchBytes = 18
	_, err = ValidateBatch(context.Background(), cfg, codes)
	require.NoError(t, err)
}

func TestValidateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	codes := hexCodes(t, "EFCAFE01 010001 00 FE")
	if _, err := ValidateBatch(ctx, DefaultConfig, codes); err != context.Canceled {
		t.Fatalf("have %v, want %v", err, context.Canceled)
	}
}

func TestValidateBatchMetrics(t *testing.T) {
	counter := func(name string) int64 {
		if c, ok := metrics.DefaultRegistry.Get(name).(metrics.Counter); ok {
			return c.Count()
		}
		return 0
	}
	var (
		containers = counter("eof/validate/containers")
		duplicates = counter("eof/validate/duplicates")
		truncated  = counter(ResultMetricPrefix + "truncated_push")
	)
	codes := hexCodes(t, "EFCAFE01 010001 00 60", "EFCAFE01 010001 00 60", "EFCAFE01 010001 00 FE")
	_, err := ValidateBatch(context.Background(), Config{Fork: params.Shanghai, Workers: 2, SkipDuplicates: true}, codes)
	require.NoError(t, err)

	assert.Equal(t, containers+3, counter("eof/validate/containers"))
	assert.Equal(t, duplicates+1, counter("eof/validate/duplicates"))
	assert.Equal(t, truncated+2, counter(ResultMetricPrefix+"truncated_push"))
}

func TestByteBudget(t *testing.T) {
	var bb ByteBudget
	if err := bb.SubBytes(1); err != ErrBatchTooLarge {
		t.Fatalf("empty budget: have %v", err)
	}
	bb.AddBytes(10)
	require.NoError(t, bb.SubBytes(4))
	assert.Equal(t, uint64(6), bb.Bytes())
	assert.Equal(t, "6", bb.String())
	assert.Equal(t, ErrBatchTooLarge, bb.SubBytes(7))
	assert.Equal(t, uint64(6), bb.Bytes(), "failed deduction changed the budget")
}

func TestConfigSanitize(t *testing.T) {
	cfg := Config{Workers: -1, Fork: params.LatestRevision + 1}.sanitize()
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, params.LatestRevision, cfg.Fork)
	assert.True(t, DefaultConfig.Workers >= 4, fmt.Sprintf("workers %d", DefaultConfig.Workers))
}
