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
	"github.com/420integrated/go-420eof/core/vm"
	"github.com/420integrated/go-420eof/metrics"
)

// ResultMetricPrefix prefixes the per-outcome counters, which are named after
// the validation error kinds ("eof/validate/result/truncated_push").
const ResultMetricPrefix = "eof/validate/result/"

var (
	containerCounter = metrics.NewRegisteredCounter("eof/validate/containers", nil)
	duplicateCounter = metrics.NewRegisteredCounter("eof/validate/duplicates", nil)
	byteCounter      = metrics.NewRegisteredCounter("eof/validate/bytes", nil)
	batchTimer       = metrics.NewRegisteredTimer("eof/validate/batch", nil)
)

func resultCounter(err error) metrics.Counter {
	return metrics.GetOrRegisterCounter(ResultMetricPrefix+vm.ErrorKind(err), nil)
}
