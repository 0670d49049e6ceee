// Copyright 2015 The The 420Integrated Development Group
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

package vm

import (
	"github.com/420integrated/go-420eof/params"
)

// Smoke costs
const (
	SmokeQuickStep   uint64 = 2
	SmokeFastestStep uint64 = 3
	SmokeFastStep    uint64 = 5
	SmokeMidStep     uint64 = 8
	SmokeSlowStep    uint64 = 10
	SmokeExtStep     uint64 = 20
)

// Relative jump costs (EIP 4200). RJUMPI and RJUMPTABLE pop a condition or
// index, which is priced on top of the quick step.
const (
	RjumpSmoke      uint64 = SmokeQuickStep
	RjumpiSmoke     uint64 = 4
	RjumptableSmoke uint64 = 4
)

// logSmoke returns the static smoke of a LOGn instruction. The per-byte data
// cost is dynamic and not part of the table.
func logSmoke(topics int) uint64 {
	return params.LogSmoke + uint64(topics)*params.LogTopicSmoke
}
