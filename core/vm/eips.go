// Copyright 2019 The The 420Integrated Development Group
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
	"fmt"
	"sort"

	"github.com/420integrated/go-420eof/params"
)

var activators = map[int]func(*JumpTable){
	4200: enable4200,
	3855: enable3855,
	3198: enable3198,
	2929: enable2929,
	2200: enable2200,
	1884: enable1884,
	1344: enable1344,
}

// EnableEIP enables the given EIP on the config.
// This operation writes in-place, and callers need to ensure that the globally
// defined jump tables are not polluted.
func EnableEIP(eipNum int, jt *JumpTable) error {
	enablerFn, ok := activators[eipNum]
	if !ok {
		return fmt.Errorf("undefined eip %d", eipNum)
	}
	enablerFn(jt)
	return nil
}

func ValidEip(eipNum int) bool {
	_, ok := activators[eipNum]
	return ok
}
func ActivateableEips() []string {
	var nums []string
	for k := range activators {
		nums = append(nums, fmt.Sprintf("%d", k))
	}
	sort.Strings(nums)
	return nums
}

// enable1884 applies EIP-1884 to the given jump table:
// - Increase cost of BALANCE to 700
// - Increase cost of EXTCODEHASH to 700
// - Increase cost of SLOAD to 800
// - Define SELFBALANCE, with cost SmokeFastStep (5)
func enable1884(jt *JumpTable) {
	// Smoke cost changes
	jt[SLOAD].constantSmoke = params.SloadSmokeEIP1884
	jt[BALANCE].constantSmoke = params.BalanceSmokeEIP1884
	jt[EXTCODEHASH].constantSmoke = params.ExtcodeHashSmokeEIP1884

	// New opcode
	jt[SELFBALANCE] = &operation{
		constantSmoke: SmokeFastStep,
	}
}

// enable1344 applies EIP-1344 (ChainID Opcode)
// - Adds an opcode that returns the current chain's EIP-155 unique identifier
func enable1344(jt *JumpTable) {
	// New opcode
	jt[CHAINID] = &operation{
		constantSmoke: SmokeQuickStep,
	}
}

// enable2200 applies EIP-2200 (Rebalance net-metered SSTORE)
func enable2200(jt *JumpTable) {
	jt[SLOAD].constantSmoke = params.SloadSmokeEIP2200
}

// enable2929 enables "EIP-2929: Smoke cost increases for state access opcodes"
// https://eips.ethereum.org/EIPS/eip-2929
//
// Only the warm portion is static, the cold surcharge is charged dynamically.
func enable2929(jt *JumpTable) {
	jt[SLOAD].constantSmoke = 0

	jt[EXTCODECOPY].constantSmoke = params.WarmStorageReadCostEIP2929
	jt[EXTCODESIZE].constantSmoke = params.WarmStorageReadCostEIP2929
	jt[EXTCODEHASH].constantSmoke = params.WarmStorageReadCostEIP2929
	jt[BALANCE].constantSmoke = params.WarmStorageReadCostEIP2929
	jt[CALL].constantSmoke = params.WarmStorageReadCostEIP2929
	jt[CALLCODE].constantSmoke = params.WarmStorageReadCostEIP2929
	jt[STATICCALL].constantSmoke = params.WarmStorageReadCostEIP2929
	jt[DELEGATECALL].constantSmoke = params.WarmStorageReadCostEIP2929

	// This was previously part of the dynamic cost, but we're using it as a constantSmoke
	// factor here
	jt[SELFDESTRUCT].constantSmoke = params.SelfdestructSmokeEIP150
}

// enable3198 applies EIP-3198 (BASEFEE Opcode)
// - Adds an opcode that returns the current block's base fee.
func enable3198(jt *JumpTable) {
	// New opcode
	jt[BASEFEE] = &operation{
		constantSmoke: SmokeQuickStep,
	}
}

// enable3855 applies EIP-3855 (PUSH0 opcode)
func enable3855(jt *JumpTable) {
	// New opcode
	jt[PUSH0] = &operation{
		constantSmoke: SmokeQuickStep,
	}
}

// enable4200 applies EIP-4200 (Static relative jumps)
// - Adds RJUMP and RJUMPI carrying a signed 2-byte relative offset
// - Adds RJUMPTABLE carrying a 2-byte index into the container's table sections
//
// The opcodes are only meaningful inside a version 2 container; legacy code
// never sees them.
func enable4200(jt *JumpTable) {
	jt[RJUMP] = &operation{
		constantSmoke: RjumpSmoke,
		immediate:     2,
		jumps:         true,
	}
	jt[RJUMPI] = &operation{
		constantSmoke: RjumpiSmoke,
		immediate:     2,
		jumps:         true,
	}
	jt[RJUMPTABLE] = &operation{
		constantSmoke: RjumptableSmoke,
		immediate:     2,
		jumps:         true,
	}
}
