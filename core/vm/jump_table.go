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

type operation struct {
	// constantSmoke is the static portion of the smoke charged for the
	// operation. Dynamic costs are left to the interpreter.
	constantSmoke uint64
	// immediate is the number of bytes following the opcode that belong to
	// the instruction itself and are never executed.
	immediate int

	halts bool // indicates if the operation should halt further execution
	jumps bool // indicates if the program counter should not increment
}

var (
	frontierInstructionSet         = newFrontierInstructionSet()
	homesteadInstructionSet        = newHomesteadInstructionSet()
	tangerineWhistleInstructionSet = newTangerineWhistleInstructionSet()
	spuriousDragonInstructionSet   = newSpuriousDragonInstructionSet()
	byzantiumInstructionSet        = newByzantiumInstructionSet()
	constantinopleInstructionSet   = newConstantinopleInstructionSet()
	istanbulInstructionSet         = newIstanbulInstructionSet()
	berlinInstructionSet           = newBerlinInstructionSet()
	londonInstructionSet           = newLondonInstructionSet()
	shanghaiInstructionSet         = newShanghaiInstructionSet()

	// eofInstructionSets holds the opcodes permitted inside a container's
	// code section, indexed by revision and container version. A nil entry
	// means the revision does not know that container version.
	eofInstructionSets = newEOFInstructionSets()
)

// JumpTable contains the EVM opcodes supported at a given fork.
type JumpTable [256]*operation

// Defined reports whether op has a meaning in the instruction set.
func (jt *JumpTable) Defined(op OpCode) bool {
	return jt[op] != nil
}

// Immediate returns the number of immediate bytes following op, or 0 if op
// is undefined.
func (jt *JumpTable) Immediate(op OpCode) int {
	if jt[op] == nil {
		return 0
	}
	return jt[op].immediate
}

// ConstantSmoke returns the static smoke cost of op.
func (jt *JumpTable) ConstantSmoke(op OpCode) uint64 {
	if jt[op] == nil {
		return 0
	}
	return jt[op].constantSmoke
}

// Halts reports whether op ends execution of the current frame.
func (jt *JumpTable) Halts(op OpCode) bool {
	return jt[op] != nil && jt[op].halts
}

// Jumps reports whether op transfers control somewhere other than the next
// instruction.
func (jt *JumpTable) Jumps(op OpCode) bool {
	return jt[op] != nil && jt[op].jumps
}

// LegacyInstructionSet returns a copy of the instruction set used for code
// that is not wrapped in a container at the given revision.
func LegacyInstructionSet(rev params.Revision) JumpTable {
	return *legacyInstructionSet(rev)
}

// LookupInstructionSet returns a copy of the instruction set that applies to
// the code section of a container with the given version. It fails with
// ErrEOFVersionUnknown if the revision does not support the version.
func LookupInstructionSet(rev params.Revision, version byte) (JumpTable, error) {
	jt := eofInstructionSet(rev, version)
	if jt == nil {
		return JumpTable{}, ErrEOFVersionUnknown
	}
	return *jt, nil
}

func legacyInstructionSet(rev params.Revision) *JumpTable {
	switch {
	case rev.IsShanghai():
		return &shanghaiInstructionSet
	case rev.IsLondon():
		return &londonInstructionSet
	case rev.IsBerlin():
		return &berlinInstructionSet
	case rev.IsIstanbul():
		return &istanbulInstructionSet
	case rev.IsConstantinople():
		return &constantinopleInstructionSet
	case rev.IsByzantium():
		return &byzantiumInstructionSet
	case rev.IsSpuriousDragon():
		return &spuriousDragonInstructionSet
	case rev.IsTangerineWhistle():
		return &tangerineWhistleInstructionSet
	case rev.IsHomestead():
		return &homesteadInstructionSet
	default:
		return &frontierInstructionSet
	}
}

func eofInstructionSet(rev params.Revision, version byte) *JumpTable {
	if rev > params.LatestRevision || version > params.EOFMaxVersion {
		return nil
	}
	return eofInstructionSets[rev][version]
}

// newEOFInstructionSets builds fresh tables for every container version at
// every revision that supports the object format. Tables are never shared
// with the legacy sets, since EIP activators patch operations in place.
func newEOFInstructionSets() (sets [params.LatestRevision + 1][params.EOFMaxVersion + 1]*JumpTable) {
	for _, rev := range params.Revisions() {
		if !rev.IsShanghai() {
			continue
		}
		v1 := newShanghaiInstructionSet()
		v2 := newShanghaiInstructionSet()
		enable4200(&v2) // Static relative jumps - https://eips.ethereum.org/EIPS/eip-4200

		sets[rev][params.EOFVersion1] = &v1
		sets[rev][params.EOFVersion2] = &v2
	}
	return sets
}

// newShanghaiInstructionSet returns the London instructions plus PUSH0.
func newShanghaiInstructionSet() JumpTable {
	instructionSet := newLondonInstructionSet()
	enable3855(&instructionSet) // PUSH0 instruction - https://eips.ethereum.org/EIPS/eip-3855
	return instructionSet
}

// newLondonInstructionSet returns the Berlin instructions plus BASEFEE.
// Paris uses the same set, it only renames DIFFICULTY.
func newLondonInstructionSet() JumpTable {
	instructionSet := newBerlinInstructionSet()
	enable3198(&instructionSet) // Base fee opcode - https://eips.ethereum.org/EIPS/eip-3198
	return instructionSet
}

// newBerlinInstructionSet returns the Istanbul instructions repriced by
// "EIP-2929: Smoke cost increases for state access opcodes"
func newBerlinInstructionSet() JumpTable {
	instructionSet := newIstanbulInstructionSet()
	enable2929(&instructionSet) // Access lists for trie accesses https://eips.ethereum.org/EIPS/eip-2929
	return instructionSet
}

// newIstanbulInstructionSet returns the frontier, homestead
// byzantium, contantinople and petersburg instructions.
func newIstanbulInstructionSet() JumpTable {
	instructionSet := newConstantinopleInstructionSet()

	enable1344(&instructionSet) // ChainID opcode - https://eips.ethereum.org/EIPS/eip-1344
	enable1884(&instructionSet) // Reprice reader opcodes - https://eips.ethereum.org/EIPS/eip-1884
	enable2200(&instructionSet) // Net metered SSTORE - https://eips.ethereum.org/EIPS/eip-2200

	return instructionSet
}

// newConstantinopleInstructionSet returns the frontier, homestead
// byzantium and contantinople instructions. Petersburg shares it.
func newConstantinopleInstructionSet() JumpTable {
	instructionSet := newByzantiumInstructionSet()
	instructionSet[SHL] = &operation{
		constantSmoke: SmokeFastestStep,
	}
	instructionSet[SHR] = &operation{
		constantSmoke: SmokeFastestStep,
	}
	instructionSet[SAR] = &operation{
		constantSmoke: SmokeFastestStep,
	}
	instructionSet[EXTCODEHASH] = &operation{
		constantSmoke: params.ExtcodeHashSmokeConstantinople,
	}
	instructionSet[CREATE2] = &operation{
		constantSmoke: params.Create2Smoke,
	}
	return instructionSet
}

// newByzantiumInstructionSet returns the frontier, homestead and
// byzantium instructions.
func newByzantiumInstructionSet() JumpTable {
	instructionSet := newSpuriousDragonInstructionSet()
	instructionSet[STATICCALL] = &operation{
		constantSmoke: params.CallSmokeEIP150,
	}
	instructionSet[RETURNDATASIZE] = &operation{
		constantSmoke: SmokeQuickStep,
	}
	instructionSet[RETURNDATACOPY] = &operation{
		constantSmoke: SmokeFastestStep,
	}
	instructionSet[REVERT] = &operation{
		halts: true,
	}
	return instructionSet
}

// EIP 158 a.k.a Spurious Dragon. Only the dynamic EXP pricing changed, so
// the static view of the set is the Tangerine Whistle one.
func newSpuriousDragonInstructionSet() JumpTable {
	return newTangerineWhistleInstructionSet()
}

// EIP 150 a.k.a Tangerine Whistle
func newTangerineWhistleInstructionSet() JumpTable {
	instructionSet := newHomesteadInstructionSet()
	instructionSet[BALANCE].constantSmoke = params.BalanceSmokeEIP150
	instructionSet[EXTCODESIZE].constantSmoke = params.ExtcodeSizeSmokeEIP150
	instructionSet[SLOAD].constantSmoke = params.SloadSmokeEIP150
	instructionSet[EXTCODECOPY].constantSmoke = params.ExtcodeCopyBaseEIP150
	instructionSet[CALL].constantSmoke = params.CallSmokeEIP150
	instructionSet[CALLCODE].constantSmoke = params.CallSmokeEIP150
	instructionSet[DELEGATECALL].constantSmoke = params.CallSmokeEIP150
	instructionSet[SELFDESTRUCT].constantSmoke = params.SelfdestructSmokeEIP150
	return instructionSet
}

// newHomesteadInstructionSet returns the frontier and homestead
// instructions that can be executed during the homestead phase.
func newHomesteadInstructionSet() JumpTable {
	instructionSet := newFrontierInstructionSet()
	instructionSet[DELEGATECALL] = &operation{
		constantSmoke: params.CallSmokeFrontier,
	}
	return instructionSet
}

// newFrontierInstructionSet returns the frontier instructions
// that can be executed during the frontier phase.
func newFrontierInstructionSet() JumpTable {
	return JumpTable{
		STOP: {
			constantSmoke: 0,
			halts:         true,
		},
		ADD: {
			constantSmoke: SmokeFastestStep,
		},
		MUL: {
			constantSmoke: SmokeFastStep,
		},
		SUB: {
			constantSmoke: SmokeFastestStep,
		},
		DIV: {
			constantSmoke: SmokeFastStep,
		},
		SDIV: {
			constantSmoke: SmokeFastStep,
		},
		MOD: {
			constantSmoke: SmokeFastStep,
		},
		SMOD: {
			constantSmoke: SmokeFastStep,
		},
		ADDMOD: {
			constantSmoke: SmokeMidStep,
		},
		MULMOD: {
			constantSmoke: SmokeMidStep,
		},
		EXP: {
			constantSmoke: params.ExpSmoke,
		},
		SIGNEXTEND: {
			constantSmoke: SmokeFastStep,
		},
		LT: {
			constantSmoke: SmokeFastestStep,
		},
		GT: {
			constantSmoke: SmokeFastestStep,
		},
		SLT: {
			constantSmoke: SmokeFastestStep,
		},
		SGT: {
			constantSmoke: SmokeFastestStep,
		},
		EQ: {
			constantSmoke: SmokeFastestStep,
		},
		ISZERO: {
			constantSmoke: SmokeFastestStep,
		},
		AND: {
			constantSmoke: SmokeFastestStep,
		},
		XOR: {
			constantSmoke: SmokeFastestStep,
		},
		OR: {
			constantSmoke: SmokeFastestStep,
		},
		NOT: {
			constantSmoke: SmokeFastestStep,
		},
		BYTE: {
			constantSmoke: SmokeFastestStep,
		},
		SHA3: {
			constantSmoke: params.Sha3Smoke,
		},
		ADDRESS: {
			constantSmoke: SmokeQuickStep,
		},
		BALANCE: {
			constantSmoke: params.BalanceSmokeFrontier,
		},
		ORIGIN: {
			constantSmoke: SmokeQuickStep,
		},
		CALLER: {
			constantSmoke: SmokeQuickStep,
		},
		CALLVALUE: {
			constantSmoke: SmokeQuickStep,
		},
		CALLDATALOAD: {
			constantSmoke: SmokeFastestStep,
		},
		CALLDATASIZE: {
			constantSmoke: SmokeQuickStep,
		},
		CALLDATACOPY: {
			constantSmoke: SmokeFastestStep,
		},
		CODESIZE: {
			constantSmoke: SmokeQuickStep,
		},
		CODECOPY: {
			constantSmoke: SmokeFastestStep,
		},
		GASPRICE: {
			constantSmoke: SmokeQuickStep,
		},
		EXTCODESIZE: {
			constantSmoke: params.ExtcodeSizeSmokeFrontier,
		},
		EXTCODECOPY: {
			constantSmoke: params.ExtcodeCopyBaseFrontier,
		},
		BLOCKHASH: {
			constantSmoke: SmokeExtStep,
		},
		COINBASE: {
			constantSmoke: SmokeQuickStep,
		},
		TIMESTAMP: {
			constantSmoke: SmokeQuickStep,
		},
		NUMBER: {
			constantSmoke: SmokeQuickStep,
		},
		DIFFICULTY: {
			constantSmoke: SmokeQuickStep,
		},
		GASLIMIT: {
			constantSmoke: SmokeQuickStep,
		},
		POP: {
			constantSmoke: SmokeQuickStep,
		},
		MLOAD: {
			constantSmoke: SmokeFastestStep,
		},
		MSTORE: {
			constantSmoke: SmokeFastestStep,
		},
		MSTORE8: {
			constantSmoke: SmokeFastestStep,
		},
		SLOAD: {
			constantSmoke: params.SloadSmokeFrontier,
		},
		SSTORE: {
			constantSmoke: 0,
		},
		JUMP: {
			constantSmoke: SmokeMidStep,
			jumps:         true,
		},
		JUMPI: {
			constantSmoke: SmokeSlowStep,
			jumps:         true,
		},
		PC: {
			constantSmoke: SmokeQuickStep,
		},
		MSIZE: {
			constantSmoke: SmokeQuickStep,
		},
		GAS: {
			constantSmoke: SmokeQuickStep,
		},
		JUMPDEST: {
			constantSmoke: params.JumpdestSmoke,
		},
		PUSH1: {
			constantSmoke: SmokeFastestStep,
			immediate:     1,
		},
		PUSH2: {
			constantSmoke: SmokeFastestStep,
			immediate:     2,
		},
		PUSH3: {
			constantSmoke: SmokeFastestStep,
			immediate:     3,
		},
		PUSH4: {
			constantSmoke: SmokeFastestStep,
			immediate:     4,
		},
		PUSH5: {
			constantSmoke: SmokeFastestStep,
			immediate:     5,
		},
		PUSH6: {
			constantSmoke: SmokeFastestStep,
			immediate:     6,
		},
		PUSH7: {
			constantSmoke: SmokeFastestStep,
			immediate:     7,
		},
		PUSH8: {
			constantSmoke: SmokeFastestStep,
			immediate:     8,
		},
		PUSH9: {
			constantSmoke: SmokeFastestStep,
			immediate:     9,
		},
		PUSH10: {
			constantSmoke: SmokeFastestStep,
			immediate:     10,
		},
		PUSH11: {
			constantSmoke: SmokeFastestStep,
			immediate:     11,
		},
		PUSH12: {
			constantSmoke: SmokeFastestStep,
			immediate:     12,
		},
		PUSH13: {
			constantSmoke: SmokeFastestStep,
			immediate:     13,
		},
		PUSH14: {
			constantSmoke: SmokeFastestStep,
			immediate:     14,
		},
		PUSH15: {
			constantSmoke: SmokeFastestStep,
			immediate:     15,
		},
		PUSH16: {
			constantSmoke: SmokeFastestStep,
			immediate:     16,
		},
		PUSH17: {
			constantSmoke: SmokeFastestStep,
			immediate:     17,
		},
		PUSH18: {
			constantSmoke: SmokeFastestStep,
			immediate:     18,
		},
		PUSH19: {
			constantSmoke: SmokeFastestStep,
			immediate:     19,
		},
		PUSH20: {
			constantSmoke: SmokeFastestStep,
			immediate:     20,
		},
		PUSH21: {
			constantSmoke: SmokeFastestStep,
			immediate:     21,
		},
		PUSH22: {
			constantSmoke: SmokeFastestStep,
			immediate:     22,
		},
		PUSH23: {
			constantSmoke: SmokeFastestStep,
			immediate:     23,
		},
		PUSH24: {
			constantSmoke: SmokeFastestStep,
			immediate:     24,
		},
		PUSH25: {
			constantSmoke: SmokeFastestStep,
			immediate:     25,
		},
		PUSH26: {
			constantSmoke: SmokeFastestStep,
			immediate:     26,
		},
		PUSH27: {
			constantSmoke: SmokeFastestStep,
			immediate:     27,
		},
		PUSH28: {
			constantSmoke: SmokeFastestStep,
			immediate:     28,
		},
		PUSH29: {
			constantSmoke: SmokeFastestStep,
			immediate:     29,
		},
		PUSH30: {
			constantSmoke: SmokeFastestStep,
			immediate:     30,
		},
		PUSH31: {
			constantSmoke: SmokeFastestStep,
			immediate:     31,
		},
		PUSH32: {
			constantSmoke: SmokeFastestStep,
			immediate:     32,
		},
		DUP1: {
			constantSmoke: SmokeFastestStep,
		},
		DUP2: {
			constantSmoke: SmokeFastestStep,
		},
		DUP3: {
			constantSmoke: SmokeFastestStep,
		},
		DUP4: {
			constantSmoke: SmokeFastestStep,
		},
		DUP5: {
			constantSmoke: SmokeFastestStep,
		},
		DUP6: {
			constantSmoke: SmokeFastestStep,
		},
		DUP7: {
			constantSmoke: SmokeFastestStep,
		},
		DUP8: {
			constantSmoke: SmokeFastestStep,
		},
		DUP9: {
			constantSmoke: SmokeFastestStep,
		},
		DUP10: {
			constantSmoke: SmokeFastestStep,
		},
		DUP11: {
			constantSmoke: SmokeFastestStep,
		},
		DUP12: {
			constantSmoke: SmokeFastestStep,
		},
		DUP13: {
			constantSmoke: SmokeFastestStep,
		},
		DUP14: {
			constantSmoke: SmokeFastestStep,
		},
		DUP15: {
			constantSmoke: SmokeFastestStep,
		},
		DUP16: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP1: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP2: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP3: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP4: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP5: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP6: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP7: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP8: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP9: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP10: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP11: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP12: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP13: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP14: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP15: {
			constantSmoke: SmokeFastestStep,
		},
		SWAP16: {
			constantSmoke: SmokeFastestStep,
		},
		LOG0: {
			constantSmoke: logSmoke(0),
		},
		LOG1: {
			constantSmoke: logSmoke(1),
		},
		LOG2: {
			constantSmoke: logSmoke(2),
		},
		LOG3: {
			constantSmoke: logSmoke(3),
		},
		LOG4: {
			constantSmoke: logSmoke(4),
		},
		CREATE: {
			constantSmoke: params.CreateSmoke,
		},
		CALL: {
			constantSmoke: params.CallSmokeFrontier,
		},
		CALLCODE: {
			constantSmoke: params.CallSmokeFrontier,
		},
		RETURN: {
			constantSmoke: 0,
			halts:         true,
		},
		INVALID: {
			constantSmoke: 0,
			halts:         true,
		},
		SELFDESTRUCT: {
			constantSmoke: 0,
			halts:         true,
		},
	}
}
