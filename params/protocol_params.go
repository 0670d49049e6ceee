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

package params

const (
	ExpSmoke      uint64 = 10    // Once per EXP instruction
	Sha3Smoke     uint64 = 30    // Once per SHA3 operation.
	JumpdestSmoke uint64 = 1     // Once per JUMPDEST operation.
	LogSmoke      uint64 = 375   // Per LOG* operation.
	LogTopicSmoke uint64 = 375   // Multiplied by the * of the LOG*, per LOG transaction. e.g. LOG0 incurs 0 * c_txLogTopicSmoke, LOG4 incurs 4 * c_txLogTopicSmoke.
	CreateSmoke   uint64 = 32000 // Once per CREATE operation & contract-creation transaction.
	Create2Smoke  uint64 = 32000 // Once per CREATE2 operation

	// These have been changed during the course of the chain
	CallSmokeFrontier              uint64 = 40  // Once per CALL operation & message call transaction.
	CallSmokeEIP150                uint64 = 700 // Static portion of smoke for CALL-derivates after EIP 150 (Tangerine)
	BalanceSmokeFrontier           uint64 = 20  // The cost of a BALANCE operation
	BalanceSmokeEIP150             uint64 = 400 // The cost of a BALANCE operation after Tangerine
	BalanceSmokeEIP1884            uint64 = 700 // The cost of a BALANCE operation after EIP 1884 (part of Istanbul)
	ExtcodeSizeSmokeFrontier       uint64 = 20  // Cost of EXTCODESIZE before EIP 150 (Tangerine)
	ExtcodeSizeSmokeEIP150         uint64 = 700 // Cost of EXTCODESIZE after EIP 150 (Tangerine)
	SloadSmokeFrontier             uint64 = 50
	SloadSmokeEIP150               uint64 = 200
	SloadSmokeEIP1884              uint64 = 800  // Cost of SLOAD after EIP 1884 (part of Istanbul)
	SloadSmokeEIP2200              uint64 = 800  // Cost of SLOAD after EIP 2200 (part of Istanbul)
	ExtcodeHashSmokeConstantinople uint64 = 400  // Cost of EXTCODEHASH (introduced in Constantinople)
	ExtcodeHashSmokeEIP1884        uint64 = 700  // Cost of EXTCODEHASH after EIP 1884 (part in Istanbul)
	SelfdestructSmokeEIP150        uint64 = 5000 // Cost of SELFDESTRUCT post EIP 150 (Tangerine)

	// Extcodecopy has a dynamic AND a static cost. This represents only the
	// static portion of the smoke. It was changed during EIP 150 (Tangerine)
	ExtcodeCopyBaseFrontier uint64 = 20
	ExtcodeCopyBaseEIP150   uint64 = 700

	// Access-list pricing (EIP 2929). The static portion of every state
	// access is charged at the warm rate; the cold surcharge is dynamic.
	WarmStorageReadCostEIP2929 uint64 = 100
)

// EVM object format constants.
const (
	EOFMagicLength = 3 // Number of magic bytes in front of the container version

	EOFVersion1 byte = 1 // Container with code and data sections
	EOFVersion2 byte = 2 // Adds jump table sections and the relative jump opcodes

	EOFMaxVersion = EOFVersion2
)

// EOFMagic is the byte sequence every EVM object format container starts with.
var EOFMagic = [EOFMagicLength]byte{0xEF, 0xCA, 0xFE}
