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

package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/420integrated/go-420eof/params"
)

func TestInstructionSetIntroductions(t *testing.T) {
	for _, tt := range []struct {
		op  OpCode
		rev params.Revision
	}{
		{STOP, params.Frontier},
		{INVALID, params.Frontier},
		{DELEGATECALL, params.Homestead},
		{REVERT, params.Byzantium},
		{STATICCALL, params.Byzantium},
		{SHL, params.Constantinople},
		{CREATE2, params.Constantinople},
		{CHAINID, params.Istanbul},
		{SELFBALANCE, params.Istanbul},
		{BASEFEE, params.London},
		{PUSH0, params.Shanghai},
	} {
		for _, rev := range params.Revisions() {
			jt := LegacyInstructionSet(rev)
			if have, want := jt.Defined(tt.op), rev >= tt.rev; have != want {
				t.Errorf("%v at %v: defined %v, want %v", tt.op, rev, have, want)
			}
		}
	}
}

func TestInstructionSetSmoke(t *testing.T) {
	for _, tt := range []struct {
		rev  params.Revision
		op   OpCode
		want uint64
	}{
		{params.Frontier, SLOAD, params.SloadSmokeFrontier},
		{params.TangerineWhistle, SLOAD, params.SloadSmokeEIP150},
		{params.Istanbul, SLOAD, params.SloadSmokeEIP2200},
		{params.Berlin, SLOAD, 0},
		{params.Frontier, BALANCE, params.BalanceSmokeFrontier},
		{params.TangerineWhistle, BALANCE, params.BalanceSmokeEIP150},
		{params.Istanbul, BALANCE, params.BalanceSmokeEIP1884},
		{params.Berlin, BALANCE, params.WarmStorageReadCostEIP2929},
		{params.Frontier, ADD, SmokeFastestStep},
		{params.Frontier, LOG2, params.LogSmoke + 2*params.LogTopicSmoke},
		{params.Shanghai, PUSH0, SmokeQuickStep},
	} {
		jt := LegacyInstructionSet(tt.rev)
		if have := jt.ConstantSmoke(tt.op); have != tt.want {
			t.Errorf("%v at %v: smoke %d, want %d", tt.op, tt.rev, have, tt.want)
		}
	}
}

// Tests that patching one fork's table does not leak into earlier forks.
func TestInstructionSetsIndependent(t *testing.T) {
	frontier := LegacyInstructionSet(params.Frontier)
	if frontier.ConstantSmoke(SLOAD) != params.SloadSmokeFrontier {
		t.Fatalf("frontier SLOAD repriced: %d", frontier.ConstantSmoke(SLOAD))
	}
	jt := newShanghaiInstructionSet()
	if err := EnableEIP(4200, &jt); err != nil {
		t.Fatal(err)
	}
	legacy := LegacyInstructionSet(params.Shanghai)
	if legacy.Defined(RJUMP) {
		t.Fatal("activator leaked RJUMP into the legacy set")
	}
}

func TestPushImmediates(t *testing.T) {
	jt := LegacyInstructionSet(params.Shanghai)
	for op := PUSH1; op <= PUSH32; op++ {
		if have, want := jt.Immediate(op), int(op-PUSH1)+1; have != want {
			t.Errorf("%v: immediate %d, want %d", op, have, want)
		}
		if op.PushSize() != jt.Immediate(op) {
			t.Errorf("%v: push size %d disagrees with table", op, op.PushSize())
		}
	}
	assert.Equal(t, 0, jt.Immediate(PUSH0))
	assert.Equal(t, 0, jt.Immediate(ADD))
	assert.Equal(t, 0, jt.Immediate(OpCode(0x0c)), "undefined opcodes carry no immediate")
}

func TestLookupInstructionSet(t *testing.T) {
	for _, rev := range params.Revisions() {
		for v := 0; v <= 0xff; v++ {
			jt, err := LookupInstructionSet(rev, byte(v))
			supported := rev.IsShanghai() && (byte(v) == params.EOFVersion1 || byte(v) == params.EOFVersion2)
			if !supported {
				if err != ErrEOFVersionUnknown {
					t.Fatalf("%v v%d: have %v, want %v", rev, v, err, ErrEOFVersionUnknown)
				}
				continue
			}
			require.NoError(t, err, "%v v%d", rev, v)
			assert.True(t, jt.Defined(PUSH0))
			assert.Equal(t, byte(v) == params.EOFVersion2, jt.Defined(RJUMP), "%v v%d RJUMP", rev, v)
		}
	}
}

func TestRelativeJumpOperations(t *testing.T) {
	jt, err := LookupInstructionSet(params.Shanghai, params.EOFVersion2)
	require.NoError(t, err)

	for _, op := range []OpCode{RJUMP, RJUMPI, RJUMPTABLE} {
		assert.True(t, op.IsRelativeJump(), "%v", op)
		assert.Equal(t, 2, jt.Immediate(op), "%v", op)
		assert.True(t, jt.Jumps(op), "%v", op)
		assert.False(t, jt.Halts(op), "%v", op)
	}
	assert.Equal(t, RjumpSmoke, jt.ConstantSmoke(RJUMP))
	assert.Equal(t, RjumpiSmoke, jt.ConstantSmoke(RJUMPI))
	assert.Equal(t, RjumptableSmoke, jt.ConstantSmoke(RJUMPTABLE))
	assert.False(t, JUMP.IsRelativeJump())
}

func TestHaltingOperations(t *testing.T) {
	jt := LegacyInstructionSet(params.Shanghai)
	for _, op := range []OpCode{STOP, RETURN, REVERT, SELFDESTRUCT, INVALID} {
		assert.True(t, jt.Halts(op), "%v", op)
	}
	for _, op := range []OpCode{ADD, JUMP, PUSH1, CALL} {
		assert.False(t, jt.Halts(op), "%v", op)
	}
	assert.True(t, jt.Jumps(JUMP))
	assert.True(t, jt.Jumps(JUMPI))
}

func TestOpCodeNames(t *testing.T) {
	for _, tt := range []struct {
		op   OpCode
		name string
	}{
		{STOP, "STOP"},
		{PUSH0, "PUSH0"},
		{PUSH32, "PUSH32"},
		{RJUMP, "RJUMP"},
		{RJUMPTABLE, "RJUMPTABLE"},
		{INVALID, "INVALID"},
	} {
		assert.Equal(t, tt.name, tt.op.String())
		assert.Equal(t, tt.op, StringToOp(tt.name))
	}
	assert.Contains(t, OpCode(0x0c).String(), "not defined")
}
