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

// Package asm provides support for inspecting EVM code, legacy or wrapped in
// a container.
package asm

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/420integrated/go-420eof/core/vm"
	"github.com/420integrated/go-420eof/params"
)

// Iterator for disassembled EVM instructions
type instructionIterator struct {
	code    []byte
	jt      vm.JumpTable
	pc      uint64
	arg     []byte
	op      vm.OpCode
	error   error
	started bool
}

// NewInstructionIterator creates a new instruction iterator over code, using
// jt to find the immediate size of every instruction.
func NewInstructionIterator(code []byte, jt vm.JumpTable) *instructionIterator {
	it := new(instructionIterator)
	it.code = code
	it.jt = jt
	return it
}

// Next returns true if there is a next instruction and moves on.
func (it *instructionIterator) Next() bool {
	if it.error != nil || uint64(len(it.code)) <= it.pc {
		// We previously reached an error or the end.
		return false
	}

	if it.started {
		// Since the iteration has been already started we move to the next instruction.
		if it.arg != nil {
			it.pc += uint64(len(it.arg))
		}
		it.pc++
	} else {
		// We start the iteration from the first instruction.
		it.started = true
	}

	if uint64(len(it.code)) <= it.pc {
		// We reached the end.
		return false
	}

	it.op = vm.OpCode(it.code[it.pc])
	if size := it.jt.Immediate(it.op); size > 0 {
		u := it.pc + 1 + uint64(size)
		if uint64(len(it.code)) <= it.pc || uint64(len(it.code)) < u {
			it.error = fmt.Errorf("incomplete %v instruction at %v", it.op, it.pc)
			return false
		}
		it.arg = it.code[it.pc+1 : u]
	} else {
		it.arg = nil
	}
	return true
}

// Error returns any error that may have been encountered.
func (it *instructionIterator) Error() error {
	return it.error
}

// PC returns the PC of the current instruction.
func (it *instructionIterator) PC() uint64 {
	return it.pc
}

// Op returns the opcode of the current instruction.
func (it *instructionIterator) Op() vm.OpCode {
	return it.op
}

// Arg returns the argument of the current instruction.
func (it *instructionIterator) Arg() []byte {
	return it.arg
}

// Defined reports whether the current instruction exists in the iterator's
// instruction set.
func (it *instructionIterator) Defined() bool {
	return it.jt.Defined(it.op)
}

// Disassemble returns the instruction listing of code at the given revision.
// Containers are validated first and only their code section is listed;
// anything else is treated as legacy code.
func Disassemble(rev params.Revision, code []byte) ([]string, error) {
	if vm.IsEOFCode(rev, code) {
		c, err := vm.ReadContainer(rev, code)
		if err != nil {
			return nil, err
		}
		jt, err := vm.LookupInstructionSet(rev, c.Version)
		if err != nil {
			return nil, err
		}
		return disassemble(c.Code, jt)
	}
	return disassemble(code, vm.LegacyInstructionSet(rev))
}

func disassemble(code []byte, jt vm.JumpTable) ([]string, error) {
	var output []string
	it := NewInstructionIterator(code, jt)
	for it.Next() {
		output = append(output, formatInstruction(it))
	}
	return output, it.Error()
}

func formatInstruction(it *instructionIterator) string {
	switch {
	case !it.Defined():
		return fmt.Sprintf("%05x: INVALID 0x%02x", it.PC(), byte(it.Op()))
	case it.Op().IsPush():
		return fmt.Sprintf("%05x: %v %s", it.PC(), it.Op(), new(uint256.Int).SetBytes(it.Arg()).Hex())
	case it.Op() == vm.RJUMPTABLE:
		return fmt.Sprintf("%05x: %v %d", it.PC(), it.Op(), binary.BigEndian.Uint16(it.Arg()))
	case it.Op().IsRelativeJump():
		// Offsets are relative to the end of the instruction.
		offset := int16(binary.BigEndian.Uint16(it.Arg()))
		target := int64(it.PC()) + int64(1+len(it.Arg())) + int64(offset)
		return fmt.Sprintf("%05x: %v %+d (%05x)", it.PC(), it.Op(), offset, target)
	default:
		return fmt.Sprintf("%05x: %v", it.PC(), it.Op())
	}
}
