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
	"github.com/420integrated/go-420eof/params"
)

// ValidateEOF checks that code is a well-formed container whose code section
// only holds instructions defined for the revision and container version.
// It returns nil for a valid container and a ValidationError otherwise.
//
// ValidateEOF is a pure function of its inputs and safe for concurrent use.
// Relative jump destinations are not checked yet.
func ValidateEOF(rev params.Revision, code []byte) error {
	_, err := validateEOF(rev, code)
	return err
}

func validateEOF(rev params.Revision, code []byte) (*EOFHeader, error) {
	header, err := ParseEOFHeader(rev, code)
	if err != nil {
		return nil, err
	}
	jt := eofInstructionSet(rev, header.Version)
	if err := validateInstructions(code[header.CodeBeginOffset():header.CodeEndOffset()], jt); err != nil {
		return nil, err
	}
	return header, nil
}

// validateInstructions walks the code section and checks that there are no
// undefined instructions and no immediate runs past the end of the section.
func validateInstructions(code []byte, jt *JumpTable) error {
	r := newCodeReader(code)
	for !r.done() {
		b, _ := r.readByte()
		op := OpCode(b)

		operation := jt[op]
		if operation == nil {
			return ErrUndefinedInstruction
		}
		if operation.immediate > 0 && !r.skip(operation.immediate) {
			if op.IsPush() {
				return ErrTruncatedPush
			}
			return ErrMissingImmediateArgument
		}
	}
	return nil
}
