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
	"bytes"

	"github.com/420integrated/go-420eof/params"
)

const (
	sectionKindTerminator byte = 0
	sectionKindCode       byte = 1
	sectionKindData       byte = 2
	sectionKindTable      byte = 3
)

// sectionKinds lists the section kinds each container version understands.
var sectionKinds = [params.EOFMaxVersion + 1][sectionKindTable + 1]bool{
	params.EOFVersion1: {sectionKindCode: true, sectionKindData: true},
	params.EOFVersion2: {sectionKindCode: true, sectionKindData: true, sectionKindTable: true},
}

type sectionHeader struct {
	kind byte
	size uint16
}

// EOFHeader is the parsed section header table of a container.
type EOFHeader struct {
	Version byte

	sections   []sectionHeader // in header order, which is also body order
	bodyOffset int             // offset of the first section body
}

// HasEOFMagic returns true if code starts with the container magic.
func HasEOFMagic(code []byte) bool {
	return len(code) >= params.EOFMagicLength && bytes.Equal(code[:params.EOFMagicLength], params.EOFMagic[:])
}

// IsEOFCode reports whether code has to be treated as a container at the
// given revision. Before Shanghai the magic is ordinary legacy code.
func IsEOFCode(rev params.Revision, code []byte) bool {
	return rev.IsShanghai() && HasEOFMagic(code)
}

// ParseEOFHeader parses the container prefix and section header table of
// code and checks the section layout. It does not look at the instructions;
// use ValidateEOF for a full validation.
func ParseEOFHeader(rev params.Revision, code []byte) (*EOFHeader, error) {
	// The magic and the version byte must both be present.
	if len(code) < params.EOFMagicLength+1 || !HasEOFMagic(code) {
		return nil, ErrInvalidPrefix
	}
	r := newCodeReader(code)
	r.skip(params.EOFMagicLength)

	version, _ := r.readByte()
	if eofInstructionSet(rev, version) == nil {
		return nil, ErrEOFVersionUnknown
	}
	var (
		header     = &EOFHeader{Version: version}
		codeCount  int
		dataCount  int
		bodiesSize int
	)
sectionLoop:
	for {
		kind, ok := r.readByte()
		if !ok {
			return nil, ErrSectionHeadersNotTerminated
		}
		if kind == sectionKindTerminator {
			break sectionLoop
		}
		if int(kind) >= len(sectionKinds[version]) || !sectionKinds[version][kind] {
			return nil, ErrUnknownSectionID
		}
		// Data and table sections are allowed only after the code section.
		if kind != sectionKindCode && codeCount == 0 {
			return nil, ErrCodeSectionMissing
		}
		size, ok := r.readUint16()
		if !ok {
			return nil, ErrSectionHeadersNotTerminated
		}
		if size == 0 {
			return nil, ErrZeroSectionSize
		}
		switch kind {
		case sectionKindCode:
			codeCount++
		case sectionKindData:
			dataCount++
		case sectionKindTable:
			// Tables hold 2-byte relative offsets.
			if size%2 != 0 {
				return nil, ErrOddTableSectionSize
			}
		}
		header.sections = append(header.sections, sectionHeader{kind: kind, size: size})
		bodiesSize += int(size)
	}
	switch {
	case codeCount == 0:
		return nil, ErrCodeSectionMissing
	case codeCount > 1:
		return nil, ErrMultipleCodeSections
	case dataCount > 1:
		return nil, ErrMultipleDataSections
	}
	// Declared section sizes must correspond to real size (trailing bytes are not allowed.)
	header.bodyOffset = r.offset()
	if r.remaining() != bodiesSize {
		return nil, ErrInvalidSectionBodiesSize
	}
	return header, nil
}

// CodeBeginOffset returns starting offset of the code section
func (h *EOFHeader) CodeBeginOffset() int {
	return h.bodyOffset
}

// CodeEndOffset returns offset of the code section end
func (h *EOFHeader) CodeEndOffset() int {
	return h.bodyOffset + h.CodeSize()
}

// CodeSize returns the declared size of the code section.
func (h *EOFHeader) CodeSize() int {
	return h.sectionSize(sectionKindCode)
}

// DataSize returns the declared size of the data section, 0 if absent.
func (h *EOFHeader) DataSize() int {
	return h.sectionSize(sectionKindData)
}

// DataBeginOffset returns the offset of the data section, or -1 if the
// container has none.
func (h *EOFHeader) DataBeginOffset() int {
	offsets := h.sectionOffsets(sectionKindData)
	if len(offsets) == 0 {
		return -1
	}
	return offsets[0]
}

// TableOffsets returns the offsets of the table sections in header order.
func (h *EOFHeader) TableOffsets() []int {
	return h.sectionOffsets(sectionKindTable)
}

// TableCount returns the number of jump table sections.
func (h *EOFHeader) TableCount() int {
	n := 0
	for _, s := range h.sections {
		if s.kind == sectionKindTable {
			n++
		}
	}
	return n
}

// Size returns the total length of the container.
func (h *EOFHeader) Size() int {
	size := h.bodyOffset
	for _, s := range h.sections {
		size += int(s.size)
	}
	return size
}

func (h *EOFHeader) sectionOffsets(kind byte) []int {
	var (
		offsets []int
		offset  = h.bodyOffset
	)
	for _, s := range h.sections {
		if s.kind == kind {
			offsets = append(offsets, offset)
		}
		offset += int(s.size)
	}
	return offsets
}

func (h *EOFHeader) sectionSize(kind byte) int {
	for _, s := range h.sections {
		if s.kind == kind {
			return int(s.size)
		}
	}
	return 0
}

// Container is a validated container split into its section bodies. The
// slices alias the code they were read from.
type Container struct {
	Version byte
	Code    []byte
	Data    []byte
	Tables  [][]byte
}

// ReadContainer validates code and returns its sections.
func ReadContainer(rev params.Revision, code []byte) (*Container, error) {
	header, err := validateEOF(rev, code)
	if err != nil {
		return nil, err
	}
	c := &Container{Version: header.Version}

	offset := header.bodyOffset
	for _, s := range header.sections {
		body := code[offset : offset+int(s.size)]
		switch s.kind {
		case sectionKindCode:
			c.Code = body
		case sectionKindData:
			c.Data = body
		case sectionKindTable:
			c.Tables = append(c.Tables, body)
		}
		offset += int(s.size)
	}
	return c, nil
}
