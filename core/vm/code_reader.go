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

// codeReader is a forward-only cursor over an immutable byte slice. Every
// advance is bounds checked up front and reports failure instead of reading
// past the end.
type codeReader struct {
	code []byte
	pos  int
}

func newCodeReader(code []byte) *codeReader {
	return &codeReader{code: code}
}

// offset returns the position of the next unread byte.
func (r *codeReader) offset() int { return r.pos }

// remaining returns the number of unread bytes.
func (r *codeReader) remaining() int { return len(r.code) - r.pos }

// done reports whether the cursor reached the end of the slice.
func (r *codeReader) done() bool { return r.pos >= len(r.code) }

// readByte returns the next byte, or false if none is left.
func (r *codeReader) readByte() (byte, bool) {
	if r.remaining() < 1 {
		return 0, false
	}
	b := r.code[r.pos]
	r.pos++
	return b, true
}

// readUint16 returns the next two bytes as a big-endian integer, or false if
// fewer than two are left. The cursor does not move on failure.
func (r *codeReader) readUint16() (uint16, bool) {
	if r.remaining() < 2 {
		return 0, false
	}
	v := uint16(r.code[r.pos])<<8 | uint16(r.code[r.pos+1])
	r.pos += 2
	return v, true
}

// skip advances the cursor by n bytes, or returns false without moving if
// fewer than n are left.
func (r *codeReader) skip(n int) bool {
	if n < 0 || r.remaining() < n {
		return false
	}
	r.pos += n
	return true
}
