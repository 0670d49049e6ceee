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
)

func TestCodeReader(t *testing.T) {
	r := newCodeReader([]byte{0x01, 0x02, 0x03})

	if b, ok := r.readByte(); !ok || b != 0x01 {
		t.Fatalf("readByte: have %x %v", b, ok)
	}
	if v, ok := r.readUint16(); !ok || v != 0x0203 {
		t.Fatalf("readUint16: have %x %v", v, ok)
	}
	if !r.done() || r.remaining() != 0 || r.offset() != 3 {
		t.Fatalf("wrong end state: done %v, remaining %d, offset %d", r.done(), r.remaining(), r.offset())
	}
	if _, ok := r.readByte(); ok {
		t.Fatal("read past the end")
	}
}

func TestCodeReaderShortReads(t *testing.T) {
	r := newCodeReader([]byte{0xff})
	if _, ok := r.readUint16(); ok {
		t.Fatal("readUint16 succeeded with one byte left")
	}
	if r.offset() != 0 {
		t.Fatalf("failed read moved the cursor to %d", r.offset())
	}
	if r.skip(2) {
		t.Fatal("skipped past the end")
	}
	if r.skip(-1) {
		t.Fatal("skipped backwards")
	}
	if !r.skip(1) || !r.done() {
		t.Fatal("failed to skip the last byte")
	}
	if !r.skip(0) {
		t.Fatal("empty skip at the end failed")
	}
}
