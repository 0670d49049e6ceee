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

package common

import (
	"bytes"
	"testing"
)

func TestParseHex(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  []byte
		err   error
	}{
		{"", []byte{}, nil},
		{"0x", []byte{}, nil},
		{"EFCAFE01", []byte{0xef, 0xca, 0xfe, 0x01}, nil},
		{"0xEFCAFE01 010001 00 FE", []byte{0xef, 0xca, 0xfe, 0x01, 0x01, 0x00, 0x01, 0x00, 0xfe}, nil},
		{" ef\tca\nfe ", []byte{0xef, 0xca, 0xfe}, nil},
		{"efc", nil, ErrOddLength},
	} {
		have, err := ParseHex(tt.input)
		if err != tt.err {
			t.Errorf("%q: error %v, want %v", tt.input, err, tt.err)
			continue
		}
		if !bytes.Equal(have, tt.want) {
			t.Errorf("%q: have %x, want %x", tt.input, have, tt.want)
		}
	}
	if _, err := ParseHex("zz"); err == nil {
		t.Error("invalid digits accepted")
	}
}

func TestFromHex(t *testing.T) {
	if have := FromHex("0x1"); !bytes.Equal(have, []byte{0x01}) {
		t.Errorf("have %x", have)
	}
	if have := FromHex("0102"); !bytes.Equal(have, []byte{0x01, 0x02}) {
		t.Errorf("have %x", have)
	}
}

func TestCopyBytes(t *testing.T) {
	input := []byte{1, 2, 3, 4}

	v := CopyBytes(input)
	if !bytes.Equal(v, []byte{1, 2, 3, 4}) {
		t.Fatal("not equal after copy")
	}
	v[0] = 99
	if bytes.Equal(v, input) {
		t.Fatal("result is not a copy")
	}
	if CopyBytes(nil) != nil {
		t.Fatal("nil input copied to non-nil")
	}
}

func TestHashHex(t *testing.T) {
	h := BytesToHash([]byte{0x01, 0x02})
	if have := h.Hex(); have != "0x0000000000000000000000000000000000000000000000000000000000000102" {
		t.Errorf("have %s", have)
	}
	if have := h.TerminalString(); have != "000000…000102" {
		t.Errorf("have %s", have)
	}
}
