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

package hexutil

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  []byte
		err   error
	}{
		{"", nil, ErrEmptyString},
		{"0", nil, ErrMissingPrefix},
		{"efcafe", nil, ErrMissingPrefix},
		{"0x0", nil, ErrOddLength},
		{"0x", []byte{}, nil},
		{"0xEFcafe", []byte{0xef, 0xca, 0xfe}, nil},
	} {
		have, err := Decode(tt.input)
		if err != tt.err {
			t.Errorf("%q: error %v, want %v", tt.input, err, tt.err)
			continue
		}
		if !bytes.Equal(have, tt.want) {
			t.Errorf("%q: have %x, want %x", tt.input, have, tt.want)
		}
	}
}

func TestBytesJSON(t *testing.T) {
	var fixture struct {
		Code Bytes `json:"code"`
	}
	if err := json.Unmarshal([]byte(`{"code": "0xefcafe01"}`), &fixture); err != nil {
		t.Fatal(err)
	}
	if fixture.Code.String() != "0xefcafe01" {
		t.Fatalf("have %s", fixture.Code)
	}
	if err := json.Unmarshal([]byte(`{"code": "efcafe01"}`), &fixture); err == nil {
		t.Fatal("unprefixed hex accepted")
	}
	out, err := json.Marshal(fixture)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"code":"0xefcafe01"}` {
		t.Fatalf("have %s", out)
	}
	if Encode(nil) != "0x" || !bytes.Equal(MustDecode("0x01"), []byte{1}) {
		t.Fatal("wrong empty encoding")
	}
}
