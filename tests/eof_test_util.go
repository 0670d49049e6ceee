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

package tests

import (
	"fmt"

	"github.com/420integrated/go-420eof/common/hexutil"
	"github.com/420integrated/go-420eof/core/vm"
	"github.com/420integrated/go-420eof/params"
)

// EOFTest checks container validation against the expected outcome per fork.
//
// Results maps fork names to the expected error kind ("success" for a valid
// container). An expectation carries over to every later fork until the next
// listed one; forks before the first listed one are not tested.
type EOFTest struct {
	Code    hexutil.Bytes     `json:"code"`
	Results map[string]string `json:"results"`
}

// Expectation returns the expected error kind at the given revision, and
// false if the test does not cover it.
func (t *EOFTest) Expectation(rev params.Revision) (string, bool, error) {
	var (
		kind  string
		found bool
		best  params.Revision
	)
	for fork, want := range t.Results {
		r, err := GetRevision(fork)
		if err != nil {
			return "", false, err
		}
		if r <= rev && (!found || r > best) {
			kind, found, best = want, true, r
		}
	}
	return kind, found, nil
}

// Run validates the container under the given fork and compares the outcome
// with the expectation. Forks the test does not cover pass trivially.
func (t *EOFTest) Run(fork string) error {
	rev, err := GetRevision(fork)
	if err != nil {
		return err
	}
	want, ok, err := t.Expectation(rev)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if _, known := vm.ParseErrorKind(want); !known {
		return fmt.Errorf("unknown expected result %q", want)
	}
	if have := vm.ErrorKind(vm.ValidateEOF(rev, t.Code)); have != want {
		return fmt.Errorf("result mismatch at %v: have %s, want %s", rev, have, want)
	}
	return nil
}
