// Copyright 2021 The The 420Integrated Development Group
// This file is part of go-420coin.
//
// go-420coin is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-420coin is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-420coin. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"strings"
	"testing"
)

func TestDisasmContainer(t *testing.T) {
	eofcheck := runEofcheck(t, "disasm", "EFCAFE02 010006 020001 030002 00 600D5C0000 00 DA 0000")
	eofcheck.Expect(`
version: 2
code:    offset 14, size 6
data:    offset 20, size 1
table 0: offset 21, size 2

00000: PUSH1 0xd
00002: RJUMP +0 (00005)
00005: STOP
`)
	eofcheck.ExpectExit()
}

func TestDisasmLegacy(t *testing.T) {
	eofcheck := runEofcheck(t, "--fork", "London", "disasm", "60015f")
	eofcheck.Expect(`
00000: PUSH1 0x1
00002: INVALID 0x5f
`)
	eofcheck.ExpectExit()
}

func TestDisasmInvalidContainer(t *testing.T) {
	eofcheck := runEofcheck(t, "disasm", "EFCAFE01 010001 00 0C")
	eofcheck.ReadAll()
	if status := eofcheck.ExitStatus(); status != 1 {
		t.Fatalf("exit status %d, want 1", status)
	}
	if !strings.Contains(eofcheck.StderrText(), "invalid container: undefined_instruction") {
		t.Fatalf("wrong error:\n%s", eofcheck.StderrText())
	}
}

func TestOpcodes(t *testing.T) {
	eofcheck := runEofcheck(t, "opcodes", "--eof", "2")
	out := eofcheck.ReadAll()
	for _, want := range []string{"RJUMPTABLE", "PUSH0", "PUSH32"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing misses %s:\n%s", want, out)
		}
	}
	eofcheck = runEofcheck(t, "--fork", "Istanbul", "opcodes")
	out = eofcheck.ReadAll()
	if strings.Contains(out, "BASEFEE") || strings.Contains(out, "RJUMP") || !strings.Contains(out, "CHAINID") {
		t.Errorf("wrong Istanbul listing:\n%s", out)
	}
	eofcheck = runEofcheck(t, "--fork", "London", "opcodes", "--eof", "1")
	eofcheck.ReadAll()
	if status := eofcheck.ExitStatus(); status != 1 {
		t.Fatalf("exit status %d, want 1", status)
	}
}

func TestForks(t *testing.T) {
	eofcheck := runEofcheck(t, "forks")
	out := eofcheck.ReadAll()
	for _, want := range []string{"Shanghai", "ConstantinopleFix", "EIP158", "Activatable EIPs: 1344, 1884, 2200, 2929, 3198, 3855, 4200"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing misses %q:\n%s", want, out)
		}
	}
}
