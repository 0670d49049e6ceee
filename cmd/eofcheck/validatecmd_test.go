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
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/420integrated/go-420eof/common"
	"github.com/420integrated/go-420eof/core/vm"
	"github.com/420integrated/go-420eof/params"
)

func TestValidateValid(t *testing.T) {
	eofcheck := runEofcheck(t, "validate", "0xEFCAFE01 010001 00 FE")
	eofcheck.Expect(`
OK
`)
	eofcheck.ExpectExit()
	if status := eofcheck.ExitStatus(); status != 0 {
		t.Fatalf("exit status %d, want 0", status)
	}
}

func TestValidateReject(t *testing.T) {
	eofcheck := runEofcheck(t, "validate", "EFCAFE01 010001 00 60")
	eofcheck.Expect(`
REJECT truncated_push
`)
	eofcheck.ExpectExit()
	if status := eofcheck.ExitStatus(); status != 1 {
		t.Fatalf("exit status %d, want 1", status)
	}
	if !strings.Contains(eofcheck.StderrText(), "1 of 1 containers rejected") {
		t.Fatalf("missing rejection message in stderr:\n%s", eofcheck.StderrText())
	}
}

func TestValidateFork(t *testing.T) {
	eofcheck := runEofcheck(t, "--fork", "London", "validate", "EFCAFE01010001 00FE")
	eofcheck.Expect(`
REJECT eof_version_unknown
`)
	eofcheck.ExpectExit()

	// Fixture names are accepted as well, after the command too.
	eofcheck = runEofcheck(t, "validate", "--fork", "ConstantinopleFix", "EFCAFE01010001 00FE")
	eofcheck.Expect(`
REJECT eof_version_unknown
`)
	eofcheck.ExpectExit()
}

func TestValidateUnknownFork(t *testing.T) {
	eofcheck := runEofcheck(t, "--fork", "Prague", "validate", "EFCAFE01010001 00FE")
	eofcheck.ReadAll()
	if status := eofcheck.ExitStatus(); status != 1 {
		t.Fatalf("exit status %d, want 1", status)
	}
	if !strings.Contains(eofcheck.StderrText(), `unsupported fork "Prague"`) {
		t.Fatalf("wrong error:\n%s", eofcheck.StderrText())
	}
}

func TestValidateStdin(t *testing.T) {
	eofcheck := runEofcheck(t, "validate", "--input", "-")
	eofcheck.InputLine("# comment lines are skipped")
	eofcheck.InputLine("EFCAFE02 010003 00 5C0000")
	eofcheck.InputLine("")
	eofcheck.InputLine("EFCAFE02 010002 00 5C00")
	eofcheck.InputLine("EFCAFE02 010003 00 5C0000")
	eofcheck.CloseStdin()

	out := eofcheck.ReadAll()
	lines := strings.Split(out, "\n")
	if len(lines) < 3 || lines[0] != "OK" || lines[1] != "REJECT missing_immediate_argument" || lines[2] != "OK" {
		t.Fatalf("wrong output:\n%s", out)
	}
	for _, want := range []string{"RESULT", "SUCCESS", "MISSING_IMMEDIATE_ARGUMENT"} {
		if !strings.Contains(strings.ToUpper(out), want) {
			t.Errorf("summary misses %q:\n%s", want, out)
		}
	}
	if status := eofcheck.ExitStatus(); status != 1 {
		t.Fatalf("exit status %d, want 1", status)
	}
}

func TestReadInputLines(t *testing.T) {
	// version 2 container with one code byte and enough tables that its hex
	// form is several megabytes long
	const tables = 300000
	var container bytes.Buffer
	container.Write([]byte{0xEF, 0xCA, 0xFE, 0x02, 0x01, 0x00, 0x01})
	for i := 0; i < tables; i++ {
		container.Write([]byte{0x03, 0x00, 0x02})
	}
	container.WriteByte(0x00)
	container.WriteByte(0xFE)
	container.Write(make([]byte, 2*tables))
	long := hex.EncodeToString(container.Bytes())

	input := "# header\n\nEFCAFE01 010001 00 FE\n" + long + "\nEFCAFE02 010001 00 FE"
	lines, err := readInputLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("have %d lines, want 3", len(lines))
	}
	if lines[0] != "EFCAFE01 010001 00 FE" || lines[2] != "EFCAFE02 010001 00 FE" {
		t.Errorf("wrong short lines: %q, %q", lines[0], lines[2])
	}
	if lines[1] != long {
		t.Fatalf("long line mangled: have %d chars, want %d", len(lines[1]), len(long))
	}
	code, err := common.ParseHex(lines[1])
	if err != nil {
		t.Fatalf("long line does not parse: %v", err)
	}
	if err := vm.ValidateEOF(params.Shanghai, code); err != nil {
		t.Fatalf("long container rejected: %v", err)
	}
}

func TestValidateBadHex(t *testing.T) {
	eofcheck := runEofcheck(t, "validate", "EFCAFE0")
	eofcheck.ReadAll()
	if status := eofcheck.ExitStatus(); status != 1 {
		t.Fatalf("exit status %d, want 1", status)
	}
	if !strings.Contains(eofcheck.StderrText(), "invalid hex") {
		t.Fatalf("wrong error:\n%s", eofcheck.StderrText())
	}
}

func TestDumpConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "eofcheck-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "config.toml")

	eofcheck := runEofcheck(t, "--fork", "Berlin", "--workers", "3", "dumpconfig", file)
	eofcheck.ExpectExit()

	blob, err := ioutil.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[Validator]", `Fork = "Berlin"`, "Workers = 3", "SkipDuplicates = true"} {
		if !strings.Contains(string(blob), want) {
			t.Errorf("config misses %q:\n%s", want, blob)
		}
	}
	// The dumped config is loaded back and drives the validator.
	eofcheck = runEofcheck(t, "--config", file, "validate", "EFCAFE01010001 00FE")
	eofcheck.Expect(`
REJECT eof_version_unknown
`)
	eofcheck.ExpectExit()
}

func TestBadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "eofcheck-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "config.toml")
	if err := ioutil.WriteFile(file, []byte("[Validator]\nThreads = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	eofcheck := runEofcheck(t, "--config", file, "validate", "EFCAFE01010001 00FE")
	eofcheck.ReadAll()
	if status := eofcheck.ExitStatus(); status != 1 {
		t.Fatalf("exit status %d, want 1", status)
	}
	if !strings.Contains(eofcheck.StderrText(), "field 'Threads' is not defined") {
		t.Fatalf("wrong error:\n%s", eofcheck.StderrText())
	}
}
