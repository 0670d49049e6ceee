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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/420integrated/go-420eof/common"
	"github.com/420integrated/go-420eof/core/asm"
	"github.com/420integrated/go-420eof/core/vm"
	"github.com/420integrated/go-420eof/params"
	"github.com/420integrated/go-420eof/tests"
)

var (
	eofVersionFlag = cli.IntFlag{
		Name:  "eof",
		Usage: "Container version whose instruction set is listed (0 for legacy code)",
	}

	disasmCommand = cli.Command{
		Action:    migrateFlags(disasmCmd),
		Name:      "disasm",
		Usage:     "Disassemble a container or legacy code",
		ArgsUsage: "<hex>",
		Flags:     []cli.Flag{forkFlag},
		Category:  "INSPECTION COMMANDS",
		Description: `
The disasm command prints the section layout of a container followed by the
instruction listing of its code section. Code without the container magic, or
any code before Shanghai, is listed as legacy code.`,
	}
	opcodesCommand = cli.Command{
		Action:    migrateFlags(opcodesCmd),
		Name:      "opcodes",
		Usage:     "List the instruction set of a fork",
		ArgsUsage: "",
		Flags:     []cli.Flag{forkFlag, eofVersionFlag},
		Category:  "INSPECTION COMMANDS",
	}
	forksCommand = cli.Command{
		Action:    forksCmd,
		Name:      "forks",
		Usage:     "List known forks and the container versions they accept",
		ArgsUsage: "",
		Category:  "INSPECTION COMMANDS",
	}
)

func disasmCmd(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one hex argument")
	}
	code, err := common.ParseHex(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("invalid hex: %v", err)
	}
	rev := makeConfig(ctx).Validator.Fork

	if vm.IsEOFCode(rev, code) {
		c, err := vm.ReadContainer(rev, code)
		if err != nil {
			return fmt.Errorf("invalid container: %s", vm.ErrorKind(err))
		}
		header, _ := vm.ParseEOFHeader(rev, code)

		fmt.Printf("version: %d\n", c.Version)
		fmt.Printf("code:    offset %d, size %d\n", header.CodeBeginOffset(), header.CodeSize())
		if header.DataSize() > 0 {
			fmt.Printf("data:    offset %d, size %d\n", header.DataBeginOffset(), header.DataSize())
		}
		for i, offset := range header.TableOffsets() {
			fmt.Printf("table %d: offset %d, size %d\n", i, offset, len(c.Tables[i]))
		}
		fmt.Println()
	}
	listing, err := asm.Disassemble(rev, code)
	if err != nil {
		return err
	}
	for _, line := range listing {
		fmt.Println(line)
	}
	return nil
}

func opcodesCmd(ctx *cli.Context) error {
	rev := makeConfig(ctx).Validator.Fork

	jt := vm.LegacyInstructionSet(rev)
	if version := ctx.Int(eofVersionFlag.Name); version != 0 {
		var err error
		if version < 0 || version > 0xff {
			return fmt.Errorf("invalid container version %d", version)
		}
		if jt, err = vm.LookupInstructionSet(rev, byte(version)); err != nil {
			return fmt.Errorf("%v at %v: %v", version, rev, err)
		}
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Opcode", "Name", "Immediate", "Smoke", "Halts"})
	for i := 0; i < 256; i++ {
		op := vm.OpCode(i)
		if !jt.Defined(op) {
			continue
		}
		table.Append([]string{
			fmt.Sprintf("0x%02x", i),
			op.String(),
			strconv.Itoa(jt.Immediate(op)),
			strconv.FormatUint(jt.ConstantSmoke(op), 10),
			strconv.FormatBool(jt.Halts(op)),
		})
	}
	table.Render()
	return nil
}

func forksCmd(ctx *cli.Context) error {
	aliases := make(map[params.Revision][]string)
	for _, name := range tests.AvailableForks() {
		rev := tests.Forks[name]
		if name != rev.String() {
			aliases[rev] = append(aliases[rev], name)
		}
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Fork", "Aliases", "Containers"})
	for _, rev := range params.Revisions() {
		var versions []string
		for v := 1; v <= int(params.EOFMaxVersion); v++ {
			if _, err := vm.LookupInstructionSet(rev, byte(v)); err == nil {
				versions = append(versions, strconv.Itoa(v))
			}
		}
		if len(versions) == 0 {
			versions = []string{"-"}
		}
		table.Append([]string{rev.String(), strings.Join(aliases[rev], ", "), strings.Join(versions, ", ")})
	}
	table.Render()
	fmt.Println("Activatable EIPs:", strings.Join(vm.ActivateableEips(), ", "))
	return nil
}
