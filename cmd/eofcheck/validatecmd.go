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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/420integrated/go-420eof/common"
	"github.com/420integrated/go-420eof/core"
	"github.com/420integrated/go-420eof/log"
	"github.com/420integrated/go-420eof/metrics"
)

var (
	inputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "File holding one hex container per line (- for standard input)",
	}

	validateCommand = cli.Command{
		Action:    migrateFlags(validate),
		Name:      "validate",
		Usage:     "Validate containers",
		ArgsUsage: "[<hex>...]",
		Flags: []cli.Flag{
			forkFlag,
			workersFlag,
			inputFlag,
		},
		Category: "VALIDATION COMMANDS",
		Description: `
The validate command checks every given container against the rules of the
selected fork and prints one line per container, OK or REJECT followed by the
reason. Containers are hex strings; a 0x prefix and whitespace are allowed.

The command exits with status 1 if any container was rejected.`,
	}
)

func validate(ctx *cli.Context) error {
	cfg := makeConfig(ctx)

	inputs := append([]string{}, ctx.Args()...)
	if file := ctx.String(inputFlag.Name); file != "" {
		lines, err := readInputFile(file)
		if err != nil {
			return err
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return errors.New("no containers given")
	}
	codes := make([][]byte, len(inputs))
	for i, input := range inputs {
		code, err := common.ParseHex(input)
		if err != nil {
			return fmt.Errorf("container %d: invalid hex: %v", i, err)
		}
		codes[i] = code
	}
	log.Info("Validating containers", "count", len(codes), "fork", cfg.Validator.Fork)

	results, err := core.ValidateBatch(context.Background(), cfg.Validator, codes)
	if err != nil {
		return err
	}
	var (
		ok       = color.New(color.FgGreen).SprintFunc()
		reject   = color.New(color.FgRed).SprintFunc()
		rejected int
	)
	for _, res := range results {
		if res.Err == nil {
			fmt.Println(ok("OK"))
			continue
		}
		rejected++
		fmt.Println(reject("REJECT"), res.Kind())
	}
	if len(results) > 1 {
		printSummary(os.Stdout)
	}
	if rejected > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d containers rejected", rejected, len(results)), 1)
	}
	return nil
}

// readInputFile returns the non-empty lines of file that are not comments.
func readInputFile(file string) ([]string, error) {
	var in io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return readInputLines(in)
}

// readInputLines splits in into container lines. Lines have no length limit.
func readInputLines(in io.Reader) ([]string, error) {
	var (
		lines  []string
		reader = bufio.NewReader(in)
	)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

// printSummary renders the per-result counters of the validator.
func printSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Result", "Containers"})
	metrics.DefaultRegistry.Each(func(name string, metric interface{}) {
		if !strings.HasPrefix(name, core.ResultMetricPrefix) {
			return
		}
		if c, ok := metric.(metrics.Counter); ok && c.Count() > 0 {
			table.Append([]string{strings.TrimPrefix(name, core.ResultMetricPrefix), strconv.FormatInt(c.Count(), 10)})
		}
	})
	table.Render()
}
