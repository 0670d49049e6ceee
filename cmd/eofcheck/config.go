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
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/420integrated/go-420eof/core"
	"github.com/420integrated/go-420eof/log"
	"github.com/420integrated/go-420eof/params"
	"github.com/420integrated/go-420eof/tests"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      migrateFlags(dumpConfig),
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "[<file>]",
		Flags:       []cli.Flag{forkFlag, workersFlag},
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type eofcheckConfig struct {
	Validator core.Config
}

func loadConfig(file string, cfg *eofcheckConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the defaults, then the config file, then applies flags.
func makeConfig(ctx *cli.Context) eofcheckConfig {
	cfg := eofcheckConfig{
		Validator: core.DefaultConfig,
	}
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			fatalf("%v", err)
		}
	}
	if ctx.GlobalIsSet(forkFlag.Name) {
		rev, err := parseFork(ctx.GlobalString(forkFlag.Name))
		if err != nil {
			fatalf("%v", err)
		}
		cfg.Validator.Fork = rev
	}
	if ctx.GlobalIsSet(workersFlag.Name) {
		cfg.Validator.Workers = ctx.GlobalInt(workersFlag.Name)
	}
	log.Debug("Loaded configuration", "fork", cfg.Validator.Fork, "workers", cfg.Validator.Workers)
	return cfg
}

// parseFork accepts both revision names and the fork names used by test
// fixtures ("EIP158", "ConstantinopleFix").
func parseFork(name string) (params.Revision, error) {
	if rev, err := tests.GetRevision(name); err == nil {
		return rev, nil
	}
	if rev, err := params.ParseRevision(name); err == nil {
		return rev, nil
	}
	return 0, tests.UnsupportedForkError{Name: name}
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg := makeConfig(ctx)

	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	dump := os.Stdout
	if ctx.NArg() > 0 {
		dump, err = os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer dump.Close()
	}
	dump.Write(out)

	return nil
}
