// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"sort"

	"github.com/sunyihoo/ethabi/cmd/utils"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var fourbyteCommand = &cli.Command{
	Name:  "fourbyte",
	Usage: "Manage the 4byte selector database",
	Flags: []cli.Flag{utils.FourbyteCustomFlag, utils.FourbyteNoEmbeddedFlag},
	Subcommands: []*cli.Command{
		{
			Action:    fourbyteAdd,
			Name:      "add",
			Usage:     "Add function signatures to the custom database",
			ArgsUsage: "<signature> [signature...]",
			Flags:     []cli.Flag{utils.FourbyteCustomFlag, utils.FourbyteNoEmbeddedFlag},
		},
		{
			Action:    fourbyteLookup,
			Name:      "lookup",
			Usage:     "Print the signature registered for a selector",
			ArgsUsage: "<selector>",
			Flags:     []cli.Flag{utils.FourbyteCustomFlag, utils.FourbyteNoEmbeddedFlag},
		},
		{
			Action: fourbyteList,
			Name:   "list",
			Usage:  "List all known selectors",
			Flags:  []cli.Flag{utils.FourbyteCustomFlag, utils.FourbyteNoEmbeddedFlag},
		},
	},
}

func fourbyteAdd(ctx *cli.Context) error {
	if err := signatureArg(ctx, 1); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Fourbyte.CustomPath == "" {
		return fmt.Errorf("no custom database file, set --%s", utils.FourbyteCustomFlag.Name)
	}
	db, err := utils.OpenFourbyte(&cfg.Fourbyte)
	if err != nil {
		return err
	}
	for _, sig := range ctx.Args().Slice() {
		id, err := db.AddSelector(sig)
		if err != nil {
			return fmt.Errorf("failed to add %q: %w", sig, err)
		}
		fmt.Fprintf(ctx.App.Writer, "0x%s %s\n", id, sig)
	}
	embedded, custom := db.Size()
	log.Info("Updated 4byte database", "path", cfg.Fourbyte.CustomPath, "embedded", embedded, "custom", custom)
	return nil
}

func fourbyteLookup(ctx *cli.Context) error {
	if err := signatureArg(ctx, 1); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	db, err := utils.OpenFourbyte(&cfg.Fourbyte)
	if err != nil {
		return err
	}
	id, err := decodeHex(ctx.Args().First())
	if err != nil {
		return err
	}
	sig, err := db.Selector(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, sig)
	return nil
}

func fourbyteList(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	db, err := utils.OpenFourbyte(&cfg.Fourbyte)
	if err != nil {
		return err
	}
	ids := db.Selectors().ToSlice()
	sort.Strings(ids)
	for _, id := range ids {
		sig, err := db.Selector(mustSelector(id))
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "0x%s %s\n", id, sig)
	}
	return nil
}

func mustSelector(id string) []byte {
	b, err := decodeHex(id)
	if err != nil {
		utils.Fatalf("Corrupt selector %q in database: %v", id, err)
	}
	return b
}
