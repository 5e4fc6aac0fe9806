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

// abicodec is a command-line tool for the Ethereum contract ABI.
package main

import (
	"fmt"
	"os"

	"github.com/sunyihoo/ethabi/cmd/utils"
	"github.com/sunyihoo/ethabi/internal/debug"
	"github.com/sunyihoo/ethabi/internal/flags"
	"github.com/urfave/cli/v2"
)

var app = flags.NewApp("the contract ABI command line interface")

func init() {
	app.Commands = []*cli.Command{
		// See abicmd.go:
		selectorCommand,
		topicCommand,
		encodeCommand,
		decodeCommand,
		calldataCommand,
		decodeLogCommand,
		// See fourbytecmd.go:
		fourbyteCommand,
		// See config.go:
		dumpConfigCommand,
	}
	app.Flags = flags.Merge(
		[]cli.Flag{
			utils.ConfigFileFlag,
			utils.FourbyteCustomFlag,
			utils.FourbyteNoEmbeddedFlag,
			utils.NoCacheFlag,
		},
		utils.DeprecatedFlags,
		debug.Flags,
	)
	before := app.Before
	app.Before = func(ctx *cli.Context) error {
		if err := before(ctx); err != nil {
			return err
		}
		utils.MigrateLegacyFlags(ctx)
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
