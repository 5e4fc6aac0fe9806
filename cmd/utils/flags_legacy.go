// Copyright 2020 The go-ethereum Authors
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

package utils

import (
	"github.com/sunyihoo/ethabi/internal/flags"
	"github.com/urfave/cli/v2"
)

// DeprecatedFlags are still accepted but have no effect, or map onto a
// current flag.
var DeprecatedFlags = []cli.Flag{
	LegacyFourbyteFlag,
	LogDebugFlag,
}

var (
	// Deprecated in favour of --4byte.custom
	LegacyFourbyteFlag = &cli.StringFlag{
		Name:     "4bytedb-custom",
		Usage:    "File to be used for custom 4byte selectors (deprecated, use --4byte.custom)",
		Category: flags.DeprecatedCategory,
	}
	LogDebugFlag = &cli.BoolFlag{
		Name:     "log.debug",
		Usage:    "Prepends log messages with call-site location (deprecated)",
		Category: flags.DeprecatedCategory,
	}
)

// MigrateLegacyFlags copies values of deprecated flags onto their
// replacements, unless the replacement was given explicitly.
func MigrateLegacyFlags(ctx *cli.Context) {
	if ctx.IsSet(LegacyFourbyteFlag.Name) && !ctx.IsSet(FourbyteCustomFlag.Name) {
		ctx.Set(FourbyteCustomFlag.Name, ctx.String(LegacyFourbyteFlag.Name))
	}
}
