// Copyright 2015 The go-ethereum Authors
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

// Package utils contains internal helper functions for abicodec commands.
package utils

import (
	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/internal/flags"
	"github.com/sunyihoo/ethabi/signer/fourbyte"
	"github.com/urfave/cli/v2"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	// Signature database settings
	FourbyteCustomFlag = &flags.DirectoryFlag{
		Name:     "4byte.custom",
		Usage:    "File containing user-added 4byte selectors",
		Category: flags.DatabaseCategory,
	}
	FourbyteNoEmbeddedFlag = &cli.BoolFlag{
		Name:     "4byte.noembedded",
		Usage:    "Skip the built-in selector set and only use the custom file",
		Category: flags.DatabaseCategory,
	}

	// Codec settings
	NoCacheFlag = &cli.BoolFlag{
		Name:     "nocache",
		Usage:    "Parse every signature afresh instead of using the signature cache",
		Category: flags.CodecCategory,
	}
	NoSelectorFlag = &cli.BoolFlag{
		Name:     "noselector",
		Usage:    "Encode or decode the argument block only, without the 4-byte selector",
		Category: flags.CodecCategory,
	}
	DumpFlag = &cli.BoolFlag{
		Name:     "dump",
		Usage:    "Print decoded values as a Go structure dump",
		Category: flags.CodecCategory,
	}
	TopicsFlag = &cli.StringSliceFlag{
		Name:     "topics",
		Usage:    "Comma separated log topics, in order",
		Category: flags.CodecCategory,
	}
	DataFlag = &cli.StringFlag{
		Name:     "data",
		Usage:    "Hex encoded log data",
		Category: flags.CodecCategory,
	}
)

// FourbyteConfig holds the signature database settings.
type FourbyteConfig struct {
	CustomPath string `toml:",omitempty"`
	NoEmbedded bool
}

// CacheConfig holds the signature cache settings.
type CacheConfig struct {
	Disabled bool
}

// SetFourbyteConfig applies signature database flags on the config.
func SetFourbyteConfig(ctx *cli.Context, cfg *FourbyteConfig) {
	if ctx.IsSet(FourbyteCustomFlag.Name) {
		cfg.CustomPath = ctx.String(FourbyteCustomFlag.Name)
	}
	if ctx.IsSet(FourbyteNoEmbeddedFlag.Name) {
		cfg.NoEmbedded = ctx.Bool(FourbyteNoEmbeddedFlag.Name)
	}
}

// SetCacheConfig applies codec cache flags on the config.
func SetCacheConfig(ctx *cli.Context, cfg *CacheConfig) {
	if ctx.IsSet(NoCacheFlag.Name) {
		cfg.Disabled = ctx.Bool(NoCacheFlag.Name)
	}
}

// OpenFourbyte opens the signature database described by cfg.
func OpenFourbyte(cfg *FourbyteConfig) (*fourbyte.Database, error) {
	if cfg.NoEmbedded {
		return fourbyte.NewCustomOnly(cfg.CustomPath)
	}
	return fourbyte.NewWithFile(cfg.CustomPath)
}

// MethodParser returns the function used to turn signatures into methods.
func MethodParser(cfg *CacheConfig) func(string) (abi.Method, error) {
	if cfg.Disabled {
		return abi.ParseMethod
	}
	return abi.ParseMethodCached
}

// EventParser returns the function used to turn signatures into events.
func EventParser(cfg *CacheConfig) func(string) (abi.Event, error) {
	if cfg.Disabled {
		return abi.ParseEvent
	}
	return abi.ParseEventCached
}
