// Copyright 2017 The go-ethereum Authors
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
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/sunyihoo/ethabi/cmd/utils"
	"github.com/sunyihoo/ethabi/internal/debug"
	"github.com/sunyihoo/ethabi/internal/flags"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var dumpConfigCommand = &cli.Command{
	Action:      dumpConfig,
	Name:        "dumpconfig",
	Usage:       "Export configuration values in a TOML format",
	ArgsUsage:   "<dumpfile (optional)>",
	Flags:       []cli.Flag{utils.ConfigFileFlag},
	Description: "Export configuration values in TOML format (to stdout by default).",
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		id := fmt.Sprintf("%s.%s", rt.String(), field)
		if deprecatedConfigFields[id] {
			log.Warn(fmt.Sprintf("Config field '%s' is deprecated and won't have any effect.", id))
			return nil
		}
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

var deprecatedConfigFields = map[string]bool{
	"utils.FourbyteConfig.Path": true,
}

type logConfig struct {
	Verbosity int
}

type abicodecConfig struct {
	Fourbyte utils.FourbyteConfig
	Cache    utils.CacheConfig
	Log      logConfig
}

func defaultConfig() abicodecConfig {
	return abicodecConfig{
		Fourbyte: utils.FourbyteConfig{
			CustomPath: defaultFourbytePath(),
		},
		Log: logConfig{Verbosity: debug.VerbosityFlag.Value},
	}
}

// defaultFourbytePath is the custom selector file in the user's home, or
// empty if no home directory is known.
func defaultFourbytePath() string {
	home := flags.HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".abicodec", "4byte.json")
}

func loadConfig(file string, cfg *abicodecConfig) error {
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

// loadBaseConfig loads the abicodecConfig based on the given command line
// parameters and config file.
func loadBaseConfig(ctx *cli.Context) (abicodecConfig, error) {
	// Load defaults
	cfg := defaultConfig()

	// Load config file.
	if file := ctx.String(utils.ConfigFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
		// The verbosity flag wins over the file.
		if !ctx.IsSet(debug.VerbosityFlag.Name) {
			debug.Verbosity.Set(log.FromLegacyLevel(cfg.Log.Verbosity))
		}
	}
	if ctx.IsSet(debug.VerbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.Int(debug.VerbosityFlag.Name)
	}
	// Apply flags.
	utils.SetFourbyteConfig(ctx, &cfg.Fourbyte)
	utils.SetCacheConfig(ctx, &cfg.Cache)
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	dump.Write(out)
	return nil
}
