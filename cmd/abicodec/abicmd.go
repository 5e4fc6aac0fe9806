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
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/cmd/utils"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
	"github.com/sunyihoo/ethabi/core/types"
	"github.com/sunyihoo/ethabi/log"
	"github.com/urfave/cli/v2"
)

var (
	selectorCommand = &cli.Command{
		Action:    selector,
		Name:      "selector",
		Usage:     "Print the 4-byte selector of a function signature",
		ArgsUsage: "<signature>",
		Flags:     []cli.Flag{utils.NoCacheFlag},
		Description: `
    abicodec selector "transfer(address,uint256)"

prints the canonical signature and its selector, 0xa9059cbb.`,
	}
	topicCommand = &cli.Command{
		Action:    topic,
		Name:      "topic",
		Usage:     "Print the topic hash of an event signature",
		ArgsUsage: "<signature>",
		Flags:     []cli.Flag{utils.NoCacheFlag},
	}
	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "Encode function arguments into call data",
		ArgsUsage: "<signature> [arguments...]",
		Flags:     []cli.Flag{utils.NoSelectorFlag, utils.NoCacheFlag},
		Description: `
Integers are given in decimal or 0x hex, byte types in 0x hex and arrays as
JSON lists, e.g.

    abicodec encode "f(uint256,uint32[],bytes10,bytes)" 0x123 '[1110,1929]' 0x31323334353637383930 0x48656c6c6f`,
	}
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Decode call data, or return data of a signature with outputs",
		ArgsUsage: "<signature> <hex>",
		Flags:     []cli.Flag{utils.NoSelectorFlag, utils.DumpFlag, utils.NoCacheFlag},
		Description: `
If the signature declares outputs (... returns (uint256)), the input is taken to
be return data. Otherwise it is call data starting with the selector, unless
--noselector is given.`,
	}
	calldataCommand = &cli.Command{
		Action:    calldata,
		Name:      "calldata",
		Usage:     "Identify and decode call data using the 4byte database",
		ArgsUsage: "<hex>",
		Flags:     []cli.Flag{utils.FourbyteCustomFlag, utils.FourbyteNoEmbeddedFlag, utils.DumpFlag},
	}
	decodeLogCommand = &cli.Command{
		Action:    decodeLog,
		Name:      "decodelog",
		Usage:     "Decode an event log",
		ArgsUsage: "<signature>",
		Flags:     []cli.Flag{utils.TopicsFlag, utils.DataFlag, utils.DumpFlag, utils.NoCacheFlag},
	}
)

var errLogMismatch = errors.New("log does not match event")

// signatureArg returns the single positional argument of a command.
func signatureArg(ctx *cli.Context, want int) error {
	if ctx.NArg() < want {
		return fmt.Errorf("expected %d argument(s), see 'abicodec help %s'", want, ctx.Command.Name)
	}
	return nil
}

func selector(ctx *cli.Context) error {
	if err := signatureArg(ctx, 1); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	method, err := utils.MethodParser(&cfg.Cache)(ctx.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%s %s\n", hexutil.Encode(method.ID), method.Sig)
	return nil
}

func topic(ctx *cli.Context) error {
	if err := signatureArg(ctx, 1); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	event, err := utils.EventParser(&cfg.Cache)(ctx.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%s %s\n", event.ID.Hex(), event.Sig)
	return nil
}

func encode(ctx *cli.Context) error {
	if err := signatureArg(ctx, 1); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	method, err := utils.MethodParser(&cfg.Cache)(ctx.Args().First())
	if err != nil {
		return err
	}
	values, err := parseArgs(method.Inputs, ctx.Args().Tail())
	if err != nil {
		return err
	}
	var packed []byte
	if ctx.Bool(utils.NoSelectorFlag.Name) {
		packed, err = method.Inputs.Pack(values...)
	} else {
		packed, err = method.Pack(values...)
	}
	if err != nil {
		return err
	}
	log.Debug("Encoded call", "method", method.Sig, "len", len(packed))
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(packed))
	return nil
}

func decode(ctx *cli.Context) error {
	if err := signatureArg(ctx, 2); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	method, err := utils.MethodParser(&cfg.Cache)(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	data, err := decodeHex(ctx.Args().Get(1))
	if err != nil && !errors.Is(err, errNoInput) {
		return err
	}
	args := method.Inputs
	switch {
	case len(method.Outputs) > 0:
		args = method.Outputs
	case !ctx.Bool(utils.NoSelectorFlag.Name):
		if len(data) < 4 {
			return fmt.Errorf("call data too short for a selector (%d bytes)", len(data))
		}
		if !bytes.Equal(data[:4], method.ID) {
			return fmt.Errorf("selector mismatch: have %x, want %x (%s)", data[:4], method.ID, method.Sig)
		}
		data = data[4:]
	}
	values, err := abi.Decode(data, args)
	if err != nil {
		return err
	}
	return printValues(ctx, args, values)
}

func calldata(ctx *cli.Context) error {
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
	data, err := decodeHex(ctx.Args().First())
	if err != nil {
		return err
	}
	decoded, err := db.ParseCallData(data)
	if err != nil {
		return err
	}
	log.Debug("Identified call data", "signature", decoded.Signature)
	if ctx.Bool(utils.DumpFlag.Name) {
		spew.Fdump(ctx.App.Writer, decoded)
		return nil
	}
	fmt.Fprintln(ctx.App.Writer, decoded.String())
	return nil
}

func decodeLog(ctx *cli.Context) error {
	if err := signatureArg(ctx, 1); err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	event, err := utils.EventParser(&cfg.Cache)(ctx.Args().First())
	if err != nil {
		return err
	}
	lg := new(types.Log)
	for _, t := range ctx.StringSlice(utils.TopicsFlag.Name) {
		for _, item := range utils.SplitArgs(t) {
			raw, err := decodeHex(item)
			if err != nil {
				return fmt.Errorf("invalid topic %q: %w", item, err)
			}
			if len(raw) != common.HashLength {
				return fmt.Errorf("invalid topic %q: have %d bytes, want %d", item, len(raw), common.HashLength)
			}
			lg.Topics = append(lg.Topics, common.BytesToHash(raw))
		}
	}
	if ctx.IsSet(utils.DataFlag.Name) {
		if lg.Data, err = decodeHex(ctx.String(utils.DataFlag.Name)); err != nil && !errors.Is(err, errNoInput) {
			return err
		}
	}
	var values map[string]interface{}
	if event.Anonymous {
		values, err = event.UnpackLog(lg)
	} else {
		values, err = event.DecodeLog(lg)
	}
	if err != nil {
		return err
	}
	if values == nil {
		return fmt.Errorf("%w %s", errLogMismatch, event.Sig)
	}
	return printValues(ctx, event.Inputs, values)
}

// printValues writes decoded values in declaration order, one per line.
func printValues(ctx *cli.Context, args abi.Arguments, values map[string]interface{}) error {
	if ctx.Bool(utils.DumpFlag.Name) {
		spew.Fdump(ctx.App.Writer, orderedValues(args, values))
		return nil
	}
	writeValues(ctx.App.Writer, args, values)
	return nil
}

func orderedValues(args abi.Arguments, values map[string]interface{}) []interface{} {
	out := make([]interface{}, 0, len(args))
	for i := range args {
		if v, ok := values[strconv.Itoa(i)]; ok {
			out = append(out, v)
		}
	}
	return out
}

func writeValues(w io.Writer, args abi.Arguments, values map[string]interface{}) {
	for i, arg := range args {
		v, ok := values[strconv.Itoa(i)]
		if !ok {
			continue
		}
		label := arg.Type.String()
		if arg.Indexed {
			label += " indexed"
		}
		if arg.Name != "" {
			label += " " + arg.Name
		}
		fmt.Fprintf(w, "[%d] %s: %s\n", i, label, formatValue(v))
	}
}
