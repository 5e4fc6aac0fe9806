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
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
	"github.com/sunyihoo/ethabi/common/math"
)

// parseArgs converts command line strings into values for the given types.
func parseArgs(args abi.Arguments, input []string) ([]interface{}, error) {
	if len(args) != len(input) {
		return nil, fmt.Errorf("have %d arguments, want %d", len(input), len(args))
	}
	values := make([]interface{}, len(args))
	for i, arg := range args {
		v, err := parseValue(arg.Type, input[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%v): %w", i, arg.Type, err)
		}
		values[i] = v
	}
	return values, nil
}

// parseValue converts a single string into a value of type t. Integers
// accept decimal or 0x-prefixed hex, byte types take 0x-prefixed hex, and
// arrays take a JSON list whose items follow the same rules.
func parseValue(t abi.Type, s string) (interface{}, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		return parseInteger(s)
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("have %d bytes, want %d", len(b), t.Size)
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return nil, fmt.Errorf("invalid list %q: %w", s, err)
		}
		if t.T == abi.ArrayTy && len(items) != t.Size {
			return nil, fmt.Errorf("have %d elements, want %d", len(items), t.Size)
		}
		values := make([]interface{}, len(items))
		for i, item := range items {
			v, err := parseValue(*t.Elem, rawItem(item))
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			values[i] = v
		}
		return values, nil
	}
	return nil, fmt.Errorf("%w: %v", abi.ErrUnsupportedType, t)
}

// parseInteger parses a decimal or 0x-prefixed hex integer of at most 256
// bits, with an optional leading minus sign.
func parseInteger(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || strings.ContainsAny(digits, "+-") {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	n, ok := math.ParseBig256(digits)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if len(digits) < len(s) {
		n.Neg(n)
	}
	return n, nil
}

// rawItem returns the string content of a JSON string, or the literal text
// of any other JSON value.
func rawItem(item json.RawMessage) string {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(item))
}

// formatValue renders a decoded value for display.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case []byte:
		return hexutil.Encode(val)
	case fmt.Stringer:
		return val.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return hexutil.Encode(b)
		}
		fallthrough
	case reflect.Slice:
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = formatValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}

var errNoInput = errors.New("missing hex input")

// decodeHex parses 0x-prefixed or bare hex input.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errNoInput
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
