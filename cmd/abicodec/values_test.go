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
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/ethabi/accounts/abi"
)

func TestParseIntegerValues(t *testing.T) {
	tests := []struct {
		typ   string
		input string
		want  *big.Int
	}{
		{"uint256", "1000", big.NewInt(1000)},
		{"uint256", "0x3e8", big.NewInt(1000)},
		{"uint256", "0X3E8", big.NewInt(1000)},
		{"int8", "-128", big.NewInt(-128)},
		{"int256", "-0x10", big.NewInt(-16)},
		{"uint8", "0123", big.NewInt(123)}, // not octal
	}
	for _, test := range tests {
		v, err := parseValue(abi.MustNewType(test.typ), test.input)
		require.NoError(t, err, "%s %q", test.typ, test.input)
		assert.Equal(t, 0, v.(*big.Int).Cmp(test.want), "%s %q: have %v", test.typ, test.input, v)
	}
}

func TestParseIntegerInvalid(t *testing.T) {
	for _, input := range []string{
		"", "-", "1e3", "0x", "12ab", "--1", "+1", "0x-5",
		"0x1" + strings.Repeat("0", 64), // 257 bits
		"115792089237316195423570985008687907853269984665640564039457584007913129639936",
	} {
		_, err := parseValue(abi.MustNewType("uint256"), input)
		assert.Error(t, err, "input %q", input)
	}
}
