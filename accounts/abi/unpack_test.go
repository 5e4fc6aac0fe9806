// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.
package abi

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/math"
)

func roundTrip(t *testing.T, typ string, value interface{}) {
	t.Helper()
	args := Arguments{{Type: MustNewType(typ)}}
	packed, err := args.Pack(value)
	require.NoError(t, err, "%s %v", typ, value)
	require.Zero(t, len(packed)%32)

	unpacked, err := args.Unpack(packed)
	require.NoError(t, err, "%s %v", typ, value)
	require.Equal(t, value, unpacked[0], "%s", typ)
}

func TestRoundTripBoundaries(t *testing.T) {
	t.Parallel()
	// native widths
	for _, v := range []uint8{0, 1, 255} {
		roundTrip(t, "uint8", v)
	}
	for _, v := range []uint64{0, 1, 1<<64 - 1} {
		roundTrip(t, "uint64", v)
	}
	for _, v := range []int8{-128, -1, 0, 1, 127} {
		roundTrip(t, "int8", v)
	}
	for _, v := range []int64{-1 << 63, 0, 1<<63 - 1} {
		roundTrip(t, "int64", v)
	}
	// big widths
	for _, size := range []uint{24, 128, 256} {
		max := new(big.Int).Sub(new(big.Int).Lsh(common.Big1, size), common.Big1)
		for _, v := range []*big.Int{big.NewInt(1), big.NewInt(2), max} {
			roundTrip(t, "uint"+big.NewInt(int64(size)).String(), v)
		}
		half := new(big.Int).Lsh(common.Big1, size-1)
		for _, v := range []*big.Int{new(big.Int).Neg(half), new(big.Int).Sub(half, common.Big1), big.NewInt(-1)} {
			roundTrip(t, "int"+big.NewInt(int64(size)).String(), v)
		}
	}
	roundTrip(t, "address", common.Address{})
	roundTrip(t, "address", common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff"))
	roundTrip(t, "bool", true)
	roundTrip(t, "bool", false)
	roundTrip(t, "bytes32", [32]byte{31: 1})
	roundTrip(t, "bytes1", [1]byte{0xff})

	for _, n := range []int{0, 1, 31, 32, 33, 64} {
		roundTrip(t, "bytes", []byte(strings.Repeat("\xab", n)))
		roundTrip(t, "string", strings.Repeat("x", n))
	}
	roundTrip(t, "address[]", []common.Address{{1}, {2}})
	roundTrip(t, "bool[2][]", [][2]bool{{true, false}, {false, true}})
	roundTrip(t, "string[2]", [2]string{"", "abc"})
	roundTrip(t, "bytes[]", [][]byte{{}, {1, 2, 3}})
}

func TestUnpackEmptyReturn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ  string
		want interface{}
	}{
		{"string", ""},
		{"bytes", []byte{}},
		{"uint256", new(big.Int)},
		{"uint8", uint8(0)},
		{"bool", false},
		{"address", common.Address{}},
		{"uint256[]", []*big.Int{}},
	}
	for _, test := range tests {
		out, err := Arguments{{Type: MustNewType(test.typ)}}.Unpack(nil)
		require.NoError(t, err, "type %s", test.typ)
		require.Equal(t, []interface{}{test.want}, out, "type %s", test.typ)
	}
	// No outputs, no data.
	out, err := Arguments{}.Unpack(nil)
	require.NoError(t, err)
	require.Empty(t, out)

	// Two outputs need a full head region.
	_, err = Arguments{{Type: MustNewType("bool")}, {Type: MustNewType("bool")}}.Unpack(nil)
	require.True(t, errors.Is(err, ErrTruncated))
}

func TestUnpackZeroOffsetAtEnd(t *testing.T) {
	t.Parallel()
	out, err := Arguments{{Type: MustNewType("string")}}.Unpack(make([]byte, 32))
	require.NoError(t, err)
	require.Equal(t, "", out[0])
}

func TestUnpackValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ  string
		data []byte
		kind error
	}{
		{"bool", words("0000000000000000000000000000000000000000000000000000000000000002"), ErrInvalidBool},
		{"bool", words("0100000000000000000000000000000000000000000000000000000000000001"), ErrInvalidBool},
		{"address", words("0000000000000000000000010000000000000000000000000000000000000001"), ErrInvalidAddress},
		{"uint8", words("0000000000000000000000000000000000000000000000000000000000000100"), ErrOverflow},
		{"int8", words("0000000000000000000000000000000000000000000000000000000000000080"), ErrOverflow},
		{"int8", words("ff00000000000000000000000000000000000000000000000000000000000080"), ErrOverflow},
		{"uint64", words("0000000000000000000000000000000000000000000000010000000000000000"), ErrOverflow},
		{"uint248", words("0100000000000000000000000000000000000000000000000000000000000000"), ErrOverflow},
		{"uint256", words("00000000000000000000000000000000000000000000000000000000000001"), ErrTruncated},
		{"string", words(
			"0000000000000000000000000000000000000000000000000000000000000020",
			"0000000000000000000000000000000000000000000000000000000000000002",
			"c328000000000000000000000000000000000000000000000000000000000000",
		), ErrInvalidUTF8},
		// offset past the end of the data
		{"bytes", words("0000000000000000000000000000000000000000000000000000000000000040"), ErrTruncated},
		// offset that does not fit in 64 bits
		{"bytes", words("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"), ErrTruncated},
		// length longer than the remaining data
		{"bytes", words(
			"0000000000000000000000000000000000000000000000000000000000000020",
			"0000000000000000000000000000000000000000000000000000000000000021",
			"0000000000000000000000000000000000000000000000000000000000000000",
		), ErrTruncated},
		// element count that cannot fit
		{"uint256[]", words(
			"0000000000000000000000000000000000000000000000000000000000000020",
			"0000000000000000000000000000000000000000000000000000000000000002",
			"0000000000000000000000000000000000000000000000000000000000000001",
		), ErrTruncated},
		{"uint256[]", words(
			"0000000000000000000000000000000000000000000000000000000000000020",
			"000000000000000000000000000000000000000000000000ffffffffffffffff",
		), ErrTruncated},
		{"(uint256,bool)", make([]byte, 64), ErrUnsupportedType},
	}
	for i, test := range tests {
		_, err := Arguments{{Type: MustNewType(test.typ)}}.Unpack(test.data)
		require.Error(t, err, "test %d", i)
		require.True(t, errors.Is(err, test.kind), "test %d: have %v, want %v", i, err, test.kind)

		var de *DecodeError
		require.True(t, errors.As(err, &de), "test %d: %T", i, err)
	}
}

func TestUnpackDecodeErrorPosition(t *testing.T) {
	t.Parallel()
	args := Arguments{{Name: "a", Type: MustNewType("bool")}, {Name: "flag", Type: MustNewType("bool")}}
	data := words(
		"0000000000000000000000000000000000000000000000000000000000000001",
		"0000000000000000000000000000000000000000000000000000000000000007",
	)
	_, err := args.Unpack(data)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 1, de.Index)
	require.Equal(t, "flag", de.Name)
	require.Equal(t, 32, de.Offset)
	require.Equal(t, "bool", de.Type)
}

func TestUnpackNoAliasing(t *testing.T) {
	t.Parallel()
	args := Arguments{{Type: MustNewType("bytes")}}
	data, err := args.Pack([]byte{1, 2, 3})
	require.NoError(t, err)
	out, err := args.Unpack(data)
	require.NoError(t, err)
	for i := range data {
		data[i] = 0
	}
	require.Equal(t, []byte{1, 2, 3}, out[0])
}

func TestUnpackIntoMapKeys(t *testing.T) {
	t.Parallel()
	args := Arguments{{Name: "amount", Type: MustNewType("uint256")}, {Type: MustNewType("bool")}}
	data, err := args.Pack(math.MaxBig256, true)
	require.NoError(t, err)

	out := make(map[string]interface{})
	require.NoError(t, args.UnpackIntoMap(out, data))
	require.Equal(t, math.MaxBig256, out["amount"])
	require.Equal(t, out["0"], out["amount"])
	require.Equal(t, true, out["1"])
	require.Len(t, out, 3)

	require.Error(t, args.UnpackIntoMap(nil, data))
}

func TestUnpackIntoStruct(t *testing.T) {
	t.Parallel()
	args := Arguments{
		{Name: "owner", Type: MustNewType("address")},
		{Name: "token_id", Type: MustNewType("uint256")},
		{Name: "ok", Type: MustNewType("bool")},
	}
	owner := common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	data, err := args.Pack(owner, big.NewInt(7), true)
	require.NoError(t, err)
	values, err := args.Unpack(data)
	require.NoError(t, err)

	var out struct {
		Owner   common.Address
		TokenId *big.Int
		Valid   bool `abi:"ok"`
	}
	require.NoError(t, args.Copy(&out, values))
	require.Equal(t, owner, out.Owner)
	require.Equal(t, int64(7), out.TokenId.Int64())
	require.True(t, out.Valid)
}
