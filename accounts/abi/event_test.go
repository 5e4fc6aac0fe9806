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
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/core/types"
	"github.com/sunyihoo/ethabi/crypto"
)

var (
	fromAddr = common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	toAddr   = common.HexToAddress("0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359")
)

func addressTopic(a common.Address) common.Hash {
	return common.BytesToHash(a.Bytes())
}

func transferLog(t *testing.T, e Event, value *big.Int) *types.Log {
	t.Helper()
	data, err := e.Inputs.NonIndexed().Pack(value)
	require.NoError(t, err)
	return &types.Log{
		Address: common.HexToAddress("0xdac17f958d2ee523a2206206994597c13d831ec7"),
		Topics:  []common.Hash{e.ID, addressTopic(fromAddr), addressTopic(toAddr)},
		Data:    data,
	}
}

func TestEventDecodeLog(t *testing.T) {
	t.Parallel()
	e, err := ParseEvent("Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)

	out, err := e.DecodeLog(transferLog(t, e, big.NewInt(1000)))
	require.NoError(t, err)
	require.Equal(t, fromAddr, out["from"])
	require.Equal(t, toAddr, out["to"])
	require.Equal(t, big.NewInt(1000), out["value"])
	require.Equal(t, out["value"], out["2"])
	require.Equal(t, out["from"], out["0"])
	require.Len(t, out, 6)
}

func TestEventDecodeLogMismatch(t *testing.T) {
	t.Parallel()
	e, err := ParseEvent("Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)

	// different topic[0]
	lg := transferLog(t, e, big.NewInt(1))
	lg.Topics[0] = crypto.Keccak256Hash([]byte("Approval(address,address,uint256)"))
	out, err := e.DecodeLog(lg)
	require.NoError(t, err)
	require.Nil(t, out)

	// too few topics for the indexed inputs
	lg = transferLog(t, e, big.NewInt(1))
	lg.Topics = lg.Topics[:2]
	out, err = e.DecodeLog(lg)
	require.NoError(t, err)
	require.Nil(t, out)

	// no topics at all
	out, err = e.DecodeLog(&types.Log{})
	require.NoError(t, err)
	require.Nil(t, out)

	// anonymous events cannot be matched
	anon, err := ParseEvent("Transfer(address indexed from, address indexed to, uint256 value) anonymous")
	require.NoError(t, err)
	out, err = anon.DecodeLog(transferLog(t, e, big.NewInt(1)))
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestEventDecodeLogBadData(t *testing.T) {
	t.Parallel()
	e, err := ParseEvent("Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)

	lg := transferLog(t, e, big.NewInt(1))
	lg.Data = lg.Data[:16]
	_, err = e.DecodeLog(lg)
	require.True(t, errors.Is(err, ErrTruncated))

	lg = transferLog(t, e, big.NewInt(1))
	lg.Topics[1][0] = 1 // not a valid address word
	_, err = e.DecodeLog(lg)
	require.True(t, errors.Is(err, ErrInvalidAddress))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, "from", de.Name)
}

func TestEventIndexedDynamic(t *testing.T) {
	t.Parallel()
	e, err := ParseEvent("Named(string indexed name, bytes indexed blob, uint256[] indexed ids, string note)")
	require.NoError(t, err)

	nameHash := crypto.Keccak256Hash([]byte("alice"))
	blobHash := crypto.Keccak256Hash([]byte{1, 2, 3})
	idsHash := common.HexToHash("0x01")
	data, err := e.Inputs.NonIndexed().Pack("hello")
	require.NoError(t, err)

	out, err := e.DecodeLog(&types.Log{
		Topics: []common.Hash{e.ID, nameHash, blobHash, idsHash},
		Data:   data,
	})
	require.NoError(t, err)
	require.Equal(t, nameHash, out["name"])
	require.Equal(t, blobHash, out["blob"])
	require.Equal(t, idsHash, out["ids"])
	require.Equal(t, "hello", out["note"])
}

func TestEventUnpackLogAnonymous(t *testing.T) {
	t.Parallel()
	e, err := ParseEvent("Ping(uint8 indexed seq, bool ok) anonymous")
	require.NoError(t, err)

	data, err := e.Inputs.NonIndexed().Pack(true)
	require.NoError(t, err)
	lg := &types.Log{Topics: []common.Hash{common.BigToHash(big.NewInt(9))}, Data: data}

	out, err := e.UnpackLog(lg)
	require.NoError(t, err)
	require.Equal(t, uint8(9), out["seq"])
	require.Equal(t, true, out["ok"])

	_, err = e.UnpackLog(&types.Log{Data: data})
	require.True(t, errors.Is(err, ErrTruncated))
}

func TestParseTopicsIntoMap(t *testing.T) {
	t.Parallel()
	e, err := ParseEvent("Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)

	out := make(map[string]interface{})
	err = ParseTopicsIntoMap(out, e.Inputs.Indexed(), []common.Hash{addressTopic(fromAddr), addressTopic(toAddr)})
	require.NoError(t, err)
	require.Equal(t, fromAddr, out["from"])
	require.Equal(t, toAddr, out["1"])

	var logStruct struct {
		From common.Address
		To   common.Address
	}
	err = ParseTopics(&logStruct, e.Inputs.Indexed(), []common.Hash{addressTopic(fromAddr), addressTopic(toAddr)})
	require.NoError(t, err)
	require.Equal(t, toAddr, logStruct.To)

	err = ParseTopicsIntoMap(out, e.Inputs.Indexed(), []common.Hash{addressTopic(fromAddr)})
	require.Error(t, err)
}
