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
package bind

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	ethabi "github.com/sunyihoo/ethabi"
	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/core/types"
)

const tokenABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"event","name":"Transfer","inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}]}
]`

type revertError struct{ data []byte }

func (e *revertError) Error() string          { return "execution reverted" }
func (e *revertError) ErrorData() interface{} { return e.data }

type mockBackend struct {
	code     []byte
	output   []byte
	callErr  error
	logs     []types.Log
	lastCall ethabi.CallMsg
	query    ethabi.FilterQuery
}

func (b *mockBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return b.code, nil
}

func (b *mockBackend) CallContract(ctx context.Context, call ethabi.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.lastCall = call
	return b.output, b.callErr
}

func (b *mockBackend) FilterLogs(ctx context.Context, q ethabi.FilterQuery) ([]types.Log, error) {
	b.query = q
	return b.logs, nil
}

func newContract(t *testing.T, backend *mockBackend) *BoundContract {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	require.NoError(t, err)
	return NewBoundContract(common.HexToAddress("0x01"), parsed, backend, backend)
}

func TestCall(t *testing.T) {
	t.Parallel()
	backend := &mockBackend{code: []byte{0x60}}
	contract := newContract(t, backend)

	out, err := contract.Call(nil, "balanceOf", common.HexToAddress("0x02"))
	require.NoError(t, err)
	// An empty result from an account with code is the zero value.
	require.Equal(t, []interface{}{new(big.Int)}, out)
	require.Equal(t, "70a08231", common.Bytes2Hex(backend.lastCall.Data[:4]))
	require.Equal(t, contract.Address(), *backend.lastCall.To)

	backend.output, err = contract.abi.Methods["name"].Outputs.Pack("Token")
	require.NoError(t, err)
	out, err = contract.Call(&CallOpts{Context: context.Background()}, "name")
	require.NoError(t, err)
	require.Equal(t, []interface{}{"Token"}, out)
}

func TestCallNoCode(t *testing.T) {
	t.Parallel()
	contract := newContract(t, &mockBackend{})
	_, err := contract.Call(nil, "balanceOf", common.HexToAddress("0x02"))
	require.ErrorIs(t, err, ErrNoCode)
}

func TestCallRevert(t *testing.T) {
	t.Parallel()
	reason, err := abi.Arguments{{Type: abi.MustNewType("string")}}.Pack("not allowed")
	require.NoError(t, err)
	backend := &mockBackend{callErr: &revertError{data: append(common.FromHex("08c379a0"), reason...)}}

	_, err = newContract(t, backend).Call(nil, "name")
	require.EqualError(t, err, "execution reverted: not allowed")
}

func TestFilterLogs(t *testing.T) {
	t.Parallel()
	backend := &mockBackend{}
	contract := newContract(t, backend)
	event := contract.abi.Events["Transfer"]

	from, to := common.HexToAddress("0xaa"), common.HexToAddress("0xbb")
	good, err := event.Inputs.NonIndexed().Pack(big.NewInt(42))
	require.NoError(t, err)
	topics := []common.Hash{event.ID, common.BytesToHash(from[:]), common.BytesToHash(to[:])}
	backend.logs = []types.Log{
		{Topics: topics, Data: good, Index: 0},
		{Topics: topics, Data: good[:16], Index: 1},
		{Topics: topics, Data: good, Index: 2, Removed: true},
		{Topics: topics[:1], Data: good, Index: 3},
	}
	end := uint64(100)
	results, err := contract.FilterLogs(&FilterOpts{Start: 10, End: &end}, "Transfer", []interface{}{from})
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.NoError(t, results[0].Err)
	require.Equal(t, big.NewInt(42), results[0].Values["value"])
	require.Equal(t, to, results[0].Values["to"])
	require.True(t, errors.Is(results[1].Err, abi.ErrTruncated))
	require.Error(t, results[2].Err)
	require.Error(t, results[3].Err)

	require.Equal(t, [][]common.Hash{{event.ID}, {common.BytesToHash(from[:])}}, backend.query.Topics)
	require.Equal(t, uint64(10), backend.query.FromBlock.Uint64())
	require.Equal(t, uint64(100), backend.query.ToBlock.Uint64())

	_, err = contract.FilterLogs(nil, "Approval")
	require.Error(t, err)
}
