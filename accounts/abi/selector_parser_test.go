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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMethodSelector(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		sig      string
		selector string
	}{
		{"transfer(address,uint256)", "transfer(address,uint256)", "a9059cbb"},
		{"  transfer( address to ,\n\tuint amount )  ", "transfer(address,uint256)", "a9059cbb"},
		{"function transfer(address to, uint256 amount) external returns (bool)", "transfer(address,uint256)", "a9059cbb"},
		{"approve(address,uint256)", "approve(address,uint256)", "095ea7b3"},
		{"transferFrom(address,address,uint256)", "transferFrom(address,address,uint256)", "23b872dd"},
		{"balanceOf(address owner) view returns (uint256)", "balanceOf(address)", "70a08231"},
		{"totalSupply()", "totalSupply()", "18160ddd"},
		{"deposit() payable", "deposit()", "d0e30db0"},
		{"withdraw(uint)", "withdraw(uint256)", "2e1a7d4d"},
	}
	for _, test := range tests {
		m, err := ParseMethod(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.sig, m.Sig, "input %q", test.input)
		require.Equal(t, test.selector, fmt.Sprintf("%x", m.ID), "input %q", test.input)
	}
}

func TestParseMethodDetails(t *testing.T) {
	t.Parallel()
	m, err := ParseMethod("function balanceOf(address owner) external view returns (uint256 balance)")
	require.NoError(t, err)
	require.Equal(t, "balanceOf", m.Name)
	require.Equal(t, "view", m.StateMutability)
	require.True(t, m.IsConstant())
	require.False(t, m.IsPayable())
	require.Len(t, m.Inputs, 1)
	require.Equal(t, "owner", m.Inputs[0].Name)
	require.Len(t, m.Outputs, 1)
	require.Equal(t, "balance", m.Outputs[0].Name)
	require.Equal(t, "function balanceOf(address owner) view returns(uint256 balance)", m.String())

	m, err = ParseMethod("store(bytes memory data, string calldata note)")
	require.NoError(t, err)
	require.Equal(t, "store(bytes,string)", m.Sig)
	require.Equal(t, "nonpayable", m.StateMutability)
	require.Equal(t, "data", m.Inputs[0].Name)
	require.Equal(t, "note", m.Inputs[1].Name)
}

func TestParseSignatureErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		kind  error
	}{
		{"(uint256)", ErrEmptyName},
		{"   (address,bool)", ErrEmptyName},
		{"transfer", ErrMalformedSignature},
		{"transfer(address,uint256", ErrMalformedSignature},
		{"transfer(address,,uint256)", ErrMalformedSignature},
		{"transfer(address) extra", ErrMalformedSignature},
		{"transfer(address to from)", ErrMalformedSignature},
		{"1transfer(address)", ErrMalformedSignature},
		{"transfer(address indexed to)", ErrMalformedSignature},
		{"transfer(uint7)", ErrMalformedType},
	}
	for _, test := range tests {
		_, err := ParseMethod(test.input)
		require.Error(t, err, "input %q", test.input)
		require.True(t, errors.Is(err, test.kind), "input %q: have %v, want %v", test.input, err, test.kind)
	}
	var se *SignatureError
	_, err := ParseMethod("(uint256)")
	require.True(t, errors.As(err, &se))
	require.Equal(t, "(uint256)", se.Signature)
}

func TestParseEvent(t *testing.T) {
	t.Parallel()
	e, err := ParseEvent("event Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)
	require.Equal(t, "Transfer(address,address,uint256)", e.Sig)
	require.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", e.ID.Hex())
	require.False(t, e.Anonymous)
	require.Len(t, e.Inputs.Indexed(), 2)
	require.Len(t, e.Inputs.NonIndexed(), 1)
	require.Equal(t, "from", e.Inputs[0].Name)
	require.Equal(t, "event Transfer(address indexed from, address indexed to, uint256 value)", e.String())

	e, err = ParseEvent("Ping(string indexed) anonymous")
	require.NoError(t, err)
	require.True(t, e.Anonymous)
	require.True(t, e.Inputs[0].Indexed)
	require.Equal(t, "", e.Inputs[0].Name)

	_, err = ParseEvent("Ping(uint256) returns (bool)")
	require.True(t, errors.Is(err, ErrMalformedSignature))
}

func TestParseError(t *testing.T) {
	t.Parallel()
	e, err := ParseError("error InsufficientBalance(uint256 available, uint256 required)")
	require.NoError(t, err)
	require.Equal(t, "InsufficientBalance(uint256,uint256)", e.Sig)
	require.Equal(t, "error InsufficientBalance(uint256 available, uint256 required)", e.String())
}
