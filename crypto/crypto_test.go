// Copyright 2014 The go-ethereum Authors
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
package crypto

import (
	"bytes"
	"testing"

	"github.com/sunyihoo/ethabi/common"
)

func checkhash(t *testing.T, name string, f func([]byte) []byte, msg, exp []byte) {
	sum := f(msg)
	if !bytes.Equal(exp, sum) {
		t.Fatalf("hash %s mismatch: want: %x have: %x", name, exp, sum)
	}
}

func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp := common.FromHex("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	checkhash(t, "Sha3-256-array", func(in []byte) []byte { h := Keccak256Hash(in); return h[:] }, msg, exp)
}

func TestKeccak256HashEmpty(t *testing.T) {
	exp := common.FromHex("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	checkhash(t, "empty", func(in []byte) []byte { return Keccak256(in) }, nil, exp)
}

func TestHashData(t *testing.T) {
	kh := NewKeccakState()
	// The state is reset before every use, so repeated calls agree.
	first := HashData(kh, []byte("transfer(address,uint256)"))
	second := HashData(kh, []byte("transfer(address,uint256)"))
	if first != second {
		t.Fatalf("HashData not repeatable: %x != %x", first, second)
	}
	if !bytes.Equal(first[:4], common.FromHex("a9059cbb")) {
		t.Fatalf("unexpected selector %x", first[:4])
	}
	if first != Keccak256Hash([]byte("transfer(address,uint256)")) {
		t.Fatal("HashData disagrees with Keccak256Hash")
	}
}
