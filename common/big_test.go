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

package common

import (
	"bytes"
	"testing"
)

func TestBigConstants(t *testing.T) {
	if Big0.Sign() != 0 || Big1.Int64() != 1 || Big32.Int64() != 32 || Big256.Int64() != 256 {
		t.Fatal("unexpected big constant values")
	}
	if !U2560.IsZero() {
		t.Fatal("U2560 should be zero")
	}
}

func TestPadBytes(t *testing.T) {
	val := []byte{1, 2, 3, 4}

	if padded := LeftPadBytes(val, 8); !bytes.Equal(padded, []byte{0, 0, 0, 0, 1, 2, 3, 4}) {
		t.Fatalf("left pad: have %x", padded)
	}
	if padded := RightPadBytes(val, 8); !bytes.Equal(padded, []byte{1, 2, 3, 4, 0, 0, 0, 0}) {
		t.Fatalf("right pad: have %x", padded)
	}
	// Shorter targets leave the input untouched.
	if padded := LeftPadBytes(val, 2); !bytes.Equal(padded, val) {
		t.Fatalf("left pad short: have %x", padded)
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{"0x01", []byte{1}},
		{"0X0102", []byte{1, 2}},
		{"1", []byte{1}},
		{"", []byte{}},
	}
	for _, test := range tests {
		if have := FromHex(test.input); !bytes.Equal(have, test.want) {
			t.Errorf("FromHex(%q): have %x, want %x", test.input, have, test.want)
		}
	}
}
