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
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/crypto"
)

// Error represents a custom error defined in the ABI. Its ID is hashed like
// an event's; the first 4 bytes prefix revert data carrying it.
// Error 表示在 ABI 中定义的自定义错误。
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the string signature according to the ABI spec.
	// e.g. error foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the error's signature used by the
	// abi definition to identify event names and types.
	ID common.Hash
}

// NewError creates a new Error instance with the given name and inputs.
func NewError(name string, inputs Arguments) Error {
	names := make([]string, len(inputs))
	types := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = strings.TrimSpace(fmt.Sprintf("%v %v", input.Type, input.Name))
		types[i] = input.Type.String()
	}
	sig := fmt.Sprintf("%v(%v)", name, strings.Join(types, ","))

	return Error{
		Name:   name,
		Inputs: inputs,
		str:    fmt.Sprintf("error %v(%v)", name, strings.Join(names, ", ")),
		Sig:    sig,
		ID:     crypto.Keccak256Hash([]byte(sig)),
	}
}

// String returns the string representation of the error.
func (e Error) String() string {
	return e.str
}

// Selector returns the 4 byte error identifier.
func (e Error) Selector() (sel [4]byte) {
	copy(sel[:], e.ID[:4])
	return sel
}

// Unpack decodes revert data produced by this error: the 4 byte identifier
// followed by the encoded inputs. A single input is returned as is, several
// inputs as a []interface{}.
func (e *Error) Unpack(data []byte) (interface{}, error) {
	if len(data) < 4 {
		return "", &DecodeError{Index: -1, Offset: len(data), Err: ErrTruncated,
			Detail: fmt.Sprintf("insufficient data for unpacking: have %d, want at least 4", len(data))}
	}
	if !bytes.Equal(data[:4], e.ID[:4]) {
		return "", fmt.Errorf("invalid identifier, have %#x want %#x", data[:4], e.ID[:4])
	}
	values, err := e.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, err
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return values, nil
}
