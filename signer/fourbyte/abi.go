// Copyright 2019 The go-ethereum Authors
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
package fourbyte

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common"
)

// DecodedCallData is an internal type to represent a method call parsed according
// to an ABI method signature.
type DecodedCallData struct {
	Signature string
	Name      string
	Inputs    []DecodedArgument
}

// DecodedArgument is an internal type to represent an argument parsed according
// to an ABI method signature.
type DecodedArgument struct {
	Soltype abi.Argument
	Value   interface{}
}

// String implements stringer interface, tries to use the underlying value-type
func (arg DecodedArgument) String() string {
	var value string
	switch val := arg.Value.(type) {
	case fmt.Stringer:
		value = val.String()
	case []byte:
		value = "0x" + common.Bytes2Hex(val)
	default:
		value = fmt.Sprintf("%v", val)
	}
	return fmt.Sprintf("%v: %v", arg.Soltype.Type.String(), value)
}

// String implements stringer interface for DecodedCallData
func (cd DecodedCallData) String() string {
	args := make([]string, len(cd.Inputs))
	for i, arg := range cd.Inputs {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", cd.Name, strings.Join(args, ","))
}

// ParseCallData matches the provided call data against the given signature
// and returns the decoded arguments. The arguments are re-encoded and must
// reproduce the call data exactly, so data stuffed with extra bytes is
// rejected.
// ParseCallData 根据签名解码调用数据，并通过重新编码检测填充的多余数据。
func ParseCallData(calldata []byte, signature string) (*DecodedCallData, error) {
	if len(calldata) < 4 {
		return nil, fmt.Errorf("invalid call data, incomplete method signature (%d bytes < 4)", len(calldata))
	}
	sigdata := calldata[:4]

	argdata := calldata[4:]
	if len(argdata)%32 != 0 {
		return nil, fmt.Errorf("invalid call data; length should be a multiple of 32 bytes (was %d)", len(argdata))
	}
	method, err := abi.ParseMethodCached(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid method signature (%q): %v", signature, err)
	}
	if !bytes.Equal(method.ID, sigdata) {
		return nil, fmt.Errorf("signature %q has selector %#x, call data has %#x", method.Sig, method.ID, sigdata)
	}
	values, err := method.Inputs.Unpack(argdata)
	if err != nil {
		return nil, fmt.Errorf("signature %q matches, but arguments mismatch: %w", method.String(), err)
	}
	decoded := DecodedCallData{Signature: method.Sig, Name: method.RawName}
	for i := 0; i < len(method.Inputs); i++ {
		decoded.Inputs = append(decoded.Inputs, DecodedArgument{
			Soltype: method.Inputs[i],
			Value:   values[i],
		})
	}
	// We're finished decoding the data. At this point, we encode the decoded data
	// to see if it matches with the original data. If we didn't do that, it would
	// be possible to stuff extra data into the arguments, which is not detected
	// by merely decoding the data.
	encoded, err := method.Inputs.Pack(values...)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(encoded, argdata) {
		was := common.Bytes2Hex(encoded)
		exp := common.Bytes2Hex(argdata)
		return nil, fmt.Errorf("WARNING: Supplied data is stuffed with extra data. \nWant %s\nHave %s\nfor method %v", exp, was, method.Sig)
	}
	return &decoded, nil
}

// ParseCallData looks the selector of calldata up and decodes it against the
// stored signature.
func (db *Database) ParseCallData(calldata []byte) (*DecodedCallData, error) {
	sig, err := db.Selector(calldata)
	if err != nil {
		return nil, err
	}
	return ParseCallData(calldata, sig)
}
