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

import "fmt"

// Encode packs values as one head/tail block described by types. It is the
// untyped counterpart of Arguments.Pack for callers holding bare types.
func Encode(types []Type, values []interface{}) ([]byte, error) {
	args := make(Arguments, len(types))
	for i, t := range types {
		args[i] = Argument{Type: t}
	}
	return args.Pack(values...)
}

// Decode unpacks data against outputs and returns every value keyed by its
// position ("0", "1", ...) and, when the output is named, by its name.
func Decode(data []byte, outputs Arguments) (map[string]interface{}, error) {
	for _, out := range outputs {
		if out.Indexed {
			return nil, fmt.Errorf("abi: indexed output %q cannot be decoded from data", out.Name)
		}
	}
	values := make(map[string]interface{}, 2*len(outputs))
	if err := outputs.UnpackIntoMap(values, data); err != nil {
		return nil, err
	}
	return values, nil
}
