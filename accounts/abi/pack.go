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
	"math/big"
	"reflect"
	"unicode/utf8"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/math"
)

// packBlock encodes values as one head/tail block. Static values are stored
// inline in the head; dynamic values leave an offset word in the head, counted
// from the start of the block, and append their payload to the tail.
// packBlock 将一组值编码为头部/尾部块。
func packBlock(types []Type, values []reflect.Value, tag func(int, error) error) ([]byte, error) {
	headSize := 0
	for _, t := range types {
		headSize += t.HeadSize()
	}
	var head, tail []byte
	for i, t := range types {
		packed, err := t.pack(values[i])
		if err != nil {
			if tag != nil {
				err = tag(i, err)
			}
			return nil, err
		}
		if t.IsDynamic() {
			head = append(head, packNum(headSize+len(tail))...)
			tail = append(tail, packed...)
		} else {
			head = append(head, packed...)
		}
	}
	return append(head, tail...), nil
}

// pack encodes a single value of type t. Dynamic types return their tail
// payload; the caller is responsible for the offset word.
func (t Type) pack(v reflect.Value) ([]byte, error) {
	if !t.supported() {
		return nil, encodeErr(t, ErrUnsupportedType, "")
	}
	v = indirect(v)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return nil, encodeErr(t, ErrInvalidValue, "nil value")
	}
	switch t.T {
	case SliceTy:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v", v.Type())
		}
		block, err := packBlock(repeatType(*t.Elem, v.Len()), elements(v), nil)
		if err != nil {
			return nil, err
		}
		return append(packNum(v.Len()), block...), nil
	case ArrayTy:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v", v.Type())
		}
		if v.Len() != t.Size {
			return nil, encodeErr(t, ErrInvalidValue, "have %d elements, want %d", v.Len(), t.Size)
		}
		return packBlock(repeatType(*t.Elem, t.Size), elements(v), nil)
	default:
		return packElement(t, v)
	}
}

func repeatType(t Type, n int) []Type {
	types := make([]Type, n)
	for i := range types {
		types[i] = t
	}
	return types
}

func elements(v reflect.Value) []reflect.Value {
	values := make([]reflect.Value, v.Len())
	for i := range values {
		values[i] = v.Index(i)
	}
	return values
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
func packBytesSlice(bytes []byte, l int) []byte {
	len := packNum(l)
	return append(len, common.RightPadBytes(bytes, (l+31)/32*32)...)
}

// packElement packs the given reflect value according to the abi specification in
// t.
func packElement(t Type, v reflect.Value) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		n, ok := toBigInt(v)
		if !ok {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v as integer", v.Type())
		}
		if !inRange(t, n) {
			return nil, encodeErr(t, ErrOverflow, "%v does not fit", n)
		}
		return math.U256Bytes(new(big.Int).Set(n)), nil
	case BoolTy:
		if v.Kind() != reflect.Bool {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v as bool", v.Type())
		}
		if v.Bool() {
			return math.PaddedBigBytes(common.Big1, 32), nil
		}
		return math.PaddedBigBytes(common.Big0, 32), nil
	case StringTy:
		if v.Kind() != reflect.String {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v as string", v.Type())
		}
		if !utf8.ValidString(v.String()) {
			return nil, encodeErr(t, ErrInvalidUTF8, "")
		}
		return packBytesSlice([]byte(v.String()), v.Len()), nil
	case AddressTy:
		b, ok := byteSlice(v)
		if !ok || len(b) != common.AddressLength {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v as address", v.Type())
		}
		return common.LeftPadBytes(b, 32), nil
	case BytesTy:
		b, ok := byteSlice(v)
		if !ok {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v as bytes", v.Type())
		}
		return packBytesSlice(b, len(b)), nil
	case FixedBytesTy:
		b, ok := byteSlice(v)
		if !ok || len(b) != t.Size {
			return nil, encodeErr(t, ErrInvalidValue, "cannot encode %v as bytes%d", v.Type(), t.Size)
		}
		return common.RightPadBytes(b, 32), nil
	case SliceTy, ArrayTy, TupleTy, FunctionTy:
	}
	return nil, encodeErr(t, ErrUnsupportedType, "")
}

// toBigInt converts any Go integer representation into a big.Int. The
// returned value may alias the input and must not be modified.
func toBigInt(v reflect.Value) (*big.Int, bool) {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(v.Uint()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(v.Int()), true
	}
	switch v.Type() {
	case bigT:
		return v.Interface().(*big.Int), true
	case bigValT:
		n := v.Interface().(big.Int)
		return &n, true
	case u256T:
		return v.Interface().(*uint256.Int).ToBig(), true
	case u256ValT:
		n := v.Interface().(uint256.Int)
		return n.ToBig(), true
	}
	return nil, false
}

// inRange reports whether n is representable in the integer type t.
func inRange(t Type, n *big.Int) bool {
	if t.T == UintTy {
		return n.Sign() >= 0 && n.BitLen() <= t.Size
	}
	// two's complement range [-2^(size-1), 2^(size-1)-1]
	if n.Sign() >= 0 {
		return n.BitLen() < t.Size
	}
	m := new(big.Int).Add(n, common.Big1)
	return m.BitLen() < t.Size
}

// packNum packs a non-negative length or offset into a word.
func packNum(n int) []byte {
	return math.U256Bytes(new(big.Int).SetInt64(int64(n)))
}
