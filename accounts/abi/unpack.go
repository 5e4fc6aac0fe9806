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
	"fmt"
	"math/big"
	"reflect"
	"unicode/utf8"

	"github.com/sunyihoo/ethabi/common"
	emath "github.com/sunyihoo/ethabi/common/math"
)

// unpackBlock decodes a head/tail block holding one value per type. The
// whole head region must be present before anything is read, and every
// offset and length is bounds-checked against block.
// unpackBlock 解码一个头部/尾部块，每个类型对应一个值。
func unpackBlock(types []Type, block []byte, tag func(int, error) error) ([]interface{}, error) {
	headEnd := 0
	for _, t := range types {
		headEnd += t.HeadSize()
	}
	if len(block) < headEnd {
		return nil, &DecodeError{Index: -1, Offset: len(block), Err: ErrTruncated,
			Detail: fmt.Sprintf("head region needs %d bytes, have %d", headEnd, len(block))}
	}
	values := make([]interface{}, len(types))
	pos := 0
	for i, t := range types {
		v, err := t.unpack(block, pos, headEnd)
		if err != nil {
			if tag != nil {
				err = tag(i, err)
			}
			return nil, err
		}
		values[i] = v
		pos += t.HeadSize()
	}
	return values, nil
}

// unpack decodes the value of type t whose head starts at pos within block.
func (t Type) unpack(block []byte, pos, headEnd int) (interface{}, error) {
	if !t.supported() {
		return nil, decodeErr(t, pos, ErrUnsupportedType, "")
	}
	if !t.IsDynamic() {
		if t.T == ArrayTy {
			values, err := unpackBlock(repeatType(*t.Elem, t.Size), block[pos:pos+t.HeadSize()], nil)
			if err != nil {
				return nil, err
			}
			return t.collect(values), nil
		}
		return readElement(t, block[pos:pos+32], pos)
	}
	offset, err := readSize(t, block, pos)
	if err != nil {
		return nil, err
	}
	if offset == 0 && len(block) == headEnd {
		return t.zeroValue(), nil
	}
	payload := block[offset:]
	switch t.T {
	case StringTy, BytesTy:
		length, err := readSize(t, payload, 0)
		if err != nil {
			return nil, shiftOffset(err, offset)
		}
		if length > len(payload)-32 {
			return nil, decodeErr(t, offset, ErrTruncated, "payload of %d bytes exceeds data", length)
		}
		raw := common.CopyBytes(payload[32 : 32+length])
		if t.T == BytesTy {
			return raw, nil
		}
		if !utf8.Valid(raw) {
			return nil, decodeErr(t, offset+32, ErrInvalidUTF8, "")
		}
		return string(raw), nil
	case SliceTy:
		count, err := readSize(t, payload, 0)
		if err != nil {
			return nil, shiftOffset(err, offset)
		}
		nested := payload[32:]
		// Reject counts that cannot fit before allocating anything for them.
		if elem := t.Elem.HeadSize(); count > len(nested)/elem {
			return nil, decodeErr(t, offset, ErrTruncated, "%d elements exceed data", count)
		}
		values, err := unpackBlock(repeatType(*t.Elem, count), nested, nil)
		if err != nil {
			return nil, shiftOffset(err, offset+32)
		}
		return t.collect(values), nil
	case ArrayTy:
		values, err := unpackBlock(repeatType(*t.Elem, t.Size), payload, nil)
		if err != nil {
			return nil, shiftOffset(err, offset)
		}
		return t.collect(values), nil
	case IntTy, UintTy, BoolTy, AddressTy, FixedBytesTy, TupleTy, FunctionTy:
	}
	return nil, decodeErr(t, pos, ErrUnsupportedType, "")
}

// collect gathers decoded element values into the Go slice or array GetType
// describes.
func (t Type) collect(values []interface{}) interface{} {
	var out reflect.Value
	if t.T == SliceTy {
		out = reflect.MakeSlice(t.GetType(), len(values), len(values))
	} else {
		out = reflect.New(t.GetType()).Elem()
	}
	for i, v := range values {
		out.Index(i).Set(reflect.ValueOf(v))
	}
	return out.Interface()
}

// readSize reads the word at pos as an offset, length or element count. Any
// value past the end of block cannot be valid.
func readSize(t Type, block []byte, pos int) (int, error) {
	if pos+32 > len(block) {
		return 0, decodeErr(t, pos, ErrTruncated, "missing word")
	}
	n := new(big.Int).SetBytes(block[pos : pos+32])
	if !n.IsUint64() || n.Uint64() > uint64(len(block)) {
		return 0, decodeErr(t, pos, ErrTruncated, "value %v exceeds data size %d", n, len(block))
	}
	return int(n.Uint64()), nil
}

// shiftOffset rebases the offset of a nested decode error onto the enclosing
// block.
func shiftOffset(err error, by int) error {
	if de, ok := err.(*DecodeError); ok {
		de.Offset += by
	}
	return err
}

// readElement decodes a single static word.
func readElement(t Type, word []byte, pos int) (interface{}, error) {
	switch t.T {
	case IntTy, UintTy:
		v, err := ReadInteger(t, word)
		if err != nil {
			return nil, decodeErr(t, pos, ErrOverflow, "%v", err)
		}
		return v, nil
	case BoolTy:
		b, ok := readBool(word)
		if !ok {
			return nil, decodeErr(t, pos, ErrInvalidBool, "%x", word)
		}
		return b, nil
	case AddressTy:
		for _, b := range word[:12] {
			if b != 0 {
				return nil, decodeErr(t, pos, ErrInvalidAddress, "%x", word)
			}
		}
		return common.BytesToAddress(word), nil
	case FixedBytesTy:
		return ReadFixedBytes(t, word), nil
	case StringTy, BytesTy, SliceTy, ArrayTy, TupleTy, FunctionTy:
	}
	return nil, decodeErr(t, pos, ErrUnsupportedType, "")
}

type errIntRange struct {
	have *big.Int
}

func (e errIntRange) Error() string { return e.have.String() + " out of range" }

// ReadInteger reads the integer based on its kind and returns the appropriate
// value: native Go integers up to 64 bits, *big.Int above. Words carrying
// bits outside the type's width are rejected.
func ReadInteger(typ Type, b []byte) (interface{}, error) {
	ret := new(big.Int).SetBytes(b)
	if typ.T == IntTy {
		// The word is a 256 bit two's complement value.
		ret = emath.S256(ret)
	}
	if !inRange(typ, ret) {
		return nil, errIntRange{ret}
	}
	if typ.T == UintTy {
		u64 := ret.Uint64()
		switch typ.Size {
		case 8:
			return uint8(u64), nil
		case 16:
			return uint16(u64), nil
		case 32:
			return uint32(u64), nil
		case 64:
			return u64, nil
		}
		return ret, nil
	}
	i64 := ret.Int64()
	switch typ.Size {
	case 8:
		return int8(i64), nil
	case 16:
		return int16(i64), nil
	case 32:
		return int32(i64), nil
	case 64:
		return i64, nil
	}
	return ret, nil
}

// readBool reads a bool. Only the words 0 and 1 are valid.
func readBool(word []byte) (bool, bool) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, false
		}
	}
	switch word[31] {
	case 0:
		return false, true
	case 1:
		return true, true
	}
	return false, false
}

// ReadFixedBytes uses reflection to create a fixed array to be read from.
func ReadFixedBytes(t Type, word []byte) interface{} {
	array := reflect.New(t.GetType()).Elem()
	reflect.Copy(array, reflect.ValueOf(word[0:t.Size]))
	return array.Interface()
}
