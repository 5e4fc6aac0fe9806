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
	"strconv"
	"strings"

	"github.com/sunyihoo/ethabi/common"
)

// maxHeadSize bounds the inline size of a static array, in bytes.
const maxHeadSize = 1 << 30

// Kind enumerates the ABI type variants. The set is closed: every switch over
// a Kind in this package handles each value explicitly.
// Kind 枚举 ABI 类型的变体。
type Kind byte

// Type enumerator
const (
	IntTy Kind = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
	FunctionTy
)

var kindNames = [...]string{
	IntTy:        "int",
	UintTy:       "uint",
	BoolTy:       "bool",
	StringTy:     "string",
	SliceTy:      "slice",
	ArrayTy:      "array",
	TupleTy:      "tuple",
	AddressTy:    "address",
	FixedBytesTy: "fixedbytes",
	BytesTy:      "bytes",
	FunctionTy:   "function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Type is the reflection of the supported argument type. A Type is never
// modified after NewType returns it, so values may be shared between
// goroutines freely.
// Type 是支持的参数类型的反射，构造后不可变。
type Type struct {
	Elem *Type // element type of SliceTy and ArrayTy
	Size int   // bit width of IntTy/UintTy, byte length of FixedBytesTy, element count of ArrayTy
	T    Kind

	TupleElems    []*Type  // component types of TupleTy
	TupleRawNames []string // component names of TupleTy, may be empty strings

	stringKind string // canonical form used in signatures
}

// NewType creates a new reflection type of abi type given in t.
//
// The grammar is applied to the trimmed string from the outside in: a
// trailing ']' makes an array, a trailing ')' makes a tuple, and anything
// else must be an elementary type. Bare "uint" and "int" mean 256 bits.
func NewType(t string) (Type, error) {
	typ, err := parseType(strings.TrimSpace(t))
	if err != nil {
		if te, ok := err.(*TypeError); ok && te.Input == "" {
			te.Input = t
		}
		return Type{}, err
	}
	return typ, nil
}

// MustNewType is like NewType but panics on error. It simplifies the
// declaration of static types.
func MustNewType(t string) Type {
	typ, err := NewType(t)
	if err != nil {
		panic(err)
	}
	return typ
}

func parseType(s string) (Type, error) {
	if s == "" {
		return Type{}, typeErr(s, ErrMalformedType, "empty type")
	}
	switch s[len(s)-1] {
	case ']':
		return parseArrayType(s)
	case ')':
		return parseTupleType(s)
	default:
		return parseElementaryType(s)
	}
}

func parseArrayType(s string) (Type, error) {
	open := strings.LastIndexByte(s, '[')
	if open < 0 {
		return Type{}, typeErr(s, ErrMalformedType, "unbalanced ']'")
	}
	elem, err := parseType(strings.TrimSpace(s[:open]))
	if err != nil {
		return Type{}, err
	}
	count := strings.TrimSpace(s[open+1 : len(s)-1])
	if count == "" {
		return Type{
			Elem:       &elem,
			T:          SliceTy,
			stringKind: elem.stringKind + "[]",
		}, nil
	}
	n, err := strconv.Atoi(count)
	if err != nil || n <= 0 {
		return Type{}, typeErr(s, ErrMalformedType, "array length %q is not a positive integer", count)
	}
	// Static arrays are inlined, so their whole size must stay addressable.
	if !elem.IsDynamic() && n > maxHeadSize/elem.HeadSize() {
		return Type{}, typeErr(s, ErrMalformedType, "array of %d elements exceeds %d head bytes", n, maxHeadSize)
	}
	return Type{
		Elem:       &elem,
		Size:       n,
		T:          ArrayTy,
		stringKind: fmt.Sprintf("%s[%d]", elem.stringKind, n),
	}, nil
}

func parseTupleType(s string) (Type, error) {
	body := strings.TrimSpace(strings.TrimPrefix(s, "tuple"))
	if body == "" || body[0] != '(' || matchingParen(body, 0) != len(body)-1 {
		return Type{}, typeErr(s, ErrMalformedType, "unbalanced parentheses")
	}
	pieces, err := splitTopLevel(body[1 : len(body)-1])
	if err != nil {
		return Type{}, typeErr(s, ErrMalformedType, "%v", err)
	}
	var (
		elems = make([]*Type, 0, len(pieces))
		names = make([]string, 0, len(pieces))
		kinds = make([]string, 0, len(pieces))
	)
	for _, piece := range pieces {
		text, words := splitParam(piece)
		elem, err := parseType(text)
		if err != nil {
			return Type{}, err
		}
		var name string
		switch len(words) {
		case 0:
		case 1:
			name = words[0]
		default:
			return Type{}, typeErr(s, ErrMalformedType, "unexpected %q in tuple component", strings.Join(words, " "))
		}
		elems = append(elems, &elem)
		names = append(names, name)
		kinds = append(kinds, elem.stringKind)
	}
	return Type{
		T:             TupleTy,
		TupleElems:    elems,
		TupleRawNames: names,
		stringKind:    "(" + strings.Join(kinds, ",") + ")",
	}, nil
}

func parseElementaryType(s string) (Type, error) {
	s = strings.Join(strings.Fields(s), "")
	switch s {
	case "address":
		return Type{T: AddressTy, Size: 20, stringKind: s}, nil
	case "bool":
		return Type{T: BoolTy, stringKind: s}, nil
	case "string":
		return Type{T: StringTy, stringKind: s}, nil
	case "bytes":
		return Type{T: BytesTy, stringKind: s}, nil
	case "function":
		return Type{T: FunctionTy, Size: 24, stringKind: s}, nil
	case "uint":
		return Type{T: UintTy, Size: 256, stringKind: "uint256"}, nil
	case "int":
		return Type{T: IntTy, Size: 256, stringKind: "int256"}, nil
	}
	switch {
	case strings.HasPrefix(s, "bytes"):
		n, ok := parseWidth(s[len("bytes"):])
		if !ok || n < 1 || n > 32 {
			return Type{}, typeErr(s, ErrMalformedType, "fixed bytes length must be in 1..32")
		}
		return Type{T: FixedBytesTy, Size: n, stringKind: s}, nil
	case strings.HasPrefix(s, "uint"):
		n, ok := parseWidth(s[len("uint"):])
		if !ok || !validIntWidth(n) {
			return Type{}, typeErr(s, ErrMalformedType, "integer width must be a multiple of 8 in 8..256")
		}
		return Type{T: UintTy, Size: n, stringKind: s}, nil
	case strings.HasPrefix(s, "int"):
		n, ok := parseWidth(s[len("int"):])
		if !ok || !validIntWidth(n) {
			return Type{}, typeErr(s, ErrMalformedType, "integer width must be a multiple of 8 in 8..256")
		}
		return Type{T: IntTy, Size: n, stringKind: s}, nil
	}
	return Type{}, typeErr(s, ErrMalformedType, "unknown type")
}

// parseWidth parses a decimal suffix without sign or leading zeros.
func parseWidth(s string) (int, bool) {
	if s == "" || s[0] == '0' || len(s) > 3 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func validIntWidth(n int) bool {
	return n >= 8 && n <= 256 && n%8 == 0
}

// String implements Stringer. It returns the canonical form of the type as
// used in signatures, e.g. "uint256[]" or "(address,bytes32)[2]".
func (t Type) String() (out string) {
	return t.stringKind
}

// IsDynamic reports whether the encoding of t is stored in the tail region
// behind an offset. Slices, bytes and strings are always dynamic; fixed
// arrays and tuples are dynamic iff one of their components is.
func (t Type) IsDynamic() bool {
	switch t.T {
	case StringTy, BytesTy, SliceTy:
		return true
	case ArrayTy:
		return t.Elem.IsDynamic()
	case TupleTy:
		for _, elem := range t.TupleElems {
			if elem.IsDynamic() {
				return true
			}
		}
		return false
	case IntTy, UintTy, BoolTy, AddressTy, FixedBytesTy, FunctionTy:
		return false
	}
	panic("abi: unknown type kind " + t.T.String())
}

// HeadSize returns the number of bytes t occupies in the head region of an
// encoded block: 32 for elementary and dynamic types, the full inline size for
// static arrays and tuples.
func (t Type) HeadSize() int {
	if t.IsDynamic() {
		return 32
	}
	switch t.T {
	case ArrayTy:
		return t.Size * t.Elem.HeadSize()
	case TupleTy:
		total := 0
		for _, elem := range t.TupleElems {
			total += elem.HeadSize()
		}
		return total
	}
	return 32
}

// GetType returns the reflection type of the ABI type. It is the Go type
// values of t decode into.
func (t Type) GetType() reflect.Type {
	switch t.T {
	case IntTy:
		return reflectIntType(false, t.Size)
	case UintTy:
		return reflectIntType(true, t.Size)
	case BoolTy:
		return reflect.TypeOf(false)
	case StringTy:
		return reflect.TypeOf("")
	case SliceTy:
		return reflect.SliceOf(t.Elem.GetType())
	case ArrayTy:
		return reflect.ArrayOf(t.Size, t.Elem.GetType())
	case TupleTy:
		return reflect.TypeOf([]interface{}{})
	case AddressTy:
		return reflect.TypeOf(common.Address{})
	case FixedBytesTy:
		return reflect.ArrayOf(t.Size, reflect.TypeOf(byte(0)))
	case BytesTy:
		return reflect.SliceOf(reflect.TypeOf(byte(0)))
	case FunctionTy:
		return reflect.ArrayOf(24, reflect.TypeOf(byte(0)))
	}
	panic("abi: unknown type kind " + t.T.String())
}

// zeroValue returns the value an empty return decodes into: the zero value
// of GetType, except that big integers and slices are non-nil.
func (t Type) zeroValue() interface{} {
	rt := t.GetType()
	switch {
	case rt == reflect.TypeOf(&big.Int{}):
		return new(big.Int)
	case rt.Kind() == reflect.Slice:
		return reflect.MakeSlice(rt, 0, 0).Interface()
	}
	return reflect.Zero(rt).Interface()
}

// supported reports whether values of t can be encoded and decoded. Tuples
// and function pointers are parsed but have no codec.
func (t Type) supported() bool {
	switch t.T {
	case TupleTy, FunctionTy:
		return false
	case SliceTy, ArrayTy:
		return t.Elem.supported()
	}
	return true
}
