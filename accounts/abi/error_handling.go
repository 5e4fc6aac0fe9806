// Copyright 2016 The go-ethereum Authors
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
	"strings"
)

// Failure kinds. Every error returned by this package wraps exactly one of
// these, so callers can branch with errors.Is regardless of which category
// wrapper (TypeError, SignatureError, EncodeError, DecodeError) carries it.
//
// 错误种类。本包返回的每个错误都恰好包装其中之一，调用方可以用 errors.Is 判断。
var (
	ErrMalformedType      = errors.New("malformed type")
	ErrEmptyName          = errors.New("empty name")
	ErrMalformedSignature = errors.New("malformed signature")
	ErrOverflow           = errors.New("value out of range")
	ErrUnsupportedType    = errors.New("unsupported type")
	ErrInvalidValue       = errors.New("value does not match type")
	ErrArgumentCount      = errors.New("argument count mismatch")
	ErrTruncated          = errors.New("data truncated")
	ErrInvalidBool        = errors.New("improperly encoded boolean value")
	ErrInvalidAddress     = errors.New("improperly encoded address value")
	ErrInvalidUTF8        = errors.New("invalid utf-8 string")
)

// TypeError is returned when a type string cannot be parsed.
type TypeError struct {
	Input  string // the offending type text
	Err    error  // failure kind
	Detail string
}

func (e *TypeError) Error() string {
	return joinDetail(fmt.Sprintf("abi: type %q: %v", e.Input, e.Err), e.Detail)
}

func (e *TypeError) Unwrap() error { return e.Err }

// SignatureError is returned when a function, event or error signature
// cannot be parsed.
type SignatureError struct {
	Signature string
	Err       error
	Detail    string
}

func (e *SignatureError) Error() string {
	return joinDetail(fmt.Sprintf("abi: signature %q: %v", e.Signature, e.Err), e.Detail)
}

func (e *SignatureError) Unwrap() error { return e.Err }

// EncodeError is returned when a Go value cannot be packed as an ABI type.
// Index is the position of the top-level argument, or -1 when the failure
// is not tied to a single argument (e.g. a count mismatch).
type EncodeError struct {
	Index  int
	Name   string
	Type   string
	Err    error
	Detail string
}

func (e *EncodeError) Error() string {
	var b strings.Builder
	b.WriteString("abi: encode")
	writeArgument(&b, e.Index, e.Name, e.Type)
	fmt.Fprintf(&b, ": %v", e.Err)
	return joinDetail(b.String(), e.Detail)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError is returned when ABI encoded data cannot be unpacked. Offset is
// the byte position within the enclosing block where the failure was found.
type DecodeError struct {
	Index  int
	Name   string
	Type   string
	Offset int
	Err    error
	Detail string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("abi: decode")
	writeArgument(&b, e.Index, e.Name, e.Type)
	fmt.Fprintf(&b, " at offset %d: %v", e.Offset, e.Err)
	return joinDetail(b.String(), e.Detail)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func writeArgument(b *strings.Builder, index int, name, typ string) {
	switch {
	case name != "":
		fmt.Fprintf(b, " argument %q", name)
	case index >= 0:
		fmt.Fprintf(b, " argument %d", index)
	}
	if typ != "" {
		fmt.Fprintf(b, " (%s)", typ)
	}
}

func joinDetail(msg, detail string) string {
	if detail == "" {
		return msg
	}
	return msg + ": " + detail
}

func typeErr(input string, kind error, format string, args ...interface{}) error {
	return &TypeError{Input: input, Err: kind, Detail: fmt.Sprintf(format, args...)}
}

func sigErr(sig string, kind error, format string, args ...interface{}) error {
	return &SignatureError{Signature: sig, Err: kind, Detail: fmt.Sprintf(format, args...)}
}

func encodeErr(t Type, kind error, format string, args ...interface{}) error {
	return &EncodeError{Index: -1, Type: t.String(), Err: kind, Detail: fmt.Sprintf(format, args...)}
}

func decodeErr(t Type, offset int, kind error, format string, args ...interface{}) error {
	return &DecodeError{Index: -1, Type: t.String(), Offset: offset, Err: kind, Detail: fmt.Sprintf(format, args...)}
}

// tagArgument attaches the top-level argument position to an encode or
// decode error produced while handling it. Errors are created fresh for every
// call so annotating them in place is safe.
func tagArgument(err error, index int, name string) error {
	var ee *EncodeError
	if errors.As(err, &ee) && ee.Index < 0 {
		ee.Index, ee.Name = index, name
		return err
	}
	var de *DecodeError
	if errors.As(err, &de) && de.Index < 0 {
		de.Index, de.Name = index, name
	}
	return err
}
