// Copyright 2022 The go-ethereum Authors
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

// Words that may follow a parameter type in human-readable signatures without
// being its name. Data locations and address payability do not change the
// ABI encoding.
var ignoredParamWords = map[string]bool{
	"memory":   true,
	"calldata": true,
	"storage":  true,
	"payable":  true,
}

// Function modifiers accepted between the parameter list and "returns".
var stateMutabilities = map[string]bool{
	"pure":       true,
	"view":       true,
	"nonpayable": true,
	"payable":    true,
	"external":   true,
	"public":     true,
	"constant":   true,
}

// signature is the parsed form of a human-readable function, event or error
// declaration such as
//
//	function transfer(address to, uint256 amount) external returns (bool)
//	event Transfer(address indexed from, address indexed to, uint256 value)
type signature struct {
	name      string
	inputs    Arguments
	outputs   Arguments
	modifiers []string
	anonymous bool
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isIdentifier reports whether s is a valid Solidity identifier.
func isIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; !(isAlpha(c) || isDigit(c) || isIdentifierSymbol(c)) {
			return false
		}
	}
	return true
}

// matchingParen returns the index of the ')' closing the '(' at open, or -1.
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s on commas that are not nested inside parentheses or
// brackets. An all-whitespace input yields no pieces; an empty piece between
// two commas is an error.
func splitTopLevel(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var (
		pieces []string
		depth  int
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unexpected '%c'", s[i])
			}
		case ',':
			if depth == 0 {
				pieces = append(pieces, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced brackets")
	}
	pieces = append(pieces, s[start:])
	for i, piece := range pieces {
		if pieces[i] = strings.TrimSpace(piece); pieces[i] == "" {
			return nil, errors.New("empty parameter")
		}
	}
	return pieces, nil
}

// splitParam separates the type text of a parameter declaration from the
// words following it. The type ends at the first whitespace outside of
// parentheses that is not followed by an array suffix.
func splitParam(piece string) (string, []string) {
	depth := 0
	i := 0
	for i < len(piece) {
		c := piece[i]
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && isSpace(c) {
			j := i
			for j < len(piece) && isSpace(piece[j]) {
				j++
			}
			if j < len(piece) && (piece[j] == '[' || piece[j] == ']') {
				i = j
				continue
			}
			break
		}
		i++
	}
	return piece[:i], strings.Fields(piece[i:])
}

// parseParams parses a comma separated parameter list. Event parameters may
// carry the "indexed" keyword.
func parseParams(sig, list string, allowIndexed bool) (Arguments, error) {
	pieces, err := splitTopLevel(list)
	if err != nil {
		return nil, sigErr(sig, ErrMalformedSignature, "%v", err)
	}
	args := make(Arguments, 0, len(pieces))
	for _, piece := range pieces {
		text, words := splitParam(piece)
		typ, err := NewType(text)
		if err != nil {
			return nil, err
		}
		arg := Argument{Type: typ}
		for _, word := range words {
			switch {
			case word == "indexed" && allowIndexed && !arg.Indexed && arg.Name == "":
				arg.Indexed = true
			case ignoredParamWords[word] && arg.Name == "":
			case arg.Name == "" && isIdentifier(word):
				arg.Name = word
			default:
				return nil, sigErr(sig, ErrMalformedSignature, "unexpected %q in parameter %q", word, piece)
			}
		}
		args = append(args, arg)
	}
	return args, nil
}

// parseSignature parses a declaration introduced by the optional keyword.
// Functions may be followed by modifiers and a "returns (...)" clause,
// events by "anonymous".
func parseSignature(raw, keyword string) (*signature, error) {
	s := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(s, keyword); ok && rest != "" && isSpace(rest[0]) {
		s = strings.TrimSpace(rest)
	}
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nil, sigErr(raw, ErrMalformedSignature, "missing '('")
	}
	name := strings.TrimSpace(s[:open])
	if name == "" {
		return nil, sigErr(raw, ErrEmptyName, "")
	}
	if !isIdentifier(name) {
		return nil, sigErr(raw, ErrMalformedSignature, "invalid name %q", name)
	}
	closing := matchingParen(s, open)
	if closing < 0 {
		return nil, sigErr(raw, ErrMalformedSignature, "missing ')'")
	}
	inputs, err := parseParams(raw, s[open+1:closing], keyword == "event")
	if err != nil {
		return nil, err
	}
	sig := &signature{name: name, inputs: inputs}

	rest := strings.TrimSpace(s[closing+1:])
	for rest != "" {
		word, tail := nextWord(rest)
		switch {
		case keyword == "event" && word == "anonymous" && !sig.anonymous:
			sig.anonymous = true
			rest = tail
		case keyword == "function" && stateMutabilities[word] && sig.outputs == nil:
			sig.modifiers = append(sig.modifiers, word)
			rest = tail
		case keyword == "function" && word == "returns" && sig.outputs == nil:
			tail = strings.TrimSpace(tail)
			if tail == "" || tail[0] != '(' {
				return nil, sigErr(raw, ErrMalformedSignature, "expected '(' after returns")
			}
			end := matchingParen(tail, 0)
			if end < 0 {
				return nil, sigErr(raw, ErrMalformedSignature, "missing ')' after returns")
			}
			if sig.outputs, err = parseParams(raw, tail[1:end], false); err != nil {
				return nil, err
			}
			if sig.outputs == nil {
				sig.outputs = Arguments{}
			}
			rest = strings.TrimSpace(tail[end+1:])
		default:
			return nil, sigErr(raw, ErrMalformedSignature, "unexpected %q after parameter list", rest)
		}
	}
	return sig, nil
}

// nextWord splits off the leading identifier-like word of s. A word ends at
// whitespace or an opening parenthesis.
func nextWord(s string) (string, string) {
	i := 0
	for i < len(s) && !isSpace(s[i]) && s[i] != '(' {
		i++
	}
	if i == 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t\r\n")
}

// ParseMethod parses a human-readable function signature such as
// "transfer(address,uint256)" or
// "function balanceOf(address owner) view returns (uint256)".
// Whitespace and line breaks are insignificant; the canonical signature of
// the result is rendered without them.
//
// ParseMethod 解析人类可读的函数签名，返回的规范签名不含空白。
func ParseMethod(sig string) (Method, error) {
	parsed, err := parseSignature(sig, "function")
	if err != nil {
		return Method{}, err
	}
	mutability := "nonpayable"
	for _, m := range parsed.modifiers {
		switch m {
		case "pure", "view", "payable", "nonpayable":
			mutability = m
		case "constant":
			mutability = "view"
		}
	}
	return NewMethod(parsed.name, parsed.name, Function, mutability, false, false, parsed.inputs, parsed.outputs), nil
}

// ParseEvent parses a human-readable event signature such as
// "Transfer(address indexed from, address indexed to, uint256 value)".
// A trailing "anonymous" keyword marks the event anonymous.
func ParseEvent(sig string) (Event, error) {
	parsed, err := parseSignature(sig, "event")
	if err != nil {
		return Event{}, err
	}
	return NewEvent(parsed.name, parsed.name, parsed.anonymous, parsed.inputs), nil
}

// ParseError parses a human-readable custom error signature such as
// "error InsufficientBalance(uint256 available, uint256 required)".
func ParseError(sig string) (Error, error) {
	parsed, err := parseSignature(sig, "error")
	if err != nil {
		return Error{}, err
	}
	return NewError(parsed.name, parsed.inputs), nil
}
