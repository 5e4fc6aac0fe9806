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
// Package abi implements the Ethereum ABI (Application Binary
// Interface).
//
// Types are parsed from their textual form with NewType, signatures with
// ParseMethod, ParseEvent and ParseError, or a whole contract description
// with JSON. Values are packed into 32 byte words laid out as a head region
// followed by a tail region for dynamically sized data. Unpacking bounds
// checks every offset and length and rejects words that are not canonically
// encoded for their type.
//
// Tuple and function types are recognised by the parser but cannot be
// packed or unpacked.
//
// abi 包实现了以太坊 ABI 的类型解析、编码和解码。
package abi
