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
package bind

import (
	"errors"

	ethabi "github.com/sunyihoo/ethabi"
)

var (
	// ErrNoCode is returned by call and transact operations for which the requested
	// recipient contract to operate on does not exist in the state db or does not
	// have any code associated with it (i.e. self-destructed).
	// ErrNoCode 表示目标地址上没有合约代码。
	ErrNoCode = errors.New("no contract code at given address")
)

// ContractCaller defines the methods needed to allow operating with a contract on a read
// only basis.
type ContractCaller interface {
	ethabi.ContractCaller
}

// ContractFilterer defines the methods needed to access log events using one-off
// queries.
type ContractFilterer interface {
	ethabi.LogFilterer
}

// ContractBackend defines the methods needed to work with contracts on a read-only
// basis.
type ContractBackend interface {
	ContractCaller
	ContractFilterer
}
