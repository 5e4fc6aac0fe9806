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
	"context"
	"errors"
	"fmt"
	"math/big"
	"runtime"

	ethabi "github.com/sunyihoo/ethabi"
	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/core/types"
	"github.com/sunyihoo/ethabi/log"
	"golang.org/x/sync/errgroup"
)

// CallOpts is the collection of options to fine tune a contract call request.
type CallOpts struct {
	From        common.Address  // Optional the sender address, otherwise the first account is used
	BlockNumber *big.Int        // Optional the block number on which the call should be performed
	Context     context.Context // Network context to support cancellation and timeouts (nil = no timeout)
}

// FilterOpts is the collection of options to fine tune filtering for events
// within a bound contract.
type FilterOpts struct {
	Start uint64  // Start of the queried range
	End   *uint64 // End of the range (nil = latest)

	Context context.Context // Network context to support cancellation and timeouts (nil = no timeout)
}

// LogResult is one decoded log of a FilterLogs query. A log that fails to
// decode carries the error and does not affect the other results.
type LogResult struct {
	Log    types.Log
	Values map[string]interface{}
	Err    error
}

// BoundContract is the base wrapper object that reflects a contract on the
// Ethereum network. It contains a collection of methods that are used by the
// higher level contract bindings to operate.
// BoundContract 是以太坊网络上合约的基础包装对象。
type BoundContract struct {
	address  common.Address   // Deployment address of the contract on the Ethereum blockchain
	abi      abi.ABI          // Reflect based ABI to access the correct Ethereum methods
	caller   ContractCaller   // Read interface to interact with the blockchain
	filterer ContractFilterer // Event filtering to interact with the blockchain
}

// NewBoundContract creates a low level contract interface through which calls
// and log queries may be made.
func NewBoundContract(address common.Address, abi abi.ABI, caller ContractCaller, filterer ContractFilterer) *BoundContract {
	return &BoundContract{
		address:  address,
		abi:      abi,
		caller:   caller,
		filterer: filterer,
	}
}

// Address returns the deployment address of the contract.
func (c *BoundContract) Address() common.Address {
	return c.address
}

// Call invokes the (constant) contract method with params as input values and
// returns the decoded output values.
//
// An empty result from an account without code fails with ErrNoCode. Revert
// data is resolved into its reason where possible.
func (c *BoundContract) Call(opts *CallOpts, method string, params ...interface{}) ([]interface{}, error) {
	if opts == nil {
		opts = new(CallOpts)
	}
	input, err := c.abi.Pack(method, params...)
	if err != nil {
		return nil, err
	}
	var (
		ctx  = ensureContext(opts.Context)
		msg  = ethabi.CallMsg{From: opts.From, To: &c.address, Data: input}
		code []byte
	)
	output, err := c.caller.CallContract(ctx, msg, opts.BlockNumber)
	if err != nil {
		var revert interface{ ErrorData() interface{} }
		if errors.As(err, &revert) {
			if data, ok := revert.ErrorData().([]byte); ok {
				if reason, rerr := abi.UnpackRevert(data); rerr == nil {
					return nil, fmt.Errorf("execution reverted: %s", reason)
				}
			}
		}
		return nil, err
	}
	if len(output) == 0 {
		// Make sure we have a contract to operate on, and bail out otherwise.
		if code, err = c.caller.CodeAt(ctx, c.address, opts.BlockNumber); err != nil {
			return nil, err
		} else if len(code) == 0 {
			return nil, ErrNoCode
		}
	}
	log.Trace("Contract call", "address", c.address, "method", method, "input", input, "output", output)
	return c.abi.Unpack(method, output)
}

// FilterLogs fetches the logs of the named event, optionally restricted by
// indexed values (see abi.MakeTopics), and decodes them concurrently. Decode
// failures are reported per log.
func (c *BoundContract) FilterLogs(opts *FilterOpts, name string, query ...[]interface{}) ([]LogResult, error) {
	if opts == nil {
		opts = new(FilterOpts)
	}
	event, ok := c.abi.Events[name]
	if !ok {
		return nil, fmt.Errorf("event '%s' not found", name)
	}
	// Append the event selector to the query parameters and construct the topic set
	if !event.Anonymous {
		query = append([][]interface{}{{event.ID}}, query...)
	}
	topics, err := abi.MakeTopics(query...)
	if err != nil {
		return nil, err
	}
	config := ethabi.FilterQuery{
		Addresses: []common.Address{c.address},
		Topics:    topics,
		FromBlock: new(big.Int).SetUint64(opts.Start),
	}
	if opts.End != nil {
		config.ToBlock = new(big.Int).SetUint64(*opts.End)
	}
	ctx := ensureContext(opts.Context)
	logs, err := c.filterer.FilterLogs(ctx, config)
	if err != nil {
		return nil, err
	}
	results := make([]LogResult, len(logs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range logs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.decodeLog(event, logs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *BoundContract) decodeLog(event abi.Event, lg types.Log) LogResult {
	res := LogResult{Log: lg}
	if lg.Removed {
		res.Err = errors.New("log removed by reorg")
		return res
	}
	if event.Anonymous {
		res.Values, res.Err = event.UnpackLog(&lg)
	} else {
		res.Values, res.Err = event.DecodeLog(&lg)
		if res.Values == nil && res.Err == nil {
			res.Err = errors.New("log does not match event " + event.Sig)
		}
	}
	if res.Err != nil {
		log.Debug("Failed to decode log", "event", event.Sig, "tx", lg.TxHash, "index", lg.Index, "err", res.Err)
	}
	return res
}

// ensureContext is a helper method to ensure a context is not nil, even if the
// user specified it as such.
func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
