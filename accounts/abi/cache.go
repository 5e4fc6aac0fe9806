// Copyright 2024 The go-ethereum Authors
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
	"sync"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/log"
	"golang.org/x/sync/singleflight"
)

// SignatureCache memoizes parsed method and event signatures, keyed by the
// signature text with insignificant whitespace removed. Entries are never
// invalidated since a signature's meaning cannot change. Lookups take
// a read lock only; concurrent misses on the same text are parsed once.
// SignatureCache 缓存已解析的方法和事件签名。
type SignatureCache struct {
	lock      sync.RWMutex
	methods   map[string]Method // normalized text -> method
	events    map[string]Event  // normalized text -> event
	selectors map[[4]byte]Method
	topics    map[common.Hash]Event

	group singleflight.Group
}

// NewSignatureCache creates an empty cache.
func NewSignatureCache() *SignatureCache {
	return &SignatureCache{
		methods:   make(map[string]Method),
		events:    make(map[string]Event),
		selectors: make(map[[4]byte]Method),
		topics:    make(map[common.Hash]Event),
	}
}

// Method returns the parsed form of a function signature, parsing it on
// first use. Parse failures are not cached.
func (c *SignatureCache) Method(sig string) (Method, error) {
	sig = normalizeSignature(sig)

	c.lock.RLock()
	m, ok := c.methods[sig]
	c.lock.RUnlock()
	if ok {
		return m.copyID(), nil
	}
	v, err, _ := c.group.Do("function "+sig, func() (interface{}, error) {
		log.Debug("Parsing method signature", "sig", sig)
		m, err := ParseMethod(sig)
		if err != nil {
			return nil, err
		}
		c.lock.Lock()
		defer c.lock.Unlock()

		c.methods[sig] = m
		// The first signature parsed for a selector wins.
		if _, ok := c.selectors[m.Selector()]; !ok {
			c.selectors[m.Selector()] = m
		}
		return m, nil
	})
	if err != nil {
		return Method{}, err
	}
	return v.(Method).copyID(), nil
}

// Event returns the parsed form of an event signature, parsing it on first
// use. Parse failures are not cached.
func (c *SignatureCache) Event(sig string) (Event, error) {
	sig = normalizeSignature(sig)

	c.lock.RLock()
	e, ok := c.events[sig]
	c.lock.RUnlock()
	if ok {
		return e, nil
	}
	v, err, _ := c.group.Do("event "+sig, func() (interface{}, error) {
		log.Debug("Parsing event signature", "sig", sig)
		e, err := ParseEvent(sig)
		if err != nil {
			return nil, err
		}
		c.lock.Lock()
		defer c.lock.Unlock()

		c.events[sig] = e
		if _, ok := c.topics[e.ID]; !ok {
			c.topics[e.ID] = e
		}
		return e, nil
	})
	if err != nil {
		return Event{}, err
	}
	return v.(Event), nil
}

// MethodBySelector returns a previously parsed method with the given
// selector.
func (c *SignatureCache) MethodBySelector(sel [4]byte) (Method, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	m, ok := c.selectors[sel]
	return m.copyID(), ok
}

// EventByTopic returns a previously parsed event with the given topic.
func (c *SignatureCache) EventByTopic(topic common.Hash) (Event, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	e, ok := c.topics[topic]
	return e, ok
}

// Len returns the number of cached signatures.
func (c *SignatureCache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.methods) + len(c.events)
}

// copyID detaches the selector slice so callers cannot modify cached state.
func (method Method) copyID() Method {
	method.ID = common.CopyBytes(method.ID)
	return method
}

// normalizeSignature reduces insignificant whitespace so formatting variants
// of one signature share a cache entry. Runs of whitespace collapse to one
// space; spaces before brackets and commas, and after opening parentheses
// and commas, are dropped.
func normalizeSignature(sig string) string {
	var (
		out   = make([]byte, 0, len(sig))
		space = false
	)
	for i := 0; i < len(sig); i++ {
		c := sig[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			space = true
			continue
		case '(', ')', '[', ']', ',':
			space = false
		default:
			if space && len(out) > 0 && !opensList(out[len(out)-1]) {
				out = append(out, ' ')
			}
			space = false
		}
		out = append(out, c)
	}
	return string(out)
}

func opensList(c byte) bool {
	return c == '(' || c == ','
}

var defaultCache = NewSignatureCache()

// ParseMethodCached is ParseMethod backed by a process wide cache.
func ParseMethodCached(sig string) (Method, error) {
	return defaultCache.Method(sig)
}

// ParseEventCached is ParseEvent backed by a process wide cache.
func ParseEventCached(sig string) (Event, error) {
	return defaultCache.Event(sig)
}
