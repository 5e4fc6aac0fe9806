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
	"strconv"
	"strings"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/core/types"
	"github.com/sunyihoo/ethabi/crypto"
	"github.com/sunyihoo/ethabi/log"
)

// Event is an event potentially triggered by the EVM's LOG mechanism. The Event
// holds type information (inputs) about the yielded output. Anonymous events
// don't get the signature canonical representation as the first LOG topic.
// Event 是可能由 EVM 的 LOG 机制触发的事件。匿名事件不会将签名哈希作为第一个主题。
type Event struct {
	// Name is the event name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of event overloading.
	//
	// e.g.
	// These are two events that have the same name:
	// * foo(int,int)
	// * foo(uint,uint)
	// The event name of the first one will be resolved as foo while the second one
	// will be resolved as foo0.
	Name string

	// RawName is the raw event name parsed from ABI.
	RawName   string
	Anonymous bool
	Inputs    Arguments
	str       string

	// Sig contains the string signature according to the ABI spec.
	// e.g.	 event foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the event's signature used by the
	// abi definition to identify event names and types.
	ID common.Hash
}

// NewEvent creates a new Event.
// It precomputes the id, signature and string representation of the event.
// Inputs keep their names as given, unnamed ones are addressed by position.
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	names := make([]string, len(inputs))
	types := make([]string, len(inputs))
	for i, input := range inputs {
		names[i] = input.Type.String()
		if input.Indexed {
			names[i] += " indexed"
		}
		if input.Name != "" {
			names[i] += " " + input.Name
		}
		types[i] = input.Type.String()
	}
	str := fmt.Sprintf("event %v(%v)", rawName, strings.Join(names, ", "))
	if anonymous {
		str += " anonymous"
	}
	sig := fmt.Sprintf("%v(%v)", rawName, strings.Join(types, ","))
	id := crypto.Keccak256Hash([]byte(sig))

	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       str,
		Sig:       sig,
		ID:        id,
	}
}

// String returns the string representation of the event.
func (e Event) String() string {
	return e.str
}

// DecodeLog decodes a log emitted by this event. It returns nil without an
// error when the log cannot belong to the event: the event is anonymous and
// so has no topic to match, topics[0] differs from the event ID, or there
// are fewer topics than indexed inputs. Decoding failures of a matching log
// are returned as errors.
//
// Values are keyed by input position ("0", "1", ...) and by input name.
// DecodeLog 解码该事件产生的日志，不匹配时返回 nil。
func (e Event) DecodeLog(lg *types.Log) (map[string]interface{}, error) {
	if e.Anonymous {
		return nil, nil
	}
	if len(lg.Topics) == 0 || lg.Topics[0] != e.ID {
		log.Trace("Log does not match event", "event", e.Sig, "address", lg.Address)
		return nil, nil
	}
	if len(lg.Topics)-1 < len(e.Inputs.Indexed()) {
		log.Trace("Log has too few topics", "event", e.Sig, "have", len(lg.Topics)-1, "want", len(e.Inputs.Indexed()))
		return nil, nil
	}
	return e.unpackLog(lg.Topics[1:], lg.Data)
}

// UnpackLog decodes a log without matching its first topic against the event
// ID. For anonymous events the indexed values start at topics[0].
func (e Event) UnpackLog(lg *types.Log) (map[string]interface{}, error) {
	topics := lg.Topics
	if !e.Anonymous {
		if len(topics) == 0 {
			return nil, &DecodeError{Index: -1, Err: ErrTruncated, Detail: "log has no topics"}
		}
		topics = topics[1:]
	}
	if want := len(e.Inputs.Indexed()); len(topics) < want {
		return nil, &DecodeError{Index: -1, Err: ErrTruncated, Detail: fmt.Sprintf("have %d topics, want %d", len(topics), want)}
	}
	return e.unpackLog(topics, lg.Data)
}

func (e Event) unpackLog(topics []common.Hash, data []byte) (map[string]interface{}, error) {
	values, err := e.Inputs.Unpack(data)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, 2*len(e.Inputs))
	var topic, field int
	for i, input := range e.Inputs {
		var v interface{}
		if input.Indexed {
			v, err = topicValue(input.Type, topics[topic])
			if err != nil {
				return nil, tagArgument(err, i, input.Name)
			}
			topic++
		} else {
			v = values[field]
			field++
		}
		out[strconv.Itoa(i)] = v
		if input.Name != "" {
			out[input.Name] = v
		}
	}
	return out, nil
}
