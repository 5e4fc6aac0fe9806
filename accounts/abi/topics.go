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
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/math"
	"github.com/sunyihoo/ethabi/crypto"
)

// MakeTopics converts a filter query argument list into a filter topic set.
// Each inner list is one topic position; its rules are alternatives. Strings
// and byte slices are hashed, the way indexed dynamic values are stored.
// MakeTopics 将过滤器查询参数列表转换为过滤器主题集合。
func MakeTopics(query ...[]interface{}) ([][]common.Hash, error) {
	topics := make([][]common.Hash, len(query))
	for i, filter := range query {
		for _, rule := range filter {
			topic, err := makeTopic(rule)
			if err != nil {
				return nil, err
			}
			topics[i] = append(topics[i], topic)
		}
	}
	return topics, nil
}

func makeTopic(rule interface{}) (common.Hash, error) {
	var topic common.Hash
	switch rule := rule.(type) {
	case common.Hash:
		return rule, nil
	case common.Address:
		copy(topic[common.HashLength-common.AddressLength:], rule[:])
	case *big.Int:
		copy(topic[:], math.U256Bytes(new(big.Int).Set(rule)))
	case *uint256.Int:
		return common.Hash(rule.Bytes32()), nil
	case bool:
		if rule {
			topic[common.HashLength-1] = 1
		}
	case int8:
		return intTopic(int64(rule)), nil
	case int16:
		return intTopic(int64(rule)), nil
	case int32:
		return intTopic(int64(rule)), nil
	case int64:
		return intTopic(rule), nil
	case int:
		return intTopic(int64(rule)), nil
	case uint8:
		return uintTopic(uint64(rule)), nil
	case uint16:
		return uintTopic(uint64(rule)), nil
	case uint32:
		return uintTopic(uint64(rule)), nil
	case uint64:
		return uintTopic(rule), nil
	case uint:
		return uintTopic(uint64(rule)), nil
	case string:
		return crypto.Keccak256Hash([]byte(rule)), nil
	case []byte:
		return crypto.Keccak256Hash(rule), nil
	default:
		// Fixed byte arrays are stored left aligned like bytesN words.
		val := reflect.ValueOf(rule)
		if val.Kind() == reflect.Array && val.Type().Elem().Kind() == reflect.Uint8 && val.Len() <= common.HashLength {
			reflect.Copy(reflect.ValueOf(topic[:val.Len()]), val)
			return topic, nil
		}
		return topic, fmt.Errorf("unsupported indexed type: %T", rule)
	}
	return topic, nil
}

func intTopic(n int64) common.Hash {
	var topic common.Hash
	copy(topic[:], math.U256Bytes(big.NewInt(n)))
	return topic
}

func uintTopic(n uint64) common.Hash {
	var topic common.Hash
	copy(topic[:], math.U256Bytes(new(big.Int).SetUint64(n)))
	return topic
}

// ParseTopics converts the indexed topic fields into actual log field values
// and stores them in the matching fields of the struct out points to.
func ParseTopics(out interface{}, fields Arguments, topics []common.Hash) error {
	value := reflect.ValueOf(out)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("abi: ParseTopics(non-struct pointer %T)", out)
	}
	return parseTopicWithSetter(fields, topics,
		func(_ int, arg Argument, reconstr interface{}) error {
			field := value.Elem().FieldByName(ToCamelCase(arg.Name))
			if !field.IsValid() {
				return fmt.Errorf("abi: field %s can't be found in the given value", arg.Name)
			}
			return set(field, reflect.ValueOf(reconstr))
		})
}

// ParseTopicsIntoMap converts the indexed topic field-value pairs into map
// key-value pairs. Values are stored under their position among the fields
// and, when named, under the name.
func ParseTopicsIntoMap(out map[string]interface{}, fields Arguments, topics []common.Hash) error {
	return parseTopicWithSetter(fields, topics,
		func(i int, arg Argument, reconstr interface{}) error {
			out[fmt.Sprint(i)] = reconstr
			if arg.Name != "" {
				out[arg.Name] = reconstr
			}
			return nil
		})
}

// parseTopicWithSetter converts the indexed topic field-value pairs and stores them using the
// provided set function.
//
// Note, dynamic types cannot be reconstructed since they get mapped to Keccak256
// hashes as the topic value!
func parseTopicWithSetter(fields Arguments, topics []common.Hash, setter func(int, Argument, interface{}) error) error {
	if len(fields) != len(topics) {
		return errors.New("topic/field count mismatch")
	}
	for i, arg := range fields {
		if !arg.Indexed {
			return errors.New("non-indexed field in topic reconstruction")
		}
		reconstr, err := topicValue(arg.Type, topics[i])
		if err != nil {
			return tagArgument(err, i, arg.Name)
		}
		if err := setter(i, arg, reconstr); err != nil {
			return err
		}
	}
	return nil
}

// topicValue decodes one indexed value. Dynamic and composite types are
// stored as the keccak256 hash of their encoding and cannot be reversed, so
// the hash itself is returned.
// topicValue 解码一个索引值；动态类型只能返回其哈希。
func topicValue(t Type, topic common.Hash) (interface{}, error) {
	switch t.T {
	case StringTy, BytesTy, SliceTy, ArrayTy, TupleTy:
		return topic, nil
	case FunctionTy:
		return nil, decodeErr(t, 0, ErrUnsupportedType, "")
	case IntTy, UintTy, BoolTy, AddressTy, FixedBytesTy:
	}
	return readElement(t, topic[:], 0)
}
