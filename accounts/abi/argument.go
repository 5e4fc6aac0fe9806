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
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Argument holds the name of the argument and the corresponding type.
// Types are used when packing and testing arguments.
// Argument 保存参数名称和对应类型。
type Argument struct {
	Name    string // may be empty
	Type    Type
	Indexed bool // indexed is only used by events
}

// Arguments is an ordered list of Argument.
type Arguments []Argument

// ArgumentMarshaling is the JSON form of an Argument in a contract ABI.
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}
	argument.Type, err = newTypeFromMarshaling(arg)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed
	return nil
}

// newTypeFromMarshaling builds a type from its JSON description. Tuple types
// are spelled "tuple", "tuple[]", "tuple[2]" and so on with their members in
// Components.
func newTypeFromMarshaling(arg ArgumentMarshaling) (Type, error) {
	suffix, ok := strings.CutPrefix(arg.Type, "tuple")
	if !ok {
		return NewType(arg.Type)
	}
	members := make([]string, len(arg.Components))
	for i, c := range arg.Components {
		ctyp, err := newTypeFromMarshaling(c)
		if err != nil {
			return Type{}, err
		}
		members[i] = strings.TrimSpace(ctyp.String() + " " + c.Name)
	}
	return NewType("(" + strings.Join(members, ",") + ")" + suffix)
}

// NonIndexed returns the arguments with indexed arguments filtered out.
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Indexed returns the indexed arguments only.
func (arguments Arguments) Indexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the types of the arguments in order.
func (arguments Arguments) Types() []Type {
	types := make([]Type, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type
	}
	return types
}

// HeadSize returns the size of the head region of a block encoding the
// arguments.
func (arguments Arguments) HeadSize() int {
	size := 0
	for _, arg := range arguments {
		size += arg.Type.HeadSize()
	}
	return size
}

// isTuple returns true for non-atomic constructs, like (uint,uint) or uint[]
func (arguments Arguments) isTuple() bool {
	return len(arguments) > 1
}

// Pack performs the operation Go format -> Hexdata. The number of values must
// match the number of arguments exactly.
// Pack 执行 Go 值到 ABI 编码数据的转换。
func (arguments Arguments) Pack(args ...interface{}) ([]byte, error) {
	if len(args) != len(arguments) {
		return nil, &EncodeError{
			Index:  -1,
			Err:    ErrArgumentCount,
			Detail: fmt.Sprintf("got %d for %d", len(args), len(arguments)),
		}
	}
	values := make([]reflect.Value, len(args))
	for i, a := range args {
		values[i] = reflect.ValueOf(a)
	}
	return packBlock(arguments.Types(), values, func(i int, err error) error {
		return tagArgument(err, i, arguments[i].Name)
	})
}

// Unpack performs the operation hexdata -> Go format. Indexed arguments are
// skipped; they live in log topics rather than in the data.
//
// Empty data decodes to the zero value when exactly one value is expected,
// which is how calls to accounts without a matching return value answer.
func (arguments Arguments) Unpack(data []byte) ([]interface{}, error) {
	args := arguments.NonIndexed()
	if len(data) == 0 {
		switch len(args) {
		case 0:
			return make([]interface{}, 0), nil
		case 1:
			if !args[0].Type.supported() {
				return nil, tagArgument(decodeErr(args[0].Type, 0, ErrUnsupportedType, ""), 0, args[0].Name)
			}
			return []interface{}{args[0].Type.zeroValue()}, nil
		}
	}
	return unpackBlock(args.Types(), data, func(i int, err error) error {
		return tagArgument(err, i, args[i].Name)
	})
}

// UnpackIntoMap performs the operation hexdata -> mapping of argument name to
// argument value. Every value is stored under its position ("0", "1", ...)
// and, when the argument is named, under its name as well.
func (arguments Arguments) UnpackIntoMap(v map[string]interface{}, data []byte) error {
	if v == nil {
		return errors.New("abi: cannot unpack into a nil map")
	}
	values, err := arguments.Unpack(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments.NonIndexed() {
		v[strconv.Itoa(i)] = values[i]
		if arg.Name != "" {
			v[arg.Name] = values[i]
		}
	}
	return nil
}

// Copy performs the operation go format -> provided struct.
func (arguments Arguments) Copy(v interface{}, values []interface{}) error {
	// make sure the passed value is arguments pointer
	if reflect.Ptr != reflect.ValueOf(v).Kind() {
		return fmt.Errorf("abi: Unpack(non-pointer %T)", v)
	}
	if len(values) == 0 {
		if len(arguments.NonIndexed()) != 0 {
			return errors.New("abi: attempting to copy no values while arguments are expected")
		}
		return nil
	}
	if arguments.isTuple() {
		return arguments.copyTuple(v, values)
	}
	return arguments.copyAtomic(v, values[0])
}

// copyAtomic copies ( hexdata -> go ) a single value ( uint, bool, etc ) into the dst
func (arguments Arguments) copyAtomic(v interface{}, marshalledValues interface{}) error {
	dst := reflect.ValueOf(v).Elem()
	src := reflect.ValueOf(marshalledValues)

	if dst.Kind() == reflect.Struct && src.Kind() != reflect.Struct {
		return set(dst.Field(0), src)
	}
	return set(dst, src)
}

// copyTuple copies a batch of values from marshalledValues to v.
func (arguments Arguments) copyTuple(v interface{}, marshalledValues []interface{}) error {
	value := reflect.ValueOf(v).Elem()
	nonIndexedArgs := arguments.NonIndexed()

	switch value.Kind() {
	case reflect.Struct:
		argNames := make([]string, len(nonIndexedArgs))
		for i, arg := range nonIndexedArgs {
			argNames[i] = arg.Name
		}
		abi2struct, err := mapArgNamesToStructFields(argNames, value)
		if err != nil {
			return err
		}
		for i, arg := range nonIndexedArgs {
			field := value.FieldByName(abi2struct[arg.Name])
			if !field.IsValid() {
				return fmt.Errorf("abi: field %s can't be found in the given value", arg.Name)
			}
			if err := set(field, reflect.ValueOf(marshalledValues[i])); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if value.Len() < len(marshalledValues) {
			return fmt.Errorf("abi: insufficient number of arguments for unpack, want %d, got %d", len(arguments), value.Len())
		}
		for i := range nonIndexedArgs {
			if err := set(value.Index(i), reflect.ValueOf(marshalledValues[i])); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("abi:[2] cannot unmarshal tuple in to %v", value.Type())
	}
	return nil
}
