/*
 * Sol2Clarity - A Solidity to Clarity smart contract transpiler
 *
 * Copyright Sol2Clarity Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"fmt"
	"strings"

	"github.com/sol2clarity/sol2clarity/errors"
)

// Type is either a basic (nominal) type or a mapping type.
// Mapping value types may recursively be mapping types again,
// so the shape is a strictly tree-shaped tagged variant.
type Type interface {
	HasPosition
	fmt.Stringer
	isType()
}

// NominalType represents a named basic type, e.g. `uint256` or `address`.
// The parser performs no validation of the name;
// unknown names are rejected during conversion.
type NominalType struct {
	Identifier Identifier
}

var _ Type = &NominalType{}

func (*NominalType) isType() {}

func (t *NominalType) String() string {
	return t.Identifier.Identifier
}

func (t *NominalType) StartPosition() Position {
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	return t.Identifier.EndPosition()
}

// MappingType represents a key-value store type,
// e.g. `mapping(address => uint256)`.
// The key type is always basic; the value type may be another mapping,
// with unbounded nesting depth.
type MappingType struct {
	KeyType   *NominalType
	ValueType Type
	Range
}

var _ Type = &MappingType{}

func (*MappingType) isType() {}

func (t *MappingType) String() string {
	var builder strings.Builder
	builder.WriteString("mapping(")
	builder.WriteString(t.KeyType.String())
	builder.WriteString(" => ")
	builder.WriteString(t.ValueType.String())
	builder.WriteString(")")
	return builder.String()
}

// KeyChain resolves the nested-mapping chain into the ordered list of
// key types along the chain, and the terminal non-mapping value type.
// A chain of nesting depth N yields exactly N key types.
func (t *MappingType) KeyChain() (keyTypes []*NominalType, valueType *NominalType) {
	current := t
	for {
		keyTypes = append(keyTypes, current.KeyType)

		switch value := current.ValueType.(type) {
		case *MappingType:
			current = value

		case *NominalType:
			return keyTypes, value

		default:
			panic(errors.NewUnreachableError())
		}
	}
}
