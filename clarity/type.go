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

// Package clarity contains the target-language AST:
// the declarations and expressions of a Clarity contract.
// Nodes render themselves to source text through prettier documents,
// so identical trees always produce byte-identical output.
package clarity

import (
	"fmt"
	"math/big"

	"github.com/turbolent/prettier"

	"github.com/sol2clarity/sol2clarity/errors"
)

// TypeExpr is a type in annotation position:
// either a basic type or a key tuple type.
type TypeExpr interface {
	fmt.Stringer
	isTypeExpr()
	Doc() prettier.Doc
}

// Type is a basic Clarity type.
type Type uint8

var _ TypeExpr = TypeUnknown

func (Type) isTypeExpr() {}

const (
	TypeUnknown Type = iota
	TypeUint
	TypeBool
	TypePrincipal
	TypeStringASCII
)

func (t Type) String() string {
	switch t {
	case TypeUint:
		return "uint"
	case TypeBool:
		return "bool"
	case TypePrincipal:
		return "principal"
	case TypeStringASCII:
		return "string-ascii"
	case TypeUnknown:
		break
	}

	panic(errors.NewUnreachableError())
}

func (t Type) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

// DefaultValue returns the value a data-var of this type
// is initialized with when the source declares no initial value.
// Principals default to tx-sender, i.e. the deployer at deploy time.
func (t Type) DefaultValue() Expression {
	switch t {
	case TypeUint:
		return &UintLiteral{Value: new(big.Int)}
	case TypeBool:
		return &BoolLiteral{Value: false}
	case TypePrincipal:
		return &Reference{Name: "tx-sender"}
	case TypeStringASCII:
		return &StringLiteral{Value: ""}
	case TypeUnknown:
		break
	}

	panic(errors.NewUnreachableError())
}

// KeyField is one field of a map's key.
// A map flattened from nesting depth N has exactly N key fields.
type KeyField struct {
	Name string
	Type Type
}

// TupleType renders as a tuple type annotation,
// e.g. `{owner: principal, id: uint}`.
type TupleType struct {
	Fields []KeyField
}

var _ TypeExpr = &TupleType{}

func (*TupleType) isTypeExpr() {}

func (t *TupleType) Doc() prettier.Doc {
	result := prettier.Concat{
		prettier.Text("{"),
	}
	for i, field := range t.Fields {
		if i > 0 {
			result = append(result, prettier.Text(","), prettier.Space)
		}
		result = append(
			result,
			prettier.Text(field.Name),
			prettier.Text(":"),
			prettier.Space,
			field.Type.Doc(),
		)
	}
	return append(result, prettier.Text("}"))
}

func (t *TupleType) String() string {
	return Prettier(t)
}
