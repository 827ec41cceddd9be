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

package clarity

import (
	"fmt"

	"github.com/turbolent/prettier"

	"github.com/sol2clarity/sol2clarity/errors"
)

// Declaration is a top-level form of a Clarity contract.
type Declaration interface {
	fmt.Stringer
	isDeclaration()
	Doc() prettier.Doc
	DeclarationName() string
}

// Constant renders as `(define-constant NAME value)`.

type Constant struct {
	Name  string
	Value Expression
}

var _ Declaration = &Constant{}

func (*Constant) isDeclaration() {}

func (d *Constant) DeclarationName() string {
	return d.Name
}

func (d *Constant) Doc() prettier.Doc {
	return applicationDoc(
		"define-constant",
		prettier.Text(d.Name),
		d.Value.Doc(),
	)
}

func (d *Constant) String() string {
	return Prettier(d)
}

// DataVar renders as `(define-data-var name type initial)`.

type DataVar struct {
	Name    string
	Type    Type
	Initial Expression
	// Public records whether the source variable was public,
	// i.e. whether a getter is synthesized for it.
	Public bool
}

var _ Declaration = &DataVar{}

func (*DataVar) isDeclaration() {}

func (d *DataVar) DeclarationName() string {
	return d.Name
}

func (d *DataVar) Doc() prettier.Doc {
	return applicationDoc(
		"define-data-var",
		prettier.Text(d.Name),
		d.Type.Doc(),
		d.Initial.Doc(),
	)
}

func (d *DataVar) String() string {
	return Prettier(d)
}

// Map renders as `(define-map name key-type value-type)`.
// A single key field declares its bare type as the key type,
// multiple key fields declare a tuple type,
// e.g. `{owner: principal, id: uint}`.

type Map struct {
	Name      string
	KeyFields []KeyField
	ValueType Type
	Public    bool
}

var _ Declaration = &Map{}

func (*Map) isDeclaration() {}

func (d *Map) DeclarationName() string {
	return d.Name
}

// KeyType returns the map's declared key type:
// the bare field type for a single key field,
// a tuple type for multiple.
func (d *Map) KeyType() TypeExpr {
	switch len(d.KeyFields) {
	case 0:
		panic(errors.NewUnreachableError())

	case 1:
		return d.KeyFields[0].Type

	default:
		return &TupleType{
			Fields: d.KeyFields,
		}
	}
}

func (d *Map) Doc() prettier.Doc {
	return applicationDoc(
		"define-map",
		prettier.Text(d.Name),
		d.KeyType().Doc(),
		d.ValueType.Doc(),
	)
}

func (d *Map) String() string {
	return Prettier(d)
}

// Event declarations have no Clarity form of their own:
// they only describe the tuples printed by emissions,
// and surface in the output as a comment.

type EventField struct {
	Name    string
	Type    Type
	Indexed bool
}

type Event struct {
	Name   string
	Fields []EventField
}

var _ Declaration = &Event{}

func (*Event) isDeclaration() {}

func (d *Event) DeclarationName() string {
	return d.Name
}

func (d *Event) Doc() prettier.Doc {
	return prettier.Concat{}
}

func (d *Event) String() string {
	return Prettier(d)
}

// FunctionKind

type FunctionKind uint8

const (
	FunctionKindUnknown FunctionKind = iota
	FunctionKindPublic
	FunctionKindPrivate
	FunctionKindReadOnly
)

func (k FunctionKind) DefineKeyword() string {
	switch k {
	case FunctionKindPublic:
		return "define-public"
	case FunctionKindPrivate:
		return "define-private"
	case FunctionKindReadOnly:
		return "define-read-only"
	case FunctionKindUnknown:
		break
	}

	panic(errors.NewUnreachableError())
}

// Parameter

type Parameter struct {
	Name string
	Type TypeExpr
}

// Function renders as
//
//	(define-public (name (param type) ...)
//	  body)
//
// The body is always a single expression:
// statement sequences have been folded into a begin expression
// by the converter.

type Function struct {
	Name       string
	Kind       FunctionKind
	Parameters []*Parameter
	Body       Expression
}

var _ Declaration = &Function{}

func (*Function) isDeclaration() {}

func (d *Function) DeclarationName() string {
	return d.Name
}

func (d *Function) Doc() prettier.Doc {
	signature := prettier.Concat{
		prettier.Text("("),
		prettier.Text(d.Name),
	}
	for _, parameter := range d.Parameters {
		signature = append(
			signature,
			prettier.Space,
			prettier.Text("("),
			prettier.Text(parameter.Name),
			prettier.Space,
			parameter.Type.Doc(),
			prettier.Text(")"),
		)
	}
	signature = append(signature, prettier.Text(")"))

	return prettier.Concat{
		prettier.Text("("),
		prettier.Text(d.Kind.DefineKeyword()),
		prettier.Space,
		signature,
		prettier.Indent{
			Doc: prettier.Concat{
				prettier.HardLine{},
				d.Body.Doc(),
			},
		},
		prettier.Text(")"),
	}
}

func (d *Function) String() string {
	return Prettier(d)
}

// Contract

type Contract struct {
	Name string
	// Declarations are ordered the way the source declared them,
	// with synthesized getters directly after their variable.
	Declarations []Declaration
}
