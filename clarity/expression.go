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
	"math/big"
	"strings"

	"github.com/turbolent/prettier"
)

type Expression interface {
	fmt.Stringer
	isExpression()
	Doc() prettier.Doc
}

// UintLiteral renders as an unsigned integer literal, e.g. `u42`.

type UintLiteral struct {
	Value *big.Int
}

var _ Expression = &UintLiteral{}

func (*UintLiteral) isExpression() {}

func (e *UintLiteral) Doc() prettier.Doc {
	return prettier.Text("u" + e.Value.String())
}

func (e *UintLiteral) String() string {
	return Prettier(e)
}

// BoolLiteral

type BoolLiteral struct {
	Value bool
}

var _ Expression = &BoolLiteral{}

func (*BoolLiteral) isExpression() {}

var boolLiteralTrueDoc prettier.Doc = prettier.Text("true")
var boolLiteralFalseDoc prettier.Doc = prettier.Text("false")

func (e *BoolLiteral) Doc() prettier.Doc {
	if e.Value {
		return boolLiteralTrueDoc
	}
	return boolLiteralFalseDoc
}

func (e *BoolLiteral) String() string {
	return Prettier(e)
}

// StringLiteral renders as a double-quoted ASCII string literal.

type StringLiteral struct {
	Value string
}

var _ Expression = &StringLiteral{}

func (*StringLiteral) isExpression() {}

func (e *StringLiteral) Doc() prettier.Doc {
	return prettier.Text(QuoteString(e.Value))
}

func (e *StringLiteral) String() string {
	return Prettier(e)
}

// QuoteString quotes the given string in Clarity syntax:
// double quotes, with backslash escapes for quotes and backslashes.
func QuoteString(value string) string {
	var builder strings.Builder
	builder.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		default:
			builder.WriteRune(r)
		}
	}
	builder.WriteByte('"')
	return builder.String()
}

// Reference is a plain name in expression position:
// a parameter, a constant, or a built-in like `tx-sender`.

type Reference struct {
	Name string
}

var _ Expression = &Reference{}

func (*Reference) isExpression() {}

func (e *Reference) Doc() prettier.Doc {
	return prettier.Text(e.Name)
}

func (e *Reference) String() string {
	return Prettier(e)
}

// Application is a function application, e.g. `(+ a b)` or `(not x)`.

type Application struct {
	Function  string
	Arguments []Expression
}

var _ Expression = &Application{}

func (*Application) isExpression() {}

func (e *Application) Doc() prettier.Doc {
	argumentDocs := make([]prettier.Doc, 0, len(e.Arguments))
	for _, argument := range e.Arguments {
		argumentDocs = append(argumentDocs, argument.Doc())
	}
	return applicationDoc(e.Function, argumentDocs...)
}

func (e *Application) String() string {
	return Prettier(e)
}

// applicationDoc renders `(function arg arg ...)` on a single line.
// Expressions never wrap: line breaks are introduced only by
// begin sequences and declarations, which keeps output independent
// of expression size.
func applicationDoc(function string, arguments ...prettier.Doc) prettier.Doc {
	result := prettier.Concat{
		prettier.Text("("),
		prettier.Text(function),
	}
	for _, argument := range arguments {
		result = append(result, prettier.Space, argument)
	}
	return append(result, prettier.Text(")"))
}

// VarGet reads a data-var: `(var-get name)`.

type VarGet struct {
	Name string
}

var _ Expression = &VarGet{}

func (*VarGet) isExpression() {}

func (e *VarGet) Doc() prettier.Doc {
	return applicationDoc("var-get", prettier.Text(e.Name))
}

func (e *VarGet) String() string {
	return Prettier(e)
}

// VarSet writes a data-var: `(var-set name value)`.

type VarSet struct {
	Name  string
	Value Expression
}

var _ Expression = &VarSet{}

func (*VarSet) isExpression() {}

func (e *VarSet) Doc() prettier.Doc {
	return applicationDoc(
		"var-set",
		prettier.Text(e.Name),
		e.Value.Doc(),
	)
}

func (e *VarSet) String() string {
	return Prettier(e)
}

// MapGet reads a map entry: `(map-get? name key)`.
// The key is a bare scalar for single-key maps
// and a tuple expression for flattened nested maps.

type MapGet struct {
	Map string
	Key Expression
}

var _ Expression = &MapGet{}

func (*MapGet) isExpression() {}

func (e *MapGet) Doc() prettier.Doc {
	return applicationDoc(
		"map-get?",
		prettier.Text(e.Map),
		e.Key.Doc(),
	)
}

func (e *MapGet) String() string {
	return Prettier(e)
}

// MapSet writes a map entry: `(map-set name key value)`.

type MapSet struct {
	Map   string
	Key   Expression
	Value Expression
}

var _ Expression = &MapSet{}

func (*MapSet) isExpression() {}

func (e *MapSet) Doc() prettier.Doc {
	return applicationDoc(
		"map-set",
		prettier.Text(e.Map),
		e.Key.Doc(),
		e.Value.Doc(),
	)
}

func (e *MapSet) String() string {
	return Prettier(e)
}

// TupleField

type TupleField struct {
	Name  string
	Value Expression
}

// TupleExpression renders as a tuple literal, e.g. `{owner: who, id: u1}`.

type TupleExpression struct {
	Fields []TupleField
}

var _ Expression = &TupleExpression{}

func (*TupleExpression) isExpression() {}

func (e *TupleExpression) Doc() prettier.Doc {
	result := prettier.Concat{
		prettier.Text("{"),
	}
	for i, field := range e.Fields {
		if i > 0 {
			result = append(result, prettier.Text(","), prettier.Space)
		}
		result = append(
			result,
			prettier.Text(field.Name),
			prettier.Text(":"),
			prettier.Space,
			field.Value.Doc(),
		)
	}
	return append(result, prettier.Text("}"))
}

func (e *TupleExpression) String() string {
	return Prettier(e)
}

// PrintExpression renders as `(print value)`.
// Event emissions lower to printing a tuple
// tagging the event name and its arguments.

type PrintExpression struct {
	Value Expression
}

var _ Expression = &PrintExpression{}

func (*PrintExpression) isExpression() {}

func (e *PrintExpression) Doc() prettier.Doc {
	return applicationDoc("print", e.Value.Doc())
}

func (e *PrintExpression) String() string {
	return Prettier(e)
}

// Ok wraps a value in the success response type: `(ok value)`.

type Ok struct {
	Value Expression
}

var _ Expression = &Ok{}

func (*Ok) isExpression() {}

func (e *Ok) Doc() prettier.Doc {
	return applicationDoc("ok", e.Value.Doc())
}

func (e *Ok) String() string {
	return Prettier(e)
}

// Begin sequences expressions, one per line:
//
//	(begin
//	  first
//	  second)

type Begin struct {
	Expressions []Expression
}

var _ Expression = &Begin{}

func (*Begin) isExpression() {}

func (e *Begin) Doc() prettier.Doc {
	inner := prettier.Concat{}
	for _, expression := range e.Expressions {
		inner = append(inner, prettier.HardLine{}, expression.Doc())
	}
	return prettier.Concat{
		prettier.Text("(begin"),
		prettier.Indent{
			Doc: inner,
		},
		prettier.Text(")"),
	}
}

func (e *Begin) String() string {
	return Prettier(e)
}
