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
	"math/big"
	"strconv"
	"strings"
)

type Expression interface {
	HasPosition
	fmt.Stringer
	isExpression()
}

// IntegerExpression

type IntegerExpression struct {
	Value *big.Int
	Range
}

var _ Expression = &IntegerExpression{}

func (*IntegerExpression) isExpression() {}

func (e *IntegerExpression) String() string {
	return e.Value.String()
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Expression = &BoolExpression{}

func (*BoolExpression) isExpression() {}

func (e *BoolExpression) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func (*StringExpression) isExpression() {}

func (e *StringExpression) String() string {
	return strconv.Quote(e.Value)
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) String() string {
	return e.Identifier.Identifier
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

// MemberExpression represents a member access chain, e.g. `msg.sender`.

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
}

var _ Expression = &MemberExpression{}

func (*MemberExpression) isExpression() {}

func (e *MemberExpression) String() string {
	return fmt.Sprintf("%s.%s", e.Expression, e.Identifier)
}

// Chain returns the member access chain as the ordered list of identifiers,
// e.g. ["msg", "sender"], and true if the chain consists only of identifiers.
func (e *MemberExpression) Chain() (chain []string, ok bool) {
	switch base := e.Expression.(type) {
	case *IdentifierExpression:
		chain = []string{base.Identifier.Identifier}

	case *MemberExpression:
		chain, ok = base.Chain()
		if !ok {
			return nil, false
		}

	default:
		return nil, false
	}

	return append(chain, e.Identifier.Identifier), true
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

// IndexExpression represents an index access, e.g. `balances[owner]`.
// A chained access on a nested mapping, e.g. `allowed[owner][spender]`,
// is a single IndexExpression with one index per mapping dimension.

type IndexExpression struct {
	Target  Expression
	Indices []Expression
	Range
}

var _ Expression = &IndexExpression{}

func (*IndexExpression) isExpression() {}

func (e *IndexExpression) String() string {
	var builder strings.Builder
	builder.WriteString(e.Target.String())
	for _, index := range e.Indices {
		builder.WriteString("[")
		builder.WriteString(index.String())
		builder.WriteString("]")
	}
	return builder.String()
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) String() string {
	return fmt.Sprintf(
		"(%s %s %s)",
		e.Left,
		e.Operation.Symbol(),
		e.Right,
	)
}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}
