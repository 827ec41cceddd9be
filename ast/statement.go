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

type Statement interface {
	HasPosition
	isStatement()
}

// AssignmentStatement represents an assignment to a plain variable
// or to an index access on a mapping variable.

type AssignmentStatement struct {
	Target Expression
	Value  Expression
}

var _ Statement = &AssignmentStatement{}

func (*AssignmentStatement) isStatement() {}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition() Position {
	return s.Value.EndPosition()
}

// ReturnStatement

type ReturnStatement struct {
	// Expression is optional
	Expression Expression
	Range
}

var _ Statement = &ReturnStatement{}

func (*ReturnStatement) isStatement() {}

// EmitStatement represents an event emission, e.g. `emit Transfer(a, b);`

type EmitStatement struct {
	EventName Identifier
	Arguments []Expression
	Range
}

var _ Statement = &EmitStatement{}

func (*EmitStatement) isStatement() {}

// ExpressionStatement represents a bare expression in statement position.

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func (*ExpressionStatement) isStatement() {}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

// Block

type Block struct {
	Statements []Statement
	Range
}
