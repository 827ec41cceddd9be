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

// Package ast contains all AST nodes for the source contract language.
// All AST nodes implement the HasPosition interface,
// so have position information.
// Trees are built once by the parser and never mutated afterwards.
package ast

// Program is the root of the source AST:
// all contracts declared in one input, in declaration order.
type Program struct {
	Contracts []*ContractDeclaration
}

func (p *Program) StartPosition() Position {
	if len(p.Contracts) == 0 {
		return Position{}
	}
	return p.Contracts[0].StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.Contracts)
	if count == 0 {
		return Position{}
	}
	return p.Contracts[count-1].EndPosition()
}
