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

import "github.com/sol2clarity/sol2clarity/errors"

type Operation uint8

const (
	OperationUnknown Operation = iota
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationGreater
	OperationLessEqual
	OperationGreaterEqual
	OperationAnd
	OperationOr
)

func (s Operation) Symbol() string {
	switch s {
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationGreater:
		return ">"
	case OperationLessEqual:
		return "<="
	case OperationGreaterEqual:
		return ">="
	case OperationAnd:
		return "&&"
	case OperationOr:
		return "||"
	case OperationUnknown:
		break
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) String() string {
	return s.Symbol()
}
