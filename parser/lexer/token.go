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

package lexer

import (
	"github.com/sol2clarity/sol2clarity/ast"
)

type Token struct {
	// Value carries the token's payload:
	// the source word for identifiers, numbers, and strings,
	// a Space value for whitespace, and an error for error tokens.
	Value any
	Type  TokenType
	ast.Range
}

func (t Token) Is(tokenType TokenType) bool {
	return t.Type == tokenType
}

func (t Token) IsString(tokenType TokenType, string_ string) bool {
	if t.Type != tokenType {
		return false
	}
	value, ok := t.Value.(string)
	return ok && value == string_
}
