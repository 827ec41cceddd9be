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
	"github.com/sol2clarity/sol2clarity/errors"
)

type TokenType uint8

const EOF rune = -1

const (
	TokenError TokenType = iota
	TokenEOF
	TokenSpace
	TokenNumber
	TokenIdentifier
	TokenString
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenBracketOpen
	TokenBracketClose
	TokenComma
	TokenSemicolon
	TokenDot
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual
	TokenEqual
	TokenEqualEqual
	TokenNotEqual
	TokenDoubleArrow
	TokenAmpersandAmpersand
	TokenVerticalBarVerticalBar
	TokenLineComment
	TokenBlockComment
)

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "error"
	case TokenEOF:
		return "EOF"
	case TokenSpace:
		return "space"
	case TokenNumber:
		return "number"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenPercent:
		return "'%'"
	case TokenParenOpen:
		return "'('"
	case TokenParenClose:
		return "')'"
	case TokenBraceOpen:
		return "'{'"
	case TokenBraceClose:
		return "'}'"
	case TokenBracketOpen:
		return "'['"
	case TokenBracketClose:
		return "']'"
	case TokenComma:
		return "','"
	case TokenSemicolon:
		return "';'"
	case TokenDot:
		return "'.'"
	case TokenLess:
		return "'<'"
	case TokenLessEqual:
		return "'<='"
	case TokenGreater:
		return "'>'"
	case TokenGreaterEqual:
		return "'>='"
	case TokenEqual:
		return "'='"
	case TokenEqualEqual:
		return "'=='"
	case TokenNotEqual:
		return "'!='"
	case TokenDoubleArrow:
		return "'=>'"
	case TokenAmpersandAmpersand:
		return "'&&'"
	case TokenVerticalBarVerticalBar:
		return "'||'"
	case TokenLineComment:
		return "line comment"
	case TokenBlockComment:
		return "block comment"
	default:
		panic(errors.NewUnreachableError())
	}
}
