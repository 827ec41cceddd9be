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
	"fmt"
)

// stateFn is a lexer state. It scans one token (or more)
// and returns the next state, or nil to stop the lexer.
type stateFn func(*lexer) stateFn

// rootState is the main state: it dispatches on the next rune
// and returns itself until the end of the input is reached.
func rootState(l *lexer) stateFn {
	for {
		r := l.next()
		switch r {
		case EOF:
			l.emitType(TokenEOF)
			return nil
		case ' ', '\t', '\r', '\n':
			l.backupOne()
			return spaceState
		case '+':
			l.emitType(TokenPlus)
		case '-':
			l.emitType(TokenMinus)
		case '*':
			l.emitType(TokenStar)
		case '/':
			switch {
			case l.acceptOne('/'):
				l.scanLineComment()
				l.emitValue(TokenLineComment)
			case l.acceptOne('*'):
				if !l.scanBlockComment() {
					return l.errorState("missing end of block comment: '*/'")
				}
				l.emitValue(TokenBlockComment)
			default:
				l.emitType(TokenSlash)
			}
		case '%':
			l.emitType(TokenPercent)
		case '(':
			l.emitType(TokenParenOpen)
		case ')':
			l.emitType(TokenParenClose)
		case '{':
			l.emitType(TokenBraceOpen)
		case '}':
			l.emitType(TokenBraceClose)
		case '[':
			l.emitType(TokenBracketOpen)
		case ']':
			l.emitType(TokenBracketClose)
		case ',':
			l.emitType(TokenComma)
		case ';':
			l.emitType(TokenSemicolon)
		case '.':
			l.emitType(TokenDot)
		case '<':
			if l.acceptOne('=') {
				l.emitType(TokenLessEqual)
			} else {
				l.emitType(TokenLess)
			}
		case '>':
			if l.acceptOne('=') {
				l.emitType(TokenGreaterEqual)
			} else {
				l.emitType(TokenGreater)
			}
		case '=':
			switch {
			case l.acceptOne('='):
				l.emitType(TokenEqualEqual)
			case l.acceptOne('>'):
				l.emitType(TokenDoubleArrow)
			default:
				l.emitType(TokenEqual)
			}
		case '!':
			if l.acceptOne('=') {
				l.emitType(TokenNotEqual)
			} else {
				return l.errorState("expected '=' after '!'")
			}
		case '&':
			if l.acceptOne('&') {
				l.emitType(TokenAmpersandAmpersand)
			} else {
				return l.errorState("expected '&' after '&'")
			}
		case '|':
			if l.acceptOne('|') {
				l.emitType(TokenVerticalBarVerticalBar)
			} else {
				return l.errorState("expected '|' after '|'")
			}
		case '"':
			if !l.scanString() {
				return l.errorState("missing end of string literal: '\"'")
			}
			l.emitValue(TokenString)
		default:
			switch {
			case r >= '0' && r <= '9':
				l.scanNumber()
				l.emitValue(TokenNumber)
			case isIdentifierStartRune(r):
				l.scanIdentifier()
				l.emitValue(TokenIdentifier)
			default:
				return l.errorState(fmt.Sprintf("unrecognized character: %#U", r))
			}
		}
	}
}

func spaceState(l *lexer) stateFn {
	containsNewline := l.scanSpace()
	l.emit(
		TokenSpace,
		Space{
			String:          l.word(),
			ContainsNewline: containsNewline,
		},
	)
	return rootState
}

// errorState emits an error token followed by an EOF token, then stops.
func (l *lexer) errorState(message string) stateFn {
	l.emitError(fmt.Errorf("%s", message))
	l.emitType(TokenEOF)
	return nil
}
