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

// Package lexer tokenizes source contract code.
// The lexer runs in its own goroutine and sends tokens over a channel,
// so token production and consumption are pipelined.
package lexer

import (
	"unicode/utf8"

	"github.com/sol2clarity/sol2clarity/ast"
)

// Space is the value of a TokenSpace token.
type Space struct {
	String          string
	ContainsNewline bool
}

type lexer struct {
	// input is the full source code
	input string
	// tokens is the channel the lexed tokens are sent on
	tokens chan Token
	// startOffset is the byte offset of the current word's first byte
	startOffset int
	// endOffset is the byte offset after the last consumed rune
	endOffset int
	// prevEndOffset is the end offset before the last call to next
	prevEndOffset int
	// startPos is the position of the current word's first rune
	startPos ast.Position
	// pos is the position of the next rune to be consumed
	pos ast.Position
	// prevPos is the value of pos before the last call to next
	prevPos ast.Position
}

// Lex tokenizes the given input in a new goroutine
// and returns the channel the tokens are sent on.
// The channel is closed after the final TokenEOF token.
func Lex(input string) chan Token {
	startPos := ast.Position{Offset: 0, Line: 1, Column: 0}
	l := &lexer{
		input:    input,
		tokens:   make(chan Token),
		startPos: startPos,
		pos:      startPos,
	}
	go l.run(rootState)
	return l.tokens
}

// run executes the stateFn state machine.
// The channel is closed even when a state function panics,
// so consumers do not block forever.
func (l *lexer) run(state stateFn) {
	defer close(l.tokens)

	for state != nil {
		state = state(l)
	}
}

// next consumes and returns the next rune, or EOF at the end of the input.
// At EOF no position state changes, so backupOne stays valid.
func (l *lexer) next() rune {
	l.prevEndOffset = l.endOffset
	l.prevPos = l.pos

	if l.endOffset >= len(l.input) {
		return EOF
	}

	r, w := utf8.DecodeRuneInString(l.input[l.endOffset:])
	l.endOffset += w
	l.pos.Offset += w
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	} else {
		l.pos.Column++
	}
	return r
}

// backupOne un-consumes the last consumed rune.
// Only valid once per call to next.
func (l *lexer) backupOne() {
	l.endOffset = l.prevEndOffset
	l.pos = l.prevPos
}

// acceptOne consumes the next rune if it is the given rune
// and reports whether it did.
func (l *lexer) acceptOne(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backupOne()
	return false
}

// word returns the text of the current word,
// i.e. everything consumed since the last emit.
func (l *lexer) word() string {
	return l.input[l.startOffset:l.endOffset]
}

// tokenRange computes the inclusive source range of the current word.
// An empty word (e.g. the EOF token) collapses to the start position.
func (l *lexer) tokenRange() ast.Range {
	startPos := l.startPos
	endPos := startPos

	cur := startPos
	for _, r := range l.word() {
		endPos = cur
		cur.Offset += utf8.RuneLen(r)
		if r == '\n' {
			cur.Line++
			cur.Column = 0
		} else {
			cur.Column++
		}
	}

	return ast.Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

// emit sends the current word as a token of the given type,
// then starts a new word.
func (l *lexer) emit(tokenType TokenType, value any) {
	l.tokens <- Token{
		Type:  tokenType,
		Value: value,
		Range: l.tokenRange(),
	}

	l.startOffset = l.endOffset
	l.startPos = l.pos
}

func (l *lexer) emitType(tokenType TokenType) {
	l.emit(tokenType, nil)
}

func (l *lexer) emitValue(tokenType TokenType) {
	l.emit(tokenType, l.word())
}

func (l *lexer) emitError(err error) {
	l.emit(TokenError, err)
}

func (l *lexer) scanSpace() (containsNewline bool) {
	for {
		switch l.next() {
		case '\n':
			containsNewline = true
		case ' ', '\t', '\r':
			// continue
		default:
			l.backupOne()
			return
		}
	}
}

func (l *lexer) scanNumber() {
	for {
		r := l.next()
		if r < '0' || r > '9' {
			l.backupOne()
			return
		}
	}
}

func (l *lexer) scanIdentifier() {
	for {
		r := l.next()
		if !isIdentifierRune(r) {
			l.backupOne()
			return
		}
	}
}

// scanString scans the remainder of a string literal,
// after the opening quote has already been consumed.
// Backslash escapes the following rune.
// Reports whether the closing quote was found
// before the end of the line or input.
func (l *lexer) scanString() bool {
	for {
		switch l.next() {
		case '"':
			return true
		case '\\':
			if l.next() == EOF {
				l.backupOne()
				return false
			}
		case '\n', EOF:
			l.backupOne()
			return false
		}
	}
}

// scanLineComment scans to the end of the line,
// leaving the newline unconsumed.
func (l *lexer) scanLineComment() {
	for {
		switch l.next() {
		case '\n', EOF:
			l.backupOne()
			return
		}
	}
}

// scanBlockComment scans until the closing `*/`.
// Reports whether the comment was terminated before the end of the input.
func (l *lexer) scanBlockComment() bool {
	for {
		switch l.next() {
		case '*':
			if l.acceptOne('/') {
				return true
			}
		case EOF:
			l.backupOne()
			return false
		}
	}
}

func isIdentifierStartRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func isIdentifierRune(r rune) bool {
	return isIdentifierStartRune(r) ||
		(r >= '0' && r <= '9')
}
