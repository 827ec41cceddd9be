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

// Package parser implements a recursive-descent parser
// for the supported Solidity subset.
// It consumes the token stream produced by the lexer sub-package
// and produces a source AST (see the ast package).
package parser

import (
	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/errors"
	"github.com/sol2clarity/sol2clarity/parser/lexer"
)

type parser struct {
	// code is the full source, kept for error reporting
	code string
	// tokens is the stream of tokens produced by the lexer
	tokens chan lexer.Token
	// current is the current token being considered
	current lexer.Token
	// errors are the parse errors encountered so far
	errors []error
}

// ParseProgram parses all contract declarations in the given code.
//
// All errors are user errors (syntax errors), collected into Error.
// Internal errors escape as panics.
func ParseProgram(code string) (program *ast.Program, err error) {
	tokens := lexer.Lex(code)

	// Drain the token stream so the lexer goroutine always terminates,
	// even when parsing stops at the first syntax error.
	defer func() {
		for range tokens { //nolint:revive
		}
	}()

	p := &parser{
		code:   code,
		tokens: tokens,
	}

	defer func() {
		if r := recover(); r != nil {
			switch r := r.(type) {
			case ParseError:
				p.report(r)

			case errors.InternalError:
				panic(r)

			case error:
				panic(errors.UnexpectedError{Err: r})

			default:
				panic(errors.NewUnexpectedError("parser: %v", r))
			}
		}

		if len(p.errors) > 0 {
			program = nil
			err = Error{
				Code:   p.code,
				Errors: p.errors,
			}
		}
	}()

	p.next()

	program = parseProgram(p)

	return program, nil
}

func (p *parser) report(err error) {
	p.errors = append(p.errors, err)
}

// next reads the next token from the lexer.
// The lexer closes the channel after emitting the EOF token,
// so reads after the end keep producing EOF.
func (p *parser) next() {
	token, ok := <-p.tokens
	if !ok {
		p.current = lexer.Token{
			Type: lexer.TokenEOF,
			Range: ast.Range{
				StartPos: p.current.EndPos,
				EndPos:   p.current.EndPos,
			},
		}
		return
	}

	if token.Is(lexer.TokenError) {
		// The lexer only emits one error token, then EOF.
		err, _ := token.Value.(error)
		panic(NewSyntaxError(token.StartPos, "%s", err))
	}

	p.current = token
}

// skipSpaceAndComments skips whitespace and comment tokens.
func (p *parser) skipSpaceAndComments() {
	for {
		switch p.current.Type {
		case lexer.TokenSpace,
			lexer.TokenLineComment,
			lexer.TokenBlockComment:

			p.next()

		default:
			return
		}
	}
}

// mustOne requires the current token to be of the given type,
// and consumes it. Space and comments before it are skipped.
func (p *parser) mustOne(tokenType lexer.TokenType) lexer.Token {
	p.skipSpaceAndComments()
	token := p.current
	if !token.Is(tokenType) {
		panic(p.syntaxError("expected token %s, got %s", tokenType, token.Type))
	}
	p.next()
	return token
}

// mustIdentifier requires the current token to be an identifier,
// consumes it, and returns it as an ast.Identifier.
func (p *parser) mustIdentifier() ast.Identifier {
	token := p.mustOne(lexer.TokenIdentifier)
	return tokenToIdentifier(token)
}

func tokenToIdentifier(token lexer.Token) ast.Identifier {
	identifier, _ := token.Value.(string)
	return ast.Identifier{
		Identifier: identifier,
		Pos:        token.StartPos,
	}
}

func (p *parser) syntaxError(message string, params ...any) *SyntaxError {
	return NewSyntaxError(p.current.StartPos, message, params...)
}

// isKeyword checks whether the current token is the given keyword identifier.
func (p *parser) isKeyword(keyword string) bool {
	return p.current.IsString(lexer.TokenIdentifier, keyword)
}

func parseProgram(p *parser) *ast.Program {
	var contracts []*ast.ContractDeclaration

	for {
		p.skipSpaceAndComments()

		if p.current.Is(lexer.TokenEOF) {
			break
		}

		contracts = append(
			contracts,
			parseContractDeclaration(p),
		)
	}

	if len(contracts) == 0 {
		panic(p.syntaxError("expected at least one contract declaration"))
	}

	return &ast.Program{
		Contracts: contracts,
	}
}
