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

package parser

import (
	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/parser/lexer"
)

// parseBlock parses a brace-delimited statement list.
func parseBlock(p *parser) *ast.Block {
	startToken := p.mustOne(lexer.TokenBraceOpen)

	var statements []ast.Statement

	for {
		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenBraceClose:
			endToken := p.current
			p.next()
			return &ast.Block{
				Statements: statements,
				Range: ast.Range{
					StartPos: startToken.StartPos,
					EndPos:   endToken.EndPos,
				},
			}

		case lexer.TokenEOF:
			panic(p.syntaxError("missing '}' at end of block"))

		default:
			statements = append(statements, parseStatement(p))
		}
	}
}

// parseStatement parses a single semicolon-terminated statement:
// a return, an event emission, an assignment, or a bare expression.
func parseStatement(p *parser) ast.Statement {
	p.skipSpaceAndComments()

	switch {
	case p.isKeyword(KeywordReturn):
		return parseReturnStatement(p)

	case p.isKeyword(KeywordEmit):
		return parseEmitStatement(p)

	default:
		return parseExpressionOrAssignment(p)
	}
}

func parseReturnStatement(p *parser) *ast.ReturnStatement {
	// current token is the `return` keyword
	startPos := p.current.StartPos
	p.next()
	p.skipSpaceAndComments()

	var expression ast.Expression
	if !p.current.Is(lexer.TokenSemicolon) {
		expression = parseExpression(p)
	}

	endToken := p.mustOne(lexer.TokenSemicolon)

	return &ast.ReturnStatement{
		Expression: expression,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endToken.EndPos,
		},
	}
}

func parseEmitStatement(p *parser) *ast.EmitStatement {
	// current token is the `emit` keyword
	startPos := p.current.StartPos
	p.next()

	eventName := p.mustIdentifier()

	p.mustOne(lexer.TokenParenOpen)

	var arguments []ast.Expression

	p.skipSpaceAndComments()
	if !p.current.Is(lexer.TokenParenClose) {
		for {
			arguments = append(arguments, parseExpression(p))

			p.skipSpaceAndComments()
			if !p.current.Is(lexer.TokenComma) {
				break
			}
			p.next()
		}
	}

	p.mustOne(lexer.TokenParenClose)
	endToken := p.mustOne(lexer.TokenSemicolon)

	return &ast.EmitStatement{
		EventName: eventName,
		Arguments: arguments,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endToken.EndPos,
		},
	}
}

func parseExpressionOrAssignment(p *parser) ast.Statement {
	expression := parseExpression(p)

	p.skipSpaceAndComments()

	if !p.current.Is(lexer.TokenEqual) {
		p.mustOne(lexer.TokenSemicolon)
		return &ast.ExpressionStatement{
			Expression: expression,
		}
	}

	// assignment: the left-hand side must be a plain variable
	// or an index access on a variable
	switch target := expression.(type) {
	case *ast.IdentifierExpression:
		break

	case *ast.IndexExpression:
		if _, ok := target.Target.(*ast.IdentifierExpression); !ok {
			panic(NewSyntaxError(
				expression.StartPosition(),
				"cannot assign to expression: %s",
				expression,
			))
		}

	default:
		panic(NewSyntaxError(
			expression.StartPosition(),
			"cannot assign to expression: %s",
			expression,
		))
	}

	p.next()

	value := parseExpression(p)

	p.mustOne(lexer.TokenSemicolon)

	return &ast.AssignmentStatement{
		Target: expression,
		Value:  value,
	}
}
