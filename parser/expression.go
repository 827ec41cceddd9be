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
	"math/big"
	"strconv"

	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/parser/lexer"
)

// parseExpression parses a binary expression.
//
//	expression : term (operator term)*
//
// All binary operators share a single level:
// there is no precedence between e.g. '+' and '*',
// and chains associate to the left, so `a + b * c`
// parses as `(a + b) * c`.
// Parentheses are the only way to group differently.
func parseExpression(p *parser) ast.Expression {
	expression := parseTerm(p)

	for {
		p.skipSpaceAndComments()

		operation, ok := binaryOperation(p.current.Type)
		if !ok {
			return expression
		}
		p.next()

		right := parseTerm(p)

		expression = &ast.BinaryExpression{
			Operation: operation,
			Left:      expression,
			Right:     right,
		}
	}
}

func binaryOperation(tokenType lexer.TokenType) (ast.Operation, bool) {
	switch tokenType {
	case lexer.TokenPlus:
		return ast.OperationPlus, true
	case lexer.TokenMinus:
		return ast.OperationMinus, true
	case lexer.TokenStar:
		return ast.OperationMul, true
	case lexer.TokenSlash:
		return ast.OperationDiv, true
	case lexer.TokenPercent:
		return ast.OperationMod, true
	case lexer.TokenEqualEqual:
		return ast.OperationEqual, true
	case lexer.TokenNotEqual:
		return ast.OperationNotEqual, true
	case lexer.TokenLess:
		return ast.OperationLess, true
	case lexer.TokenLessEqual:
		return ast.OperationLessEqual, true
	case lexer.TokenGreater:
		return ast.OperationGreater, true
	case lexer.TokenGreaterEqual:
		return ast.OperationGreaterEqual, true
	case lexer.TokenAmpersandAmpersand:
		return ast.OperationAnd, true
	case lexer.TokenVerticalBarVerticalBar:
		return ast.OperationOr, true
	default:
		return 0, false
	}
}

// parseTerm parses a single operand:
// a parenthesized expression, a literal, or an access
// (identifier with optional member and index suffixes).
func parseTerm(p *parser) ast.Expression {
	p.skipSpaceAndComments()

	switch p.current.Type {
	case lexer.TokenParenOpen:
		p.next()
		expression := parseExpression(p)
		p.mustOne(lexer.TokenParenClose)
		return expression

	case lexer.TokenNumber:
		return parseIntegerExpression(p)

	case lexer.TokenString:
		return parseStringExpression(p)

	case lexer.TokenIdentifier:
		switch {
		case p.isKeyword(KeywordTrue),
			p.isKeyword(KeywordFalse):

			return parseBoolExpression(p)

		default:
			return parseAccessExpression(p)
		}

	default:
		panic(p.syntaxError(
			"unexpected token in expression: %s",
			p.current.Type,
		))
	}
}

func parseIntegerExpression(p *parser) *ast.IntegerExpression {
	token := p.current
	literal, _ := token.Value.(string)
	p.next()

	value, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		panic(NewSyntaxError(
			token.StartPos,
			"invalid integer literal: %s",
			literal,
		))
	}

	return &ast.IntegerExpression{
		Value: value,
		Range: token.Range,
	}
}

func parseStringExpression(p *parser) *ast.StringExpression {
	token := p.current
	literal, _ := token.Value.(string)
	p.next()

	value, err := strconv.Unquote(literal)
	if err != nil {
		panic(NewSyntaxError(
			token.StartPos,
			"invalid string literal: %s",
			literal,
		))
	}

	return &ast.StringExpression{
		Value: value,
		Range: token.Range,
	}
}

func parseBoolExpression(p *parser) *ast.BoolExpression {
	token := p.current
	p.next()

	return &ast.BoolExpression{
		Value: token.IsString(lexer.TokenIdentifier, KeywordTrue),
		Range: token.Range,
	}
}

// parseAccessExpression parses an identifier
// with any number of member accesses (`a.b.c`)
// and index accesses (`a[k1][k2]`) as suffixes.
// Consecutive index accesses are collected into
// a single index expression, one index per mapping dimension.
func parseAccessExpression(p *parser) ast.Expression {
	identifier := tokenToIdentifier(p.current)
	p.next()

	var expression ast.Expression = &ast.IdentifierExpression{
		Identifier: identifier,
	}

	for {
		p.skipSpaceAndComments()

		switch p.current.Type {
		case lexer.TokenDot:
			p.next()
			member := p.mustIdentifier()
			expression = &ast.MemberExpression{
				Expression: expression,
				Identifier: member,
			}

		case lexer.TokenBracketOpen:
			var indices []ast.Expression
			var endPos ast.Position

			for p.current.Is(lexer.TokenBracketOpen) {
				p.next()
				indices = append(indices, parseExpression(p))
				endToken := p.mustOne(lexer.TokenBracketClose)
				endPos = endToken.EndPos

				p.skipSpaceAndComments()
			}

			expression = &ast.IndexExpression{
				Target:  expression,
				Indices: indices,
				Range: ast.Range{
					StartPos: expression.StartPosition(),
					EndPos:   endPos,
				},
			}

		default:
			return expression
		}
	}
}
