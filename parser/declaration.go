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

func parseContractDeclaration(p *parser) *ast.ContractDeclaration {
	p.skipSpaceAndComments()

	if !p.isKeyword(KeywordContract) {
		panic(p.syntaxError(
			"expected keyword %q, got %s",
			KeywordContract,
			p.current.Type,
		))
	}
	startPos := p.current.StartPos
	p.next()

	identifier := p.mustIdentifier()

	p.mustOne(lexer.TokenBraceOpen)

	var members []ast.Declaration

	for {
		p.skipSpaceAndComments()

		switch {
		case p.current.Is(lexer.TokenBraceClose):
			endToken := p.current
			p.next()
			return &ast.ContractDeclaration{
				Identifier: identifier,
				Members:    members,
				Range: ast.Range{
					StartPos: startPos,
					EndPos:   endToken.EndPos,
				},
			}

		case p.current.Is(lexer.TokenEOF):
			panic(p.syntaxError(
				"missing '}' at end of contract declaration"))

		case p.isKeyword(KeywordFunction):
			members = append(members, parseFunctionDeclaration(p))

		case p.isKeyword(KeywordConstructor):
			members = append(members, parseConstructorDeclaration(p))

		case p.isKeyword(KeywordEvent):
			members = append(members, parseEventDeclaration(p))

		default:
			members = append(members, parseStateVariableDeclaration(p))
		}
	}
}

// parseStateVariableDeclaration parses a state variable:
// a type, optional modifiers, a name,
// and an optional initial value.
//
//	state-variable : type modifier* identifier ('=' expression)? ';'
func parseStateVariableDeclaration(p *parser) *ast.StateVariableDeclaration {
	ty := parseType(p)

	visibility := ast.VisibilityNotSpecified
	isConstant := false

	for {
		p.skipSpaceAndComments()

		var parsedVisibility ast.Visibility

		switch {
		case p.isKeyword(KeywordPublic):
			parsedVisibility = ast.VisibilityPublic

		case p.isKeyword(KeywordPrivate):
			parsedVisibility = ast.VisibilityPrivate

		case p.isKeyword(KeywordInternal):
			parsedVisibility = ast.VisibilityInternal

		case p.isKeyword(KeywordExternal):
			parsedVisibility = ast.VisibilityExternal

		case p.isKeyword(KeywordConstant):
			isConstant = true
			p.next()
			continue

		default:
			parsedVisibility = ast.VisibilityNotSpecified
		}

		if parsedVisibility == ast.VisibilityNotSpecified {
			break
		}

		if visibility != ast.VisibilityNotSpecified {
			panic(p.syntaxError("invalid second visibility modifier"))
		}
		visibility = parsedVisibility
		p.next()
	}

	identifier := p.mustIdentifier()

	var initialValue ast.Expression

	p.skipSpaceAndComments()
	if p.current.Is(lexer.TokenEqual) {
		p.next()
		initialValue = parseExpression(p)
	}

	endToken := p.mustOne(lexer.TokenSemicolon)

	return &ast.StateVariableDeclaration{
		Type:         ty,
		Identifier:   identifier,
		Visibility:   visibility,
		IsConstant:   isConstant,
		InitialValue: initialValue,
		Range: ast.Range{
			StartPos: ty.StartPosition(),
			EndPos:   endToken.EndPos,
		},
	}
}

// parseFunctionDeclaration parses a named function declaration.
//
//	function : 'function' identifier parameter-list
//	           modifier* ('returns' '(' type ')')? block
func parseFunctionDeclaration(p *parser) *ast.FunctionDeclaration {
	// current token is the `function` keyword
	startPos := p.current.StartPos
	p.next()

	identifier := p.mustIdentifier()

	parameters := parseParameterList(p)

	visibility, mutability := parseFunctionModifiers(p)

	var returnType ast.Type

	p.skipSpaceAndComments()
	if p.isKeyword(KeywordReturns) {
		p.next()
		p.mustOne(lexer.TokenParenOpen)
		returnType = parseType(p)
		p.mustOne(lexer.TokenParenClose)
	}

	body := parseBlock(p)

	return &ast.FunctionDeclaration{
		Identifier: identifier,
		Parameters: parameters,
		Visibility: visibility,
		Mutability: mutability,
		ReturnType: returnType,
		Body:       body,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   body.EndPos,
		},
	}
}

// parseConstructorDeclaration parses a constructor declaration.
// Constructors have no name and no return type.
func parseConstructorDeclaration(p *parser) *ast.FunctionDeclaration {
	// current token is the `constructor` keyword
	startPos := p.current.StartPos
	p.next()

	parameters := parseParameterList(p)

	visibility, mutability := parseFunctionModifiers(p)

	body := parseBlock(p)

	return &ast.FunctionDeclaration{
		Identifier:    ast.Identifier{Pos: startPos},
		IsConstructor: true,
		Parameters:    parameters,
		Visibility:    visibility,
		Mutability:    mutability,
		Body:          body,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   body.EndPos,
		},
	}
}

func parseParameterList(p *parser) []*ast.Parameter {
	p.mustOne(lexer.TokenParenOpen)

	var parameters []*ast.Parameter

	p.skipSpaceAndComments()
	if !p.current.Is(lexer.TokenParenClose) {
		for {
			ty := parseType(p)
			identifier := p.mustIdentifier()

			parameters = append(
				parameters,
				&ast.Parameter{
					Type:       ty,
					Identifier: identifier,
				},
			)

			p.skipSpaceAndComments()
			if !p.current.Is(lexer.TokenComma) {
				break
			}
			p.next()
		}
	}

	p.mustOne(lexer.TokenParenClose)

	return parameters
}

func parseFunctionModifiers(p *parser) (ast.Visibility, ast.Mutability) {
	visibility := ast.VisibilityNotSpecified
	mutability := ast.MutabilityNotSpecified

	for {
		p.skipSpaceAndComments()

		switch {
		case p.isKeyword(KeywordPublic):
			setVisibility(p, &visibility, ast.VisibilityPublic)

		case p.isKeyword(KeywordPrivate):
			setVisibility(p, &visibility, ast.VisibilityPrivate)

		case p.isKeyword(KeywordInternal):
			setVisibility(p, &visibility, ast.VisibilityInternal)

		case p.isKeyword(KeywordExternal):
			setVisibility(p, &visibility, ast.VisibilityExternal)

		case p.isKeyword(KeywordPure):
			setMutability(p, &mutability, ast.MutabilityPure)

		case p.isKeyword(KeywordView):
			setMutability(p, &mutability, ast.MutabilityView)

		case p.isKeyword(KeywordPayable):
			setMutability(p, &mutability, ast.MutabilityPayable)

		default:
			return visibility, mutability
		}

		p.next()
	}
}

func setVisibility(p *parser, visibility *ast.Visibility, parsed ast.Visibility) {
	if *visibility != ast.VisibilityNotSpecified {
		panic(p.syntaxError("invalid second visibility modifier"))
	}
	*visibility = parsed
}

func setMutability(p *parser, mutability *ast.Mutability, parsed ast.Mutability) {
	if *mutability != ast.MutabilityNotSpecified {
		panic(p.syntaxError("invalid second mutability modifier"))
	}
	*mutability = parsed
}

// parseEventDeclaration parses an event declaration.
//
//	event : 'event' identifier
//	        '(' (type 'indexed'? identifier (',' type 'indexed'? identifier)*)? ')' ';'
func parseEventDeclaration(p *parser) *ast.EventDeclaration {
	// current token is the `event` keyword
	startPos := p.current.StartPos
	p.next()

	identifier := p.mustIdentifier()

	p.mustOne(lexer.TokenParenOpen)

	var parameters []*ast.EventParameter

	p.skipSpaceAndComments()
	if !p.current.Is(lexer.TokenParenClose) {
		for {
			ty := parseType(p)

			indexed := false
			p.skipSpaceAndComments()
			if p.isKeyword(KeywordIndexed) {
				indexed = true
				p.next()
			}

			name := p.mustIdentifier()

			parameters = append(
				parameters,
				&ast.EventParameter{
					Type:       ty,
					Indexed:    indexed,
					Identifier: name,
				},
			)

			p.skipSpaceAndComments()
			if !p.current.Is(lexer.TokenComma) {
				break
			}
			p.next()
		}
	}

	p.mustOne(lexer.TokenParenClose)
	endToken := p.mustOne(lexer.TokenSemicolon)

	return &ast.EventDeclaration{
		Identifier: identifier,
		Parameters: parameters,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endToken.EndPos,
		},
	}
}
