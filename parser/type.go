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

// parseType parses a basic type name or a mapping type.
//
//	type       : identifier | mapping
//	mapping    : 'mapping' '(' identifier '=>' type ')'
//
// Mapping keys are restricted to basic types by the grammar,
// matching the source language.
func parseType(p *parser) ast.Type {
	p.skipSpaceAndComments()

	if p.isKeyword(KeywordMapping) {
		return parseMappingType(p)
	}

	return parseNominalType(p)
}

func parseNominalType(p *parser) *ast.NominalType {
	identifier := p.mustIdentifier()
	return &ast.NominalType{
		Identifier: identifier,
	}
}

func parseMappingType(p *parser) *ast.MappingType {
	// current token is the `mapping` keyword
	startPos := p.current.StartPos
	p.next()

	p.mustOne(lexer.TokenParenOpen)

	keyType := parseNominalType(p)

	p.mustOne(lexer.TokenDoubleArrow)

	valueType := parseType(p)

	endToken := p.mustOne(lexer.TokenParenClose)

	return &ast.MappingType{
		KeyType:   keyType,
		ValueType: valueType,
		Range: ast.Range{
			StartPos: startPos,
			EndPos:   endToken.EndPos,
		},
	}
}
