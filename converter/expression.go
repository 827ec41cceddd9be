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

package converter

import (
	"fmt"
	"strings"

	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/clarity"
	"github.com/sol2clarity/sol2clarity/common"
	"github.com/sol2clarity/sol2clarity/errors"
)

// memberSubstitutions is the fixed table of well-known
// caller-context member accesses.
var memberSubstitutions = map[string]string{
	"msg.sender": "tx-sender",
}

// convertExpression lowers a source expression.
//
// scope maps the enclosing function's parameter names
// to their target names; it is nil outside of function bodies.
func (c *converter) convertExpression(
	expression ast.Expression,
	scope map[string]string,
) (clarity.Expression, error) {

	switch expression := expression.(type) {
	case *ast.IntegerExpression:
		return &clarity.UintLiteral{
			Value: expression.Value,
		}, nil

	case *ast.BoolExpression:
		return &clarity.BoolLiteral{
			Value: expression.Value,
		}, nil

	case *ast.StringExpression:
		return &clarity.StringLiteral{
			Value: expression.Value,
		}, nil

	case *ast.IdentifierExpression:
		return c.convertIdentifier(expression, scope)

	case *ast.MemberExpression:
		return c.convertMemberAccess(expression)

	case *ast.IndexExpression:
		key, entry, err := c.convertMapKey(expression, scope)
		if err != nil {
			return nil, err
		}
		return &clarity.MapGet{
			Map: entry.name,
			Key: key,
		}, nil

	case *ast.BinaryExpression:
		return c.convertBinaryExpression(expression, scope)

	default:
		panic(errors.NewUnreachableError())
	}
}

// convertIdentifier lowers a plain name:
// the contract's own data-vars read through var-get,
// parameters and everything else stay plain references.
func (c *converter) convertIdentifier(
	expression *ast.IdentifierExpression,
	scope map[string]string,
) (clarity.Expression, error) {

	name := expression.Identifier.Identifier

	if targetName, isParameter := scope[name]; isParameter {
		return &clarity.Reference{Name: targetName}, nil
	}

	if targetName, isDataVar := c.dataVars[name]; isDataVar {
		return &clarity.VarGet{Name: targetName}, nil
	}

	if targetName, isConstant := c.constants[name]; isConstant {
		return &clarity.Reference{Name: targetName}, nil
	}

	if _, isMap := c.maps[name]; isMap {
		return nil, &UnsupportedConstructError{
			Construct: "mapping used as a value",
			Message:   "mappings can only be read and written through index access",
			Range:     ast.NewRangeFromPositioned(expression),
		}
	}

	return &clarity.Reference{
		Name: common.ToKebabCase(name),
	}, nil
}

// convertMemberAccess lowers a member access chain.
// Well-known accessors substitute from a fixed table
// (e.g. `msg.sender` becomes `tx-sender`);
// any other identifier chain passes through
// with its parts kebab-cased and joined.
func (c *converter) convertMemberAccess(
	expression *ast.MemberExpression,
) (clarity.Expression, error) {

	chain, ok := expression.Chain()
	if !ok {
		return nil, &UnsupportedConstructError{
			Construct: "member access on a non-identifier expression",
			Range:     ast.NewRangeFromPositioned(expression),
		}
	}

	if substitution, found := memberSubstitutions[strings.Join(chain, ".")]; found {
		return &clarity.Reference{Name: substitution}, nil
	}

	parts := make([]string, 0, len(chain))
	for _, part := range chain {
		parts = append(parts, common.ToKebabCase(part))
	}

	return &clarity.Reference{
		Name: strings.Join(parts, "-"),
	}, nil
}

// convertMapKey resolves an index expression into the map it targets
// and the key expression for lookups and stores:
// a bare scalar for single-key maps,
// a tuple pairing every key field with the index written
// at its position for flattened nested maps.
func (c *converter) convertMapKey(
	expression *ast.IndexExpression,
	scope map[string]string,
) (clarity.Expression, *mapEntry, error) {

	identifier, ok := expression.Target.(*ast.IdentifierExpression)
	if !ok {
		return nil, nil, &UnsupportedConstructError{
			Construct: "index access on a non-identifier expression",
			Range:     ast.NewRangeFromPositioned(expression),
		}
	}

	name := identifier.Identifier.Identifier
	entry, isMap := c.maps[name]
	if !isMap {
		return nil, nil, &UnsupportedConstructError{
			Construct: "index access on `" + name + "`",
			Message:   "only mapping state variables can be indexed",
			Range:     ast.NewRangeFromPositioned(expression),
		}
	}

	if len(expression.Indices) != len(entry.keyFields) {
		return nil, nil, &UnsupportedConstructError{
			Construct: "index access on `" + name + "`",
			Message: fmt.Sprintf(
				"mapping has %d key(s), got %d index expression(s)",
				len(entry.keyFields),
				len(expression.Indices),
			),
			Range: ast.NewRangeFromPositioned(expression),
		}
	}

	indices := make([]clarity.Expression, 0, len(expression.Indices))
	for _, index := range expression.Indices {
		converted, err := c.convertExpression(index, scope)
		if err != nil {
			return nil, nil, err
		}
		indices = append(indices, converted)
	}

	if len(indices) == 1 {
		return indices[0], entry, nil
	}

	fields := make([]clarity.TupleField, 0, len(indices))
	for i, index := range indices {
		fields = append(
			fields,
			clarity.TupleField{
				Name:  entry.keyFields[i].Name,
				Value: index,
			},
		)
	}

	return &clarity.TupleExpression{
		Fields: fields,
	}, entry, nil
}

// convertBinaryExpression rewrites infix into prefix application,
// preserving the parsed left-to-right structure.
// Equality maps to is-eq, inequality to its negation,
// and modulo to the target's mod function.
func (c *converter) convertBinaryExpression(
	expression *ast.BinaryExpression,
	scope map[string]string,
) (clarity.Expression, error) {

	left, err := c.convertExpression(expression.Left, scope)
	if err != nil {
		return nil, err
	}

	right, err := c.convertExpression(expression.Right, scope)
	if err != nil {
		return nil, err
	}

	var function string

	switch expression.Operation {
	case ast.OperationPlus:
		function = "+"
	case ast.OperationMinus:
		function = "-"
	case ast.OperationMul:
		function = "*"
	case ast.OperationDiv:
		function = "/"
	case ast.OperationMod:
		function = "mod"
	case ast.OperationLess:
		function = "<"
	case ast.OperationGreater:
		function = ">"
	case ast.OperationLessEqual:
		function = "<="
	case ast.OperationGreaterEqual:
		function = ">="
	case ast.OperationAnd:
		function = "and"
	case ast.OperationOr:
		function = "or"

	case ast.OperationEqual:
		function = "is-eq"

	case ast.OperationNotEqual:
		return &clarity.Application{
			Function: "not",
			Arguments: []clarity.Expression{
				&clarity.Application{
					Function:  "is-eq",
					Arguments: []clarity.Expression{left, right},
				},
			},
		}, nil

	default:
		panic(errors.NewUnreachableError())
	}

	return &clarity.Application{
		Function:  function,
		Arguments: []clarity.Expression{left, right},
	}, nil
}
