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

	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/clarity"
	"github.com/sol2clarity/sol2clarity/common"
)

const constructorFunctionName = "init"

// convertFunction lowers a function or constructor declaration.
//
// Read-only functions (view/pure) become define-read-only,
// public and external functions become define-public,
// everything else becomes define-private.
// A constructor becomes the public `init` function.
func (c *converter) convertFunction(
	declaration *ast.FunctionDeclaration,
) (*clarity.Function, error) {

	var name string
	var kind clarity.FunctionKind

	switch {
	case declaration.IsConstructor:
		name = constructorFunctionName
		kind = clarity.FunctionKindPublic

	case declaration.Mutability.IsReadOnly():
		name = common.ToKebabCase(declaration.Identifier.Identifier)
		kind = clarity.FunctionKindReadOnly

	case declaration.Visibility == ast.VisibilityPublic ||
		declaration.Visibility == ast.VisibilityExternal:

		name = common.ToKebabCase(declaration.Identifier.Identifier)
		kind = clarity.FunctionKindPublic

	default:
		name = common.ToKebabCase(declaration.Identifier.Identifier)
		kind = clarity.FunctionKindPrivate
	}

	parameters := make([]*clarity.Parameter, 0, len(declaration.Parameters))
	// scope maps source parameter names to target names;
	// parameters lower to plain references, not var-gets
	scope := make(map[string]string, len(declaration.Parameters))

	for _, parameter := range declaration.Parameters {
		nominalType, ok := parameter.Type.(*ast.NominalType)
		if !ok {
			return nil, &UnsupportedConstructError{
				Construct: "mapping-typed parameter",
				Range:     ast.NewRangeFromPositioned(parameter.Type),
			}
		}
		parameterType, err := convertNominalType(nominalType)
		if err != nil {
			return nil, err
		}

		sourceName := parameter.Identifier.Identifier
		targetName := common.ToKebabCase(sourceName)
		scope[sourceName] = targetName

		parameters = append(
			parameters,
			&clarity.Parameter{
				Name: targetName,
				Type: parameterType,
			},
		)
	}

	body, err := c.convertFunctionBody(declaration.Body, scope)
	if err != nil {
		return nil, err
	}

	return &clarity.Function{
		Name:       name,
		Kind:       kind,
		Parameters: parameters,
		Body:       body,
	}, nil
}

// convertFunctionBody lowers the statements of a function body
// into the function's single body expression.
//
// The last statement's value becomes the function's result:
// an explicit return is already wrapped in a success result,
// any other final statement is re-wrapped so its value is returned.
// Multi-statement bodies are sequenced with begin,
// empty bodies produce `(ok true)`.
func (c *converter) convertFunctionBody(
	body *ast.Block,
	scope map[string]string,
) (clarity.Expression, error) {

	statements := body.Statements

	if len(statements) == 0 {
		return &clarity.Ok{
			Value: &clarity.BoolLiteral{Value: true},
		}, nil
	}

	expressions := make([]clarity.Expression, 0, len(statements))
	for _, statement := range statements {
		expression, err := c.convertStatement(statement, scope)
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expression)
	}

	last := len(expressions) - 1
	if _, isReturn := statements[last].(*ast.ReturnStatement); !isReturn {
		expressions[last] = &clarity.Ok{
			Value: expressions[last],
		}
	}

	if len(expressions) == 1 {
		return expressions[0], nil
	}

	return &clarity.Begin{
		Expressions: expressions,
	}, nil
}

// convertStatement lowers a single statement to an expression.
func (c *converter) convertStatement(
	statement ast.Statement,
	scope map[string]string,
) (clarity.Expression, error) {

	switch statement := statement.(type) {
	case *ast.AssignmentStatement:
		return c.convertAssignment(statement, scope)

	case *ast.ReturnStatement:
		if statement.Expression == nil {
			return &clarity.Ok{
				Value: &clarity.BoolLiteral{Value: true},
			}, nil
		}
		value, err := c.convertExpression(statement.Expression, scope)
		if err != nil {
			return nil, err
		}
		return &clarity.Ok{Value: value}, nil

	case *ast.EmitStatement:
		return c.convertEmit(statement, scope)

	case *ast.ExpressionStatement:
		return c.convertExpression(statement.Expression, scope)

	default:
		return nil, &UnsupportedConstructError{
			Construct: "statement",
			Range:     ast.NewRangeFromPositioned(statement),
		}
	}
}

func (c *converter) convertAssignment(
	statement *ast.AssignmentStatement,
	scope map[string]string,
) (clarity.Expression, error) {

	switch target := statement.Target.(type) {
	case *ast.IdentifierExpression:
		name := target.Identifier.Identifier

		targetName, isDataVar := c.dataVars[name]
		if !isDataVar {
			return nil, &UnsupportedConstructError{
				Construct: "assignment to `" + name + "`",
				Message:   "only contract data variables can be assigned to",
				Range:     ast.NewRangeFromPositioned(statement.Target),
			}
		}

		value, err := c.convertExpression(statement.Value, scope)
		if err != nil {
			return nil, err
		}

		return &clarity.VarSet{
			Name:  targetName,
			Value: value,
		}, nil

	case *ast.IndexExpression:
		key, entry, err := c.convertMapKey(target, scope)
		if err != nil {
			return nil, err
		}

		value, err := c.convertExpression(statement.Value, scope)
		if err != nil {
			return nil, err
		}

		return &clarity.MapSet{
			Map:   entry.name,
			Key:   key,
			Value: value,
		}, nil

	default:
		return nil, &UnsupportedConstructError{
			Construct: "assignment target",
			Range:     ast.NewRangeFromPositioned(statement.Target),
		}
	}
}

// convertEmit lowers an event emission to printing a tuple
// that tags the event name and pairs the event's declared
// parameters positionally with the call's arguments.
func (c *converter) convertEmit(
	statement *ast.EmitStatement,
	scope map[string]string,
) (clarity.Expression, error) {

	name := statement.EventName.Identifier

	event, ok := c.events[name]
	if !ok {
		return nil, &UnsupportedConstructError{
			Construct: "emit of undeclared event `" + name + "`",
			Range:     ast.NewRangeFromPositioned(statement),
		}
	}

	if len(statement.Arguments) != len(event.Parameters) {
		return nil, &UnsupportedConstructError{
			Construct: "emit of event `" + name + "`",
			Message: fmt.Sprintf(
				"event has %d parameter(s), got %d argument(s)",
				len(event.Parameters),
				len(statement.Arguments),
			),
			Range: ast.NewRangeFromPositioned(statement),
		}
	}

	fields := make([]clarity.TupleField, 0, len(statement.Arguments)+1)
	fields = append(
		fields,
		clarity.TupleField{
			Name: "event",
			Value: &clarity.StringLiteral{
				Value: common.ToKebabCase(name),
			},
		},
	)

	for i, argument := range statement.Arguments {
		value, err := c.convertExpression(argument, scope)
		if err != nil {
			return nil, err
		}
		fields = append(
			fields,
			clarity.TupleField{
				Name:  common.ToKebabCase(event.Parameters[i].Identifier.Identifier),
				Value: value,
			},
		)
	}

	return &clarity.PrintExpression{
		Value: &clarity.TupleExpression{
			Fields: fields,
		},
	}, nil
}
