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

// mapEntry is the converter's record of one mapping state variable.
type mapEntry struct {
	// name is the target (kebab-case) map name
	name string
	// keyFields has one entry per nesting level of the source mapping
	keyFields []clarity.KeyField
	valueType clarity.Type
	public    bool
}

// flattenMapping resolves a nested mapping type into a map entry:
// nesting depth N yields exactly N key fields,
// and the value type is the innermost non-mapping value type.
// Field names are filled in later, see nameKeyFields.
func flattenMapping(
	declaration *ast.StateVariableDeclaration,
	mappingType *ast.MappingType,
) (*mapEntry, error) {

	keyTypes, valueType := mappingType.KeyChain()

	keyFields := make([]clarity.KeyField, 0, len(keyTypes))
	for _, keyType := range keyTypes {
		converted, err := convertNominalType(keyType)
		if err != nil {
			return nil, err
		}
		keyFields = append(
			keyFields,
			clarity.KeyField{
				Type: converted,
			},
		)
	}

	convertedValueType, err := convertNominalType(valueType)
	if err != nil {
		return nil, err
	}

	return &mapEntry{
		name:      common.ToKebabCase(declaration.Identifier.Identifier),
		keyFields: keyFields,
		valueType: convertedValueType,
		public:    declaration.Visibility == ast.VisibilityPublic,
	}, nil
}

// nameKeyFields derives the key-field names of every map
// from the index expressions used against it:
// if all plain-identifier indices at a key position agree
// on a single name, that name (kebab-cased) becomes the field name;
// otherwise the position falls back to the generated name `key-N`.
// If the derived names collide within one map,
// all of its positions fall back, so field names stay unique.
func (c *converter) nameKeyFields() {
	observed := make(map[string][]map[string]struct{})
	for name, entry := range c.maps { //nolint:maprange
		observed[name] = make([]map[string]struct{}, len(entry.keyFields))
	}

	for _, function := range c.contract.Members {
		declaration, ok := function.(*ast.FunctionDeclaration)
		if !ok || declaration.Body == nil {
			continue
		}
		for _, statement := range declaration.Body.Statements {
			c.observeStatementIndices(statement, observed)
		}
	}

	for name, entry := range c.maps { //nolint:maprange
		names := make([]string, len(entry.keyFields))
		seen := make(map[string]struct{}, len(entry.keyFields))
		collision := false

		for i := range entry.keyFields {
			derived := fmt.Sprintf("key-%d", i)

			position := observed[name][i]
			if len(position) == 1 {
				for observedName := range position {
					derived = common.ToKebabCase(observedName)
				}
			}

			if _, dup := seen[derived]; dup {
				collision = true
			}
			seen[derived] = struct{}{}
			names[i] = derived
		}

		if collision {
			for i := range names {
				names[i] = fmt.Sprintf("key-%d", i)
			}
		}

		for i := range entry.keyFields {
			entry.keyFields[i].Name = names[i]
		}
	}
}

func (c *converter) observeStatementIndices(
	statement ast.Statement,
	observed map[string][]map[string]struct{},
) {
	switch statement := statement.(type) {
	case *ast.AssignmentStatement:
		c.observeExpressionIndices(statement.Target, observed)
		c.observeExpressionIndices(statement.Value, observed)

	case *ast.ReturnStatement:
		if statement.Expression != nil {
			c.observeExpressionIndices(statement.Expression, observed)
		}

	case *ast.EmitStatement:
		for _, argument := range statement.Arguments {
			c.observeExpressionIndices(argument, observed)
		}

	case *ast.ExpressionStatement:
		c.observeExpressionIndices(statement.Expression, observed)
	}
}

func (c *converter) observeExpressionIndices(
	expression ast.Expression,
	observed map[string][]map[string]struct{},
) {
	switch expression := expression.(type) {
	case *ast.IndexExpression:
		target, ok := expression.Target.(*ast.IdentifierExpression)
		if ok {
			positions, isMap := observed[target.Identifier.Identifier]
			if isMap {
				for i, index := range expression.Indices {
					if i >= len(positions) {
						break
					}
					identifier, isIdentifier := index.(*ast.IdentifierExpression)
					if !isIdentifier {
						continue
					}
					if positions[i] == nil {
						positions[i] = make(map[string]struct{})
					}
					positions[i][identifier.Identifier.Identifier] = struct{}{}
				}
			}
		}
		for _, index := range expression.Indices {
			c.observeExpressionIndices(index, observed)
		}

	case *ast.BinaryExpression:
		c.observeExpressionIndices(expression.Left, observed)
		c.observeExpressionIndices(expression.Right, observed)

	case *ast.MemberExpression:
		c.observeExpressionIndices(expression.Expression, observed)
	}
}
