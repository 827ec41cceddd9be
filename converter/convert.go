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

// Package converter lowers the source AST into the target AST.
//
// The conversion is a pure tree transformation:
// contracts are converted independently,
// and the only shared data is the read-only type substitution table.
package converter

import (
	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/clarity"
	"github.com/sol2clarity/sol2clarity/common"
)

// ConvertProgram converts every contract of the program, in order.
// The first failing contract aborts the conversion.
func ConvertProgram(program *ast.Program) ([]*clarity.Contract, error) {
	contracts := make([]*clarity.Contract, 0, len(program.Contracts))
	for _, declaration := range program.Contracts {
		contract, err := ConvertContract(declaration)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

type converter struct {
	contract *ast.ContractDeclaration
	// dataVars maps source variable names to target data-var names
	dataVars map[string]string
	// constants maps source constant names to target constant names
	constants map[string]string
	// maps maps source mapping variable names to their map entries
	maps map[string]*mapEntry
	// events maps source event names to their declarations
	events map[string]*ast.EventDeclaration
}

// ConvertContract converts a single contract declaration.
//
// Declarations are converted in source order; synthesized getters
// follow directly after the public variable they read.
func ConvertContract(contract *ast.ContractDeclaration) (*clarity.Contract, error) {
	c := &converter{
		contract:  contract,
		dataVars:  map[string]string{},
		constants: map[string]string{},
		maps:      map[string]*mapEntry{},
		events:    map[string]*ast.EventDeclaration{},
	}

	err := c.declareMembers()
	if err != nil {
		return nil, err
	}

	c.nameKeyFields()

	var declarations []clarity.Declaration

	for _, member := range contract.Members {
		converted, err := c.convertMember(member)
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, converted...)
	}

	return &clarity.Contract{
		Name:         contract.Identifier.Identifier,
		Declarations: declarations,
	}, nil
}

// declareMembers registers all state variables and events,
// so bodies can refer to members declared after them.
func (c *converter) declareMembers() error {
	for _, member := range c.contract.Members {
		switch declaration := member.(type) {
		case *ast.StateVariableDeclaration:
			name := declaration.Identifier.Identifier

			if mappingType, ok := declaration.Type.(*ast.MappingType); ok {
				entry, err := flattenMapping(declaration, mappingType)
				if err != nil {
					return err
				}
				c.maps[name] = entry
				continue
			}

			if declaration.IsConstant {
				c.constants[name] = common.ToKebabCase(name)
			} else {
				c.dataVars[name] = common.ToKebabCase(name)
			}

		case *ast.EventDeclaration:
			c.events[declaration.Identifier.Identifier] = declaration
		}
	}
	return nil
}

func (c *converter) convertMember(member ast.Declaration) ([]clarity.Declaration, error) {
	switch declaration := member.(type) {
	case *ast.StateVariableDeclaration:
		return c.convertStateVariable(declaration)

	case *ast.FunctionDeclaration:
		function, err := c.convertFunction(declaration)
		if err != nil {
			return nil, err
		}
		return []clarity.Declaration{function}, nil

	case *ast.EventDeclaration:
		event, err := c.convertEvent(declaration)
		if err != nil {
			return nil, err
		}
		return []clarity.Declaration{event}, nil

	default:
		return nil, &UnsupportedConstructError{
			Construct: "declaration",
			Range:     ast.NewRangeFromPositioned(member),
		}
	}
}

func (c *converter) convertStateVariable(
	declaration *ast.StateVariableDeclaration,
) ([]clarity.Declaration, error) {

	name := declaration.Identifier.Identifier

	if declaration.IsMapping() {
		entry := c.maps[name]

		converted := &clarity.Map{
			Name:      entry.name,
			KeyFields: entry.keyFields,
			ValueType: entry.valueType,
			Public:    entry.public,
		}

		declarations := []clarity.Declaration{converted}
		if entry.public {
			declarations = append(declarations, mapGetter(converted))
		}
		return declarations, nil
	}

	varType, err := convertNominalType(declaration.Type.(*ast.NominalType))
	if err != nil {
		return nil, err
	}

	var initial clarity.Expression
	if declaration.InitialValue != nil {
		initial, err = c.convertExpression(declaration.InitialValue, nil)
		if err != nil {
			return nil, err
		}
	} else {
		initial = varType.DefaultValue()
	}

	if declaration.IsConstant {
		return []clarity.Declaration{
			&clarity.Constant{
				Name:  c.constants[name],
				Value: initial,
			},
		}, nil
	}

	public := declaration.Visibility == ast.VisibilityPublic

	converted := &clarity.DataVar{
		Name:    c.dataVars[name],
		Type:    varType,
		Initial: initial,
		Public:  public,
	}

	declarations := []clarity.Declaration{converted}
	if public {
		declarations = append(declarations, dataVarGetter(converted))
	}
	return declarations, nil
}

func (c *converter) convertEvent(
	declaration *ast.EventDeclaration,
) (*clarity.Event, error) {

	fields := make([]clarity.EventField, 0, len(declaration.Parameters))
	for _, parameter := range declaration.Parameters {
		nominalType, ok := parameter.Type.(*ast.NominalType)
		if !ok {
			return nil, &UnsupportedConstructError{
				Construct: "mapping-typed event parameter",
				Range:     ast.NewRangeFromPositioned(parameter.Type),
			}
		}
		fieldType, err := convertNominalType(nominalType)
		if err != nil {
			return nil, err
		}
		fields = append(
			fields,
			clarity.EventField{
				Name:    common.ToKebabCase(parameter.Identifier.Identifier),
				Type:    fieldType,
				Indexed: parameter.Indexed,
			},
		)
	}

	return &clarity.Event{
		Name:   common.ToKebabCase(declaration.Identifier.Identifier),
		Fields: fields,
	}, nil
}
