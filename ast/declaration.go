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

package ast

import "github.com/sol2clarity/sol2clarity/errors"

// Declaration is a member of a contract:
// a state variable, a function, or an event.
type Declaration interface {
	HasPosition
	isDeclaration()
	DeclarationName() string
}

// Visibility

type Visibility uint8

const (
	VisibilityNotSpecified Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityInternal
	VisibilityExternal
)

func (v Visibility) Keyword() string {
	switch v {
	case VisibilityNotSpecified:
		return ""
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityExternal:
		return "external"
	}

	panic(errors.NewUnreachableError())
}

// Mutability

type Mutability uint8

const (
	MutabilityNotSpecified Mutability = iota
	MutabilityPure
	MutabilityView
	MutabilityPayable
)

func (m Mutability) Keyword() string {
	switch m {
	case MutabilityNotSpecified:
		return ""
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityPayable:
		return "payable"
	}

	panic(errors.NewUnreachableError())
}

// IsReadOnly returns true for mutabilities that promise
// not to modify contract state.
func (m Mutability) IsReadOnly() bool {
	return m == MutabilityPure || m == MutabilityView
}

// Parameter

type Parameter struct {
	Type       Type
	Identifier Identifier
}

// StateVariableDeclaration

type StateVariableDeclaration struct {
	Type       Type
	Identifier Identifier
	Visibility Visibility
	IsConstant bool
	// InitialValue is optional
	InitialValue Expression
	Range
}

var _ Declaration = &StateVariableDeclaration{}

func (*StateVariableDeclaration) isDeclaration() {}

func (d *StateVariableDeclaration) DeclarationName() string {
	return d.Identifier.Identifier
}

func (d *StateVariableDeclaration) IsMapping() bool {
	_, isMapping := d.Type.(*MappingType)
	return isMapping
}

// FunctionDeclaration represents a named function or a constructor.
// Constructors have no name of their own.

type FunctionDeclaration struct {
	Identifier    Identifier
	IsConstructor bool
	Parameters    []*Parameter
	Visibility    Visibility
	Mutability    Mutability
	// ReturnType is optional
	ReturnType Type
	Body       *Block
	Range
}

var _ Declaration = &FunctionDeclaration{}

func (*FunctionDeclaration) isDeclaration() {}

func (d *FunctionDeclaration) DeclarationName() string {
	return d.Identifier.Identifier
}

// EventParameter

type EventParameter struct {
	Type       Type
	Indexed    bool
	Identifier Identifier
}

// EventDeclaration

type EventDeclaration struct {
	Identifier Identifier
	Parameters []*EventParameter
	Range
}

var _ Declaration = &EventDeclaration{}

func (*EventDeclaration) isDeclaration() {}

func (d *EventDeclaration) DeclarationName() string {
	return d.Identifier.Identifier
}

// ContractDeclaration

type ContractDeclaration struct {
	Identifier Identifier
	// Members holds all declarations, in the order they are defined.
	// The order is significant and preserved into the generated output.
	Members []Declaration
	Range
}

var _ Declaration = &ContractDeclaration{}

func (*ContractDeclaration) isDeclaration() {}

func (d *ContractDeclaration) DeclarationName() string {
	return d.Identifier.Identifier
}

func (d *ContractDeclaration) StateVariableDeclarations() []*StateVariableDeclaration {
	var declarations []*StateVariableDeclaration
	for _, member := range d.Members {
		if declaration, ok := member.(*StateVariableDeclaration); ok {
			declarations = append(declarations, declaration)
		}
	}
	return declarations
}

func (d *ContractDeclaration) FunctionDeclarations() []*FunctionDeclaration {
	var declarations []*FunctionDeclaration
	for _, member := range d.Members {
		if declaration, ok := member.(*FunctionDeclaration); ok &&
			!declaration.IsConstructor {

			declarations = append(declarations, declaration)
		}
	}
	return declarations
}

func (d *ContractDeclaration) EventDeclarations() []*EventDeclaration {
	var declarations []*EventDeclaration
	for _, member := range d.Members {
		if declaration, ok := member.(*EventDeclaration); ok {
			declarations = append(declarations, declaration)
		}
	}
	return declarations
}

// ConstructorDeclaration returns the contract's constructor, if any.
func (d *ContractDeclaration) ConstructorDeclaration() *FunctionDeclaration {
	for _, member := range d.Members {
		if declaration, ok := member.(*FunctionDeclaration); ok &&
			declaration.IsConstructor {

			return declaration
		}
	}
	return nil
}
