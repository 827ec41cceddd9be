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

// Package generator renders a target AST to Clarity source text.
// Generation is deterministic: identical trees always yield
// byte-identical text.
package generator

import (
	"fmt"
	"strings"

	"github.com/sol2clarity/sol2clarity/clarity"
	"github.com/sol2clarity/sol2clarity/common"
	"github.com/sol2clarity/sol2clarity/errors"
)

// FileExtension is the extension of generated output units.
const FileExtension = ".clar"

// ContractFileName returns the output unit name of a contract:
// the kebab-cased contract name plus the target extension.
func ContractFileName(contractName string) string {
	return common.ToKebabCase(contractName) + FileExtension
}

// GenerateContract renders one contract:
// a header comment block, then every declaration in source order,
// each preceded by a documentation comment
// synthesized from its kind and name.
func GenerateContract(contract *clarity.Contract) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, ";; Contract: %s\n", contract.Name)
	builder.WriteString(";; Auto-generated Clarity contract from Solidity source\n")

	for _, declaration := range contract.Declarations {
		builder.WriteString("\n")
		generateDeclaration(&builder, declaration)
	}

	return builder.String()
}

func generateDeclaration(builder *strings.Builder, declaration clarity.Declaration) {
	switch declaration := declaration.(type) {
	case *clarity.Constant:
		fmt.Fprintf(builder, ";; @desc Constant value for %s\n", declaration.Name)

	case *clarity.DataVar:
		fmt.Fprintf(builder, ";; @desc Stores the %s value\n", declaration.Name)
		if declaration.Public {
			builder.WriteString(";; @access public\n")
		}

	case *clarity.Map:
		fmt.Fprintf(builder, ";; @desc Map storing %s values\n", declaration.Name)
		if declaration.Public {
			builder.WriteString(";; @access public\n")
		}

	case *clarity.Event:
		// Events have no Clarity form of their own:
		// they only document the tuples printed by emissions.
		fmt.Fprintf(builder, ";; @desc Event: %s\n", declaration.Name)
		generateEventFields(builder, declaration)
		return

	case *clarity.Function:
		fmt.Fprintf(builder, ";; @desc Function %s\n", declaration.Name)
		builder.WriteString(";; @returns response\n")

	default:
		panic(errors.NewUnreachableError())
	}

	builder.WriteString(declaration.String())
	builder.WriteString("\n")
}

func generateEventFields(builder *strings.Builder, event *clarity.Event) {
	builder.WriteString(";; @fields ")
	for i, field := range event.Fields {
		if i > 0 {
			builder.WriteString(", ")
		}
		if field.Indexed {
			builder.WriteString("(indexed) ")
		}
		fmt.Fprintf(builder, "%s: %s", field.Name, field.Type)
	}
	builder.WriteString("\n")
}
