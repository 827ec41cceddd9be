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
)

// typeSubstitutions is the fixed, read-only table mapping
// source basic type names to target types.
// All sized unsigned integers collapse into the single
// unbounded uint type.
var typeSubstitutions = map[string]clarity.Type{
	"uint":    clarity.TypeUint,
	"bool":    clarity.TypeBool,
	"address": clarity.TypePrincipal,
	"string":  clarity.TypeStringASCII,
}

func init() {
	for width := 8; width <= 256; width += 8 {
		typeSubstitutions[fmt.Sprintf("uint%d", width)] = clarity.TypeUint
	}
}

// convertNominalType substitutes a source basic type.
// Unknown names are an error, never a passthrough.
func convertNominalType(t *ast.NominalType) (clarity.Type, error) {
	name := t.Identifier.Identifier
	converted, ok := typeSubstitutions[name]
	if !ok {
		return clarity.TypeUnknown, &UnsupportedTypeError{
			Name:  name,
			Range: ast.NewRangeFromPositioned(t),
		}
	}
	return converted, nil
}
