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
	"github.com/sol2clarity/sol2clarity/clarity"
)

const getterPrefix = "get-"
const getterKeyParameterName = "key"

// dataVarGetter synthesizes the read-only getter
// of a public data-var: zero arguments,
// returning the stored value wrapped in a success result.
func dataVarGetter(dataVar *clarity.DataVar) *clarity.Function {
	return &clarity.Function{
		Name: getterPrefix + dataVar.Name,
		Kind: clarity.FunctionKindReadOnly,
		Body: &clarity.Ok{
			Value: &clarity.VarGet{
				Name: dataVar.Name,
			},
		},
	}
}

// mapGetter synthesizes the read-only getter of a public map:
// a single key argument typed as the map's key type,
// returning the optional lookup result wrapped in a success result.
func mapGetter(m *clarity.Map) *clarity.Function {
	return &clarity.Function{
		Name: getterPrefix + m.Name,
		Kind: clarity.FunctionKindReadOnly,
		Parameters: []*clarity.Parameter{
			{
				Name: getterKeyParameterName,
				Type: m.KeyType(),
			},
		},
		Body: &clarity.Ok{
			Value: &clarity.MapGet{
				Map: m.Name,
				Key: &clarity.Reference{
					Name: getterKeyParameterName,
				},
			},
		},
	}
}
