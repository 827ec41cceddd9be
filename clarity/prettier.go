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

package clarity

import (
	"strings"

	"github.com/turbolent/prettier"
)

const MaxLineWidth = 80
const Indent = "  "

type HasDoc interface {
	Doc() prettier.Doc
}

// Prettier renders the given node's document to source text.
func Prettier(node HasDoc) string {
	var builder strings.Builder
	prettier.Prettier(&builder, node.Doc(), MaxLineWidth, Indent)
	return builder.String()
}
