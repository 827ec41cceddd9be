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

package common

import "strings"

// ToKebabCase converts a camelCase, PascalCase, or snake_case identifier
// to the kebab-case convention of Clarity.
//
// Identifiers consisting only of upper-case letters, digits, and underscores
// (the usual constant convention) are kept verbatim.
//
// The transform is the single canonical casing applied to every identifier
// that crosses into generated output, including derived file names.
func ToKebabCase(identifier string) string {
	if isScreamingCase(identifier) {
		return identifier
	}

	var builder strings.Builder
	builder.Grow(len(identifier) + 2)

	for i, r := range identifier {
		switch {
		case r >= 'A' && r <= 'Z':
			if i != 0 {
				builder.WriteByte('-')
			}
			builder.WriteRune(r - 'A' + 'a')

		case r == '_':
			builder.WriteByte('-')

		default:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

func isScreamingCase(identifier string) bool {
	if identifier == "" {
		return false
	}
	for _, r := range identifier {
		switch {
		case r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_':
			continue
		default:
			return false
		}
	}
	return true
}
