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
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/errors"
)

// ConversionError is an error in the user-provided contract
// discovered during lowering, carrying a source position.
type ConversionError interface {
	errors.UserError
	ast.HasPosition
	isConversionError()
}

// UnsupportedTypeError is reported for a type name
// that has no defined substitution.

type UnsupportedTypeError struct {
	Name string
	ast.Range
}

var _ ConversionError = &UnsupportedTypeError{}
var _ errors.SecondaryError = &UnsupportedTypeError{}

func (*UnsupportedTypeError) isConversionError() {}

func (*UnsupportedTypeError) IsUserError() {}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot convert type: `%s`", e.Name)
}

func (e *UnsupportedTypeError) SecondaryError() string {
	if closest := closestTypeName(e.Name); closest != "" {
		return fmt.Sprintf("did you mean `%s`?", closest)
	}
	return "unknown type"
}

// closestTypeName returns the supported type name
// closest to the given name, if any is close enough.
func closestTypeName(name string) string {
	nameRunes := []rune(name)

	closestDistance := len(name)
	closest := ""

	candidates := make([]string, 0, len(typeSubstitutions))
	for candidate := range typeSubstitutions { //nolint:maprange
		candidates = append(candidates, candidate)
	}
	sort.Strings(candidates)

	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't suggest a candidate if the distance is greater
		// than one already found, or if the edits required would
		// involve a complete replacement of the candidate's text
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return closest
}

// UnsupportedConstructError is reported for a syntactically valid
// construct that has no defined lowering.

type UnsupportedConstructError struct {
	Construct string
	Message   string
	ast.Range
}

var _ ConversionError = &UnsupportedConstructError{}
var _ errors.SecondaryError = &UnsupportedConstructError{}

func (*UnsupportedConstructError) isConversionError() {}

func (*UnsupportedConstructError) IsUserError() {}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Construct)
}

func (e *UnsupportedConstructError) SecondaryError() string {
	return e.Message
}
