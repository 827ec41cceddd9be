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

package pretty_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/pretty"
)

type testError struct {
	message   string
	secondary string
	ast.Range
}

var _ error = testError{}

func (e testError) Error() string {
	return e.message
}

func (e testError) SecondaryError() string {
	return e.secondary
}

type testParentError struct {
	children []error
}

var _ error = testParentError{}

func (testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.children
}

func prettyPrint(t *testing.T, err error, name string, code string) string {
	t.Helper()

	var sb strings.Builder
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(err, name, code)
	require.NoError(t, printErr)
	return sb.String()
}

func TestPrettyPrintError(t *testing.T) {

	t.Parallel()

	code := "contract C {\n    uint256 @ x;\n}"

	err := testError{
		message: "unexpected character",
		Range: ast.Range{
			StartPos: ast.Position{Offset: 25, Line: 2, Column: 12},
			EndPos:   ast.Position{Offset: 25, Line: 2, Column: 12},
		},
	}

	assert.Equal(t,
		"error: unexpected character\n"+
			" --> test.sol:2:12\n"+
			"  |\n"+
			"2 |     uint256 @ x;\n"+
			"  | "+strings.Repeat(" ", 12)+"^\n",
		prettyPrint(t, err, "test.sol", code),
	)
}

func TestPrettyPrintErrorRange(t *testing.T) {

	t.Parallel()

	code := "unit256 x;"

	err := testError{
		message: "cannot convert type: `unit256`",
		Range: ast.Range{
			StartPos: ast.Position{Offset: 0, Line: 1, Column: 0},
			EndPos:   ast.Position{Offset: 6, Line: 1, Column: 6},
		},
	}

	assert.Equal(t,
		"error: cannot convert type: `unit256`\n"+
			" --> test.sol:1:0\n"+
			"  |\n"+
			"1 | unit256 x;\n"+
			"  | ^^^^^^^\n",
		prettyPrint(t, err, "test.sol", code),
	)
}

func TestPrettyPrintErrorWithSecondaryMessage(t *testing.T) {

	t.Parallel()

	code := "unit256 x;"

	err := testError{
		message:   "cannot convert type: `unit256`",
		secondary: "did you mean `uint256`?",
		Range: ast.Range{
			StartPos: ast.Position{Offset: 0, Line: 1, Column: 0},
			EndPos:   ast.Position{Offset: 6, Line: 1, Column: 6},
		},
	}

	assert.Equal(t,
		"error: cannot convert type: `unit256`\n"+
			" --> test.sol:1:0\n"+
			"  |\n"+
			"1 | unit256 x;\n"+
			"  | ^^^^^^^ did you mean `uint256`?\n",
		prettyPrint(t, err, "test.sol", code),
	)
}

func TestPrettyPrintErrorTabIndentation(t *testing.T) {

	t.Parallel()

	// tabs before the error position are preserved in the caret line,
	// so the caret lines up regardless of tab width

	code := "\t\tbroken x;"

	err := testError{
		message: "cannot convert type: `broken`",
		Range: ast.Range{
			StartPos: ast.Position{Offset: 2, Line: 1, Column: 2},
			EndPos:   ast.Position{Offset: 7, Line: 1, Column: 7},
		},
	}

	assert.Equal(t,
		"error: cannot convert type: `broken`\n"+
			" --> test.sol:1:2\n"+
			"  |\n"+
			"1 | \t\tbroken x;\n"+
			"  | \t\t^^^^^^\n",
		prettyPrint(t, err, "test.sol", code),
	)
}

func TestPrettyPrintErrorBrokenPosition(t *testing.T) {

	t.Parallel()

	// a position outside of the code prints no excerpt

	err := testError{
		message: "test error",
		Range: ast.Range{
			StartPos: ast.Position{Offset: 0, Line: 10, Column: 0},
			EndPos:   ast.Position{Offset: 0, Line: 10, Column: 0},
		},
	}

	assert.Equal(t,
		"error: test error\n"+
			" --> test.sol:10:0\n",
		prettyPrint(t, err, "test.sol", "x"),
	)
}

func TestPrettyPrintErrorWithoutPosition(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		"error: plain failure\n",
		prettyPrint(t, fmt.Errorf("plain failure"), "test.sol", "x"),
	)
}

func TestPrettyPrintParentError(t *testing.T) {

	t.Parallel()

	code := "a\nb"

	err := testParentError{
		children: []error{
			testError{
				message: "first error",
				Range: ast.Range{
					StartPos: ast.Position{Offset: 0, Line: 1, Column: 0},
					EndPos:   ast.Position{Offset: 0, Line: 1, Column: 0},
				},
			},
			testError{
				message: "second error",
				Range: ast.Range{
					StartPos: ast.Position{Offset: 2, Line: 2, Column: 0},
					EndPos:   ast.Position{Offset: 2, Line: 2, Column: 0},
				},
			},
		},
	}

	assert.Equal(t,
		"error: first error\n"+
			" --> test.sol:1:0\n"+
			"  |\n"+
			"1 | a\n"+
			"  | ^\n"+
			"\n"+
			"error: second error\n"+
			" --> test.sol:2:0\n"+
			"  |\n"+
			"2 | b\n"+
			"  | ^\n",
		prettyPrint(t, err, "test.sol", code),
	)
}
