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

// Package pretty renders errors with source excerpts,
// in the style of modern compiler diagnostics:
//
//	error: unexpected token in expression: ';'
//	 --> counter.sol:3:8
//	  |
//	3 |     x = ;
//	  |         ^
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/sol2clarity/sol2clarity/ast"
	"github.com/sol2clarity/sol2clarity/errors"
)

const errorPrefix = "error"
const excerptArrow = " --> "

type ErrorPrettyPrinter struct {
	writer   io.Writer
	colorize bool
}

func NewErrorPrettyPrinter(writer io.Writer, colorize bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		colorize: colorize,
	}
}

func (p ErrorPrettyPrinter) colorizeError(message string) string {
	if !p.colorize {
		return message
	}
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func (p ErrorPrettyPrinter) colorizeMessage(message string) string {
	if !p.colorize {
		return message
	}
	return aurora.Bold(message).String()
}

func (p ErrorPrettyPrinter) colorizeMeta(meta string) string {
	if !p.colorize {
		return meta
	}
	return aurora.Blue(meta).String()
}

// PrettyPrintError writes the given error, pretty-printed.
//
// A ParentError is printed as its child errors,
// separated by blank lines.
// An error that has position information (ast.HasPosition)
// gets a source excerpt from the given code,
// annotated at the error's range.
func (p ErrorPrettyPrinter) PrettyPrintError(err error, name string, code string) error {
	if parentErr, ok := err.(errors.ParentError); ok {
		for i, childErr := range parentErr.ChildErrors() {
			if i > 0 {
				_, err := fmt.Fprintln(p.writer)
				if err != nil {
					return err
				}
			}

			err := p.prettyPrintError(childErr, name, code)
			if err != nil {
				return err
			}
		}
		return nil
	}

	return p.prettyPrintError(err, name, code)
}

func (p ErrorPrettyPrinter) prettyPrintError(err error, name string, code string) error {
	message := err.Error()

	_, printErr := fmt.Fprintf(
		p.writer,
		"%s: %s\n",
		p.colorizeError(errorPrefix),
		p.colorizeMessage(message),
	)
	if printErr != nil {
		return printErr
	}

	positioned, hasPosition := err.(ast.HasPosition)
	if !hasPosition {
		return nil
	}

	startPos := positioned.StartPosition()
	endPos := positioned.EndPosition()

	_, printErr = fmt.Fprintf(
		p.writer,
		"%s%s:%d:%d\n",
		p.colorizeMeta(excerptArrow),
		name,
		startPos.Line,
		startPos.Column,
	)
	if printErr != nil {
		return printErr
	}

	var secondaryMessage string
	if secondaryErr, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondaryErr.SecondaryError()
	}

	return p.printExcerpt(code, startPos, endPos, secondaryMessage)
}

// printExcerpt prints the source line of the error's start position,
// with a caret line underneath marking the error's range.
// Nothing is printed when the position lies outside of the code.
func (p ErrorPrettyPrinter) printExcerpt(
	code string,
	startPos ast.Position,
	endPos ast.Position,
	secondaryMessage string,
) error {
	lines := strings.Split(code, "\n")
	if startPos.Line < 1 || startPos.Line > len(lines) {
		return nil
	}

	line := lines[startPos.Line-1]
	lineNumberString := strconv.Itoa(startPos.Line)
	emptyLineNumber := strings.Repeat(" ", len(lineNumberString))

	// empty gutter line
	_, err := fmt.Fprintf(
		p.writer,
		"%s\n",
		p.colorizeMeta(emptyLineNumber+" |"),
	)
	if err != nil {
		return err
	}

	// the code line
	_, err = fmt.Fprintf(
		p.writer,
		"%s %s\n",
		p.colorizeMeta(lineNumberString+" |"),
		line,
	)
	if err != nil {
		return err
	}

	// the caret line. Tabs are preserved so the carets line up
	// with the code line regardless of tab width.
	startColumn := startPos.Column
	if startColumn > len(line) {
		startColumn = len(line)
	}

	endColumn := endPos.Column
	if endPos.Line != startPos.Line || endColumn < startColumn {
		endColumn = len(line) - 1
	}
	if endColumn >= len(line) {
		endColumn = len(line) - 1
	}

	var caretLine strings.Builder
	for _, r := range line[:startColumn] {
		if r == '\t' {
			caretLine.WriteRune('\t')
		} else {
			caretLine.WriteRune(' ')
		}
	}

	caretCount := endColumn - startColumn + 1
	if caretCount < 1 {
		caretCount = 1
	}
	carets := strings.Repeat("^", caretCount)
	if p.colorize {
		carets = aurora.Colorize(carets, aurora.RedFg|aurora.BrightFg).String()
	}
	caretLine.WriteString(carets)

	if secondaryMessage != "" {
		caretLine.WriteString(" ")
		caretLine.WriteString(p.colorizeMessage(secondaryMessage))
	}

	_, err = fmt.Fprintf(
		p.writer,
		"%s %s\n",
		p.colorizeMeta(emptyLineNumber+" |"),
		caretLine.String(),
	)
	return err
}
