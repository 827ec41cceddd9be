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

import "fmt"

// Position defines a row/column position within the source of the input contract,
// along with the byte offset from the start of the input.
type Position struct {
	// Offset is the byte offset, starting at 0
	Offset int
	// Line is the line number, starting at 1
	Line int
	// Column is the column number within the line, starting at 0
	Column int
}

func (position Position) String() string {
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

// Shifted returns the position shifted right by the given length,
// on the same line.
func (position Position) Shifted(length int) Position {
	return Position{
		Offset: position.Offset + length,
		Line:   position.Line,
		Column: position.Column + length,
	}
}

// Range defines a range of positions: the start and the end position, inclusive.
type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func (r Range) StartPosition() Position {
	return r.StartPos
}

func (r Range) EndPosition() Position {
	return r.EndPos
}

// HasPosition is implemented by all AST elements and errors
// that cover a range of positions in the input.
type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}

// NewRangeFromPositioned constructs a range covering the given element.
func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}
