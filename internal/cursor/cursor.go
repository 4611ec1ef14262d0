// Copyright 2026 The JXON Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cursor implements character-level navigation over JXON source
// text: a 0-indexed (line, column) position into a pre-split sequence of
// lines, with deferred-diagnostic breakpoints and caret-annotated errors.
package cursor

import (
	"strconv"
	"strings"

	"github.com/cstuartroe/jxon/internal/diag"
)

// NUL is the sentinel rune returned by Next at end-of-line or end-of-file
// when the caller permits it.
const NUL = rune(0)

// Breakpoint is a saved cursor position, restorable with Jump.
type Breakpoint struct {
	Line, Col int
}

// Cursor walks a source text line by line. It is not safe for concurrent
// use, and a single instance is meant to back exactly one parse.
type Cursor struct {
	lines []string
	Line  int
	Col   int
}

// New splits src into lines and returns a Cursor positioned at the start.
func New(src string) *Cursor {
	return &Cursor{lines: strings.Split(src, "\n")}
}

// Breakpoint saves the current position.
func (c *Cursor) Breakpoint() Breakpoint {
	return Breakpoint{c.Line, c.Col}
}

// Jump restores a previously saved position.
func (c *Cursor) Jump(bp Breakpoint) {
	c.Line, c.Col = bp.Line, bp.Col
}

// Position reports the cursor's current (line, col), both 0-indexed.
func (c *Cursor) Position() diag.Position {
	return diag.Position{Line: c.Line, Col: c.Col}
}

func (c *Cursor) EOF() bool {
	return c.Line >= len(c.lines)
}

func (c *Cursor) EOL() bool {
	return !c.EOF() && c.Col >= len(c.lines[c.Line])
}

// Next returns the next n characters without advancing the cursor. At
// end-of-line or end-of-file it returns the NUL sentinel if permitEOL is
// true, and raises a Parse error otherwise.
func (c *Cursor) Next(n int, permitEOL bool) (string, error) {
	if c.EOF() {
		if permitEOL {
			return string(NUL), nil
		}
		return "", c.Throw("EOF while parsing JXON", nil)
	}
	if c.EOL() {
		if permitEOL {
			return string(NUL), nil
		}
		return "", c.Throw("Unexpected EOL", nil)
	}

	line := c.lines[c.Line]
	end := c.Col + n
	if end > len(line) {
		end = len(line)
	}
	return line[c.Col:end], nil
}

// NextRune is a convenience for Next(1, true) in the common case where
// grammar rules only ever need to peek one character ahead.
func (c *Cursor) NextRune() string {
	s, _ := c.Next(1, true)
	return s
}

// Advance moves the cursor forward n characters, transparently crossing
// line boundaries. It is a no-op at EOF.
func (c *Cursor) Advance(n int) {
	for ; n > 0 && !c.EOF(); n-- {
		if c.EOL() {
			c.Col = 0
			c.Line++
		} else {
			c.Col++
		}
	}
}

// Expect consumes s if it is next in the source, or raises a diagnostic.
func (c *Cursor) Expect(s string) error {
	next, err := c.Next(len(s), true)
	if err != nil {
		return err
	}
	if next != s {
		return c.Throw("Expected '"+s+"'", nil)
	}
	c.Advance(len(s))
	return nil
}

// Throw formats a diagnostic anchored at bp (or the current position, if
// bp is nil) and returns it as a *diag.Error of kind Parse.
func (c *Cursor) Throw(msg string, bp *Breakpoint) error {
	if bp != nil {
		c.Jump(*bp)
	}

	line, col := c.Line, c.Col
	if c.EOF() {
		line = len(c.lines) - 1
		col = len(c.lines[line])
		if col > 0 {
			col--
		}
	}

	lineText := ""
	if line >= 0 && line < len(c.lines) {
		lineText = c.lines[line]
	}

	caret := "(line " + strconv.Itoa(line+1) + ", col " + strconv.Itoa(col+1) + ") " + msg +
		"\n" + lineText + "\n" + strings.Repeat(" ", col) + "^"

	return &diag.Error{Kind: diag.Parse, Message: msg, Caret: caret}
}
