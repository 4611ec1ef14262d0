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

// Package lex implements the lexical primitives shared by every JXON
// dialect: whitespace and comment skipping, string literals with escapes,
// labels/identifiers, and digit runs. Every function advances the given
// cursor past what it consumes and leaves it exactly on the first byte
// it does not recognize.
package lex

import (
	"strings"

	"github.com/cstuartroe/jxon/internal/cursor"
)

func isLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// IsLabelStart reports whether s (a single next() character) can start a
// label/identifier.
func IsLabelStart(s string) bool {
	return isLetter(s) || s == "_"
}

// IsLabelCont reports whether s can continue a label/identifier.
func IsLabelCont(s string) bool {
	return isLetter(s) || isDigit(s) || s == "_"
}

// SkipWhitespace consumes a maximal run of spaces, tabs, carriage
// returns, end-of-line transitions, and line/block comments. Comments
// are treated as whitespace in every dialect, matching the shared
// parser's behavior on the original source.
func SkipWhitespace(c *cursor.Cursor) error {
	for {
		two, err := c.Next(2, true)
		if err != nil {
			return err
		}
		switch {
		case two == "//":
			if err := skipLineComment(c); err != nil {
				return err
			}
			continue
		case two == "/*":
			if err := skipBlockComment(c); err != nil {
				return err
			}
			continue
		}

		if c.EOF() {
			return nil
		}
		if c.EOL() {
			c.Advance(1)
			continue
		}
		one, err := c.Next(1, true)
		if err != nil {
			return err
		}
		if one == " " || one == "\t" || one == "\r" {
			c.Advance(1)
			continue
		}
		return nil
	}
}

func skipLineComment(c *cursor.Cursor) error {
	if err := c.Expect("//"); err != nil {
		return err
	}
	for !c.EOL() {
		c.Advance(1)
	}
	return nil
}

func skipBlockComment(c *cursor.Cursor) error {
	if err := c.Expect("/*"); err != nil {
		return err
	}
	for {
		two, err := c.Next(2, false)
		if err != nil {
			return err
		}
		if two == "*/" {
			c.Advance(2)
			return nil
		}
		c.Advance(1)
	}
}

// singleCharEscapes is the set of escapes recognized after a backslash.
var singleCharEscapes = map[string]string{
	`"`:  `"`,
	`\`:  `\`,
	`/`:  `/`,
	"b":  "\b",
	"f":  "\f",
	"n":  "\n",
	"r":  "\r",
	"t":  "\t",
}

// GrabLabel reads a maximal [A-Za-z_][A-Za-z0-9_]* run. It returns the
// empty string (not an error) if the cursor is not on a label start;
// callers that require a non-empty label check that themselves so they
// can produce a more specific diagnostic.
func GrabLabel(c *cursor.Cursor) (string, error) {
	var b strings.Builder
	for {
		ch, err := c.Next(1, true)
		if err != nil {
			return "", err
		}
		ok := IsLabelCont(ch)
		if b.Len() == 0 {
			ok = IsLabelStart(ch)
		}
		if !ok {
			break
		}
		b.WriteString(ch)
		c.Advance(1)
	}
	return b.String(), nil
}

// GrabString consumes a double-quoted string literal, including escapes.
// When allowLineBreak is true (value position), an embedded line break is
// folded to a single space unless the text already ends in whitespace;
// when false (key/attribute/label position), a line break is a Parse
// error.
func GrabString(c *cursor.Cursor, allowLineBreak bool) (string, error) {
	if err := c.Expect(`"`); err != nil {
		return "", err
	}
	s, err := grabCharacters(c, allowLineBreak)
	if err != nil {
		return "", err
	}
	if err := c.Expect(`"`); err != nil {
		return "", err
	}
	return s, nil
}

func grabCharacters(c *cursor.Cursor, allowLineBreak bool) (string, error) {
	var b strings.Builder
	for {
		next, err := c.Next(1, true)
		if err != nil {
			return "", err
		}
		if next == `"` {
			return b.String(), nil
		}
		if c.EOL() {
			if !allowLineBreak {
				return "", c.Throw("Line break not allowed here", nil)
			}
			if err := SkipWhitespace(c); err != nil {
				return "", err
			}
			s := b.String()
			if s == "" || !strings.ContainsRune(" \t\r", rune(s[len(s)-1])) {
				b.WriteByte(' ')
			}
			continue
		}
		ch, err := grabCharacter(c)
		if err != nil {
			return "", err
		}
		b.WriteString(ch)
	}
}

func grabCharacter(c *cursor.Cursor) (string, error) {
	next, err := c.Next(1, false)
	if err != nil {
		return "", err
	}
	if next == `\` {
		c.Advance(1)
		return grabEscape(c)
	}
	if next == `"` {
		return "", c.Throw("Expected a character", nil)
	}
	c.Advance(1)
	return next, nil
}

func grabEscape(c *cursor.Cursor) (string, error) {
	next, err := c.Next(1, false)
	if err != nil {
		return "", err
	}
	if esc, ok := singleCharEscapes[next]; ok {
		c.Advance(1)
		return esc, nil
	}
	if next == "u" {
		// \u is not decoded: it is rejected below with the same
		// "Invalid escape sequence" error as any unrecognized escape.
	}
	return "", c.Throw("Invalid escape sequence", nil)
}

// GrabDigits reads a run of ASCII digits. If zerostart is false and the
// cursor sits on a single '0', that lone zero is returned without
// consuming any further digits (the "bare leading zero truncates"
// tolerant rule carried from the source).
func GrabDigits(c *cursor.Cursor, zerostart bool) (string, error) {
	if !zerostart {
		next, err := c.Next(1, true)
		if err != nil {
			return "", err
		}
		if next == "0" {
			c.Advance(1)
			return "0", nil
		}
	}

	var b strings.Builder
	for {
		ch, err := c.Next(1, true)
		if err != nil {
			return "", err
		}
		if !isDigit(ch) {
			break
		}
		b.WriteString(ch)
		c.Advance(1)
	}
	return b.String(), nil
}
