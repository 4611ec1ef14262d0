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

// Package diag defines the position and error types shared by every
// dialect of the JXON parser and by the schema engine.
package diag

import "fmt"

// Position is a 0-indexed line/column location within a source text.
type Position struct {
	Line int
	Col  int
}

// Kind classifies the four fatal error conditions a JXON operation can
// raise, per the error handling design.
type Kind int

const (
	// Parse is a syntax violation raised by the cursor/parser.
	Parse Kind = iota
	// SchemaValidity is raised by parse_type when a value cannot be
	// represented as a JXSD schema.
	SchemaValidity
	// VariableResolution is raised when a dotted name fails to resolve.
	VariableResolution
	// Encode is raised by the emitter for a value outside the universe.
	Encode
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "Parse"
	case SchemaValidity:
		return "SchemaValidity"
	case VariableResolution:
		return "VariableResolution"
	case Encode:
		return "Encode"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every JXON operation. It carries a
// Kind for programmatic dispatch and, for Parse errors raised mid-source,
// a caret-annotated rendering of the offending line.
type Error struct {
	Kind    Kind
	Message string
	// Caret is the pre-rendered "(line L, col C) msg\n<line>\n<caret>"
	// form produced by the cursor. It is empty for errors that have no
	// associated source position (e.g. most SchemaValidity errors).
	Caret string
}

func (e *Error) Error() string {
	if e.Caret != "" {
		return e.Caret
	}
	return e.Message
}

// KindOf reports the Kind of err if it is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if as(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func as(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Newf builds a position-free error of the given kind, for failures (such
// as most SchemaValidity and Encode errors) that are not anchored to a
// cursor position.
func Newf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}
