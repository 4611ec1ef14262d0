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

// Package jxon is the public entry point to the JXON/JXSD implementation:
// parsing, emitting, schema inference/validation, and structural
// equality, wired together from the internal parser, schema, emit, and
// module packages.
package jxon

import (
	"github.com/cstuartroe/jxon/emit"
	"github.com/cstuartroe/jxon/module"
	"github.com/cstuartroe/jxon/parser"
	"github.com/cstuartroe/jxon/schema"
	"github.com/cstuartroe/jxon/value"
)

// Re-exported types so callers only need to import this one package for
// the common case.
type (
	Value    = value.Value
	Module   = value.Module
	JXONType = value.JXONType
)

// EmitOptions controls EmitValue/EmitSchema output formatting.
type EmitOptions = emit.Options

// Compact requests single-line output; Indented(n, sortKeys) requests
// pretty-printed output with n spaces per nesting level.
var Compact = emit.Compact

// Indented returns formatting options for n-space indentation, optionally
// sorting object/record keys for deterministic output.
func Indented(n int, sortKeys bool) EmitOptions {
	return emit.Indented(n, sortKeys)
}

// ParseValue parses text with the JXON module grammar and returns its
// default export. Both `import ... from "..."` statements and inline
// `import(...)` expressions are accepted; "./" paths resolve relative to
// baseDir.
func ParseValue(text string, baseDir string) (Value, error) {
	return parser.ParseValue(text, module.NewLoader(parser.JXON), baseDir)
}

// ParseModule parses text with the full JXON module grammar, resolving
// any `import ... from "..."` statements relative to baseDir.
func ParseModule(text string, baseDir string) (*Module, error) {
	return parser.ParseModule(text, module.NewLoader(parser.JXON), baseDir)
}

// ParseSchema parses text with the JXSD dialect and returns its default
// export, expected to be a value.Schema.
func ParseSchema(text string, baseDir string) (Value, error) {
	return parser.ParseSchema(text, module.NewLoader(parser.JXSD), baseDir)
}

// ParseCombined parses text with the JXON grammar but extension-routed
// imports (.jxsd/.xml/.json), returning its default export.
func ParseCombined(text string, baseDir string) (Value, error) {
	return parser.ParseCombined(text, module.NewLoader(parser.Combined), baseDir)
}

// LoadFile reads and parses the file at path, selecting a dialect by its
// extension per section 6.2.
func LoadFile(path string) (*Module, error) {
	return module.LoadFile(path, module.DialectForExtension(path))
}

// EmitValue renders v as JXON source text.
func EmitValue(v Value, opts EmitOptions) (string, error) {
	return emit.Value(v, opts)
}

// EmitSchema renders t as JXSD source text.
func EmitSchema(t JXONType, opts EmitOptions) (string, error) {
	return emit.Schema(t, opts)
}

// InferSchema derives the most specific schema matching v.
func InferSchema(v Value) (JXONType, error) {
	return schema.Infer(v)
}

// Validate reports whether v matches schema t. When fillNull is true, any
// undetermined element/field schema inside t is inferred from v and
// filled in, mutating t.
func Validate(t JXONType, v Value, fillNull bool) (bool, error) {
	return schema.Validate(t, v, fillNull)
}

// ValuesEqual reports structural equality between a and b.
func ValuesEqual(a, b Value) bool {
	return value.Equal(a, b)
}
