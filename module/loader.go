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

// Package module implements [parser.Loader]: resolving an import's file
// path against a base directory, dispatching on its extension to the
// correct dialect, and detecting circular imports across the whole
// load chain of a top-level parse.
package module

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cstuartroe/jxon/internal/diag"
	"github.com/cstuartroe/jxon/parser"
	"github.com/cstuartroe/jxon/value"
)

// importStack tracks the canonicalized paths currently being loaded
// along one chain of imports, so a file that (directly or transitively)
// imports itself is reported instead of recursing forever. It is shared
// by every dialect-specific Loader derived from the same root Loader.
type importStack struct {
	paths []string
}

func (s *importStack) push(p string) error {
	for _, q := range s.paths {
		if q == p {
			return diag.Newf(diag.Parse, "Circular import: %s", p)
		}
	}
	s.paths = append(s.paths, p)
	return nil
}

func (s *importStack) pop() {
	s.paths = s.paths[:len(s.paths)-1]
}

// Loader is a [parser.Loader] bound to a specific dialect's native and
// foreign extension tables, matching how the original parser classes
// each carried their own static native_extension/subparser_classes.
type Loader struct {
	dialect parser.Dialect
	stack   *importStack
}

// NewLoader returns a Loader for a top-level parse under the given
// dialect. Use one Loader instance (not a fresh one) for nested
// [parser.ParseModuleAs] calls made on its behalf so that import-cycle
// detection sees the whole chain.
func NewLoader(d parser.Dialect) *Loader {
	return &Loader{dialect: d, stack: &importStack{}}
}

// forDialect returns a sibling Loader for a different dialect that
// shares this Loader's cycle-detection stack, used when resolving an
// import to a foreign extension (e.g. a Combined-dialect file importing
// a .jxsd file).
func (l *Loader) forDialect(d parser.Dialect) *Loader {
	return &Loader{dialect: d, stack: l.stack}
}

// Load implements [parser.Loader].
func (l *Loader) Load(path, baseDir string) (*value.Module, error) {
	resolved := path
	if strings.HasPrefix(path, "./") {
		resolved = filepath.Join(baseDir, path[2:])
	}

	ext := filepath.Ext(resolved)
	native, foreign := parser.DialectConfig(l.dialect)
	sub, ok := parser.ResolveExtension(l.dialect, native, foreign, ext)
	if !ok {
		return nil, diag.Newf(diag.Parse, "Unknown file extension: %s", ext)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return nil, diag.Newf(diag.Parse, "cannot resolve import path %s: %v", path, err)
	}
	if err := l.stack.push(abs); err != nil {
		return nil, err
	}
	defer l.stack.pop()

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, diag.Newf(diag.Parse, "cannot read %s: %v", resolved, err)
	}

	subLoader := l.forDialect(sub)
	return parser.ParseModuleAs(string(data), sub, subLoader, filepath.Dir(resolved))
}

// LoadFile reads and parses the file at path from scratch, as the
// top-level entry point into a module graph (as opposed to Load, which
// resolves an import statement found partway through one).
func LoadFile(path string, dialect parser.Dialect) (*value.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Newf(diag.Parse, "cannot read %s: %v", path, err)
	}
	loader := NewLoader(dialect)
	return parser.ParseModuleAs(string(data), dialect, loader, filepath.Dir(path))
}

// DialectForExtension maps a file's own extension to the dialect that
// should parse it when entering fresh (not via an import), per section
// 6.2/4.7: .jxon and unrecognized extensions use JXON, .jxsd uses JXSD,
// and .xml/.json use the Combined dialect so they may still carry
// imports and variable bindings.
func DialectForExtension(path string) parser.Dialect {
	switch filepath.Ext(path) {
	case ".jxsd":
		return parser.JXSD
	case ".xml", ".json":
		return parser.Combined
	default:
		return parser.JXON
	}
}
