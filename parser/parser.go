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

// Package parser implements the recursive-descent grammar shared by the
// JXON, JXSD, and Combined dialects: module-aware parsing of imports,
// variable bindings, type annotations, exports, and dotted variable
// resolution, plus each dialect's own `grab_value` entry point.
//
// The three dialects share roughly 70% of their grammar. That shared
// grammar lives in this file and in core.go; each dialect supplies a
// grabValue function and a small set of flags (permitTypeAnnotation,
// nativeExtension, foreign extension routing) rather than subclassing.
package parser

import (
	"github.com/cstuartroe/jxon/internal/cursor"
	"github.com/cstuartroe/jxon/value"
)

// Dialect selects which grab_value grammar and extension-routing rules a
// parser uses.
type Dialect int

const (
	JXON Dialect = iota
	JXSD
	Combined
)

// Loader resolves an import path against a base directory into a parsed
// submodule, dispatching on the path's file extension to the appropriate
// dialect. It is implemented by package module; parser depends only on
// this interface so the two packages do not form an import cycle.
type Loader interface {
	Load(path, baseDir string) (*value.Module, error)
}

// grabValueFunc is the dialect hook invoked by grabElement.
type grabValueFunc func(p *parser) (value.Value, error)

type parser struct {
	cur     *cursor.Cursor
	mod     *value.Module
	loader  Loader
	baseDir string

	dialect              Dialect
	grabValue            grabValueFunc
	permitTypeAnnotation bool
	nativeExtension      string
	foreignExtensions    map[string]Dialect
}

func newParser(src string, dialect Dialect, loader Loader, baseDir string) *parser {
	p := &parser{
		cur:     cursor.New(src),
		mod:     value.NewModule(),
		loader:  loader,
		baseDir: baseDir,
		dialect: dialect,
	}
	switch dialect {
	case JXON:
		p.grabValue = jxonGrabValue
		p.permitTypeAnnotation = true
		p.nativeExtension = ".jxon"
	case JXSD:
		p.grabValue = jxsdGrabValue
		p.permitTypeAnnotation = false
		p.nativeExtension = ".jxsd"
	case Combined:
		p.grabValue = jxonGrabValue
		p.permitTypeAnnotation = true
		p.nativeExtension = ".jxon"
		p.foreignExtensions = map[string]Dialect{
			".jxsd": JXSD,
			".xml":  JXON,
			".json": JXON,
		}
	}
	return p
}

// ParseModuleAs parses src under the given dialect and returns the full
// parsed module (default export plus named exports), for use by a
// [Loader] implementation that needs more than just the default export.
func ParseModuleAs(src string, dialect Dialect, loader Loader, baseDir string) (*value.Module, error) {
	p := newParser(src, dialect, loader, baseDir)
	return p.parseAsModule()
}

// ParseValue parses a single top-level value using the JXON dialect and
// returns the parsed module's default export.
func ParseValue(src string, loader Loader, baseDir string) (value.Value, error) {
	mod, err := ParseModule(src, loader, baseDir)
	if err != nil {
		return nil, err
	}
	return mod.DefaultExport, nil
}

// ParseModule parses src with the full JXON module grammar.
func ParseModule(src string, loader Loader, baseDir string) (*value.Module, error) {
	return ParseModuleAs(src, JXON, loader, baseDir)
}

// ParseSchema parses src with the JXSD dialect and returns the parsed
// module's default export (expected to be a value.Schema).
func ParseSchema(src string, loader Loader, baseDir string) (value.Value, error) {
	mod, err := ParseModuleAs(src, JXSD, loader, baseDir)
	if err != nil {
		return nil, err
	}
	return mod.DefaultExport, nil
}

// ParseCombined parses src with the JXON grammar but extension-routed
// imports, and returns the parsed module's default export.
func ParseCombined(src string, loader Loader, baseDir string) (value.Value, error) {
	mod, err := ParseModuleAs(src, Combined, loader, baseDir)
	if err != nil {
		return nil, err
	}
	return mod.DefaultExport, nil
}

// DialectConfig reports the native extension and foreign-extension
// routing table a parser of dialect d is built with, so a [Loader]
// implementation can replicate resolve_subparser_class without
// duplicating the table in newParser.
func DialectConfig(d Dialect) (native string, foreign map[string]Dialect) {
	switch d {
	case JXON:
		return ".jxon", nil
	case JXSD:
		return ".jxsd", nil
	case Combined:
		return ".jxon", map[string]Dialect{
			".jxsd": JXSD,
			".xml":  JXON,
			".json": JXON,
		}
	}
	return "", nil
}

// ResolveExtension reports which dialect a parser configured as dialect d
// would use to load an imported file with the given extension, mirroring
// each dialect's subparser_classes table.
func ResolveExtension(d Dialect, native string, foreign map[string]Dialect, ext string) (Dialect, bool) {
	if ext == native {
		return d, true
	}
	if sub, ok := foreign[ext]; ok {
		return sub, true
	}
	return 0, false
}
