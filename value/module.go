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

package value

import "github.com/cstuartroe/jxon/internal/diag"

// simpleTypeKeywords are the five reserved bindings every module's scope
// is seeded with before any user code is read.
var simpleTypeKeywords = []struct {
	Name string
	Kind SimpleKind
}{
	{"Integer", SimpleInteger},
	{"Float", SimpleFloat},
	{"String", SimpleString},
	{"Boolean", SimpleBoolean},
	{"XML", SimpleXML},
}

// Module is a parsed file: a default export plus a set of named exports.
// A Module may be wrapped in a [ModuleValue] to serve as a namespace for
// dotted (a.b.c) variable resolution.
type Module struct {
	DefaultExport Value
	Exports       *OrderedMap[Value]

	// scope accumulates every binding visible while parsing this module
	// (the five keywords, then imports, then variable bindings). It is
	// what dotted resolution actually walks; Exports is derived from it
	// once the file's export clauses (if any) are known.
	scope *OrderedMap[Value]
}

// NewModule returns a module whose scope is seeded with the five simple
// type keyword bindings, per the module lifecycle.
func NewModule() *Module {
	m := &Module{scope: NewOrderedMap[Value]()}
	for _, kw := range simpleTypeKeywords {
		m.scope.Set(kw.Name, Schema{TSimple{Kind: kw.Kind}})
	}
	m.Exports = m.scope
	return m
}

// Bind adds a new name to the module's scope, rejecting re-binding of an
// existing name (including the five reserved type keywords).
func (m *Module) Bind(name string, v Value) error {
	if m.scope.Has(name) {
		return diag.Newf(diag.Parse, "Variable name already set: '%s'", name)
	}
	m.scope.Set(name, v)
	return nil
}

// Resolve walks a dotted name chain (a.b.c) through this module's scope,
// requiring every non-final segment to resolve to a Module.
func (m *Module) Resolve(labels []string) (Value, error) {
	v, ok := m.scope.Get(labels[0])
	if !ok {
		return nil, diag.Newf(diag.VariableResolution, "Name not found: %s", labels[0])
	}
	if len(labels) == 1 {
		return v, nil
	}
	sub, ok := v.(ModuleValue)
	if !ok {
		return nil, diag.Newf(diag.VariableResolution, "Not a module: %s", labels[0])
	}
	return sub.Module.Resolve(labels[1:])
}

// SetNamedExports replaces Exports with exactly the given name/value
// pairs, in the order the names were collected. Called when the source
// file contains at least one `export <name>;` or `export {...};` clause.
func (m *Module) SetNamedExports(names []string) error {
	exports := NewOrderedMap[Value]()
	for _, name := range names {
		v, err := m.Resolve([]string{name})
		if err != nil {
			return err
		}
		exports.Set(name, v)
	}
	m.Exports = exports
	return nil
}
