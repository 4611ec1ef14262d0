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

package parser

import (
	"github.com/cstuartroe/jxon/internal/lex"
	"github.com/cstuartroe/jxon/schema"
	"github.com/cstuartroe/jxon/value"
)

// parseAsModule consumes, in order: whitespace, an import block, a
// variable-binding block, an optional default-export expression, and an
// export block. Any of these may be empty; EOF is legal after any stage.
func (p *parser) parseAsModule() (*value.Module, error) {
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return nil, err
	}
	if err := p.readImports(); err != nil {
		return nil, err
	}
	if err := p.readVariables(); err != nil {
		return nil, err
	}

	if !p.cur.EOF() {
		next6, err := p.cur.Next(6, true)
		if err != nil {
			return nil, err
		}
		if next6 != "export" {
			v, err := p.grabElement()
			if err != nil {
				return nil, err
			}
			p.mod.DefaultExport = v
		}
	}

	if !p.cur.EOF() {
		if err := p.readExports(); err != nil {
			return nil, err
		}
	}

	return p.mod, nil
}

// readImports consumes zero or more `import <clause> from "<path>";`
// statements.
func (p *parser) readImports() error {
	for {
		kw, err := p.cur.Next(6, true)
		if err != nil {
			return err
		}
		if kw != "import" {
			return nil
		}
		p.cur.Advance(6)
		if err := p.cur.Expect(" "); err != nil {
			return err
		}
		if err := lex.SkipWhitespace(p.cur); err != nil {
			return err
		}

		var defaultExportLabel, moduleLabel string
		var moduleImports []string

		next, err := p.cur.Next(1, true)
		if err != nil {
			return err
		}
		if lex.IsLabelStart(next) {
			defaultExportLabel, err = lex.GrabLabel(p.cur)
			if err != nil {
				return err
			}
			if err := lex.SkipWhitespace(p.cur); err != nil {
				return err
			}
		}

		next, err = p.cur.Next(1, true)
		if err != nil {
			return err
		}
		if defaultExportLabel == "" || next == "," {
			if next == "," {
				p.cur.Advance(1)
				if err := lex.SkipWhitespace(p.cur); err != nil {
					return err
				}
			}

			next, err = p.cur.Next(1, true)
			if err != nil {
				return err
			}
			if next == "*" {
				p.cur.Advance(1)
				if err := p.expectWhitespace(); err != nil {
					return err
				}
				if err := p.cur.Expect("as"); err != nil {
					return err
				}
				if err := p.expectWhitespace(); err != nil {
					return err
				}
				moduleLabel, err = lex.GrabLabel(p.cur)
				if err != nil {
					return err
				}
				if moduleLabel == "" {
					return p.cur.Throw("Must specify a name to give module", nil)
				}
			} else {
				if err := p.cur.Expect("{"); err != nil {
					return err
				}
				if err := lex.SkipWhitespace(p.cur); err != nil {
					return err
				}
				moduleImports, err = p.grabLabels()
				if err != nil {
					return err
				}
				if err := lex.SkipWhitespace(p.cur); err != nil {
					return err
				}
				if err := p.cur.Expect("}"); err != nil {
					return err
				}
			}
			if err := lex.SkipWhitespace(p.cur); err != nil {
				return err
			}
		}

		if err := p.cur.Expect("from"); err != nil {
			return err
		}
		if err := p.expectWhitespace(); err != nil {
			return err
		}

		filepath, err := lex.GrabString(p.cur, false)
		if err != nil {
			return err
		}
		submodule, err := p.loadSubmodule(filepath)
		if err != nil {
			return err
		}

		if defaultExportLabel != "" {
			if submodule.DefaultExport == nil {
				return p.cur.Throw("Module "+filepath+" has no default export", nil)
			}
			if err := p.mod.Bind(defaultExportLabel, submodule.DefaultExport); err != nil {
				return err
			}
		}
		if moduleLabel != "" {
			if err := p.mod.Bind(moduleLabel, value.ModuleValue{Module: submodule}); err != nil {
				return err
			}
		}
		for _, label := range moduleImports {
			v, ok := submodule.Exports.Get(label)
			if !ok {
				return p.cur.Throw("Module "+filepath+" has no export called "+label, nil)
			}
			if err := p.mod.Bind(label, v); err != nil {
				return err
			}
		}

		if err := p.cur.Expect(";"); err != nil {
			return err
		}
		if err := p.expectWhitespace(); err != nil {
			return err
		}
	}
}

// loadSubmodule resolves and parses the file at filepath (relative to
// p.baseDir per the Loader's own rules) via the injected Loader.
func (p *parser) loadSubmodule(filepath string) (*value.Module, error) {
	if p.loader == nil {
		return nil, p.cur.Throw("Imports are not supported in this context", nil)
	}
	return p.loader.Load(filepath, p.baseDir)
}

// expectWhitespace requires at least one whitespace character (or EOL/EOF)
// before consuming any further run of whitespace/comments.
func (p *parser) expectWhitespace() error {
	if !p.cur.EOL() && !p.cur.EOF() {
		next, err := p.cur.Next(1, true)
		if err != nil {
			return err
		}
		if next != " " && next != "\t" && next != "\r" {
			return p.cur.Throw("Expected whitespace", nil)
		}
	}
	return lex.SkipWhitespace(p.cur)
}

// readVariables consumes zero or more `label (: type)? = element` bindings.
func (p *parser) readVariables() error {
	for !p.cur.EOF() {
		next, err := p.cur.Next(1, true)
		if err != nil {
			return err
		}
		if !lex.IsLabelStart(next) {
			return nil
		}

		bp := p.cur.Breakpoint()
		label, err := lex.GrabLabel(p.cur)
		if err != nil {
			return err
		}
		if label == "export" {
			p.cur.Jump(bp)
			return nil
		}

		if err := lex.SkipWhitespace(p.cur); err != nil {
			return err
		}

		var typeExpr value.JXONType
		colon, err := p.cur.Next(1, true)
		if err != nil {
			return err
		}
		if colon != ":" && colon != "=" {
			// Not a binding: the label starts the default-export element.
			p.cur.Jump(bp)
			return nil
		}
		annotationBP := p.cur.Breakpoint()
		if colon == ":" {
			if !p.permitTypeAnnotation {
				return p.cur.Throw("Cannot provide type annotations in JXSD", nil)
			}
			p.cur.Advance(1)
			if err := lex.SkipWhitespace(p.cur); err != nil {
				return err
			}
			typeVal, err := p.resolveVariable()
			if err != nil {
				return err
			}
			sv, ok := typeVal.(value.Schema)
			if !ok {
				return p.cur.Throw("Type annotation must resolve to a schema", &annotationBP)
			}
			typeExpr = sv.Type
			if err := lex.SkipWhitespace(p.cur); err != nil {
				return err
			}
		}

		if err := p.cur.Expect("="); err != nil {
			return err
		}
		v, err := p.grabElement()
		if err != nil {
			return err
		}
		if typeExpr != nil {
			ok, err := schema.Validate(typeExpr, v, false)
			if err != nil {
				return err
			}
			if !ok {
				return p.cur.Throw("Type does not match annotation", &annotationBP)
			}
		}

		if err := p.mod.Bind(label, v); err != nil {
			return err
		}
	}
	return nil
}

// resolveVariable parses a dotted name chain (a.b.c), or an inline
// import (import("path")), and resolves it against the current module.
func (p *parser) resolveVariable() (value.Value, error) {
	label, err := lex.GrabLabel(p.cur)
	if err != nil {
		return nil, err
	}
	if label == "import" {
		return p.grabInlineImport()
	}

	labels := []string{label}
	for {
		next, err := p.cur.Next(1, true)
		if err != nil {
			return nil, err
		}
		if next != "." {
			break
		}
		p.cur.Advance(1)
		seg, err := lex.GrabLabel(p.cur)
		if err != nil {
			return nil, err
		}
		labels = append(labels, seg)
	}

	return p.mod.Resolve(labels)
}

func (p *parser) grabInlineImport() (value.Value, error) {
	if err := p.cur.Expect("("); err != nil {
		return nil, err
	}
	filepath, err := lex.GrabString(p.cur, false)
	if err != nil {
		return nil, err
	}
	if err := p.cur.Expect(")"); err != nil {
		return nil, err
	}
	submodule, err := p.loadSubmodule(filepath)
	if err != nil {
		return nil, err
	}
	return submodule.DefaultExport, nil
}

// readExports consumes zero or more `export <clause>;` statements.
func (p *parser) readExports() error {
	var names []string
	var defaultExport value.Value
	haveDefault := false

	for {
		kw, err := p.cur.Next(6, true)
		if err != nil {
			return err
		}
		if kw != "export" {
			break
		}
		p.cur.Advance(6)
		if err := p.expectWhitespace(); err != nil {
			return err
		}

		kw7, err := p.cur.Next(7, true)
		if err != nil {
			return err
		}
		switch {
		case kw7 == "default":
			p.cur.Advance(7)
			if err := p.expectWhitespace(); err != nil {
				return err
			}
			defaultExport, err = p.grabElement()
			if err != nil {
				return err
			}
			haveDefault = true

		default:
			next, err := p.cur.Next(1, true)
			if err != nil {
				return err
			}
			if lex.IsLabelStart(next) {
				label, err := lex.GrabLabel(p.cur)
				if err != nil {
					return err
				}
				names = append(names, label)
			} else {
				if err := p.cur.Expect("{"); err != nil {
					return err
				}
				if err := lex.SkipWhitespace(p.cur); err != nil {
					return err
				}
				labels, err := p.grabLabels()
				if err != nil {
					return err
				}
				names = append(names, labels...)
				if err := p.cur.Expect("}"); err != nil {
					return err
				}
			}
		}

		if err := lex.SkipWhitespace(p.cur); err != nil {
			return err
		}
		if err := p.cur.Expect(";"); err != nil {
			return err
		}
		if err := lex.SkipWhitespace(p.cur); err != nil {
			return err
		}
	}

	if haveDefault {
		p.mod.DefaultExport = defaultExport
	}
	if len(names) > 0 {
		if err := p.mod.SetNamedExports(names); err != nil {
			return err
		}
	}
	return nil
}

// grabElement parses one value, trimming surrounding whitespace.
func (p *parser) grabElement() (value.Value, error) {
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return nil, err
	}
	v, err := p.grabValue(p)
	if err != nil {
		return nil, err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return nil, err
	}
	return v, nil
}

// grabElements parses a comma-separated, non-empty list of elements (no
// trailing comma). Used by array literals and by Enum(...) member lists.
func (p *parser) grabElements() ([]value.Value, error) {
	var out []value.Value
	for {
		v, err := p.grabElement()
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		next, err := p.cur.Next(1, true)
		if err != nil {
			return nil, err
		}
		if next != "," {
			return out, nil
		}
		p.cur.Advance(1)
	}
}

// grabObject parses `{ member (',' member)* }`, rejecting duplicate keys
// and trailing commas. Shared by the JXON dialect (object values) and
// the JXSD dialect (record schemas, whose member values happen to be
// Schema-wrapped).
func (p *parser) grabObject() (value.Object, error) {
	if err := p.cur.Expect("{"); err != nil {
		return value.Object{}, err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return value.Object{}, err
	}

	obj := value.NewObject()
	next, err := p.cur.Next(1, true)
	if err != nil {
		return value.Object{}, err
	}
	if next == "}" {
		p.cur.Advance(1)
		return obj, nil
	}

	for {
		key, v, err := p.grabMember()
		if err != nil {
			return value.Object{}, err
		}
		if obj.Set(key, v) {
			return value.Object{}, p.cur.Throw("Repeat key: '"+key+"'", nil)
		}

		next, err := p.cur.Next(1, true)
		if err != nil {
			return value.Object{}, err
		}
		if next != "," {
			break
		}
		p.cur.Advance(1)
	}

	if err := p.cur.Expect("}"); err != nil {
		return value.Object{}, err
	}
	return obj, nil
}

func (p *parser) grabMember() (string, value.Value, error) {
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return "", nil, err
	}
	key, err := lex.GrabString(p.cur, false)
	if err != nil {
		return "", nil, err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return "", nil, err
	}
	if err := p.cur.Expect(":"); err != nil {
		return "", nil, err
	}
	v, err := p.grabElement()
	if err != nil {
		return "", nil, err
	}
	return key, v, nil
}

// grabLabels parses a non-empty, comma-separated list of labels, as used
// by `{a, b, c}` import/export clauses.
func (p *parser) grabLabels() ([]string, error) {
	var out []string
	for {
		label, err := lex.GrabLabel(p.cur)
		if err != nil {
			return nil, err
		}
		if label == "" {
			return nil, p.cur.Throw("Expected label", nil)
		}
		out = append(out, label)

		if err := lex.SkipWhitespace(p.cur); err != nil {
			return nil, err
		}
		next, err := p.cur.Next(1, true)
		if err != nil {
			return nil, err
		}
		if next != "," {
			return out, nil
		}
		p.cur.Advance(1)
		if err := lex.SkipWhitespace(p.cur); err != nil {
			return nil, err
		}
	}
}
