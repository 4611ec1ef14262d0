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
	"github.com/cstuartroe/jxon/value"
)

// jxsdGrabValue dispatches on the leading character to parse a single
// schema expression: a record ({...}), a homogeneous list ([T]), an
// Enum(...) literal, a simple-type keyword, or a dotted reference to a
// variable bound to a schema.
func jxsdGrabValue(p *parser) (value.Value, error) {
	next, err := p.cur.Next(1, true)
	if err != nil {
		return nil, err
	}

	switch {
	case next == "{":
		return jxsdGrabRecord(p)
	case next == "[":
		return jxsdGrabList(p)
	}

	four, err := p.cur.Next(4, true)
	if err != nil {
		return nil, err
	}
	if four == "Enum" {
		return jxsdGrabEnum(p)
	}

	if lex.IsLabelStart(next) {
		return p.resolveVariable()
	}

	return nil, p.cur.Throw("Unknown expression type", nil)
}

// jxsdGrabRecord parses `{ "key": <schema> (',' "key": <schema>)* }` by
// delegating to the shared grabObject (whose member values, under the
// JXSD dialect, are themselves value.Schema) and repackaging the result
// as a TRecord.
func jxsdGrabRecord(p *parser) (value.Value, error) {
	obj, err := p.grabObject()
	if err != nil {
		return nil, err
	}
	fields := value.NewOrderedMap[value.JXONType]()
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		sv, ok := v.(value.Schema)
		if !ok {
			return nil, p.cur.Throw("Record field must be a schema", nil)
		}
		fields.Set(k, sv.Type)
	}
	return value.Schema{Type: value.TRecord{Fields: fields}}, nil
}

func jxsdGrabList(p *parser) (value.Value, error) {
	if err := p.cur.Expect("["); err != nil {
		return nil, err
	}
	elem, err := p.grabElement()
	if err != nil {
		return nil, err
	}
	sv, ok := elem.(value.Schema)
	if !ok {
		return nil, p.cur.Throw("List element must be a schema", nil)
	}
	if err := p.cur.Expect("]"); err != nil {
		return nil, err
	}
	return value.Schema{Type: value.NewList(sv.Type)}, nil
}

// jxsdGrabEnum parses `Enum(<elements>)`, where the comma-separated
// member list is parsed with the JXON dialect's grammar on the very same
// cursor, mirroring the source's trick of handing the cursor to a
// throwaway JXONParser instance for just this production.
func jxsdGrabEnum(p *parser) (value.Value, error) {
	if err := p.cur.Expect("Enum"); err != nil {
		return nil, err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return nil, err
	}
	if err := p.cur.Expect("("); err != nil {
		return nil, err
	}

	saved := p.grabValue
	p.grabValue = jxonGrabValue
	members, err := p.grabElements()
	p.grabValue = saved
	if err != nil {
		return nil, err
	}

	if err := p.cur.Expect(")"); err != nil {
		return nil, err
	}

	enum, err := value.NewEnum(members)
	if err != nil {
		return nil, err
	}
	return value.Schema{Type: enum}, nil
}
