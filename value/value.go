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

// Package value implements the single tagged-union type that represents
// every JXON value, XML element, JXSD schema descriptor, and module
// namespace. Concrete variants are plain Go types dispatched via type
// switches rather than reflection; the unexported isValue method keeps
// the set of variants closed to this package.
package value

import (
	"github.com/cockroachdb/apd/v3"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindXML
	KindSchema
	KindModule
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	case KindXML:
		return "XML"
	case KindSchema:
		return "Schema"
	case KindModule:
		return "Module"
	default:
		return "Unknown"
	}
}

// Value is implemented by every member of the JXON value universe. The
// unexported method prevents types outside this package from claiming
// membership, so a type switch over Value is exhaustive by construction.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JXON null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) isValue()   {}

// Bool is a JXON boolean.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) isValue()   {}

// Int is an exact integer, represented with an arbitrary-precision
// decimal so that values outside the range of a machine int64 still
// round-trip exactly.
type Int struct {
	V apd.Decimal
}

func (Int) Kind() Kind { return KindInt }
func (Int) isValue()   {}

// NewInt builds an Int from a machine integer.
func NewInt(i int64) Int {
	var v Int
	v.V.SetInt64(i)
	return v
}

// NewIntString builds an Int by parsing a decimal digit string, as
// produced by the number lexer. The string must already be validated
// (optional '-', then digits only).
func NewIntString(s string) (Int, error) {
	var v Int
	_, _, err := v.V.SetString(s)
	return v, err
}

// Float is an IEEE-754 double.
type Float float64

func (Float) Kind() Kind { return KindFloat }
func (Float) isValue()   {}

// Str is UTF-8 text.
type Str string

func (Str) Kind() Kind { return KindString }
func (Str) isValue()   {}

// Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return KindArray }
func (Array) isValue()   {}

// Object is an insertion-ordered, duplicate-free string-keyed map.
type Object struct {
	*OrderedMap[Value]
}

func (Object) Kind() Kind { return KindObject }
func (Object) isValue()   {}

// NewObject returns an empty Object.
func NewObject() Object {
	return Object{NewOrderedMap[Value]()}
}

// Xml wraps an XML element tree.
type Xml struct {
	*Element
}

func (Xml) Kind() Kind { return KindXML }
func (Xml) isValue()   {}

// Schema wraps a JXSD schema descriptor.
type Schema struct {
	Type JXONType
}

func (Schema) Kind() Kind { return KindSchema }
func (Schema) isValue()   {}

// ModuleValue wraps a *Module so a module can serve as a namespace in
// dotted variable resolution (a.b.c).
type ModuleValue struct {
	*Module
}

func (ModuleValue) Kind() Kind { return KindModule }
func (ModuleValue) isValue()   {}
