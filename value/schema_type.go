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

// SimpleKind enumerates the five JXSD "simple" types.
type SimpleKind int

const (
	SimpleInteger SimpleKind = iota
	SimpleFloat
	SimpleString
	SimpleBoolean
	SimpleXML
)

// Keyword returns the reserved JXSD identifier for k (Integer, Float, ...).
func (k SimpleKind) Keyword() string {
	switch k {
	case SimpleInteger:
		return "Integer"
	case SimpleFloat:
		return "Float"
	case SimpleString:
		return "String"
	case SimpleBoolean:
		return "Boolean"
	case SimpleXML:
		return "XML"
	default:
		return "?"
	}
}

// JXONType is the schema-descriptor sum type consumed and produced by the
// schema engine. Like Value, it is implemented as a closed set of
// concrete types rather than via reflection.
type JXONType interface {
	isSchema()
}

// TSimple is one of the five simple scalar/xml types.
type TSimple struct {
	Kind SimpleKind
}

func (TSimple) isSchema() {}

// TList is the schema of a homogeneous list. Of is a pointer so that
// copies of a TList share the same element-schema cell: [schema.Validate]
// with fill_null mutates *Of in place, and every other TList value
// derived from the same parse (e.g. held by a TRecord field map) observes
// the fill. *Of is nil while the element schema is undetermined ("open"):
// for an empty list, or a list inferred from a null first element.
type TList struct {
	Of *JXONType
}

func (TList) isSchema() {}

// NewList returns a TList with its own element-schema cell holding of
// (which may be nil for an open list).
func NewList(of JXONType) TList {
	return TList{Of: &of}
}

// ElemType returns the list's current element schema, or nil if open.
func (t TList) ElemType() JXONType {
	if t.Of == nil {
		return nil
	}
	return *t.Of
}

// TRecord is the schema of an object with a fixed, required set of
// fields. A nil field schema means "field present but schema
// undetermined"; all declared keys are required on validation regardless.
type TRecord struct {
	Fields *OrderedMap[JXONType]
}

func (TRecord) isSchema() {}

// TEnum is a closed, non-empty, homogeneously-typed set of scalar values.
// Members preserves first-occurrence order for deterministic emission
// when not sorted; ScalarKind records which of Int/Float/Str the members
// share.
type TEnum struct {
	Members    []Value
	ScalarKind SimpleKind
}

func (TEnum) isSchema() {}

// NewEnum builds a TEnum from a parsed member list, rejecting empty or
// heterogeneous sets and deduplicating repeated members by value.
func NewEnum(members []Value) (TEnum, error) {
	if len(members) == 0 {
		return TEnum{}, diag.Newf(diag.SchemaValidity, "Enum must have at least one member")
	}

	var kind SimpleKind
	switch members[0].(type) {
	case Int:
		kind = SimpleInteger
	case Float:
		kind = SimpleFloat
	case Str:
		kind = SimpleString
	default:
		return TEnum{}, diag.Newf(diag.SchemaValidity, "Enum members can only be primitive types")
	}

	var out []Value
	for _, m := range members {
		mk, ok := kindOfScalar(m)
		if !ok || mk != kind {
			return TEnum{}, diag.Newf(diag.SchemaValidity, "Enum members can only be primitive types")
		}
		if !containsScalar(out, m) {
			out = append(out, m)
		}
	}

	return TEnum{Members: out, ScalarKind: kind}, nil
}

// kindOfScalar reports the SimpleKind of v if v is Int, Float, or Str,
// and false for any other dynamic type (Bool, Array, Object, Xml,
// ModuleValue, Schema, Null).
func kindOfScalar(v Value) (SimpleKind, bool) {
	switch v.(type) {
	case Int:
		return SimpleInteger, true
	case Float:
		return SimpleFloat, true
	case Str:
		return SimpleString, true
	default:
		return 0, false
	}
}

func containsScalar(members []Value, v Value) bool {
	for _, m := range members {
		if ScalarEqual(m, v) {
			return true
		}
	}
	return false
}

// ScalarEqual compares two Int/Float/Str values by exact value.
func ScalarEqual(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av.V.Cmp(&bv.V) == 0
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	default:
		return false
	}
}
