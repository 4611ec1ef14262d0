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

// Package schema implements the JXSD schema engine: inferring a schema
// from a value (Infer) and checking a value against a schema (Validate).
package schema

import (
	"github.com/cstuartroe/jxon/internal/diag"
	"github.com/cstuartroe/jxon/value"
)

// Infer derives a schema describing v, recursively. Arrays require every
// element to validate against the first element's inferred schema; an
// empty array yields an open TList(nil). Objects infer field-by-field,
// preserving declaration order. Values that are not representable as
// JXON data (Schema, Module) raise SchemaValidity.
func Infer(v value.Value) (value.JXONType, error) {
	switch x := v.(type) {
	case value.Null:
		return nil, nil
	case value.Bool:
		return value.TSimple{Kind: value.SimpleBoolean}, nil
	case value.Int:
		return value.TSimple{Kind: value.SimpleInteger}, nil
	case value.Float:
		return value.TSimple{Kind: value.SimpleFloat}, nil
	case value.Str:
		return value.TSimple{Kind: value.SimpleString}, nil
	case value.Xml:
		return value.TSimple{Kind: value.SimpleXML}, nil
	case value.Array:
		if len(x) == 0 {
			return value.NewList(nil), nil
		}
		elemType, err := Infer(x[0])
		if err != nil {
			return nil, err
		}
		for _, e := range x {
			ok, err := Validate(elemType, e, false)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, diag.Newf(diag.SchemaValidity, "Inconsistent list element type")
			}
		}
		return value.NewList(elemType), nil
	case value.Object:
		fields := value.NewOrderedMap[value.JXONType]()
		for _, k := range x.Keys() {
			fv, _ := x.Get(k)
			ft, err := Infer(fv)
			if err != nil {
				return nil, err
			}
			fields.Set(k, ft)
		}
		return value.TRecord{Fields: fields}, nil
	default:
		return nil, diag.Newf(diag.SchemaValidity, "Not parseable as JXON type: %s", v.Kind())
	}
}

// HasConsistentSchema reports whether Infer succeeds for v, swallowing
// the SchemaValidity error into a plain bool.
func HasConsistentSchema(v value.Value) bool {
	_, err := Infer(v)
	return err == nil
}

// Validate reports whether v structurally matches schema t. Null matches
// any schema. When fillNull is true, an undetermined TList element
// schema or TRecord field schema is inferred from v and written back
// into t in place; a subsequent call with fillNull=false against the
// same (now-filled) t returns the same result as the filling call did.
func Validate(t value.JXONType, v value.Value, fillNull bool) (bool, error) {
	if _, ok := v.(value.Null); ok {
		return true, nil
	}
	if t == nil {
		// An undetermined (nil) schema, such as the element schema
		// inferred from a list whose first element is null, accepts
		// anything.
		return true, nil
	}

	switch s := t.(type) {
	case value.TSimple:
		switch s.Kind {
		case value.SimpleInteger:
			_, ok := v.(value.Int)
			return ok, nil
		case value.SimpleFloat:
			_, ok := v.(value.Float)
			return ok, nil
		case value.SimpleString:
			_, ok := v.(value.Str)
			return ok, nil
		case value.SimpleBoolean:
			_, ok := v.(value.Bool)
			return ok, nil
		case value.SimpleXML:
			_, ok := v.(value.Xml)
			return ok, nil
		}
		return false, nil

	case value.TList:
		arr, ok := v.(value.Array)
		if !ok {
			return false, nil
		}
		elem := s.ElemType()
		if elem == nil {
			if !fillNull || len(arr) == 0 {
				return true, nil
			}
			of, err := Infer(arr[0])
			if err != nil {
				return false, err
			}
			*s.Of = of
			elem = of
		}
		for _, e := range arr {
			ok, err := Validate(elem, e, fillNull)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case value.TRecord:
		obj, ok := v.(value.Object)
		if !ok {
			return false, nil
		}
		if obj.Len() != s.Fields.Len() {
			return false, nil
		}
		for _, k := range s.Fields.Keys() {
			fv, present := obj.Get(k)
			if !present {
				return false, nil
			}
			ft, _ := s.Fields.Get(k)
			if ft == nil {
				if fillNull {
					inferred, err := Infer(fv)
					if err != nil {
						return false, err
					}
					s.Fields.Set(k, inferred)
				}
				continue
			}
			ok, err := Validate(ft, fv, fillNull)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case value.TEnum:
		for _, m := range s.Members {
			if value.ScalarEqual(m, v) {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, diag.Newf(diag.SchemaValidity, "not a schema: %T", t)
	}
}
