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

// Equal reports whether a and b are structurally equal: scalars by
// value, arrays/objects recursively by position/key, and XML elements by
// tag, attributes (order-insensitive), text, tail, and children in
// order. Schemas compare structurally via [SchemaEqual]; Modules compare
// equal only when they are the identical pointer.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Int:
		bv := b.(Int)
		return av.V.Cmp(&bv.V) == 0
	case Float:
		return av == b.(Float)
	case Str:
		return av == b.(Str)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv := b.(Object)
		if av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			bval, ok := bv.Get(k)
			if !ok {
				return false
			}
			aval, _ := av.Get(k)
			if !Equal(aval, bval) {
				return false
			}
		}
		return true
	case Xml:
		bv := b.(Xml)
		return elementsEqual(av.Element, bv.Element)
	case ModuleValue:
		bv := b.(ModuleValue)
		return av.Module == bv.Module
	case Schema:
		bv := b.(Schema)
		return SchemaEqual(av.Type, bv.Type)
	default:
		return false
	}
}

func elementsEqual(a, b *Element) bool {
	if a.Tag != b.Tag {
		return false
	}
	if a.Attrs.Len() != b.Attrs.Len() {
		return false
	}
	for _, k := range a.Attrs.Keys() {
		av, _ := a.Attrs.Get(k)
		bv, ok := b.Attrs.Get(k)
		if !ok || av != bv {
			return false
		}
	}
	if !optStrEqual(a.Text, b.Text) || !optStrEqual(a.Tail, b.Tail) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !elementsEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func optStrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// SchemaEqual reports whether two schema descriptors are structurally
// equal. TRecord field order does not affect equality here; callers that
// need order-sensitivity (the "sort_keys=true" round-trip property)
// should compare field key order separately.
func SchemaEqual(a, b JXONType) bool {
	switch av := a.(type) {
	case TSimple:
		bv, ok := b.(TSimple)
		return ok && av.Kind == bv.Kind
	case TList:
		bv, ok := b.(TList)
		if !ok {
			return false
		}
		ae, be := av.ElemType(), bv.ElemType()
		if ae == nil || be == nil {
			return ae == nil && be == nil
		}
		return SchemaEqual(ae, be)
	case TRecord:
		bv, ok := b.(TRecord)
		if !ok || av.Fields.Len() != bv.Fields.Len() {
			return false
		}
		for _, k := range av.Fields.Keys() {
			afield, _ := av.Fields.Get(k)
			bfield, ok := bv.Fields.Get(k)
			if !ok {
				return false
			}
			if afield == nil || bfield == nil {
				if afield != nil || bfield != nil {
					return false
				}
				continue
			}
			if !SchemaEqual(afield, bfield) {
				return false
			}
		}
		return true
	case TEnum:
		bv, ok := b.(TEnum)
		if !ok || av.ScalarKind != bv.ScalarKind || len(av.Members) != len(bv.Members) {
			return false
		}
		for _, m := range av.Members {
			if !containsScalar(bv.Members, m) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
