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

package schema_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/cstuartroe/jxon/schema"
	"github.com/cstuartroe/jxon/value"
)

func TestInferRecord(t *testing.T) {
	obj := value.NewObject()
	obj.Set("n", value.NewInt(1))
	obj.Set("s", value.Str("hi"))

	got, err := schema.Infer(obj)
	qt.Assert(t, qt.IsNil(err))

	rec, ok := got.(value.TRecord)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(rec.Fields.Len(), 2))
}

func TestValidateFillNullList(t *testing.T) {
	open := value.NewList(nil)
	arr := value.Array{value.NewInt(1), value.NewInt(2)}

	ok, err := schema.Validate(open, arr, true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Not(qt.IsNil(open.ElemType())))

	_, isInt := open.ElemType().(value.TSimple)
	qt.Assert(t, qt.IsTrue(isInt))

	// A later call against a mismatched value must fail without fillNull
	// mutating anything further.
	ok, err = schema.Validate(open, value.Array{value.Str("x")}, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestValidateFillNullRecord(t *testing.T) {
	fields := value.NewOrderedMap[value.JXONType]()
	fields.Set("a", nil)
	rec := value.TRecord{Fields: fields}

	obj := value.NewObject()
	obj.Set("a", value.Bool(true))

	ok, err := schema.Validate(rec, obj, true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(ok))

	filled, _ := rec.Fields.Get("a")
	_, isBool := filled.(value.TSimple)
	qt.Assert(t, qt.IsTrue(isBool))
}

func TestValidateNullMatchesAnySchema(t *testing.T) {
	ok, err := schema.Validate(value.TSimple{Kind: value.SimpleInteger}, value.Null{}, false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(ok))
}

func TestHasConsistentSchemaRejectsHeterogeneousArray(t *testing.T) {
	arr := value.Array{value.NewInt(1), value.Str("x")}
	qt.Assert(t, qt.IsFalse(schema.HasConsistentSchema(arr)))
}

func TestNewEnumRejectsEmptyAndHeterogeneous(t *testing.T) {
	_, err := value.NewEnum(nil)
	qt.Assert(t, qt.Not(qt.IsNil(err)))

	_, err = value.NewEnum([]value.Value{value.NewInt(1), value.Str("x")})
	qt.Assert(t, qt.Not(qt.IsNil(err)))

	_, err = value.NewEnum([]value.Value{value.Str("a"), value.NewObject()})
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestNewEnumDeduplicates(t *testing.T) {
	e, err := value.NewEnum([]value.Value{value.Str("a"), value.Str("a"), value.Str("b")})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(e.Members, 2))
}
