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

package emit_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/cstuartroe/jxon/emit"
	"github.com/cstuartroe/jxon/parser"
	"github.com/cstuartroe/jxon/value"
)

func TestValueCompactRoundTrip(t *testing.T) {
	src := `{"a": [1, 2, 3], "b": "hi"}`
	v, err := parser.ParseValue(src, nil, "")
	qt.Assert(t, qt.IsNil(err))

	out, err := emit.Value(v, emit.Compact)
	qt.Assert(t, qt.IsNil(err))

	v2, err := parser.ParseValue(out, nil, "")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(value.Equal(v, v2)))
}

func TestValueIndentedSortKeys(t *testing.T) {
	obj := value.NewObject()
	obj.Set("b", value.NewInt(2))
	obj.Set("a", value.NewInt(1))

	out, err := emit.Value(obj, emit.Indented(2, true))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, "{\n  \"a\": 1,\n  \"b\": 2\n}"))
}

func TestEscapeStringOrdersBackslashFirst(t *testing.T) {
	got := emit.EscapeString(`a\"b`)
	qt.Assert(t, qt.Equals(got, `a\\\"b`))
}

func TestSchemaRoundTrip(t *testing.T) {
	src := `{"n": Integer, "tags": [String]}`
	v, err := parser.ParseSchema(src, nil, "")
	qt.Assert(t, qt.IsNil(err))

	sv := v.(value.Schema)
	out, err := emit.Schema(sv.Type, emit.Compact)
	qt.Assert(t, qt.IsNil(err))

	v2, err := parser.ParseSchema(out, nil, "")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(value.SchemaEqual(sv.Type, v2.(value.Schema).Type)))
}
