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

package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/cstuartroe/jxon/module"
	"github.com/cstuartroe/jxon/parser"
	"github.com/cstuartroe/jxon/schema"
	"github.com/cstuartroe/jxon/value"
)

func parseValue(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := parser.ParseValue(src, nil, "")
	qt.Assert(t, qt.IsNil(err))
	return v
}

func TestParseValueArray(t *testing.T) {
	got := parseValue(t, "[1, 2, 3]")
	want := value.Array{value.NewInt(1), value.NewInt(2), value.NewInt(3)}
	qt.Assert(t, qt.IsTrue(value.Equal(got, want)))
}

func TestParseValueObject(t *testing.T) {
	got := parseValue(t, `{"a": true, "b": null}`)
	obj, ok := got.(value.Object)
	qt.Assert(t, qt.IsTrue(ok))

	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}

	a, _ := obj.Get("a")
	b, _ := obj.Get("b")
	qt.Assert(t, qt.Equals(a, value.Bool(true)))

	_, isNull := b.(value.Null)
	qt.Assert(t, qt.IsTrue(isNull))
}

func TestParseValueXML(t *testing.T) {
	got := parseValue(t, `<p class="x">hi<b>bold</b>!</p>`)
	xml, ok := got.(value.Xml)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(xml.Tag, "p"))

	cls, _ := xml.Attrs.Get("class")
	qt.Assert(t, qt.Equals(cls, "x"))
	qt.Assert(t, qt.Not(qt.IsNil(xml.Text)))
	qt.Assert(t, qt.Equals(*xml.Text, "hi"))
	qt.Assert(t, qt.HasLen(xml.Children, 1))

	child := xml.Children[0]
	qt.Assert(t, qt.Equals(child.Tag, "b"))
	qt.Assert(t, qt.Not(qt.IsNil(child.Text)))
	qt.Assert(t, qt.Equals(*child.Text, "bold"))
	qt.Assert(t, qt.Not(qt.IsNil(child.Tail)))
	qt.Assert(t, qt.Equals(*child.Tail, "!"))
}

func TestInferSchemaList(t *testing.T) {
	arr := value.Array{value.NewInt(1), value.NewInt(2)}
	got, err := schema.Infer(arr)
	qt.Assert(t, qt.IsNil(err))

	want := value.NewList(value.TSimple{Kind: value.SimpleInteger})
	qt.Assert(t, qt.IsTrue(value.SchemaEqual(got, want)))
}

func TestParseSchemaEnum(t *testing.T) {
	v, err := parser.ParseSchema(`Enum("a", "b")`, nil, "")
	qt.Assert(t, qt.IsNil(err))

	sv, ok := v.(value.Schema)
	qt.Assert(t, qt.IsTrue(ok))

	ok1, err := schema.Validate(sv.Type, value.Str("a"), false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(ok1))

	ok2, err := schema.Validate(sv.Type, value.Str("c"), false)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(ok2))
}

func TestParseValueDuplicateKey(t *testing.T) {
	_, err := parser.ParseValue(`{"x": 1, "x": 2}`, nil, "")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	qt.Assert(t, qt.StringContains(err.Error(), "Repeat key: 'x'"))
}

func TestModuleImport(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "m.jxon"), []byte("export default 42;"), 0o644)
	qt.Assert(t, qt.IsNil(err))

	importer := `import n from "./m.jxon"; n`

	loader := module.NewLoader(parser.JXON)
	got, err := parser.ParseValue(importer, loader, dir)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(value.Equal(got, value.NewInt(42))))
}

func TestModuleImportCircular(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.jxon")
	bPath := filepath.Join(dir, "b.jxon")
	qt.Assert(t, qt.IsNil(os.WriteFile(aPath, []byte(`import x from "./b.jxon"; x`), 0o644)))
	qt.Assert(t, qt.IsNil(os.WriteFile(bPath, []byte(`import x from "./a.jxon"; x`), 0o644)))

	loader := module.NewLoader(parser.JXON)
	data, err := os.ReadFile(aPath)
	qt.Assert(t, qt.IsNil(err))

	_, err = parser.ParseModule(string(data), loader, dir)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	qt.Assert(t, qt.StringContains(err.Error(), "Circular import"))
}

func TestParseCombinedForeignExtensions(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "s.jxsd"), []byte("Integer"), 0o644)
	qt.Assert(t, qt.IsNil(err))

	src := `import t from "./s.jxsd";
x: t = 3
3`

	loader := module.NewLoader(parser.Combined)
	_, err = parser.ParseCombined(src, loader, dir)
	qt.Assert(t, qt.IsNil(err))
}

func TestTypeAnnotationMismatchCaretsColon(t *testing.T) {
	_, err := parser.ParseValue(`x: Integer = "bad"; x`, nil, "")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	qt.Assert(t, qt.StringContains(err.Error(), "Type does not match annotation"))
	qt.Assert(t, qt.StringContains(err.Error(), "(line 1, col 2)"))
}

func TestVariableRebindRejected(t *testing.T) {
	_, err := parser.ParseValue("Integer = 3; 3", nil, "")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	qt.Assert(t, qt.StringContains(err.Error(), "Variable name already set"))
}
