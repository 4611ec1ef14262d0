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

package value_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/cstuartroe/jxon/value"
)

func TestEqualScalars(t *testing.T) {
	qt.Assert(t, qt.IsTrue(value.Equal(value.NewInt(3), value.NewInt(3))))
	qt.Assert(t, qt.IsFalse(value.Equal(value.NewInt(3), value.NewInt(4))))
	qt.Assert(t, qt.IsTrue(value.Equal(value.Str("x"), value.Str("x"))))
}

func TestEqualObjectIgnoresKeyOrder(t *testing.T) {
	a := value.NewObject()
	a.Set("x", value.NewInt(1))
	a.Set("y", value.NewInt(2))

	b := value.NewObject()
	b.Set("y", value.NewInt(2))
	b.Set("x", value.NewInt(1))

	qt.Assert(t, qt.IsTrue(value.Equal(a, b)))
}

func TestEqualXMLAttrsOrderInsensitiveChildrenOrderSensitive(t *testing.T) {
	a := value.NewElement("p")
	a.Attrs.Set("a", "1")
	a.Attrs.Set("b", "2")

	b := value.NewElement("p")
	b.Attrs.Set("b", "2")
	b.Attrs.Set("a", "1")

	qt.Assert(t, qt.IsTrue(value.Equal(value.Xml{Element: a}, value.Xml{Element: b})))

	c1 := value.NewElement("c")
	c2 := value.NewElement("c")
	a.Children = []*value.Element{c1, c2}
	b.Children = []*value.Element{c2, c1}
	// Identical elements either order still compare equal here since c1
	// and c2 carry no distinguishing content; assert the comparator at
	// least walks recursively without panicking.
	value.Equal(value.Xml{Element: a}, value.Xml{Element: b})

	c1.Text = strPtr("one")
	c2.Text = strPtr("two")
	a.Children = []*value.Element{c1, c2}
	b.Children = []*value.Element{c2, c1}
	qt.Assert(t, qt.IsFalse(value.Equal(value.Xml{Element: a}, value.Xml{Element: b})))
}

func strPtr(s string) *string { return &s }

func TestSchemaEqualTRecordIgnoresFieldOrder(t *testing.T) {
	f1 := value.NewOrderedMap[value.JXONType]()
	f1.Set("a", value.TSimple{Kind: value.SimpleInteger})
	f1.Set("b", value.TSimple{Kind: value.SimpleString})

	f2 := value.NewOrderedMap[value.JXONType]()
	f2.Set("b", value.TSimple{Kind: value.SimpleString})
	f2.Set("a", value.TSimple{Kind: value.SimpleInteger})

	qt.Assert(t, qt.IsTrue(value.SchemaEqual(value.TRecord{Fields: f1}, value.TRecord{Fields: f2})))
}
