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

// Package emit implements deterministic pretty-printing of values and
// schema descriptors back to JXON/JXSD source text.
package emit

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cstuartroe/jxon/internal/diag"
	"github.com/cstuartroe/jxon/value"
)

// Options controls an emission pass. A nil Indent means compact output
// (elements separated by a single space, no line breaks); a non-nil
// Indent gives the number of spaces per nesting level.
type Options struct {
	Indent   *int
	SortKeys bool
}

// Compact is the zero-configuration single-line form.
var Compact = Options{}

// Indented returns an Options set to pretty-print with n spaces per
// level, optionally sorting object/record keys.
func Indented(n int, sortKeys bool) Options {
	return Options{Indent: &n, SortKeys: sortKeys}
}

// Value renders v as JXON source text.
func Value(v value.Value, opts Options) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, v, opts, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Schema renders t as JXSD source text.
func Schema(t value.JXONType, opts Options) (string, error) {
	var b strings.Builder
	if err := writeSchema(&b, t, opts, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func pad(opts Options, level int) string {
	if opts.Indent == nil {
		return ""
	}
	return strings.Repeat(" ", *opts.Indent*level)
}

func writeValue(b *strings.Builder, v value.Value, opts Options, level int) error {
	switch x := v.(type) {
	case value.Null:
		b.WriteString("null")
	case value.Bool:
		if x {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.Int:
		b.WriteString(x.V.String())
	case value.Float:
		b.WriteString(formatFloat(float64(x)))
	case value.Str:
		b.WriteString(`"` + EscapeString(string(x)) + `"`)
	case value.Array:
		return writeArray(b, x, opts, level)
	case value.Object:
		return writeObject(b, x, opts, level)
	case value.Xml:
		writeElement(b, x.Element, opts, level)
		return nil
	default:
		return diag.Newf(diag.Encode, "%s cannot be encoded into JXON", v.Kind())
	}
	return nil
}

func writeArray(b *strings.Builder, arr value.Array, opts Options, level int) error {
	b.WriteString("[")
	if opts.Indent != nil {
		b.WriteString("\n")
	}
	for i, e := range arr {
		if opts.Indent != nil {
			b.WriteString(pad(opts, level+1))
		}
		if err := writeValue(b, e, opts, level+1); err != nil {
			return err
		}
		if i != len(arr)-1 {
			b.WriteString(",")
			if opts.Indent != nil {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		} else if opts.Indent != nil {
			b.WriteString("\n")
		}
	}
	if opts.Indent != nil {
		b.WriteString(pad(opts, level))
	}
	b.WriteString("]")
	return nil
}

func writeObject(b *strings.Builder, obj value.Object, opts Options, level int) error {
	keys := orderedKeys(obj.Keys(), opts.SortKeys)
	b.WriteString("{")
	if opts.Indent != nil {
		b.WriteString("\n")
	}
	for i, k := range keys {
		if opts.Indent != nil {
			b.WriteString(pad(opts, level+1))
		}
		fv, _ := obj.Get(k)
		b.WriteString(`"` + EscapeString(k) + `": `)
		if err := writeValue(b, fv, opts, level+1); err != nil {
			return err
		}
		if i != len(keys)-1 {
			b.WriteString(",")
			if opts.Indent != nil {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		} else if opts.Indent != nil {
			b.WriteString("\n")
		}
	}
	if opts.Indent != nil {
		b.WriteString(pad(opts, level))
	}
	b.WriteString("}")
	return nil
}

func writeElement(b *strings.Builder, e *value.Element, opts Options, level int) {
	b.WriteString("<" + e.Tag)
	e.Attrs.Each(func(k, av string) {
		b.WriteString(" " + k + `="` + EscapeString(av) + `"`)
	})

	text := ""
	if e.Text != nil {
		text = *e.Text
	}
	if text == "" && len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}

	b.WriteString(">")
	if text != "" {
		if opts.Indent != nil {
			b.WriteString("\n" + pad(opts, level+1))
		}
		b.WriteString(text)
	}

	if len(e.Children) > 0 {
		if opts.Indent != nil && (text == "" || isSpace(text[len(text)-1])) {
			trimTrailingSpace(b)
			b.WriteString("\n" + pad(opts, level+1))
		}
		for i, c := range e.Children {
			if opts.Indent != nil && i != 0 {
				b.WriteString("\n" + pad(opts, level+1))
			}
			writeElement(b, c, opts, level+1)
		}
	}

	if opts.Indent != nil {
		b.WriteString("\n" + pad(opts, level))
	}
	b.WriteString("</" + e.Tag + ">")

	if e.Tail != nil && *e.Tail != "" {
		tail := *e.Tail
		if opts.Indent != nil && isSpace(tail[0]) {
			b.WriteString("\n" + pad(opts, level) + strings.TrimLeft(tail, " \t\r\n"))
		} else {
			b.WriteString(tail)
		}
		if opts.Indent != nil {
			trimTrailingSpace(b)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func trimTrailingSpace(b *strings.Builder) {
	s := strings.TrimRight(b.String(), " \t\r\n")
	b.Reset()
	b.WriteString(s)
}

func writeSchema(b *strings.Builder, t value.JXONType, opts Options, level int) error {
	switch s := t.(type) {
	case value.TSimple:
		b.WriteString(s.Kind.Keyword())
	case value.TList:
		b.WriteString("[")
		if err := writeSchema(b, s.ElemType(), opts, level); err != nil {
			return err
		}
		b.WriteString("]")
	case value.TRecord:
		keys := orderedKeys(s.Fields.Keys(), opts.SortKeys)
		b.WriteString("{")
		if opts.Indent != nil {
			b.WriteString("\n")
		}
		for i, k := range keys {
			if opts.Indent != nil {
				b.WriteString(pad(opts, level+1))
			}
			ft, _ := s.Fields.Get(k)
			b.WriteString(`"` + EscapeString(k) + `": `)
			if err := writeSchema(b, ft, opts, level+1); err != nil {
				return err
			}
			if i != len(keys)-1 {
				b.WriteString(",")
				if opts.Indent != nil {
					b.WriteString("\n")
				} else {
					b.WriteString(" ")
				}
			} else if opts.Indent != nil {
				b.WriteString("\n")
			}
		}
		if opts.Indent != nil {
			b.WriteString(pad(opts, level))
		}
		b.WriteString("}")
	case value.TEnum:
		members := append([]value.Value(nil), s.Members...)
		if opts.SortKeys {
			sort.Slice(members, func(i, j int) bool {
				return enumKey(members[i]) < enumKey(members[j])
			})
		}
		b.WriteString("Enum(")
		for i, m := range members {
			if err := writeValue(b, m, opts, level); err != nil {
				return err
			}
			if i != len(members)-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString(")")
	default:
		return diag.Newf(diag.Encode, "not a schema: %T", t)
	}
	return nil
}

func enumKey(v value.Value) string {
	switch x := v.(type) {
	case value.Int:
		return x.V.String()
	case value.Float:
		return formatFloat(float64(x))
	case value.Str:
		return string(x)
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// EscapeString backslash-escapes the JXON string-literal metacharacters.
// The replacer makes a single pass over s, so the backslashes it inserts
// are never themselves re-escaped.
func EscapeString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\b", `\b`,
		"\f", `\f`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}

func orderedKeys(keys []string, sortKeys bool) []string {
	if !sortKeys {
		return keys
	}
	out := append([]string(nil), keys...)
	sort.Strings(out)
	return out
}
