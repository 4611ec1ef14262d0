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
	"strconv"
	"strings"

	"github.com/cstuartroe/jxon/internal/lex"
	"github.com/cstuartroe/jxon/value"
)

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// xmlEntities are the five predefined XML entities; numeric character
// references (&#...;) are reserved but not yet implemented, per spec.
var xmlEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"apos": "'",
	"quot": "\"",
}

// jxonGrabValue dispatches on the leading character to parse a single
// JXON value: objects, arrays, strings, numbers, XML elements, the three
// literals, dotted variable references, and inline imports.
func jxonGrabValue(p *parser) (value.Value, error) {
	next, err := p.cur.Next(1, true)
	if err != nil {
		return nil, err
	}

	switch {
	case next == "{":
		obj, err := p.grabObject()
		if err != nil {
			return nil, err
		}
		return obj, nil
	case next == "[":
		return jxonGrabArray(p)
	case next == `"`:
		s, err := lex.GrabString(p.cur, true)
		if err != nil {
			return nil, err
		}
		return value.Str(s), nil
	case next == "-" || isDigitStr(next):
		return jxonGrabNumber(p)
	case next == "<":
		return jxonGrabXML(p, false)
	}

	four, err := p.cur.Next(4, true)
	if err != nil {
		return nil, err
	}
	if four == "true" {
		p.cur.Advance(4)
		return value.Bool(true), nil
	}
	if four == "null" {
		p.cur.Advance(4)
		return value.Null{}, nil
	}
	five, err := p.cur.Next(5, true)
	if err != nil {
		return nil, err
	}
	if five == "false" {
		p.cur.Advance(5)
		return value.Bool(false), nil
	}

	if lex.IsLabelStart(next) {
		return p.resolveVariable()
	}

	return nil, p.cur.Throw("Unknown expression type", nil)
}

func isDigitStr(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func jxonGrabArray(p *parser) (value.Array, error) {
	if err := p.cur.Expect("["); err != nil {
		return nil, err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return nil, err
	}
	next, err := p.cur.Next(1, true)
	if err != nil {
		return nil, err
	}
	if next == "]" {
		p.cur.Advance(1)
		return value.Array{}, nil
	}

	elems, err := p.grabElements()
	if err != nil {
		return nil, err
	}
	if err := p.cur.Expect("]"); err != nil {
		return nil, err
	}
	return value.Array(elems), nil
}

// jxonGrabNumber parses optional '-', an integer part, optional
// fractional part, and optional exponent, yielding Float if '.' or an
// exponent is present and Int otherwise.
func jxonGrabNumber(p *parser) (value.Value, error) {
	var b strings.Builder
	isFloat := false

	next, err := p.cur.Next(1, true)
	if err != nil {
		return nil, err
	}
	if next == "-" {
		b.WriteString("-")
		p.cur.Advance(1)
	}

	digits, err := lex.GrabDigits(p.cur, false)
	if err != nil {
		return nil, err
	}
	b.WriteString(digits)

	next, err = p.cur.Next(1, true)
	if err != nil {
		return nil, err
	}
	if next == "." {
		isFloat = true
		b.WriteString(".")
		p.cur.Advance(1)
		frac, err := lex.GrabDigits(p.cur, true)
		if err != nil {
			return nil, err
		}
		b.WriteString(frac)
	}

	next, err = p.cur.Next(1, true)
	if err != nil {
		return nil, err
	}
	if next == "e" || next == "E" {
		isFloat = true
		b.WriteString("e")
		p.cur.Advance(1)
		sign, err := p.cur.Next(1, true)
		if err != nil {
			return nil, err
		}
		if sign == "+" || sign == "-" {
			b.WriteString(sign)
			p.cur.Advance(1)
		} else {
			return nil, p.cur.Throw("Exponent must be followed by sign", nil)
		}
		exp, err := lex.GrabDigits(p.cur, true)
		if err != nil {
			return nil, err
		}
		b.WriteString(exp)
	}

	if isFloat {
		f, err := parseFloat(b.String())
		if err != nil {
			return nil, p.cur.Throw("Invalid number literal", nil)
		}
		return value.Float(f), nil
	}

	i, err := value.NewIntString(b.String())
	if err != nil {
		return nil, p.cur.Throw("Invalid number literal", nil)
	}
	return i, nil
}

func jxonGrabXML(p *parser, allowTail bool) (value.Xml, error) {
	if err := p.cur.Expect("<"); err != nil {
		return value.Xml{}, err
	}
	name, err := grabXMLName(p)
	if err != nil {
		return value.Xml{}, err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return value.Xml{}, err
	}

	el := value.NewElement(name)
	for {
		next, err := p.cur.Next(1, true)
		if err != nil {
			return value.Xml{}, err
		}
		if next == "/" || next == ">" {
			break
		}
		key, attrVal, err := grabXMLAttribute(p)
		if err != nil {
			return value.Xml{}, err
		}
		if el.Attrs.Set(key, attrVal) {
			return value.Xml{}, p.cur.Throw("Repeated attribute name", nil)
		}
		if err := lex.SkipWhitespace(p.cur); err != nil {
			return value.Xml{}, err
		}
	}

	next, err := p.cur.Next(1, true)
	if err != nil {
		return value.Xml{}, err
	}
	if next == "/" {
		p.cur.Advance(1)
		if err := p.cur.Expect(">"); err != nil {
			return value.Xml{}, err
		}
	} else {
		if err := p.cur.Expect(">"); err != nil {
			return value.Xml{}, err
		}
		if err := lex.SkipWhitespace(p.cur); err != nil {
			return value.Xml{}, err
		}
		text, err := grabXMLText(p)
		if err != nil {
			return value.Xml{}, err
		}
		el.Text = &text

		var children []*value.Element
		for {
			two, err := p.cur.Next(2, true)
			if err != nil {
				return value.Xml{}, err
			}
			if two == "</" {
				break
			}
			if two == "<!" {
				if err := passXMLComment(p); err != nil {
					return value.Xml{}, err
				}
				continue
			}
			child, err := jxonGrabXML(p, true)
			if err != nil {
				return value.Xml{}, err
			}
			children = append(children, child.Element)
		}
		if len(children) > 0 {
			last := children[len(children)-1]
			trimmed := strings.TrimRight(*last.Tail, " \t\r\n")
			last.Tail = &trimmed
			el.Children = children
		} else {
			trimmed := strings.TrimRight(*el.Text, " \t\r\n")
			el.Text = &trimmed
		}

		if err := p.cur.Expect("</"); err != nil {
			return value.Xml{}, err
		}
		closeName, err := grabXMLName(p)
		if err != nil {
			return value.Xml{}, err
		}
		if closeName != name {
			return value.Xml{}, p.cur.Throw("Mismatched XML tag, expecting a "+name, nil)
		}
		if err := lex.SkipWhitespace(p.cur); err != nil {
			return value.Xml{}, err
		}
		if err := p.cur.Expect(">"); err != nil {
			return value.Xml{}, err
		}
	}

	if allowTail {
		tail, err := grabXMLText(p)
		if err != nil {
			return value.Xml{}, err
		}
		el.Tail = &tail
	}

	return value.Xml{Element: el}, nil
}

func grabXMLName(p *parser) (string, error) {
	first, err := p.cur.Next(1, true)
	if err != nil {
		return "", err
	}
	if !(lex.IsLabelStart(first) || first == ":") {
		return "", p.cur.Throw("Invalid start to XML name", nil)
	}

	var b strings.Builder
	for {
		ch, err := p.cur.Next(1, true)
		if err != nil {
			return "", err
		}
		if !(lex.IsLabelCont(ch) || ch == ":" || ch == "." || ch == "-") {
			break
		}
		b.WriteString(ch)
		p.cur.Advance(1)
	}
	return b.String(), nil
}

func grabXMLAttribute(p *parser) (string, string, error) {
	key, err := grabXMLName(p)
	if err != nil {
		return "", "", err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return "", "", err
	}
	if err := p.cur.Expect("="); err != nil {
		return "", "", err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return "", "", err
	}
	if err := p.cur.Expect(`"`); err != nil {
		return "", "", err
	}

	var b strings.Builder
	for {
		next, err := p.cur.Next(1, false)
		if err != nil {
			return "", "", err
		}
		if next == `"` {
			break
		}
		ch, err := grabXMLAttrChar(p)
		if err != nil {
			return "", "", err
		}
		b.WriteString(ch)
	}
	if err := p.cur.Expect(`"`); err != nil {
		return "", "", err
	}
	return key, b.String(), nil
}

func grabXMLAttrChar(p *parser) (string, error) {
	next, err := p.cur.Next(1, false)
	if err != nil {
		return "", err
	}
	if next == "<" {
		return "", p.cur.Throw("'<' cannot occur in XML attribute", nil)
	}
	if next == "&" {
		return grabXMLReference(p)
	}
	p.cur.Advance(1)
	return next, nil
}

func grabXMLReference(p *parser) (string, error) {
	if err := p.cur.Expect("&"); err != nil {
		return "", err
	}
	next, err := p.cur.Next(1, true)
	if err != nil {
		return "", err
	}
	if next == "#" {
		return "", p.cur.Throw("Numeric character references are not supported", nil)
	}
	entity, err := grabXMLName(p)
	if err != nil {
		return "", err
	}
	c, ok := xmlEntities[entity]
	if !ok {
		return "", p.cur.Throw("Invalid entity", nil)
	}
	if err := p.cur.Expect(";"); err != nil {
		return "", err
	}
	return c, nil
}

func grabXMLText(p *parser) (string, error) {
	var b strings.Builder
	for {
		if p.cur.EOL() {
			if err := lex.SkipWhitespace(p.cur); err != nil {
				return "", err
			}
			b.WriteString(" ")
			continue
		}
		next, err := p.cur.Next(1, true)
		if err != nil {
			return "", err
		}
		if next == "<" {
			return b.String(), nil
		}
		ch, err := grabXMLAttrChar(p)
		if err != nil {
			return "", err
		}
		b.WriteString(ch)
	}
}

func passXMLComment(p *parser) error {
	if err := p.cur.Expect("<!--"); err != nil {
		return err
	}
	if err := lex.SkipWhitespace(p.cur); err != nil {
		return err
	}
	for {
		three, err := p.cur.Next(3, false)
		if err != nil {
			return err
		}
		if three == "-->" {
			p.cur.Advance(3)
			break
		}
		p.cur.Advance(1)
	}
	return lex.SkipWhitespace(p.cur)
}
