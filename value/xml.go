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

// Element is an XML element tree, sharing storage with the rest of the
// value universe rather than living in a separate DOM library. Attribute
// order is observable on emit, so Attrs is list-backed rather than a
// plain map.
type Element struct {
	Tag      string
	Attrs    *OrderedMap[string]
	Text     *string
	Children []*Element
	Tail     *string
}

// NewElement returns an element with an initialized, empty attribute map.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, Attrs: NewOrderedMap[string]()}
}
