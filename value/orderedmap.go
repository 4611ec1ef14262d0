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

// OrderedMap is an insertion-ordered string-keyed map with unique keys.
// Every JXON construct whose field/attribute order is observable on emit
// (objects, XML attribute lists, record schemas) is backed by one of
// these rather than a plain Go map, whose iteration order is undefined.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set inserts key if absent (appending it to the key order) or overwrites
// its value in place if already present. It reports whether key was
// already present, so callers that must reject duplicates can do so.
func (m *OrderedMap[V]) Set(key string, v V) (existed bool) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	_, existed = m.values[key]
	if !existed {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return existed
}

// Keys returns the keys in insertion order. The caller must not mutate
// the returned slice.
func (m *OrderedMap[V]) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Each calls fn for every entry in insertion order.
func (m *OrderedMap[V]) Each(fn func(key string, v V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
