/*
 * IndoScript - A small scripting language with Indonesian keywords
 *
 * Copyright The IndoScript Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package activations

import (
	"sort"

	"github.com/raviqqe/hamt"

	"github.com/rainerregan/IndoScript/common"
)

// Activation is a mutable name-to-value mapping backed by a persistent map.
//
// Cloning an activation is constant-time: the clone shares the underlying
// map with the original, and subsequent updates to either one
// are never visible in the other.
type Activation[T any] struct {
	entries hamt.Map
}

func NewActivation[T any]() *Activation[T] {
	return &Activation[T]{
		entries: hamt.NewMap(),
	}
}

// Find returns the value for the given name, if any.
func (a *Activation[T]) Find(name string) (value T, ok bool) {
	if a == nil {
		return
	}
	result := a.entries.Find(common.StringEntry(name))
	if result == nil {
		return
	}
	return result.(T), true
}

func (a *Activation[T]) Contains(name string) bool {
	if a == nil {
		return false
	}
	return a.entries.Include(common.StringEntry(name))
}

// Set binds the name to the given value in this activation only.
func (a *Activation[T]) Set(name string, value T) {
	a.entries = a.entries.Insert(common.StringEntry(name), value)
}

// Clone returns a new activation with the same bindings.
func (a *Activation[T]) Clone() *Activation[T] {
	if a == nil {
		return NewActivation[T]()
	}
	return &Activation[T]{
		entries: a.entries,
	}
}

func (a *Activation[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.entries.Size()
}

// Names returns the bound names, sorted.
func (a *Activation[T]) Names() []string {
	if a == nil {
		return nil
	}

	names := make([]string, 0, a.entries.Size())

	entries := a.entries
	for entries.Size() != 0 {
		var entry hamt.Entry
		entry, _, entries = entries.FirstRest()
		names = append(names, string(entry.(common.StringEntry)))
	}

	sort.Strings(names)

	return names
}

// ForEach calls the function for each binding, in name order.
func (a *Activation[T]) ForEach(f func(name string, value T)) {
	for _, name := range a.Names() {
		value, _ := a.Find(name)
		f(name, value)
	}
}
