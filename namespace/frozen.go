/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package namespace

import (
	"iter"

	"dirpx.dev/attrx/apis"
)

// Freeze wraps inner so that every Set and Delete fails unconditionally with
// a frozen violation, even for names that were never set. Reads still work
// over the (necessarily empty) inner store. This is the instance side of a
// const class; it is stricter than any policy pair, which only restricts
// re-writes and deletes of existing slots.
func Freeze(inner apis.Namespace, class string) apis.Namespace {
	return &frozen{inner: inner, class: class}
}

// frozen rejects all instance-side mutation.
type frozen struct {
	// inner is the underlying (empty) storage namespace.
	inner apis.Namespace
	// class is the owning class name, used in error identity.
	class string
}

// Get delegates to the inner namespace.
func (f *frozen) Get(name string) (any, error) { return f.inner.Get(name) }

// Set fails unconditionally.
func (f *frozen) Set(name string, _ any) error {
	return &apis.Violation{Rule: apis.ErrFrozen, Class: f.class, Attr: name, Scope: apis.ScopeInstance}
}

// Delete fails unconditionally.
func (f *frozen) Delete(name string) error {
	return &apis.Violation{Rule: apis.ErrFrozen, Class: f.class, Attr: name, Scope: apis.ScopeInstance}
}

// Has delegates to the inner namespace.
func (f *frozen) Has(name string) bool { return f.inner.Has(name) }

// Len delegates to the inner namespace.
func (f *frozen) Len() int { return f.inner.Len() }

// Names delegates to the inner namespace.
func (f *frozen) Names() []string { return f.inner.Names() }

// Keys delegates to the inner namespace.
func (f *frozen) Keys() iter.Seq[string] { return f.inner.Keys() }
