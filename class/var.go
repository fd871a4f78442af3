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

package class

import "dirpx.dev/attrx/apis"

// Var is a field-like handle bound to a single attribute of one namespace.
// It is the attribute-style access path: the same slot can be addressed
// through a Var or through the container's key/value methods, and both run
// the identical policy enforcement, because a Var is nothing but a name
// remembered next to the namespace it belongs to.
//
// Var is a small value; copy it freely.
type Var struct {
	// ns is the namespace the attribute lives in.
	ns apis.Namespace
	// name is the bound attribute name.
	name string
}

// Name returns the bound attribute name.
func (v Var) Name() string { return v.name }

// Get returns the attribute's current value.
func (v Var) Get() (any, error) { return v.ns.Get(v.name) }

// Set assigns the attribute, subject to the namespace's policy.
func (v Var) Set(value any) error { return v.ns.Set(v.name, value) }

// Delete removes the attribute, subject to the namespace's policy.
func (v Var) Delete() error { return v.ns.Delete(v.name) }

// IsSet reports whether the attribute is currently set.
func (v Var) IsSet() bool { return v.ns.Has(v.name) }
