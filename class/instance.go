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

import (
	"iter"

	"dirpx.dev/attrx/apis"
)

// Instance is one container instance. Its namespace methods address the
// instance's private namespace exclusively; shared attributes are reached
// through the Class. Len, Names and Keys therefore never include
// shared-namespace slots.
type Instance struct {
	// class is the owning type descriptor.
	class *Class
	// vars is the instance's private namespace, released with the instance.
	vars apis.Namespace
}

// Ensure Instance implements apis.Namespace.
var _ apis.Namespace = (*Instance)(nil)

// Class returns the owning class.
func (i *Instance) Class() *Class { return i.class }

// Get returns the value of a private attribute.
func (i *Instance) Get(name string) (any, error) { return i.vars.Get(name) }

// Set assigns a private attribute, subject to the class's scope binding.
func (i *Instance) Set(name string, value any) error { return i.vars.Set(name, value) }

// Delete removes a private attribute, subject to the class's scope binding.
func (i *Instance) Delete(name string) error { return i.vars.Delete(name) }

// Has reports whether a private attribute is set.
func (i *Instance) Has(name string) bool { return i.vars.Has(name) }

// Len returns the number of set private attributes.
func (i *Instance) Len() int { return i.vars.Len() }

// Names returns a sorted snapshot of the set private attribute names.
func (i *Instance) Names() []string { return i.vars.Names() }

// Keys returns a lazy, restartable sequence over the set private attribute
// names.
func (i *Instance) Keys() iter.Seq[string] { return i.vars.Keys() }

// Attr returns an attribute-style handle bound to one private attribute.
func (i *Instance) Attr(name string) Var { return Var{ns: i.vars, name: name} }
