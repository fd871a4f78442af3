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

// Package class implements the container types of attrx.
//
// A Class is the type descriptor of a container: it owns the single shared
// namespace, created once at definition time, and knows how to mint
// instances, each with its own private namespace. Class-directed operations
// address the shared namespace; Instance-directed operations address that
// instance's private namespace. The two are disjoint by construction, and
// enforcement lives in the namespaces themselves, so every access style goes
// through the identical policy path.
package class

import (
	"iter"

	"dirpx.dev/attrx/apis"
	"dirpx.dev/attrx/scope"
	"dirpx.dev/attrx/utils/names"
)

// New defines a container class. The (policy, binding) pair is validated and
// the shared namespace is materialized once, via bld. The class name follows
// the same normalization rules as attribute names.
func New(name string, def Definition, cfg apis.Config, bld apis.Builder) (*Class, error) {
	nm, err := names.Normalize(name, cfg)
	if err != nil {
		return nil, err
	}
	bnd, err := scope.Bind(nm, def.Policy, def.Binding, cfg, bld)
	if err != nil {
		return nil, err
	}
	return &Class{
		name:    nm,
		policy:  def.Policy,
		binding: def.Binding,
		cfg:     cfg,
		shared:  bnd.Shared,
		newPriv: bnd.NewPrivate,
	}, nil
}

// Class is a container type descriptor. Its namespace methods address the
// shared namespace; use New to mint instances with private namespaces.
type Class struct {
	// name is the normalized class name.
	name string
	// policy is the immutable mutation policy bound at definition time.
	policy apis.Policy
	// binding states which namespaces the policy governs.
	binding apis.Binding
	// cfg is the configuration the class was defined under.
	cfg apis.Config
	// shared is the single class-level namespace.
	shared apis.Namespace
	// newPriv mints the private namespace for each new instance.
	newPriv func() apis.Namespace
}

// Ensure Class implements apis.Container.
var _ apis.Container = (*Class)(nil)

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Policy returns the mutation policy bound at definition time.
func (c *Class) Policy() apis.Policy { return c.policy }

// Binding returns the scope binding fixed at definition time.
func (c *Class) Binding() apis.Binding { return c.binding }

// New constructs an instance of the class. Initial pairs are applied as
// ordinary Set calls in argument order, so a duplicate name in the batch
// fails under write-once exactly like a second explicit Set, and the
// partially-built instance is discarded.
func (c *Class) New(pairs ...apis.Pair) (*Instance, error) {
	inst := &Instance{class: c, vars: c.newPriv()}
	for _, p := range pairs {
		if err := inst.Set(p.Name, p.Value); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Get returns the value of a shared attribute.
func (c *Class) Get(name string) (any, error) { return c.shared.Get(name) }

// Set assigns a shared attribute, subject to the class policy.
func (c *Class) Set(name string, value any) error { return c.shared.Set(name, value) }

// Delete removes a shared attribute, subject to the class policy.
func (c *Class) Delete(name string) error { return c.shared.Delete(name) }

// Has reports whether a shared attribute is set.
func (c *Class) Has(name string) bool { return c.shared.Has(name) }

// Len returns the number of set shared attributes.
func (c *Class) Len() int { return c.shared.Len() }

// Names returns a sorted snapshot of the set shared attribute names.
func (c *Class) Names() []string { return c.shared.Names() }

// Keys returns a lazy, restartable sequence over the set shared attribute
// names.
func (c *Class) Keys() iter.Seq[string] { return c.shared.Keys() }

// Attr returns an attribute-style handle bound to one shared attribute.
func (c *Class) Attr(name string) Var { return Var{ns: c.shared, name: name} }
