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

// Guard wraps inner with the policy state machine. Every slot is in one of
// two states, unset or set, and the decision is made purely from the current
// presence of the name:
//
//   - set on an unset slot is always allowed.
//   - set on a set slot fails with a write-once violation if pol.WriteOnce.
//   - delete on a set slot fails with a no-delete violation if pol.NoDelete.
//   - delete on an unset slot fails with not-found, regardless of policy.
//
// A permitted delete returns the slot to unset, re-arming exactly one more
// write under WriteOnce. PolicyNoDelete blocks that reset path, so the
// conjunction behaves as single assignment forever.
//
// A mutable policy returns inner unchanged: there is nothing to enforce.
func Guard(inner apis.Namespace, pol apis.Policy, class string, scope apis.Scope) apis.Namespace {
	if pol == apis.PolicyMutable {
		return inner
	}
	return &guarded{inner: inner, pol: pol, class: class, scope: scope}
}

// guarded enforces a Policy in front of an inner namespace.
// Plain composition: the guard consults inner presence and delegates, it
// keeps no state of its own.
type guarded struct {
	// inner is the underlying storage namespace.
	inner apis.Namespace
	// pol is the immutable policy evaluated on every mutation.
	pol apis.Policy
	// class is the owning class name, used in error identity.
	class string
	// scope records which namespace of the class this guard fronts.
	scope apis.Scope
}

// Get delegates to the inner namespace; reads are never policy-gated.
func (g *guarded) Get(name string) (any, error) {
	return g.inner.Get(name)
}

// Set applies the write-once transition rule before delegating.
func (g *guarded) Set(name string, value any) error {
	if g.pol.WriteOnce && g.inner.Has(name) {
		return &apis.Violation{Rule: apis.ErrWriteOnce, Class: g.class, Attr: name, Scope: g.scope}
	}
	return g.inner.Set(name, value)
}

// Delete applies the no-delete transition rule before delegating.
// An unset name reports not-found even under no-delete.
func (g *guarded) Delete(name string) error {
	if !g.inner.Has(name) {
		return g.inner.Delete(name)
	}
	if g.pol.NoDelete {
		return &apis.Violation{Rule: apis.ErrNoDelete, Class: g.class, Attr: name, Scope: g.scope}
	}
	return g.inner.Delete(name)
}

// Has delegates to the inner namespace.
func (g *guarded) Has(name string) bool { return g.inner.Has(name) }

// Len delegates to the inner namespace.
func (g *guarded) Len() int { return g.inner.Len() }

// Names delegates to the inner namespace.
func (g *guarded) Names() []string { return g.inner.Names() }

// Keys delegates to the inner namespace.
func (g *guarded) Keys() iter.Seq[string] { return g.inner.Keys() }
