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

package apis

import "iter"

// Namespace is a name->value store with presence-based semantics.
// A name is either unset (absent) or set (present with a value); deleting a
// set name removes it entirely. Implementations decide which mutations are
// permitted; rejected mutations surface as *Violation or *NotFoundError.
type Namespace interface {
	// Get returns the value stored under name.
	// It returns *NotFoundError if the name is unset.
	Get(name string) (any, error)
	// Set stores value under name, subject to the namespace's policy.
	// A rejected re-assignment surfaces as *Violation.
	Set(name string, value any) error
	// Delete removes name from the namespace, subject to policy.
	// Deleting an unset name returns *NotFoundError.
	Delete(name string) error
	// Has reports whether name is currently set.
	Has(name string) bool
	// Len returns the number of currently-set names.
	Len() int
	// Names returns a sorted snapshot of the currently-set names.
	Names() []string
	// Keys returns a lazy, finite, restartable sequence over the
	// currently-set names. Order is unspecified. The sequence is only
	// snapshot-safe while the namespace is not mutated.
	Keys() iter.Seq[string]
}

// Pair is a single (name, value) assignment used for bulk construction.
// Bulk initialization applies pairs in argument order as ordinary Set calls,
// so a duplicate name fails under write-once exactly like a second Set would.
type Pair struct {
	// Name is the attribute name.
	Name string
	// Value is the value to assign.
	Value any
}

// Container is the minimal contract every attrx container satisfies:
// a namespace plus a stable class name for diagnostics and catalog lookup.
type Container interface {
	Namespace
	// Name returns the container's class name.
	Name() string
}
