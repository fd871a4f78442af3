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

package common

// Getter reads named attribute values from a governed namespace.
//
// # Overview
//
// Getter is the minimal read contract consumed by code that only needs to
// resolve attribute values and never mutates them. Accepting Getter instead
// of a full accessor keeps the consumer honest about its capabilities and
// lets implementations hand out read-only views without defensive copies.
//
// Reads do not interact with mutation policies: a value set under any policy
// is observable through Get the same way.
//
// # Contract
//
//   - Get MUST return the stored value unchanged when name is set; the
//     implementation MUST NOT clone, transform, or re-type it.
//   - Get MUST return a non-nil error when name is unset; the error SHOULD
//     be matchable (via errors.Is) against the implementation's not-found
//     sentinel.
//   - Get MUST be safe for concurrent calls from multiple goroutines as
//     long as no goroutine is concurrently mutating the same namespace.
//   - Get MUST NOT perform blocking operations or I/O.
//
// # Usage
//
//	func describe(g common.Getter) string {
//	    v, err := g.Get("display_name")
//	    if err != nil {
//	        return "(unnamed)"
//	    }
//	    return fmt.Sprint(v)
//	}
type Getter interface {
	// Get returns the value stored under name, or an error when name is
	// unset in this namespace.
	Get(name string) (any, error)
}

// Setter writes named attribute values subject to the namespace's policy.
//
// # Overview
//
// Setter is the write half of the accessor contract. Unlike Getter, its
// calls are policy-bearing: under a write-once policy a Set on an
// already-set name MUST fail, and on a frozen namespace every Set MUST
// fail. The split lets producers of configuration accept a Setter during a
// build phase and then retain only a Getter afterwards.
//
// # Contract
//
//   - A successful Set MUST make the value observable to subsequent Get,
//     Has, and enumeration calls on the same namespace.
//   - A rejected Set MUST leave the namespace unchanged, including the
//     previously stored value.
//   - Returned errors SHOULD be matchable against the implementation's
//     policy sentinels so callers can distinguish a policy rejection from
//     a malformed name.
//   - Set MUST NOT be assumed safe for unsynchronized concurrent use with
//     other mutations of the same namespace.
type Setter interface {
	// Set stores value under name, or returns an error when the
	// namespace's policy or configuration forbids the write.
	Set(name string, value any) error
}

// Deleter removes named attribute values subject to the namespace's policy.
//
// # Contract
//
//   - Deleting an unset name MUST fail with the implementation's not-found
//     error regardless of policy.
//   - Deleting a set name under a no-delete policy MUST fail and leave the
//     value in place.
//   - A successful Delete MUST make the name unset for Get, Has, and
//     enumeration, and, where the policy permits re-assignment after
//     deletion, MUST re-arm the name for one subsequent Set.
type Deleter interface {
	// Delete removes the value stored under name, or returns an error when
	// name is unset or the policy forbids deletion.
	Delete(name string) error
}

// Accessor combines the read and write contracts of one namespace.
//
// # Overview
//
// Accessor is the full mutation surface a governed namespace exposes. Code
// SHOULD accept the narrowest of Getter, Setter, or Deleter that covers its
// needs and reserve Accessor for components that genuinely exercise all
// three.
type Accessor interface {
	Getter
	Setter
	Deleter

	// Has reports whether name is currently set. Has MUST be equivalent to
	// Get(name) succeeding, without constructing the error.
	Has(name string) bool
}

// GetterFunc adapts a plain function to the Getter interface.
//
// # Overview
//
// GetterFunc lets a standalone lookup function with signature
// `func(string) (any, error)` satisfy Getter. This is useful for supplying
// computed or test-double attribute sources to code written against the
// Getter contract.
//
// All contractual requirements of Getter apply to the wrapped function,
// including concurrency safety and the prohibition on blocking work.
type GetterFunc func(name string) (any, error)

// Get implements Getter by invoking the underlying function.
func (f GetterFunc) Get(name string) (any, error) {
	return f(name)
}
