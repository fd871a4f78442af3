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

// Enumerator exposes the set of currently-set attribute names in a
// namespace.
//
// # Overview
//
// Enumerator is the introspection contract consumed by tooling that lists,
// dumps, or diffs attribute namespaces without mutating them. It is
// deliberately separate from Getter so that enumeration-only consumers (for
// example, a debug endpoint rendering a class's attributes) do not acquire
// read access to the values themselves.
//
// Enumeration reflects set-ness only: a name rejected by policy was never
// set and MUST NOT appear; a name whose value was legally deleted MUST NOT
// appear until re-set.
//
// # Contract
//
//   - Len MUST equal the number of names Names returns.
//   - Names MUST return a fresh slice on every call; callers MAY retain and
//     modify it without affecting the namespace.
//   - Names SHOULD present names in a deterministic order (lexicographic is
//     RECOMMENDED) so that repeated calls over an unchanged namespace
//     produce identical output.
//   - Both methods MUST be safe for concurrent calls as long as no
//     goroutine is concurrently mutating the namespace, and MUST NOT
//     perform blocking operations or I/O.
//
// # Usage
//
//	func dump(e common.Enumerator, g common.Getter) {
//	    for _, name := range e.Names() {
//	        v, _ := g.Get(name)
//	        fmt.Printf("%s=%v\n", name, v)
//	    }
//	}
type Enumerator interface {
	// Len returns the number of names currently set.
	Len() int

	// Names returns a snapshot of the currently-set names.
	Names() []string
}
