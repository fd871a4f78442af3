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

// Catalog is the process-wide index of defined container classes.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Catalog interface {
	// Add registers a container under its class name.
	// Implementations should be idempotent for the same container; adding a
	// different container under an existing name is a duplicate-class error.
	Add(c Container) error
	// Lookup returns the container registered under name, if present.
	Lookup(name string) (Container, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Container
	// Count returns the number of registered containers.
	Count() int
	// Reset clears all registered containers.
	Reset()
}
