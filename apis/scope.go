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

// Scope identifies which of a class's two namespaces an operation targets.
// Every class owns exactly one shared namespace; every instance owns exactly
// one private namespace. Reading or writing through one never observes or
// mutates the other.
type Scope int

const (
	// ScopeShared targets the class-level namespace, one copy per class
	// regardless of how many instances exist.
	ScopeShared Scope = iota
	// ScopeInstance targets the per-instance namespace.
	ScopeInstance
)

// String returns a short, stable label for the scope.
func (s Scope) String() string {
	switch s {
	case ScopeShared:
		return "shared"
	case ScopeInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// Binding states, per class, which namespaces the class policy governs.
// The binding is fixed at definition time.
type Binding int

const (
	// BindSharedOnly governs only the shared namespace; private namespaces
	// are plain mutable storage.
	BindSharedOnly Binding = iota
	// BindUniform governs both namespaces with the identical policy,
	// evaluated independently per namespace.
	BindUniform
	// BindConst is the ConstClass specialization: the shared namespace is
	// governed by write-once+no-delete, and private namespaces reject all
	// mutation outright, even of never-set names. This is stricter than any
	// policy pair, which only restricts re-writes and deletes.
	BindConst
)

// String returns a short, stable label for the binding.
func (b Binding) String() string {
	switch b {
	case BindSharedOnly:
		return "shared-only"
	case BindUniform:
		return "uniform"
	case BindConst:
		return "const"
	default:
		return "unknown"
	}
}
