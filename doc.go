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

// Package attrx provides policy-governed attribute containers.
//
// attrx lets a process declare named values ("attributes") inside container
// classes and then enforces one of four mutation policies on every later
// access to those names: free mutation, write-once, no-delete, or both rules
// combined. A policy can govern only the class-level shared namespace, or
// both the shared and the per-instance namespaces uniformly.
//
// # Design
//
// Every container class owns exactly two kinds of namespace:
//
//   - Shared: one name->value store per class, created once at definition
//     time and visible through the Class descriptor for the process
//     lifetime.
//
//   - Private: one store per Instance, created with the instance and
//     released with it. Instances never observe each other's values, nor
//     the shared values, through their own namespace.
//
// Enforcement is plain composition, not interception magic: a policy guard
// wraps the underlying store and runs a presence-based state machine before
// every mutation. A slot is either unset or set; write-once rejects a set on
// a set slot, no-delete rejects a delete of a set slot, and a permitted
// delete re-arms exactly one more write. Because the rules are evaluated
// independently, write-once plus no-delete composes into single-assignment-
// forever semantics rather than a separate third rule.
//
// Scope bindings decide which namespaces the policy governs:
//
//   - Shared-only: the shared namespace is governed; private namespaces are
//     plain mutable storage.
//   - Uniform: both namespaces are governed by the identical policy,
//     evaluated independently per namespace.
//   - Const: the ConstClass specialization. The shared namespace is
//     write-once+no-delete and instances reject every set/delete outright,
//     even of names never set. This is stricter than any policy pair.
//
// Both access styles share one enforcement path: mapping style addresses a
// container by key (Get/Set/Delete), attribute style binds a Var handle to
// one name (Class.Attr / Instance.Attr) and reads like a field.
//
// # Global API
//
// The package holds a process-wide catalog of defined classes behind an
// atomic snapshot. Readers load the snapshot and never take locks; writers
// (SetConfig, SetBuilder, SetExt, SetCatalog, SetAll, Seal, Unseal) take a
// short build mutex, assemble a brand-new state, and publish it atomically.
//
//  1. Definition helpers:
//
//     Define(name, opts...) (*class.Class, error)
//     DefineMutable / DefineClassWriteOnce / DefineClassNoDelete /
//     DefineClassSingleAssign / DefineWriteOnce / DefineNoDelete /
//     DefineSingleAssign / DefineConst
//
//     Each creates the class's shared namespace once and registers the
//     class in the global catalog. Duplicate names fail.
//
//  2. Read helpers:
//
//     Lookup(name) (apis.Container, bool)
//     Classes() []apis.Container
//     Count() int
//     Catalog() apis.Catalog
//
//     These are safe for concurrent use and always read the latest
//     published snapshot.
//
//  3. Sealing:
//
//     Seal() / Unseal() / IsSealed()
//
//     Sealing makes the catalog itself write-once: Define fails until
//     Unseal. Already-defined classes keep working under their policies.
//
// # Errors
//
// Rejected mutations surface as *apis.Violation wrapping one of the rule
// sentinels (apis.ErrWriteOnce, apis.ErrNoDelete, apis.ErrFrozen); missing
// attributes as *apis.NotFoundError wrapping apis.ErrNotFound; definition
// mistakes as *apis.ConfigError wrapping apis.ErrConfig. Every message names
// the attribute, the class, and the namespace involved.
//
// # Concurrency model
//
// Individual namespaces are single-writer: the engine assumes exclusive
// access during each set/get/delete and makes no cross-call atomicity
// guarantee. Only the global catalog follows the snapshot-and-swap
// discipline, because it is process-wide state shared by every caller.
//
// # Scope
//
// attrx is intentionally small. It does not persist anything, it does not
// validate values, it does not cross a process boundary. It only solves one
// job:
//
//	"Given a named value in a container, decide - from the declared policy
//	 and the slot's current presence - whether this mutation may happen."
//
// The deprecate package in this module is an independent utility for
// version-gated deprecation warnings; the two do not interact.
package attrx
