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

// Builder composes namespaces and catalogs from a Config.
// Implementations may migrate entries from previous instances (prev), or
// ignore them.
type Builder interface {
	// BuildNamespace constructs a namespace governed by pol, belonging to
	// the named class at the given scope. A mutable policy yields plain
	// storage with no enforcement layer.
	BuildNamespace(cfg Config, pol Policy, scope Scope, class string) Namespace
	// BuildFrozen constructs an instance namespace that rejects every set
	// and delete outright. This binding is not expressible as a Policy pair.
	BuildFrozen(cfg Config, class string) Namespace
	// BuildCatalog constructs a Catalog for Config. May migrate entries from
	// the previous catalog. ext is an optional extension context; its
	// meaning is implementation-defined.
	BuildCatalog(cfg Config, prev Catalog, ext any) Catalog
}
