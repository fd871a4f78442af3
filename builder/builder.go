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

package builder

import (
	"dirpx.dev/attrx/apis"
	"dirpx.dev/attrx/catalog"
	"dirpx.dev/attrx/namespace"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildNamespace builds a namespace for the named class at the given scope,
// guarded by pol. A mutable policy yields the plain store with no wrapper.
func (b *builder) BuildNamespace(cfg apis.Config, pol apis.Policy, scope apis.Scope, class string) apis.Namespace {
	return namespace.Guard(namespace.NewStore(cfg, class, scope), pol, class, scope)
}

// BuildFrozen builds an instance namespace that rejects all mutation.
func (b *builder) BuildFrozen(cfg apis.Config, class string) apis.Namespace {
	return namespace.Freeze(namespace.NewStore(cfg, class, apis.ScopeInstance), class)
}

// BuildCatalog builds and returns a new apis.Catalog based on the provided
// configuration and pre-existing catalog. If a pre-existing catalog is
// provided, its containers are carried over into the new catalog.
func (b *builder) BuildCatalog(cfg apis.Config, prev apis.Catalog, _ any) apis.Catalog {
	ncat := catalog.New(cfg)
	if prev != nil {
		for _, c := range prev.Entries() {
			_ = ncat.Add(c)
		}
	}
	return ncat
}
