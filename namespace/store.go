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
	"sort"

	"dirpx.dev/attrx/apis"
	"dirpx.dev/attrx/utils/names"
)

// NewStore constructs a plain mutable apis.Namespace that normalizes
// attribute names according to cfg. The class name and scope are carried only
// for error identity; the store imposes no mutation policy of its own.
func NewStore(cfg apis.Config, class string, scope apis.Scope) apis.Namespace {
	return &store{
		cfg:   cfg,
		class: class,
		scope: scope,
		m:     make(map[string]any),
	}
}

// store is a map-backed namespace with no policy layer.
// It assumes exclusive access during each call; callers needing cross-call
// atomicity must serialize externally.
type store struct {
	// cfg is the configuration used for name normalization.
	cfg apis.Config
	// class is the owning class name, used in error identity.
	class string
	// scope records which namespace of the class this store backs.
	scope apis.Scope
	// m maps attribute name to value.
	m map[string]any
}

// Get returns the value stored under name, or *apis.NotFoundError if unset.
func (s *store) Get(name string) (any, error) {
	nm, err := names.Normalize(name, s.cfg)
	if err != nil {
		// An unnormalizable name can never have been set.
		return nil, s.notFound(name)
	}
	v, ok := s.m[nm]
	if !ok {
		return nil, s.notFound(nm)
	}
	return v, nil
}

// Set stores value under name after normalization.
func (s *store) Set(name string, value any) error {
	nm, err := names.Normalize(name, s.cfg)
	if err != nil {
		return err
	}
	s.m[nm] = value
	return nil
}

// Delete removes name, or returns *apis.NotFoundError if unset.
func (s *store) Delete(name string) error {
	nm, err := names.Normalize(name, s.cfg)
	if err != nil {
		return s.notFound(name)
	}
	if _, ok := s.m[nm]; !ok {
		return s.notFound(nm)
	}
	delete(s.m, nm)
	return nil
}

// Has reports whether name is currently set.
func (s *store) Has(name string) bool {
	nm, err := names.Normalize(name, s.cfg)
	if err != nil {
		return false
	}
	_, ok := s.m[nm]
	return ok
}

// Len returns the number of currently-set names.
func (s *store) Len() int {
	return len(s.m)
}

// Names returns a sorted snapshot of the currently-set names.
func (s *store) Names() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Keys returns a lazy, restartable sequence over the currently-set names.
// Order is unspecified; the sequence reads the live map, so it is only
// snapshot-safe while the namespace is not mutated.
func (s *store) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range s.m {
			if !yield(k) {
				return
			}
		}
	}
}

// notFound builds a NotFoundError carrying this store's identity.
func (s *store) notFound(name string) error {
	return &apis.NotFoundError{Class: s.class, Attr: name, Scope: s.scope}
}
