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

package catalog

import (
	"errors"
	"sync"

	"dirpx.dev/attrx/apis"
)

var (
	// ErrNilContainer is returned when a nil container is provided.
	ErrNilContainer = errors.New("attrx(catalog): nil container provided")
	// ErrEmptyName is returned when a container reports an empty class name.
	ErrEmptyName = errors.New("attrx(catalog): empty class name provided")
)

// New constructs an empty apis.Catalog.
func New(cfg apis.Config) apis.Catalog {
	_ = cfg // reserved for future name-indexing knobs
	return &catalog{}
}

// catalog is a simple Catalog implementation backed by sync.Map.
type catalog struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps class name to apis.Container.
	m sync.Map // map[string]apis.Container
	// count tracks the number of registered containers.
	count int
}

// Add registers a container under its class name.
// It is idempotent for the same container instance.
func (c *catalog) Add(cont apis.Container) error {
	// Validate inputs early.
	if cont == nil {
		return ErrNilContainer
	}
	name := cont.Name()
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := c.m.Load(name); ok {
		if old.(apis.Container) == cont {
			return nil // idempotent re-add
		}
		return &apis.ConfigError{Err: apis.ErrDuplicateClass, Detail: name}
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := c.m.Load(name); ok {
		if old.(apis.Container) == cont {
			return nil
		}
		return &apis.ConfigError{Err: apis.ErrDuplicateClass, Detail: name}
	}

	c.m.Store(name, cont)
	c.count++
	return nil
}

// Lookup returns the container registered under name, if present.
func (c *catalog) Lookup(name string) (apis.Container, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := c.m.Load(name); ok {
		return v.(apis.Container), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (c *catalog) Entries() []apis.Container {
	entries := make([]apis.Container, 0, c.Count())
	c.m.Range(func(_, value any) bool {
		entries = append(entries, value.(apis.Container))
		return true
	})
	return entries
}

// Count returns the number of registered containers.
func (c *catalog) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset clears all registered containers.
func (c *catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = sync.Map{}
	c.count = 0
}
