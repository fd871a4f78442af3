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

package attrx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/attrx/apis"
	"dirpx.dev/attrx/builder"
	"dirpx.dev/attrx/class"
	"dirpx.dev/attrx/config"
)

// init initializes the global catalog state.
func init() {
	// Initialize state with default cfg, bld, and an empty cat.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.cat = b.BuildCatalog(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilCatalog is returned when a builder returns a nil catalog.
	ErrNilCatalog = errors.New("attrx: builder returned nil catalog")
)

// Define registers a new container class in the global catalog and returns
// its type descriptor. The shared namespace is created here, once, and lives
// for the process lifetime of the class. A duplicate class name or a sealed
// catalog yields a configuration error.
// This is a convenience wrapper around the global cat.
func Define(name string, opts ...class.Option) (*class.Class, error) {
	s := st.Load()
	if s.sealed {
		return nil, &apis.ConfigError{Err: apis.ErrSealed, Detail: name}
	}
	c, err := class.New(name, class.NewDefinition(opts...), s.cfg, s.bld)
	if err != nil {
		return nil, err
	}
	if err := s.cat.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DefineMutable defines a class with no mutation restriction.
func DefineMutable(name string) (*class.Class, error) {
	return Define(name)
}

// DefineClassWriteOnce defines a class whose shared attributes can each be
// assigned once (until deleted); instance attributes are unrestricted.
func DefineClassWriteOnce(name string) (*class.Class, error) {
	return Define(name, class.WithWriteOnce())
}

// DefineClassNoDelete defines a class whose shared attributes cannot be
// deleted; instance attributes are unrestricted.
func DefineClassNoDelete(name string) (*class.Class, error) {
	return Define(name, class.WithNoDelete())
}

// DefineClassSingleAssign defines a class whose shared attributes can be
// assigned once and never deleted; instance attributes are unrestricted.
func DefineClassSingleAssign(name string) (*class.Class, error) {
	return Define(name, class.WithWriteOnce(), class.WithNoDelete())
}

// DefineWriteOnce defines a class whose shared and instance attributes can
// each be assigned once (until deleted), evaluated independently per
// namespace.
func DefineWriteOnce(name string) (*class.Class, error) {
	return Define(name, class.WithWriteOnce(), class.WithBinding(apis.BindUniform))
}

// DefineNoDelete defines a class whose shared and instance attributes cannot
// be deleted.
func DefineNoDelete(name string) (*class.Class, error) {
	return Define(name, class.WithNoDelete(), class.WithBinding(apis.BindUniform))
}

// DefineSingleAssign defines a class whose shared and instance attributes can
// be assigned once and never deleted.
func DefineSingleAssign(name string) (*class.Class, error) {
	return Define(name, class.WithWriteOnce(), class.WithNoDelete(), class.WithBinding(apis.BindUniform))
}

// DefineConst defines a const class: shared attributes are assigned once and
// never deleted, and instances reject all mutation outright.
func DefineConst(name string) (*class.Class, error) {
	return Define(name, class.WithConst())
}

// Lookup returns the class registered under name in the global catalog.
// This is a convenience wrapper around the global cat.
func Lookup(name string) (apis.Container, bool) {
	return st.Load().cat.Lookup(name)
}

// Classes returns a snapshot of all classes in the global catalog.
// This is a convenience wrapper around the global cat.
func Classes() []apis.Container {
	return st.Load().cat.Entries()
}

// Count returns the number of classes in the global catalog.
// This is a convenience wrapper around the global cat.
func Count() int {
	return st.Load().cat.Count()
}

// Reset removes every class from the global catalog. Sealing is unaffected.
// This is a convenience wrapper around the global cat.
func Reset() {
	st.Load().cat.Reset()
}

// SetAll explicitly sets all global attrx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. Sealing is cleared.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, cat apis.Catalog, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Catalog
	ncat := cat
	if ncat == nil {
		ncat = nbld.BuildCatalog(ncfg, old.cat, next)
	}

	// Ensure non-nil cat.
	if ncat == nil {
		panic(ErrNilCatalog)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    ncfg,
			ext:    next,
			cat:    ncat,
			bld:    nbld,
			sealed: false,
		},
	)
}

// Config returns the global attrx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global attrx configuration to cfg.
// It rebuilds the global cat using the new configuration; classes already
// defined keep the configuration they were defined under.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new cat based on the new cfg and old state.
	ncat := b.BuildCatalog(cfg, old.cat, old.ext)

	// Ensure non-nil cat.
	if ncat == nil {
		panic(ErrNilCatalog)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    cfg,
			ext:    old.ext,
			cat:    ncat,
			bld:    b,
			sealed: old.sealed,
		},
	)
}

// Catalog returns the global attrx cat.
func Catalog() apis.Catalog {
	return st.Load().cat
}

// SetCatalog sets the global attrx cat to cat.
// This is a convenience wrapper around the global state.
func SetCatalog(cat apis.Catalog) {
	if cat == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			cat:    cat,
			bld:    old.bld,
			sealed: old.sealed,
		},
	)
}

// Builder returns the global attrx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global attrx bld to b.
// It rebuilds the global cat through the new builder.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new cat based on the new bld and old state.
	ncat := b.BuildCatalog(old.cfg, old.cat, old.ext)

	// Ensure non-nil cat.
	if ncat == nil {
		panic(ErrNilCatalog)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			cat:    ncat,
			bld:    b,
			sealed: old.sealed,
		},
	)
}

// SetExt replaces extension config and rebuilds the catalog via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new cat based on the new ext and old state.
	ncat := b.BuildCatalog(old.cfg, old.cat, ext)

	// Ensure non-nil cat.
	if ncat == nil {
		panic(ErrNilCatalog)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    ext,
			cat:    ncat,
			bld:    b,
			sealed: old.sealed,
		},
	)
}

// ExtAs returns the global attrx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsSealed returns whether the global catalog is sealed (no new classes).
func IsSealed() bool {
	return st.Load().sealed
}

// Seal makes the global catalog write-once: further Define calls fail until
// Unseal. Classes already defined keep working under their own policies.
func Seal() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			cat:    old.cat,
			bld:    old.bld,
			sealed: true,
		},
	)
}

// Unseal makes the global catalog accept definitions again.
func Unseal() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:    old.cfg,
			ext:    old.ext,
			cat:    old.cat,
			bld:    old.bld,
			sealed: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global attrx state.
var st atomic.Pointer[state]

// state is the global attrx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global attrx configuration.
	cfg apis.Config
	// ext is the global attrx extension configuration.
	ext any
	// cat is the global attrx cat.
	cat apis.Catalog
	// bld is the global attrx bld.
	bld apis.Builder
	// sealed indicates whether the catalog rejects new definitions.
	sealed bool
}
