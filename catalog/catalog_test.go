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

package catalog_test

import (
	"errors"
	"testing"

	"dirpx.dev/attrx/apis"
	"dirpx.dev/attrx/catalog"
	"dirpx.dev/attrx/config"
	"dirpx.dev/attrx/namespace"
)

// stub is a minimal apis.Container for catalog tests.
type stub struct {
	apis.Namespace
	name string
}

func (s *stub) Name() string { return s.name }

func newStub(name string) *stub {
	cfg := config.DefaultConfig()
	return &stub{Namespace: namespace.NewStore(cfg, name, apis.ScopeShared), name: name}
}

func TestAdd_IdempotentAndLookup(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	c1 := newStub("profile")
	if err := cat.Add(c1); err != nil {
		t.Fatalf("Add(profile): unexpected error: %v", err)
	}
	// idempotent re-add of the same container
	if err := cat.Add(c1); err != nil {
		t.Fatalf("Add(profile) idempotent: unexpected error: %v", err)
	}

	got, ok := cat.Lookup("profile")
	if !ok || got != apis.Container(c1) {
		t.Fatalf("Lookup(profile): got (%v,%v), want (c1,true)", got, ok)
	}

	if cat.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", cat.Count())
	}
}

func TestAdd_DuplicateClass(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	if err := cat.Add(newStub("profile")); err != nil {
		t.Fatalf("Add: unexpected error: %v", err)
	}
	// A different container under the same name -> duplicate
	err := cat.Add(newStub("profile"))
	if !errors.Is(err, apis.ErrDuplicateClass) {
		t.Fatalf("expected ErrDuplicateClass, got: %v", err)
	}
}

func TestAdd_Errors(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	if err := cat.Add(nil); err != catalog.ErrNilContainer {
		t.Fatalf("nil container: want ErrNilContainer, got %v", err)
	}
	if err := cat.Add(newStub("")); err != catalog.ErrEmptyName {
		t.Fatalf("empty name: want ErrEmptyName, got %v", err)
	}
}

func TestLookup_Misses(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	if _, ok := cat.Lookup(""); ok {
		t.Fatalf("Lookup(\"\") should miss")
	}
	if _, ok := cat.Lookup("nope"); ok {
		t.Fatalf("Lookup(nope) should miss")
	}
}

func TestEntriesAndReset(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	for _, n := range []string{"a", "b", "c"} {
		if err := cat.Add(newStub(n)); err != nil {
			t.Fatalf("Add(%s): %v", n, err)
		}
	}
	if got := len(cat.Entries()); got != 3 {
		t.Fatalf("Entries() = %d entries, want 3", got)
	}

	cat.Reset()
	if cat.Count() != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", cat.Count())
	}
	if _, ok := cat.Lookup("a"); ok {
		t.Fatalf("Lookup(a) after Reset should miss")
	}
}
