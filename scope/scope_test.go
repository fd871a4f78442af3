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

package scope_test

import (
	"errors"
	"testing"

	"dirpx.dev/attrx/apis"
	"dirpx.dev/attrx/builder"
	"dirpx.dev/attrx/config"
	"dirpx.dev/attrx/scope"
)

func bind(t *testing.T, pol apis.Policy, b apis.Binding) scope.Binding {
	t.Helper()
	bnd, err := scope.Bind("test", pol, b, config.DefaultConfig(), builder.New())
	if err != nil {
		t.Fatalf("Bind: unexpected error: %v", err)
	}
	return bnd
}

func TestBind_SharedOnly_PrivateUnrestricted(t *testing.T) {
	bnd := bind(t, apis.PolicyWriteOnce, apis.BindSharedOnly)

	// Shared namespace is governed.
	if err := bnd.Shared.Set("a", 1); err != nil {
		t.Fatalf("shared Set: %v", err)
	}
	if err := bnd.Shared.Set("a", 2); !errors.Is(err, apis.ErrWriteOnce) {
		t.Fatalf("shared re-Set: want ErrWriteOnce, got %v", err)
	}

	// Private namespaces are plain mutable storage.
	priv := bnd.NewPrivate()
	if err := priv.Set("a", 1); err != nil {
		t.Fatalf("private Set: %v", err)
	}
	if err := priv.Set("a", 2); err != nil {
		t.Fatalf("private re-Set should be unrestricted, got %v", err)
	}
}

func TestBind_Uniform_IndependentEvaluation(t *testing.T) {
	bnd := bind(t, apis.PolicyWriteOnce, apis.BindUniform)

	// A name set in the shared namespace does not block the same name in a
	// fresh private namespace, and vice versa.
	if err := bnd.Shared.Set("a", "shared"); err != nil {
		t.Fatalf("shared Set: %v", err)
	}
	priv := bnd.NewPrivate()
	if err := priv.Set("a", "mine"); err != nil {
		t.Fatalf("private Set: %v", err)
	}
	if err := priv.Set("a", "again"); !errors.Is(err, apis.ErrWriteOnce) {
		t.Fatalf("private re-Set: want ErrWriteOnce, got %v", err)
	}

	// Distinct instances are disjoint from each other too.
	priv2 := bnd.NewPrivate()
	if priv2.Has("a") {
		t.Fatalf("fresh private namespace should not see sibling values")
	}
	if err := priv2.Set("a", "p2"); err != nil {
		t.Fatalf("second private Set: %v", err)
	}

	// Shared values never leak into private reads.
	if v, err := priv.Get("a"); err != nil || v != "mine" {
		t.Fatalf("private Get = (%v,%v), want (mine,nil)", v, err)
	}
}

func TestBind_Const(t *testing.T) {
	bnd := bind(t, apis.PolicyWriteOnceNoDelete, apis.BindConst)

	// Shared side keeps write-once+no-delete.
	if err := bnd.Shared.Set("a", 1); err != nil {
		t.Fatalf("shared Set: %v", err)
	}
	if err := bnd.Shared.Set("a", 2); !errors.Is(err, apis.ErrWriteOnce) {
		t.Fatalf("shared re-Set: want ErrWriteOnce, got %v", err)
	}
	if err := bnd.Shared.Delete("a"); !errors.Is(err, apis.ErrNoDelete) {
		t.Fatalf("shared Delete: want ErrNoDelete, got %v", err)
	}

	// Instance side rejects everything, even never-set names.
	priv := bnd.NewPrivate()
	if err := priv.Set("fresh", 1); !errors.Is(err, apis.ErrFrozen) {
		t.Fatalf("private Set: want ErrFrozen, got %v", err)
	}
	if err := priv.Delete("fresh"); !errors.Is(err, apis.ErrFrozen) {
		t.Fatalf("private Delete: want ErrFrozen, got %v", err)
	}
}

func TestBind_ConstRequiresFullPolicy(t *testing.T) {
	for _, pol := range []apis.Policy{
		apis.PolicyMutable,
		apis.PolicyWriteOnce,
		apis.PolicyNoDelete,
	} {
		_, err := scope.Bind("test", pol, apis.BindConst, config.DefaultConfig(), builder.New())
		if !errors.Is(err, apis.ErrConstBinding) {
			t.Fatalf("policy %v: want ErrConstBinding, got %v", pol, err)
		}
		var ce *apis.ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("policy %v: want *ConfigError, got %T", pol, err)
		}
	}
}

func TestBind_UnknownBinding(t *testing.T) {
	_, err := scope.Bind("test", apis.PolicyMutable, apis.Binding(99), config.DefaultConfig(), builder.New())
	if !errors.Is(err, apis.ErrUnknownBinding) {
		t.Fatalf("want ErrUnknownBinding, got %v", err)
	}
}
