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

// Package scope binds a policy to one or both of a class's namespaces at
// definition time. The binding decides which namespace an operation's policy
// check runs against; selecting the namespace itself is pure and never fails.
package scope

import (
	"dirpx.dev/attrx/apis"
)

// Binding is the result of binding a policy to a class's namespaces:
// the single shared namespace, created once, and a factory producing one
// fresh private namespace per instance.
type Binding struct {
	// Shared is the class-level namespace, one copy for the class lifetime.
	Shared apis.Namespace
	// NewPrivate creates the private namespace for a new instance.
	NewPrivate func() apis.Namespace
}

// Bind validates the (policy, binding) combination for the named class and
// materializes its namespaces through bld. Unsupported combinations surface
// as *apis.ConfigError.
func Bind(class string, pol apis.Policy, b apis.Binding, cfg apis.Config, bld apis.Builder) (Binding, error) {
	bind, ok := binders[b]
	if !ok {
		return Binding{}, &apis.ConfigError{Err: apis.ErrUnknownBinding, Detail: class}
	}
	return bind(class, pol, cfg, bld)
}

// binder materializes the namespace pair for one binding mode.
type binder func(class string, pol apis.Policy, cfg apis.Config, bld apis.Builder) (Binding, error)

// binders maps each supported binding mode to its materializer.
var binders = map[apis.Binding]binder{
	apis.BindSharedOnly: bindSharedOnly,
	apis.BindUniform:    bindUniform,
	apis.BindConst:      bindConst,
}

// bindSharedOnly governs only the shared namespace; instances get plain
// mutable storage.
func bindSharedOnly(class string, pol apis.Policy, cfg apis.Config, bld apis.Builder) (Binding, error) {
	return Binding{
		Shared: bld.BuildNamespace(cfg, pol, apis.ScopeShared, class),
		NewPrivate: func() apis.Namespace {
			return bld.BuildNamespace(cfg, apis.PolicyMutable, apis.ScopeInstance, class)
		},
	}, nil
}

// bindUniform applies the identical policy to both namespaces, evaluated
// independently per namespace: a name set in the shared namespace does not
// block the same name in a private one.
func bindUniform(class string, pol apis.Policy, cfg apis.Config, bld apis.Builder) (Binding, error) {
	return Binding{
		Shared: bld.BuildNamespace(cfg, pol, apis.ScopeShared, class),
		NewPrivate: func() apis.Namespace {
			return bld.BuildNamespace(cfg, pol, apis.ScopeInstance, class)
		},
	}, nil
}

// bindConst is the ConstClass specialization: write-once+no-delete on the
// shared namespace, all instance mutation forbidden. Any other policy is a
// configuration error rather than a silent relaxation.
func bindConst(class string, pol apis.Policy, cfg apis.Config, bld apis.Builder) (Binding, error) {
	if pol != apis.PolicyWriteOnceNoDelete {
		return Binding{}, &apis.ConfigError{Err: apis.ErrConstBinding, Detail: class}
	}
	return Binding{
		Shared: bld.BuildNamespace(cfg, pol, apis.ScopeShared, class),
		NewPrivate: func() apis.Namespace {
			return bld.BuildFrozen(cfg, class)
		},
	}, nil
}
