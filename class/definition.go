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

package class

import "dirpx.dev/attrx/apis"

// Definition is the (policy, binding) pair a class is defined with.
// The zero value is a mutable, shared-only class.
type Definition struct {
	// Policy is the mutation policy for governed namespaces.
	Policy apis.Policy
	// Binding states which namespaces Policy governs.
	Binding apis.Binding
}

// NewDefinition constructs a Definition from the given options.
func NewDefinition(opts ...Option) Definition {
	var def Definition
	for _, opt := range opts {
		opt(&def)
	}
	return def
}

// Option is a functional option that mutates a Definition during construction.
type Option func(*Definition)

// WithPolicy sets the full policy pair.
func WithPolicy(p apis.Policy) Option {
	return func(d *Definition) {
		d.Policy = p
	}
}

// WithWriteOnce enables the write-once rule.
func WithWriteOnce() Option {
	return func(d *Definition) {
		d.Policy.WriteOnce = true
	}
}

// WithNoDelete enables the no-delete rule.
func WithNoDelete() Option {
	return func(d *Definition) {
		d.Policy.NoDelete = true
	}
}

// WithBinding sets the scope binding.
func WithBinding(b apis.Binding) Option {
	return func(d *Definition) {
		d.Binding = b
	}
}

// WithConst selects the ConstClass specialization: const binding with the
// write-once+no-delete policy it requires.
func WithConst() Option {
	return func(d *Definition) {
		d.Policy = apis.PolicyWriteOnceNoDelete
		d.Binding = apis.BindConst
	}
}
