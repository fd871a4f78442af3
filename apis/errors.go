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

import (
	"errors"
	"fmt"
)

var (
	// ErrWriteOnce is the rule violated when a set targets an already-set
	// name under a write-once policy.
	ErrWriteOnce = errors.New("attrx: write-once policy forbids reassignment")
	// ErrNoDelete is the rule violated when a delete targets a set name
	// under a no-delete policy.
	ErrNoDelete = errors.New("attrx: no-delete policy forbids deletion")
	// ErrFrozen is the rule violated when any mutation targets the private
	// namespace of a const class.
	ErrFrozen = errors.New("attrx: const class forbids instance mutation")
	// ErrNotFound is returned on get/delete of a name that is unset.
	ErrNotFound = errors.New("attrx: attribute is not set")
	// ErrConfig is the base of all definition/setup-time errors.
	ErrConfig = errors.New("attrx: invalid configuration")
)

var (
	// ErrConstBinding rejects BindConst with a policy other than
	// write-once+no-delete.
	ErrConstBinding = fmt.Errorf("%w: const binding requires the write-once+no-delete policy", ErrConfig)
	// ErrUnknownBinding rejects an unrecognized scope binding.
	ErrUnknownBinding = fmt.Errorf("%w: unknown scope binding", ErrConfig)
	// ErrDuplicateClass rejects defining two classes with the same name.
	ErrDuplicateClass = fmt.Errorf("%w: class already defined", ErrConfig)
	// ErrSealed rejects definitions once the catalog has been sealed.
	ErrSealed = fmt.Errorf("%w: catalog is sealed", ErrConfig)
)

// Violation reports a mutation rejected by policy. It carries the violated
// rule and the target's identity so misuse is diagnosable without inspecting
// internals.
type Violation struct {
	// Rule is one of ErrWriteOnce, ErrNoDelete, ErrFrozen.
	Rule error
	// Class is the name of the container class.
	Class string
	// Attr is the offending attribute name.
	Attr string
	// Scope is the namespace the operation targeted.
	Scope Scope
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: attribute %q on class %q (%s namespace)",
		v.Rule.Error(), v.Attr, v.Class, v.Scope)
}

// Unwrap exposes the violated rule for errors.Is matching.
func (v *Violation) Unwrap() error { return v.Rule }

// NotFoundError reports a get or delete of an unset attribute.
type NotFoundError struct {
	// Class is the name of the container class.
	Class string
	// Attr is the missing attribute name.
	Attr string
	// Scope is the namespace the operation targeted.
	Scope Scope
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: attribute %q on class %q (%s namespace)",
		ErrNotFound.Error(), e.Attr, e.Class, e.Scope)
}

// Unwrap exposes ErrNotFound for errors.Is matching.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConfigError reports misuse detected at definition or setup time.
type ConfigError struct {
	// Err is the specific configuration sentinel (all wrap ErrConfig).
	Err error
	// Detail optionally names the offending input.
	Detail string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

// Unwrap exposes the specific sentinel (and transitively ErrConfig).
func (e *ConfigError) Unwrap() error { return e.Err }
