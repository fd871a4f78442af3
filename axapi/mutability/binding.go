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

package mutability

import (
	"fmt"
	"strings"
)

// Binding identifies which of a class's namespaces its Policy governs.
//
// # Overview
//
// A class owns two attribute namespaces: one shared copy at the class
// level, visible through every instance, and one private copy per
// instance. Binding selects the scope of enforcement: the same Policy can
// restrict only the shared namespace, both namespaces independently, or, in
// the const specialization, freeze instances outright.
//
// Binding is the configuration-facing token; enforcement code receives the
// parsed value and selects the corresponding wiring.
//
// # Values
//
//   - SharedOnly — Policy governs the shared namespace; private namespaces
//     are unrestricted.
//   - Uniform    — Policy governs both namespaces, evaluated independently
//     per namespace.
//   - Const      — shared namespace is write-once+no-delete; private
//     namespaces reject every mutation.
//
// # Contract
//
//   - The token mapping MUST remain stable; configuration persists it.
//   - Const is only meaningful together with the WriteOnceNoDelete policy;
//     implementations MUST reject other pairings at definition time rather
//     than silently adjusting either side.
type Binding int

const (
	// SharedOnly applies the class policy to the shared namespace only.
	// Instance attributes remain freely mutable regardless of policy.
	//
	// SharedOnly is the zero value: an unconfigured Binding governs the
	// narrowest scope.
	SharedOnly Binding = iota

	// Uniform applies the identical policy to the shared namespace and to
	// every instance's private namespace.
	//
	// # Semantics
	//
	// Evaluation is per-namespace: a name set in the shared namespace does
	// not consume the single write of the same name in any instance, and
	// distinct instances never affect each other.
	Uniform

	// Const marks the const-class specialization.
	//
	// # Semantics
	//
	// The shared namespace behaves as WriteOnceNoDelete; every instance
	// namespace rejects all sets and deletes outright, including deletes
	// of unset names. This instance behavior is not expressible as a
	// policy pair, which is why Const is a distinct binding rather than a
	// fifth policy.
	Const
)

// String returns a human-readable representation of the Binding value.
//
// For all defined enum values, the returned strings are:
//
//   - SharedOnly -> "SharedOnly"
//   - Uniform    -> "Uniform"
//   - Const      -> "Const"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)" and MUST NOT panic.
func (b Binding) String() string {
	switch b {
	case SharedOnly:
		return "SharedOnly"
	case Uniform:
		return "Uniform"
	case Const:
		return "Const"
	default:
		return fmt.Sprintf("Unknown(%d)", b)
	}
}

// ParseBinding parses a textual representation of a Binding.
//
// It accepts the same canonical tokens produced by Binding.String() for
// known values, with case-insensitive matching and surrounding whitespace
// ignored. Any other input results in a non-nil error; callers MUST NOT
// rely on the returned Binding value in the error case.
func ParseBinding(s string) (Binding, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return SharedOnly, fmt.Errorf("mutability: empty binding")
	}

	switch strings.ToUpper(trimmed) {
	case "SHAREDONLY":
		return SharedOnly, nil
	case "UNIFORM":
		return Uniform, nil
	case "CONST":
		return Const, nil
	default:
		return SharedOnly, fmt.Errorf("mutability: unknown binding %q", s)
	}
}

// MustParseBinding is like ParseBinding but panics on invalid input.
//
// It is intended for hard-coded configuration, tests, and initialization
// code where failing fast is acceptable. Callers MUST NOT use it on
// untrusted input.
func MustParseBinding(s string) Binding {
	b, err := ParseBinding(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MarshalText encodes Binding as text.
//
// For defined values it returns the same tokens as Binding.String(). For
// unknown values it returns a non-nil error rather than serializing a
// diagnostic form.
func (b Binding) MarshalText() ([]byte, error) {
	switch b {
	case SharedOnly, Uniform, Const:
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("mutability: cannot marshal unknown binding %d", b)
	}
}

// UnmarshalText decodes a Binding from its textual representation.
//
// It accepts the same tokens as ParseBinding. On failure *b is left
// unchanged and a non-nil error is returned; an empty text slice is an
// error.
func (b *Binding) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("mutability: empty binding")
	}

	value, err := ParseBinding(trimmed)
	if err != nil {
		return err
	}

	*b = value
	return nil
}
