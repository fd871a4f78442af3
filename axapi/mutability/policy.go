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

// Policy identifies the mutation rules a governed attribute namespace
// enforces.
//
// # Overview
//
// Policy is a small enumerated type naming the four rule combinations an
// attribute namespace can be defined with. It is the wire- and
// configuration-facing counterpart of the rule pair the enforcement layer
// consumes: configuration files, environment variables, and admin surfaces
// speak in Policy tokens, and factory code maps a parsed Policy onto the
// concrete enforcement machinery.
//
// Policy is intentionally closed: the four values exhaust the combinations
// of the write-once and no-delete rules, so implementations MUST NOT attach
// additional semantics to out-of-range values.
//
// # Values
//
//   - Mutable           — no restriction; set and delete always permitted.
//   - WriteOnce         — a set name rejects reassignment until deleted.
//   - NoDelete          — a set name rejects deletion; reassignment is free.
//   - WriteOnceNoDelete — both rules; a set name is fixed forever.
//
// # Contract
//
//   - The mapping from Policy values to their textual tokens MUST remain
//     stable; systems persist these tokens in configuration.
//   - Policy values are plain integers and MUST be safe to share across
//     goroutines.
//   - Policy selects rules only; it says nothing about which namespaces of
//     a class the rules govern. That is the Binding's concern.
type Policy int

const (
	// Mutable places no restriction on the namespace: any name may be
	// assigned, reassigned, and deleted at any time.
	//
	// Mutable is the zero value, so an unconfigured Policy means
	// "unrestricted" rather than an error.
	Mutable Policy = iota

	// WriteOnce rejects assignment to a name that is currently set.
	//
	// # Semantics
	//
	// The rule keys on current set-ness, not history: after a permitted
	// deletion the name is unset again and MUST accept exactly one new
	// assignment. Rejections MUST leave the stored value unchanged.
	WriteOnce

	// NoDelete rejects deletion of a name that is currently set.
	//
	// # Semantics
	//
	// Assignment is unrestricted: a set name MAY be overwritten freely,
	// it just can never be removed. Deleting an unset name is not a
	// policy matter and MUST surface as not-found.
	NoDelete

	// WriteOnceNoDelete combines both rules: the first assignment to a
	// name is also the last, and the name can never be removed.
	//
	// # Semantics
	//
	// Because no deletion is ever permitted, the re-arming behavior of
	// WriteOnce is unreachable; a set name is fixed for the lifetime of
	// the namespace.
	WriteOnceNoDelete
)

// String returns a human-readable representation of the Policy value.
//
// # Semantics
//
// String implements fmt.Stringer and provides short, stable identifiers
// suitable for logging, metrics labels, configuration dumps, and debugging.
// For all defined enum values, the returned strings are:
//
//   - Mutable           -> "Mutable"
//   - WriteOnce         -> "WriteOnce"
//   - NoDelete          -> "NoDelete"
//   - WriteOnceNoDelete -> "WriteOnceNoDelete"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This behavior
// is intentional and MUST NOT panic, so that corrupted or unexpected values
// can still be surfaced safely in logs and diagnostics.
func (p Policy) String() string {
	switch p {
	case Mutable:
		return "Mutable"
	case WriteOnce:
		return "WriteOnce"
	case NoDelete:
		return "NoDelete"
	case WriteOnceNoDelete:
		return "WriteOnceNoDelete"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParsePolicy parses a textual representation of a Policy.
//
// # Overview
//
// ParsePolicy converts a string token into the corresponding Policy value.
// It accepts the same canonical tokens produced by Policy.String() for
// known values, with case-insensitive matching.
//
// Accepted (case-insensitive) inputs:
//
//   - "Mutable"           -> Mutable
//   - "WriteOnce"         -> WriteOnce
//   - "NoDelete"          -> NoDelete
//   - "WriteOnceNoDelete" -> WriteOnceNoDelete
//
// Any other input results in a non-nil error.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - On success, ParsePolicy returns a valid Policy and a nil error.
//   - On failure, ParsePolicy returns Mutable and a non-nil error; callers
//     MUST NOT rely on the returned Policy value in the error case.
//   - ParsePolicy MUST NOT panic for any input.
//
// # Usage
//
// ParsePolicy is suitable for parsing configuration values, environment
// variables, CLI flags, and other human-authored or external inputs. For
// hard-coded values that are expected to be valid, callers MAY prefer
// MustParsePolicy for brevity.
func ParsePolicy(s string) (Policy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Mutable, fmt.Errorf("mutability: empty policy")
	}

	switch strings.ToUpper(trimmed) {
	case "MUTABLE":
		return Mutable, nil
	case "WRITEONCE":
		return WriteOnce, nil
	case "NODELETE":
		return NoDelete, nil
	case "WRITEONCENODELETE":
		return WriteOnceNoDelete, nil
	default:
		return Mutable, fmt.Errorf("mutability: unknown policy %q", s)
	}
}

// MustParsePolicy is like ParsePolicy but panics on invalid input.
//
// # Overview
//
// MustParsePolicy is a convenience helper for contexts where the input
// string is expected to be a valid Policy token and encountering an invalid
// value is considered a programmer error rather than a recoverable
// condition.
//
// It is intended for:
//
//   - Hard-coded configuration in Go code.
//   - Tests and examples.
//   - Initialization code where failing fast with a panic is acceptable.
//
// Callers MUST NOT use MustParsePolicy on untrusted or user-supplied data;
// they SHOULD use ParsePolicy instead and handle errors.
func MustParsePolicy(s string) Policy {
	p, err := ParsePolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText encodes Policy as text.
//
// # Overview
//
// MarshalText implements encoding.TextMarshaler for Policy. For all defined
// Policy values it returns the same tokens as Policy.String().
//
// # Contract
//
//   - On success, MarshalText returns a non-nil byte slice and a nil error.
//   - For unknown or out-of-range Policy values, MarshalText returns a
//     non-nil error and MUST NOT silently serialize an "Unknown(...)" form;
//     this avoids persisting potentially invalid states.
//   - MarshalText MUST NOT panic for any Policy value.
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case Mutable, WriteOnce, NoDelete, WriteOnceNoDelete:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("mutability: cannot marshal unknown policy %d", p)
	}
}

// UnmarshalText decodes a Policy from its textual representation.
//
// # Overview
//
// UnmarshalText implements encoding.TextUnmarshaler for Policy. It accepts
// the same textual tokens as ParsePolicy, with case-insensitive matching
// and surrounding whitespace ignored.
//
// # Contract
//
//   - On success, *p is set to the parsed value and a nil error is
//     returned.
//   - On failure, *p MUST NOT be modified and a non-nil error is returned.
//   - UnmarshalText MUST NOT panic for any input.
//   - An empty text slice is treated as an error.
func (p *Policy) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("mutability: empty policy")
	}

	value, err := ParsePolicy(trimmed)
	if err != nil {
		return err
	}

	*p = value
	return nil
}
