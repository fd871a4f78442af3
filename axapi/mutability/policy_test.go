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

package mutability_test

import (
	"testing"

	"dirpx.dev/attrx/api/mutability"
)

// TestPolicyString verifies that String() returns the expected stable tokens
// for all known mutability.Policy values and a diagnostic form for unknown
// values.
func TestPolicyString(t *testing.T) {
	tests := []struct {
		name   string
		policy mutability.Policy
		want   string
	}{
		{
			name:   "Mutable",
			policy: mutability.Mutable,
			want:   "Mutable",
		},
		{
			name:   "WriteOnce",
			policy: mutability.WriteOnce,
			want:   "WriteOnce",
		},
		{
			name:   "NoDelete",
			policy: mutability.NoDelete,
			want:   "NoDelete",
		},
		{
			name:   "WriteOnceNoDelete",
			policy: mutability.WriteOnceNoDelete,
			want:   "WriteOnceNoDelete",
		},
		{
			name:   "Unknown",
			policy: mutability.Policy(42),
			want:   "Unknown(42)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.String()
			if got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParsePolicyValid verifies that mutability.ParsePolicy correctly parses
// all supported textual representations in a case-insensitive way and with
// optional surrounding whitespace.
func TestParsePolicyValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  mutability.Policy
	}{
		{"Mutable canonical", "Mutable", mutability.Mutable},
		{"Mutable lower", "mutable", mutability.Mutable},
		{"Mutable trimmed", "  mutable  ", mutability.Mutable},

		{"WriteOnce canonical", "WriteOnce", mutability.WriteOnce},
		{"WriteOnce lower", "writeonce", mutability.WriteOnce},
		{"WriteOnce upper", "WRITEONCE", mutability.WriteOnce},

		{"NoDelete canonical", "NoDelete", mutability.NoDelete},
		{"NoDelete lower", "nodelete", mutability.NoDelete},

		{"Combined canonical", "WriteOnceNoDelete", mutability.WriteOnceNoDelete},
		{"Combined lower", "writeoncenodelete", mutability.WriteOnceNoDelete},
		{"Combined trimmed", "  WriteOnceNoDelete  ", mutability.WriteOnceNoDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mutability.ParsePolicy(tt.input)
			if err != nil {
				t.Fatalf("ParsePolicy(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParsePolicyInvalid verifies that mutability.ParsePolicy rejects invalid
// input with a non-nil error.
func TestParsePolicyInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Whitespace", "   "},
		{"Unknown token", "invalid"},
		{"Partial match", "WriteOnc"},
		{"Hyphenated", "write-once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := mutability.ParsePolicy(tt.input); err == nil {
				t.Fatalf("ParsePolicy(%q) error = nil, want non-nil", tt.input)
			}
		})
	}
}

// TestMustParsePolicy verifies the panic contract.
func TestMustParsePolicy(t *testing.T) {
	if got := mutability.MustParsePolicy("nodelete"); got != mutability.NoDelete {
		t.Fatalf("MustParsePolicy(nodelete) = %v, want NoDelete", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustParsePolicy(invalid) did not panic")
		}
	}()
	mutability.MustParsePolicy("invalid")
}

// TestPolicyTextRoundTrip verifies MarshalText/UnmarshalText over all known
// values and the error paths for unknown and empty input.
func TestPolicyTextRoundTrip(t *testing.T) {
	for _, p := range []mutability.Policy{
		mutability.Mutable,
		mutability.WriteOnce,
		mutability.NoDelete,
		mutability.WriteOnceNoDelete,
	} {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", p, err)
		}

		var back mutability.Policy
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", b, err)
		}
		if back != p {
			t.Fatalf("round trip %v -> %q -> %v", p, b, back)
		}
	}

	if _, err := mutability.Policy(42).MarshalText(); err == nil {
		t.Fatalf("MarshalText(unknown) error = nil, want non-nil")
	}

	prev := mutability.NoDelete
	if err := prev.UnmarshalText([]byte("bogus")); err == nil {
		t.Fatalf("UnmarshalText(bogus) error = nil, want non-nil")
	}
	if prev != mutability.NoDelete {
		t.Fatalf("UnmarshalText(bogus) modified target: %v", prev)
	}
	if err := prev.UnmarshalText(nil); err == nil {
		t.Fatalf("UnmarshalText(empty) error = nil, want non-nil")
	}
}
