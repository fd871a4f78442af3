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

package names

import (
	"fmt"
	"strings"

	"dirpx.dev/attrx/apis"
	"dirpx.dev/attrx/config"
)

var (
	// ErrEmptyName is returned when an empty attribute name is provided
	// (or one that trims to empty under TrimSpace).
	ErrEmptyName = fmt.Errorf("%w: empty attribute name", apis.ErrConfig)
	// ErrNameTooLong is returned when an attribute name exceeds MaxNameLen.
	ErrNameTooLong = fmt.Errorf("%w: attribute name exceeds length limit", apis.ErrConfig)
	// ErrInvalidName is returned under StrictNames when a name is not made
	// of identifier-like dotted segments.
	ErrInvalidName = fmt.Errorf("%w: attribute name is not identifier-like", apis.ErrConfig)
)

// Normalize canonicalizes an attribute name according to config
// (TrimSpace/MaxNameLen/StrictNames) and returns it, or an error if the name
// cannot be accepted.
//
// Normalization policy:
//   - TrimSpace: strip surrounding whitespace before any other check.
//   - Empty names are always rejected.
//   - Names longer than MaxNameLen bytes are rejected.
//   - StrictNames: the name must be one or more dot-separated segments, each
//     starting with a letter or underscore followed by letters, digits or
//     underscores.
//
// If MaxNameLen <= 0, DefaultMaxNameLen is used.
func Normalize(name string, cfg apis.Config) (string, error) {
	if cfg.TrimSpace {
		name = strings.TrimSpace(name)
	}
	if name == "" {
		return "", ErrEmptyName
	}

	max := cfg.MaxNameLen
	if max <= 0 {
		max = config.DefaultMaxNameLen
	}
	if len(name) > max {
		return "", ErrNameTooLong
	}

	if cfg.StrictNames && !isDottedIdent(name) {
		return "", ErrInvalidName
	}
	return name, nil
}

// isDottedIdent reports whether s is one or more dot-separated identifier
// segments. Empty segments (leading, trailing or doubled dots) fail.
func isDottedIdent(s string) bool {
	for _, seg := range strings.Split(s, ".") {
		if !isIdent(seg) {
			return false
		}
	}
	return true
}

// isIdent reports whether s is a non-empty ASCII identifier:
// [A-Za-z_][A-Za-z0-9_]*.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
