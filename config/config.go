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

package config

import (
	"dirpx.dev/attrx/apis"
)

const (
	// DefaultStrictNames represents the default for StrictNames.
	// When false, any non-empty attribute name within MaxNameLen is accepted,
	// matching plain mapping semantics.
	DefaultStrictNames = false
	// DefaultMaxNameLen represents the default for MaxNameLen.
	// A value of 255 should be sufficient for all practical purposes.
	DefaultMaxNameLen = 255
	// DefaultTrimSpace represents the default for TrimSpace.
	// When false, attribute names are stored exactly as supplied.
	DefaultTrimSpace = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxNameLen is valid.
	if cfg.MaxNameLen <= 0 {
		cfg.MaxNameLen = DefaultMaxNameLen
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		StrictNames: DefaultStrictNames,
		MaxNameLen:  DefaultMaxNameLen,
		TrimSpace:   DefaultTrimSpace,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrictNames sets the StrictNames option.
func WithStrictNames(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictNames = strict
	}
}

// WithMaxNameLen sets the MaxNameLen option.
// A non-positive value resets to the default.
func WithMaxNameLen(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxNameLen = DefaultMaxNameLen
			return
		}
		c.MaxNameLen = max
	}
}

// WithTrimSpace sets the TrimSpace option.
func WithTrimSpace(trim bool) Option {
	return func(c *apis.Config) {
		c.TrimSpace = trim
	}
}
