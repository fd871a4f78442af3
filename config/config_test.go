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

package config_test

import (
	"testing"

	"dirpx.dev/attrx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.StrictNames != config.DefaultStrictNames {
		t.Fatalf("StrictNames = %v, want %v", got.StrictNames, config.DefaultStrictNames)
	}
	if got.MaxNameLen != config.DefaultMaxNameLen {
		t.Fatalf("MaxNameLen = %d, want %d", got.MaxNameLen, config.DefaultMaxNameLen)
	}
	if got.TrimSpace != config.DefaultTrimSpace {
		t.Fatalf("TrimSpace = %v, want %v", got.TrimSpace, config.DefaultTrimSpace)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithStrictNames(t *testing.T) {
	c := config.NewConfig(config.WithStrictNames(true))
	if !c.StrictNames {
		t.Fatalf("StrictNames = %v, want true", c.StrictNames)
	}

	c2 := config.NewConfig(config.WithStrictNames(false))
	if c2.StrictNames {
		t.Fatalf("StrictNames = %v, want false", c2.StrictNames)
	}
}

func TestWithTrimSpace(t *testing.T) {
	c := config.NewConfig(config.WithTrimSpace(true))
	if !c.TrimSpace {
		t.Fatalf("TrimSpace = %v, want true", c.TrimSpace)
	}

	c2 := config.NewConfig(config.WithTrimSpace(false))
	if c2.TrimSpace {
		t.Fatalf("TrimSpace = %v, want false", c2.TrimSpace)
	}
}

func TestWithMaxNameLen_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxNameLen(64))
	if c.MaxNameLen != 64 {
		t.Fatalf("MaxNameLen = %d, want 64", c.MaxNameLen)
	}
}

func TestWithMaxNameLen_NonPositive_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxNameLen(0))
	if c.MaxNameLen != config.DefaultMaxNameLen {
		t.Fatalf("MaxNameLen = %d, want default %d", c.MaxNameLen, config.DefaultMaxNameLen)
	}

	c2 := config.NewConfig(config.WithMaxNameLen(-5))
	if c2.MaxNameLen != config.DefaultMaxNameLen {
		t.Fatalf("MaxNameLen = %d, want default %d", c2.MaxNameLen, config.DefaultMaxNameLen)
	}
}
