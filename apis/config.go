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

// Config carries read-only knobs that influence attribute-name handling.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// StrictNames controls whether attribute names written into a namespace
	// must be identifier-like dotted segments (e.g. "net.timeout"). If false,
	// any non-empty string within MaxNameLen is accepted.
	StrictNames bool

	// MaxNameLen limits the byte length of attribute names.
	// Acts as a safety guard against pathological keys.
	MaxNameLen int

	// TrimSpace controls whether surrounding whitespace is stripped from
	// attribute names before validation and storage.
	TrimSpace bool
}
