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

package common

// Sealer closes a registry or catalog against further definitions.
//
// # Overview
//
// Sealer models the lifecycle transition from a setup phase, during which
// new entries may be defined, to a steady state in which the set of entries
// is fixed. Applications typically seal once startup wiring is complete so
// that late, accidental definitions surface as errors instead of silently
// extending the catalog.
//
// Sealing governs definition of NEW entries only. It MUST NOT affect
// operations on entries that already exist: their attribute namespaces keep
// enforcing whatever mutation policy they were defined with, no more and no
// less.
//
// # Contract
//
//   - After Seal returns, attempts to define new entries MUST fail with an
//     error matchable against the implementation's sealed sentinel.
//   - Seal MUST be idempotent: sealing an already-sealed catalog is a
//     no-op, not an error.
//   - Unseal MUST restore the ability to define entries and MUST likewise
//     be idempotent.
//   - IsSealed MUST report the current state and MUST be safe to call
//     concurrently with Seal and Unseal.
//   - Implementations MUST NOT perform blocking operations or I/O in any
//     of the three methods.
//
// # Usage
//
//	func finishStartup(s common.Sealer) {
//	    s.Seal()
//	    // past this point, new definitions are configuration errors
//	}
type Sealer interface {
	// Seal closes the catalog against new definitions.
	Seal()

	// Unseal re-opens the catalog for new definitions.
	Unseal()

	// IsSealed reports whether the catalog is currently sealed.
	IsSealed() bool
}
