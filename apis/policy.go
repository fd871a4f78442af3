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

// Policy is the immutable pair of mutation rules attached to a namespace at
// class definition time. The two flags are evaluated independently from the
// slot's current presence, never from a mutation counter: WriteOnce means one
// successful transition into "set" per lifetime of a slot (a permitted delete
// re-arms exactly one more write), and NoDelete blocks the reset path, so the
// conjunction yields single-assignment-forever semantics.
type Policy struct {
	// WriteOnce rejects re-assignment of a name that is already set.
	WriteOnce bool
	// NoDelete rejects deletion of a name that is set.
	NoDelete bool
}

var (
	// PolicyMutable imposes no restriction.
	PolicyMutable = Policy{}
	// PolicyWriteOnce rejects re-assignment of set names.
	PolicyWriteOnce = Policy{WriteOnce: true}
	// PolicyNoDelete rejects deletion of set names.
	PolicyNoDelete = Policy{NoDelete: true}
	// PolicyWriteOnceNoDelete is the conjunction of both rules.
	PolicyWriteOnceNoDelete = Policy{WriteOnce: true, NoDelete: true}
)

// String returns a short, stable label for the policy.
func (p Policy) String() string {
	switch {
	case p.WriteOnce && p.NoDelete:
		return "write-once+no-delete"
	case p.WriteOnce:
		return "write-once"
	case p.NoDelete:
		return "no-delete"
	default:
		return "mutable"
	}
}
