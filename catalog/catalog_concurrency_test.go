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

package catalog_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/attrx/catalog"
	"dirpx.dev/attrx/config"
)

// TestConcurrentAddAndLookup verifies that Add/Lookup/Entries/Count are
// race-free and consistent under concurrent use. Individual namespaces make
// no such promise; the catalog is process-wide state and does.
func TestConcurrentAddAndLookup(t *testing.T) {
	cat := catalog.New(config.DefaultConfig())

	names := []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9"}
	stubs := make([]*stub, len(names))
	for i, n := range names {
		stubs[i] = newStub(n)
		if err := cat.Add(stubs[i]); err != nil {
			t.Fatalf("add %s: %v", n, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				n := names[i%len(names)]
				if got, ok := cat.Lookup(n); !ok || got == nil {
					t.Errorf("lookup failed for %s: ok=%v", n, ok)
					return
				}
				_ = cat.Count()
				_ = cat.Entries()
			}
		}()
	}

	// Writers (idempotent re-add)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				s := stubs[i%len(stubs)]
				if err := cat.Add(s); err != nil {
					t.Errorf("re-add %s: %v", s.Name(), err)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := cat.Count(); got != len(names) {
		t.Fatalf("Count() = %d, want %d", got, len(names))
	}
}
