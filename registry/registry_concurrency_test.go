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

package registry_test

import (
	"runtime"
	"strconv"
	"sync"
	"testing"

	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/registry"
)

// TestConcurrentAddAndSnapshot verifies that Add/Hints/Count are race-free
// and that concurrent identical registrations collapse to one entry each.
func TestConcurrentAddAndSnapshot(t *testing.T) {
	reg := registry.New()

	const targets = 10
	workers := runtime.GOMAXPROCS(0) * 2
	if workers < 4 {
		workers = 4
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < targets; i++ {
				target := "conc.T" + strconv.Itoa(i)
				_ = reg.RegisterTypeName(target, func(b apis.TypeHintBuilder) {
					b.WithMethod("M", nil, apis.ModeIntrospect)
					b.WithMethod("M", nil, apis.ModeInvoke)
				})
				_ = reg.Hints()
				_ = reg.Count()
			}
		}()
	}
	wg.Wait()

	// One type hint and one method hint per target, regardless of workers.
	if got := reg.Count(); got != targets*2 {
		t.Fatalf("Count() = %d, want %d", got, targets*2)
	}
	for _, h := range reg.Hints() {
		if h.Member.Kind == apis.MemberMethod && h.Mode != apis.ModeInvoke {
			t.Fatalf("method hint %q not upgraded to invoke", h.Key())
		}
	}
}
