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

package trace

import (
	"runtime"
	"strings"

	"dirpx.dev/hintx/apis"
)

// Capture collects up to max call-site frames, most recent call first,
// skipping skip frames on top of Capture itself. Frames from the Go
// runtime are filtered out.
func Capture(skip, max int) []apis.Frame {
	if max <= 0 {
		return nil
	}
	// Headroom so runtime frames filtered below do not eat into max.
	pcs := make([]uintptr, max+8)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]apis.Frame, 0, max)
	for {
		fr, more := frames.Next()
		if fr.Function != "" && !strings.HasPrefix(fr.Function, "runtime.") {
			owner, member := ParseFunction(fr.Function)
			out = append(out, apis.Frame{Owner: owner, Member: member, Line: fr.Line})
			if len(out) == max {
				break
			}
		}
		if !more {
			break
		}
	}
	return out
}

// ParseFunction splits a runtime function name such as
// "dirpx.dev/hintx/sample.(*VersionHolder).Version" into an owner
// ("VersionHolder") and a member ("Version"). Package-level functions
// yield the package name as owner.
func ParseFunction(fn string) (owner, member string) {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	i := strings.IndexByte(fn, '.')
	if i < 0 {
		return fn, ""
	}
	pkg, rest := fn[:i], fn[i+1:]
	if j := strings.LastIndexByte(rest, '.'); j >= 0 {
		owner = rest[:j]
		owner = strings.TrimSuffix(strings.TrimPrefix(owner, "(*"), ")")
		return owner, rest[j+1:]
	}
	return pkg, rest
}
