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

import "dirpx.dev/hintx/rxapi/capture"

// Config carries read-only recording and diagnostic knobs.
// It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// MaxFrames limits call-site trace depth captured per invocation.
	// Acts as a safety guard against pathological stacks.
	MaxFrames int

	// IncludeArgs controls whether argument values of invoke-kind
	// operations are formatted into invocations. If false, diagnostics
	// fall back to parameter type names.
	IncludeArgs bool

	// Capture selects the session capture policy (every invocation,
	// deduplicated shapes, or none).
	Capture capture.Policy
}
