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

package strategy

import (
	"path"

	"dirpx.dev/hintx/apis"
)

// NewResourceStrategy creates an apis.Strategy that covers resource
// loads via resource hint patterns.
func NewResourceStrategy() apis.Strategy {
	return resourceStrategy{}
}

// resourceStrategy matches a loaded resource name against resource hint
// patterns: exact name or path.Match syntax. Malformed patterns fail
// quietly (they never match).
type resourceStrategy struct{}

// Ensure resourceStrategy implements apis.Strategy.
var _ apis.Strategy = (*resourceStrategy)(nil)

// TryMatch searches hints for a resource pattern covering inv.
func (resourceStrategy) TryMatch(hints []apis.Hint, inv apis.Invocation) (bool, bool) {
	if inv.Kind != apis.ResourceLoad {
		return false, false
	}
	for _, h := range hints {
		if h.Kind != apis.HintResource {
			continue
		}
		if h.Target == inv.Target {
			return true, true
		}
		if ok, err := path.Match(h.Target, inv.Target); err == nil && ok {
			return true, true
		}
	}
	return false, true
}
