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
	"dirpx.dev/hintx/apis"
)

// NewCategoryStrategy creates an apis.Strategy that covers reflective
// invocations via type-level declarations.
func NewCategoryStrategy() apis.Strategy {
	return categoryStrategy{}
}

// categoryStrategy is the blanket fallback behind the member strategy:
// a type lookup is sanctioned by any reflection hint on the target, and
// member operations are sanctioned by a MemberAll hint with sufficient
// mode.
type categoryStrategy struct{}

// Ensure categoryStrategy implements apis.Strategy.
var _ apis.Strategy = (*categoryStrategy)(nil)

// TryMatch searches hints for a type-level declaration covering inv.
func (categoryStrategy) TryMatch(hints []apis.Hint, inv apis.Invocation) (bool, bool) {
	if !reflective(inv.Kind) {
		return false, false
	}
	required := inv.Kind.RequiredMode()
	for _, h := range hints {
		if h.Kind != apis.HintReflection || h.Target != inv.Target {
			continue
		}
		// Declaring anything about a type sanctions resolving the type.
		if inv.Kind == apis.TypeLookup {
			return true, true
		}
		if h.Member.Kind == apis.MemberAll && h.Mode.Covers(required) {
			return true, true
		}
	}
	return false, true
}
