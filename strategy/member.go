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

// NewMemberStrategy creates an apis.Strategy that covers reflective
// invocations by exact member descriptors.
func NewMemberStrategy() apis.Strategy {
	return memberStrategy{}
}

// memberStrategy matches an invocation against hints with an identical
// member descriptor (name plus exact parameter type-name sequence) and a
// mode that covers the invocation's required mode. Malformed parameter
// lists never match; there is no overload widening.
type memberStrategy struct{}

// Ensure memberStrategy implements apis.Strategy.
var _ apis.Strategy = (*memberStrategy)(nil)

// TryMatch searches hints for an exact member hint covering inv.
func (memberStrategy) TryMatch(hints []apis.Hint, inv apis.Invocation) (bool, bool) {
	if !reflective(inv.Kind) {
		return false, false
	}
	required := inv.Kind.RequiredMode()
	want := inv.Member.Key()
	for _, h := range hints {
		if h.Kind != apis.HintReflection || h.Target != inv.Target {
			continue
		}
		if h.Member.Key() == want && h.Mode.Covers(required) {
			return true, true
		}
	}
	return false, true
}

// reflective reports whether kind belongs to the reflection hint family.
func reflective(k apis.Kind) bool {
	switch k {
	case apis.TypeLookup, apis.MethodLookup, apis.MethodInvoke,
		apis.FieldAccess, apis.ConstructorInvoke:
		return true
	default:
		return false
	}
}
