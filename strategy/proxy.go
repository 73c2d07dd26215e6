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

// NewProxyStrategy creates an apis.Strategy that covers dynamic function
// construction via proxy hints.
func NewProxyStrategy() apis.Strategy {
	return proxyStrategy{}
}

// proxyStrategy matches a proxy creation against proxy hints by exact
// function type name.
type proxyStrategy struct{}

// Ensure proxyStrategy implements apis.Strategy.
var _ apis.Strategy = (*proxyStrategy)(nil)

// TryMatch searches hints for a proxy hint covering inv.
func (proxyStrategy) TryMatch(hints []apis.Hint, inv apis.Invocation) (bool, bool) {
	if inv.Kind != apis.ProxyCreate {
		return false, false
	}
	for _, h := range hints {
		if h.Kind == apis.HintProxy && h.Target == inv.Target {
			return true, true
		}
	}
	return false, true
}
