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

package builder

import (
	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/matcher"
	"dirpx.dev/hintx/registry"
	"dirpx.dev/hintx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its hints are migrated into the new registry.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry, _ any) apis.Registry {
	reg := registry.New()
	if prev != nil {
		for _, h := range prev.Hints() {
			_ = reg.Add(h)
		}
	}
	return reg
}

// BuildMatcher builds and returns a new apis.Matcher over reg with the
// default coverage strategy chain: exact members first, then type-level
// declarations, then resource and proxy hints.
func (b *builder) BuildMatcher(_ apis.Config, reg apis.Registry, _ any) apis.Matcher {
	return matcher.New(
		reg,
		strategy.NewMemberStrategy(),
		strategy.NewCategoryStrategy(),
		strategy.NewResourceStrategy(),
		strategy.NewProxyStrategy(),
	)
}
