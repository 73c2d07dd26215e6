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

package common

import "dirpx.dev/hintx/apis"

// Registrar lets a component contribute its own expected hints to a
// registry.
//
// # Overview
//
// Registrar is the extension point for code that knows which reflective
// shapes it will exercise at runtime. Instead of every test spelling out
// the same declarations, a package can ship one Registrar and tests apply
// it via registry.Apply.
//
// Registrars describe *expected* behavior; they do not perform any
// reflective operation themselves.
//
// # Usage
//
//	type StoreHints struct{}
//
//	func (StoreHints) RegisterHints(reg apis.Registry) {
//	    _ = reg.RegisterTypeName("store.Record", func(b apis.TypeHintBuilder) {
//	        b.WithMethod("ID", nil, apis.ModeInvoke)
//	    })
//	}
//
// # Contract
//
//   - RegisterHints MUST be idempotent: applying the same Registrar to
//     the same registry twice MUST leave the registry behaviorally
//     unchanged (the registry's union semantics make plain registration
//     calls idempotent already).
//   - RegisterHints MUST be safe for concurrent use with other
//     registrations on the same registry.
//   - RegisterHints MUST NOT perform blocking operations or I/O; it only
//     declares shapes.
//   - Implementations SHOULD register the weakest mode that satisfies
//     their runtime behavior (ModeIntrospect unless invocation happens).
type Registrar interface {
	// RegisterHints declares the reflective shapes this component
	// exercises at runtime.
	RegisterHints(reg apis.Registry)
}
