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

import "reflect"

// Registry is a declarative set of hints: the reflective shapes a test
// author asserts are expected. Implementations must be safe for
// concurrent use and must apply idempotent union semantics (identical
// re-registration is a no-op; a stronger mode upgrades in place).
type Registry interface {
	// RegisterType adds declarations scoped to t. fn may be nil, in which
	// case only a type-level hint is declared.
	RegisterType(t reflect.Type, fn func(TypeHintBuilder)) error
	// RegisterTypeName is RegisterType for a target known only by name.
	RegisterTypeName(target string, fn func(TypeHintBuilder)) error
	// RegisterResource declares that resources matching pattern (exact
	// name or path.Match pattern) are expected to be loaded.
	RegisterResource(pattern string) error
	// RegisterProxy declares that values of function type t are expected
	// to be constructed dynamically.
	RegisterProxy(t reflect.Type) error
	// Add inserts a raw hint. Used for migration between registries.
	Add(h Hint) error
	// Hints returns a snapshot of all registered hints (order is
	// unspecified).
	Hints() []Hint
	// Count returns the number of distinct registered hints.
	Count() int
	// Reset clears all registered hints.
	Reset()
}
