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

// MatchResult is the per-invocation outcome of a coverage check.
type MatchResult struct {
	// Invocation is the checked invocation.
	Invocation Invocation
	// Covered reports whether some registered hint sanctions it.
	Covered bool
	// Diagnostic is a human-readable explanation, populated only when
	// the invocation is uncovered.
	Diagnostic string
}

// Matcher decides whether recorded invocations are covered by a registry.
// A Matcher is a pure function over (registry, invocations); it holds no
// mutable state and performs no I/O beyond formatting.
type Matcher interface {
	// Check evaluates every invocation and returns one result per
	// invocation, in input order.
	Check(invs []Invocation) []MatchResult
	// Match succeeds iff every invocation is covered; otherwise it
	// returns an error carrying every uncovered invocation's diagnostic.
	Match(invs []Invocation) error
}

// Strategy is one pluggable coverage step. A Matcher chains strategies in
// order (e.g. member -> category -> resource -> proxy); an invocation is
// covered as soon as any strategy covers it.
type Strategy interface {
	// TryMatch reports whether some hint in hints covers inv. handled is
	// false when the strategy does not apply to inv's kind at all.
	TryMatch(hints []Hint, inv Invocation) (covered bool, handled bool)
}
