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

package matcher

import (
	"fmt"
	"strings"

	"dirpx.dev/hintx/apis"
)

// New constructs an apis.Matcher that checks invocations against reg,
// trying the given strategies in order. Nil strategies are ignored. The
// returned matcher is safe for concurrent use provided strategies
// themselves are safe for concurrent TryMatch calls.
func New(reg apis.Registry, strategies ...apis.Strategy) apis.Matcher {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{reg: reg, strats: out}
}

// chain is an immutable, order-preserving matcher over a set of strategies.
// An invocation is covered as soon as any strategy covers it; a strategy
// that handles the kind but does not cover falls through to later ones.
type chain struct {
	reg    apis.Registry
	strats []apis.Strategy
}

// Check evaluates every invocation against the registry snapshot and
// returns one result per invocation, in input order.
func (m chain) Check(invs []apis.Invocation) []apis.MatchResult {
	var hints []apis.Hint
	if m.reg != nil {
		hints = m.reg.Hints()
	}

	out := make([]apis.MatchResult, len(invs))
	for i, inv := range invs {
		covered := false
		for _, s := range m.strats {
			if c, handled := s.TryMatch(hints, inv); handled && c {
				covered = true
				break
			}
		}
		res := apis.MatchResult{Invocation: inv, Covered: covered}
		if !covered {
			res.Diagnostic = Describe(inv)
		}
		out[i] = res
	}
	return out
}

// Match succeeds iff every invocation is covered; otherwise it returns a
// *UncoveredError listing every uncovered invocation.
func (m chain) Match(invs []apis.Invocation) error {
	results := m.Check(invs)
	var uncovered []apis.MatchResult
	for _, r := range results {
		if !r.Covered {
			uncovered = append(uncovered, r)
		}
	}
	if len(uncovered) == 0 {
		return nil
	}
	return &UncoveredError{Uncovered: uncovered}
}

// UncoveredError reports invocations that no registered hint sanctions.
// It is the expected user-visible failure mode of a coverage check,
// surfaced as a test assertion failure.
type UncoveredError struct {
	// Uncovered holds the results of every uncovered invocation, in
	// observation order, with diagnostics populated.
	Uncovered []apis.MatchResult
}

// Error formats the count of missing hints followed by every uncovered
// invocation's diagnostic.
func (e *UncoveredError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hintx(matcher): missing %d hints:\n", len(e.Uncovered))
	for _, r := range e.Uncovered {
		sb.WriteByte('\n')
		sb.WriteString(r.Diagnostic)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Describe formats a human-readable diagnostic for an uncovered
// invocation: kind, target, member with arguments (or parameter types
// when arguments were not captured), and the call trace, one frame per
// line, most recent call first.
func Describe(inv apis.Invocation) string {
	var sb strings.Builder
	sb.WriteString(inv.Kind.String())
	sb.WriteString(" on ")
	sb.WriteString(inv.Target)
	switch inv.Kind {
	case apis.ResourceLoad, apis.ProxyCreate, apis.TypeLookup:
		// Target alone identifies the shape.
	default:
		sb.WriteByte('#')
		sb.WriteString(memberLabel(inv))
	}
	sb.WriteString(", not covered by any registered hint")
	for _, f := range inv.Frames {
		sb.WriteByte('\n')
		sb.WriteString(f.String())
	}
	return sb.String()
}

// memberLabel renders the member with captured argument values when
// available, falling back to the declared parameter types.
func memberLabel(inv apis.Invocation) string {
	if len(inv.Args) == 0 {
		return inv.Member.String()
	}
	args := strings.Join(inv.Args, ", ")
	if inv.Member.Kind == apis.MemberConstructor {
		return "<init>(" + args + ")"
	}
	return inv.Member.Name + "(" + args + ")"
}
