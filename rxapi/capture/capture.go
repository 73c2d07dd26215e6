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

package capture

import (
	"fmt"
	"strings"
)

// Policy controls what a recording session retains from the invocations
// routed to it.
//
// # Overview
//
// Policy is a small enumerated type that describes how a recording
// session treats observed invocations. It selects a broad class of
// behavior; it does not define buffer sizes, trace depths, or other
// tuning parameters, which are configured separately.
//
// # Values
//
//   - All   — retain every observed invocation, in observation order.
//   - Dedup — retain the first invocation of each reflective shape;
//     subsequent invocations with an identical identity are dropped.
//   - Off   — retain nothing (the session completes with an empty list).
//
// # Contract
//
//   - Recorder implementations MUST treat Policy as a stable, public API;
//     adding new values is allowed, but existing values MUST NOT change
//     their semantics in breaking ways.
//   - Policy values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Policy SHOULD be chosen at configuration time, not swapped while a
//     session is active.
type Policy int

const (
	// All retains every observed invocation in observation order.
	//
	// This is the default and the only policy under which the coverage
	// report reflects exact runtime behavior, including repeats.
	All Policy = iota

	// Dedup retains the first invocation of each distinct reflective
	// shape and drops identical repeats.
	//
	// Useful for actions that perform the same reflective operation in a
	// loop, where the repeats add noise but no coverage information.
	Dedup

	// Off retains nothing.
	//
	// Sessions still acquire and release the interception channel, so
	// the scoping discipline is exercised, but the finalized invocation
	// list is empty. Intended for temporarily muting capture without
	// restructuring test code.
	Off
)

// String returns the canonical token for known policies and a diagnostic
// form for unknown values.
func (p Policy) String() string {
	switch p {
	case All:
		return "All"
	case Dedup:
		return "Dedup"
	case Off:
		return "Off"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Parse parses a textual representation of a Policy.
//
// It accepts the tokens produced by Policy.String() for known values,
// case-insensitively and with surrounding whitespace trimmed.
//
// # Contract
//
//   - On success, Parse returns a valid Policy and a nil error.
//   - On failure, Parse returns All and a non-nil error; callers MUST NOT
//     rely on the returned Policy value in the error case.
//   - Parse MUST NOT panic for any input.
func Parse(s string) (Policy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return All, fmt.Errorf("capture: empty policy")
	}

	switch strings.ToUpper(trimmed) {
	case "ALL":
		return All, nil
	case "DEDUP":
		return Dedup, nil
	case "OFF":
		return Off, nil
	default:
		return All, fmt.Errorf("capture: unknown policy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// It is intended for hard-coded configuration, tests, and examples where
// an invalid token is a programmer error. Callers MUST NOT use MustParse
// on untrusted or user-supplied data.
func MustParse(s string) Policy {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler.
//
// For defined Policy values it returns the same tokens as String().
// Unknown values return a non-nil error rather than serializing a
// diagnostic form, so invalid states are never persisted.
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case All, Dedup, Off:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("capture: cannot marshal unknown policy %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts the same tokens as Parse. On failure the target is left
// unchanged and a non-nil error is returned.
func (p *Policy) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("capture: empty policy")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*p = value
	return nil
}
