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

// Package hintx records reflective invocations performed by a unit of
// code and checks them against a declared set of runtime hints.
//
// hintx exists for programs that must know their reflective surface in
// advance (ahead-of-time compilation, dead-code elimination, audit).
// A test declares which reflective shapes are expected, runs the code
// under a recording scope, and asserts that every observed invocation
// is covered by a declared hint.
//
// # Design
//
// Four pieces cooperate:
//
//   - Registry: an in-memory, declarative set of hints. A hint names a
//     target type, a member descriptor (method/field/constructor name
//     plus exact parameter types), and a mode. Modes form a partial
//     order: an invoke-capable hint also satisfies introspection-only
//     checks. Registration is an idempotent union; declaring the same
//     shape twice has no additional effect, and a stronger mode
//     upgrades in place. Resource-pattern and proxy hints round out the
//     three hint families.
//
//   - Recorder: owns the process-wide interception channel. At most one
//     recording session is active at a time; Record acquires the
//     channel, runs the action exactly once, and releases on every exit
//     path. If the action fails, the invocations captured up to the
//     failure are still returned, and the action's error propagates
//     after finalization.
//
//   - Reflection facade: the interposition mechanism. Code routes its
//     reflective operations through package reflection; each wrapper
//     performs the real operation and, while a session is active,
//     emits an invocation record with a captured call-site trace.
//
//   - Matcher: a pure function over (registry, invocations). It tries
//     coverage strategies in order (exact member, type-level blanket,
//     resource pattern, proxy) and reports every invocation no hint
//     sanctions, with a per-invocation diagnostic including the trace.
//
// # Global API
//
// The package holds an atomic pointer to an immutable snapshot of
// {Config, Builder, Logger, Ext}. Readers load the pointer and never
// mutate it; writers build a new snapshot under a short build mutex and
// publish it atomically, so concurrent callers always see a consistent
// configuration.
//
// Typical test flow:
//
//	reg := hintx.NewRegistry()
//	_ = reg.RegisterType(reflect.TypeOf(sample.VersionHolder{}), func(b apis.TypeHintBuilder) {
//		b.WithMethod("Version", nil, apis.ModeInvoke)
//	})
//
//	rec, err := hintx.Record(func() error {
//		sample.PerformReflection()
//		return nil
//	})
//	if err != nil { ... }
//
//	if err := hintx.Match(reg, rec.Invocations); err != nil {
//		// err lists every uncovered invocation with its call trace.
//	}
//
// # Preconditions
//
// Recording is only meaningful when the code under test performs its
// reflection through the facade. hintx.Enabled reports whether the
// interception channel is enabled in this process; harnesses consume it
// to decide skip versus run, and Record fails with
// recorder.ErrRecordingUnavailable when it is off.
//
// # Concurrency model
//
// Reads (Config, Builder, Logger, ExtAs) are wait-free snapshot loads.
// Writers (SetConfig, SetBuilder, SetLogger, SetExt, SetAll) serialize
// on a build mutex and publish atomically. The interception channel is
// a separate process-wide singleton owned by package recorder: one
// session at a time, concurrent Record calls fail fast.
//
// # Scope
//
// hintx is intentionally small. It does not load agents, rewrite
// bytecode, or hook the runtime; the facade is the instrumentation. It
// only solves one job:
//
//	"Record the reflective operations a block of code performs, and
//	 prove each one was declared in advance."
package hintx
