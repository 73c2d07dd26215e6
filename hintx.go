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

package hintx

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/builder"
	"dirpx.dev/hintx/config"
	"dirpx.dev/hintx/recorder"
)

// state is the immutable snapshot the package-level API reads from.
// Writers construct a fresh state and publish it atomically; readers
// never observe a partially updated configuration.
type state struct {
	cfg apis.Config
	bld apis.Builder
	log *zap.Logger
	ext any
}

var (
	st      atomic.Pointer[state]
	buildMu sync.Mutex
)

func init() {
	st.Store(&state{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		log: zap.NewNop(),
	})
}

// snapshot returns the current state. Never nil after init.
func snapshot() *state { return st.Load() }

// publish installs next as the current state. Callers hold buildMu.
func publish(next state) { st.Store(&next) }

// Config returns the currently published configuration.
func Config() apis.Config { return snapshot().cfg }

// SetConfig publishes cfg as the new package configuration.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()
	next := *snapshot()
	next.cfg = cfg
	publish(next)
}

// Builder returns the currently published builder.
func Builder() apis.Builder { return snapshot().bld }

// SetBuilder publishes b as the new package builder. A nil b is
// ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	next := *snapshot()
	next.bld = b
	publish(next)
}

// Logger returns the currently published logger. Defaults to a no-op
// logger.
func Logger() *zap.Logger { return snapshot().log }

// SetLogger publishes log as the package logger. A nil log is ignored.
func SetLogger(log *zap.Logger) {
	if log == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	next := *snapshot()
	next.log = log
	publish(next)
}

// SetExt attaches an arbitrary extension value to the package state.
// The value is retrieved with ExtAs.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()
	next := *snapshot()
	next.ext = ext
	publish(next)
}

// ExtAs retrieves the extension value previously attached with SetExt,
// asserted to T. The second return reports whether a value of type T
// was present.
func ExtAs[T any]() (T, bool) {
	v, ok := snapshot().ext.(T)
	return v, ok
}

// SetAll publishes several fields in one atomic step. Nil arguments
// leave the corresponding field unchanged, so SetAll(nil, nil, nil,
// nil) republishes the current state verbatim.
func SetAll(cfg *apis.Config, ext any, bld apis.Builder, log *zap.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()
	next := *snapshot()
	if cfg != nil {
		next.cfg = *cfg
	}
	if ext != nil {
		next.ext = ext
	}
	if bld != nil {
		next.bld = bld
	}
	if log != nil {
		next.log = log
	}
	publish(next)
}

// NewRegistry returns an empty hint registry built by the current
// builder.
func NewRegistry() apis.Registry {
	s := snapshot()
	return s.bld.BuildRegistry(s.cfg, nil, s.ext)
}

// NewMatcher returns a matcher over reg with the default strategy
// chain, built by the current builder.
func NewMatcher(reg apis.Registry) apis.Matcher {
	s := snapshot()
	return s.bld.BuildMatcher(s.cfg, reg, s.ext)
}

// Record runs action under an exclusive recording session and returns
// the invocations it captured. Behavior follows recorder.Record: one
// session at a time, partial capture on action failure, the channel is
// released on every exit path including panics.
func Record(action func() error) (*recorder.Recording, error) {
	s := snapshot()
	return recorder.Record(s.cfg, s.log, action)
}

// Match checks every invocation in invs against the hints in reg and
// returns a *matcher.UncoveredError listing the uncovered ones, or nil
// when all are covered.
func Match(reg apis.Registry, invs []apis.Invocation) error {
	s := snapshot()
	return s.bld.BuildMatcher(s.cfg, reg, s.ext).Match(invs)
}

// Enabled reports whether the process-wide interception channel is
// enabled.
func Enabled() bool { return recorder.Enabled() }

// Enable turns the interception channel on. It is on by default.
func Enable() { recorder.Enable() }

// Disable turns the interception channel off. Record fails with
// recorder.ErrRecordingUnavailable while disabled, and the reflection
// facade stops emitting invocations.
func Disable() { recorder.Disable() }
