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

// Package recorder owns the process-wide interception channel: at most
// one recording session may be active at a time, acquired at the start
// of Record and released on every exit path. While a session is active,
// the instrumented reflection facade routes observed invocations to it.
package recorder

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/rxapi/capture"
)

var (
	// ErrRecordingUnavailable is returned when interception is disabled
	// in this process. Tests depending on recording should treat it as a
	// precondition failure and skip.
	ErrRecordingUnavailable = errors.New("hintx(recorder): interception is disabled in this process")
	// ErrSessionActive is returned when another recording session owns
	// the interception channel. Nested or concurrent recording is not
	// supported; callers must serialize.
	ErrSessionActive = errors.New("hintx(recorder): another recording session is active")
	// ErrNilAction is returned when a nil action is provided.
	ErrNilAction = errors.New("hintx(recorder): nil action provided")
)

// enabled gates the interception channel for the whole process.
var enabled atomic.Bool

func init() {
	enabled.Store(true)
}

// Enabled reports whether interception is enabled in this process.
// Test harnesses consume this as the skip-vs-run precondition.
func Enabled() bool {
	return enabled.Load()
}

// Enable turns interception on.
func Enable() {
	enabled.Store(true)
}

// Disable turns interception off: the facade devolves to plain
// reflection with zero capture, and Record fails with
// ErrRecordingUnavailable.
func Disable() {
	enabled.Store(false)
}

// active holds the session currently owning the interception channel.
var active atomic.Pointer[Session]

// Active returns the currently active session, if any. Used by the
// instrumented facade to route observed invocations.
func Active() (*Session, bool) {
	if !Enabled() {
		return nil, false
	}
	s := active.Load()
	return s, s != nil
}

// Session is the ownership scope of one recording: while it holds the
// channel, every observed invocation is appended in first-observed
// order. Safe for concurrent Observe calls.
type Session struct {
	id  string
	cfg apis.Config
	log *zap.Logger

	// mu orders appends across goroutines and guards finalization.
	mu   sync.Mutex
	invs []apis.Invocation
	seen map[string]struct{}
	done bool
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns the configuration the session records under.
func (s *Session) Config() apis.Config {
	return s.cfg
}

// Observe appends an invocation according to the session's capture
// policy. Invocations arriving after finalization are dropped.
func (s *Session) Observe(inv apis.Invocation) {
	if s.cfg.Capture == capture.Off {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	if s.cfg.Capture == capture.Dedup {
		key := inv.Key()
		if _, ok := s.seen[key]; ok {
			return
		}
		s.seen[key] = struct{}{}
	}
	s.invs = append(s.invs, inv)

	s.log.Debug("invocation observed",
		zap.String("session", s.id),
		zap.Stringer("kind", inv.Kind),
		zap.String("target", inv.Target),
		zap.String("member", inv.Member.String()),
	)
}

// Recording is the finalized outcome of a session: the ordered sequence
// of invocations observed while the action ran.
type Recording struct {
	// ID is the session identifier.
	ID string
	// Invocations is the ordered invocation list.
	Invocations []apis.Invocation
}

// Record executes action exactly once inside a fresh recording session
// and returns the finalized invocation list.
//
// The session is finalized and the channel released on every exit path:
// if action returns an error, the invocations captured up to that point
// are still returned alongside it; if action panics, the panic
// propagates after release.
func Record(cfg apis.Config, log *zap.Logger, action func() error) (*Recording, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	if !Enabled() {
		return nil, ErrRecordingUnavailable
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		id:   uuid.NewString(),
		cfg:  cfg,
		log:  log,
		seen: make(map[string]struct{}),
	}
	if !active.CompareAndSwap(nil, s) {
		return nil, ErrSessionActive
	}

	log.Debug("recording session started", zap.String("session", s.id))

	rec := &Recording{ID: s.id}
	defer func() {
		s.mu.Lock()
		s.done = true
		rec.Invocations = s.invs
		s.mu.Unlock()
		active.CompareAndSwap(s, nil)
		log.Debug("recording session finalized",
			zap.String("session", s.id),
			zap.Int("invocations", len(rec.Invocations)),
		)
	}()

	return rec, action()
}
