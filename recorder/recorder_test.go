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

package recorder_test

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/config"
	"dirpx.dev/hintx/recorder"
	"dirpx.dev/hintx/rxapi/capture"
)

func observe(t *testing.T, target string) {
	t.Helper()
	s, ok := recorder.Active()
	if !ok {
		t.Fatal("no active session")
	}
	s.Observe(apis.Invocation{
		Kind:   apis.MethodInvoke,
		Target: target,
		Member: apis.Member{Kind: apis.MemberMethod, Name: "M"},
	})
}

func TestRecord_OrderedCapture(t *testing.T) {
	rec, err := recorder.Record(config.DefaultConfig(), zaptest.NewLogger(t), func() error {
		observe(t, "a.T1")
		observe(t, "a.T2")
		observe(t, "a.T3")
		return nil
	})
	if err != nil {
		t.Fatalf("Record: unexpected error: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Recording.ID is empty")
	}
	if len(rec.Invocations) != 3 {
		t.Fatalf("captured %d invocations, want 3", len(rec.Invocations))
	}
	for i, want := range []string{"a.T1", "a.T2", "a.T3"} {
		if rec.Invocations[i].Target != want {
			t.Fatalf("invocation %d target = %q, want %q", i, rec.Invocations[i].Target, want)
		}
	}
}

func TestRecord_ActionErrorKeepsPartialCapture(t *testing.T) {
	boom := errors.New("boom")
	rec, err := recorder.Record(config.DefaultConfig(), nil, func() error {
		observe(t, "a.T1")
		observe(t, "a.T2")
		// The third operation never happens.
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Record error = %v, want boom", err)
	}
	if len(rec.Invocations) != 2 {
		t.Fatalf("captured %d invocations, want the 2 before the failure", len(rec.Invocations))
	}
}

func TestRecord_PanicReleasesChannel(t *testing.T) {
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic did not propagate")
			}
		}()
		_, _ = recorder.Record(config.DefaultConfig(), nil, func() error {
			observe(t, "a.T1")
			panic("kaboom")
		})
	}()

	if _, ok := recorder.Active(); ok {
		t.Fatal("session still active after panic")
	}
	// Channel must be reusable.
	if _, err := recorder.Record(config.DefaultConfig(), nil, func() error { return nil }); err != nil {
		t.Fatalf("Record after panic: %v", err)
	}
}

func TestRecord_NestedFailsFast(t *testing.T) {
	_, err := recorder.Record(config.DefaultConfig(), nil, func() error {
		_, nested := recorder.Record(config.DefaultConfig(), nil, func() error { return nil })
		if !errors.Is(nested, recorder.ErrSessionActive) {
			t.Fatalf("nested Record error = %v, want ErrSessionActive", nested)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("outer Record: %v", err)
	}
	if _, ok := recorder.Active(); ok {
		t.Fatal("session leaked after nested attempt")
	}
}

func TestRecord_DisabledGate(t *testing.T) {
	recorder.Disable()
	defer recorder.Enable()

	if recorder.Enabled() {
		t.Fatal("Enabled() = true after Disable")
	}
	if _, ok := recorder.Active(); ok {
		t.Fatal("Active() reports a session while disabled")
	}
	_, err := recorder.Record(config.DefaultConfig(), nil, func() error { return nil })
	if !errors.Is(err, recorder.ErrRecordingUnavailable) {
		t.Fatalf("Record error = %v, want ErrRecordingUnavailable", err)
	}
}

func TestRecord_NilAction(t *testing.T) {
	if _, err := recorder.Record(config.DefaultConfig(), nil, nil); !errors.Is(err, recorder.ErrNilAction) {
		t.Fatalf("Record(nil) error = %v, want ErrNilAction", err)
	}
}

func TestRecord_CapturePolicies(t *testing.T) {
	emitTwice := func() error {
		observe(t, "a.T1")
		observe(t, "a.T1")
		return nil
	}

	rec, err := recorder.Record(config.NewConfig(config.WithCapture(capture.Dedup)), nil, emitTwice)
	if err != nil {
		t.Fatalf("Record(dedup): %v", err)
	}
	if len(rec.Invocations) != 1 {
		t.Fatalf("dedup captured %d invocations, want 1", len(rec.Invocations))
	}

	rec, err = recorder.Record(config.NewConfig(config.WithCapture(capture.Off)), nil, emitTwice)
	if err != nil {
		t.Fatalf("Record(off): %v", err)
	}
	if len(rec.Invocations) != 0 {
		t.Fatalf("off captured %d invocations, want 0", len(rec.Invocations))
	}

	rec, err = recorder.Record(config.NewConfig(config.WithCapture(capture.All)), nil, emitTwice)
	if err != nil {
		t.Fatalf("Record(all): %v", err)
	}
	if len(rec.Invocations) != 2 {
		t.Fatalf("all captured %d invocations, want 2", len(rec.Invocations))
	}
}
