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

package config_test

import (
	"testing"

	"dirpx.dev/hintx/config"
	"dirpx.dev/hintx/rxapi/capture"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.MaxFrames != config.DefaultMaxFrames {
		t.Fatalf("MaxFrames = %d, want %d", cfg.MaxFrames, config.DefaultMaxFrames)
	}
	if cfg.IncludeArgs != config.DefaultIncludeArgs {
		t.Fatalf("IncludeArgs = %v, want %v", cfg.IncludeArgs, config.DefaultIncludeArgs)
	}
	if cfg.Capture != capture.All {
		t.Fatalf("Capture = %v, want %v", cfg.Capture, capture.All)
	}
}

func TestNewConfigOptions(t *testing.T) {
	cfg := config.NewConfig(
		config.WithMaxFrames(4),
		config.WithIncludeArgs(false),
		config.WithCapture(capture.Dedup),
	)
	if cfg.MaxFrames != 4 {
		t.Fatalf("MaxFrames = %d, want 4", cfg.MaxFrames)
	}
	if cfg.IncludeArgs {
		t.Fatal("IncludeArgs = true, want false")
	}
	if cfg.Capture != capture.Dedup {
		t.Fatalf("Capture = %v, want Dedup", cfg.Capture)
	}
}

func TestNewConfigResetsInvalidMaxFrames(t *testing.T) {
	cfg := config.NewConfig(config.WithMaxFrames(-3))
	if cfg.MaxFrames != config.DefaultMaxFrames {
		t.Fatalf("MaxFrames = %d, want default %d", cfg.MaxFrames, config.DefaultMaxFrames)
	}
	cfg = config.NewConfig(config.WithMaxFrames(0))
	if cfg.MaxFrames != config.DefaultMaxFrames {
		t.Fatalf("MaxFrames = %d, want default %d", cfg.MaxFrames, config.DefaultMaxFrames)
	}
}
