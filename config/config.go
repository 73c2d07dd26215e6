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

package config

import (
	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/rxapi/capture"
)

const (
	// DefaultMaxFrames represents the default for MaxFrames.
	// 16 frames is enough to locate a call site in test code without
	// dragging the whole runtime stack into diagnostics.
	DefaultMaxFrames = 16
	// DefaultIncludeArgs represents the default for IncludeArgs.
	// When true, argument values of invoke-kind operations are captured.
	DefaultIncludeArgs = true
	// DefaultCapture represents the default capture policy.
	DefaultCapture = capture.All
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxFrames is valid.
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = DefaultMaxFrames
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxFrames:   DefaultMaxFrames,
		IncludeArgs: DefaultIncludeArgs,
		Capture:     DefaultCapture,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxFrames sets the MaxFrames option.
// A non-positive value resets to the default.
func WithMaxFrames(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxFrames = DefaultMaxFrames
			return
		}
		c.MaxFrames = max
	}
}

// WithIncludeArgs sets the IncludeArgs option.
func WithIncludeArgs(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeArgs = include
	}
}

// WithCapture sets the capture policy.
func WithCapture(p capture.Policy) Option {
	return func(c *apis.Config) {
		c.Capture = p
	}
}
