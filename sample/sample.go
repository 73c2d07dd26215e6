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

// Package sample demonstrates recording reflective invocations and
// asserting hint coverage. VersionHolder performs its work through the
// reflection facade, so everything it does reflectively is observable
// by an active recording session.
package sample

import (
	"embed"
	"strings"

	"dirpx.dev/hintx/reflection"
)

//go:embed version.txt
var resources embed.FS

// VersionHolder exposes build metadata. Its accessors are invoked
// reflectively in PerformReflection to exercise the recorder.
type VersionHolder struct {
	version string
	build   string
}

// NewVersionHolder returns a holder with the given version and an
// empty build number.
func NewVersionHolder(version string) *VersionHolder {
	return &VersionHolder{version: version}
}

// Version returns the semantic version string.
func (h *VersionHolder) Version() string { return h.version }

// BuildNumber returns the build identifier, empty when unknown.
func (h *VersionHolder) BuildNumber() string { return h.build }

// PerformReflection looks up and invokes Version on h through the
// reflection facade and returns the result. This is the canonical
// "one declared operation" action for coverage tests.
func PerformReflection(h *VersionHolder) (string, error) {
	out, err := reflection.Call(h, "Version")
	if err != nil {
		return "", err
	}
	return out[0].(string), nil
}

// PerformUndeclaredReflection invokes both accessors through the
// facade. BuildNumber is the operation coverage tests leave
// undeclared on purpose.
func PerformUndeclaredReflection(h *VersionHolder) (string, string, error) {
	v, err := PerformReflection(h)
	if err != nil {
		return "", "", err
	}
	out, err := reflection.Call(h, "BuildNumber")
	if err != nil {
		return "", "", err
	}
	return v, out[0].(string), nil
}

// LoadVersion reads the embedded version.txt resource through the
// facade and returns its trimmed contents.
func LoadVersion() (string, error) {
	b, err := reflection.Open(resources, "version.txt")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
