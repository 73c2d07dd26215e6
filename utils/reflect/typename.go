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

package reflect

import (
	"path"
	"reflect"
	"strings"
)

// maxPtrUnwrap bounds pointer unwrapping as a guard against pathological
// nesting.
const maxPtrUnwrap = 8

// TypeName returns a stable, human-readable "pkg.Type" name for t.
//
// Pointers are unwrapped to the pointed-to type (bounded), generic
// instantiation parameters are stripped ("T[int]" -> "T"), and named
// types are qualified with the base of their package path. Unnamed types
// fall back to reflect's own rendering via t.String().
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for i := 0; i < maxPtrUnwrap && t.Kind() == reflect.Ptr; i++ {
		t = t.Elem()
	}
	name := stripTypeParams(t.Name())
	if name == "" {
		return t.String()
	}
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// InTypeNames returns the TypeName of every input of the function type fn,
// in order. Returns nil if fn is not a function type.
func InTypeNames(fn reflect.Type) []string {
	if fn == nil || fn.Kind() != reflect.Func {
		return nil
	}
	if fn.NumIn() == 0 {
		return nil
	}
	names := make([]string, fn.NumIn())
	for i := 0; i < fn.NumIn(); i++ {
		names[i] = TypeName(fn.In(i))
	}
	return names
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
