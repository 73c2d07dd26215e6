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

package reflect_test

import (
	"reflect"
	"testing"

	uref "dirpx.dev/hintx/utils/reflect"
)

type sampleType struct{}

type generic[T any] struct{ v T }

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		t    reflect.Type
		want string
	}{
		{"named struct", reflect.TypeOf(sampleType{}), "reflect_test.sampleType"},
		{"pointer unwrap", reflect.TypeOf(&sampleType{}), "reflect_test.sampleType"},
		{"double pointer", reflect.TypeOf(new(*sampleType)), "reflect_test.sampleType"},
		{"builtin", reflect.TypeOf(7), "int"},
		{"generic strip", reflect.TypeOf(generic[int]{}), "reflect_test.generic"},
		{"unnamed slice", reflect.TypeOf([]int{}), "[]int"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uref.TypeName(tt.t); got != tt.want {
				t.Fatalf("TypeName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInTypeNames(t *testing.T) {
	fn := reflect.TypeOf(func(a int, b *sampleType) {})
	got := uref.InTypeNames(fn)
	want := []string{"int", "reflect_test.sampleType"}
	if len(got) != len(want) {
		t.Fatalf("InTypeNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("InTypeNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if uref.InTypeNames(reflect.TypeOf(func() {})) != nil {
		t.Fatal("InTypeNames(no-arg) should be nil")
	}
	if uref.InTypeNames(reflect.TypeOf(0)) != nil {
		t.Fatal("InTypeNames(non-func) should be nil")
	}
}
