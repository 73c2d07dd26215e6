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

// Package reflection is the instrumented reflection facade: every
// function performs the underlying reflect (or fs) operation and, when a
// recording session owns the interception channel, routes a matching
// invocation record to it, call-site trace included.
//
// Code whose reflective behavior should be checkable against declared
// hints performs its reflection through this package instead of calling
// reflect directly. With no active session the wrappers add nothing but
// an atomic load.
package reflection

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"

	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/recorder"
	uref "dirpx.dev/hintx/utils/reflect"
	"dirpx.dev/hintx/utils/trace"
)

var (
	// ErrMethodNotFound is returned when the named method does not exist
	// on the target.
	ErrMethodNotFound = errors.New("hintx(reflection): method not found")
	// ErrFieldNotFound is returned when the named field does not exist or
	// is not accessible on the target.
	ErrFieldNotFound = errors.New("hintx(reflection): field not found")
	// ErrNotStruct is returned when a field access target is not a struct.
	ErrNotStruct = errors.New("hintx(reflection): target is not a struct")
	// ErrNotFunc is returned when a proxy type is not a function type.
	ErrNotFunc = errors.New("hintx(reflection): not a function type")
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("hintx(reflection): nil reflect.Type provided")
	// ErrBadArguments is returned when provided arguments do not fit the
	// method signature.
	ErrBadArguments = errors.New("hintx(reflection): arguments do not match method signature")
)

// emit routes inv to the active session, if any, attaching the caller's
// call-site trace. Argument values are dropped unless the session's
// configuration captures them.
func emit(inv apis.Invocation) {
	s, ok := recorder.Active()
	if !ok {
		return
	}
	cfg := s.Config()
	if !cfg.IncludeArgs {
		inv.Args = nil
	}
	// Skip emit and its facade wrapper so the trace starts at user code.
	inv.Frames = trace.Capture(2, cfg.MaxFrames)
	s.Observe(inv)
}

// TypeOf resolves the type of v, recording a type lookup. Returns nil
// for a nil v, recording nothing.
func TypeOf(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	emit(apis.Invocation{
		Kind:   apis.TypeLookup,
		Target: uref.TypeName(t),
		Member: apis.Member{Kind: apis.MemberType},
	})
	return t
}

// TypeFor resolves the type of T, recording a type lookup.
func TypeFor[T any]() reflect.Type {
	t := reflect.TypeOf((*T)(nil)).Elem()
	emit(apis.Invocation{
		Kind:   apis.TypeLookup,
		Target: uref.TypeName(t),
		Member: apis.Member{Kind: apis.MemberType},
	})
	return t
}

// MethodByName resolves a method on v without calling it, recording a
// method lookup (including failed lookups: the shape was still asked
// for at runtime).
func MethodByName(v any, name string) (reflect.Value, bool) {
	m := reflect.ValueOf(v).MethodByName(name)
	member := apis.Member{Kind: apis.MemberMethod, Name: name}
	if m.IsValid() {
		member.Params = uref.InTypeNames(m.Type())
	}
	emit(apis.Invocation{
		Kind:   apis.MethodLookup,
		Target: uref.TypeName(reflect.TypeOf(v)),
		Member: member,
	})
	return m, m.IsValid()
}

// Call invokes the named method on v with args, recording exactly one
// method invoke. The returned values are the method's results.
func Call(v any, name string, args ...any) ([]any, error) {
	m := reflect.ValueOf(v).MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, uref.TypeName(reflect.TypeOf(v)), name)
	}

	mt := m.Type()
	if len(args) != mt.NumIn() {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrBadArguments, name, mt.NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		av := reflect.ValueOf(a)
		if !av.IsValid() || !av.Type().AssignableTo(mt.In(i)) {
			return nil, fmt.Errorf("%w: argument %d of %s", ErrBadArguments, i, name)
		}
		in[i] = av
	}

	emit(apis.Invocation{
		Kind:   apis.MethodInvoke,
		Target: uref.TypeName(reflect.TypeOf(v)),
		Member: apis.Member{Kind: apis.MemberMethod, Name: name, Params: uref.InTypeNames(mt)},
		Args:   formatArgs(args),
	})

	outs := m.Call(in)
	results := make([]any, len(outs))
	for i, o := range outs {
		results[i] = o.Interface()
	}
	return results, nil
}

// Field reads the named field of v (pointers are followed), recording a
// field access. Unexported fields are not accessible.
func Field(v any, name string) (any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, uref.TypeName(reflect.TypeOf(v)))
	}
	f := rv.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, uref.TypeName(rv.Type()), name)
	}

	emit(apis.Invocation{
		Kind:   apis.FieldAccess,
		Target: uref.TypeName(rv.Type()),
		Member: apis.Member{Kind: apis.MemberField, Name: name},
	})
	return f.Interface(), nil
}

// NewInstance constructs a zero value of t, recording a constructor
// invoke. The result is a pointer to the new value.
func NewInstance(t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	emit(apis.Invocation{
		Kind:   apis.ConstructorInvoke,
		Target: uref.TypeName(t),
		Member: apis.Member{Kind: apis.MemberConstructor},
	})
	return reflect.New(t).Interface(), nil
}

// MakeFunc constructs a function value of type fnType backed by impl,
// recording a proxy creation. This is the Go counterpart of dynamic
// proxy generation.
func MakeFunc(fnType reflect.Type, impl func(args []reflect.Value) []reflect.Value) (reflect.Value, error) {
	if fnType == nil {
		return reflect.Value{}, ErrNilType
	}
	if fnType.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotFunc, fnType)
	}

	emit(apis.Invocation{
		Kind:   apis.ProxyCreate,
		Target: uref.TypeName(fnType),
	})
	return reflect.MakeFunc(fnType, impl), nil
}

// Open reads the named resource from fsys, recording a resource load.
// The load attempt is recorded even when the resource is missing.
func Open(fsys fs.FS, name string) ([]byte, error) {
	emit(apis.Invocation{
		Kind:   apis.ResourceLoad,
		Target: name,
	})
	return fs.ReadFile(fsys, name)
}

// formatArgs renders argument values for diagnostics.
func formatArgs(args []any) []string {
	if len(args) == 0 {
		return nil
	}
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmt.Sprintf("%v", a)
	}
	return out
}
