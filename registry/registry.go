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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/rxapi/common"
	uref "dirpx.dev/hintx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("hintx(registry): nil reflect.Type provided")
	// ErrEmptyTarget is returned when an empty target name is provided.
	ErrEmptyTarget = errors.New("hintx(registry): empty target name provided")
	// ErrEmptyPattern is returned when an empty resource pattern is provided.
	ErrEmptyPattern = errors.New("hintx(registry): empty resource pattern provided")
)

// New constructs an empty Registry with idempotent union semantics.
func New() apis.Registry {
	return &registry{}
}

// Apply runs each non-nil registrar against reg. Registrars declare the
// reflective shapes their packages exercise at runtime.
func Apply(reg apis.Registry, registrars ...common.Registrar) {
	for _, r := range registrars {
		if r != nil {
			r.RegisterHints(reg)
		}
	}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps Hint.Key() to apis.Hint.
	m sync.Map
	// count tracks the number of distinct hints.
	count int
}

// RegisterType adds declarations scoped to the named type of t.
func (r *registry) RegisterType(t reflect.Type, fn func(apis.TypeHintBuilder)) error {
	if t == nil {
		return ErrNilType
	}
	return r.RegisterTypeName(uref.TypeName(t), fn)
}

// RegisterTypeName is RegisterType for a target known only by name.
// A type-level hint is always declared; fn may add member-level ones.
func (r *registry) RegisterTypeName(target string, fn func(apis.TypeHintBuilder)) error {
	if target == "" {
		return ErrEmptyTarget
	}
	err := r.Add(apis.Hint{
		Kind:   apis.HintReflection,
		Target: target,
		Member: apis.Member{Kind: apis.MemberType},
		Mode:   apis.ModeIntrospect,
	})
	if err != nil {
		return err
	}
	if fn != nil {
		b := &typeHintBuilder{reg: r, target: target}
		fn(b)
		return b.err
	}
	return nil
}

// RegisterResource declares that resources matching pattern are expected.
func (r *registry) RegisterResource(pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	return r.Add(apis.Hint{Kind: apis.HintResource, Target: pattern})
}

// RegisterProxy declares that values of function type t are expected to
// be constructed dynamically.
func (r *registry) RegisterProxy(t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	return r.Add(apis.Hint{Kind: apis.HintProxy, Target: uref.TypeName(t)})
}

// Add inserts a raw hint. Identical re-registration is a no-op; a hint
// with a stronger mode upgrades the existing one in place.
func (r *registry) Add(h apis.Hint) error {
	if h.Target == "" {
		if h.Kind == apis.HintResource {
			return ErrEmptyPattern
		}
		return ErrEmptyTarget
	}

	key := h.Key()

	// Fast read path: idempotency check without locking.
	if old, ok := r.m.Load(key); ok && old.(apis.Hint).Mode.Covers(h.Mode) {
		return nil
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.m.Load(key); ok {
		if old.(apis.Hint).Mode.Covers(h.Mode) {
			return nil
		}
		// Mode upgrade: identity unchanged, count unchanged.
		r.m.Store(key, h)
		return nil
	}

	r.m.Store(key, h)
	r.count++
	return nil
}

// Hints returns a snapshot of all registered hints (order is unspecified).
func (r *registry) Hints() []apis.Hint {
	hints := make([]apis.Hint, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		hints = append(hints, value.(apis.Hint))
		return true
	})
	return hints
}

// Count returns the number of distinct registered hints.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered hints.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

// typeHintBuilder accumulates member declarations for one target.
// The first registration error is kept and reported by RegisterTypeName.
type typeHintBuilder struct {
	reg    *registry
	target string
	err    error
}

var _ apis.TypeHintBuilder = (*typeHintBuilder)(nil)

func (b *typeHintBuilder) add(m apis.Member, mode apis.Mode) {
	err := b.reg.Add(apis.Hint{
		Kind:   apis.HintReflection,
		Target: b.target,
		Member: m,
		Mode:   mode,
	})
	if b.err == nil {
		b.err = err
	}
}

// WithMethod declares a method by name and exact parameter type-name sequence.
func (b *typeHintBuilder) WithMethod(name string, params []string, mode apis.Mode) apis.TypeHintBuilder {
	b.add(apis.Member{Kind: apis.MemberMethod, Name: name, Params: params}, mode)
	return b
}

// WithField declares a field by name.
func (b *typeHintBuilder) WithField(name string, mode apis.Mode) apis.TypeHintBuilder {
	b.add(apis.Member{Kind: apis.MemberField, Name: name}, mode)
	return b
}

// WithConstructor declares instance construction with the exact parameter
// type-name sequence.
func (b *typeHintBuilder) WithConstructor(params []string, mode apis.Mode) apis.TypeHintBuilder {
	b.add(apis.Member{Kind: apis.MemberConstructor, Params: params}, mode)
	return b
}

// WithAllMembers declares a blanket hint covering every member of the target.
func (b *typeHintBuilder) WithAllMembers(mode apis.Mode) apis.TypeHintBuilder {
	b.add(apis.Member{Kind: apis.MemberAll}, mode)
	return b
}
