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

package apis

import "strings"

// Mode declares how far a hint sanctions a reflective operation.
// Modes form a partial order: ModeInvoke covers everything ModeIntrospect
// covers, but not vice versa.
type Mode int

const (
	// ModeIntrospect permits reflective lookup of a member (enumerating or
	// resolving it), but not calling it.
	ModeIntrospect Mode = iota
	// ModeInvoke permits both lookup and invocation.
	ModeInvoke
)

// Covers reports whether a hint declared with mode m satisfies an
// operation that requires mode required.
func (m Mode) Covers(required Mode) bool {
	return m >= required
}

// String returns a stable token for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIntrospect:
		return "introspect"
	case ModeInvoke:
		return "invoke"
	default:
		return "unknown"
	}
}

// MemberKind identifies which member of a target type a hint or an
// invocation refers to.
type MemberKind int

const (
	// MemberType refers to the target type itself (type-level hints,
	// type lookups).
	MemberType MemberKind = iota
	// MemberMethod refers to a named method.
	MemberMethod
	// MemberField refers to a named field.
	MemberField
	// MemberConstructor refers to instance construction.
	MemberConstructor
	// MemberAll is a blanket declaration covering every member of the
	// target at the declared mode. Only valid on hints, never on
	// invocations.
	MemberAll
)

// Member describes a member of a target type: its kind, name, and the
// exact parameter type-name sequence. Fields and types carry no
// parameters; constructors carry no name.
type Member struct {
	// Kind is the member kind.
	Kind MemberKind
	// Name is the member name. Empty for MemberType, MemberConstructor
	// and MemberAll.
	Name string
	// Params is the ordered parameter type-name sequence. Matching is
	// exact; there is no overload widening.
	Params []string
}

// Key returns a canonical identity string for the member. Two members
// match iff their keys are equal.
func (m Member) Key() string {
	var sb strings.Builder
	switch m.Kind {
	case MemberType:
		sb.WriteString("t:")
	case MemberMethod:
		sb.WriteString("m:")
	case MemberField:
		sb.WriteString("f:")
	case MemberConstructor:
		sb.WriteString("c:")
	case MemberAll:
		sb.WriteString("*:")
	}
	sb.WriteString(m.Name)
	if m.Kind == MemberMethod || m.Kind == MemberConstructor {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(m.Params, ","))
		sb.WriteByte(')')
	}
	return sb.String()
}

// String renders the member for diagnostics, e.g. "Version(int)" or
// "<init>()" for constructors.
func (m Member) String() string {
	switch m.Kind {
	case MemberType:
		return "<type>"
	case MemberAll:
		return "<all members>"
	case MemberConstructor:
		return "<init>(" + strings.Join(m.Params, ", ") + ")"
	case MemberMethod:
		return m.Name + "(" + strings.Join(m.Params, ", ") + ")"
	default:
		return m.Name
	}
}

// HintKind separates the three hint families of a registry.
type HintKind int

const (
	// HintReflection sanctions reflective access to a type or one of its
	// members.
	HintReflection HintKind = iota
	// HintResource sanctions loading a resource whose name matches the
	// hint's pattern.
	HintResource
	// HintProxy sanctions dynamic construction of a value of the hinted
	// function type.
	HintProxy
)

// Hint is a single declaration that a reflective shape is expected.
// Hints are identified by (Kind, Target, Member.Key()); Mode participates
// via union semantics, not identity.
type Hint struct {
	// Kind is the hint family.
	Kind HintKind
	// Target is the type name for reflection and proxy hints, or the
	// name pattern for resource hints.
	Target string
	// Member is the member descriptor for reflection hints; zero-valued
	// otherwise.
	Member Member
	// Mode is the sanctioned invocation mode.
	Mode Mode
}

// Key returns the identity string of the hint (mode excluded).
func (h Hint) Key() string {
	switch h.Kind {
	case HintResource:
		return "res:" + h.Target
	case HintProxy:
		return "proxy:" + h.Target
	default:
		return "refl:" + h.Target + "#" + h.Member.Key()
	}
}

// TypeHintBuilder accumulates member-level declarations for one target
// type. All methods return the receiver for chaining. Registration is
// idempotent: declaring the same shape twice has no additional effect,
// and re-declaring with a stronger mode upgrades the existing hint.
type TypeHintBuilder interface {
	// WithMethod declares a method by name and exact parameter type-name
	// sequence at the given mode.
	WithMethod(name string, params []string, mode Mode) TypeHintBuilder
	// WithField declares a field by name at the given mode.
	WithField(name string, mode Mode) TypeHintBuilder
	// WithConstructor declares instance construction with the exact
	// parameter type-name sequence at the given mode.
	WithConstructor(params []string, mode Mode) TypeHintBuilder
	// WithAllMembers declares a blanket hint covering every member of the
	// target at the given mode.
	WithAllMembers(mode Mode) TypeHintBuilder
}
