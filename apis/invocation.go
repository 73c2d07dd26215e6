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

import "strconv"

// Kind identifies the reflective operation an invocation records.
type Kind int

const (
	// TypeLookup is a reflective resolution of a type.
	TypeLookup Kind = iota
	// MethodLookup is a reflective resolution of a method without calling it.
	MethodLookup
	// MethodInvoke is a reflective method call.
	MethodInvoke
	// FieldAccess is a reflective field read.
	FieldAccess
	// ConstructorInvoke is reflective instance construction.
	ConstructorInvoke
	// ProxyCreate is dynamic construction of a function value.
	ProxyCreate
	// ResourceLoad is a resource read by name.
	ResourceLoad
)

// String returns a human-readable token for the kind.
func (k Kind) String() string {
	switch k {
	case TypeLookup:
		return "type lookup"
	case MethodLookup:
		return "method lookup"
	case MethodInvoke:
		return "method invoke"
	case FieldAccess:
		return "field access"
	case ConstructorInvoke:
		return "constructor invoke"
	case ProxyCreate:
		return "proxy create"
	case ResourceLoad:
		return "resource load"
	default:
		return "unknown"
	}
}

// RequiredMode returns the minimum hint mode that satisfies an invocation
// of this kind. Proxy and resource invocations are matched by their own
// hint families; their required mode is the floor of the order.
func (k Kind) RequiredMode() Mode {
	switch k {
	case MethodInvoke, ConstructorInvoke:
		return ModeInvoke
	default:
		return ModeIntrospect
	}
}

// Frame is one call-site frame captured when an invocation was observed.
type Frame struct {
	// Owner is the receiver type name, or the package name for
	// package-level functions.
	Owner string
	// Member is the function or method name.
	Member string
	// Line is the source line.
	Line int
}

// String renders the frame as "Owner#Member, Line N".
func (f Frame) String() string {
	return f.Owner + "#" + f.Member + ", Line " + strconv.Itoa(f.Line)
}

// Invocation is a single observed reflective operation.
type Invocation struct {
	// Kind is the operation kind.
	Kind Kind
	// Target is the type name the operation acted on, the resource name
	// for ResourceLoad, or the function type name for ProxyCreate.
	Target string
	// Member is the member descriptor, when the kind has one.
	Member Member
	// Args holds formatted argument values for invoke-kind operations,
	// when argument capture is enabled. Empty at introspect time.
	Args []string
	// Frames is the captured call-site trace, most recent call first.
	Frames []Frame
}

// Key returns the identity of the reflective shape this invocation
// exercised, aligned with Hint.Key so recorders can deduplicate.
func (inv Invocation) Key() string {
	switch inv.Kind {
	case ResourceLoad:
		return "res:" + inv.Target
	case ProxyCreate:
		return "proxy:" + inv.Target
	default:
		return "refl:" + inv.Target + "#" + inv.Member.Key()
	}
}
