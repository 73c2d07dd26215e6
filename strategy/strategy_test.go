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

package strategy_test

import (
	"testing"

	"dirpx.dev/hintx/apis"
	"dirpx.dev/hintx/strategy"
)

func methodHint(target, name string, params []string, mode apis.Mode) apis.Hint {
	return apis.Hint{
		Kind:   apis.HintReflection,
		Target: target,
		Member: apis.Member{Kind: apis.MemberMethod, Name: name, Params: params},
		Mode:   mode,
	}
}

func methodInvoke(target, name string, params []string) apis.Invocation {
	return apis.Invocation{
		Kind:   apis.MethodInvoke,
		Target: target,
		Member: apis.Member{Kind: apis.MemberMethod, Name: name, Params: params},
	}
}

func TestMemberStrategy_ExactMatchAndModeOrder(t *testing.T) {
	s := strategy.NewMemberStrategy()
	hints := []apis.Hint{methodHint("a.T", "Version", nil, apis.ModeInvoke)}

	// Invoke hint covers invoke.
	covered, handled := s.TryMatch(hints, methodInvoke("a.T", "Version", nil))
	if !handled || !covered {
		t.Fatalf("invoke: (covered=%v, handled=%v), want (true, true)", covered, handled)
	}

	// Invoke hint covers a lookup that requires only introspection.
	lookup := apis.Invocation{
		Kind:   apis.MethodLookup,
		Target: "a.T",
		Member: apis.Member{Kind: apis.MemberMethod, Name: "Version"},
	}
	if covered, _ = s.TryMatch(hints, lookup); !covered {
		t.Fatal("invoke hint must cover introspect-only lookup")
	}

	// Introspect hint does not cover invoke.
	weak := []apis.Hint{methodHint("a.T", "Version", nil, apis.ModeIntrospect)}
	if covered, _ = s.TryMatch(weak, methodInvoke("a.T", "Version", nil)); covered {
		t.Fatal("introspect hint must not cover invoke")
	}

	// Parameter sequences must match exactly.
	if covered, _ = s.TryMatch(hints, methodInvoke("a.T", "Version", []string{"int"})); covered {
		t.Fatal("parameter mismatch must not match")
	}

	// Different target.
	if covered, _ = s.TryMatch(hints, methodInvoke("a.U", "Version", nil)); covered {
		t.Fatal("target mismatch must not match")
	}

	// Non-reflective kinds are not handled.
	if _, handled = s.TryMatch(hints, apis.Invocation{Kind: apis.ResourceLoad, Target: "x"}); handled {
		t.Fatal("member strategy must not handle resource loads")
	}
}

func TestCategoryStrategy(t *testing.T) {
	s := strategy.NewCategoryStrategy()

	all := []apis.Hint{{
		Kind:   apis.HintReflection,
		Target: "a.T",
		Member: apis.Member{Kind: apis.MemberAll},
		Mode:   apis.ModeInvoke,
	}}
	if covered, _ := s.TryMatch(all, methodInvoke("a.T", "Anything", []string{"int"})); !covered {
		t.Fatal("MemberAll invoke hint must cover any method invoke")
	}

	weakAll := []apis.Hint{{
		Kind:   apis.HintReflection,
		Target: "a.T",
		Member: apis.Member{Kind: apis.MemberAll},
		Mode:   apis.ModeIntrospect,
	}}
	if covered, _ := s.TryMatch(weakAll, methodInvoke("a.T", "Anything", nil)); covered {
		t.Fatal("introspect-only MemberAll must not cover invoke")
	}

	// Any hint on the target sanctions a type lookup.
	member := []apis.Hint{methodHint("a.T", "Version", nil, apis.ModeIntrospect)}
	typeLookup := apis.Invocation{
		Kind:   apis.TypeLookup,
		Target: "a.T",
		Member: apis.Member{Kind: apis.MemberType},
	}
	if covered, _ := s.TryMatch(member, typeLookup); !covered {
		t.Fatal("any hint on target must sanction type lookup")
	}
	if covered, _ := s.TryMatch(member, apis.Invocation{Kind: apis.TypeLookup, Target: "a.U"}); covered {
		t.Fatal("unrelated target must not sanction type lookup")
	}
}

func TestResourceStrategy(t *testing.T) {
	s := strategy.NewResourceStrategy()
	hints := []apis.Hint{
		{Kind: apis.HintResource, Target: "assets/*.txt"},
		{Kind: apis.HintResource, Target: "version.txt"},
		{Kind: apis.HintResource, Target: "bad[pattern"},
	}

	load := func(name string) apis.Invocation {
		return apis.Invocation{Kind: apis.ResourceLoad, Target: name}
	}

	if covered, handled := s.TryMatch(hints, load("version.txt")); !handled || !covered {
		t.Fatal("exact resource name must match")
	}
	if covered, _ := s.TryMatch(hints, load("assets/notes.txt")); !covered {
		t.Fatal("glob pattern must match")
	}
	if covered, _ := s.TryMatch(hints, load("assets/img.png")); covered {
		t.Fatal("non-matching name must not match")
	}
	// Malformed pattern fails quietly.
	if covered, _ := s.TryMatch(hints, load("bad")); covered {
		t.Fatal("malformed pattern must never match")
	}
	if _, handled := s.TryMatch(hints, methodInvoke("a.T", "M", nil)); handled {
		t.Fatal("resource strategy must not handle reflective kinds")
	}
}

func TestProxyStrategy(t *testing.T) {
	s := strategy.NewProxyStrategy()
	hints := []apis.Hint{{Kind: apis.HintProxy, Target: "func(int) string"}}

	create := apis.Invocation{Kind: apis.ProxyCreate, Target: "func(int) string"}
	if covered, handled := s.TryMatch(hints, create); !handled || !covered {
		t.Fatal("proxy hint must cover matching function type")
	}
	other := apis.Invocation{Kind: apis.ProxyCreate, Target: "func() error"}
	if covered, _ := s.TryMatch(hints, other); covered {
		t.Fatal("different function type must not match")
	}
	if _, handled := s.TryMatch(hints, methodInvoke("a.T", "M", nil)); handled {
		t.Fatal("proxy strategy must not handle reflective kinds")
	}
}
