// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package node

import (
	"go/types"
	"testing"
)

// kindRecorder records the kind tag of every visit operation called
type kindRecorder struct {
	tags []string
}

func (r *kindRecorder) VisitMethodAccess(n *MethodAccessNode, _ struct{}) bool {
	r.tags = append(r.tags, "method-access")
	return true
}

func (r *kindRecorder) VisitMethodInvocation(n *MethodInvocationNode, _ struct{}) bool {
	r.tags = append(r.tags, "method-invocation")
	return true
}

func (r *kindRecorder) VisitLocalVariable(n *LocalVariableNode, _ struct{}) bool {
	r.tags = append(r.tags, "local-variable")
	return true
}

func (r *kindRecorder) VisitValueLiteral(n *ValueLiteralNode, _ struct{}) bool {
	r.tags = append(r.tags, "value-literal")
	return true
}

func (r *kindRecorder) VisitFieldAccess(n *FieldAccessNode, _ struct{}) bool {
	r.tags = append(r.tags, "field-access")
	return true
}

func TestAccept_MethodInvocationDispatchesOnce(t *testing.T) {
	x := localVar(t, newVar("x", types.Typ[types.Int]))
	n := invoke(t, access(t, x, newFunc("m")), intLit(t, 1))

	r := &kindRecorder{}
	if !Accept[bool, struct{}](n, r, struct{}{}) {
		t.Errorf("expected the result of the visit operation")
	}
	if len(r.tags) != 1 || r.tags[0] != "method-invocation" {
		t.Errorf("expected exactly one method-invocation visit, got %v", r.tags)
	}
}

func TestAccept_EveryKind(t *testing.T) {
	s := types.NewStruct([]*types.Var{types.NewField(0, testPkg, "f", types.Typ[types.Int], false)}, nil)
	recv := localVar(t, newVar("s", s))
	field, err := NewFieldAccessNode(nil, recv, s.Field(0))
	if err != nil {
		t.Fatal(err)
	}
	target := access(t, nil, newFunc("g"))
	nodes := []Node{target, invoke(t, target), recv, intLit(t, 4), field}
	for _, n := range nodes {
		r := &kindRecorder{}
		Accept[bool, struct{}](n, r, struct{}{})
		if len(r.tags) != 1 || r.tags[0] != n.Kind().String() {
			t.Errorf("visiting %v (%s): got %v", n, n.Kind(), r.tags)
		}
	}
}

// invocationNamer only handles invocations, everything else goes to the BaseVisitor fallback
type invocationNamer struct {
	BaseVisitor[string, string]
}

func (invocationNamer) VisitMethodInvocation(n *MethodInvocationNode, prefix string) string {
	return prefix + n.Target().Method().Name()
}

func TestBaseVisitor(t *testing.T) {
	v := invocationNamer{BaseVisitor[string, string]{
		VisitNode: func(n Node, prefix string) string { return prefix + "other:" + n.Kind().String() },
	}}
	target := access(t, nil, newFunc("h"))
	if s := Accept[string, string](invoke(t, target), v, "> "); s != "> h" {
		t.Errorf("expected the overriding operation to be called, got %q", s)
	}
	if s := Accept[string, string](intLit(t, 1), v, "> "); s != "> other:value-literal" {
		t.Errorf("expected the fallback to be called, got %q", s)
	}
	if s := Accept[string, string](target, invocationNamer{}, ""); s != "" {
		t.Errorf("a nil fallback should return the zero value, got %q", s)
	}
}

func TestWalk(t *testing.T) {
	x := localVar(t, newVar("x", types.Typ[types.Int]))
	inner := invoke(t, access(t, nil, newFunc("g", types.Typ[types.Int])), x)
	outer := invoke(t, access(t, nil, newFunc("f")), inner, intLit(t, 2))

	var seen []string
	Walk(outer, func(n Node) bool {
		seen = append(seen, n.String())
		return true
	})
	expected := []string{"f(g(x), 2)", "f", "g(x)", "g", "x", "2"}
	if len(seen) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, seen)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], seen[i])
		}
	}

	count := 0
	Walk(outer, func(n Node) bool {
		count++
		return n == outer
	})
	if count != 4 {
		t.Errorf("pruned walk should visit the root and its 3 operands, visited %d nodes", count)
	}
}
