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
	"errors"
	"go/ast"
	"go/constant"
	"go/types"
	"testing"
)

func TestLocalVariableNode_Equal(t *testing.T) {
	x := newVar("x", types.Typ[types.Int])
	shadow := newVar("x", types.Typ[types.Int])

	a, b := localVar(t, x), localVar(t, x)
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Errorf("uses of the same variable should be equal")
	}
	if a.Equal(localVar(t, shadow)) {
		t.Errorf("a shadowing variable with the same name should not be equal")
	}
	if a.Type() != types.Typ[types.Int] {
		t.Errorf("expected the variable type, got %v", a.Type())
	}
}

func TestValueLiteralNode_Equal(t *testing.T) {
	lit := func(v constant.Value, typ types.Type) *ValueLiteralNode {
		n, err := NewValueLiteralNode(&ast.BasicLit{}, v, typ)
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
	one := lit(constant.MakeInt64(1), types.Typ[types.Int])
	if !one.Equal(lit(constant.MakeInt64(1), types.Typ[types.Int])) {
		t.Errorf("equal constants of the same type should be equal")
	}
	if one.Equal(lit(constant.MakeInt64(1), types.Typ[types.Int64])) {
		t.Errorf("constants of different types should differ")
	}
	if one.Equal(lit(constant.MakeString("1"), types.Typ[types.Int])) {
		t.Errorf("constants of different kinds should differ")
	}
	if s := lit(constant.MakeString("hi"), types.Typ[types.String]).String(); s != `"hi"` {
		t.Errorf("unexpected rendering %s", s)
	}
	if IsSynthetic(one) {
		t.Errorf("a literal with a tree is not synthetic")
	}
}

func TestFieldAccessNode(t *testing.T) {
	f := types.NewField(0, testPkg, "count", types.Typ[types.Int], false)
	s := types.NewStruct([]*types.Var{f}, nil)
	recv := localVar(t, newVar("s", s))

	a, err := NewFieldAccessNode(nil, recv, f)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewFieldAccessNode(nil, localVar(t, recv.Var()), f)
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Errorf("%v should equal %v", a, b)
	}
	if a.String() != "s.count" {
		t.Errorf("unexpected rendering %s", a)
	}
	if ops := a.Operands(); len(ops) != 1 || ops[0] != recv {
		t.Errorf("the receiver should be the only operand")
	}

	var constructionErr *InvalidConstructionError
	if _, err := NewFieldAccessNode(nil, nil, f); !errors.As(err, &constructionErr) {
		t.Errorf("expected a construction error for a missing receiver")
	}
	if _, err := NewFieldAccessNode(nil, recv, newVar("local", types.Typ[types.Int])); !errors.As(err, &constructionErr) {
		t.Errorf("expected a construction error for a non-field variable")
	}
}

func TestMethodAccessNode(t *testing.T) {
	m := newFunc("M")
	r1 := localVar(t, newVar("r1", types.Typ[types.Int]))
	r2 := localVar(t, newVar("r2", types.Typ[types.Int]))

	if !access(t, r1, m).Equal(access(t, r1, m)) {
		t.Errorf("same method on the same receiver should be equal")
	}
	if access(t, r1, m).Equal(access(t, r2, m)) {
		t.Errorf("different receivers should differ")
	}
	if access(t, r1, m).Equal(access(t, nil, m)) {
		t.Errorf("an access with a receiver should differ from one without")
	}
	if access(t, nil, m).Equal(access(t, nil, newFunc("M"))) {
		t.Errorf("different method objects with the same name should differ")
	}
	if access(t, nil, m).Type() != m.Type() {
		t.Errorf("the access type should be the method signature")
	}
	if ops := access(t, nil, m).Operands(); len(ops) != 0 {
		t.Errorf("function access has no operand, got %v", ops)
	}

	var constructionErr *InvalidConstructionError
	if _, err := NewMethodAccessNode(nil, r1, nil); !errors.As(err, &constructionErr) {
		t.Errorf("expected a construction error for a missing method")
	}
}

func TestKind_String(t *testing.T) {
	if KindMethodInvocation.String() != "method-invocation" {
		t.Errorf("unexpected tag %s", KindMethodInvocation)
	}
	if KindInvalid.String() != "invalid(0)" {
		t.Errorf("unexpected tag %s", KindInvalid)
	}
}
