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
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"testing"
)

var testPkg = types.NewPackage("example.com/p", "p")

func newFunc(name string, results ...types.Type) *types.Func {
	var vars []*types.Var
	for _, r := range results {
		vars = append(vars, types.NewVar(token.NoPos, testPkg, "", r))
	}
	sig := types.NewSignatureType(nil, nil, nil, nil, types.NewTuple(vars...), false)
	return types.NewFunc(token.NoPos, testPkg, name, sig)
}

func newVar(name string, typ types.Type) *types.Var {
	return types.NewVar(token.NoPos, testPkg, name, typ)
}

func intLit(t *testing.T, v int64) *ValueLiteralNode {
	n, err := NewValueLiteralNode(nil, constant.MakeInt64(v), types.Typ[types.Int])
	if err != nil {
		t.Fatalf("literal %d: %v", v, err)
	}
	return n
}

func localVar(t *testing.T, v *types.Var) *LocalVariableNode {
	n, err := NewLocalVariableNode(nil, v)
	if err != nil {
		t.Fatalf("variable %s: %v", v.Name(), err)
	}
	return n
}

func access(t *testing.T, receiver Node, fn *types.Func) *MethodAccessNode {
	n, err := NewMethodAccessNode(nil, receiver, fn)
	if err != nil {
		t.Fatalf("access %s: %v", fn.Name(), err)
	}
	return n
}

func invoke(t *testing.T, target *MethodAccessNode, args ...Node) *MethodInvocationNode {
	n, err := NewSyntheticMethodInvocationNode(target, args, nil)
	if err != nil {
		t.Fatalf("invocation of %s: %v", target, err)
	}
	return n
}

// typeMap is a TypeQuery backed by a map
type typeMap map[ast.Expr]types.Type

func (m typeMap) TypeOf(e ast.Expr) types.Type { return m[e] }
