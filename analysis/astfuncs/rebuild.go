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


package astfuncs

import (
	"go/types"

	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
	"github.com/dave/dst"
)

// exprBuilder is the visitor that builds the expression of a node. The first error is kept in the state, and
// the expressions built after it are discarded.
type exprBuilder struct{}

type buildState struct {
	// path of the package the expression is emitted in
	path string
	err  error
}

func (s *buildState) fail(err error) dst.Expr {
	if s.err == nil {
		s.err = err
	}
	return NewNil()
}

// ToExpr returns the expression of n, as code of the package at path.
func ToExpr(n node.Node, path string) (dst.Expr, error) {
	s := &buildState{path: path}
	e := node.Accept[dst.Expr, *buildState](n, exprBuilder{}, s)
	if s.err != nil {
		return nil, s.err
	}
	return e, nil
}

func (b exprBuilder) VisitMethodAccess(n *node.MethodAccessNode, s *buildState) dst.Expr {
	m := n.Method()
	if recv, ok := n.Receiver().Get(); ok {
		return NewSelector(node.Accept[dst.Expr, *buildState](recv, b, s), m.Name())
	}
	if sig := n.Signature(); sig.Recv() != nil {
		// method expression
		t, err := NewTypeExpr(sig.Recv().Type(), s.path)
		if err != nil {
			return s.fail(err)
		}
		return NewSelector(&dst.ParenExpr{X: t}, m.Name())
	}
	return s.ident(m)
}

func (b exprBuilder) VisitMethodInvocation(n *node.MethodInvocationNode, s *buildState) dst.Expr {
	fun := node.Accept[dst.Expr, *buildState](n.Target(), b, s)
	args := make([]dst.Expr, n.NumArguments())
	for i, arg := range n.Arguments() {
		args[i] = node.Accept[dst.Expr, *buildState](arg, b, s)
	}
	return NewCall(fun, args...)
}

func (b exprBuilder) VisitLocalVariable(n *node.LocalVariableNode, s *buildState) dst.Expr {
	return s.ident(n.Var())
}

func (b exprBuilder) VisitValueLiteral(n *node.ValueLiteralNode, s *buildState) dst.Expr {
	e, err := NewLiteral(n.Value())
	if err != nil {
		return s.fail(err)
	}
	return e
}

func (b exprBuilder) VisitFieldAccess(n *node.FieldAccessNode, s *buildState) dst.Expr {
	return NewSelector(node.Accept[dst.Expr, *buildState](n.Receiver(), b, s), n.Field().Name())
}

// ident returns the identifier of obj, qualified when obj is declared at the package level of another package
func (s *buildState) ident(obj types.Object) dst.Expr {
	pkg := obj.Pkg()
	if pkg == nil || pkg.Path() == s.path || obj.Parent() != pkg.Scope() {
		return dst.NewIdent(obj.Name())
	}
	return NewQualifiedIdent(obj.Name(), pkg.Path())
}

// Hoist returns the statement that stores the result of the invocation in a fresh variable of scope, and the
// identifier of the variable. Invocations with no result or several results cannot be hoisted.
func Hoist(n *node.MethodInvocationNode, scope *types.Scope, path string) (*dst.AssignStmt, *dst.Ident, error) {
	if n.Target().Signature().Results().Len() != 1 {
		return nil, nil, &HoistError{Invocation: n.String()}
	}
	e, err := ToExpr(n, path)
	if err != nil {
		return nil, nil, err
	}
	name := FreshNameAt(scope, resultPrefix(n), 0)
	return NewDefine(name, e), dst.NewIdent(name), nil
}

// HoistError is returned when an invocation does not have exactly one result.
type HoistError struct {
	Invocation string
}

func (e *HoistError) Error() string {
	return "cannot hoist " + e.Invocation + ": it does not have a single result"
}

// resultPrefix is the name prefix of the variable holding the result of n
func resultPrefix(n *node.MethodInvocationNode) string {
	name := []rune(n.Target().Method().Name())
	if len(name) == 0 {
		return "v"
	}
	if name[0] >= 'A' && name[0] <= 'Z' {
		name[0] += 'a' - 'A'
	}
	return string(name)
}
