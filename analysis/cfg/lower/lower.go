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


// Package lower translates typed Go expressions into the expression nodes of package node, and places the
// invocations of a function body in a control-flow graph.
package lower

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/awslabs/ar-go-flowcfg/analysis/cfg"
	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
	"github.com/awslabs/ar-go-flowcfg/analysis/config"
	"golang.org/x/tools/go/ast/astutil"
)

// UnsupportedError is returned for expressions that have no node representation, e.g. calls of function values.
type UnsupportedError struct {
	Expr   string
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("cannot lower %s: %s", e.Expr, e.Reason)
}

// Lowerer translates the expressions of one type-checked file.
type Lowerer struct {
	fset   *token.FileSet
	file   *ast.File
	info   *types.Info
	logger *config.LogGroup

	// ignored lines, from the ignore directives of the file
	ignored Directives
}

// NewLowerer returns a lowerer for the expressions of file. The info must have its Types, Uses and Selections
// maps populated.
func NewLowerer(fset *token.FileSet, file *ast.File, info *types.Info, logger *config.LogGroup) *Lowerer {
	return &Lowerer{
		fset:    fset,
		file:    file,
		info:    info,
		logger:  logger,
		ignored: findDirectives([]*ast.File{file}, fset),
	}
}

// LowerExpr returns the node for e. Operands are lowered first, from left to right.
func (l *Lowerer) LowerExpr(e ast.Expr) (node.Node, error) {
	e = astutil.Unparen(e)
	if tv, ok := l.info.Types[e]; ok && tv.Value != nil {
		return asNode(node.NewValueLiteralNode(e, tv.Value, tv.Type))
	}

	switch e := e.(type) {
	case *ast.CallExpr:
		return asNode(l.LowerCall(e))
	case *ast.Ident:
		// package-level variables are lowered as variable uses too
		if v, ok := l.info.Uses[e].(*types.Var); ok {
			return asNode(node.NewLocalVariableNode(e, v))
		}
	case *ast.SelectorExpr:
		if sel := l.info.Selections[e]; sel != nil {
			if sel.Kind() != types.FieldVal {
				return nil, l.unsupported(e, "method value")
			}
			recv, err := l.LowerExpr(e.X)
			if err != nil {
				return nil, err
			}
			return asNode(node.NewFieldAccessNode(e, recv, sel.Obj().(*types.Var)))
		}
		if v, ok := l.info.Uses[e.Sel].(*types.Var); ok {
			return asNode(node.NewLocalVariableNode(e, v))
		}
	}
	return nil, l.unsupported(e, fmt.Sprintf("no node for %T", e))
}

// LowerCall returns the invocation node of a call whose callee is statically known: a function, a method called
// on a receiver, or a method expression. Calls of function values, builtins and conversions are not supported.
func (l *Lowerer) LowerCall(call *ast.CallExpr) (*node.MethodInvocationNode, error) {
	if tv, ok := l.info.Types[call.Fun]; ok && tv.IsType() {
		return nil, l.unsupported(call, "conversion")
	}

	target, err := l.lowerCallee(call.Fun)
	if err != nil {
		return nil, err
	}

	args := make([]node.Node, 0, len(call.Args))
	for _, arg := range call.Args {
		a, err := l.LowerExpr(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}

	path, _ := astutil.PathEnclosingInterval(l.file, call.Pos(), call.End())
	n, err := node.NewMethodInvocationNode(call, target, args, path, l.info)
	if err != nil {
		return nil, err
	}
	if n.TypeMismatch() {
		l.logger.Warnf("%s: type of %s differs from the declared result of %s\n",
			l.fset.Position(call.Pos()), n, target.Method().FullName())
	}
	return n, nil
}

func (l *Lowerer) lowerCallee(fun ast.Expr) (*node.MethodAccessNode, error) {
	fun = astutil.Unparen(fun)
	// explicit instantiations f[T](...) resolve through the generic function
	switch x := fun.(type) {
	case *ast.IndexExpr:
		fun = x.X
	case *ast.IndexListExpr:
		fun = x.X
	}

	switch fun := fun.(type) {
	case *ast.Ident:
		switch obj := l.info.Uses[fun].(type) {
		case *types.Func:
			return node.NewMethodAccessNode(fun, nil, obj)
		case *types.Builtin:
			return nil, l.unsupported(fun, "builtin")
		}
	case *ast.SelectorExpr:
		sel := l.info.Selections[fun]
		if sel == nil {
			// qualified identifier
			if f, ok := l.info.Uses[fun.Sel].(*types.Func); ok {
				return node.NewMethodAccessNode(fun, nil, f)
			}
			break
		}
		switch sel.Kind() {
		case types.MethodVal:
			recv, err := l.LowerExpr(fun.X)
			if err != nil {
				return nil, err
			}
			return node.NewMethodAccessNode(fun, recv, sel.Obj().(*types.Func))
		case types.MethodExpr:
			// T.M(x, ...): the receiver is the first argument
			return node.NewMethodAccessNode(fun, nil, sel.Obj().(*types.Func))
		}
	}
	return nil, l.unsupported(fun, "dynamic call")
}

// asNode drops the typed nil of a failed construction
func asNode[N node.Node](n N, err error) (node.Node, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (l *Lowerer) unsupported(e ast.Expr, reason string) error {
	return &UnsupportedError{Expr: types.ExprString(e), Reason: reason}
}

// LowerFunc returns a graph with a single block containing the invocations of the body of decl, in evaluation
// order: the invocations in the arguments of a call come before the call. Function literals are not entered.
//
// Calls that cannot be lowered are skipped, but the calls in their arguments are still lowered. Calls on a line
// with an ignore directive are skipped.
func (l *Lowerer) LowerFunc(decl *ast.FuncDecl) (*cfg.Graph, error) {
	g := cfg.New(funcName(decl))
	block := g.NewBlock()
	if decl.Body == nil {
		return g, nil
	}

	var err error
	ast.Inspect(decl.Body, func(n ast.Node) bool {
		if err != nil {
			return false
		}
		switch n := n.(type) {
		case *ast.FuncLit:
			return false
		case *ast.CallExpr:
			if l.ignored.At(l.fset.Position(n.Pos())) {
				l.logger.Debugf("%s: ignored\n", l.fset.Position(n.Pos()))
				return true
			}
			inv, lowerErr := l.LowerCall(n)
			var unsupported *UnsupportedError
			if errors.As(lowerErr, &unsupported) {
				l.logger.Debugf("%s: %s\n", l.fset.Position(n.Pos()), lowerErr)
				return true
			} else if lowerErr != nil {
				l.logger.Warnf("%s: %s\n", l.fset.Position(n.Pos()), lowerErr)
				return true
			}
			for _, x := range invocationsPostOrder(inv) {
				if err = block.Append(x); err != nil {
					return false
				}
			}
			return false
		}
		return true
	})
	return g, err
}

// invocationsPostOrder returns the invocations in the node tree of n, operands first
func invocationsPostOrder(n node.Node) []*node.MethodInvocationNode {
	var res []*node.MethodInvocationNode
	for _, op := range n.Operands() {
		res = append(res, invocationsPostOrder(op)...)
	}
	if inv, ok := n.(*node.MethodInvocationNode); ok {
		res = append(res, inv)
	}
	return res
}

func funcName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return decl.Name.Name
	}
	return types.ExprString(decl.Recv.List[0].Type) + "." + decl.Name.Name
}
