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
	"fmt"
	"go/ast"
	"go/types"
	"strconv"
	"strings"

	"github.com/awslabs/ar-go-flowcfg/internal/funcutil"
)

// MethodInvocationNode is a call of a statically resolved method or function.
//
//	target(arg1, arg2, ...)
//
// Graphs may contain invocation nodes that correspond to no call expression, e.g. calls introduced by
// desugaring. Those nodes are synthetic: their Tree is none.
type MethodInvocationNode struct {
	baseNode
	call         funcutil.Optional[*ast.CallExpr]
	target       *MethodAccessNode
	arguments    []Node
	path         []ast.Node
	typeMismatch bool
}

// NewMethodInvocationNode returns the invocation of target on args lowered from the call expression tree.
// The path is the lexical context of the call, innermost node first, as returned by
// astutil.PathEnclosingInterval; it is kept for context queries and is not part of the node identity.
//
// The type of the node is the type info records for tree. When tree is nil, or info is nil or has no
// type for tree, the type is the declared result of the target.
func NewMethodInvocationNode(tree *ast.CallExpr, target *MethodAccessNode, args []Node, path []ast.Node,
	info TypeQuery) (*MethodInvocationNode, error) {
	if target == nil {
		return nil, &InvalidConstructionError{Kind: KindMethodInvocation, Field: "target"}
	}
	for i, arg := range args {
		if arg == nil {
			return nil, &InvalidConstructionError{Kind: KindMethodInvocation, Field: "argument " + strconv.Itoa(i)}
		}
	}
	n := &MethodInvocationNode{
		target:    target,
		arguments: append([]Node(nil), args...),
		path:      path,
	}
	declared := DeclaredResult(target.Signature())
	n.typ = declared
	if tree != nil {
		n.tree = funcutil.Some[ast.Expr](tree)
		n.call = funcutil.Some(tree)
		if info != nil {
			if t := info.TypeOf(tree); t != nil {
				n.typ = t
				n.typeMismatch = comparableResult(target.Signature()) && !types.Identical(t, declared)
			}
		}
	}
	if n.typeMismatch && assertTypeAgreement {
		panic(fmt.Sprintf("invocation %s: syntax type %s disagrees with declared result %s", n, n.typ, declared))
	}
	return n, nil
}

// NewSyntheticMethodInvocationNode returns an invocation with no originating call expression.
// Its type is the declared result of the target.
func NewSyntheticMethodInvocationNode(target *MethodAccessNode, args []Node, path []ast.Node) (*MethodInvocationNode,
	error) {
	return NewMethodInvocationNode(nil, target, args, path, nil)
}

// DeclaredResult returns the type of a call to a function with signature sig: the result type for a
// single result, and the result tuple otherwise (nil, the empty tuple, when there is no result).
func DeclaredResult(sig *types.Signature) types.Type {
	results := sig.Results()
	if results.Len() == 1 {
		return results.At(0).Type()
	}
	return results
}

// comparableResult returns true when the declared result of sig can be compared with the result type of a
// call: generic signatures have results instantiated per call.
func comparableResult(sig *types.Signature) bool {
	return sig.TypeParams().Len() == 0 && sig.RecvTypeParams().Len() == 0
}

// Target returns the callee resolution of the invocation
func (n *MethodInvocationNode) Target() *MethodAccessNode { return n.target }

// Arguments returns the arguments in positional order. The slice must not be modified.
func (n *MethodInvocationNode) Arguments() []Node { return n.arguments }

// NumArguments returns the number of arguments
func (n *MethodInvocationNode) NumArguments() int { return len(n.arguments) }

// Argument returns the i-th argument, or an *IndexOutOfRangeError.
func (n *MethodInvocationNode) Argument(i int) (Node, error) {
	if i < 0 || i >= len(n.arguments) {
		return nil, &IndexOutOfRangeError{Index: i, Len: len(n.arguments)}
	}
	return n.arguments[i], nil
}

// CallTree returns the call expression the node was lowered from, none for a synthetic invocation.
func (n *MethodInvocationNode) CallTree() funcutil.Optional[*ast.CallExpr] { return n.call }

// TreePath returns the lexical context of the invocation, innermost first. It may be empty.
func (n *MethodInvocationNode) TreePath() []ast.Node { return n.path }

// TypeMismatch returns true when the syntax type of the call disagrees with the declared result of its
// target. The node type is then the syntax type.
func (n *MethodInvocationNode) TypeMismatch() bool { return n.typeMismatch }

// Kind returns KindMethodInvocation
func (n *MethodInvocationNode) Kind() Kind { return KindMethodInvocation }

// Operands returns the target followed by the arguments, left to right.
func (n *MethodInvocationNode) Operands() []Node {
	ops := make([]Node, 0, len(n.arguments)+1)
	ops = append(ops, n.target)
	return append(ops, n.arguments...)
}

func (n *MethodInvocationNode) String() string {
	var sb strings.Builder
	sb.WriteString(n.target.String())
	sb.WriteByte('(')
	for i, arg := range n.arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal holds when other is an invocation with an equal target and pairwise equal arguments.
// The call expressions and the types of the nodes are not compared.
func (n *MethodInvocationNode) Equal(other Node) bool {
	o, ok := other.(*MethodInvocationNode)
	if !ok {
		return false
	}
	if n == o {
		return true
	}
	return n.target.Equal(o.target) && equalLists(n.arguments, o.arguments)
}

// Hash folds the argument hashes, in order, onto the hash of the target.
func (n *MethodInvocationNode) Hash() uint64 {
	h := n.target.Hash()
	for _, arg := range n.arguments {
		h = combine(h, arg.Hash())
	}
	return h
}
