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

	"github.com/awslabs/ar-go-flowcfg/internal/funcutil"
)

// Node is an expression node of the control-flow graph.
// The set of node kinds is closed: only the types of this package implement Node.
type Node interface {
	// Type returns the static type of the expression represented by the node.
	Type() types.Type

	// Tree returns the syntax the node was built from, or none for a synthetic node.
	Tree() funcutil.Optional[ast.Expr]

	// Operands returns the sub-expressions consumed by the node, in evaluation order.
	// The returned slice must not be modified.
	Operands() []Node

	// Kind returns the kind tag of the node
	Kind() Kind

	// Equal returns true when the node is structurally equal to other. Syntax trees are ignored.
	Equal(other Node) bool

	// Hash returns a hash consistent with Equal.
	Hash() uint64

	// String returns a rendering of the expression, for debugging only.
	String() string

	isNode()
}

// A TypeQuery answers the type of a syntax expression. *types.Info implements it.
type TypeQuery interface {
	TypeOf(e ast.Expr) types.Type
}

// Kind is the kind tag of a node.
type Kind int

const (
	KindInvalid Kind = iota
	KindMethodAccess
	KindMethodInvocation
	KindLocalVariable
	KindValueLiteral
	KindFieldAccess
)

var kindNames = map[Kind]string{
	KindMethodAccess:     "method-access",
	KindMethodInvocation: "method-invocation",
	KindLocalVariable:    "local-variable",
	KindValueLiteral:     "value-literal",
	KindFieldAccess:      "field-access",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("invalid(%d)", int(k))
}

// baseNode holds the state shared by every kind.
type baseNode struct {
	typ  types.Type
	tree funcutil.Optional[ast.Expr]
}

func (b *baseNode) Type() types.Type { return b.typ }

func (b *baseNode) Tree() funcutil.Optional[ast.Expr] { return b.tree }

func (*baseNode) isNode() {}

// treeOf wraps a syntax expression, nil meaning none.
func treeOf(e ast.Expr) funcutil.Optional[ast.Expr] {
	if e == nil {
		return funcutil.None[ast.Expr]()
	}
	return funcutil.Some(e)
}

// IsSynthetic returns true when n has no originating syntax.
func IsSynthetic(n Node) bool {
	return n.Tree().IsNone()
}

// Walk visits n and its operands depth-first, operands in order, calling f before descending.
// Descent below a node stops when f returns false.
func Walk(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}
	for _, op := range n.Operands() {
		Walk(op, f)
	}
}

// equalNodes compares two possibly absent nodes.
func equalNodes(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// equalLists compares two node lists position by position.
func equalLists(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
