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

import "fmt"

// A Visitor must implement one operation for every node kind. R is the result type of the
// operations and P the type of the parameter threaded through them.
type Visitor[R any, P any] interface {
	VisitMethodAccess(*MethodAccessNode, P) R
	VisitMethodInvocation(*MethodInvocationNode, P) R
	VisitLocalVariable(*LocalVariableNode, P) R
	VisitValueLiteral(*ValueLiteralNode, P) R
	VisitFieldAccess(*FieldAccessNode, P) R
}

// Accept calls the operation of visitor matching the kind of n with n and p, and returns its result.
// No other operation of the visitor is called.
func Accept[R any, P any](n Node, visitor Visitor[R, P], p P) R {
	switch n := n.(type) {
	case *MethodInvocationNode:
		return visitor.VisitMethodInvocation(n, p)
	case *MethodAccessNode:
		return visitor.VisitMethodAccess(n, p)
	case *LocalVariableNode:
		return visitor.VisitLocalVariable(n, p)
	case *ValueLiteralNode:
		return visitor.VisitValueLiteral(n, p)
	case *FieldAccessNode:
		return visitor.VisitFieldAccess(n, p)
	default:
		panic(fmt.Sprintf("node: no visit operation for %T", n))
	}
}

// BaseVisitor implements every operation of Visitor by calling VisitNode. Embed it in a visitor
// and define only the operations that need specific behavior. When VisitNode is nil, the
// operations return the zero value of R.
type BaseVisitor[R any, P any] struct {
	VisitNode func(n Node, p P) R
}

func (b BaseVisitor[R, P]) visit(n Node, p P) R {
	if b.VisitNode == nil {
		var zero R
		return zero
	}
	return b.VisitNode(n, p)
}

// VisitMethodAccess calls VisitNode
func (b BaseVisitor[R, P]) VisitMethodAccess(n *MethodAccessNode, p P) R { return b.visit(n, p) }

// VisitMethodInvocation calls VisitNode
func (b BaseVisitor[R, P]) VisitMethodInvocation(n *MethodInvocationNode, p P) R { return b.visit(n, p) }

// VisitLocalVariable calls VisitNode
func (b BaseVisitor[R, P]) VisitLocalVariable(n *LocalVariableNode, p P) R { return b.visit(n, p) }

// VisitValueLiteral calls VisitNode
func (b BaseVisitor[R, P]) VisitValueLiteral(n *ValueLiteralNode, p P) R { return b.visit(n, p) }

// VisitFieldAccess calls VisitNode
func (b BaseVisitor[R, P]) VisitFieldAccess(n *FieldAccessNode, p P) R { return b.visit(n, p) }
