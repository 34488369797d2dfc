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
	"go/types"

	"github.com/awslabs/ar-go-flowcfg/internal/funcutil"
)

// MethodAccessNode resolves the callee of an invocation: the method or function called, and the
// receiver it is called on, if any.
//
//	recv.Method
//	pkg.Func
type MethodAccessNode struct {
	baseNode
	receiver funcutil.Optional[Node]
	method   *types.Func
}

// NewMethodAccessNode returns the access to method on receiver. The receiver is nil for functions and
// method expressions; tree is nil for synthetic accesses.
func NewMethodAccessNode(tree ast.Expr, receiver Node, method *types.Func) (*MethodAccessNode, error) {
	if method == nil {
		return nil, &InvalidConstructionError{Kind: KindMethodAccess, Field: "method"}
	}
	n := &MethodAccessNode{
		baseNode: baseNode{typ: method.Type(), tree: treeOf(tree)},
		method:   method,
	}
	if receiver != nil {
		n.receiver = funcutil.Some(receiver)
	}
	return n, nil
}

// Method returns the function or method accessed
func (n *MethodAccessNode) Method() *types.Func { return n.method }

// Receiver returns the receiver node, none for functions
func (n *MethodAccessNode) Receiver() funcutil.Optional[Node] { return n.receiver }

// Signature returns the signature of the accessed method
func (n *MethodAccessNode) Signature() *types.Signature {
	return n.method.Type().(*types.Signature)
}

// Kind returns KindMethodAccess
func (n *MethodAccessNode) Kind() Kind { return KindMethodAccess }

// Operands returns the receiver, if there is one
func (n *MethodAccessNode) Operands() []Node {
	if r, ok := n.receiver.Get(); ok {
		return []Node{r}
	}
	return nil
}

func (n *MethodAccessNode) String() string {
	if r, ok := n.receiver.Get(); ok {
		return r.String() + "." + n.method.Name()
	}
	return n.method.Name()
}

// Equal holds when both nodes access the same method object on equal receivers.
func (n *MethodAccessNode) Equal(other Node) bool {
	o, ok := other.(*MethodAccessNode)
	if !ok {
		return false
	}
	if n == o {
		return true
	}
	return n.method == o.method && equalNodes(n.receiver.ValueOr(nil), o.receiver.ValueOr(nil))
}

// Hash is consistent with Equal
func (n *MethodAccessNode) Hash() uint64 {
	h := hashStrings(KindMethodAccess.String(), n.method.FullName())
	if r, ok := n.receiver.Get(); ok {
		h = combine(h, r.Hash())
	}
	return h
}
