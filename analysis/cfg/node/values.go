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
	"go/types"
)

// LocalVariableNode is a use of a variable of the analyzed function.
type LocalVariableNode struct {
	baseNode
	variable *types.Var
}

// NewLocalVariableNode returns a use of variable. The tree is usually the *ast.Ident of the use.
func NewLocalVariableNode(tree ast.Expr, variable *types.Var) (*LocalVariableNode, error) {
	if variable == nil {
		return nil, &InvalidConstructionError{Kind: KindLocalVariable, Field: "variable"}
	}
	return &LocalVariableNode{
		baseNode: baseNode{typ: variable.Type(), tree: treeOf(tree)},
		variable: variable,
	}, nil
}

// Var returns the variable
func (n *LocalVariableNode) Var() *types.Var { return n.variable }

// Name returns the name of the variable
func (n *LocalVariableNode) Name() string { return n.variable.Name() }

func (n *LocalVariableNode) Kind() Kind       { return KindLocalVariable }
func (n *LocalVariableNode) Operands() []Node { return nil }
func (n *LocalVariableNode) String() string   { return n.variable.Name() }

// Equal holds when both nodes use the same variable object. Shadowed variables with the same name
// are different.
func (n *LocalVariableNode) Equal(other Node) bool {
	o, ok := other.(*LocalVariableNode)
	return ok && n.variable == o.variable
}

func (n *LocalVariableNode) Hash() uint64 {
	return hashStrings(KindLocalVariable.String(), n.variable.Name())
}

// ValueLiteralNode is a constant value, typically a literal.
//
//	42
//	"hello"
type ValueLiteralNode struct {
	baseNode
	value constant.Value
}

// NewValueLiteralNode returns the constant value of type typ.
func NewValueLiteralNode(tree ast.Expr, value constant.Value, typ types.Type) (*ValueLiteralNode, error) {
	if value == nil {
		return nil, &InvalidConstructionError{Kind: KindValueLiteral, Field: "value"}
	}
	if typ == nil {
		return nil, &InvalidConstructionError{Kind: KindValueLiteral, Field: "type"}
	}
	return &ValueLiteralNode{
		baseNode: baseNode{typ: typ, tree: treeOf(tree)},
		value:    value,
	}, nil
}

// Value returns the constant
func (n *ValueLiteralNode) Value() constant.Value { return n.value }

func (n *ValueLiteralNode) Kind() Kind       { return KindValueLiteral }
func (n *ValueLiteralNode) Operands() []Node { return nil }
func (n *ValueLiteralNode) String() string   { return n.value.ExactString() }

// Equal holds for constants of identical types with the same exact value.
func (n *ValueLiteralNode) Equal(other Node) bool {
	o, ok := other.(*ValueLiteralNode)
	if !ok {
		return false
	}
	return n.value.Kind() == o.value.Kind() &&
		n.value.ExactString() == o.value.ExactString() &&
		types.Identical(n.typ, o.typ)
}

func (n *ValueLiteralNode) Hash() uint64 {
	return hashStrings(KindValueLiteral.String(), n.value.ExactString())
}

// FieldAccessNode reads a struct field through a receiver expression.
//
//	recv.field
type FieldAccessNode struct {
	baseNode
	receiver Node
	field    *types.Var
}

// NewFieldAccessNode returns the access to field on receiver.
func NewFieldAccessNode(tree ast.Expr, receiver Node, field *types.Var) (*FieldAccessNode, error) {
	if receiver == nil {
		return nil, &InvalidConstructionError{Kind: KindFieldAccess, Field: "receiver"}
	}
	if field == nil || !field.IsField() {
		return nil, &InvalidConstructionError{Kind: KindFieldAccess, Field: "field"}
	}
	return &FieldAccessNode{
		baseNode: baseNode{typ: field.Type(), tree: treeOf(tree)},
		receiver: receiver,
		field:    field,
	}, nil
}

// Receiver returns the node the field is read from
func (n *FieldAccessNode) Receiver() Node { return n.receiver }

// Field returns the field object
func (n *FieldAccessNode) Field() *types.Var { return n.field }

func (n *FieldAccessNode) Kind() Kind       { return KindFieldAccess }
func (n *FieldAccessNode) Operands() []Node { return []Node{n.receiver} }
func (n *FieldAccessNode) String() string   { return n.receiver.String() + "." + n.field.Name() }

func (n *FieldAccessNode) Equal(other Node) bool {
	o, ok := other.(*FieldAccessNode)
	return ok && n.field == o.field && n.receiver.Equal(o.receiver)
}

func (n *FieldAccessNode) Hash() uint64 {
	return combine(hashStrings(KindFieldAccess.String(), n.field.Name()), n.receiver.Hash())
}
