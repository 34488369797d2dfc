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


/*
Package node defines the expression nodes stored in the basic blocks of a control-flow graph.

A node is an immutable value: its static type is computed once by its constructor and no field
changes afterwards, so nodes can be shared between goroutines once the graph holding them has
been built.

Nodes compare structurally. Two invocations of the same method on equal arguments are Equal and
have the same Hash even when they come from different places in the source, or from no place
at all (synthetic nodes). A dataflow engine uses this to key its facts by expression.

Analyses operate on nodes through a [Visitor] and the [Accept] function, which calls exactly one
visit method per node kind:

	type printer struct{ node.BaseVisitor[string, int] }

	func (printer) VisitMethodInvocation(n *node.MethodInvocationNode, depth int) string {
		return strings.Repeat(" ", depth) + n.String()
	}

	s := node.Accept[string, int](n, printer{}, 0)
*/
package node
