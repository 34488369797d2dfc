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


package flow

import (
	"github.com/awslabs/ar-go-flowcfg/analysis/cfg"
	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
)

// UseIndex maps the node occurrences of a graph to the occurrences that consume them as operands. Nodes are
// compared by identity.
type UseIndex struct {
	users map[node.Node][]node.Node
	defs  []node.Node
}

// NewUseIndex indexes the nodes of g and all their operands.
func NewUseIndex(g *cfg.Graph) *UseIndex {
	idx := &UseIndex{users: map[node.Node][]node.Node{}}
	visited := map[node.Node]bool{}
	var visit func(n node.Node)
	visit = func(n node.Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		ops := n.Operands()
		if len(ops) == 0 {
			idx.defs = append(idx.defs, n)
		}
		for _, op := range ops {
			idx.users[op] = append(idx.users[op], n)
			visit(op)
		}
	}
	for _, n := range g.Nodes() {
		visit(n)
	}
	return idx
}

// Users returns the nodes that have n as a direct operand.
func (u *UseIndex) Users(n node.Node) []node.Node {
	return u.users[n]
}

// Defs returns the nodes without operands, in the order they were reached.
func (u *UseIndex) Defs() []node.Node {
	return u.defs
}
