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
	"fmt"
	"io"
	"sort"

	"github.com/awslabs/ar-go-flowcfg/analysis/cfg"
	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
)

// Stats counts the nodes of graphs.
type Stats struct {
	Kinds map[node.Kind]int
	// Synthetic is the number of invocations without a call expression
	Synthetic int
	// Mismatches is the number of invocations whose call type differs from the declared result
	Mismatches int
}

// KindCounter is the visitor that adds each node it visits to the Stats.
type KindCounter struct {
	node.BaseVisitor[struct{}, *Stats]
}

// NewKindCounter returns a visitor counting nodes by kind.
func NewKindCounter() KindCounter {
	return KindCounter{
		BaseVisitor: node.BaseVisitor[struct{}, *Stats]{
			VisitNode: func(n node.Node, s *Stats) struct{} {
				s.Kinds[n.Kind()]++
				return struct{}{}
			},
		},
	}
}

// VisitMethodInvocation also counts synthetic invocations and type mismatches.
func (k KindCounter) VisitMethodInvocation(n *node.MethodInvocationNode, s *Stats) struct{} {
	if node.IsSynthetic(n) {
		s.Synthetic++
	}
	if n.TypeMismatch() {
		s.Mismatches++
	}
	return k.BaseVisitor.VisitMethodInvocation(n, s)
}

// NewStats returns empty statistics
func NewStats() *Stats {
	return &Stats{Kinds: map[node.Kind]int{}}
}

// AddGraph counts every node occurrence of g once, operands included.
func (s *Stats) AddGraph(g *cfg.Graph) {
	counter := NewKindCounter()
	visited := map[node.Node]bool{}
	for _, n := range g.Nodes() {
		node.Walk(n, func(x node.Node) bool {
			if visited[x] {
				return false
			}
			visited[x] = true
			node.Accept[struct{}, *Stats](x, counter, s)
			return true
		})
	}
}

// Fprint writes the counts, one kind per line.
func (s *Stats) Fprint(w io.Writer) {
	kinds := make([]node.Kind, 0, len(s.Kinds))
	for k := range s.Kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "%-20s %d\n", k, s.Kinds[k])
	}
	fmt.Fprintf(w, "%-20s %d\n", "synthetic", s.Synthetic)
	fmt.Fprintf(w, "%-20s %d\n", "type mismatches", s.Mismatches)
}
