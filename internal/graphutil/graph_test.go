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


package graphutil

import (
	"fmt"
	"testing"

	"github.com/yourbasic/graph"
	"golang.org/x/exp/slices"
	gonum "gonum.org/v1/gonum/graph"
)

func mkGraph(order int, edges [][2]int64) Digraph {
	d := NewDigraph(order)
	for _, e := range edges {
		d.AddEdge(e[0], e[1])
	}
	return d
}

func TestFindAllElementaryCycles(t *testing.T) {
	// 0 -> 1 -> 2 -> 0, 2 -> 3 -> 3, 1 -> 4 -> 1
	d := mkGraph(5, [][2]int64{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 3}, {1, 4}, {4, 1}})
	stats := graph.Check(d)
	t.Logf("Stats:\n\tsize: %d\n\tmulti: %d\n\tloops: %d\n\tisolated: %d",
		stats.Size, stats.Multi, stats.Loops, stats.Isolated)

	cycles := FindAllElementaryCycles(d)
	expected := []string{"[0 1 2 0]", "[1 4 1]", "[3 3]"}
	if len(cycles) != len(expected) {
		t.Fatalf("expected %d cycles, got %v", len(expected), cycles)
	}
	for i, c := range cycles {
		if s := fmt.Sprint(c); s != expected[i] {
			t.Errorf("cycle %d: expected %s, got %s", i, expected[i], s)
		}
	}
}

func TestFindAllElementaryCycles_Acyclic(t *testing.T) {
	d := mkGraph(4, [][2]int64{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	if cycles := FindAllElementaryCycles(d); len(cycles) != 0 {
		t.Errorf("expected no cycle, got %v", cycles)
	}
}

func TestComponentsInOrder(t *testing.T) {
	// entry 0, loop {1, 2}, exit 3
	d := mkGraph(4, [][2]int64{{0, 1}, {1, 2}, {2, 1}, {2, 3}})
	components := ComponentsInOrder(d)
	expected := [][]int64{{0}, {1, 2}, {3}}
	if len(components) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, components)
	}
	for i := range expected {
		if !slices.Equal(components[i], expected[i]) {
			t.Errorf("component %d: expected %v, got %v", i, expected[i], components[i])
		}
	}
}

func TestDigraph_GonumInterface(t *testing.T) {
	var _ gonum.Directed = Digraph{}
	d := mkGraph(3, [][2]int64{{0, 1}, {2, 1}})
	d.Labels[1] = "b1"

	if !d.HasEdgeFromTo(0, 1) || d.HasEdgeFromTo(1, 0) || !d.HasEdgeBetween(1, 0) {
		t.Errorf("edge queries are inconsistent")
	}
	to := gonum.NodesOf(d.To(1))
	if len(to) != 2 || to[0].ID() != 0 || to[1].ID() != 2 {
		t.Errorf("expected predecessors [0 2], got %v", to)
	}
	if n := gonum.NodesOf(d.From(1)); len(n) != 0 {
		t.Errorf("expected no successor, got %v", n)
	}
	if s := fmt.Sprint(d.Node(1)); s != "b1" {
		t.Errorf("expected the label, got %q", s)
	}
	if d.Node(7) != nil {
		t.Errorf("unknown ids should have no node")
	}
	if e := d.Edge(2, 1); e == nil || e.From().ID() != 2 || e.ReversedEdge().From().ID() != 1 {
		t.Errorf("unexpected edge %v", e)
	}
	d.AddEdge(0, 9)
	if len(d.Edges[0]) != 1 {
		t.Errorf("edges to unknown ids should be ignored")
	}
}

func TestSubgraph(t *testing.T) {
	d := mkGraph(4, [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	s := Subgraph(d, []int64{3, 1, 2})
	if !slices.Equal(s.Keys, []int64{1, 2, 3}) {
		t.Errorf("unexpected keys %v", s.Keys)
	}
	if s.Order() != 4 {
		t.Errorf("subgraphs keep the order of the original graph")
	}
	if s.HasEdgeFromTo(3, 0) || !s.HasEdgeFromTo(1, 2) {
		t.Errorf("only edges between kept nodes should remain")
	}
}
