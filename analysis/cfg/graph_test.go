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


package cfg

import (
	"go/constant"
	"go/types"
	"reflect"
	"testing"

	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
)

func lit(t *testing.T, v int64) node.Node {
	n, err := node.NewValueLiteralNode(nil, constant.MakeInt64(v), types.Typ[types.Int])
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func indices(blocks []*Block) []int {
	res := make([]int, len(blocks))
	for i, b := range blocks {
		res[i] = b.Index
	}
	return res
}

// mkGraph builds a graph of n empty blocks with the given edges
func mkGraph(t *testing.T, n int, edges [][2]int) *Graph {
	g := New("test")
	for i := 0; i < n; i++ {
		g.NewBlock()
	}
	for _, e := range edges {
		if err := g.AddEdge(g.Blocks()[e[0]], g.Blocks()[e[1]]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestGraph_Blocks(t *testing.T) {
	g := New("f")
	if g.Entry().IsSome() {
		t.Fatalf("empty graph should have no entry")
	}
	b0 := g.NewBlock()
	b1 := g.NewBlock()
	if err := g.AddEdge(b0, b1); err != nil {
		t.Fatal(err)
	}
	// adding the same edge twice has no effect
	if err := g.AddEdge(b0, b1); err != nil {
		t.Fatal(err)
	}
	if len(b0.Succs()) != 1 || len(b1.Preds()) != 1 || b1.Preds()[0] != b0 {
		t.Errorf("unexpected edges: %v %v", b0.Succs(), b1.Preds())
	}
	if e := g.Entry(); !e.IsSome() || e.Value() != b0 {
		t.Errorf("entry should be the first block")
	}

	other := New("g").NewBlock()
	if err := g.AddEdge(b0, other); err == nil {
		t.Errorf("expected an error for an edge across graphs")
	}
}

func TestGraph_Nodes(t *testing.T) {
	g := New("f")
	b0 := g.NewBlock()
	b1 := g.NewBlock()
	one, two, three := lit(t, 1), lit(t, 2), lit(t, 3)
	for _, x := range []struct {
		b *Block
		n node.Node
	}{{b1, three}, {b0, one}, {b0, two}} {
		if err := x.b.Append(x.n); err != nil {
			t.Fatal(err)
		}
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, []node.Node{one, two, three}) {
		t.Errorf("nodes should be listed in block order, got %v", got)
	}
	if b := g.BlockOf(three); !b.IsSome() || b.Value() != b1 {
		t.Errorf("3 should be in block 1")
	}
	// an equal node that is a different occurrence is not in the graph
	if g.BlockOf(lit(t, 1)).IsSome() {
		t.Errorf("lookup should be by occurrence")
	}
	if err := b1.Append(one); err == nil {
		t.Errorf("expected an error when appending a node twice")
	}
	if err := b1.Append(nil); err == nil {
		t.Errorf("expected an error when appending nil")
	}
	if s := g.String(); s != "f:\n  0: [1; 2] ->\n  1: [3] ->\n" {
		t.Errorf("unexpected rendering %q", s)
	}
}

func TestGraph_Loops(t *testing.T) {
	// 0 -> 1 -> 2 -> 1, 2 -> 3, 3 -> 3, 3 -> 4
	g := mkGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 1}, {2, 3}, {3, 3}, {3, 4}})
	loops := g.Loops()
	got := map[int]bool{}
	for _, l := range loops {
		ids := indices(l)
		switch {
		case reflect.DeepEqual(ids, []int{1, 2}):
			got[1] = true
		case reflect.DeepEqual(ids, []int{3}):
			got[3] = true
		default:
			t.Errorf("unexpected loop %v", ids)
		}
	}
	if len(loops) != 2 || !got[1] || !got[3] {
		t.Errorf("expected loops {1,2} and {3}, got %d loops", len(loops))
	}
}

func TestGraph_Cycles(t *testing.T) {
	g := mkGraph(t, 4, [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 0}, {3, 3}})
	var got [][]int
	for _, c := range g.Cycles() {
		got = append(got, indices(c))
	}
	expected := [][]int{{0, 1, 0}, {0, 1, 2, 0}, {3, 3}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected cycles %v, got %v", expected, got)
	}
}

func TestGraph_ScheduleOrder(t *testing.T) {
	// 0 -> 1 <-> 2 -> 3
	g := mkGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 1}, {2, 3}})
	var got [][]int
	for _, c := range g.ScheduleOrder() {
		got = append(got, indices(c))
	}
	expected := [][]int{{0}, {1, 2}, {3}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected schedule %v, got %v", expected, got)
	}
}
