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


// Package graphutil adapts directed graphs with dense integer node ids to the graph libraries used by the
// analyses: gonum's graph.Directed and yourbasic's graph.Iterator.
package graphutil

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
)

// Digraph is a directed graph whose node ids are in [0, Order()). It implements the methods to satisfy
// yourbasic's graph.Iterator and gonum's graph.Directed.
type Digraph struct {
	// The order of the graph
	order int

	// Labels maps node ids to a printable label
	Labels map[int64]string

	// Keys are all the node IDs, in increasing order
	Keys []int64

	// Edges is an adjacency matrix: Edges[x][y] means there is a directed edge between x and y
	Edges map[int64]map[int64]bool
}

// NewDigraph returns a graph of order nodes with ids 0 to order-1 and no edges.
func NewDigraph(order int) Digraph {
	d := Digraph{
		order:  order,
		Labels: make(map[int64]string, order),
		Keys:   make([]int64, order),
		Edges:  make(map[int64]map[int64]bool, order),
	}
	for i := 0; i < order; i++ {
		d.Keys[i] = int64(i)
		d.Edges[int64(i)] = map[int64]bool{}
	}
	return d
}

// AddEdge adds the edge from -> to. Ids outside the graph are ignored.
func (d Digraph) AddEdge(from, to int64) {
	if _, ok := d.Edges[from]; !ok {
		return
	}
	if _, ok := d.Edges[to]; !ok {
		return
	}
	d.Edges[from][to] = true
}

// Subgraph returns a new graph that is the original graph with only the nodes in include. Only the edges that have
// both the origin and destination nodes in the include nodes are kept in the resulting graph.
// The subgraph's order and labels are the same as in original, meaning that node indices will stay consistent
// across subgraphs.
func Subgraph(original Digraph, include []int64) Digraph {
	kept := make(map[int64]bool, len(include))
	keys := make([]int64, 0, len(include))
	for _, i := range include {
		if _, ok := original.Edges[i]; ok && !kept[i] {
			kept[i] = true
			keys = append(keys, i)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	edges := make(map[int64]map[int64]bool, len(keys))
	for _, i := range keys {
		edges[i] = map[int64]bool{}
		for e := range original.Edges[i] {
			if kept[e] {
				edges[i][e] = true
			}
		}
	}

	return Digraph{
		order:  original.order,
		Labels: original.Labels,
		Keys:   keys,
		Edges:  edges,
	}
}

// Order implements the order of the graph.Iterator interface for the Digraph
func (d Digraph) Order() int {
	return d.order
}

// Visit implements the graph.Iterator interface for the Digraph. Successors are visited in increasing order.
func (d Digraph) Visit(v int, do func(w int, c int64) (skip bool)) (aborted bool) {
	succs, ok := d.Edges[int64(v)]
	if !ok {
		return false
	}
	for _, w := range sortedKeys(succs) {
		if do(int(w), 1) {
			return true
		}
	}
	return false
}

// *************** gonum graph.Directed implementation **********************

// Node implements the Graph interface
func (d Digraph) Node(id int64) graph.Node {
	if _, ok := d.Edges[id]; !ok {
		return nil
	}
	return d.node(id)
}

func (d Digraph) node(id int64) DNode {
	return DNode{id: id, label: d.Labels[id]}
}

func (d Digraph) nodes(ids []int64) graph.Nodes {
	if len(ids) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(ids))
	for i, id := range ids {
		nodes[i] = d.node(id)
	}
	return iterator.NewOrderedNodes(nodes)
}

// Nodes returns the set of nodes in the graph
func (d Digraph) Nodes() graph.Nodes {
	return d.nodes(d.Keys)
}

// From returns the set of nodes directly reachable from the id
func (d Digraph) From(id int64) graph.Nodes {
	return d.nodes(sortedKeys(d.Edges[id]))
}

// To returns the set of nodes that directly reach the id
func (d Digraph) To(id int64) graph.Nodes {
	var ids []int64
	for _, k := range d.Keys {
		if d.Edges[k][id] {
			ids = append(ids, k)
		}
	}
	return d.nodes(ids)
}

// HasEdgeBetween returns a boolean indicating whether an edge exists between the two node identifiers
func (d Digraph) HasEdgeBetween(xid, yid int64) bool {
	return d.Edges[xid][yid] || d.Edges[yid][xid]
}

// HasEdgeFromTo returns a boolean indicating whether the directed edge uid -> vid exists
func (d Digraph) HasEdgeFromTo(uid, vid int64) bool {
	return d.Edges[uid][vid]
}

// Edge returns the edge between the two identifiers (nil if none exists)
func (d Digraph) Edge(uid, vid int64) graph.Edge {
	if d.Edges[uid][vid] {
		return DEdge{from: d.node(uid), to: d.node(vid)}
	}
	return nil
}

// ComponentsInOrder returns the strongly connected components of the graph in topological order: a component
// appears before every component it reaches. Ids are sorted within each component.
func ComponentsInOrder(d Digraph) [][]int64 {
	sccs := topo.TarjanSCC(d)
	res := make([][]int64, 0, len(sccs))
	// TarjanSCC emits a component after every component it reaches
	for i := len(sccs) - 1; i >= 0; i-- {
		ids := make([]int64, len(sccs[i]))
		for j, n := range sccs[i] {
			ids[j] = n.ID()
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		res = append(res, ids)
	}
	return res
}

func sortedKeys(m map[int64]bool) []int64 {
	keys := make([]int64, 0, len(m))
	for k, b := range m {
		if b {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// *************** Nodes and edges **********************

// DNode is a node of a Digraph, it implements the graph.Node interface
type DNode struct {
	id    int64
	label string
}

// ID returns the id of the node
func (n DNode) ID() int64 {
	return n.id
}

func (n DNode) String() string {
	return n.label
}

// DEdge implements the graph.Edge interface
type DEdge struct {
	from DNode
	to   DNode
}

// From returns the origin of the edge
func (e DEdge) From() graph.Node {
	return e.from
}

// To returns the destination of the edge
func (e DEdge) To() graph.Node {
	return e.to
}

// ReversedEdge returns a new value representing the reversed edge
func (e DEdge) ReversedEdge() graph.Edge {
	return DEdge{from: e.to, to: e.from}
}
