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


// Package cfg holds the blocks of a control-flow graph whose contents are the expression nodes of package node.
//
// The graph records the edges supplied by its builder; it never decides control-flow structure itself. Analyses
// query it for the block containing a node and for scheduling views (loops, cycles, topological order of the
// strongly connected components).
package cfg

import (
	"fmt"
	"strings"

	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
	"github.com/awslabs/ar-go-flowcfg/internal/funcutil"
	"github.com/awslabs/ar-go-flowcfg/internal/graphutil"
	"github.com/yourbasic/graph"
)

// Graph is a control-flow graph of blocks. The first block created is the entry block.
type Graph struct {
	// Name identifies the graph, usually the name of the function it represents
	Name string

	blocks []*Block

	// owner maps every node appended to a block to that block
	owner map[node.Node]*Block
}

// Block is a basic block: an ordered list of nodes with successor and predecessor blocks.
type Block struct {
	// Index is the position of the block in its graph
	Index int

	nodes []node.Node
	succs []*Block
	preds []*Block
	graph *Graph
}

// New returns an empty graph with the given name.
func New(name string) *Graph {
	return &Graph{Name: name, owner: map[node.Node]*Block{}}
}

// NewBlock adds a new empty block to the graph and returns it.
func (g *Graph) NewBlock() *Block {
	b := &Block{Index: len(g.blocks), graph: g}
	g.blocks = append(g.blocks, b)
	return b
}

// Entry returns the entry block of the graph, if any block has been created.
func (g *Graph) Entry() funcutil.Optional[*Block] {
	if len(g.blocks) == 0 {
		return funcutil.None[*Block]()
	}
	return funcutil.Some(g.blocks[0])
}

// Blocks returns the blocks of the graph, ordered by index.
func (g *Graph) Blocks() []*Block {
	return g.blocks
}

// AddEdge records the edge from -> to. Both blocks must belong to g. Recording an edge twice has no effect.
func (g *Graph) AddEdge(from, to *Block) error {
	if from.graph != g || to.graph != g {
		return fmt.Errorf("edge %d -> %d between blocks of different graphs", from.Index, to.Index)
	}
	if funcutil.Contains(from.succs, to) {
		return nil
	}
	from.succs = append(from.succs, to)
	to.preds = append(to.preds, from)
	return nil
}

// Nodes returns all the nodes of the graph, block by block and in block order.
func (g *Graph) Nodes() []node.Node {
	var res []node.Node
	for _, b := range g.blocks {
		res = append(res, b.nodes...)
	}
	return res
}

// BlockOf returns the block containing n. The lookup is by node identity: a structurally equal node appended
// elsewhere is a different occurrence.
func (g *Graph) BlockOf(n node.Node) funcutil.Optional[*Block] {
	return funcutil.FromNillable(g.owner[n])
}

// Append adds n at the end of the block. A node occurrence belongs to at most one block.
func (b *Block) Append(n node.Node) error {
	if n == nil {
		return fmt.Errorf("cannot append nil node to block %d", b.Index)
	}
	if other, ok := b.graph.owner[n]; ok {
		return fmt.Errorf("node %s is already in block %d", n, other.Index)
	}
	b.nodes = append(b.nodes, n)
	b.graph.owner[n] = b
	return nil
}

// Nodes returns the nodes of the block, in order.
func (b *Block) Nodes() []node.Node { return b.nodes }

// Succs returns the successors of the block.
func (b *Block) Succs() []*Block { return b.succs }

// Preds returns the predecessors of the block.
func (b *Block) Preds() []*Block { return b.preds }

func (b *Block) String() string {
	return fmt.Sprintf("block %d", b.Index)
}

// Digraph returns the block graph, where node ids are block indices.
func (g *Graph) Digraph() graphutil.Digraph {
	d := graphutil.NewDigraph(len(g.blocks))
	for _, b := range g.blocks {
		d.Labels[int64(b.Index)] = b.String()
		for _, s := range b.succs {
			d.AddEdge(int64(b.Index), int64(s.Index))
		}
	}
	return d
}

// Loops returns the sets of blocks that form loops: strongly connected components with more than one block, or a
// single block with an edge to itself. Blocks are ordered by index within each loop.
func (g *Graph) Loops() [][]*Block {
	var loops [][]*Block
	for _, component := range graph.StrongComponents(g.Digraph()) {
		if len(component) == 1 && !funcutil.Contains(g.blocks[component[0]].succs, g.blocks[component[0]]) {
			continue
		}
		ids := make(map[int64]bool, len(component))
		for _, i := range component {
			ids[int64(i)] = true
		}
		loops = append(loops, g.blocksOf(funcutil.SetToOrderedSlice(ids)))
	}
	return loops
}

// Cycles returns the elementary cycles of the block graph. Each cycle starts and ends with the same block.
func (g *Graph) Cycles() [][]*Block {
	return funcutil.Map(graphutil.FindAllElementaryCycles(g.Digraph()), g.blocksOf)
}

// ScheduleOrder returns the blocks grouped by strongly connected component, components in topological order. A
// forward analysis iterates each group to a fixed point before moving to the next one.
func (g *Graph) ScheduleOrder() [][]*Block {
	return funcutil.Map(graphutil.ComponentsInOrder(g.Digraph()), g.blocksOf)
}

func (g *Graph) blocksOf(ids []int64) []*Block {
	return funcutil.Map(ids, func(i int64) *Block { return g.blocks[i] })
}

// String renders the graph with one line per block, listing its nodes and successors.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", g.Name)
	for _, b := range g.blocks {
		fmt.Fprintf(&sb, "  %d: [", b.Index)
		sb.WriteString(strings.Join(funcutil.Map(b.nodes, node.Node.String), "; "))
		sb.WriteString("] ->")
		for _, s := range b.succs {
			fmt.Fprintf(&sb, " %d", s.Index)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
