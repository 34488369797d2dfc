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
	"github.com/yourbasic/graph"
)

// FindAllElementaryCycles finds all elementary cycles in the graph d, self-loops included.
// This uses Donald B. Johnson's algorithm presented in
// "Finding All The Elementary Circuits of a Directed Graph", 1975
//
// Each cycle starts with its smallest node id and ends with that id repeated; cycles are listed by increasing
// starting node.
func FindAllElementaryCycles(d Digraph) [][]int64 {
	s := &state{cycles: [][]int64{}}
	for idx, start := range d.Keys {
		fg := Subgraph(d, d.Keys[idx:])
		component := componentOf(fg, start)
		if len(component) == 1 && !fg.Edges[start][start] {
			continue
		}
		s.stack = []int64{}
		s.blocked = map[int64]bool{}
		s.blist = map[int64]map[int64]bool{}
		s.circuit(start, start, Subgraph(fg, component))
	}
	return s.cycles
}

// componentOf returns the strongly connected component of d containing v
func componentOf(d Digraph, v int64) []int64 {
	for _, component := range graph.StrongComponents(d) {
		for _, x := range component {
			if int64(x) == v {
				ids := make([]int64, len(component))
				for i, y := range component {
					ids[i] = int64(y)
				}
				return ids
			}
		}
	}
	return []int64{v}
}

type state struct {
	blocked map[int64]bool
	blist   map[int64]map[int64]bool
	stack   []int64
	cycles  [][]int64
}

func (s *state) unblock(u int64) {
	s.blocked[u] = false
	for w := range s.blist[u] {
		delete(s.blist[u], w)
		if s.blocked[w] {
			s.unblock(w)
		}
	}
}

func (s *state) circuit(v int64, start int64, g Digraph) bool {
	found := false
	s.stack = append(s.stack, v)
	s.blocked[v] = true
	for _, w := range sortedKeys(g.Edges[v]) {
		if w == start {
			cycle := make([]int64, len(s.stack), len(s.stack)+1)
			copy(cycle, s.stack)
			s.cycles = append(s.cycles, append(cycle, w))
			found = true
		} else if !s.blocked[w] {
			if s.circuit(w, start, g) {
				found = true
			}
		}
	}

	if found {
		s.unblock(v)
	} else {
		for w := range g.Edges[v] {
			if s.blist[w] == nil {
				s.blist[w] = map[int64]bool{}
			}
			s.blist[w][v] = true
		}
	}
	s.stack = s.stack[:len(s.stack)-1]
	return found
}
