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


// Package flow contains the pieces a dataflow engine needs from the graph nodes: stores of facts keyed by
// structural node equality, the selection of invocations whose facts may be shared, and use indexes.
package flow

import "github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"

// FactStore maps nodes to facts. Keys are compared with node.Equal: a fact stored for one occurrence of an
// expression is found for every other occurrence of the same expression.
type FactStore[V any] struct {
	buckets map[uint64][]int
	keys    []node.Node
	values  []V
}

// NewFactStore returns an empty store.
func NewFactStore[V any]() *FactStore[V] {
	return &FactStore[V]{buckets: map[uint64][]int{}}
}

func (s *FactStore[V]) find(n node.Node) (int, bool) {
	for _, i := range s.buckets[n.Hash()] {
		if s.keys[i].Equal(n) {
			return i, true
		}
	}
	return -1, false
}

// Put sets the fact of n, replacing the fact of any node equal to n. The key keeps the first node stored.
func (s *FactStore[V]) Put(n node.Node, v V) {
	if i, ok := s.find(n); ok {
		s.values[i] = v
		return
	}
	h := n.Hash()
	s.buckets[h] = append(s.buckets[h], len(s.keys))
	s.keys = append(s.keys, n)
	s.values = append(s.values, v)
}

// Get returns the fact of the nodes equal to n.
func (s *FactStore[V]) Get(n node.Node) (V, bool) {
	if i, ok := s.find(n); ok {
		return s.values[i], true
	}
	var zero V
	return zero, false
}

// Delete removes the fact of the nodes equal to n, and returns true if there was one.
func (s *FactStore[V]) Delete(n node.Node) bool {
	i, ok := s.find(n)
	if !ok {
		return false
	}
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	s.values = append(s.values[:i], s.values[i+1:]...)
	s.reindex()
	return true
}

func (s *FactStore[V]) reindex() {
	s.buckets = make(map[uint64][]int, len(s.keys))
	for i, k := range s.keys {
		h := k.Hash()
		s.buckets[h] = append(s.buckets[h], i)
	}
}

// Len returns the number of facts
func (s *FactStore[V]) Len() int { return len(s.keys) }

// Keys returns the keys of the store in insertion order
func (s *FactStore[V]) Keys() []node.Node {
	return append([]node.Node(nil), s.keys...)
}

// Merge adds the facts of other to s. When both stores have a fact for a key, the fact becomes
// join(fact in s, fact in other).
func (s *FactStore[V]) Merge(other *FactStore[V], join func(V, V) V) {
	for i, k := range other.keys {
		if j, ok := s.find(k); ok {
			s.values[j] = join(s.values[j], other.values[i])
		} else {
			s.Put(k, other.values[i])
		}
	}
}

// Copy returns a shallow copy of the store
func (s *FactStore[V]) Copy() *FactStore[V] {
	c := &FactStore[V]{
		keys:   append([]node.Node(nil), s.keys...),
		values: append([]V(nil), s.values...),
	}
	c.reindex()
	return c
}

// GroupEqual partitions the invocations into classes of structurally equal invocations. Classes are ordered by
// their first member, and members keep their order.
func GroupEqual(invocations []*node.MethodInvocationNode) [][]*node.MethodInvocationNode {
	classes := NewFactStore[int]()
	var res [][]*node.MethodInvocationNode
	for _, inv := range invocations {
		if i, ok := classes.Get(inv); ok {
			res[i] = append(res[i], inv)
		} else {
			classes.Put(inv, len(res))
			res = append(res, []*node.MethodInvocationNode{inv})
		}
	}
	return res
}
