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
	"github.com/awslabs/ar-go-flowcfg/analysis/cfg/node"
	"github.com/awslabs/ar-go-flowcfg/analysis/config"
)

// IsReusable returns true when the facts established for n at one occurrence hold at the other occurrences of
// an equal expression: every invocation in the tree of n calls a method the config lists as deterministic.
// Expressions without invocations are always reusable.
func IsReusable(c *config.Config, n node.Node) bool {
	reusable := true
	node.Walk(n, func(x node.Node) bool {
		if inv, ok := x.(*node.MethodInvocationNode); ok &&
			!c.IsDeterministic(config.CodeIdentifierOf(inv.Target().Method())) {
			reusable = false
		}
		return reusable
	})
	return reusable
}

// InvocationKeys returns the invocations among nodes that may be keys of shared facts, in order.
func InvocationKeys(c *config.Config, nodes []node.Node) []*node.MethodInvocationNode {
	var res []*node.MethodInvocationNode
	for _, n := range nodes {
		if inv, ok := n.(*node.MethodInvocationNode); ok && IsReusable(c, inv) {
			res = append(res, inv)
		}
	}
	return res
}
