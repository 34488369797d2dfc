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


package node

import "hash/fnv"

const hashMultiplier = 31

// combine folds h into seed. The fold is order-sensitive: combine(combine(s, a), b) and
// combine(combine(s, b), a) differ whenever a and b differ modulo 2^63.
func combine(seed uint64, h uint64) uint64 {
	return seed*hashMultiplier + h
}

// hashStrings hashes the parts with FNV-1a, separating them so that ("ab", "c") and ("a", "bc")
// hash differently.
func hashStrings(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
