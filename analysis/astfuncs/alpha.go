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


package astfuncs

import (
	"fmt"
	"go/token"
	"go/types"
)

// NameExistsAt checks whether name is a declared identifier in scope or one of its parents. A nil scope declares
// nothing.
func NameExistsAt(scope *types.Scope, name string) bool {
	if scope == nil {
		return token.IsKeyword(name)
	}
	_, o := scope.LookupParent(name, token.NoPos)
	return o != nil || token.IsKeyword(name)
}

// FreshNameAt returns a fresh identifier in scope. The identifier will be of the form `prefix(NUM)` where
// NUM is empty or some integer. For example, FreshNameAt(s, "s", 0) may return "s", "s1" or "s2".
func FreshNameAt(scope *types.Scope, prefix string, i int) string {
	name := prefix
	if i > 0 {
		name = fmt.Sprintf("%s%d", prefix, i)
	}
	for {
		if NameExistsAt(scope, name) {
			i++
			name = fmt.Sprintf("%s%d", prefix, i)
		} else {
			return name
		}
	}
}
