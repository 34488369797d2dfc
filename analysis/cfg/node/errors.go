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

import "fmt"

// InvalidConstructionError is returned by a node constructor when a required child is missing.
// The caller must abandon the expression being built.
type InvalidConstructionError struct {
	// Kind is the kind of node whose construction failed
	Kind Kind

	// Field names the missing child, e.g. "target" or "argument 2"
	Field string
}

func (e *InvalidConstructionError) Error() string {
	return fmt.Sprintf("%s: the construct requires a non-null %s", e.Kind, e.Field)
}

// IndexOutOfRangeError is returned by positional accessors for an index outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("argument index %d out of range [0, %d)", e.Index, e.Len)
}
