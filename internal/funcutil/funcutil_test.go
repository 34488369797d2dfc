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


package funcutil

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("unexpected result %v", got)
	}
	if got := Map(nil, strconv.Itoa); len(got) != 0 {
		t.Errorf("map of nil should be empty")
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") || Contains([]string{"a", "b"}, "c") {
		t.Errorf("unexpected Contains result")
	}
	if Exists([]int{}, func(int) bool { return true }) {
		t.Errorf("nothing exists in an empty slice")
	}
}

func TestSetToOrderedSlice(t *testing.T) {
	got := SetToOrderedSlice(map[int64]bool{3: true, 1: true, 2: false, 0: true})
	if !reflect.DeepEqual(got, []int64{0, 1, 3}) {
		t.Errorf("expected [0 1 3], got %v", got)
	}
}

func TestOptional(t *testing.T) {
	some := Some(4)
	none := None[int]()
	if v, ok := some.Get(); !ok || v != 4 || some.Value() != 4 || some.String() != "4" {
		t.Errorf("unexpected some value")
	}
	if none.IsSome() || !none.IsNone() || none.ValueOr(7) != 7 || none.String() != "none" {
		t.Errorf("unexpected none value")
	}
	var zero Optional[int]
	if zero.IsSome() {
		t.Errorf("the zero optional should be none")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Value on none should panic")
		}
	}()
	none.Value()
}

func TestFromNillable(t *testing.T) {
	var p *int
	if FromNillable(p).IsSome() {
		t.Errorf("nil pointer should be none")
	}
	x := 1
	if o := FromNillable(&x); !o.IsSome() || o.Value() != &x {
		t.Errorf("non-nil pointer should be some")
	}
}
