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


package formatutil

import "testing"

func TestColor(t *testing.T) {
	SetColor(true)
	if s := Red("x", 1); s != "\033[1;31mx1\033[0m" {
		t.Errorf("unexpected colored output %q", s)
	}
	SetColor(false)
	if s := Red("x", 1); s != "x1" {
		t.Errorf("unexpected plain output %q", s)
	}
}

func TestSanitize(t *testing.T) {
	if s := Sanitize("a\033[1mb\n"); s != `a\x1b[1mb\n` {
		t.Errorf("unexpected sanitized string %q", s)
	}
}
