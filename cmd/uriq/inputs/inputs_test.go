/*
 * Copyright 2025 The URIKit Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package inputs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		args  []string
		stdin string
		want  []string
	}{
		// Arguments win; stdin is not consulted.
		{[]string{"a=b"}, "ignored", []string{"a=b"}},
		{[]string{"a", "b"}, "", []string{"a", "b"}},

		// No arguments: read lines from stdin.
		{nil, "a=b\nc=d\n", []string{"a=b", "c=d"}},
		{nil, "one", []string{"one"}},
		{nil, "", nil},
	}
	for _, test := range tests {
		got, err := Collect(test.args, strings.NewReader(test.stdin))
		if err != nil {
			t.Errorf("Collect(%q, %q) failed: %v", test.args, test.stdin, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Collect(%q, %q): (-want +got)\n%s", test.args, test.stdin, diff)
		}
	}
}
