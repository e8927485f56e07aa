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

package query

import "testing"

func TestToOwned(t *testing.T) {
	input := []byte("a=b&c=%64")
	q, _, err := Scan(input)
	if err != nil {
		t.Fatalf("Scan %q failed: %v", input, err)
	}
	q.ToOwned()

	// Scribbling on the original buffer must no longer be visible.
	input[0] = 'z'
	if got, want := q.String(), "a=b&c=%64"; got != want {
		t.Errorf("ToOwned content: got %q, want %q", got, want)
	}

	// ToOwned is idempotent and keeps the same backing buffer once owned.
	b := q.Bytes()
	q.ToOwned()
	if got := q.Bytes(); &got[0] != &b[0] {
		t.Error("ToOwned reallocated an already-owned buffer")
	}
}

func TestNilQuery(t *testing.T) {
	var q *Query
	if got := q.String(); got != "" {
		t.Errorf(`nil String(): got %q, want ""`, got)
	}
	if got := q.Bytes(); got != nil {
		t.Errorf("nil Bytes(): got %q, want nil", got)
	}
	if !q.IsNormalized() {
		t.Error("nil IsNormalized(): got false, want true")
	}
	q.Normalize() // must not panic
	if got, want := q.Digest(), Digest(nil); got != want {
		t.Errorf("nil Digest(): got %016x, want %016x", got, want)
	}
}

func TestNormalizedFlagIgnoredByEqual(t *testing.T) {
	// Equality consults content only, never the normalization state.
	raw := MustParse("que%72y")
	canon := MustParse("query")
	canon.Normalize()
	if !raw.Equal(canon) {
		t.Error("Equal reported raw ≠ canonical for the same content")
	}
	if raw.IsNormalized() == canon.IsNormalized() {
		t.Fatal("test fixture broken: flags should differ")
	}
}
