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

import (
	"hash"

	"github.com/minio/highwayhash"

	"urikit.io/pctenc"
)

// nextUnit decodes one logical unit of query content starting at offset i:
// the byte value denoted by a percent triplet, or a literal byte.  It
// returns the resolved value and the offset of the next unit.
func nextUnit(b []byte, i int) (byte, int) {
	if b[i] == '%' && i+2 < len(b) {
		if value, _, err := pctenc.DecodeValue(b[i+1], b[i+2]); err == nil {
			return value, i + 3
		}
	}
	return b[i], i + 1
}

// Equivalent reports whether a and b denote the same query content.  Both
// sides are walked in lockstep, resolving one logical unit per step, so
// representations that differ only in percent-encoding compare equal:
// literal content is case-sensitive, while the hex digits inside a triplet
// carry no semantic weight and are compared without regard to case.  No
// intermediate decoded copy is allocated.
//
// The inputs are expected to be valid query content, as produced by Scan
// or Parse.
func Equivalent(a, b []byte) bool {
	var i, j int
	for i < len(a) && j < len(b) {
		var x, y byte
		x, i = nextUnit(a, i)
		y, j = nextUnit(b, j)
		if x != y {
			return false
		}
	}
	return i == len(a) && j == len(b)
}

// Compare returns -1, 0, or +1 depending on whether a orders before, equal
// to, or after b under lexicographic comparison of their logical units.
// Compare(a, b) == 0 exactly when Equivalent(a, b), so differently-encoded
// representations of the same query sort together.
func Compare(a, b []byte) int {
	var i, j int
	for i < len(a) && j < len(b) {
		var x, y byte
		x, i = nextUnit(a, i)
		y, j = nextUnit(b, j)
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}

// HashTo feeds the logical units of the given query content into h, one
// resolved byte per unit.  Equivalent inputs feed identical byte streams,
// which is the consistency law a hash must satisfy to agree with
// Equivalent; the raw 3-byte form of a triplet is never written.
func HashTo(h hash.Hash, content []byte) {
	var unit [1]byte
	for i := 0; i < len(content); {
		unit[0], i = nextUnit(content, i)
		h.Write(unit[:])
	}
}

// Binary encoding of ("urikit.io/query!", "urikit.io/query!").
var digestKey = []byte("urikit.io/query!urikit.io/query!")

// Digest returns a 64-bit digest of the given query content that is stable
// across percent-encoding differences: Equivalent(a, b) implies
// Digest(a) == Digest(b).
func Digest(content []byte) uint64 {
	h, _ := highwayhash.New64(digestKey)
	HashTo(h, content)
	return h.Sum64()
}
