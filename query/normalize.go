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

import "urikit.io/pctenc"

// Normalize rewrites the content of q into canonical form: every escape
// denoting an unreserved character is decoded to its literal form, and the
// hex digits of every remaining escape are folded to uppercase.  The
// observable meaning of the query is unchanged, and Equal is oblivious to
// whether either side has been normalized.
//
// Normalization is idempotent and cannot fail.  If q is a borrowed view
// into a scanned buffer, an owned copy is taken first; the rewrite then
// happens in place with no further allocation.
func (q *Query) Normalize() {
	if q == nil || q.normalized {
		return
	}
	q.ToOwned()

	b := q.content
	var read, write int
	for read < len(b) {
		if b[read] == '%' {
			hi, lo := b[read+1], b[read+2]
			value, _, _ := pctenc.DecodeValue(hi, lo) // validated at construction
			if pctenc.IsUnreserved(value) {
				b[write] = value
				write++
			} else {
				// A decoded unit never outgrows its source triplet, so
				// write never passes read and unread bytes survive.
				b[write] = '%'
				b[write+1] = pctenc.UpperHex(hi)
				b[write+2] = pctenc.UpperHex(lo)
				write += 3
			}
			read += 3
		} else {
			b[write] = b[read]
			write++
			read++
		}
	}
	q.content = b[:write]
	q.normalized = true
}
