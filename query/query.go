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

// Package query provides a type to represent the query component of a URI
// as delimited by RFC 3986 §3.4: the substring following "?" up to a "#"
// fragment delimiter or the end of input.
//
// This package does not do query string parsing; it makes sure the
// component is valid per the RFC, and leaves splitting it into parameters
// to other packages.  Scheme, authority, path, and fragment parsing is
// likewise out of scope: the prefix-mode scanner hands back the unconsumed
// remainder for the caller to deal with.
//
// A query is case-sensitive, but percent-encoding plays no role in
// equality: "query" and "que%72y" are the same query, and so are "a%2F"
// and "a%2f".  Equal, Equivalent, and Digest all reflect this.  Equality
// being encoding-transparent does not mean the stored form is normalized;
// the original representation is preserved verbatim until Normalize is
// called.
package query // import "urikit.io/query"

// A Query represents a validated RFC 3986 query component.  The stored
// bytes are kept exactly as they appeared in the input; call Normalize to
// rewrite them into canonical form.
//
// A Query produced by Scan aliases the input buffer it was scanned from.
// Such a borrowed view is cheap but tied to the caller's buffer; ToOwned
// detaches it.  Mutating operations take an owned copy automatically.
type Query struct {
	content    []byte
	owned      bool
	normalized bool
}

// String returns the verbatim text of the query.  No normalization is
// applied; the result is byte-for-byte the representation that was parsed.
func (q *Query) String() string {
	if q == nil {
		return ""
	}
	return string(q.content)
}

// Bytes returns the stored content of the query.  The returned slice may
// alias the buffer the query was scanned from and must not be modified.
func (q *Query) Bytes() []byte {
	if q == nil {
		return nil
	}
	return q.content
}

// IsNormalized reports whether the stored content is already in canonical
// form: no percent-encoded unreserved characters, and uppercase hex digits
// in every retained escape.
func (q *Query) IsNormalized() bool {
	if q == nil {
		return true
	}
	return q.normalized
}

// ToOwned ensures q holds an independent copy of its content, detaching it
// from any input buffer it was scanned from.  The observable content is
// unchanged.  It returns q to allow chaining.
func (q *Query) ToOwned() *Query {
	if q != nil && !q.owned {
		q.content = append([]byte(nil), q.content...)
		q.owned = true
	}
	return q
}

// Equal reports whether q and o denote the same query.  The comparison is
// case-sensitive on content but transparent to percent-encoding; neither
// query needs to be normalized first.  A nil Query equals an empty one.
func (q *Query) Equal(o *Query) bool {
	return Equivalent(q.Bytes(), o.Bytes())
}

// Digest returns the equivalence digest of q.  Queries that are Equal have
// equal digests regardless of how they are percent-encoded.
func (q *Query) Digest() uint64 {
	return Digest(q.Bytes())
}
