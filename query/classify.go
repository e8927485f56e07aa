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

type byteClass byte

const (
	cInvalid byteClass = iota // not permitted in a query
	cLiteral                  // counted as query content as-is
	cPercent                  // "%", begins an escape triplet
	cStop                     // "#", terminates the component without error
)

// classify maps each byte to its role in the RFC 3986 query grammar:
//
//	query = *( pchar / "/" / "?" )
//	pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
var classify [256]byteClass

func init() {
	for i := 0; i < 256; i++ {
		switch c := byte(i); {
		case c == '%':
			classify[i] = cPercent
		case c == '#':
			classify[i] = cStop
		case pctenc.IsUnreserved(c):
			classify[i] = cLiteral
		case c == ':' || c == '@' || c == '/' || c == '?':
			classify[i] = cLiteral
		case c == '!' || c == '$' || c == '&' || c == '\'' ||
			c == '(' || c == ')' || c == '*' || c == '+' ||
			c == ',' || c == ';' || c == '=':
			classify[i] = cLiteral // sub-delims
		}
	}
}
