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
	"fmt"

	"github.com/pkg/errors"

	"urikit.io/pctenc"
)

// Errors reported by Scan, Parse, and ParseBytes.  Wrapped errors match
// these values under errors.Is.
var (
	// ErrInvalidCharacter means a byte outside the query character set
	// (and not "#") was encountered.
	ErrInvalidCharacter = errors.New("invalid query character")

	// ErrInvalidPercentEncoding means a "%" was not followed by two hex
	// digits.
	ErrInvalidPercentEncoding = errors.New("invalid query percent encoding")

	// ErrExpectedEOF means a valid query was parsed but trailing input
	// remained.  Only Parse and ParseBytes report it.
	ErrExpectedEOF = errors.New("expected EOF")
)

// Scan parses a query component from the front of input, stopping at a "#"
// or the end of input.  It returns the query and the unconsumed remainder,
// which begins with "#" whenever it is non-empty.  The query's content
// aliases input; no bytes are copied or rewritten, so the stored form is
// exactly the consumed prefix.
//
// Any invalid byte or malformed escape fails the whole scan; there are no
// partial results.
func Scan(input []byte) (*Query, []byte, error) {
	normalized := true
	i := 0
scan:
	for i < len(input) {
		switch classify[input[i]] {
		case cLiteral:
			i++
		case cStop:
			break scan
		case cPercent:
			if i+2 >= len(input) {
				return nil, nil, errors.Wrapf(ErrInvalidPercentEncoding, "truncated escape at offset %d", i)
			}
			value, canonical, err := pctenc.DecodeValue(input[i+1], input[i+2])
			if err != nil {
				return nil, nil, errors.Wrapf(ErrInvalidPercentEncoding, "at offset %d", i)
			}
			// Normalization would decode this triplet or upper-case
			// its digits.  The flag is only ever cleared here.
			if !canonical || pctenc.IsUnreserved(value) {
				normalized = false
			}
			i += 3
		default:
			return nil, nil, errors.Wrapf(ErrInvalidCharacter, "%q at offset %d", input[i], i)
		}
	}
	q := &Query{content: input[:i], normalized: normalized}
	return q, input[i:], nil
}

// ParseBytes parses b as a standalone query component.  Unlike Scan, the
// entire input must be consumed; trailing bytes (including a "#fragment")
// fail with ErrExpectedEOF.  The query's content aliases b.
func ParseBytes(b []byte) (*Query, error) {
	q, rest, err := Scan(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.Wrapf(ErrExpectedEOF, "%d trailing bytes at offset %d", len(rest), len(b)-len(rest))
	}
	return q, nil
}

// Parse parses s as a standalone query component, with the same grammar
// and error behavior as ParseBytes.  The resulting query owns its content.
func Parse(s string) (*Query, error) {
	q, err := ParseBytes([]byte(s))
	if err != nil {
		return nil, err
	}
	q.owned = true // the conversion above is our private copy
	return q, nil
}

// MustParse returns the query from parsing s, or panics in case of error.
func MustParse(s string) *Query {
	q, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse %q: %v", s, err))
	}
	return q
}

// Fix returns the canonical form of the given query string, if possible.
func Fix(s string) (string, error) {
	q, err := Parse(s)
	if err != nil {
		return "", err
	}
	q.Normalize()
	return q.String(), nil
}

// Equal reports whether the two query strings denote the same query,
// independent of how each is percent-encoded.  If either string is not a
// valid query, Equal returns false.
func Equal(a, b string) bool {
	qa, err := Parse(a)
	if err != nil {
		return false
	}
	qb, err := Parse(b)
	if err != nil {
		return false
	}
	return qa.Equal(qb)
}
