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

// Package pctenc implements the RFC 3986 percent-encoding primitives shared
// by URI component parsers: hex digit decoding, the unreserved character
// set, and a conservative encoder.
package pctenc // import "urikit.io/pctenc"

import (
	"bytes"

	"github.com/pkg/errors"
)

// ErrInvalidEscape is returned when the two bytes following a "%" do not
// form a valid hex escape.
var ErrInvalidEscape = errors.New("invalid percent escape")

// unreserved marks the bytes that RFC 3986 §2.3 permits to appear
// unescaped in any URI component: ALPHA / DIGIT / "-" / "." / "_" / "~".
var unreserved [256]bool

func init() {
	for i := 0; i < 256; i++ {
		c := byte(i)
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			unreserved[i] = true
		case c == '-' || c == '.' || c == '_' || c == '~':
			unreserved[i] = true
		}
	}
}

// IsUnreserved reports whether c is an RFC 3986 unreserved character.
// Unreserved characters carry no special meaning anywhere in a URI, so a
// percent escape denoting one may always be decoded to its literal form.
func IsUnreserved(c byte) bool { return unreserved[c] }

// Dehex returns the digit value of the hex digit encoded by c, or -1 if c
// does not denote a hex digit.
func Dehex(c byte) int {
	switch {
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	case '0' <= c && c <= '9':
		return int(c - '0')
	}
	return -1
}

// DecodeValue decodes the two bytes following a "%" marker into the byte
// value they encode.  The canonical result reports whether both digits were
// already in canonical form, meaning neither used a lowercase hex letter.
// If either byte is not a hex digit, DecodeValue reports ErrInvalidEscape.
func DecodeValue(hi, lo byte) (value byte, canonical bool, err error) {
	h := Dehex(hi)
	l := Dehex(lo)
	if h < 0 || l < 0 {
		return 0, false, errors.Wrapf(ErrInvalidEscape, "%%%c%c", hi, lo)
	}
	canonical = !('a' <= hi && hi <= 'f') && !('a' <= lo && lo <= 'f')
	return byte(h<<4 | l), canonical, nil
}

const hexDigits = "0123456789ABCDEF"

// UpperHex returns c with a lowercase hex letter folded to uppercase.  All
// other bytes are returned unchanged.
func UpperHex(c byte) byte {
	if 'a' <= c && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}

// Escape encodes s for inclusion in a URI component, %-escaping every byte
// that is not unreserved.  Escaping more than a component's grammar strictly
// requires is always permitted, so the result is valid in any component.
// The input is returned unchanged when nothing needs escaping.
func Escape(s string) string {
	var numEsc int
	for i := 0; i < len(s); i++ {
		if !IsUnreserved(s[i]) {
			numEsc++
		}
	}
	if numEsc == 0 {
		return s
	}
	b := bytes.NewBuffer(make([]byte, 0, len(s)+2*numEsc))
	for i := 0; i < len(s); i++ {
		if c := s[i]; IsUnreserved(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c%16])
		}
	}
	return b.String()
}
