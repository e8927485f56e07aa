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

package pctenc

import (
	"errors"
	"testing"
)

func TestDehex(t *testing.T) {
	tests := []struct {
		input byte
		want  int
	}{
		{'0', 0},
		{'9', 9},
		{'a', 10},
		{'f', 15},
		{'A', 10},
		{'F', 15},
		{'g', -1},
		{'G', -1},
		{'%', -1},
		{0, -1},
		{0xFF, -1},
	}
	for _, test := range tests {
		if got := Dehex(test.input); got != test.want {
			t.Errorf("Dehex(%q): got %d, want %d", test.input, got, test.want)
		}
	}
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		hi, lo    byte
		want      byte
		canonical bool
	}{
		{'0', '0', 0x00, true},
		{'7', 'E', 0x7E, true},
		{'7', 'e', 0x7E, false},
		{'2', 'F', 0x2F, true},
		{'2', 'f', 0x2F, false},
		{'f', 'f', 0xFF, false},
		{'F', 'F', 0xFF, true},
		{'4', 'a', 0x4A, false},
	}
	for _, test := range tests {
		got, canonical, err := DecodeValue(test.hi, test.lo)
		if err != nil {
			t.Errorf("DecodeValue(%q, %q) failed: %v", test.hi, test.lo, err)
			continue
		}
		if got != test.want || canonical != test.canonical {
			t.Errorf("DecodeValue(%q, %q): got (%#x, %v), want (%#x, %v)",
				test.hi, test.lo, got, canonical, test.want, test.canonical)
		}
	}
}

func TestDecodeValueErrors(t *testing.T) {
	bad := []struct{ hi, lo byte }{
		{'Z', 'Z'},
		{'2', 'g'},
		{'g', '2'},
		{' ', '1'},
		{'%', '%'},
		{0, 0},
	}
	for _, test := range bad {
		if got, _, err := DecodeValue(test.hi, test.lo); err == nil {
			t.Errorf("DecodeValue(%q, %q): got %#x, want error", test.hi, test.lo, got)
		} else if !errors.Is(err, ErrInvalidEscape) {
			t.Errorf("DecodeValue(%q, %q): error %v does not match ErrInvalidEscape", test.hi, test.lo, err)
		}
	}
}

func TestIsUnreserved(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		if !IsUnreserved(c) {
			t.Errorf("IsUnreserved(%q): got false, want true", c)
		}
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if !IsUnreserved(c) {
			t.Errorf("IsUnreserved(%q): got false, want true", c)
		}
	}
	for c := byte('0'); c <= '9'; c++ {
		if !IsUnreserved(c) {
			t.Errorf("IsUnreserved(%q): got false, want true", c)
		}
	}
	for _, c := range []byte{'-', '.', '_', '~'} {
		if !IsUnreserved(c) {
			t.Errorf("IsUnreserved(%q): got false, want true", c)
		}
	}
	for _, c := range []byte{'%', '#', '/', '?', '&', '=', ' ', '<', 0, 0x7F, 0x80, 0xFF} {
		if IsUnreserved(c) {
			t.Errorf("IsUnreserved(%q): got true, want false", c)
		}
	}
}

func TestUpperHex(t *testing.T) {
	tests := []struct{ input, want byte }{
		{'a', 'A'},
		{'f', 'F'},
		{'A', 'A'},
		{'0', '0'},
		{'9', '9'},
		{'g', 'g'}, // not a hex digit; untouched
	}
	for _, test := range tests {
		if got := UpperHex(test.input); got != test.want {
			t.Errorf("UpperHex(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"abc123-._~", "abc123-._~"}, // nothing to escape
		{"a b", "a%20b"},
		{"a/b", "a%2Fb"},
		{"100%", "100%25"},
		{"key=value", "key%3Dvalue"},
		{"\x00\xff", "%00%FF"},
	}
	for _, test := range tests {
		if got := Escape(test.input); got != test.want {
			t.Errorf("Escape(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}
