/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package protocol

import "strings"

// String returns the lowercase wire name of the protocol, or "" if it is not a known value.
func (n NetworkProtocol) String() string {
	return names[n]
}

// Code is an alias of String kept for symmetry with Parse; both always agree.
func (n NetworkProtocol) Code() string {
	return n.String()
}

// Parse maps a protocol name back to its NetworkProtocol value.
//
// It trims surrounding whitespace and a single layer of matching quote characters
// (", ', or `), then compares case-insensitively. Unknown input returns NetworkEmpty.
func Parse(s string) NetworkProtocol {
	s = strings.TrimSpace(s)
	s = unquote(s)
	s = strings.TrimSpace(s)

	if p, ok := byName[strings.ToLower(s)]; ok {
		return p
	}

	return NetworkEmpty
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	pairs := [][2]byte{{'"', '"'}, {'\'', '\''}, {'`', '`'}}
	for _, p := range pairs {
		if s[0] == p[0] && s[len(s)-1] == p[1] {
			return s[1 : len(s)-1]
		}
	}

	// handle escaped quotes, e.g. \"udp\"
	if strings.HasPrefix(s, `\"`) && strings.HasSuffix(s, `\"`) && len(s) >= 4 {
		return s[2 : len(s)-2]
	}

	return s
}
