/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package perm defines a Unix-style file permission type shared across config
// structs that describe files and directories to be created on disk.
package perm

import (
	"encoding/json"
	"os"
	"strconv"
)

// Perm is a Unix permission bitmask (e.g. 0644, 0755) usable directly as os.FileMode.
type Perm uint32

// Default permissions applied when a config struct leaves the field at its zero value.
const (
	DefaultFileMode Perm = 0644
	DefaultPathMode Perm = 0755
)

// FileMode converts the permission to an os.FileMode for use with os.OpenFile/os.Chmod.
func (p Perm) FileMode() os.FileMode {
	return os.FileMode(p)
}

// Uint32 returns the raw permission bits.
func (p Perm) Uint32() uint32 {
	return uint32(p)
}

// String renders the permission in octal form, e.g. "0644".
func (p Perm) String() string {
	return "0" + strconv.FormatUint(uint64(p)&0777, 8)
}

// Parse interprets s as an octal permission string, accepting an optional leading "0".
func Parse(s string) (Perm, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	return Perm(v), nil
}

// MarshalJSON encodes the permission as its octal string form so config files stay readable.
func (p Perm) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either an octal string ("0644") or a bare JSON number.
func (p *Perm) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := Parse(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}

	var n uint32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = Perm(n)
	return nil
}
