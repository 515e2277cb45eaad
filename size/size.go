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

// Package size implements a byte-count type with human-readable parsing and
// formatting, used throughout the module for buffer sizes, transfer limits,
// and configuration fields such as Server.ConIdleTimeout's sibling byte caps.
package size

import "math"

// Size is a byte count. The zero value is SizeNul.
type Size uint64

const (
	SizeNul  Size = 0
	SizeUnit Size = 1
	SizeKilo Size = SizeUnit << 10
	SizeMega Size = SizeKilo << 10
	SizeGiga Size = SizeMega << 10
	SizeTera Size = SizeGiga << 10
	SizePeta Size = SizeTera << 10
	SizeExa  Size = SizePeta << 10
)

var defaultUnit rune = 'B'

// SetDefaultUnit changes the suffix rune appended by Code when called with 0.
func SetDefaultUnit(r rune) {
	if r != 0 {
		defaultUnit = r
	}
}

func (s Size) Uint64() uint64 {
	return uint64(s)
}

func (s Size) Int64() int64 {
	if uint64(s) > 1<<63-1 {
		return 1<<63 - 1
	}
	return int64(s)
}

func (s Size) Float64() float64 {
	return float64(s)
}

func (s Size) Int() int {
	return int(s.Int64())
}

func (s Size) Int32() int32 {
	if uint64(s) > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(s)
}

func (s Size) Uint32() uint32 {
	if uint64(s) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(s)
}

func (s Size) Float32() float32 {
	return float32(s)
}

func (s Size) KiloBytes() uint64 {
	return uint64(s) / uint64(SizeKilo)
}

func (s Size) MegaBytes() uint64 {
	return uint64(s) / uint64(SizeMega)
}

func (s Size) GigaBytes() uint64 {
	return uint64(s) / uint64(SizeGiga)
}

func (s Size) TeraBytes() uint64 {
	return uint64(s) / uint64(SizeTera)
}

func (s Size) PetaBytes() uint64 {
	return uint64(s) / uint64(SizePeta)
}

func (s Size) ExaBytes() uint64 {
	return uint64(s) / uint64(SizeExa)
}
