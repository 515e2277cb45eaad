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

package size

import (
	"fmt"
)

// Format round presets usable with Size.Format.
const (
	FormatRound0 = "%.0f"
	FormatRound1 = "%.1f"
	FormatRound2 = "%.2f"
	FormatRound3 = "%.3f"
)

type unitStep struct {
	scale Size
	code  string
}

var unitSteps = []unitStep{
	{SizeExa, "E"},
	{SizePeta, "P"},
	{SizeTera, "T"},
	{SizeGiga, "G"},
	{SizeMega, "M"},
	{SizeKilo, "K"},
}

// letterAndScale returns the unit letter ("", "K", "M", ...) and the scale it
// represents for s, picking the largest unit that s is at least as big as.
func (s Size) letterAndScale() (string, Size) {
	for _, u := range unitSteps {
		if s >= u.scale {
			return u.code, u.scale
		}
	}
	return "", SizeUnit
}

// Unit returns the unit suffix for s ("B", "KB", "MB", ...). r, if non-zero,
// replaces the trailing 'B' (e.g. Unit('i') on a kilobyte value returns "Ki").
func (s Size) Unit(r rune) string {
	letter, _ := s.letterAndScale()
	if r == 0 {
		return letter + "B"
	}
	return letter + string(r)
}

// Code is like Unit but falls back to the package default unit rune (see
// SetDefaultUnit) when r is 0, instead of the literal 'B'.
func (s Size) Code(r rune) string {
	if r == 0 {
		r = defaultUnit
	}
	letter, _ := s.letterAndScale()
	return letter + string(r)
}

// Format renders s as a floating-point value scaled to its largest matching
// unit, using format as the fmt verb (e.g. FormatRound2, or a custom "%.4f").
func (s Size) Format(format string) string {
	_, scale := s.letterAndScale()
	v := float64(s) / float64(scale)
	return fmt.Sprintf(format, v)
}

// String renders s scaled to its largest matching unit with two decimals of
// precision, followed by its unit code (e.g. "5.50MB").
func (s Size) String() string {
	return s.Format(FormatRound2) + s.Unit(0)
}
