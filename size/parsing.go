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
	"math"
	"strconv"
	"strings"
)

var unitScale = map[string]Size{
	"":   SizeUnit,
	"B":  SizeUnit,
	"K":  SizeKilo,
	"KB": SizeKilo,
	"KIB": SizeKilo,
	"M":  SizeMega,
	"MB": SizeMega,
	"MIB": SizeMega,
	"G":  SizeGiga,
	"GB": SizeGiga,
	"GIB": SizeGiga,
	"T":  SizeTera,
	"TB": SizeTera,
	"TIB": SizeTera,
	"P":  SizePeta,
	"PB": SizePeta,
	"PIB": SizePeta,
	"E":  SizeExa,
	"EB": SizeExa,
	"EIB": SizeExa,
}

// Parse converts a human-readable size string ("5MB", "1.5GB", "100") into a
// Size. A bare number without a unit is rejected: every value must carry an
// explicit unit suffix. Leading/trailing whitespace and a single layer of
// surrounding quotes are tolerated, and a leading '+' sign is accepted.
// A leading '-' is rejected, Size has no negative representation.
func Parse(str string) (Size, error) {
	s := strings.TrimSpace(str)
	s = unquote(s)
	s = strings.TrimSpace(s)

	if s == "" {
		return SizeNul, fmt.Errorf("invalid size: empty value")
	}

	if strings.HasPrefix(s, "-") {
		return SizeNul, fmt.Errorf("invalid size %q: negative values are not allowed", str)
	}

	s = strings.TrimPrefix(s, "+")

	if isPlainNumber(s) {
		return SizeNul, fmt.Errorf("invalid size %q: missing unit", str)
	}

	return parseChunks(str, s)
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func isPlainNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// parseChunks walks s from left to right, matching one number+unit pair at a
// time, and accumulates the total. This supports compound values such as
// "1GB500MB".
func parseChunks(orig, s string) (Size, error) {
	var (
		total Size
		rest  = s
		found bool
	)

	for rest != "" {
		loc := findNextChunk(rest)
		if loc == nil {
			if found {
				return SizeNul, fmt.Errorf("invalid size %q: unknown unit", orig)
			}
			return SizeNul, classifyParseFailure(orig, rest)
		}

		num, unit := loc[0], loc[1]

		scale, ok := unitScale[strings.ToUpper(unit)]
		if !ok {
			return SizeNul, fmt.Errorf("invalid size %q: unknown unit %q", orig, unit)
		}

		val, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return SizeNul, fmt.Errorf("invalid size %q: malformed number %q", orig, num)
		}

		chunk := val * float64(scale)
		if chunk < 0 || chunk > math.MaxUint64 {
			return SizeNul, fmt.Errorf("invalid size %q: value out of range", orig)
		}

		if err = total.AddErr(uint64(chunk)); err != nil {
			return SizeNul, fmt.Errorf("invalid size %q: %w", orig, err)
		}

		found = true
		rest = rest[len(num)+len(unit):]
	}

	if !found {
		return SizeNul, fmt.Errorf("invalid size %q: missing unit", orig)
	}

	return total, nil
}

// findNextChunk returns {number, unit} for the leading number+unit run of s,
// or nil if s does not start with a parseable number.
func findNextChunk(s string) []string {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i == 0 {
		return nil
	}
	num := s[:i]
	if strings.Count(num, ".") > 1 {
		return nil
	}

	j := i
	for j < len(s) && ((s[j] >= 'a' && s[j] <= 'z') || (s[j] >= 'A' && s[j] <= 'Z')) {
		j++
	}

	return []string{num, s[i:j]}
}

func classifyParseFailure(orig, rest string) error {
	if isPlainNumber(rest) {
		return fmt.Errorf("invalid size %q: missing unit", orig)
	}
	return fmt.Errorf("invalid size %q: unknown unit", orig)
}

// ParseByte behaves like Parse, taking a byte slice.
func ParseByte(b []byte) (Size, error) {
	if len(b) == 0 {
		return SizeNul, fmt.Errorf("invalid size: empty value")
	}
	return Parse(string(b))
}

// ParseSize is a deprecated alias for Parse.
//
// Deprecated: use Parse.
func ParseSize(str string) (Size, error) {
	return Parse(str)
}

// ParseByteAsSize is a deprecated alias for ParseByte.
//
// Deprecated: use ParseByte.
func ParseByteAsSize(b []byte) (Size, error) {
	return ParseByte(b)
}

// ParseInt64 converts an int64 to a Size, taking the absolute value.
func ParseInt64(v int64) Size {
	if v < 0 {
		v = -v
	}
	return Size(v)
}

// SizeFromInt64 is an alias for ParseInt64.
func SizeFromInt64(v int64) Size {
	return ParseInt64(v)
}

// ParseUint64 converts a uint64 to a Size.
func ParseUint64(v uint64) Size {
	return Size(v)
}

// ParseFloat64 converts a float64 to a Size, flooring fractional values and
// taking the absolute value. Out-of-range values saturate at MaxUint64.
func ParseFloat64(v float64) Size {
	v = math.Floor(math.Abs(v))
	if v > math.MaxUint64 {
		return Size(math.MaxUint64)
	}
	return Size(v)
}

// SizeFromFloat64 is an alias for ParseFloat64.
func SizeFromFloat64(v float64) Size {
	return ParseFloat64(v)
}
