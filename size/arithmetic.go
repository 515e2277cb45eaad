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
)

// Mul multiplies s in place by m, rounding up and saturating at MaxUint64.
// Negative multipliers are treated as zero. Overflow is silently capped; use
// MulErr to observe it.
func (s *Size) Mul(m float64) {
	_ = s.MulErr(m)
}

// MulErr is like Mul but reports an error when the result saturates.
func (s *Size) MulErr(m float64) error {
	if m < 0 {
		m = 0
	}

	result := math.Ceil(float64(*s) * m)
	if result > math.MaxUint64 {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size overflow: multiplication result exceeds MaxUint64")
	}

	*s = Size(result)
	return nil
}

// Div divides s in place by d, rounding up. A non-positive divisor leaves s
// unchanged; use DivErr to observe the error.
func (s *Size) Div(d float64) {
	_ = s.DivErr(d)
}

// DivErr is like Div but reports an error for a non-positive divisor.
func (s *Size) DivErr(d float64) error {
	if d <= 0 {
		return fmt.Errorf("invalid diviser: must be strictly positive, got %v", d)
	}

	*s = Size(math.Ceil(float64(*s) / d))
	return nil
}

// Add adds v to s in place, saturating at MaxUint64.
func (s *Size) Add(v uint64) {
	_ = s.AddErr(v)
}

// AddErr is like Add but reports an error when the result overflows.
func (s *Size) AddErr(v uint64) error {
	cur := uint64(*s)
	sum := cur + v

	if sum < cur {
		*s = Size(math.MaxUint64)
		return fmt.Errorf("size overflow: addition result exceeds MaxUint64")
	}

	*s = Size(sum)
	return nil
}

// Sub subtracts v from s in place, flooring at zero.
func (s *Size) Sub(v uint64) {
	_ = s.SubErr(v)
}

// SubErr is like Sub but reports an error when v exceeds s.
func (s *Size) SubErr(v uint64) error {
	cur := uint64(*s)

	if v > cur {
		*s = SizeNul
		return fmt.Errorf("invalid substractor: %d exceeds current size %d", v, cur)
	}

	*s = Size(cur - v)
	return nil
}
