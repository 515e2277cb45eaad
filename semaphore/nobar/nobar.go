/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package nobar implements types.Bar as a bookkeeping-free stub: every counter
// stays at zero and Completed reports true as soon as Complete or DeferMain is
// called. It is used wherever a Bar is required by an API but progress
// rendering was never requested.
package nobar

import (
	"sync/atomic"

	semtps "github.com/nabbar/foundation/semaphore/types"
)

type bar struct {
	semtps.SemPgb

	drop      bool
	completed atomic.Bool
}

// New wraps sem into a types.Bar that tracks no progress at all. total and
// drop are accepted for signature parity with bar.New but otherwise unused.
func New(sem semtps.SemPgb, total int64, drop bool) semtps.Bar {
	return &bar{SemPgb: sem, drop: drop}
}

func (b *bar) New() semtps.SemPgb {
	return b.SemPgb.New()
}

// GetMPB always reports nil: nobar never creates an actual progress-bar
// widget, regardless of whether the wrapped semaphore has one.
func (b *bar) GetMPB() interface{} {
	return nil
}

func (b *bar) Total() int64 {
	return 0
}

func (b *bar) Current() int64 {
	return 0
}

func (b *bar) Inc(n int)      {}
func (b *bar) Inc64(n int64)  {}
func (b *bar) Dec(n int)      {}
func (b *bar) Dec64(n int64)  {}
func (b *bar) Reset(total, current int64) {}

func (b *bar) Complete() {
	b.completed.Store(true)
}

func (b *bar) Completed() bool {
	return b.completed.Load()
}

func (b *bar) DeferMain() {
	b.completed.Store(true)
	b.SemPgb.DeferMain()
}
