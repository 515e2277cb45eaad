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

// Package bar implements types.Bar on top of an mpb progress-bar widget when
// the wrapped semaphore carries an *mpb.Progress container, falling back to
// plain bookkeeping (still tracking total/current, but rendering nothing)
// when it doesn't.
package bar

import (
	"sync/atomic"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	semtps "github.com/nabbar/foundation/semaphore/types"
)

type bar struct {
	semtps.SemPgb

	drop      bool
	total     atomic.Int64
	current   atomic.Int64
	completed atomic.Bool
	widget    *mpb.Bar
}

// New wraps sem into a types.Bar tracking total/current. If sem carries an
// *mpb.Progress container, a visible bar widget is created against it; drop
// controls whether that widget is removed from the display once Complete is
// called.
func New(sem semtps.SemPgb, total int64, drop bool) semtps.Bar {
	b := &bar{SemPgb: sem, drop: drop}
	b.total.Store(total)

	if p, ok := sem.GetMPB().(*mpb.Progress); ok && p != nil {
		b.widget = p.AddBar(total,
			mpb.PrependDecorators(decor.Name("")),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}

	return b
}

func (b *bar) New() semtps.SemPgb {
	return b.SemPgb.New()
}

func (b *bar) GetMPB() interface{} {
	if b.widget == nil {
		return nil
	}
	return b.widget
}

func (b *bar) Total() int64 {
	return b.total.Load()
}

func (b *bar) Current() int64 {
	return b.current.Load()
}

func (b *bar) Inc(n int) {
	b.Inc64(int64(n))
}

func (b *bar) Inc64(n int64) {
	cur := b.current.Add(n)
	if b.widget != nil {
		b.widget.SetCurrent(cur)
	}
}

func (b *bar) Dec(n int) {
	b.Dec64(int64(n))
}

func (b *bar) Dec64(n int64) {
	cur := b.current.Add(-n)
	if b.widget != nil {
		b.widget.SetCurrent(cur)
	}
}

func (b *bar) Reset(total, current int64) {
	b.total.Store(total)
	b.current.Store(current)

	if b.widget != nil {
		b.widget.SetTotal(total, false)
		b.widget.SetCurrent(current)
	}
}

func (b *bar) Complete() {
	b.completed.Store(true)

	if b.widget != nil {
		b.widget.SetCurrent(b.total.Load())
		b.widget.Abort(b.drop)
	}
}

func (b *bar) Completed() bool {
	if b.widget == nil {
		return true
	}
	return b.completed.Load()
}

func (b *bar) DeferMain() {
	b.Complete()
	b.SemPgb.DeferMain()
}
