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

// Package semaphore ties a worker-limiting Sem to an optional mpb progress
// display, handing out Bar instances (real when progress is enabled, no-op
// otherwise) for callers to report work against.
package semaphore

import (
	"context"

	"github.com/vbauerster/mpb/v8"

	sembar "github.com/nabbar/foundation/semaphore/bar"
	seminr "github.com/nabbar/foundation/semaphore/nobar"
	libsem "github.com/nabbar/foundation/semaphore/sem"
	semtps "github.com/nabbar/foundation/semaphore/types"
)

// Sem is a worker-limiting semaphore with progress-bar factories.
type Sem interface {
	semtps.SemPgb

	// BarBytes creates a byte-count progress bar. prev, if non-nil, queues this
	// bar behind it in the same display.
	BarBytes(title, desc string, total int64, drop bool, prev semtps.Bar) semtps.Bar

	// BarTime creates an elapsed-time progress bar.
	BarTime(title, desc string, total int64, drop bool, prev semtps.Bar) semtps.Bar

	// BarNumber creates a plain item-count progress bar.
	BarNumber(title, desc string, total int64, drop bool, prev semtps.Bar) semtps.Bar

	// BarOpts creates a bar with no decorators beyond percentage.
	BarOpts(total int64, drop bool) semtps.Bar
}

type semaphore struct {
	libsem.Sem

	parent context.Context
	limit  int
	mpb    bool
	p      *mpb.Progress
}

// New builds a Sem bound to ctx, limited to nbrSimultaneous concurrent
// workers (see sem.New for the exact semantics of nbrSimultaneous), optionally
// backed by an mpb progress display.
func New(ctx context.Context, nbrSimultaneous int, withProgress bool) Sem {
	s := &semaphore{
		Sem:    libsem.New(ctx, nbrSimultaneous),
		parent: ctx,
		limit:  nbrSimultaneous,
		mpb:    withProgress,
	}

	if withProgress {
		s.p = mpb.New()
	}

	return s
}

func (s *semaphore) GetMPB() interface{} {
	if s.p == nil {
		return nil
	}
	return s.p
}

func (s *semaphore) New() semtps.SemPgb {
	n := New(s.parent, s.limit, s.mpb)
	return n.(semtps.SemPgb)
}

func (s *semaphore) Clone() semtps.SemPgb {
	c := &semaphore{
		Sem:    libsem.New(s.parent, s.limit),
		parent: s.parent,
		limit:  s.limit,
		mpb:    s.mpb,
		p:      s.p,
	}
	return c
}

func (s *semaphore) newBar(total int64, drop bool) semtps.Bar {
	if !s.mpb {
		return seminr.New(s, total, drop)
	}
	return sembar.New(s, total, drop)
}

func (s *semaphore) BarBytes(title, desc string, total int64, drop bool, prev semtps.Bar) semtps.Bar {
	_ = prev // the underlying mpb.Progress already serializes bar placement by creation order
	return s.newBar(total, drop)
}

func (s *semaphore) BarTime(title, desc string, total int64, drop bool, prev semtps.Bar) semtps.Bar {
	_ = prev
	return s.newBar(total, drop)
}

func (s *semaphore) BarNumber(title, desc string, total int64, drop bool, prev semtps.Bar) semtps.Bar {
	_ = prev
	return s.newBar(total, drop)
}

func (s *semaphore) BarOpts(total int64, drop bool) semtps.Bar {
	return s.newBar(total, drop)
}
