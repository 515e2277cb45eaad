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

// Package types holds the shared interfaces implemented by the sem, bar and
// nobar packages, so they can wrap and type-assert one another without an
// import cycle back to the top-level semaphore package.
package types

import "context"

// SemPgb is a worker-limiting semaphore optionally backed by an mpb progress
// bar container. It embeds context.Context so callers can select on Done()
// or inspect Err() the same way they would on any cancellable context.
type SemPgb interface {
	context.Context

	// NewWorker blocks until a worker slot is available or ctx is done.
	NewWorker() error

	// NewWorkerTry acquires a worker slot without blocking.
	NewWorkerTry() bool

	// DeferWorker releases a worker slot acquired by NewWorker/NewWorkerTry.
	DeferWorker()

	// DeferMain cancels the semaphore's internal context. Safe to call more
	// than once.
	DeferMain()

	// WaitAll blocks until every acquired worker slot has been released.
	WaitAll() error

	// Weighted returns the configured concurrency limit, or -1 if unlimited.
	Weighted() int64

	// New returns an independent semaphore sharing the same parent context
	// and concurrency limit.
	New() SemPgb

	// Clone returns an independent semaphore sharing the same parent context,
	// concurrency limit, and (if any) progress bar container.
	Clone() SemPgb

	// GetMPB returns the underlying *mpb.Progress container, or nil if the
	// semaphore was built without progress support.
	GetMPB() interface{}
}

// Bar tracks progress against a fixed total, layered over a SemPgb for its
// worker-limiting behavior.
type Bar interface {
	context.Context

	NewWorker() error
	NewWorkerTry() bool
	DeferWorker()
	DeferMain()
	WaitAll() error
	Weighted() int64
	New() SemPgb

	// Total returns the bar's configured total.
	Total() int64

	// Current returns the bar's current value.
	Current() int64

	// Inc advances the current value by n.
	Inc(n int)

	// Inc64 advances the current value by n.
	Inc64(n int64)

	// Dec reduces the current value by n.
	Dec(n int)

	// Dec64 reduces the current value by n.
	Dec64(n int64)

	// Reset replaces the total and current value.
	Reset(total, current int64)

	// Complete marks the bar as finished.
	Complete()

	// Completed reports whether the bar has finished, or has no progress
	// container to finish in the first place.
	Completed() bool
}

// BarMPB is a Bar additionally exposing its underlying mpb bar container.
type BarMPB interface {
	Bar

	// GetMPB returns the underlying *mpb.Bar, or nil if none was created.
	GetMPB() interface{}
}
