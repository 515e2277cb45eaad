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

// Package sem implements a worker-limiting semaphore: a weighted semaphore
// (golang.org/x/sync/semaphore) when given a positive limit, or an unlimited
// sync.WaitGroup-backed one when given a negative limit.
package sem

import (
	"context"
	"runtime"
	"sync"
	"time"

	xsem "golang.org/x/sync/semaphore"
)

// Sem is a worker-limiting semaphore bound to a parent context.
type Sem interface {
	context.Context

	NewWorker() error
	NewWorkerTry() bool
	DeferWorker()
	DeferMain()
	WaitAll() error
	Weighted() int64
	New() Sem
}

type sem struct {
	parent context.Context
	limit  int64

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	weighted *xsem.Weighted
	wg       *sync.WaitGroup
}

// MaxSimultaneous returns the number of logical CPUs available to the process.
func MaxSimultaneous() int {
	return runtime.GOMAXPROCS(0)
}

// SetSimultaneous clamps n to [1, MaxSimultaneous()], returning MaxSimultaneous()
// for any n outside that range.
func SetSimultaneous(n int64) int64 {
	max := int64(MaxSimultaneous())
	if n < 1 || n > max {
		return max
	}
	return n
}

// New builds a Sem bound to ctx. nbrSimultaneous == 0 uses MaxSimultaneous(),
// nbrSimultaneous > 0 is used as-is, and any negative value yields an unlimited
// WaitGroup-backed semaphore (Weighted() reports -1).
func New(ctx context.Context, nbrSimultaneous int) Sem {
	n := int64(nbrSimultaneous)
	if n == 0 {
		n = int64(MaxSimultaneous())
	}

	s := &sem{parent: ctx, limit: n}
	s.ctx, s.cancel = context.WithCancel(ctx)

	if n < 0 {
		s.wg = &sync.WaitGroup{}
	} else {
		s.weighted = xsem.NewWeighted(n)
	}

	return s
}

func (s *sem) Deadline() (time.Time, bool) {
	return s.ctx.Deadline()
}

func (s *sem) Done() <-chan struct{} {
	return s.ctx.Done()
}

func (s *sem) Err() error {
	return s.ctx.Err()
}

func (s *sem) Value(key interface{}) interface{} {
	return s.ctx.Value(key)
}

func (s *sem) NewWorker() error {
	if s.wg != nil {
		s.wg.Add(1)
		return nil
	}
	return s.weighted.Acquire(s.ctx, 1)
}

func (s *sem) NewWorkerTry() bool {
	if s.wg != nil {
		s.wg.Add(1)
		return true
	}
	return s.weighted.TryAcquire(1)
}

func (s *sem) DeferWorker() {
	if s.wg != nil {
		s.wg.Done()
		return
	}
	s.weighted.Release(1)
}

func (s *sem) DeferMain() {
	s.once.Do(s.cancel)
}

func (s *sem) WaitAll() error {
	if s.wg != nil {
		s.wg.Wait()
		return nil
	}

	if err := s.weighted.Acquire(s.ctx, s.limit); err != nil {
		return err
	}
	s.weighted.Release(s.limit)
	return nil
}

func (s *sem) Weighted() int64 {
	if s.wg != nil {
		return -1
	}
	return s.limit
}

func (s *sem) New() Sem {
	n := int(s.limit)
	if s.wg != nil {
		n = -1
	}
	return New(s.parent, n)
}
