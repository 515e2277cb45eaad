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

// Package startStop wraps a pair of start/stop functions into a Runner with
// idempotent Stop, safe concurrent Start/Stop/Restart, and an Uptime clock.
package startStop

import (
	"context"
	"sync"
	"time"
)

// FuncStart runs until ctx is canceled or the runner is stopped.
type FuncStart func(ctx context.Context) error

// FuncStop releases whatever FuncStart acquired.
type FuncStop func(ctx context.Context) error

// Runner manages the lifecycle of a single background task defined by a
// start/stop function pair.
type Runner interface {
	// Start runs the configured start function in a new goroutine. If already
	// running, the previous instance is stopped first.
	Start(ctx context.Context) error

	// Stop runs the configured stop function, if currently running. Safe to call
	// when not running, and safe to call more than once.
	Stop(ctx context.Context) error

	// Restart stops then starts the runner.
	Restart(ctx context.Context) error

	// IsRunning reports whether Start has succeeded and Stop has not yet completed.
	IsRunning() bool

	// Uptime reports how long the runner has been running, zero when not running.
	Uptime() time.Duration
}

type runner struct {
	fctStart FuncStart
	fctStop  FuncStop

	mu      sync.Mutex
	running bool
	started time.Time
	cancel  context.CancelFunc
	done    chan struct{}
}

// New builds a Runner from start and stop. Either may be nil, in which case the
// corresponding phase is a no-op.
func New(start FuncStart, stop FuncStop) Runner {
	return &runner{fctStart: start, fctStop: stop}
}

func (r *runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		if err := r.Stop(ctx); err != nil {
			return err
		}
		r.mu.Lock()
	}

	c, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	r.cancel = cancel
	r.done = done
	r.running = true
	r.started = time.Now()
	r.mu.Unlock()

	go func() {
		defer close(done)
		if r.fctStart != nil {
			_ = r.fctStart(c)
		}
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	return nil
}

func (r *runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	cancel := r.cancel
	done := r.done
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	if r.fctStop != nil {
		if err := r.fctStop(ctx); err != nil {
			return err
		}
	}

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()

	return nil
}

func (r *runner) Restart(ctx context.Context) error {
	if err := r.Stop(ctx); err != nil {
		return err
	}
	return r.Start(ctx)
}

func (r *runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *runner) Uptime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return 0
	}
	return time.Since(r.started)
}
