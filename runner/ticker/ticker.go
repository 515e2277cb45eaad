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

// Package ticker runs a function on a fixed interval, driven by a time.Ticker,
// collecting every error the function returns until the next Start or Restart.
package ticker

import (
	"context"
	"sync"
	"time"
)

// DefaultDuration is used whenever New is given a duration that is not strictly
// positive.
const DefaultDuration = 1 * time.Second

// FuncTick is invoked on every tick. A non-nil return value is appended to the
// error list without interrupting the ticker.
type FuncTick func(ctx context.Context, tck *time.Ticker) error

// Ticker repeatedly runs a function on a fixed interval in a background
// goroutine.
type Ticker interface {
	// Start begins ticking, stopping any previous run first, and clears the
	// error list.
	Start(ctx context.Context) error

	// Stop halts the ticker, waiting for the in-flight tick to finish.
	Stop(ctx context.Context) error

	// Restart stops then starts the ticker.
	Restart(ctx context.Context) error

	// IsRunning reports whether the ticker is currently active.
	IsRunning() bool

	// Uptime reports how long the ticker has been running, zero when stopped.
	Uptime() time.Duration

	// ErrorsLast returns the most recent error returned by the tick function,
	// or nil if none occurred since the last Start.
	ErrorsLast() error

	// ErrorsList returns every error returned by the tick function since the
	// last Start, in order.
	ErrorsList() []error
}

type ticker struct {
	dur time.Duration
	fct FuncTick

	mu      sync.Mutex
	running bool
	started time.Time
	cancel  context.CancelFunc
	done    chan struct{}
	errs    []error
}

// New builds a Ticker that invokes fct every dur. A dur that is not strictly
// positive falls back to DefaultDuration. fct may be nil, in which case each
// tick is a no-op.
func New(dur time.Duration, fct FuncTick) Ticker {
	if dur <= 0 {
		dur = DefaultDuration
	}
	return &ticker{dur: dur, fct: fct}
}

func (t *ticker) Start(ctx context.Context) error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		if err := t.Stop(ctx); err != nil {
			return err
		}
		t.mu.Lock()
	}

	c, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.cancel = cancel
	t.done = done
	t.running = true
	t.started = time.Now()
	t.errs = nil
	t.mu.Unlock()

	go t.run(c, done)

	return nil
}

func (t *ticker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	tck := time.NewTicker(t.dur)
	defer tck.Stop()

	for {
		select {
		case <-ctx.Done():
			t.mu.Lock()
			t.running = false
			t.mu.Unlock()
			return

		case <-tck.C:
			if t.fct == nil {
				continue
			}
			if err := t.fct(ctx, tck); err != nil {
				t.mu.Lock()
				t.errs = append(t.errs, err)
				t.mu.Unlock()
			}
		}
	}
}

func (t *ticker) Stop(ctx context.Context) error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return nil
	}
	cancel := t.cancel
	done := t.done
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}

	t.mu.Lock()
	t.running = false
	t.mu.Unlock()

	return nil
}

func (t *ticker) Restart(ctx context.Context) error {
	if err := t.Stop(ctx); err != nil {
		return err
	}
	return t.Start(ctx)
}

func (t *ticker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *ticker) Uptime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	return time.Since(t.started)
}

func (t *ticker) ErrorsLast() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.errs) == 0 {
		return nil
	}
	return t.errs[len(t.errs)-1]
}

func (t *ticker) ErrorsList() []error {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]error, len(t.errs))
	copy(out, t.errs)
	return out
}
