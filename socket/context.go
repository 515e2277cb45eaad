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

package socket

import (
	"context"
	"net"
	"sync/atomic"
)

type netContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	conn   net.Conn
	closed atomic.Bool
}

// NewContext wraps conn into a Context whose lifetime is tied to parent: canceling
// parent or calling Close ends it. It is the concrete Context handed to HandlerFunc
// by the tcp and udp client/server implementations.
func NewContext(parent context.Context, conn net.Conn) Context {
	c, cancel := context.WithCancel(parent)
	return &netContext{ctx: c, cancel: cancel, conn: conn}
}

func (c *netContext) Read(p []byte) (int, error) {
	return c.conn.Read(p)
}

func (c *netContext) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

func (c *netContext) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.cancel()
	return c.conn.Close()
}

func (c *netContext) Context() context.Context {
	return c.ctx
}

func (c *netContext) Done() <-chan struct{} {
	return c.ctx.Done()
}

func (c *netContext) Err() error {
	return c.ctx.Err()
}

func (c *netContext) IsConnected() bool {
	return !c.closed.Load()
}

func (c *netContext) LocalHost() string {
	if c.conn == nil || c.conn.LocalAddr() == nil {
		return ""
	}
	return c.conn.LocalAddr().String()
}

func (c *netContext) RemoteHost() string {
	if c.conn == nil || c.conn.RemoteAddr() == nil {
		return ""
	}
	return c.conn.RemoteAddr().String()
}

func (c *netContext) Conn() net.Conn {
	return c.conn
}
