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

// Package udp implements libsck.Client over a connected UDP socket (net.DialUDP),
// so Read/Write behave like a stream even though the transport is datagram-based.
package udp

import (
	"bytes"
	"context"
	"net"
	"sync"
	"sync/atomic"

	libsck "github.com/nabbar/foundation/socket"
)

type cli struct {
	addr string

	mu   sync.Mutex
	conn net.Conn

	mutErr atomic.Value // libsck.FuncError
	mutInf atomic.Value // libsck.FuncInfo
}

// New validates addr as a UDP endpoint and returns a not-yet-connected libsck.Client.
func New(addr string) (libsck.Client, error) {
	if _, err := net.ResolveUDPAddr("udp", addr); err != nil {
		return nil, err
	}
	return &cli{addr: addr}, nil
}

func (c *cli) RegisterFuncError(f libsck.FuncError) {
	c.mutErr.Store(f)
}

func (c *cli) RegisterFuncInfo(f libsck.FuncInfo) {
	c.mutInf.Store(f)
}

func (c *cli) fireError(errs ...error) {
	if f, ok := c.mutErr.Load().(libsck.FuncError); ok && f != nil {
		f(errs...)
	}
}

func (c *cli) fireInfo(local, remote net.Addr, st libsck.ConnState) {
	if f, ok := c.mutInf.Load().(libsck.FuncInfo); ok && f != nil {
		f(local, remote, st)
	}
}

func (c *cli) Connect(ctx context.Context) error {
	c.fireInfo(nil, nil, libsck.ConnectionDial)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", c.addr)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.fireInfo(conn.LocalAddr(), conn.RemoteAddr(), libsck.ConnectionNew)
	return nil
}

func (c *cli) Once(ctx context.Context, p []byte, fct libsck.FuncResponse) error {
	if err := c.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if _, err := c.Write(p); err != nil {
		return err
	}

	if fct != nil {
		buf := make([]byte, libsck.DefaultBufferSize)
		n, err := c.Read(buf)
		if err != nil {
			return err
		}
		fct(bytes.NewReader(buf[:n]))
	}

	return nil
}

func (c *cli) Read(p []byte) (int, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return 0, net.ErrClosed
	}

	c.fireInfo(conn.LocalAddr(), conn.RemoteAddr(), libsck.ConnectionRead)
	n, err := conn.Read(p)
	return n, libsck.ErrorFilter(err)
}

func (c *cli) Write(p []byte) (int, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return 0, net.ErrClosed
	}

	n, err := conn.Write(p)
	c.fireInfo(conn.LocalAddr(), conn.RemoteAddr(), libsck.ConnectionWrite)
	return n, libsck.ErrorFilter(err)
}

func (c *cli) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	c.fireInfo(conn.LocalAddr(), conn.RemoteAddr(), libsck.ConnectionClose)
	return libsck.ErrorFilter(conn.Close())
}

func (c *cli) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *cli) LocalAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.LocalAddr()
}

func (c *cli) RemoteAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.RemoteAddr()
}
