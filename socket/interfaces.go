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

// Package socket defines the shared contract implemented by the protocol-specific
// client and server packages (socket/client/tcp, socket/client/udp, socket/server/tcp,
// socket/server/udp): connection lifecycle reporting, a per-connection I/O context handed
// to request handlers, and the Client/Server facades themselves.
package socket

import (
	"context"
	"io"
	"net"
)

// FuncError receives one or more errors emitted by a client or server during I/O.
// Callers typically run each error through ErrorFilter before logging it.
type FuncError func(errs ...error)

// FuncInfo is notified of every ConnState transition for a connection, along with
// its local and remote addresses.
type FuncInfo func(local, remote net.Addr, state ConnState)

// FuncResponse processes the body of a server's reply to a Client.Once request.
type FuncResponse func(r io.Reader)

// UpdateConn customizes a freshly dialed or accepted net.Conn (deadlines, keepalive,
// buffer sizes, ...) before it is handed off to a Context.
type UpdateConn func(conn net.Conn)

// Context is handed to a HandlerFunc for the lifetime of a single accepted connection.
// It exposes connection metadata, cancellation, and buffered Read/Write access to the
// underlying net.Conn.
type Context interface {
	io.Reader
	io.Writer
	io.Closer

	// Context returns the per-connection context, canceled when the connection closes
	// or the owning server/client shuts down.
	Context() context.Context

	// Done reports the same cancellation as Context().Done(), exposed directly for convenience.
	Done() <-chan struct{}

	// Err reports the reason the per-connection context was canceled, if any.
	Err() error

	// IsConnected reports whether the underlying connection is still open.
	IsConnected() bool

	// LocalHost returns the local address of the underlying connection.
	LocalHost() string

	// RemoteHost returns the remote address of the underlying connection.
	RemoteHost() string

	// Conn returns the underlying net.Conn.
	Conn() net.Conn
}

// HandlerFunc processes one accepted (or, for UDP, one peer-framed) connection.
type HandlerFunc func(ctx Context)

// Server listens for and dispatches incoming connections to a HandlerFunc.
type Server interface {
	// RegisterFuncError registers the callback invoked for non-fatal I/O errors.
	RegisterFuncError(f FuncError)

	// RegisterFuncInfo registers the callback invoked on every ConnState transition.
	RegisterFuncInfo(f FuncInfo)

	// Listen binds and serves until ctx is canceled or an unrecoverable error occurs.
	Listen(ctx context.Context) error

	// Shutdown stops accepting new connections and waits (up to ctx) for in-flight
	// handlers to finish.
	Shutdown(ctx context.Context) error

	// IsRunning reports whether Listen is currently serving.
	IsRunning() bool

	// Listener returns the underlying net.Listener (nil for connectionless protocols),
	// its bound address, and any error recorded while creating it.
	Listener() (net.Listener, string, error)
}

// Client dials a remote endpoint and exchanges data with it.
type Client interface {
	io.Reader
	io.Writer
	io.Closer

	// RegisterFuncError registers the callback invoked for non-fatal I/O errors.
	RegisterFuncError(f FuncError)

	// RegisterFuncInfo registers the callback invoked on every ConnState transition.
	RegisterFuncInfo(f FuncInfo)

	// Connect establishes the underlying connection.
	Connect(ctx context.Context) error

	// Once writes p, then runs fct against the single reply received before closing
	// the connection; it is a convenience wrapper over Connect/Write/Read/Close for
	// simple request/response protocols.
	Once(ctx context.Context, p []byte, fct FuncResponse) error

	// IsConnected reports whether Connect has succeeded and Close has not yet been called.
	IsConnected() bool

	// LocalAddr returns the local address of the underlying connection, nil if not connected.
	LocalAddr() net.Addr

	// RemoteAddr returns the remote address of the underlying connection, nil if not connected.
	RemoteAddr() net.Addr
}
