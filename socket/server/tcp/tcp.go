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

// Package tcp implements libsck.Server over a TCP (or TLS-wrapped TCP) listener:
// one goroutine accepts connections, each accepted connection is handed to the
// configured HandlerFunc in its own goroutine via a socket.Context.
package tcp

import (
	"context"
	"crypto/tls"
	"net"
	"sync"
	"sync/atomic"

	libsck "github.com/nabbar/foundation/socket"
	sckcfg "github.com/nabbar/foundation/socket/config"
)

// ServerTcp is the TCP-specific Server, adding synchronous Close and a post-shutdown
// IsGone flag on top of the generic socket.Server contract.
type ServerTcp interface {
	libsck.Server

	// Close stops the listener immediately, without waiting for in-flight handlers.
	Close() error

	// IsGone reports whether the listener has been closed (by Shutdown, Close, or a
	// fatal Accept error).
	IsGone() bool
}

type srv struct {
	cfg sckcfg.Server
	hdl libsck.HandlerFunc
	upd libsck.UpdateConn

	mutErr atomic.Value // libsck.FuncError
	mutInf atomic.Value // libsck.FuncInfo

	mu       sync.Mutex
	listener net.Listener
	running  atomic.Bool
	gone     atomic.Bool
	wg       sync.WaitGroup
}

// New creates a TCP server for cfg, dispatching accepted connections to hdl. upd, if
// non-nil, is called to customize every accepted net.Conn before I/O begins.
func New(upd libsck.UpdateConn, hdl libsck.HandlerFunc, cfg sckcfg.Server) (ServerTcp, error) {
	if !cfg.Network.IsTCP() {
		return nil, sckcfg.ErrInvalidProtocol
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &srv{cfg: cfg, hdl: hdl, upd: upd}, nil
}

func (s *srv) RegisterFuncError(f libsck.FuncError) {
	s.mutErr.Store(f)
}

func (s *srv) RegisterFuncInfo(f libsck.FuncInfo) {
	s.mutInf.Store(f)
}

func (s *srv) fireError(errs ...error) {
	if f, ok := s.mutErr.Load().(libsck.FuncError); ok && f != nil {
		f(errs...)
	}
}

func (s *srv) fireInfo(local, remote net.Addr, st libsck.ConnState) {
	if f, ok := s.mutInf.Load().(libsck.FuncInfo); ok && f != nil {
		f(local, remote, st)
	}
}

func (s *srv) Listen(ctx context.Context) error {
	var (
		lis net.Listener
		err error
	)

	if ok, tcfg := s.cfg.GetTLS(); ok {
		lis, err = tls.Listen(s.cfg.Network.Network(), s.cfg.Address, tcfg)
	} else {
		lis, err = net.Listen(s.cfg.Network.Network(), s.cfg.Address)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()

	s.running.Store(true)
	s.gone.Store(false)
	defer func() {
		s.running.Store(false)
		s.gone.Store(true)
	}()

	go func() {
		<-ctx.Done()
		_ = s.Close()
	}()

	for {
		conn, err := lis.Accept()
		if err != nil {
			if e := libsck.ErrorFilter(err); e != nil {
				s.fireError(e)
			}
			return nil
		}

		s.fireInfo(conn.LocalAddr(), conn.RemoteAddr(), libsck.ConnectionNew)
		if s.upd != nil {
			s.upd(conn)
		}

		s.wg.Add(1)
		go s.serve(ctx, conn)
	}
}

func (s *srv) serve(ctx context.Context, conn net.Conn) {
	defer s.wg.Done()

	local, remote := conn.LocalAddr(), conn.RemoteAddr()
	c := libsck.NewContext(ctx, conn)

	s.fireInfo(local, remote, libsck.ConnectionRead)
	s.fireInfo(local, remote, libsck.ConnectionHandler)

	if s.hdl != nil {
		s.hdl(c)
	}

	s.fireInfo(local, remote, libsck.ConnectionWrite)
	_ = c.Close()
	s.fireInfo(local, remote, libsck.ConnectionClose)
}

func (s *srv) Shutdown(ctx context.Context) error {
	if err := s.Close(); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *srv) Close() error {
	s.mu.Lock()
	lis := s.listener
	s.mu.Unlock()

	s.running.Store(false)
	s.gone.Store(true)

	if lis == nil {
		return nil
	}
	return libsck.ErrorFilter(lis.Close())
}

func (s *srv) IsRunning() bool {
	return s.running.Load()
}

func (s *srv) IsGone() bool {
	return s.gone.Load()
}

func (s *srv) Listener() (net.Listener, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil, s.cfg.Address, nil
	}
	return s.listener, s.listener.Addr().String(), nil
}
