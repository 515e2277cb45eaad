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

// Package udp implements libsck.Server over a single UDP PacketConn: one goroutine
// reads datagrams and demultiplexes them by source address, feeding each distinct
// peer its own HandlerFunc goroutine through a virtual net.Conn fed by a buffered
// channel (a datagram "shared I/O thread").
package udp

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	libsck "github.com/nabbar/foundation/socket"
	sckcfg "github.com/nabbar/foundation/socket/config"
)

// ServerUdp is the UDP-specific Server, adding synchronous Close, a post-shutdown
// IsGone flag, and a live peer count on top of the generic socket.Server contract.
type ServerUdp interface {
	libsck.Server

	// Close stops the listener immediately, without waiting for in-flight handlers.
	Close() error

	// IsGone reports whether the listener has been closed.
	IsGone() bool

	// OpenConnections reports the number of distinct peers currently being served.
	OpenConnections() int64
}

type srv struct {
	cfg sckcfg.Server
	hdl libsck.HandlerFunc
	upd libsck.UpdateConn

	mutErr atomic.Value // libsck.FuncError
	mutInf atomic.Value // libsck.FuncInfo

	mu       sync.Mutex
	conn     net.PacketConn
	peers    map[string]*peerConn
	running  atomic.Bool
	gone     atomic.Bool
	open     atomic.Int64
	wg       sync.WaitGroup
}

// New creates a UDP server for cfg, dispatching each distinct peer to its own hdl
// invocation. upd, if non-nil, customizes each peer's virtual net.Conn.
func New(upd libsck.UpdateConn, hdl libsck.HandlerFunc, cfg sckcfg.Server) (ServerUdp, error) {
	if !cfg.Network.IsUDP() {
		return nil, sckcfg.ErrInvalidProtocol
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &srv{cfg: cfg, hdl: hdl, upd: upd, peers: make(map[string]*peerConn)}, nil
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
	conn, err := net.ListenPacket(s.cfg.Network.Network(), s.cfg.Address)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conn = conn
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

	buf := make([]byte, libsck.DefaultBufferSize)
	for {
		n, remote, err := conn.ReadFrom(buf)
		if err != nil {
			if e := libsck.ErrorFilter(err); e != nil {
				s.fireError(e)
			}
			return nil
		}

		p := s.peerFor(ctx, conn, remote)
		p.push(buf[:n])
	}
}

// peerFor returns the peerConn for remote, creating and dispatching it on first sight.
func (s *srv) peerFor(ctx context.Context, conn net.PacketConn, remote net.Addr) *peerConn {
	key := remote.String()

	s.mu.Lock()
	p, ok := s.peers[key]
	if !ok {
		p = newPeerConn(conn, s.conn.LocalAddr(), remote)
		s.peers[key] = p
		s.mu.Unlock()

		s.open.Add(1)
		s.fireInfo(p.LocalAddr(), remote, libsck.ConnectionNew)
		if s.upd != nil {
			s.upd(p)
		}

		s.wg.Add(1)
		go s.serve(ctx, key, p)

		return p
	}
	s.mu.Unlock()
	return p
}

func (s *srv) serve(ctx context.Context, key string, p *peerConn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.peers, key)
		s.mu.Unlock()
		s.open.Add(-1)
	}()

	local, remote := p.LocalAddr(), p.RemoteAddr()
	c := libsck.NewContext(ctx, p)

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
	conn := s.conn
	peers := make([]*peerConn, 0, len(s.peers))
	for _, p := range s.peers {
		peers = append(peers, p)
	}
	s.mu.Unlock()

	s.running.Store(false)
	s.gone.Store(true)

	for _, p := range peers {
		_ = p.Close()
	}

	if conn == nil {
		return nil
	}
	return libsck.ErrorFilter(conn.Close())
}

func (s *srv) IsRunning() bool {
	return s.running.Load()
}

func (s *srv) IsGone() bool {
	return s.gone.Load()
}

func (s *srv) OpenConnections() int64 {
	return s.open.Load()
}

func (s *srv) Listener() (net.Listener, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, s.cfg.Address, nil
	}
	return nil, s.conn.LocalAddr().String(), nil
}

// peerConn adapts one UDP peer's datagrams, read from the server's shared PacketConn,
// into a net.Conn so it can be driven through the same socket.Context as a TCP connection.
type peerConn struct {
	shared net.PacketConn
	local  net.Addr
	remote net.Addr

	in     chan []byte
	closed atomic.Bool
}

func newPeerConn(shared net.PacketConn, local, remote net.Addr) *peerConn {
	return &peerConn{shared: shared, local: local, remote: remote, in: make(chan []byte, 64)}
}

// push enqueues a datagram payload read from the shared socket for this peer.
func (p *peerConn) push(b []byte) {
	if p.closed.Load() {
		return
	}
	cp := make([]byte, len(b))
	copy(cp, b)

	select {
	case p.in <- cp:
	default:
	}
}

func (p *peerConn) Read(b []byte) (int, error) {
	buf, ok := <-p.in
	if !ok {
		return 0, net.ErrClosed
	}
	return copy(b, buf), nil
}

func (p *peerConn) Write(b []byte) (int, error) {
	return p.shared.WriteTo(b, p.remote)
}

func (p *peerConn) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(p.in)
	return nil
}

func (p *peerConn) LocalAddr() net.Addr  { return p.local }
func (p *peerConn) RemoteAddr() net.Addr { return p.remote }

func (p *peerConn) SetDeadline(t time.Time) error      { return nil }
func (p *peerConn) SetReadDeadline(t time.Time) error   { return nil }
func (p *peerConn) SetWriteDeadline(t time.Time) error  { return nil }
