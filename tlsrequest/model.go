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

package tlsrequest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"sync"
	"sync/atomic"

	libtls "github.com/nabbar/foundation/certificates"
	libsck "github.com/nabbar/foundation/socket"
)

// Option customizes a Request built by New.
type Option func(*req)

// WithTLSConfig supplies the trust-store/cipher/curve/version configuration
// built via the certificates package. Without it, a bare *tls.Config with
// only ServerName set is used.
func WithTLSConfig(cfg libtls.TLSConfig) Option {
	return func(r *req) {
		r.tlsCfg = cfg
	}
}

// WithClientCertificate installs a client certificate for mutual TLS. It
// also scopes the session cache bucket to this certificate's fingerprint.
func WithClientCertificate(cert *tls.Certificate) Option {
	return func(r *req) {
		r.clientCert = cert
	}
}

// WithVerifyFunc installs a certificate verify callback, switching the
// handshake to trust-on-first-use style verification: the standard
// library's own chain verification is skipped and every certificate in the
// chain is instead offered to fn.
func WithVerifyFunc(fn VerifyFunc) Option {
	return func(r *req) {
		r.verifyFn = fn
	}
}

type req struct {
	mu sync.Mutex

	host    string
	port    string
	content []byte

	tlsCfg     libtls.TLSConfig
	clientCert *tls.Certificate
	verifyFn   VerifyFunc

	status Status
	err    error
	result []byte

	serverCert       *x509.Certificate
	rejectedCert     *x509.Certificate
	certVerifyFailed bool
	sessionReused    bool

	netConn netConnCloser
	cancel  context.CancelFunc
	done    chan struct{}

	onReady atomic.Value
	onError atomic.Value
}

// netConnCloser is the minimal surface Cancel needs to unblock a worker
// goroutine stuck in a handshake or read.
type netConnCloser interface {
	Close() error
}

// New builds a Request that will submit content to host:port over TLS once
// Submit is called.
func New(host, port string, content []byte, opts ...Option) Request {
	r := &req{
		host:   host,
		port:   port,
		status: StatusInitialized,
	}
	if len(content) > 0 {
		r.content = append(make([]byte, 0, len(content)), content...)
	}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	return r
}

func (r *req) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *req) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *req) Result() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append(make([]byte, 0, len(r.result)), r.result...)
}

func (r *req) ServerCertificate() *x509.Certificate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.serverCert
}

func (r *req) RejectedCertificate() *x509.Certificate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rejectedCert
}

func (r *req) CertVerifyFailed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.certVerifyFailed
}

func (r *req) SessionReused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionReused
}

func (r *req) RegisterFuncError(f libsck.FuncError) {
	r.onError.Store(f)
}

func (r *req) RegisterFuncReady(f FuncReady) {
	r.onReady.Store(f)
}

func (r *req) fireError(err error) {
	if f, ok := r.onError.Load().(libsck.FuncError); ok && f != nil {
		f(err)
	}
}

func (r *req) fireReady(data []byte) {
	if f, ok := r.onReady.Load().(FuncReady); ok && f != nil {
		f(data)
	}
}
