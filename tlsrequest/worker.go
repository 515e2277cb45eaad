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
	"errors"
	"fmt"
	"io"
	"net"

	libadr "github.com/nabbar/foundation/address"
	libptc "github.com/nabbar/foundation/network/protocol"
)

const readChunkSize = 8 * 1024

// run performs address resolution, connect, TLS handshake, the plaintext
// write, and the decrypt/accumulate read loop, per spec.md §4.8.1/§4.8.4.
func (r *req) run(ctx context.Context) {
	defer close(r.done)

	ep, err := r.resolve(ctx)
	if err != nil {
		r.fail(err)
		return
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", ep.Addr.String())
	if err != nil {
		r.fail(err)
		return
	}

	r.mu.Lock()
	r.netConn = conn
	r.mu.Unlock()

	fp := fingerprintOf(r.clientCert)
	key := sessionCacheKey(r.host, r.port, fp)
	cfg := r.buildTLSConfig(key)

	tconn := tls.Client(conn, cfg)

	r.mu.Lock()
	r.netConn = tconn
	r.mu.Unlock()

	if err = tconn.HandshakeContext(ctx); err != nil {
		_ = tconn.Close()
		r.fail(fmt.Errorf("TLS/SSL handshake failed: %w", err))
		return
	}

	cs := tconn.ConnectionState()
	r.mu.Lock()
	r.sessionReused = cs.DidResume
	r.mu.Unlock()

	if len(r.content) > 0 {
		if _, err = tconn.Write(r.content); err != nil {
			_ = tconn.Close()
			r.fail(fmt.Errorf("failure to encrypt data: %w", err))
			return
		}
	}

	r.pump(ctx, tconn)
}

// resolve arms and waits for an Address lookup on host:port, then returns
// the first usable endpoint, preferring IPv4 (spec.md's datagram/broadcast
// layers assume v4, and this keeps dial behavior deterministic).
func (r *req) resolve(ctx context.Context) (libadr.Endpoint, error) {
	a := libadr.New(r.host, r.port, libptc.NetworkTCP)

	if err := a.WaitForFinished(ctx); err != nil {
		return libadr.Endpoint{}, err
	}
	if !a.IsHostFound() {
		return libadr.Endpoint{}, fmt.Errorf("tlsrequest: host %q not found", r.host)
	}

	if ep, ok := a.SocketParametersFamily(libadr.FamilyIPv4); ok {
		return ep, nil
	}
	if ep, ok := a.SocketParametersFamily(libadr.FamilyIPv6); ok {
		return ep, nil
	}
	return libadr.Endpoint{}, ErrNoEndpoint
}

// pump reads decrypted plaintext until the peer closes cleanly or an error
// occurs, accumulating it into the result buffer and notifying FuncReady
// once per iteration that produced data.
func (r *req) pump(ctx context.Context, tconn *tls.Conn) {
	buf := make([]byte, readChunkSize)

	for {
		select {
		case <-ctx.Done():
			_ = tconn.Close()
			r.fail(ctx.Err())
			return
		default:
		}

		n, err := tconn.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)

			r.mu.Lock()
			r.result = append(r.result, chunk...)
			r.mu.Unlock()

			r.fireReady(chunk)
		}

		if err != nil {
			_ = tconn.Close()
			if errors.Is(err, io.EOF) {
				r.finish()
				return
			}
			r.fail(err)
			return
		}
	}
}

func (r *req) finish() {
	r.mu.Lock()
	if r.status != StatusSubmitted {
		r.mu.Unlock()
		return
	}
	r.status = StatusFinished
	r.mu.Unlock()
}

func (r *req) fail(err error) {
	r.mu.Lock()
	if r.status == StatusFinished || (r.status == StatusError && r.err != nil) {
		r.mu.Unlock()
		return
	}
	r.status = StatusError
	r.err = err
	r.mu.Unlock()

	r.fireError(err)
}

// buildTLSConfig assembles the *tls.Config for this request: trust store
// from the optional certificates.TLSConfig, client certificate, SNI (only
// for domain hostnames, not IPv6 literals), the fingerprint-scoped session
// cache, and the certificate verify callback.
func (r *req) buildTLSConfig(cacheKey string) *tls.Config {
	var cfg *tls.Config
	if r.tlsCfg != nil {
		cfg = r.tlsCfg.TlsConfig(r.serverName())
	} else {
		cfg = &tls.Config{ServerName: r.serverName()}
	}

	if r.clientCert != nil {
		cfg.Certificates = append(append([]tls.Certificate(nil), cfg.Certificates...), *r.clientCert)
	}

	cfg.ClientSessionCache = &sessionCacheView{store: globalSessions, key: cacheKey}

	userFn := r.verifyFn
	cfg.InsecureSkipVerify = userFn != nil
	cfg.VerifyConnection = r.buildVerify(userFn)

	return cfg
}

// serverName returns the SNI hostname, empty for an IP literal (bracketed
// IPv6 or plain IPv4/IPv6 address), per spec.md §4.8.1.
func (r *req) serverName() string {
	if net.ParseIP(r.host) != nil {
		return ""
	}
	return r.host
}

// buildVerify implements spec.md §4.8.5: accept whatever the standard
// library's own verification already accepted; otherwise, when a VerifyFunc
// was supplied, offer every certificate in the chain to it in order and
// reject on the first refusal.
func (r *req) buildVerify(userFn VerifyFunc) func(tls.ConnectionState) error {
	return func(cs tls.ConnectionState) error {
		if len(cs.PeerCertificates) == 0 {
			return errors.New("tlsrequest: no peer certificate presented")
		}

		r.mu.Lock()
		r.serverCert = cs.PeerCertificates[0]
		r.mu.Unlock()

		if len(cs.VerifiedChains) > 0 {
			return nil
		}

		if userFn == nil {
			return nil
		}

		for depth, cert := range cs.PeerCertificates {
			if userFn(r, cert, depth) {
				continue
			}

			r.mu.Lock()
			if r.rejectedCert == nil {
				r.rejectedCert = cert
			}
			r.certVerifyFailed = true
			r.mu.Unlock()

			return ErrCertRejected
		}

		return nil
	}
}
