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

// Package tlsrequest runs a single full request/response exchange against a
// TLS server: address resolution, connect, handshake, an encrypt/decrypt
// pump, a certificate verify callback, and a session cache keyed by
// host:port plus client-certificate fingerprint. A Request is used once:
// build it with New, Submit it, observe it with RegisterFuncReady /
// RegisterFuncError or WaitForFinished, then read Result.
package tlsrequest

import (
	"context"
	"crypto/x509"
	"errors"

	libsck "github.com/nabbar/foundation/socket"
)

// Status is a step in a Request's lifecycle.
type Status uint8

const (
	StatusInitialized Status = iota
	StatusSubmitted
	StatusFinished
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "Initialized"
	case StatusSubmitted:
		return "Submitted"
	case StatusFinished:
		return "Finished"
	case StatusError:
		return "Error"
	default:
		return "unknown status"
	}
}

// ErrAlreadySubmitted is returned by Submit when called more than once.
var ErrAlreadySubmitted = errors.New("tlsrequest: request already submitted")

// ErrCertRejected is recorded as the request's error when a VerifyFunc rejects
// a certificate in the chain.
var ErrCertRejected = errors.New("tlsrequest: certificate verification rejected by caller")

// ErrNoEndpoint is recorded when address resolution finds no usable endpoint.
var ErrNoEndpoint = errors.New("tlsrequest: no usable endpoint for host")

// VerifyFunc inspects one certificate at depth in the chain presented by the
// server (depth 0 is the leaf). Returning false rejects the certificate and
// fails the handshake. Absence of a VerifyFunc means "accept whatever the
// standard library's own chain verification accepted" (ordinary CA-rooted
// verification); supplying one switches to trust-on-first-use style callback
// verification for the whole chain.
type VerifyFunc func(r Request, cert *x509.Certificate, depth int) bool

// FuncReady is notified with newly decrypted plaintext once per pump
// iteration that produced data, always from the request's own worker
// goroutine so callbacks for a single request never interleave.
type FuncReady func(data []byte)

// Request is a single submit/cancel/wait TLS request/response exchange.
type Request interface {
	// Submit starts asynchronous resolution, connect, and handshake on a new
	// goroutine. Returns ErrAlreadySubmitted if called more than once.
	Submit(ctx context.Context) error

	// Cancel transitions a Submitted request to Error, closes the
	// connection if one is open, and releases any blocked WaitForFinished.
	Cancel()

	// WaitForFinished blocks until the request reaches Finished or Error, or
	// ctx is done first.
	WaitForFinished(ctx context.Context) error

	// Status reports the current lifecycle step.
	Status() Status

	// Err returns the error that moved the request to Error, nil otherwise.
	Err() error

	// Result returns a copy of the plaintext accumulated so far.
	Result() []byte

	// ServerCertificate returns the leaf certificate observed during the
	// handshake, nil if none has been observed yet.
	ServerCertificate() *x509.Certificate

	// RejectedCertificate returns the first certificate a VerifyFunc
	// rejected, nil if none was rejected.
	RejectedCertificate() *x509.Certificate

	// CertVerifyFailed reports whether a VerifyFunc rejected a certificate.
	CertVerifyFailed() bool

	// SessionReused reports whether the handshake resumed a cached session.
	SessionReused() bool

	// RegisterFuncError registers the callback invoked when the request
	// transitions to Error.
	RegisterFuncError(f libsck.FuncError)

	// RegisterFuncReady registers the callback invoked with newly decrypted
	// plaintext.
	RegisterFuncReady(f FuncReady)
}
