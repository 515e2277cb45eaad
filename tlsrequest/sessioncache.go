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
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"sync"
	"time"
)

// sessionTTL is the maximum age of a cached session before it is evicted,
// per spec.md §4.8.2.
const sessionTTL = 10 * time.Minute

// sessionStore is the process-wide session cache. Entries are scoped by a
// key that already embeds the host:port and the client-certificate
// fingerprint (see sessionCacheKey), so a plain map lookup enforces the
// "never reuse a session across client identities" rule without extra
// comparison logic on the hot path.
type sessionStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]storedSession
}

type storedSession struct {
	state *tls.ClientSessionState
	at    time.Time
}

var globalSessions = newSessionStore(sessionTTL)

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{ttl: ttl, m: make(map[string]storedSession)}
}

func (s *sessionStore) get(key string) (*tls.ClientSessionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()

	e, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return e.state, true
}

func (s *sessionStore) put(key string, cs *tls.ClientSessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	s.m[key] = storedSession{state: cs, at: time.Now()}
}

func (s *sessionStore) evictLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for k, e := range s.m {
		if e.at.Before(cutoff) {
			delete(s.m, k)
		}
	}
}

// sessionCacheKey builds the cache bucket for a host:port, scoped by the
// SHA-256 fingerprint of the client certificate used (or the fingerprint of
// an empty block when no client certificate was supplied).
func sessionCacheKey(host, port string, fingerprint [32]byte) string {
	return host + ":" + port + "|" + hex.EncodeToString(fingerprint[:])
}

func fingerprintOf(cert *tls.Certificate) [32]byte {
	if cert == nil || len(cert.Certificate) == 0 {
		return sha256.Sum256(nil)
	}
	return sha256.Sum256(cert.Certificate[0])
}

// sessionCacheView adapts the shared sessionStore to tls.ClientSessionCache
// for one request: Get/Put always address the single bucket this request was
// built with, ignoring the sessionKey crypto/tls computes internally (which
// is already effectively scoped by ServerName).
type sessionCacheView struct {
	store *sessionStore
	key   string
}

func (v *sessionCacheView) Get(_ string) (*tls.ClientSessionState, bool) {
	return v.store.get(v.key)
}

func (v *sessionCacheView) Put(_ string, cs *tls.ClientSessionState) {
	if cs == nil {
		return
	}
	v.store.put(v.key, cs)
}
