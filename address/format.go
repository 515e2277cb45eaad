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

package address

import (
	"net"
	"strconv"
)

func (a *addr) ToString(flag ToStringFlag, fam Family) string {
	ep, ok := a.endpointFor(fam)
	if !ok {
		return ""
	}

	host, port := splitHostPort(ep.Addr)
	if flag == ToStringNoPort {
		return hostLiteral(host, ep.Family)
	}

	return net.JoinHostPort(host, strconv.Itoa(port))
}

func (a *addr) HostName() string {
	a.mu.Lock()
	h := a.host
	a.mu.Unlock()

	if h != "" {
		return h
	}

	ep, ok := a.endpointFor(FamilyUnspecified)
	if !ok {
		return ""
	}

	host, _ := splitHostPort(ep.Addr)
	return host
}

// endpointFor returns the first endpoint matching fam, or the first endpoint
// of either family when fam is FamilyUnspecified.
func (a *addr) endpointFor(fam Family) (Endpoint, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if fam == FamilyUnspecified {
		if len(a.endpoints) == 0 {
			return Endpoint{}, false
		}
		return a.endpoints[0], true
	}

	for _, e := range a.endpoints {
		if e.Family == fam {
			return e, true
		}
	}
	return Endpoint{}, false
}

func splitHostPort(a net.Addr) (string, int) {
	switch t := a.(type) {
	case *net.TCPAddr:
		return t.IP.String(), t.Port
	case *net.UDPAddr:
		return t.IP.String(), t.Port
	case *net.IPAddr:
		return t.IP.String(), 0
	default:
		return a.String(), 0
	}
}

// hostLiteral brackets an IPv6 literal the way net.JoinHostPort would, for
// the no-port rendering.
func hostLiteral(host string, fam Family) string {
	if fam == FamilyIPv6 {
		return "[" + host + "]"
	}
	return host
}
