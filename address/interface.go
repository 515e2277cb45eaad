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

// Package address provides asynchronous host/service resolution on top of a
// single, lazily-started background resolver goroutine shared by every lookup
// in the process. A lookup is armed with New (or the Broadcast/FromRawSockAddr
// shortcuts, which complete synchronously), then observed with WaitForFinished
// or polled with IsFinished.
package address

import (
	"context"
	"net"

	libptc "github.com/nabbar/foundation/network/protocol"
)

// Family identifies the IP family an Endpoint was resolved into.
type Family uint8

const (
	FamilyUnspecified Family = iota
	FamilyIPv4
	FamilyIPv6
)

// String renders the family as the suffix net.Dial would accept ("4"/"6"/"").
func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "4"
	case FamilyIPv6:
		return "6"
	default:
		return ""
	}
}

// ToStringFlag controls ToString's rendering.
type ToStringFlag uint8

const (
	// ToStringDefault renders "host:port" ("[host]:port" for IPv6).
	ToStringDefault ToStringFlag = iota
	// ToStringNoPort omits the ":port" suffix.
	ToStringNoPort
)

// Endpoint is one resolved socket address: the network/protocol pair the
// socket must be created with, plus the concrete net.Addr to dial or bind.
type Endpoint struct {
	Family   Family
	Protocol libptc.NetworkProtocol
	Addr     net.Addr
}

// raw returns the tuple used for equality: family, protocol, and the textual
// sockaddr. Go does not expose raw struct sockaddr bytes, so the textual
// rendering of net.Addr (host, port, zone) stands in for them.
func (e Endpoint) raw() (Family, libptc.NetworkProtocol, string) {
	s := ""
	if e.Addr != nil {
		s = e.Addr.Network() + ":" + e.Addr.String()
	}
	return e.Family, e.Protocol, s
}

// Address represents a (possibly still-resolving) set of endpoints for a
// host/service/socket-type triple.
type Address interface {
	// Lookup (re-)arms asynchronous resolution: discards any prior result,
	// marks the address as not finished, and enqueues it on the shared
	// resolver goroutine, starting that goroutine lazily on first use.
	Lookup(ctx context.Context) error

	// WaitForFinished blocks until the armed lookup completes or ctx is done.
	WaitForFinished(ctx context.Context) error

	// IsFinished reports whether the last armed lookup has completed.
	IsFinished() bool

	// IsHostFound reports whether the last completed lookup produced at
	// least one endpoint.
	IsHostFound() bool

	// Endpoints returns a copy of the resolved endpoint list.
	Endpoints() []Endpoint

	// SocketParameters yields the (family, protocol) pair of endpoint index,
	// or ok=false if index is out of range.
	SocketParameters(index int) (fam Family, proto libptc.NetworkProtocol, ok bool)

	// SocketParametersFamily returns the first endpoint matching fam, or
	// ok=false if none matches.
	SocketParametersFamily(fam Family) (ep Endpoint, ok bool)

	// ToString formats the address for the given family (FamilyUnspecified
	// picks the first endpoint of either family).
	ToString(flag ToStringFlag, fam Family) string

	// HostName returns the hostname this address was looked up with, or a
	// numeric-host rendering of the first endpoint when none was given.
	HostName() string

	// Equal reports whether this address and other share at least one
	// endpoint with an identical (family, protocol, sockaddr) tuple.
	Equal(other Address) bool
}
