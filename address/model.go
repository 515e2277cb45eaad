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
	"context"
	"errors"
	"net"
	"strconv"
	"sync"

	libptc "github.com/nabbar/foundation/network/protocol"
)

// ErrClosed is returned by WaitForFinished when ctx is done before the armed
// lookup completes.
var ErrClosed = errors.New("address: wait canceled before lookup finished")

type addr struct {
	mu sync.Mutex

	host       string
	service    string
	socketType libptc.NetworkProtocol
	resolver   *net.Resolver

	endpoints []Endpoint
	finished  bool
	hostFound bool
	done      chan struct{}
}

// New builds an Address for host/service under socketType (NetworkTCP or
// NetworkUDP) and immediately arms it, as spec.md's lookup does. host and
// service may each be empty. Arming is handed to the resolver queue from a
// background goroutine so a momentarily full queue never blocks the
// constructor itself; callers observe the same effect through
// WaitForFinished/IsFinished regardless.
func New(host, service string, socketType libptc.NetworkProtocol) Address {
	a := &addr{
		host:       host,
		service:    service,
		socketType: socketType,
		done:       make(chan struct{}),
	}
	go func() { _ = a.Lookup(context.Background()) }()
	return a
}

// NewResolver is New, but resolving through resolver instead of
// net.DefaultResolver.
func NewResolver(host, service string, socketType libptc.NetworkProtocol, resolver *net.Resolver) Address {
	a := &addr{
		host:       host,
		service:    service,
		socketType: socketType,
		resolver:   resolver,
		done:       make(chan struct{}),
	}
	go func() { _ = a.Lookup(context.Background()) }()
	return a
}

// Broadcast builds the already-finished UDP broadcast address 255.255.255.255:port.
func Broadcast(port uint16) Address {
	return &addr{
		socketType: libptc.NetworkUDP,
		finished:   true,
		hostFound:  true,
		done:       closedChan(),
		endpoints: []Endpoint{{
			Family:   FamilyIPv4,
			Protocol: libptc.NetworkUDP4,
			Addr:     &net.UDPAddr{IP: net.IPv4bcast, Port: int(port)},
		}},
	}
}

// FromRawSockAddr builds an already-finished, single-endpoint Address from a
// resolved net.Addr, without going through the resolver.
func FromRawSockAddr(a net.Addr) Address {
	fam, proto, host, port := classify(a)

	st := libptc.NetworkTCP
	if proto.IsUDP() {
		st = libptc.NetworkUDP
	}

	o := &addr{
		host:       host,
		service:    strconv.Itoa(port),
		socketType: st,
		finished:   true,
		hostFound:  true,
		done:       closedChan(),
		endpoints:  []Endpoint{{Family: fam, Protocol: proto, Addr: a}},
	}
	return o
}

// NetworkInterfaces enumerates locally-bound addresses, one finished,
// single-endpoint Address per interface address. Platform-dependent; may be
// empty where the platform exposes no interface enumeration.
func NetworkInterfaces() ([]Address, error) {
	ifs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}

	out := make([]Address, 0, len(ifs))
	for _, ifa := range ifs {
		ipn, ok := ifa.(*net.IPNet)
		if !ok {
			continue
		}
		out = append(out, FromRawSockAddr(&net.TCPAddr{IP: ipn.IP}))
	}
	return out, nil
}

func closedChan() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}

// classify derives (family, protocol, host, port) from a resolved net.Addr.
func classify(a net.Addr) (Family, libptc.NetworkProtocol, string, int) {
	var (
		ip   net.IP
		port int
		udp  bool
	)

	switch t := a.(type) {
	case *net.TCPAddr:
		ip, port = t.IP, t.Port
	case *net.UDPAddr:
		ip, port, udp = t.IP, t.Port, true
	case *net.IPAddr:
		ip = t.IP
	}

	fam := FamilyIPv4
	if ip != nil && ip.To4() == nil {
		fam = FamilyIPv6
	}

	var proto libptc.NetworkProtocol
	switch {
	case udp && fam == FamilyIPv4:
		proto = libptc.NetworkUDP4
	case udp:
		proto = libptc.NetworkUDP6
	case fam == FamilyIPv4:
		proto = libptc.NetworkTCP4
	default:
		proto = libptc.NetworkTCP6
	}

	host := ""
	if ip != nil {
		host = ip.String()
	}

	return fam, proto, host, port
}

func (a *addr) Lookup(ctx context.Context) error {
	ensureResolver()

	a.mu.Lock()
	a.finished = false
	a.hostFound = false
	a.endpoints = nil
	a.done = make(chan struct{})
	a.mu.Unlock()

	select {
	case resolverJobs <- a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *addr) WaitForFinished(ctx context.Context) error {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ErrClosed
	}
}

func (a *addr) IsFinished() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.finished
}

func (a *addr) IsHostFound() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hostFound
}

func (a *addr) Endpoints() []Endpoint {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append(make([]Endpoint, 0, len(a.endpoints)), a.endpoints...)
}

func (a *addr) SocketParameters(index int) (Family, libptc.NetworkProtocol, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.endpoints) {
		return FamilyUnspecified, libptc.NetworkEmpty, false
	}
	e := a.endpoints[index]
	return e.Family, e.Protocol, true
}

func (a *addr) SocketParametersFamily(fam Family) (Endpoint, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.endpoints {
		if e.Family == fam {
			return e, true
		}
	}
	return Endpoint{}, false
}
