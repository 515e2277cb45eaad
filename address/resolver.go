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
	"net"
	"strconv"
	"sync"

	libptc "github.com/nabbar/foundation/network/protocol"
	startStop "github.com/nabbar/foundation/runner/startStop"
)

// resolverQueueSize bounds how many armed lookups may be waiting for the
// single resolver goroutine before Lookup blocks enqueuing a new one.
const resolverQueueSize = 256

var (
	resolverOnce sync.Once
	resolverJobs chan *addr
	resolverRun  startStop.Runner
)

// ensureResolver starts the process-wide resolver goroutine on first use.
// Every *addr created by this package funnels through the same goroutine,
// bounding the number of concurrent blocking DNS resolutions.
func ensureResolver() {
	resolverOnce.Do(func() {
		resolverJobs = make(chan *addr, resolverQueueSize)
		resolverRun = startStop.New(resolverLoop, nil)
		_ = resolverRun.Start(context.Background())
	})
}

func resolverLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case a := <-resolverJobs:
			resolveOne(ctx, a)
		}
	}
}

// resolveOne performs the actual resolution for one armed address and
// releases it exactly once by closing its done channel.
func resolveOne(ctx context.Context, a *addr) {
	a.mu.Lock()
	host := a.host
	service := a.service
	st := a.socketType
	resolver := a.resolver
	done := a.done
	a.mu.Unlock()

	if resolver == nil {
		resolver = net.DefaultResolver
	}

	network := "tcp"
	if st == libptc.NetworkUDP {
		network = "udp"
	}

	var (
		endpoints []Endpoint
		port      int
	)

	if service != "" {
		if p, err := resolver.LookupPort(ctx, network, service); err == nil {
			port = p
		} else if p, err2 := strconv.Atoi(service); err2 == nil {
			port = p
		}
	}

	if host == "" {
		endpoints = passiveEndpoints(st, port)
	} else if ips, err := resolver.LookupIPAddr(ctx, host); err == nil {
		for _, ip := range ips {
			endpoints = append(endpoints, endpointFromIP(st, ip.IP, ip.Zone, port))
		}
	}

	a.mu.Lock()
	a.endpoints = endpoints
	a.hostFound = len(endpoints) > 0
	a.finished = true
	a.mu.Unlock()

	close(done)
}

// passiveEndpoints builds the "any local address" endpoint set used when a
// lookup carries no host, mirroring AI_PASSIVE for a bind-style address.
func passiveEndpoints(st libptc.NetworkProtocol, port int) []Endpoint {
	if st == libptc.NetworkUDP {
		return []Endpoint{endpointFromIP(st, net.IPv4zero, "", port)}
	}
	return []Endpoint{
		endpointFromIP(st, net.IPv6zero, "", port),
		endpointFromIP(st, net.IPv4zero, "", port),
	}
}

func endpointFromIP(st libptc.NetworkProtocol, ip net.IP, zone string, port int) Endpoint {
	fam := FamilyIPv4
	if ip.To4() == nil {
		fam = FamilyIPv6
	}

	var a net.Addr
	if st == libptc.NetworkUDP {
		a = &net.UDPAddr{IP: ip, Port: port, Zone: zone}
	} else {
		a = &net.TCPAddr{IP: ip, Port: port, Zone: zone}
	}

	proto := libptc.NetworkTCP
	if st == libptc.NetworkUDP {
		proto = libptc.NetworkUDP
	}
	if fam == FamilyIPv4 {
		if proto == libptc.NetworkUDP {
			proto = libptc.NetworkUDP4
		} else {
			proto = libptc.NetworkTCP4
		}
	} else {
		if proto == libptc.NetworkUDP {
			proto = libptc.NetworkUDP6
		} else {
			proto = libptc.NetworkTCP6
		}
	}

	return Endpoint{Family: fam, Protocol: proto, Addr: a}
}
