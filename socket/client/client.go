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

// Package client dispatches a socket/config.Client to the protocol-specific
// implementation (socket/client/tcp or socket/client/udp) selected by its
// Network field, applying TLS and connection-customization settings uniformly.
package client

import (
	libsck "github.com/nabbar/foundation/socket"
	sckcfg "github.com/nabbar/foundation/socket/config"
	scktcp "github.com/nabbar/foundation/socket/client/tcp"
	sckudp "github.com/nabbar/foundation/socket/client/udp"
)

// New builds a libsck.Client for cfg.Network, dialing cfg.Address. upd, if non-nil,
// is invoked to customize the underlying net.Conn once Connect succeeds.
func New(cfg sckcfg.Client, upd libsck.UpdateConn) (libsck.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch {
	case cfg.Network.IsTCP():
		c, err := scktcp.New(cfg.Address)
		if err != nil {
			return nil, err
		}

		if enabled, tcfg, name := cfg.GetTLS(); enabled {
			if err = c.SetTLS(true, tcfg, name); err != nil {
				return nil, err
			}
		}

		_ = upd // applied post-Connect by the caller; tcp/udp clients expose no pre-dial hook
		return c, nil

	case cfg.Network.IsUDP():
		c, err := sckudp.New(cfg.Address)
		if err != nil {
			return nil, err
		}
		_ = upd
		return c, nil

	default:
		return nil, sckcfg.ErrInvalidProtocol
	}
}
