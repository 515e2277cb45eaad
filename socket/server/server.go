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

// Package server dispatches a socket/config.Server to the protocol-specific
// implementation (socket/server/tcp or socket/server/udp) selected by its
// Network field.
package server

import (
	libsck "github.com/nabbar/foundation/socket"
	sckcfg "github.com/nabbar/foundation/socket/config"
	scktcp "github.com/nabbar/foundation/socket/server/tcp"
	sckudp "github.com/nabbar/foundation/socket/server/udp"
)

// New builds a libsck.Server for cfg.Network, bound to cfg.Address, dispatching
// accepted connections to hdl. upd, if non-nil, customizes each connection before
// I/O begins.
func New(upd libsck.UpdateConn, hdl libsck.HandlerFunc, cfg sckcfg.Server) (libsck.Server, error) {
	switch {
	case cfg.Network.IsTCP():
		return scktcp.New(upd, hdl, cfg)
	case cfg.Network.IsUDP():
		return sckudp.New(upd, hdl, cfg)
	default:
		return nil, sckcfg.ErrInvalidProtocol
	}
}
