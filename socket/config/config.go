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

// Package config holds the validated configuration structures consumed by the
// socket/client and socket/server factories: network/address pair, optional TLS,
// and Unix-domain-socket file ownership for servers.
package config

import (
	"crypto/tls"
	"errors"
	"net"
	"runtime"
	"time"

	libtls "github.com/nabbar/foundation/certificates"
	libprm "github.com/nabbar/foundation/file/perm"
	libptc "github.com/nabbar/foundation/network/protocol"
)

// MaxGID is the largest Unix group id accepted by Server.GroupPerm.
const MaxGID = 32767

var (
	ErrInvalidProtocol  = errors.New("socket/config: invalid protocol")
	ErrInvalidTLSConfig = errors.New("socket/config: invalid TLS config")
	ErrInvalidGroup     = errors.New("socket/config: invalid unix group")
)

// TLSClient carries client-side TLS activation: whether to wrap the connection
// in TLS, which certificate/cipher policy to apply, and the server name used
// both for SNI and certificate hostname verification.
type TLSClient struct {
	Enabled    bool           `mapstructure:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`
	Config     libtls.Config  `mapstructure:"config" json:"config" yaml:"config" toml:"config"`
	ServerName string         `mapstructure:"serverName" json:"serverName" yaml:"serverName" toml:"serverName"`
	defTLS     libtls.TLSConfig
}

// DefaultTLS registers a fallback TLSConfig used when Config.InheritDefault is set.
func (t *TLSClient) DefaultTLS(def libtls.TLSConfig) {
	t.defTLS = def
}

// GetTLS reports whether TLS is enabled and returns the resolved *tls.Config and server name.
func (t TLSClient) GetTLS() (bool, *tls.Config, string) {
	if !t.Enabled {
		return false, nil, ""
	}

	var cfg libtls.TLSConfig
	if t.defTLS != nil {
		cfg = t.Config.NewFrom(t.defTLS)
	} else {
		cfg = t.Config.New()
	}

	return true, cfg.TLS(t.ServerName), t.ServerName
}

// Client describes a socket client endpoint: network protocol, remote address, and optional TLS.
type Client struct {
	Network libptc.NetworkProtocol `mapstructure:"network" json:"network" yaml:"network" toml:"network"`
	Address string                 `mapstructure:"address" json:"address" yaml:"address" toml:"address"`
	TLS     TLSClient              `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`
}

// DefaultTLS registers a fallback TLSConfig for the client's TLS section.
func (c *Client) DefaultTLS(def libtls.TLSConfig) {
	c.TLS.DefaultTLS(def)
}

// GetTLS reports whether the client's TLS is enabled and returns its resolved config.
func (c Client) GetTLS() (bool, *tls.Config, string) {
	return c.TLS.GetTLS()
}

// Validate checks the protocol/address pair resolves, and that TLS is only requested for
// stream (TCP) protocols and carries a server name.
func (c Client) Validate() error {
	if !c.Network.IsTCP() && !c.Network.IsUDP() && !c.Network.IsUnix() {
		return ErrInvalidProtocol
	}

	if c.Network.IsUnix() && runtime.GOOS == "windows" {
		return ErrInvalidProtocol
	}

	if err := validateAddress(c.Network, c.Address); err != nil {
		return err
	}

	if c.TLS.Enabled {
		if !c.Network.IsTCP() {
			return ErrInvalidTLSConfig
		}
		if c.TLS.ServerName == "" {
			return ErrInvalidTLSConfig
		}
	}

	return nil
}

// TLSServer carries server-side TLS activation and certificate policy.
type TLSServer struct {
	Enabled bool          `mapstructure:"enabled" json:"enabled" yaml:"enabled" toml:"enabled"`
	Config  libtls.Config `mapstructure:"config" json:"config" yaml:"config" toml:"config"`
	defTLS  libtls.TLSConfig
}

// DefaultTLS registers a fallback TLSConfig used when Config.InheritDefault is set.
func (t *TLSServer) DefaultTLS(def libtls.TLSConfig) {
	t.defTLS = def
}

// GetTLS reports whether TLS is enabled and returns the resolved *tls.Config.
func (t TLSServer) GetTLS() (bool, *tls.Config) {
	if !t.Enabled {
		return false, nil
	}

	var cfg libtls.TLSConfig
	if t.defTLS != nil {
		cfg = t.Config.NewFrom(t.defTLS)
	} else {
		cfg = t.Config.New()
	}

	return true, cfg.TLS("")
}

// Server describes a listening socket: network protocol, bind address, optional TLS,
// Unix-domain-socket file ownership, and idle connection timeout.
type Server struct {
	Network        libptc.NetworkProtocol `mapstructure:"network" json:"network" yaml:"network" toml:"network"`
	Address        string                 `mapstructure:"address" json:"address" yaml:"address" toml:"address"`
	PermFile       libprm.Perm            `mapstructure:"permFile" json:"permFile" yaml:"permFile" toml:"permFile"`
	GroupPerm      int32                  `mapstructure:"groupPerm" json:"groupPerm" yaml:"groupPerm" toml:"groupPerm"`
	ConIdleTimeout time.Duration          `mapstructure:"conIdleTimeout" json:"conIdleTimeout" yaml:"conIdleTimeout" toml:"conIdleTimeout"`
	TLS            TLSServer              `mapstructure:"tls" json:"tls" yaml:"tls" toml:"tls"`
}

// DefaultTLS registers a fallback TLSConfig for the server's TLS section.
func (s *Server) DefaultTLS(def libtls.TLSConfig) {
	s.TLS.DefaultTLS(def)
}

// GetTLS reports whether the server's TLS is enabled and returns its resolved config.
func (s Server) GetTLS() (bool, *tls.Config) {
	return s.TLS.GetTLS()
}

// Validate checks the protocol/address pair resolves, and that TLS and unix permission
// fields are only used where meaningful.
func (s Server) Validate() error {
	if !s.Network.IsTCP() && !s.Network.IsUDP() && !s.Network.IsUnix() {
		return ErrInvalidProtocol
	}

	if s.Network.IsUnix() && runtime.GOOS == "windows" {
		return ErrInvalidProtocol
	}

	if err := validateAddress(s.Network, s.Address); err != nil {
		return err
	}

	if s.TLS.Enabled {
		if !s.Network.IsTCP() {
			return ErrInvalidTLSConfig
		}
		if len(s.TLS.Config.Certs) == 0 {
			return ErrInvalidTLSConfig
		}
	}

	if s.GroupPerm < -1 || s.GroupPerm > MaxGID {
		return ErrInvalidGroup
	}

	return nil
}

func validateAddress(n libptc.NetworkProtocol, addr string) error {
	switch {
	case n.IsTCP():
		_, err := net.ResolveTCPAddr(n.Network(), addr)
		return err
	case n.IsUDP():
		_, err := net.ResolveUDPAddr(n.Network(), addr)
		return err
	case n.IsUnix():
		_, err := net.ResolveUnixAddr(n.Network(), addr)
		return err
	default:
		return ErrInvalidProtocol
	}
}
