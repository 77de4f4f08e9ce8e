// Package tcp dials Transmission Control Protocol (TCP) streams through the operating system.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9293
package tcp

import (
	"context"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"cc-curl/transport"

	"github.com/pkg/errors"
)

type Addr struct {
	host string
	port uint16
}

var _ transport.Addr = Addr{}

// NewAddr accepts a reg-name, an IPv4 address or a bracketed IPv6 literal.
func NewAddr(host string, port uint16) Addr {
	return Addr{host: strings.TrimSuffix(strings.TrimPrefix(host, "["), "]"), port: port}
}

func (a Addr) Host() string                  { return a.host }
func (a Addr) Port() uint16                  { return a.port }
func (a Addr) Protocol() transport.Protocol { return transport.TCP }

func (a Addr) String() string {
	return net.JoinHostPort(a.host, strconv.FormatUint(uint64(a.port), 10))
}

type Dialer struct {
	d net.Dialer
}

var _ transport.ConnDialer = (*Dialer)(nil)

func NewDialer() *Dialer {
	return &Dialer{}
}

func (d *Dialer) Dial(ctx context.Context, addr transport.Addr) (transport.Conn, error) {
	if addr.Protocol() != transport.TCP {
		return nil, &transport.OpError{
			Op: transport.OpDial, Addr: addr,
			Err: errors.Errorf("unsupported protocol: %s", addr.Protocol()),
		}
	}

	c, err := d.d.DialContext(ctx, string(transport.TCP), addr.String())
	if err != nil {
		return nil, &transport.OpError{Op: transport.OpDial, Addr: addr, Err: err}
	}

	return newConn(c), nil
}

type conn struct {
	c net.Conn

	local, remote Addr
}

var _ transport.Conn = (*conn)(nil)

func newConn(c net.Conn) *conn {
	return &conn{c: c, local: addrOf(c.LocalAddr()), remote: addrOf(c.RemoteAddr())}
}

func addrOf(a net.Addr) Addr {
	host, port, err := net.SplitHostPort(a.String())
	if err != nil {
		return Addr{host: a.String()}
	}
	p, _ := strconv.ParseUint(port, 10, 16)
	return Addr{host: host, port: uint16(p)}
}

func (c *conn) LocalAddr() transport.Addr  { return c.local }
func (c *conn) RemoteAddr() transport.Addr { return c.remote }

func (c *conn) Read(p []byte) (int, error) {
	n, err := c.c.Read(p)
	return n, convertErr(err)
}

func (c *conn) Write(p []byte) (int, error) {
	n, err := c.c.Write(p)
	return n, convertErr(err)
}

func (c *conn) Close() error {
	if err := c.c.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func (c *conn) SetReadDeadLine(t time.Time)  { _ = c.c.SetReadDeadline(t) }
func (c *conn) SetWriteDeadLine(t time.Time) { _ = c.c.SetWriteDeadline(t) }

// convertErr maps net errors into the errors [transport.Conn] promises.
func convertErr(err error) error {
	switch {
	case err == nil, err == io.EOF:
		return err
	case errors.Is(err, os.ErrDeadlineExceeded):
		return transport.ErrDeadLineExceeded
	case errors.Is(err, net.ErrClosed):
		return transport.ErrConnClosed
	}
	return err
}
