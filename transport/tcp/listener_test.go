package tcp

import (
	"context"
	"net"

	"cc-curl/transport"

	"github.com/pkg/errors"
)

// listen opens a local peer for [Dialer].
func listen(ctx context.Context, addr string) (*listener, error) {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, string(transport.TCP), addr)
	if err != nil {
		return nil, errors.Wrap(err, "listening")
	}
	return &listener{l: l}, nil
}

type listener struct{ l net.Listener }

var _ transport.ConnListener = (*listener)(nil)

func (l *listener) Addr() Addr { return addrOf(l.l.Addr()) }

func (l *listener) Accept(ctx context.Context) (transport.Conn, error) {
	type result struct {
		c   net.Conn
		err error
	}
	ch := make(chan result, 1)
	go func() {
		c, err := l.l.Accept()
		ch <- result{c, err}
	}()

	select {
	case <-ctx.Done():
		// Accept returns once the listener is closed.
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, net.ErrClosed) {
				return nil, transport.ErrConnListenerClosed
			}
			return nil, r.err
		}
		return newConn(r.c), nil
	}
}

func (l *listener) Close() error { return l.l.Close() }
