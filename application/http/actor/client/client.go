// Package client sends a single request per connection and frames the response.
package client

import (
	"context"
	"log/slog"

	"cc-curl/application/http"
	iolib "cc-curl/lib/io"
	"cc-curl/transport"
	"cc-curl/transport/tcp"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

type Client struct {
	opts Options

	logger  *slog.Logger
	clock   clock.Clock
	metrics *Metrics

	connDialer transport.ConnDialer

	combineAddr CombineAddrFunc
}

type CombineAddrFunc func(host string, port uint16) transport.Addr

func New(
	d transport.ConnDialer,
	logger *slog.Logger,
	clock clock.Clock,
	opts Options,
) *Client {
	return &Client{
		connDialer: d,
		logger:     logger,
		clock:      clock,
		opts:       opts,
		metrics:    NewMetrics(),
		combineAddr: func(host string, port uint16) transport.Addr {
			return tcp.NewAddr(host, port)
		},
	}
}

func (c *Client) Metrics() *Metrics { return c.metrics }

// Send dials the request's host, writes the request, reads until the server
// closes the connection and frames what was read.
//
// Failures of the connection are returned as [*transport.OpError],
// a response without an empty line as [*http.FramingError].
func (c *Client) Send(ctx context.Context, request *http.Request) (_ http.Frame, err error) {
	start := c.clock.Now()
	o := outcomeSuccess
	defer func() {
		c.metrics.observe(o, c.clock.Since(start))
	}()

	if total := c.opts.Timeout.Total; total > 0 {
		var cancel context.CancelFunc
		ctx, cancel = c.clock.WithTimeout(ctx, total)
		defer cancel()
	}

	addr := c.combineAddr(request.Host(), request.Port())
	logger := c.logger.With("addr", addr)

	logger.Debug("dialing")
	conn, err := c.connDialer.Dial(ctx, addr)
	if err != nil {
		o = outcomeDialError
		if !transport.IsOp(err, transport.OpDial) {
			err = &transport.OpError{Op: transport.OpDial, Addr: addr, Err: err}
		}
		return http.Frame{}, errors.Wrap(err, "dialing")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("error when closing connection", "error", err)
		}
	}()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetWriteDeadLine(deadline)
		conn.SetReadDeadLine(deadline)
	}

	raw := request.Serialize()
	if c.opts.Trace.Request != nil {
		c.opts.Trace.Request(raw)
	}

	n, err := iolib.WriteFull(conn, raw)
	c.metrics.bytesSent.Add(float64(n))
	if err != nil {
		o = outcomeWriteError
		err = &transport.OpError{Op: transport.OpWrite, Addr: addr, Err: err}
		return http.Frame{}, errors.Wrap(err, "writing request")
	}
	logger.Debug("request written", "bytes", n)

	res, err := iolib.ReadAll(conn, c.opts.Receive.MaxResponseSize)
	c.metrics.bytesReceived.Add(float64(len(res)))
	if err != nil {
		o = outcomeReadError
		err = &transport.OpError{Op: transport.OpRead, Addr: addr, Err: err}
		return http.Frame{}, errors.Wrap(err, "reading response")
	}
	logger.Debug("response read", "bytes", len(res))

	if c.opts.Trace.Response != nil {
		c.opts.Trace.Response(res)
	}

	frame, err := http.FrameResponse(res)
	if err != nil {
		o = outcomeFramingError
		return http.Frame{}, errors.Wrap(err, "framing response")
	}

	if sl, err := frame.Status(); err == nil {
		logger.Info("response received", "status", sl.StatusCode, "body_bytes", len(frame.Body))
	} else {
		logger.Warn("response has malformed status line", "error", err)
	}

	return frame, nil
}
