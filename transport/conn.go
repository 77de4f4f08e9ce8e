package transport

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrConnClosed         = errors.New("connection is closed")
	ErrConnRefused        = errors.New("connection refused")
	ErrConnListenerClosed = errors.New("conn listener is closed")
	ErrAddrAlreadyInUse   = errors.New("address already in use")
	ErrDeadLineExceeded   = errors.New("deadline exceeded")
)

// Conn is a bidirectional byte stream.
// Read returns [io.EOF] once the peer has closed its side and everything it sent was consumed.
type Conn interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error

	LocalAddr() Addr
	RemoteAddr() Addr

	// Zero value means no deadline.
	SetReadDeadLine(t time.Time)
	SetWriteDeadLine(t time.Time)
}

type ConnListener interface {
	Accept(ctx context.Context) (Conn, error)
	Close() error
}

type ConnDialer interface {
	Dial(ctx context.Context, addr Addr) (Conn, error)
}

type Op string

const (
	OpDial  Op = "dial"
	OpWrite Op = "write"
	OpRead  Op = "read"
)

// OpError tells which operation on which address failed.
type OpError struct {
	Op   Op
	Addr Addr
	Err  error
}

func (e *OpError) Error() string {
	addr := "<nil>"
	if e.Addr != nil {
		addr = e.Addr.String()
	}
	return string(e.Op) + " " + addr + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// IsOp reports whether err has an [OpError] for op in its chain.
func IsOp(err error, op Op) bool {
	var opErr *OpError
	return errors.As(err, &opErr) && opErr.Op == op
}
