package transport

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type stubAddr string

func (a stubAddr) Protocol() Protocol { return Pipe }
func (a stubAddr) String() string     { return string(a) }

func TestOpError(t *testing.T) {
	err := errors.Wrap(&OpError{Op: OpRead, Addr: stubAddr("server"), Err: io.ErrUnexpectedEOF}, "receiving response")

	assert.EqualError(t, err, "receiving response: read server: unexpected EOF")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.True(t, IsOp(err, OpRead))
	assert.False(t, IsOp(err, OpDial))
	assert.False(t, IsOp(io.EOF, OpRead))
}

func TestOpErrorWithoutAddr(t *testing.T) {
	err := &OpError{Op: OpDial, Err: ErrConnRefused}
	assert.EqualError(t, err, "dial <nil>: connection refused")
}
