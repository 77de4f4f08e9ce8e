package pipe

import (
	"context"
	"testing"
	"time"

	"cc-curl/transport"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type TransportTestSuite struct {
	suite.Suite

	transport *Transport
}

func TestTransportTestSuite(t *testing.T) {
	suite.Run(t, new(TransportTestSuite))
}

func (s *TransportTestSuite) SetupTest() {
	s.transport = NewTransport(clock.New())
}

func (s *TransportTestSuite) TearDownTest() {
	goleak.VerifyNone(s.T())
}

func (s *TransportTestSuite) TestListen() {
	addr := Addr{Name: "hey"}

	lis, err := s.transport.Listen(addr)
	s.Require().NoError(err)
	s.Require().NotNil(lis)

	got, ok := s.transport.listeners[addr]
	s.True(ok)
	s.Equal(lis, got)

	lis, err = s.transport.Listen(addr)
	s.ErrorIs(err, transport.ErrAddrAlreadyInUse)
	s.Nil(lis)
}

func (s *TransportTestSuite) TestDial() {
	addr := Addr{Name: "hey"}

	lis, err := s.transport.Listen(addr)
	s.Require().NoError(err)
	defer lis.Close()

	accepted := make(chan transport.Conn, 1)
	go func() {
		conn, err := lis.Accept(context.Background())
		s.NoError(err)
		accepted <- conn
	}()

	conn, err := s.transport.Dial(context.Background(), addr)
	s.Require().NoError(err)
	s.Require().NotNil(conn)

	s.Equal(transport.Addr(addr), conn.RemoteAddr())

	server := <-accepted
	s.Equal(conn.LocalAddr(), server.RemoteAddr())

	s.NoError(conn.Close())
	s.NoError(server.Close())
}

func (s *TransportTestSuite) TestDialRefused() {
	_, err := s.transport.Dial(context.Background(), Addr{Name: "nobody"})
	s.ErrorIs(err, transport.ErrConnRefused)
	s.True(transport.IsOp(err, transport.OpDial))
}

func (s *TransportTestSuite) TestDialCanceled() {
	addr := Addr{Name: "busy"}
	lis, err := s.transport.Listen(addr)
	s.Require().NoError(err)
	defer lis.Close()

	// Nobody accepts.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = s.transport.Dial(ctx, addr)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.True(transport.IsOp(err, transport.OpDial))
}

func (s *TransportTestSuite) TestListenerClose() {
	addr := Addr{Name: "hey"}
	lis, err := s.transport.Listen(addr)
	s.Require().NoError(err)

	s.NoError(lis.Close())
	s.ErrorIs(lis.Close(), transport.ErrConnListenerClosed)

	_, err = lis.Accept(context.Background())
	s.ErrorIs(err, transport.ErrConnListenerClosed)

	// Address is free again.
	_, ok := s.transport.listeners[addr]
	s.False(ok)
	_, err = s.transport.Dial(context.Background(), addr)
	s.ErrorIs(err, transport.ErrConnRefused)
}
