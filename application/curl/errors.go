package curl

import (
	"cc-curl/application/http"
	"cc-curl/application/util/uri"
	"cc-curl/transport"

	"github.com/pkg/errors"
)

// Kind classifies a failure of [App.Run].
type Kind int

const (
	KindUnknown Kind = iota
	KindUsage
	KindURLParse
	KindMissingHost
	KindConnection
	KindWrite
	KindRead
	KindFraming
	KindHTTPStatus
	KindOutput
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindUsage:       "usage",
	KindURLParse:    "url parse",
	KindMissingHost: "missing host",
	KindConnection:  "connection",
	KindWrite:       "write",
	KindRead:        "read",
	KindFraming:     "framing",
	KindHTTPStatus:  "http status",
	KindOutput:      "output",
}

func (k Kind) String() string { return kindNames[k] }

// ExitCode follows the exit codes of curl where one exists.
func (k Kind) ExitCode() int {
	switch k {
	case KindUsage:
		return 2
	case KindURLParse:
		return 3
	case KindMissingHost:
		return 4
	case KindConnection:
		return 7
	case KindFraming:
		return 8
	case KindHTTPStatus:
		return 22
	case KindOutput:
		return 23
	case KindWrite:
		return 55
	case KindRead:
		return 56
	default:
		return 1
	}
}

// Error attaches a kind to failures that carry no typed error of their own.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// KindOf finds the kind of err by looking through its chain.
func KindOf(err error) Kind {
	var (
		kerr  *Error
		perr  *uri.ParseError
		ferr  *http.FramingError
		operr *transport.OpError
	)

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &kerr):
		return kerr.Kind
	case errors.As(err, &perr):
		return KindURLParse
	case errors.Is(err, http.ErrMissingHost):
		return KindMissingHost
	case errors.As(err, &ferr):
		return KindFraming
	case errors.As(err, &operr):
		switch operr.Op {
		case transport.OpDial:
			return KindConnection
		case transport.OpWrite:
			return KindWrite
		case transport.OpRead:
			return KindRead
		}
	}

	return KindUnknown
}

// ExitCode returns the process exit code for err, zero when err is nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
