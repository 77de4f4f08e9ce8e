package client

import (
	"time"
)

type Options struct {
	Receive ReceiveOptions
	Timeout TimeoutOptions
	Trace   Trace
}

type ReceiveOptions struct {
	// MaxResponseSize bounds the bytes read for a response. Zero means unbounded.
	MaxResponseSize uint
}

type TimeoutOptions struct {
	// Total bounds the whole exchange, from dialing to the end of the response.
	// Zero means no limit.
	Total time.Duration
}

// Trace hooks observe the bytes of an exchange. Nil hooks are skipped.
type Trace struct {
	// Request is called with the serialized request before it is written.
	Request func(raw []byte)
	// Response is called with everything read, before framing.
	Response func(raw []byte)
}
