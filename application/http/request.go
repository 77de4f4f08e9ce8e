package http

import (
	"bytes"
	"io"

	"cc-curl/application/util/uri"

	"github.com/pkg/errors"
)

// DefaultPort is used when the URL doesn't carry a port, whatever its scheme is.
const DefaultPort uint16 = 80

// ErrMissingHost is returned when a request is built for a URL without a host.
var ErrMissingHost = errors.New("url has no host")

// Request is an HTTP/1.1 request to be sent over a fresh connection.
// The target is copied from the URL at construction, so the URL may be
// discarded afterwards.
type Request struct {
	method Method

	scheme string
	host   string
	port   uint16
	path   string

	headers Headers
	body    bytes.Buffer
}

// NewRequest builds a request for u, seeding the Host, Accept and Connection headers.
// It returns [ErrMissingHost] when u has no authority or an empty host.
func NewRequest(method Method, u *uri.URI) (*Request, error) {
	host := u.Host()
	if host == "" {
		return nil, ErrMissingHost
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	r := &Request{
		method: method,
		scheme: u.Scheme,
		host:   host,
		port:   u.Port(DefaultPort),
		path:   path,
	}

	r.headers.Set("Host", host)
	r.headers.Set("Accept", "*/*")
	r.headers.Set("Connection", "close")

	return r, nil
}

func (r *Request) Method() Method { return r.method }
func (r *Request) Scheme() string { return r.scheme }
func (r *Request) Host() string   { return r.host }
func (r *Request) Port() uint16   { return r.port }
func (r *Request) Path() string   { return r.path }

// Headers returns a copy of the current header fields.
func (r *Request) Headers() map[string]string { return r.headers.Fields() }

// Body returns a copy of the accumulated body.
func (r *Request) Body() []byte { return bytes.Clone(r.body.Bytes()) }

// AddHeader sets a header, replacing the previous value of key.
func (r *Request) AddHeader(key, value string) { r.headers.Set(key, value) }

// ParseHeader reads a header given on the command line, see [Headers.Parse].
func (r *Request) ParseHeader(line string) bool { return r.headers.Parse(line) }

// AddData appends data to the body.
func (r *Request) AddData(data []byte) { r.body.Write(data) }

// Serialize returns the request in its wire format.
func (r *Request) Serialize() []byte {
	buf := bytes.NewBuffer(nil)
	// Writing into bytes.Buffer can't fail.
	_ = NewRequestEncoder(buf).Encode(r)
	return buf.Bytes()
}

// WriteTo writes the serialized request to w in a single call.
func (r *Request) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Serialize())
	return int64(n), err
}
