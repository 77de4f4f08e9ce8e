package http

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"cc-curl/application/util/rule"

	"github.com/pkg/errors"
)

// ProtocolVersion is the version put on every request line.
var ProtocolVersion = Version{1, 1}

type RequestEncoder struct {
	bw *bufio.Writer
}

func NewRequestEncoder(w io.Writer) *RequestEncoder {
	return &RequestEncoder{bw: bufio.NewWriter(w)}
}

// Encode writes the request line, the header fields, Content-Length when the
// body isn't empty, an empty line, and then the body followed by CRLF.
//
// Only the path of the target is written; the query is dropped.
func (re *RequestEncoder) Encode(r *Request) error {
	if err := re.encodeRequestLine(r); err != nil {
		return errors.Wrap(err, "encoding request line")
	}

	if err := re.encodeHeaders(r.headers, r.body.Len()); err != nil {
		return errors.Wrap(err, "encoding headers")
	}

	if r.body.Len() > 0 {
		if err := re.writeLine(r.body.Bytes()); err != nil {
			return errors.Wrap(err, "writing body")
		}
	}

	if err := re.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing buffer")
	}

	return nil
}

func (re *RequestEncoder) encodeRequestLine(r *Request) error {
	// The scheme names the protocol on the request line, e.g. "HTTP/1.1".
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-3
	line := strings.Join([]string{
		r.method.String(),
		r.path,
		strings.ToUpper(r.scheme) + "/" + ProtocolVersion.number(),
	}, string(rule.SP))

	return re.writeLine([]byte(line))
}

func (re *RequestEncoder) encodeHeaders(headers Headers, contentLength int) error {
	for key, value := range headers.fields {
		if err := re.writeField(key, value); err != nil {
			return errors.Wrapf(err, "writing field %q", key)
		}
	}

	if contentLength > 0 {
		if err := re.writeField("Content-Length", strconv.Itoa(contentLength)); err != nil {
			return errors.Wrap(err, "writing content length")
		}
	}

	// Write a empty line as all the headers are written.
	if err := re.writeLine(nil); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}

func (re *RequestEncoder) writeField(key, value string) error {
	return re.writeLine([]byte(key + ": " + value))
}

func (re *RequestEncoder) writeLine(line []byte) error {
	if _, err := re.bw.Write(line); err != nil {
		return errors.Wrap(err, "writing line")
	}

	if _, err := re.bw.Write(rule.CRLF); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}
