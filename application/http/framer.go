package http

import (
	"bytes"
	"fmt"

	"cc-curl/application/util/rule"

	"github.com/pkg/errors"
)

// ErrMissingHeaderDelimiter means that no empty line ends the header section.
var ErrMissingHeaderDelimiter = errors.New("no empty line after header section")

// FramingError is returned when a response can't be split into header and body.
// Raw holds the whole response so that it can still be shown.
type FramingError struct {
	Raw []byte
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("framing %d bytes of response: %s", len(e.Raw), ErrMissingHeaderDelimiter)
}

func (e *FramingError) Unwrap() error { return ErrMissingHeaderDelimiter }

// Frame is a response split at the end of its header section.
// Both slices share memory with the buffer given to [FrameResponse].
type Frame struct {
	// Header is the status line and the fields, including the empty line.
	Header []byte
	Body   []byte
}

// emptyLine is CRLFCRLF packed big-endian, as seen through a 4-byte window.
const emptyLine = uint32(rule.CR)<<24 | uint32(rule.LF)<<16 | uint32(rule.CR)<<8 | uint32(rule.LF)

// FrameResponse splits raw at the first CRLFCRLF.
// Bytes after it are the body, even when they contain CRLFCRLF again.
func FrameResponse(raw []byte) (Frame, error) {
	var window uint32
	for i, c := range raw {
		window = window<<8 | uint32(c)
		if i >= len(rule.EmptyLine)-1 && window == emptyLine {
			return Frame{Header: raw[:i+1], Body: raw[i+1:]}, nil
		}
	}

	return Frame{}, &FramingError{Raw: raw}
}

// Status parses the status line leading the header section.
func (f Frame) Status() (StatusLine, error) {
	line, _, _ := bytes.Cut(f.Header, rule.CRLF)

	sl, err := parseStatusLine(line)
	if err != nil {
		return StatusLine{}, errors.Wrap(err, "parsing status line")
	}

	return sl, nil
}

// Lines returns the header section split into lines, without the trailing empty line.
func (f Frame) Lines() []string {
	header := bytes.TrimSuffix(f.Header, rule.EmptyLine)
	if len(header) == 0 {
		return nil
	}

	var lines []string
	for _, line := range bytes.Split(header, rule.CRLF) {
		lines = append(lines, string(line))
	}
	return lines
}
