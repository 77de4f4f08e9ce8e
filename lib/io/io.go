package iolib

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// WriteFull writes the whole buf, retrying on short writes.
// A writer that makes no progress without an error fails with [io.ErrShortWrite].
func WriteFull(w io.Writer, buf []byte) (uint, error) {
	total := uint(0)
	for total < uint(len(buf)) {
		n, err := w.Write(buf[total:])
		total += uint(n)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

var ErrLimitExceeded = errors.New("read limit exceeded")

// ReadAll reads from r until EOF. If limit > 0 and r holds more than limit bytes,
// it stops reading and returns the first limit bytes along with [ErrLimitExceeded].
func ReadAll(r io.Reader, limit uint) ([]byte, error) {
	if limit == 0 {
		return io.ReadAll(r)
	}

	buf := bytes.NewBuffer(nil)
	// One extra byte tells "exactly limit" apart from "more than limit".
	lr := LimitReader(r, limit+1)
	if _, err := buf.ReadFrom(lr); err != nil {
		return buf.Bytes(), err
	}

	if lr.Remaining() == 0 {
		return buf.Bytes()[:limit], ErrLimitExceeded
	}

	return buf.Bytes(), nil
}
