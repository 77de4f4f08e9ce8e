package iolib

import "io"

// LimitReader reads at most n bytes from r and reports [io.EOF] afterwards.
// It differs from [io.LimitReader] in taking an unsigned bound, like the
// response size limit, and in exposing how much of the bound is left.
func LimitReader(r io.Reader, n uint) *LimitedReader {
	return &LimitedReader{r: r, remaining: n}
}

type LimitedReader struct {
	r         io.Reader
	remaining uint
}

// Remaining returns how many more bytes may be read.
func (l *LimitedReader) Remaining() uint { return l.remaining }

func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.remaining == 0 {
		return 0, io.EOF
	}

	p = p[:min(uint(len(p)), l.remaining)]
	n, err := l.r.Read(p)
	l.remaining -= uint(n)
	return n, err
}
