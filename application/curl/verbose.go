package curl

import (
	"bytes"
	"fmt"
	"io"

	"cc-curl/application/http"
	"cc-curl/application/util/rule"
)

const (
	outboundPrefix = "> "
	inboundPrefix  = "< "
	infoPrefix     = "* "
)

// verbose renders an exchange for humans, the way curl -v does.
// Write errors are ignored, since stderr is the only place to report them.
type verbose struct {
	w io.Writer
}

func (v verbose) info(format string, args ...any) {
	fmt.Fprintf(v.w, infoPrefix+format+"\n", args...)
}

// request renders the request line and header fields. The body is left out.
func (v verbose) request(raw []byte) {
	head, _, _ := bytes.Cut(raw, rule.EmptyLine)
	v.lines(outboundPrefix, head)
	fmt.Fprintln(v.w, outboundPrefix)
}

// responseHeader renders the header section of frame, including its empty line.
func (v verbose) responseHeader(frame http.Frame) {
	for _, line := range frame.Lines() {
		fmt.Fprintf(v.w, "%s%s\n", inboundPrefix, line)
	}
	fmt.Fprintln(v.w, inboundPrefix)
}

// rawResponse renders a response that couldn't be framed, line by line.
func (v verbose) rawResponse(raw []byte) {
	v.lines(inboundPrefix, raw)
}

func (v verbose) lines(prefix string, block []byte) {
	if len(block) == 0 {
		return
	}
	for _, line := range bytes.Split(block, []byte{rule.LF}) {
		fmt.Fprintf(v.w, "%s%s\n", prefix, bytes.TrimSuffix(line, []byte{rule.CR}))
	}
}
