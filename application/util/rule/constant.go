package rule

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
	DEL  byte = 0x7F
)

var (
	OWS  = []byte{SP, HTAB}
	CRLF = []byte{CR, LF}

	// EmptyLine terminates a header section.
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.1
	EmptyLine = []byte{CR, LF, CR, LF}
)
