package http

import "cc-curl/application/util/rule"

// Method is a request method token.
// It is either one of the well-known methods or a custom verb
// carrying the exact text the caller supplied.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9
type Method struct {
	verb   string
	custom bool
}

var (
	MethodGet    = Method{verb: "GET"}
	MethodPost   = Method{verb: "POST"}
	MethodPut    = Method{verb: "PUT"}
	MethodDelete = Method{verb: "DELETE"}
)

var knownMethods = map[string]Method{
	MethodGet.verb:    MethodGet,
	MethodPost.verb:   MethodPost,
	MethodPut.verb:    MethodPut,
	MethodDelete.verb: MethodDelete,
}

// CustomMethod returns a method holding verb as-is.
// Nothing is validated, so the verb may contain whitespace or control characters.
func CustomMethod(verb string) Method {
	return Method{verb: verb, custom: true}
}

// ParseMethod matches text case-sensitively against the well-known methods,
// and falls back to [CustomMethod] for anything else.
func ParseMethod(text string) Method {
	if m, ok := knownMethods[text]; ok {
		return m
	}
	return CustomMethod(text)
}

func (m Method) String() string { return m.verb }

func (m Method) IsCustom() bool { return m.custom }

// IsToken reports whether the verb is a valid method token.
// Methods that aren't are still sent verbatim.
func (m Method) IsToken() bool { return rule.IsValidToken(m.verb) }
