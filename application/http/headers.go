package http

import (
	"maps"
	"strings"

	"cc-curl/application/util/rule"
)

// Headers maps field names to values. Names are unique and compared byte-exactly,
// setting an existing name replaces its value.
// The order fields are emitted in is unspecified.
//
// The zero value is an empty set ready to use.
type Headers struct {
	fields map[string]string
}

func NewHeaders(fields map[string]string) Headers {
	return Headers{fields: maps.Clone(fields)}
}

// Set stores value under key without escaping or validating either of them.
func (h *Headers) Set(key, value string) {
	if h.fields == nil {
		h.fields = make(map[string]string)
	}
	h.fields[key] = value
}

func (h *Headers) Get(key string) (string, bool) {
	v, ok := h.fields[key]
	return v, ok
}

func (h *Headers) Del(key string) { delete(h.fields, key) }

func (h *Headers) Len() int { return len(h.fields) }

// Fields returns a copy of the underlying mapping.
func (h *Headers) Fields() map[string]string {
	fields := make(map[string]string, len(h.fields))
	maps.Copy(fields, h.fields)
	return fields
}

// Parse reads a header given on the command line and stores it.
// Whitespace surrounding line is ignored.
//
// "Key: Value" splits on the first colon and drops the whitespace leading the value.
// "Key;" stores Key with an empty value.
// Anything else is ignored and reported by returning false.
func (h *Headers) Parse(line string) bool {
	line = strings.TrimSpace(line)

	if key, value, found := strings.Cut(line, ":"); found {
		h.Set(key, strings.TrimLeft(value, string(rule.OWS)))
		return true
	}

	if strings.HasSuffix(line, ";") {
		h.Set(strings.TrimRight(line, ";"), "")
		return true
	}

	return false
}
