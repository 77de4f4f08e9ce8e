package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected Method
	}{
		{desc: "GET", input: "GET", expected: MethodGet},
		{desc: "POST", input: "POST", expected: MethodPost},
		{desc: "PUT", input: "PUT", expected: MethodPut},
		{desc: "DELETE", input: "DELETE", expected: MethodDelete},
		{desc: "lowercase is custom", input: "get", expected: CustomMethod("get")},
		{desc: "unknown verb", input: "PATCH", expected: CustomMethod("PATCH")},
		{desc: "empty", input: "", expected: CustomMethod("")},
		{desc: "whitespace and control characters", input: "WHATEVER weird\t text", expected: CustomMethod("WHATEVER weird\t text")},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			m := ParseMethod(tc.input)
			assert.Equal(t, tc.expected, m)
			assert.Equal(t, tc.input, m.String())
		})
	}
}

func TestMethodIsCustom(t *testing.T) {
	assert.False(t, MethodGet.IsCustom())
	assert.False(t, MethodDelete.IsCustom())
	assert.True(t, CustomMethod("GET").IsCustom())
	assert.NotEqual(t, MethodGet, CustomMethod("GET"))
}

func TestMethodIsToken(t *testing.T) {
	assert.True(t, MethodGet.IsToken())
	assert.True(t, CustomMethod("M-SEARCH").IsToken())
	assert.False(t, CustomMethod("WHATEVER weird\t text").IsToken())
	assert.False(t, CustomMethod("").IsToken())
}
