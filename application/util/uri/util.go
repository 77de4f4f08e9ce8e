package uri

import (
	"net/netip"
	"strings"

	"cc-curl/application/util/rule"

	"github.com/pkg/errors"
)

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.2
func isSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.3
func isUnreserved(c byte) bool {
	if rule.IsAlpha(c) || rule.IsDigit(c) {
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.1
func isPercentEncoded(s string) bool {
	return len(s) == 3 && s[0] == '%' && rule.IsHex(s[1]) && rule.IsHex(s[2])
}

// allMatch reports whether s only consists of percent-encodings and bytes accepted by allowed.
func allMatch(s string, allowed func(c byte) bool) bool {
	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if allowed(c) {
			continue
		}
		if idx+3 <= len(s) && isPercentEncoded(s[idx:idx+3]) {
			idx += 2
			continue
		}
		return false
	}
	return true
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.3
func isPchar(c byte) bool {
	return isUnreserved(c) || isSubDelim(c) || c == ':' || c == '@'
}

func assertValidScheme(scheme string) error {
	if len(scheme) == 0 {
		return errors.New("scheme is empty")
	}

	if !rule.IsAlpha(scheme[0]) {
		return errors.New("scheme doesn't start with ALPHA")
	}

	for idx := 1; idx < len(scheme); idx++ {
		c := scheme[idx]
		switch {
		case rule.IsAlpha(c) || rule.IsDigit(c):
		case c == '+' || c == '-' || c == '.':
		default:
			return errors.Errorf("scheme contains invalid byte: %q", c)
		}
	}

	return nil
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.2
func assertValidHost(host string) error {
	if host == "" {
		// Empty reg-name is valid syntax. Whether it's usable is up to the caller.
		return nil
	}
	if len(host) > 255 {
		return errors.Errorf("host length exceeds limit(255): %d", len(host))
	}

	first, last := 0, len(host)-1
	if host[first] == '[' && host[last] == ']' {
		addr, err := netip.ParseAddr(host[first+1 : last])
		if err != nil || !addr.Is6() {
			return errors.Errorf("IP literal is not a valid IPv6 address: %s", host)
		}
		return nil
	}

	// IPv4address is a subset of reg-name.
	if !allMatch(host, func(c byte) bool { return isUnreserved(c) || isSubDelim(c) }) {
		return errors.Errorf("reg-name contains invalid byte: %s", host)
	}

	return nil
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.1
func isValidUserInfo(userInfo string) bool {
	return allMatch(userInfo, func(c byte) bool {
		return isUnreserved(c) || isSubDelim(c) || c == ':'
	})
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.3
func assertValidPath(path string, hasAuthority bool) error {
	if hasAuthority && path != "" && !strings.HasPrefix(path, "/") {
		return errors.New("path must be empty or start with '/' when authority is present")
	}
	if !hasAuthority && strings.HasPrefix(path, "//") {
		return errors.New("path cannot start with '//' without authority")
	}

	for _, segment := range strings.Split(path, "/") {
		if !allMatch(segment, isPchar) {
			return errors.Errorf("segment contains invalid byte: %q", segment)
		}
	}

	return nil
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.4
func isQueryFragValid(s string) bool {
	return allMatch(s, func(c byte) bool { return isPchar(c) || c == '/' || c == '?' })
}
