package route

import (
	"fmt"
	"net"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeOrigin lowercases the host part of an origin and converts it to
// its ASCII (punycode) form per RFC 5890. An optional scheme prefix and
// port suffix are preserved. Origins containing placeholder tokens or an
// IPv6 literal pass through unchanged; the empty origin stays empty.
func NormalizeOrigin(origin string) (string, error) {
	if origin == "" || strings.Contains(origin, "{") {
		return origin, nil
	}

	var scheme string
	rest := origin
	if i := strings.Index(rest, "://"); i >= 0 {
		scheme, rest = rest[:i+3], rest[i+3:]
	}
	if strings.HasPrefix(rest, "[") {
		return origin, nil
	}

	host, port := rest, ""
	if h, p, err := net.SplitHostPort(rest); err == nil {
		host, port = h, p
	}

	ascii, err := idna.Lookup.ToASCII(strings.ToLower(host))
	if err != nil {
		return "", fmt.Errorf("route: normalize origin %q: %w", origin, err)
	}
	if port != "" {
		ascii = net.JoinHostPort(ascii, port)
	}
	return scheme + ascii, nil
}
