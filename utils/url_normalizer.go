package utils

import (
	"net/url"
	"strings"
)

// NormalizeURL turns free-text input into a canonical absolute URL suitable
// for QR encoding, or reports that the input is unusable.
//
// The input is trimmed and parsed directly first; if that fails to produce an
// acceptable URL, leading slashes are stripped and the value is retried with
// an https:// prefix. A candidate is accepted only when its scheme is http or
// https and its hostname is either "localhost" or contains a dot; bare
// single-label hosts are rejected as likely typos.
//
// Example:
//
//	input:  "example.com"
//	output: "https://example.com/"
func NormalizeURL(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	if normalized, ok := prepareCandidate(trimmed); ok {
		return normalized, true
	}

	fallback := "https://" + strings.TrimLeft(trimmed, "/")
	return prepareCandidate(fallback)
}

func prepareCandidate(candidate string) (string, bool) {
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", false
	}

	parsed.Host = strings.ToLower(parsed.Host)

	hostname := parsed.Hostname()
	if hostname == "" {
		return "", false
	}
	if hostname != "localhost" && !strings.Contains(hostname, ".") {
		return "", false
	}

	// Match WHATWG serialization: an absolute URL always carries a path.
	if parsed.Path == "" {
		parsed.Path = "/"
	}

	return parsed.String(), true
}
