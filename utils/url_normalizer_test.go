package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "bare domain gains https and root path", input: "example.com", want: "https://example.com/", ok: true},
		{name: "already absolute http", input: "http://example.com/path?q=1", want: "http://example.com/path?q=1", ok: true},
		{name: "already absolute https keeps path", input: "https://example.com/a/b", want: "https://example.com/a/b", ok: true},
		{name: "unsupported scheme", input: "ftp://x.com", want: "", ok: false},
		{name: "bare localhost", input: "localhost", want: "https://localhost/", ok: true},
		{name: "localhost with port, no scheme", input: "localhost:3000", want: "https://localhost:3000/", ok: true},
		{name: "localhost with scheme and port", input: "http://localhost:3000", want: "http://localhost:3000/", ok: true},
		{name: "whitespace only", input: "   ", want: "", ok: false},
		{name: "empty", input: "", want: "", ok: false},
		{name: "single label host", input: "https://a", want: "", ok: false},
		{name: "single label without scheme", input: "intranet", want: "", ok: false},
		{name: "leading slashes stripped before fallback", input: "//example.com", want: "https://example.com/", ok: true},
		{name: "surrounding whitespace trimmed", input: "  example.com  ", want: "https://example.com/", ok: true},
		{name: "uppercase host lowered", input: "HTTPS://EXAMPLE.COM", want: "https://example.com/", ok: true},
		{name: "subdomain accepted", input: "docs.example.com/page", want: "https://docs.example.com/page", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeURL(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	inputs := []string{
		"example.com",
		"http://example.com/path?q=1",
		"localhost:3000",
		"docs.example.com/page",
	}
	for _, input := range inputs {
		first, ok := NormalizeURL(input)
		require.True(t, ok, input)

		second, ok := NormalizeURL(first)
		require.True(t, ok, first)
		assert.Equal(t, first, second)
	}
}
