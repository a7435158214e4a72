package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusLine(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		terminated  bool
		expectState lineState
		complete    bool
		version     string
		code        int
	}{
		{
			name:        "complete status line",
			candidate:   "HTTP/1.1 200 OK",
			terminated:  true,
			expectState: lineParsed,
			complete:    true,
			version:     "HTTP/1.1",
			code:        200,
		},
		{
			name:        "collapses repeated spaces",
			candidate:   "HTTP/1.1  404   Not Found",
			terminated:  true,
			expectState: lineParsed,
			complete:    true,
			version:     "HTTP/1.1",
			code:        404,
		},
		{
			name:        "too few fields unterminated",
			candidate:   "HTTP/1.1 200",
			terminated:  false,
			expectState: linePending,
		},
		{
			name:        "too few fields terminated",
			candidate:   "HTTP/1.1 200",
			terminated:  true,
			expectState: lineMalformed,
		},
		{
			name:        "short version token unterminated",
			candidate:   "HTTP/1 200 OK",
			terminated:  false,
			expectState: linePending,
		},
		{
			name:        "short version token terminated",
			candidate:   "HTTP/1 200 OK",
			terminated:  true,
			expectState: lineParsed,
			complete:    true,
			version:     "HTTP/1",
			code:        200,
		},
		{
			name:        "wrong prefix judged without terminator",
			candidate:   "SPDY/3.1丂 200 OK",
			terminated:  false,
			expectState: lineMalformed,
		},
		{
			name:        "wrong prefix terminated",
			candidate:   "ICY 200 OK",
			terminated:  true,
			expectState: lineMalformed,
		},
		{
			name:        "non numeric code terminated",
			candidate:   "HTTP/1.1 abc OK",
			terminated:  true,
			expectState: lineMalformed,
		},
		{
			name:        "tentative parse without terminator",
			candidate:   "HTTP/1.1 200 O",
			terminated:  false,
			expectState: lineParsed,
			complete:    false,
			version:     "HTTP/1.1",
			code:        200,
		},
		{
			name:        "empty candidate unterminated",
			candidate:   "",
			terminated:  false,
			expectState: linePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parseStatusLine(tt.candidate, tt.terminated)
			assert.Equal(t, tt.expectState, out.state)
			if tt.expectState != lineParsed {
				return
			}
			assert.Equal(t, tt.complete, out.complete)
			assert.Equal(t, tt.version, out.version)
			assert.Equal(t, tt.code, out.code)
		})
	}
}

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		terminated  bool
		expectState lineState
		complete    bool
		version     string
		method      string
		rawURL      string
	}{
		{
			name:        "complete request line",
			candidate:   "GET /path HTTP/1.1",
			terminated:  true,
			expectState: lineParsed,
			complete:    true,
			version:     "HTTP/1.1",
			method:      "GET",
			rawURL:      "/path",
		},
		{
			name:        "two fields default version",
			candidate:   "GET /path",
			terminated:  true,
			expectState: lineParsed,
			complete:    true,
			version:     "HTTP/1.0",
			method:      "GET",
			rawURL:      "/path",
		},
		{
			name:        "two fields unterminated waits for version",
			candidate:   "GET /path",
			terminated:  false,
			expectState: linePending,
		},
		{
			name:        "one field terminated",
			candidate:   "BADLINE",
			terminated:  true,
			expectState: lineMalformed,
		},
		{
			name:        "one field unterminated",
			candidate:   "BADLINE",
			terminated:  false,
			expectState: linePending,
		},
		{
			name:        "four fields terminated",
			candidate:   "GET /a /b HTTP/1.1",
			terminated:  true,
			expectState: lineMalformed,
		},
		{
			name:        "version cut mid chunk",
			candidate:   "GET / HT",
			terminated:  false,
			expectState: linePending,
		},
		{
			name:        "wrong prefix once judgeable",
			candidate:   "GET / GOPHER/11",
			terminated:  false,
			expectState: lineMalformed,
		},
		{
			name:        "tentative parse with full version token",
			candidate:   "GET / HTTP/1.1",
			terminated:  false,
			expectState: lineParsed,
			complete:    false,
			version:     "HTTP/1.1",
			method:      "GET",
			rawURL:      "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parseRequestLine(tt.candidate, tt.terminated)
			assert.Equal(t, tt.expectState, out.state)
			if tt.expectState != lineParsed {
				return
			}
			assert.Equal(t, tt.complete, out.complete)
			assert.Equal(t, tt.version, out.version)
			assert.Equal(t, tt.method, out.method)
			assert.Equal(t, tt.rawURL, out.rawURL)
		})
	}
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 8, utf16Len("HTTP/1.1"))
	assert.Equal(t, 2, utf16Len("HT"))
	// Astral-plane runes count as two code units.
	assert.Equal(t, 2, utf16Len("𝕏"))
}

func TestSplitSpaces(t *testing.T) {
	assert.Equal(t, []string{"GET", "/", "HTTP/1.1"}, splitSpaces("GET  /   HTTP/1.1"))
	assert.Equal(t, []string{"a"}, splitSpaces(" a "))
	assert.Nil(t, splitSpaces("   "))
	assert.Nil(t, splitSpaces(""))
}
