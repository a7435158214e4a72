package message

import (
	"bytes"
	"fmt"
	"net/url"
	"unicode/utf8"

	"http_peek/internal/scan"
)

// Append feeds the next chunk of stream bytes into the message. It
// returns nil while more data is awaited and a terminal error when
// the stream is decided malformed. Once headers are complete every
// further chunk is body and is kept verbatim.
func (m *message) Append(p []byte) error {
	m.buf = append(m.buf, p...)

	if m.headersComplete {
		return nil
	}

	if m.firstLine == "" {
		done, err := m.consumeFirstLine()
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
	}

	return m.consumeHeaders()
}

// consumeFirstLine tries to capture the request/status line from the
// buffered bytes. It reports done=true only when the line was fully
// parsed and consumed; a tentative parse keeps the buffer intact for
// the next call.
func (m *message) consumeFirstLine() (bool, error) {
	res, terminated := scanLine(m.buf)

	var candidate []byte
	if terminated {
		candidate = m.buf[:res.End]
		m.recordDelimiter(res.CRLF)
	} else {
		candidate = m.buf
	}

	if !utf8.Valid(candidate) {
		if !terminated {
			return false, nil
		}
		return false, m.fail(fmt.Errorf("%w: invalid encoding", ErrMalformedFirstLine))
	}

	out := parseFirstLine(m.kind, string(candidate), terminated)
	switch out.state {
	case linePending:
		return false, nil
	case lineMalformed:
		return false, m.fail(fmt.Errorf("%w: %q", ErrMalformedFirstLine, candidate))
	}

	m.version = out.version
	if m.kind == KindResponse {
		m.code = out.code
	} else {
		m.method = out.method
		if u, err := url.Parse(out.rawURL); err == nil {
			m.url = u
		}
	}

	if !out.complete {
		// Version and code/method are tentative; nothing is consumed
		// until the line terminator shows up.
		return false, nil
	}

	if m.kind == KindResponse && m.code <= 0 {
		return false, m.fail(fmt.Errorf("%w: %q", ErrMalformedFirstLine, candidate))
	}
	if m.kind == KindRequest && (m.method == "" || m.url == nil) {
		return false, m.fail(fmt.Errorf("%w: %q", ErrMalformedFirstLine, candidate))
	}

	m.firstLine = string(candidate)
	m.buf = m.buf[res.Next:]
	return true, nil
}

// consumeHeaders walks fully terminated lines after the first line,
// folding continuations and merging duplicates, until the empty line
// ends the block or the buffer runs dry.
func (m *message) consumeHeaders() error {
	for {
		res, found := scanLine(m.buf)
		if !found {
			return nil
		}
		m.recordDelimiter(res.CRLF)

		line := m.buf[:res.End]
		m.buf = m.buf[res.Next:]

		if len(line) == 0 {
			m.headersComplete = true
			m.pendingKey = ""
			return nil
		}

		if line[0] == ' ' || line[0] == '\t' {
			if m.pendingKey == "" {
				return m.fail(fmt.Errorf("%w: %q", ErrUnexpectedContinuation, line))
			}
			m.merge(m.pendingKey, string(trimLeadingWS(line)))
			continue
		}

		colon := bytes.IndexByte(line, ':')
		if colon == -1 {
			return m.fail(fmt.Errorf("%w: %q", ErrMalformedHeaderLine, line))
		}

		key := string(line[:colon])
		value := string(trimLeadingWS(line[colon+1:]))

		if _, ok := m.headers[key]; ok {
			m.merge(key, value)
		} else {
			m.order = append(m.order, key)
			m.headers[key] = value
		}
		m.pendingKey = key
	}
}

// recordDelimiter pins the serialization convention to whichever
// terminator was observed first.
func (m *message) recordDelimiter(crlf bool) {
	if m.delimSeen {
		return
	}
	m.delimSeen = true
	m.bareLF = !crlf
}

// fail is terminal: the message is forced headers-complete so later
// Append calls degrade to no-ops.
func (m *message) fail(err error) error {
	m.headersComplete = true
	m.pendingKey = ""
	return err
}

// scanLine defers to the line scanner but refuses a lone CR sitting
// at the very end of the buffer: it may be the first half of a CRLF
// split across chunks, so the decision waits for the next byte.
func scanLine(data []byte) (scan.Result, bool) {
	res, found := scan.Line(data)
	if !found {
		return res, false
	}
	if res.CRLF && res.Next == res.End+1 && res.Next == len(data) {
		return scan.Result{}, false
	}
	return res, true
}

func trimLeadingWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	return b
}
