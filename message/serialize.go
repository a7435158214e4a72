package message

// delimiter echoes the line-ending convention the peer used; messages
// constructed programmatically default to CRLF.
func (m *message) delimiter() string {
	if m.bareLF {
		return "\n"
	}
	return "\r\n"
}

// HeaderBytes renders the first line and headers, terminated by a
// blank line. Without a captured first line there is nothing to
// render: a defaulted empty first line is never emitted.
func (m *message) HeaderBytes() []byte {
	if m.firstLine == "" {
		return nil
	}

	delim := m.delimiter()

	size := len(m.firstLine) + len(delim)
	for _, key := range m.order {
		size += len(key) + 2 + len(m.headers[key]) + len(delim)
	}
	size += len(delim)

	buf := make([]byte, 0, size)
	buf = append(buf, m.firstLine...)
	buf = append(buf, delim...)

	for _, key := range m.order {
		buf = append(buf, key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, m.headers[key]...)
		buf = append(buf, delim...)
	}

	buf = append(buf, delim...)
	return buf
}

func (m *message) HeaderBlock() string {
	return string(m.HeaderBytes())
}

// Bytes renders the full message: header block plus whatever body
// bytes accumulated after completion.
func (m *message) Bytes() []byte {
	out := m.HeaderBytes()
	if out == nil {
		return nil
	}
	if m.headersComplete && len(m.buf) > 0 {
		out = append(out, m.buf...)
	}
	return out
}
