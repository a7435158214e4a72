package message

import (
	"fmt"
	"net/url"

	"http_peek/internal/status"
)

type Kind string

const (
	KindRequest  Kind = "REQUEST"
	KindResponse Kind = "RESPONSE"
)

const DefaultVersion = "HTTP/1.1"

// Message is an HTTP/1.x request or response assembled incrementally
// from a byte stream. Append is the single inbound entry point; it is
// not safe for concurrent use.
type Message interface {
	Append(p []byte) error

	Set(key, value string)
	Remove(key string)
	Value(key string) string
	Keys() []string

	Kind() Kind
	HeadersComplete() bool
	FirstLine() string
	Method() string
	URL() *url.URL
	Path() string
	Code() int
	Version() string
	Body() []byte

	HeaderBlock() string
	HeaderBytes() []byte
	Bytes() []byte
}

type message struct {
	kind      Kind
	firstLine string

	method  string
	url     *url.URL
	code    int
	version string

	order   []string
	headers map[string]string

	headersComplete bool
	bareLF          bool
	delimSeen       bool
	pendingKey      string

	// buf holds unparsed protocol bytes until headers complete, then
	// raw body bytes appended verbatim.
	buf []byte
}

// NewRequest returns an empty request shell to be fed via Append.
func NewRequest() Message {
	return newMessage(KindRequest)
}

// NewResponse returns an empty response shell to be fed via Append.
func NewResponse() Message {
	return newMessage(KindResponse)
}

// NewOutgoingRequest synthesizes a request with a pre-filled first
// line for serialization. The URL is parsed up front; only its path
// ends up on the request line.
func NewOutgoingRequest(method, rawURL string) (Message, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	m := newMessage(KindRequest)
	m.method = method
	m.url = u

	path := u.Path
	if path == "" {
		path = "/"
	}
	m.firstLine = method + " " + path + " " + m.version

	return m, nil
}

// NewOutgoingResponse synthesizes a response with a pre-filled status
// line, using the default reason phrase for the code.
func NewOutgoingResponse(code int) Message {
	m := newMessage(KindResponse)
	m.code = code
	m.firstLine = fmt.Sprintf("%s %d %s", m.version, code, status.Text(code))
	return m
}

func newMessage(kind Kind) *message {
	return &message{
		kind:    kind,
		version: DefaultVersion,
		headers: make(map[string]string, 16),
	}
}

func (m *message) Kind() Kind {
	return m.kind
}

func (m *message) HeadersComplete() bool {
	return m.headersComplete
}

func (m *message) FirstLine() string {
	return m.firstLine
}

func (m *message) Method() string {
	return m.method
}

func (m *message) URL() *url.URL {
	return m.url
}

func (m *message) Path() string {
	if m.url == nil {
		return ""
	}
	return m.url.Path
}

func (m *message) Code() int {
	return m.code
}

func (m *message) Version() string {
	return m.version
}

// Body returns the bytes accumulated after the header block. Before
// headers complete the buffer holds protocol bytes, not body, so this
// reports nothing.
func (m *message) Body() []byte {
	if !m.headersComplete {
		return nil
	}
	return m.buf
}

func (m *message) Value(key string) string {
	return m.headers[key]
}

func (m *message) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// Set inserts or updates a header, preserving the original position
// on update.
func (m *message) Set(key, value string) {
	if _, ok := m.headers[key]; !ok {
		m.order = append(m.order, key)
	}
	m.headers[key] = value
}

// Remove drops a header and its slot in the serialization order.
func (m *message) Remove(key string) {
	if _, ok := m.headers[key]; !ok {
		return
	}
	delete(m.headers, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// merge applies the comma-join rule shared by duplicate keys and
// continuation lines.
func (m *message) merge(key, value string) {
	if old := m.headers[key]; old != "" {
		m.headers[key] = old + ", " + value
		return
	}
	m.headers[key] = value
}
