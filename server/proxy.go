package server

import (
	"errors"
	"io"
	"log"
	"net"

	"http_peek/internal/middleware"
	"http_peek/message"
	"http_peek/types"
	"http_peek/utils"
)

func (s *server) handleConnection(conn net.Conn) {
	defer s.closeConnection(conn)

	tag := utils.GenerateRandomString(8)
	remote := conn.RemoteAddr().String()

	req, ok := s.readRequestHeaders(conn, tag, remote)
	if !ok {
		return
	}

	ff := middleware.NewForwardedFor(conn.RemoteAddr())
	if err := ff.HandleRequest(req); err != nil {
		log.Printf("[%s] request middleware: %v", tag, err)
	}

	upstream, err := net.Dial("tcp", s.upstream)
	if err != nil {
		log.Printf("[%s] cannot reach upstream %s: %v", tag, s.upstream, err)
		_, _ = conn.Write(types.BadGatewayResponse)
		s.notify(Exchange{Tag: tag, Remote: remote, Request: req, Err: err})
		return
	}
	defer s.closeConnection(upstream)

	if _, err = upstream.Write(req.Bytes()); err != nil {
		log.Printf("[%s] failed to forward request: %v", tag, err)
		return
	}

	// Remaining request body bytes stream through untouched.
	go func() {
		_, _ = io.Copy(upstream, conn)
		if closer, ok := upstream.(interface{ CloseWrite() error }); ok {
			_ = closer.CloseWrite()
		}
	}()

	resp := s.relayResponse(conn, upstream, tag)
	s.notify(Exchange{Tag: tag, Remote: remote, Request: req, Response: resp})
}

// readRequestHeaders feeds inbound chunks into a request message
// until its header block completes. A malformed request gets a 400
// and the connection is dropped.
func (s *server) readRequestHeaders(conn net.Conn, tag, remote string) (message.Message, bool) {
	req := message.NewRequest()
	buf := make([]byte, s.bufferSize)

	for !req.HeadersComplete() {
		n, err := conn.Read(buf)
		if n > 0 {
			if aerr := req.Append(buf[:n]); aerr != nil {
				log.Printf("[%s] malformed request from %s: %v", tag, remote, aerr)
				_, _ = conn.Write(types.BadRequestResponse)
				s.notify(Exchange{Tag: tag, Remote: remote, Request: req, Err: aerr})
				return nil, false
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("[%s] read error from %s: %v", tag, remote, err)
			}
			if !req.HeadersComplete() {
				return nil, false
			}
		}
	}

	return req, true
}

// relayResponse buffers upstream bytes into a response message until
// its headers complete, stamps it, and forwards. Anything the parser
// rejects is passed through raw so unusual upstreams still work.
func (s *server) relayResponse(conn, upstream net.Conn, tag string) message.Message {
	resp := message.NewResponse()
	raw := make([]byte, 0, s.bufferSize)
	buf := make([]byte, s.bufferSize)

	headersSent := false
	passthrough := false

	for {
		n, err := upstream.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			switch {
			case headersSent || passthrough:
				if _, werr := conn.Write(chunk); werr != nil {
					return resp
				}
			default:
				raw = append(raw, chunk...)
				if aerr := resp.Append(chunk); aerr != nil {
					log.Printf("[%s] passing response through raw: %v", tag, aerr)
					passthrough = true
					if _, werr := conn.Write(raw); werr != nil {
						return resp
					}
				} else if resp.HeadersComplete() {
					if merr := middleware.NewVia().HandleResponse(resp); merr != nil {
						log.Printf("[%s] response middleware: %v", tag, merr)
					}
					if _, werr := conn.Write(resp.Bytes()); werr != nil {
						return resp
					}
					headersSent = true
				}
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("[%s] upstream read error: %v", tag, err)
			}
			break
		}
	}

	// Upstream hung up before its header block finished.
	if !headersSent && !passthrough && len(raw) > 0 {
		_, _ = conn.Write(raw)
	}

	return resp
}

func (s *server) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("error closing connection: %v", err)
	}
}
