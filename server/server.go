package server

import (
	"errors"
	"fmt"
	"log"
	"net"

	"http_peek/internal/config"
	"http_peek/message"
)

// Exchange is the record of one proxied request/response pair handed
// to taps. Response may be nil when the request never made it
// upstream.
type Exchange struct {
	Tag      string
	Remote   string
	Request  message.Message
	Response message.Message
	Err      error
}

// Tap observes completed exchanges, e.g. the watch-mode inspector.
type Tap interface {
	Notify(ex Exchange)
}

type Server interface {
	Start()
	Close() error
	Addr() net.Addr
}

type server struct {
	listener   net.Listener
	upstream   string
	bufferSize int
	taps       []Tap
}

func New(cfg config.Config, taps ...Tap) (Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.HTTPPort()))
	if err != nil {
		return nil, err
	}

	return &server{
		listener:   listener,
		upstream:   cfg.UpstreamAddress(),
		bufferSize: cfg.BufferSize(),
		taps:       taps,
	}, nil
}

func (s *server) Start() {
	log.Printf("proxy listening on %s, forwarding to %s", s.listener.Addr(), s.upstream)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				log.Println("listener closed, stopping server")
				return
			}
			log.Printf("failed to accept connection: %v", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

func (s *server) Close() error {
	return s.listener.Close()
}

func (s *server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *server) notify(ex Exchange) {
	for _, tap := range s.taps {
		tap.Notify(ex)
	}
}
