package middleware

import (
	"http_peek/internal/version"
	"http_peek/message"
)

type Via struct{}

func NewVia() *Via {
	return &Via{}
}

func (v *Via) HandleResponse(msg message.Message) error {
	stamp := "1.1 http_peek/" + version.GetShortVersion()
	if existing := msg.Value("Via"); existing != "" {
		stamp = existing + ", " + stamp
	}
	msg.Set("Via", stamp)
	return nil
}
