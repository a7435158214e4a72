package middleware

import (
	"http_peek/message"
)

type RequestMiddleware interface {
	HandleRequest(msg message.Message) error
}

type ResponseMiddleware interface {
	HandleResponse(msg message.Message) error
}
