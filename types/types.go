package types

type ServerMode string

const (
	ServerModePROXY ServerMode = "PROXY"
	ServerModeWATCH ServerMode = "WATCH"
)

var BadRequestResponse = []byte("HTTP/1.1 400 Bad Request\r\n" +
	"Content-Length: 0\r\n" +
	"Connection: close\r\n" +
	"\r\n")

var BadGatewayResponse = []byte("HTTP/1.1 502 Bad Gateway\r\n" +
	"Content-Length: 11\r\n" +
	"Content-Type: text/plain\r\n\r\n" +
	"Bad Gateway")
