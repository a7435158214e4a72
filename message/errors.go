package message

import "errors"

// Parse failures are terminal: once one is returned the message is
// marked headers-complete and no further bytes are interpreted.
var (
	ErrMalformedFirstLine     = errors.New("malformed first line")
	ErrMalformedHeaderLine    = errors.New("malformed header line")
	ErrUnexpectedContinuation = errors.New("continuation line without a preceding header")
)
