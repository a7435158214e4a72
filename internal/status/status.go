package status

import "net/http"

const unknownStatus = "Unknown Status"

// Text returns the reason phrase for a status code. Unknown codes get
// a fixed fallback so composed status lines never end up truncated.
func Text(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return unknownStatus
}
