package scan

import "bytes"

// Result describes the first line terminator found in a byte range.
// End is the index where the line content stops, Next is where the
// following line begins. CRLF reports whether a CR participated in
// the terminator.
type Result struct {
	End  int
	Next int
	CRLF bool
}

// Line locates the first CR or LF in data. An adjacent CR/LF pair
// counts as a single terminator. When CR and LF both occur but are
// not adjacent, the CR wins regardless of position.
func Line(data []byte) (Result, bool) {
	lf := bytes.IndexByte(data, '\n')
	cr := bytes.IndexByte(data, '\r')

	switch {
	case cr == -1 && lf == -1:
		return Result{}, false
	case cr != -1 && lf != -1 && (lf-cr == 1 || cr-lf == 1):
		end, next := cr, lf
		if lf < cr {
			end, next = lf, cr
		}
		return Result{End: end, Next: next + 1, CRLF: true}, true
	case cr != -1:
		return Result{End: cr, Next: cr + 1, CRLF: true}, true
	default:
		return Result{End: lf, Next: lf + 1, CRLF: false}, true
	}
}
