package message

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

type lineState int

const (
	linePending lineState = iota
	lineMalformed
	lineParsed
)

const versionPrefix = "HTTP/"

// minVersionUnits is the UTF-16 length of the shortest legal version
// token ("HTTP/1.1"). A shorter token on an unterminated line may
// just be cut mid-chunk, so it cannot be judged yet.
const minVersionUnits = 8

type firstLine struct {
	state    lineState
	complete bool

	version string
	method  string
	rawURL  string
	code    int
}

// parseFirstLine applies the role-specific rules to a candidate first
// line. terminated reports whether an end-of-line was already located
// in the buffer; without it the outcome may stay pending or be parsed
// tentatively (complete=false).
func parseFirstLine(kind Kind, candidate string, terminated bool) firstLine {
	if kind == KindResponse {
		return parseStatusLine(candidate, terminated)
	}
	return parseRequestLine(candidate, terminated)
}

func parseStatusLine(candidate string, terminated bool) firstLine {
	fields := splitSpaces(candidate)
	if len(fields) < 3 {
		if terminated {
			return firstLine{state: lineMalformed}
		}
		return firstLine{state: linePending}
	}

	version := fields[0]
	if !versionJudgeable(version, terminated) {
		return firstLine{state: linePending}
	}
	if !strings.HasPrefix(version, versionPrefix) {
		return firstLine{state: lineMalformed}
	}

	code, err := strconv.Atoi(fields[1])
	if err != nil {
		if terminated {
			return firstLine{state: lineMalformed}
		}
		code = 0
	}

	return firstLine{
		state:    lineParsed,
		complete: terminated,
		version:  version,
		code:     code,
	}
}

func parseRequestLine(candidate string, terminated bool) firstLine {
	fields := splitSpaces(candidate)
	if len(fields) < 2 || len(fields) > 3 {
		if terminated {
			return firstLine{state: lineMalformed}
		}
		return firstLine{state: linePending}
	}

	if len(fields) == 2 {
		// A third field may still arrive.
		if !terminated {
			return firstLine{state: linePending}
		}
		return firstLine{
			state:    lineParsed,
			complete: true,
			version:  "HTTP/1.0",
			method:   fields[0],
			rawURL:   fields[1],
		}
	}

	version := fields[2]
	if !versionJudgeable(version, terminated) {
		return firstLine{state: linePending}
	}
	if !strings.HasPrefix(version, versionPrefix) {
		return firstLine{state: lineMalformed}
	}

	return firstLine{
		state:    lineParsed,
		complete: terminated,
		version:  version,
		method:   fields[0],
		rawURL:   fields[1],
	}
}

func versionJudgeable(token string, terminated bool) bool {
	return terminated || utf16Len(token) >= minVersionUnits
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// splitSpaces splits on single ASCII spaces, dropping empty fields so
// runs of spaces collapse.
func splitSpaces(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, " ") {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
