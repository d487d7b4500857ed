package http1

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"
	"github.com/mayfly-http/mayfly/http"
	"github.com/mayfly-http/mayfly/http/method"
	"github.com/mayfly-http/mayfly/http/status"
	"github.com/mayfly-http/mayfly/kv"
)

const (
	protoHTTP11     = "HTTP/1.1"
	preallocHeaders = 8
)

// Parse consumes the whole buffered request at once and constructs an
// http.Request out of it. There is no streaming: whatever the first read
// delivered is all there is.
//
// Errors are reported in a fixed order: encoding, then request line shape,
// then method, then path, then protocol, then headers. Both CRLF and bare LF
// line endings are accepted.
func Parse(data []byte) (*http.Request, error) {
	if !utf8.Valid(data) {
		return nil, status.ErrBadEncoding
	}

	reader := lines{s: uf.B2S(data)}

	requestLine, ok := reader.next()
	if !ok {
		return nil, status.ErrInvalidRequest
	}

	methodTok, rest, ok := cutToken(requestLine)
	if !ok {
		return nil, status.ErrInvalidRequest
	}

	m := method.Parse(methodTok)
	if m == method.Unknown {
		return nil, status.ErrInvalidMethod
	}

	path, protocol, ok := cutToken(rest)
	if !ok {
		return nil, status.ErrInvalidRequest
	}

	if !strings.HasPrefix(path, "/") {
		return nil, status.ErrInvalidRequest
	}

	if len(protocol) == 0 {
		return nil, status.ErrInvalidRequest
	}
	if protocol != protoHTTP11 {
		return nil, status.ErrInvalidProtocol
	}

	headers, err := parseHeaders(&reader)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(m, path, headers, collectBody(&reader)), nil
}

// parseHeaders consumes lines until the first empty one. Pairs are kept in
// their wire order, keys are not folded, duplicates are not merged.
func parseHeaders(reader *lines) (*kv.Storage, error) {
	headers := kv.NewPrealloc(preallocHeaders)

	for {
		line, ok := reader.next()
		if !ok || len(line) == 0 {
			return headers, nil
		}

		key, value, found := strings.Cut(line, ": ")
		if !found {
			return nil, status.ErrInvalidRequest
		}

		headers.Add(key, value)
	}
}

// collectBody glues the remaining lines together. Line terminators are
// stripped and never reconstructed. nil is returned if no line followed the
// headers section.
func collectBody(reader *lines) []byte {
	var body []byte

	for {
		line, ok := reader.next()
		if !ok {
			return body
		}

		if body == nil {
			body = make([]byte, 0, len(line))
		}

		body = append(body, line...)
	}
}

// cutToken splits off the first space-separated token. Without a space the
// whole input is the token. Empty input carries no token at all.
func cutToken(s string) (token, rest string, ok bool) {
	if len(s) == 0 {
		return "", "", false
	}

	if sp := strings.IndexByte(s, ' '); sp != -1 {
		return s[:sp], s[sp+1:], true
	}

	return s, "", true
}

// lines iterates over text lines: split on LF, one trailing CR is stripped.
// A line not terminated by LF keeps its trailing CR, if any.
type lines struct {
	s string
}

func (l *lines) next() (line string, ok bool) {
	if len(l.s) == 0 {
		return "", false
	}

	lf := strings.IndexByte(l.s, '\n')
	if lf == -1 {
		line, l.s = l.s, ""
		return line, true
	}

	line, l.s = l.s[:lf], l.s[lf+1:]
	return strings.TrimSuffix(line, "\r"), true
}
