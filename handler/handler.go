package handler

import (
	"github.com/mayfly-http/mayfly/http"
	"github.com/mayfly-http/mayfly/http/mime"
)

// Func is the shape every handler in this package satisfies.
type Func = func(*http.Request) *http.ResponseBuilder

// Root announces keep-alive connection hints. The server still closes the
// connection after the exchange, the headers go out regardless.
func Root(*http.Request) *http.ResponseBuilder {
	return http.OK().
		Header("Connection", "Keep-Alive").
		Header("Keep-Alive", "timeout=5, max=1000").
		WithoutContentLength()
}

// UserAgent echoes the first User-Agent header back as plain text. The
// lookup is byte-exact, a request without the header is a bad request.
func UserAgent(request *http.Request) *http.ResponseBuilder {
	agent, found := request.Headers.Get("User-Agent")
	if !found {
		return http.BadRequest()
	}

	return http.OK().
		Header("Content-Type", mime.Plain).
		String(agent)
}

// Echo sends the "text" routing var back as plain text. An empty capture
// responds without a body at all.
func Echo(request *http.Request) *http.ResponseBuilder {
	builder := http.OK().Header("Content-Type", mime.Plain)
	if text := request.Vars.Value("text"); text != "" {
		builder.String(text)
	}

	return builder
}
