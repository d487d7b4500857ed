package http

import (
	"github.com/mayfly-http/mayfly/http/method"
	"github.com/mayfly-http/mayfly/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
	Vars    = *kv.Storage
)

// Request represents a single HTTP request. The parser constructs one per
// connection, and it stays read-only for the rest of the exchange.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the raw request target. It is guaranteed to begin with a slash,
	// nothing else about it is validated or decoded.
	Path string
	// Headers holds non-normalized header pairs in their wire order. Lookup is
	// byte-exact, duplicates are kept.
	Headers Headers
	// Vars are dynamic routing segments. The router fills them right before
	// dispatching the request to a handler.
	Vars Vars
	// Body is the reconstructed message body. nil means the request carried none.
	Body []byte
}

func NewRequest(m method.Method, path string, headers Headers, body []byte) *Request {
	return &Request{
		Method:  m,
		Path:    path,
		Headers: headers,
		Vars:    kv.New(),
		Body:    body,
	}
}
