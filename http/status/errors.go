package status

// HTTPError is a protocol violation discovered while reading or parsing a
// request. It never maps to a response: the connection is closed without
// writing a single byte.
type HTTPError struct {
	Message string
}

func NewError(message string) error {
	return HTTPError{Message: message}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// ErrShutdown signals the accept loop to unwind immediately, closing all
	// live connections. ErrGracefulShutdown lets them finish first.
	ErrShutdown         = NewError("shutting down")
	ErrGracefulShutdown = NewError("shutting down gracefully")

	ErrBadEncoding     = NewError("request is not valid utf-8")
	ErrInvalidMethod   = NewError("unrecognized request method")
	ErrInvalidProtocol = NewError("unsupported protocol version")
	ErrInvalidRequest  = NewError("malformed request")
	ErrNetwork         = NewError("network error while reading the request")
)
