package http

import (
	"fmt"

	"github.com/mayfly-http/mayfly/http/status"
	"github.com/mayfly-http/mayfly/internal/parser/http1"
	"github.com/mayfly-http/mayfly/internal/render"
	"github.com/mayfly-http/mayfly/internal/server/tcp"
	"github.com/mayfly-http/mayfly/router"
)

// Server glues a client, the parser and a router together, driving a single
// request-response exchange over a connection.
type Server struct {
	router     router.Router
	serializer *render.Serializer
}

// NewServer instantiates a server. Both the server and the serializer stick
// to a single connection, so neither is to be shared.
func NewServer(router router.Router, serializer *render.Serializer) *Server {
	return &Server{
		router:     router,
		serializer: serializer,
	}
}

// Run serves exactly one request and closes the client afterwards. A request
// that cannot be parsed is answered with nothing at all, so closing the
// connection constitutes the whole response. The returned error tells the
// failure apart: status.ErrNetwork for a read yielding no data, a parser
// error for a malformed request, or a write error from the serializer.
func (s *Server) Run(client tcp.Client) error {
	defer func() {
		_ = client.Close()
	}()

	// a half-closed peer hands over the data and io.EOF at once, which still
	// counts as a request worth answering
	data, err := client.Read()
	if len(data) == 0 {
		if err != nil {
			return fmt.Errorf("%w: %s", status.ErrNetwork, err)
		}

		return status.ErrNetwork
	}

	request, err := http1.Parse(data)
	if err != nil {
		return err
	}

	return s.serializer.Write(s.router.OnRequest(request), client)
}
