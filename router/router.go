package router

import "github.com/mayfly-http/mayfly/http"

// Router dispatches a parsed request to a handler and finalizes the
// handler's response.
type Router interface {
	OnRequest(*http.Request) http.Response
}
