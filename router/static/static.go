package static

import (
	"strings"

	"github.com/mayfly-http/mayfly/http"
	"github.com/mayfly-http/mayfly/http/method"
	"github.com/mayfly-http/mayfly/internal/strutil"
	"github.com/mayfly-http/mayfly/router"
)

// Handler produces a response builder for a request. Encoding negotiation is
// none of its business, the router settles that by itself.
type Handler func(*http.Request) *http.ResponseBuilder

var _ router.Router = (*Router)(nil)

// Router is a fixed-table router. Paths are matched verbatim, except routes
// whose template ends in a ":name" segment: those match by prefix and capture
// the rest of the path (slashes included) into request.Vars under that name.
type Router struct {
	exact    map[exactKey]Handler
	prefixes []prefixRoute
}

type exactKey struct {
	method method.Method
	path   string
}

type prefixRoute struct {
	method  method.Method
	prefix  string
	varName string
	handler Handler
}

func New() *Router {
	return &Router{
		exact: make(map[exactKey]Handler),
	}
}

// Route registers the handler for the method and path template. Registering
// the same route twice, or a malformed template, panics.
func (r *Router) Route(m method.Method, path string, handler Handler) *Router {
	prefix, varName, dynamic := splitTemplate(path)
	if !dynamic {
		key := exactKey{m, path}
		if _, occupied := r.exact[key]; occupied {
			panic("route is already registered: " + m.String() + " " + path)
		}

		r.exact[key] = handler
		return r
	}

	for _, route := range r.prefixes {
		if route.method == m && route.prefix == prefix {
			panic("route is already registered: " + m.String() + " " + path)
		}
	}

	r.prefixes = append(r.prefixes, prefixRoute{
		method:  m,
		prefix:  prefix,
		varName: varName,
		handler: handler,
	})

	return r
}

func (r *Router) Get(path string, handler Handler) *Router {
	return r.Route(method.GET, path, handler)
}

func (r *Router) Post(path string, handler Handler) *Router {
	return r.Route(method.POST, path, handler)
}

func (r *Router) Put(path string, handler Handler) *Router {
	return r.Route(method.PUT, path, handler)
}

// OnRequest looks the handler up and finalizes whatever builder it returns.
// Content negotiation happens here and only here: if the request accepts
// gzip, the Content-Encoding header is attached to the builder before
// finalizing, so the body gets compressed on the way out. An unmatched
// request turns into a bare 404 with no negotiation applied.
func (r *Router) OnRequest(request *http.Request) http.Response {
	handler := r.lookup(request)
	if handler == nil {
		return http.NotFound().Build()
	}

	builder := handler(request)

	if strutil.HasToken(request.Headers.Value("Accept-Encoding"), "gzip") {
		builder.Header("Content-Encoding", "gzip")
	}

	return builder.Build()
}

func (r *Router) lookup(request *http.Request) Handler {
	if handler, found := r.exact[exactKey{request.Method, request.Path}]; found {
		return handler
	}

	best := -1
	for i, route := range r.prefixes {
		if route.method != request.Method || !strings.HasPrefix(request.Path, route.prefix) {
			continue
		}

		if best == -1 || len(route.prefix) > len(r.prefixes[best].prefix) {
			best = i
		}
	}

	if best == -1 {
		return nil
	}

	route := r.prefixes[best]
	request.Vars.Add(route.varName, request.Path[len(route.prefix):])

	return route.handler
}

// splitTemplate recognizes a trailing ":name" capture segment. The colon
// must open the last segment and the name must not be empty.
func splitTemplate(path string) (prefix, varName string, dynamic bool) {
	colon := strings.IndexByte(path, ':')
	if colon == -1 {
		return "", "", false
	}

	malformed := colon == 0 ||
		path[colon-1] != '/' ||
		colon == len(path)-1 ||
		strings.ContainsAny(path[colon+1:], "/:")
	if malformed {
		panic("malformed route template: " + path)
	}

	return path[:colon], path[colon+1:], true
}
