package http

import (
	"fmt"
	"strconv"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
	"github.com/mayfly-http/mayfly/http/codec"
	"github.com/mayfly-http/mayfly/http/mime"
	"github.com/mayfly-http/mayfly/http/status"
	"github.com/mayfly-http/mayfly/kv"
)

const preallocRespHeaders = 7

var (
	gzipCodec = codec.NewGZIP()
	// emptyBody keeps present-but-empty bodies distinguishable from absent ones.
	emptyBody = make([]byte, 0)
)

// Draft is a response with no status code picked yet. The only thing it can
// do is become a ResponseBuilder by picking one.
type Draft struct{}

// NewResponse returns a Draft. Usually one of the shorthand constructors
// (OK, BadRequest, ...) is what you want instead.
func NewResponse() Draft {
	return Draft{}
}

// Code picks the status code, unlocking the rest of the builder.
func (Draft) Code(code status.Code) *ResponseBuilder {
	return newBuilder(code)
}

// OK returns a builder for a 200 response.
func OK() *ResponseBuilder {
	return newBuilder(status.OK)
}

// BadRequest returns a builder for a 400 response.
func BadRequest() *ResponseBuilder {
	return newBuilder(status.BadRequest)
}

// NotFound returns a builder for a 404 response.
func NotFound() *ResponseBuilder {
	return newBuilder(status.NotFound)
}

// InternalServerError returns a builder for a 500 response.
func InternalServerError() *ResponseBuilder {
	return newBuilder(status.InternalServerError)
}

// ResponseBuilder accumulates headers and a body for a response whose status
// code is already known. It is single-use: Build finalizes it.
type ResponseBuilder struct {
	code              status.Code
	headers           []kv.Pair
	body              []byte
	omitContentLength bool
}

func newBuilder(code status.Code) *ResponseBuilder {
	return &ResponseBuilder{
		code:    code,
		headers: make([]kv.Pair, 0, preallocRespHeaders),
	}
}

// Header appends a single header pair. Content-Length is managed exclusively
// by Build, pairs trying to set it manually are silently dropped.
func (r *ResponseBuilder) Header(key, value string) *ResponseBuilder {
	if key == "Content-Length" {
		return r
	}

	r.headers = append(r.headers, kv.Pair{Key: key, Value: value})
	return r
}

// Headers appends the pairs in the given order, applying the same
// Content-Length filter as Header.
func (r *ResponseBuilder) Headers(pairs []kv.Pair) *ResponseBuilder {
	for _, pair := range pairs {
		r.Header(pair.Key, pair.Value)
	}

	return r
}

// WithoutContentLength omits the Content-Length header entirely, no matter
// what the body is. Calling it more than once changes nothing.
func (r *ResponseBuilder) WithoutContentLength() *ResponseBuilder {
	r.omitContentLength = true
	return r
}

// String sets the response's body to the passed string
func (r *ResponseBuilder) String(body string) *ResponseBuilder {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *ResponseBuilder) Bytes(body []byte) *ResponseBuilder {
	if body == nil {
		body = emptyBody
	}

	r.body = body
	return r
}

// Write implements io.Writer. It always returns n=len(b) and err=nil
func (r *ResponseBuilder) Write(b []byte) (n int, err error) {
	r.body = append(r.body, b...)
	return len(b), nil
}

// TryJSON marshals the model into the body and sets the content type to
// application/json.
func (r *ResponseBuilder) TryJSON(model any) (*ResponseBuilder, error) {
	r.body = r.body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.Header("Content-Type", mime.JSON), err
}

// JSON does the same as TryJSON does, except a marshalling error is
// converted into a 500 response carrying the error text.
func (r *ResponseBuilder) JSON(model any) *ResponseBuilder {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error turns the builder into a 500 response with the error text as its
// body. nil err leaves the builder untouched.
func (r *ResponseBuilder) Error(err error) *ResponseBuilder {
	if err == nil {
		return r
	}

	r.code = status.InternalServerError
	return r.String(err.Error())
}

// Build finalizes the response. The builder must not be used afterwards.
//
// The body is gzip-compressed if it is present and an accumulated header
// pair is exactly ("Content-Encoding", "gzip"). Unless omitted via
// WithoutContentLength, a Content-Length pair reflecting the final body size
// is appended as the last header.
func (r *ResponseBuilder) Build() Response {
	body := r.body
	if body != nil && r.wantsGzip() {
		encoded, err := gzipCodec.Encode(body)
		if err != nil {
			panic(fmt.Sprintf("BUG: in-memory gzip encoding failed: %s", err))
		}

		body = encoded
	}

	headers := r.headers
	if !r.omitContentLength {
		headers = append(headers, kv.Pair{
			Key:   "Content-Length",
			Value: strconv.Itoa(len(body)),
		})
	}

	return Response{
		code:    r.code,
		headers: headers,
		body:    body,
	}
}

func (r *ResponseBuilder) wantsGzip() bool {
	for _, pair := range r.headers {
		if pair.Key == "Content-Encoding" && pair.Value == "gzip" {
			return true
		}
	}

	return false
}

// Response is a finalized, immutable response ready for serialization.
type Response struct {
	code    status.Code
	headers []kv.Pair
	body    []byte
}

func (r Response) Code() status.Code {
	return r.code
}

// Headers returns the header pairs in their final wire order.
func (r Response) Headers() []kv.Pair {
	return r.headers
}

// Body returns the raw body bytes. nil means the response carries none.
func (r Response) Body() []byte {
	return r.body
}
