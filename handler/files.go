package handler

import (
	"errors"

	"github.com/mayfly-http/mayfly/http"
	"github.com/mayfly-http/mayfly/http/mime"
	"github.com/mayfly-http/mayfly/http/status"
	"github.com/mayfly-http/mayfly/storage"
)

// FileGet serves the file named by the "file" routing var out of dir. Every
// read failure collapses into a headerless 404.
func FileGet(dir storage.Dir) Func {
	return func(request *http.Request) *http.ResponseBuilder {
		content, err := dir.Read(request.Vars.Value("file"))
		if err != nil {
			return http.NotFound().WithoutContentLength()
		}

		return http.OK().
			Header("Content-Type", mime.OctetStream).
			Bytes(content)
	}
}

// FileCreate stores the request body under the "file" routing var, an absent
// body makes an empty file. A target that cannot be opened is an internal
// error, a write that did not complete is a bad request, success is a bare
// 201.
func FileCreate(dir storage.Dir) Func {
	return func(request *http.Request) *http.ResponseBuilder {
		err := dir.Create(request.Vars.Value("file"), request.Body)
		switch {
		case errors.Is(err, storage.ErrOpen):
			return http.InternalServerError().WithoutContentLength()
		case err != nil:
			return http.BadRequest()
		}

		return http.NewResponse().Code(status.Created).WithoutContentLength()
	}
}
