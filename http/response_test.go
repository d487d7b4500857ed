package http

import (
	"bytes"
	"io"
	"strconv"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/mayfly-http/mayfly/http/status"
	"github.com/mayfly-http/mayfly/kv"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, b []byte) string {
	r, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	decoded, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(decoded)
}

func TestResponseBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		resp := OK().Build()
		require.Equal(t, status.OK, resp.Code())
		require.Equal(t, []kv.Pair{{Key: "Content-Length", Value: "0"}}, resp.Headers())
		require.Nil(t, resp.Body())
	})

	t.Run("constructors", func(t *testing.T) {
		require.Equal(t, status.OK, OK().Build().Code())
		require.Equal(t, status.BadRequest, BadRequest().Build().Code())
		require.Equal(t, status.NotFound, NotFound().Build().Code())
		require.Equal(t, status.InternalServerError, InternalServerError().Build().Code())
		require.Equal(t, status.Created, NewResponse().Code(status.Created).Build().Code())
	})

	t.Run("headers keep insertion order", func(t *testing.T) {
		resp := OK().
			Header("Connection", "Keep-Alive").
			Header("Keep-Alive", "timeout=5, max=1000").
			Build()

		require.Equal(t, []kv.Pair{
			{Key: "Connection", Value: "Keep-Alive"},
			{Key: "Keep-Alive", Value: "timeout=5, max=1000"},
			{Key: "Content-Length", Value: "0"},
		}, resp.Headers())
	})

	t.Run("content length reflects body", func(t *testing.T) {
		resp := OK().String("Hello, world!").Build()
		require.Equal(t, "Hello, world!", string(resp.Body()))
		require.Equal(t, []kv.Pair{{Key: "Content-Length", Value: "13"}}, resp.Headers())
	})

	t.Run("manual content length is dropped", func(t *testing.T) {
		resp := OK().
			Header("Content-Length", "1337").
			Headers([]kv.Pair{
				{Key: "Content-Length", Value: "42"},
				{Key: "X-Custom", Value: "kept"},
			}).
			String("hi").
			Build()

		require.Equal(t, []kv.Pair{
			{Key: "X-Custom", Value: "kept"},
			{Key: "Content-Length", Value: "2"},
		}, resp.Headers())
	})

	t.Run("suppression wins over manual content length", func(t *testing.T) {
		resp := OK().
			Header("Content-Length", "1337").
			WithoutContentLength().
			WithoutContentLength().
			Build()

		require.Empty(t, resp.Headers())
		require.Nil(t, resp.Body())
	})

	t.Run("empty body is not nil body", func(t *testing.T) {
		resp := OK().String("").Build()
		require.NotNil(t, resp.Body())
		require.Empty(t, resp.Body())
		require.Equal(t, []kv.Pair{{Key: "Content-Length", Value: "0"}}, resp.Headers())
	})

	t.Run("last body wins", func(t *testing.T) {
		resp := OK().String("first").Bytes([]byte("second")).Build()
		require.Equal(t, "second", string(resp.Body()))
	})
}

func TestResponseBuilderGzip(t *testing.T) {
	t.Run("compresses with header and body", func(t *testing.T) {
		resp := OK().
			Header("Content-Encoding", "gzip").
			String("Hello, world!").
			Build()

		require.Equal(t, "Hello, world!", gunzip(t, resp.Body()))

		headers := resp.Headers()
		last := headers[len(headers)-1]
		require.Equal(t, "Content-Length", last.Key)
		require.Equal(t, strconv.Itoa(len(resp.Body())), last.Value)
	})

	t.Run("no body means no compression", func(t *testing.T) {
		resp := OK().Header("Content-Encoding", "gzip").Build()
		require.Nil(t, resp.Body())
		require.Equal(t, []kv.Pair{
			{Key: "Content-Encoding", Value: "gzip"},
			{Key: "Content-Length", Value: "0"},
		}, resp.Headers())
	})

	t.Run("exact pair match only", func(t *testing.T) {
		resp := OK().
			Header("Content-Encoding", "GZIP").
			Header("content-encoding", "gzip").
			String("plain").
			Build()

		require.Equal(t, "plain", string(resp.Body()))
	})
}

func TestResponseJSON(t *testing.T) {
	resp, err := OK().TryJSON([]int{1, 2, 3})
	require.NoError(t, err)
	built := resp.Build()
	require.Equal(t, "[1,2,3]", string(built.Body()))
	require.Equal(t, []kv.Pair{
		{Key: "Content-Type", Value: "application/json"},
		{Key: "Content-Length", Value: "7"},
	}, built.Headers())
}
