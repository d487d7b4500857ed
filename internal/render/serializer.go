package render

import (
	"strconv"

	"github.com/mayfly-http/mayfly/http"
	"github.com/mayfly-http/mayfly/http/status"
)

var protocol = []byte("HTTP/1.1 ")

// ClientWriter is the writing half of a connection.
type ClientWriter interface {
	Write([]byte) error
}

// Serializer renders a finalized response into an owned buffer and flushes it
// with a single write. An instance serves one connection at a time.
type Serializer struct {
	buff []byte
}

func NewSerializer(buffSize int) *Serializer {
	return &Serializer{
		buff: make([]byte, 0, buffSize),
	}
}

// Write renders the response and sends it through the writer as one chunk.
// Headers go out exactly as the response carries them: same order, no
// additions, no merging.
func (s *Serializer) Write(response http.Response, writer ClientWriter) error {
	defer s.clear()

	s.renderStatusLine(response.Code())

	for _, header := range response.Headers() {
		s.renderHeader(header.Key, header.Value)
	}

	s.crlf()
	s.buff = append(s.buff, response.Body()...)

	return writer.Write(s.buff)
}

func (s *Serializer) renderStatusLine(code status.Code) {
	s.buff = append(s.buff, protocol...)
	s.buff = strconv.AppendInt(s.buff, int64(code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, status.Text(code)...)
	s.crlf()
}

func (s *Serializer) renderHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
