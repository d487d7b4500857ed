package codec

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

var _ Codec = GZIP{}

type GZIP struct{}

func NewGZIP() GZIP {
	return GZIP{}
}

func (GZIP) Token() string {
	return "gzip"
}

// Encode compresses src at the default compression level.
func (GZIP) Encode(src []byte) ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	w := gzip.NewWriter(buff)

	if _, err := w.Write(src); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
