package dummy

import (
	"io"
	"net"

	"github.com/mayfly-http/mayfly/internal/server/tcp"
)

// CircularClient is a client that on every read-operation returns the same data as it
// was initialised with. Everything written into it is accumulated and can be inspected
// via Written
type CircularClient struct {
	data            [][]byte
	pointer         int
	written         []byte
	closed, oneTime bool
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		data:    data,
		pointer: -1,
	}
}

func (c *CircularClient) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	if c.oneTime {
		c.closed = true
	}

	c.pointer++

	if c.pointer == len(c.data) {
		c.pointer = 0
	}

	return c.data[c.pointer], nil
}

func (c *CircularClient) Write(b []byte) error {
	c.written = append(c.written, b...)
	return nil
}

// Written returns everything passed to Write so far.
func (c *CircularClient) Written() []byte {
	return c.written
}

func (*CircularClient) Remote() net.Addr {
	return nil
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

// OneTime makes the client return io.EOF on every read except the first one.
func (c *CircularClient) OneTime() *CircularClient {
	c.oneTime = true
	return c
}

// NewNopClient returns a client that reads nothing and discards nothing, which
// is still enough for the tests not caring about the traffic.
func NewNopClient() tcp.Client {
	return NewCircularClient(nil)
}
