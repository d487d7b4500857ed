package tcp

import (
	"net"
)

// Client is a basic abstraction over a connection, allowing to easily yet
// efficiently communicate with it.
type Client interface {
	Read() ([]byte, error)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn net.Conn
	buff []byte
}

// NewClient wraps a connection with a reading buffer. Reads carry no deadline,
// a silent peer simply keeps the connection occupied.
func NewClient(conn net.Conn, buff []byte) Client {
	return &client{
		conn: conn,
		buff: buff,
	}
}

func (c *client) Read() ([]byte, error) {
	n, err := c.conn.Read(c.buff)

	return c.buff[:n], err
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
