package tcp

import (
	"net"
	"sync"

	"github.com/mayfly-http/mayfly/http/status"
)

type onConnection func(net.Conn)

type Server struct {
	sock     net.Listener
	onConn   onConnection
	pool     *Pool
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
}

// NewServer wires a listener with a connection callback. A nil pool is fine
// and makes every connection be served on an own goroutine.
func NewServer(sock net.Listener, pool *Pool, onConn onConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		pool:   pool,
		conns:  map[net.Conn]struct{}{},
	}
}

func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.pool != nil {
				s.pool.Stop()
			}

			wg.Wait()

			if s.isShutdown() {
				return status.ErrShutdown
			}

			return err
		}

		s.track(conn)
		wg.Add(1)

		if s.pool == nil {
			go s.connHandler(wg, conn)
			continue
		}

		s.pool.Schedule(func() {
			s.connHandler(wg, conn)
		})
	}
}

func (s *Server) stopListener() error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

// Stop shuts the listener and ALL the connections down
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops a listener, but leaving all the connections free to end their
// lives peacefully
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	s.onConn(conn)
	s.untrack(conn)
	wg.Done()
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) isShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shutdown
}
