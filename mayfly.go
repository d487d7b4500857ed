package mayfly

import (
	"net"

	"github.com/mayfly-http/mayfly/config"
	"github.com/mayfly-http/mayfly/http/status"
	"github.com/mayfly-http/mayfly/internal/render"
	"github.com/mayfly-http/mayfly/internal/server/http"
	"github.com/mayfly-http/mayfly/internal/server/tcp"
	"github.com/mayfly-http/mayfly/internal/strutil"
	"github.com/mayfly-http/mayfly/router"
)

// responseBuffSize is the initial size of a per-connection response buffer.
// The buffer grows on demand, so only responses above the value pay for it.
const responseBuffSize = 1024

// App is the entry point of the whole server, gluing the configuration, the
// router and the lifecycle together.
type App struct {
	addr  string
	cfg   config.Config
	hooks hooks
	errCh chan error
}

// New returns a new App instance, which will listen on the passed address.
// Addresses without a host part are bound to all the interfaces, so ":8080"
// becomes "0.0.0.0:8080". An empty address is a programmer error and panics.
func New(addr string) *App {
	if len(addr) == 0 {
		panic("mayfly: listen: empty address")
	}

	return &App{
		addr:  strutil.NormalizeAddress(addr),
		cfg:   config.Default(),
		errCh: make(chan error),
	}
}

// Tune replaces default configuration. Unset fields are filled with defaults
// back via config.Fill.
func (a *App) Tune(cfg config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound and
// the server is about to accept new connections.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment the server has stopped. It is
// guaranteed that by then the server doesn't accept any new connections and
// all the clients are already disconnected.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the web-application, blocking until it is stopped via Stop or
// GracefulStop. A nil router is a programmer error and panics.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		panic("mayfly: serve: nil router")
	}

	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	server := tcp.NewServer(sock, a.newPool(), a.newTCPCallback(r))

	return a.run(server)
}

func (a *App) run(server *tcp.Server) error {
	serveCh := make(chan error)
	go func() {
		serveCh <- server.Start()
	}()

	callIfNotNil(a.hooks.OnStart)

	var err error
	select {
	case err = <-serveCh:
		// the listener broke down on its own
	case err = <-a.errCh:
		if err == status.ErrGracefulShutdown {
			// stop listening to new clients and process till the end all the old ones
			_ = server.GracefulShutdown()
		} else {
			_ = server.Stop()
		}

		<-serveCh
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving old ones.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// may still be working
func (a *App) GracefulStop() {
	a.errCh <- status.ErrGracefulShutdown
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// may still be working
func (a *App) Stop() {
	a.errCh <- status.ErrShutdown
}

func (a *App) newPool() *tcp.Pool {
	if a.cfg.Workers.PoolSize == 0 {
		return nil
	}

	return tcp.NewPool(a.cfg.Workers.PoolSize, a.cfg.Workers.QueueSize)
}

func (a *App) newTCPCallback(r router.Router) func(net.Conn) {
	return func(conn net.Conn) {
		client := tcp.NewClient(conn, make([]byte, a.cfg.TCP.ReadBufferSize))
		// the exchange outcome has nowhere to go from here: a failed
		// connection simply ends, so the classified error is dropped
		_ = http.NewServer(r, render.NewSerializer(responseBuffSize)).Run(client)
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
