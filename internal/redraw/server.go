package redraw

import (
	"context"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// EmbeddedServer runs a NATS server inside the process for local setups
// where the host integration has no broker of its own
type EmbeddedServer struct {
	ns *server.Server

	startupTimeout time.Duration
	host           string
	port           int
}

// ServerOpt configures an EmbeddedServer
type ServerOpt func(*EmbeddedServer)

// WithHost sets the listen host
func WithHost(host string) ServerOpt {
	return func(s *EmbeddedServer) {
		s.host = host
	}
}

// WithPort sets the listen port. -1 picks a random free port.
func WithPort(port int) ServerOpt {
	return func(s *EmbeddedServer) {
		s.port = port
	}
}

// WithStartTimeout bounds how long Start waits for the server
func WithStartTimeout(d time.Duration) ServerOpt {
	return func(s *EmbeddedServer) {
		s.startupTimeout = d
	}
}

// NewEmbeddedServer creates a server; it does not listen until Start
func NewEmbeddedServer(opts ...ServerOpt) (*EmbeddedServer, error) {
	s := &EmbeddedServer{
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
		port:           4222,
	}
	for _, opt := range opts {
		opt(s)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   s.host,
		Port:   s.port,
		NoSigs: true,
		NoLog:  true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create nats server")
	}
	s.ns = ns

	return s, nil
}

// Start begins listening and waits until clients can connect
func (s *EmbeddedServer) Start(ctx context.Context) error {
	s.ns.Start()

	if !s.ns.ReadyForConnections(s.startupTimeout) {
		return errors.Unavailable("nats server not ready for connections")
	}

	slog.InfoContext(ctx, "embedded nats server listening", "url", s.ns.ClientURL())
	return nil
}

// ClientURL returns the URL clients connect to
func (s *EmbeddedServer) ClientURL() string {
	return s.ns.ClientURL()
}

// Shutdown stops the server and waits for it to exit
func (s *EmbeddedServer) Shutdown() {
	s.ns.Shutdown()
	s.ns.WaitForShutdown()
}

// Connect dials a NATS server and logs connection changes
func Connect(ctx context.Context, url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("glamour-api"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.WarnContext(ctx, "nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.InfoContext(ctx, "nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to nats at "+url)
	}
	return conn, nil
}
