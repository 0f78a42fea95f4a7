package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/glamour-api/internal/config"
	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/handlers/glamour/v1alpha1"
	"github.com/KirkDiggler/glamour-api/internal/host"
	"github.com/KirkDiggler/glamour-api/internal/orchestrators/glamour"
	"github.com/KirkDiggler/glamour-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/glamour-api/internal/redis"
	"github.com/KirkDiggler/glamour-api/internal/redraw"
	"github.com/KirkDiggler/glamour-api/internal/repositories/bindings"
	"github.com/KirkDiggler/glamour-api/internal/repositories/designs"
	"github.com/KirkDiggler/glamour-api/internal/state"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the Glamour API gRPC server. Settings come from GLAMOUR_* environment
variables; --port overrides GLAMOUR_GRPC_PORT.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GLAMOUR_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, bindingRepo, closeRepo, err := newRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	redrawer, closeRedrawer, err := newRedrawer(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRedrawer()

	guard, err := loadGearGuard(ctx, cfg)
	if err != nil {
		return err
	}

	memHost := host.NewMemory()
	tracker, err := state.NewTracker(&state.TrackerConfig{
		Host:     memHost,
		Settings: cfg,
		Redrawer: redrawer,
		Guard:    guard,

		BoundDesigns: glamour.NewBoundDesignSource(bindingRepo, repo),
	})
	if err != nil {
		return err
	}

	orch, err := glamour.NewOrchestrator(&glamour.Config{
		Host:       memHost,
		Tracker:    tracker,
		DesignRepo:  repo,
		BindingRepo: bindingRepo,
	})
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: orch})
	if err != nil {
		return fmt.Errorf("failed to create state handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterStateServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.StateServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "gRPC server starting",
			"port", cfg.GRPCPort,
			"storage", cfg.Storage,
			"enabled", cfg.StateEnabled,
			"auto_designs", cfg.AutoDesignsEnabled)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newRepositories picks the backend for stored designs and their actor
// bindings. Both share one redis client.
func newRepositories(ctx context.Context, cfg *config.Config) (designs.Repository, bindings.Repository, func(), error) {
	if cfg.Storage != config.StorageRedis {
		slog.InfoContext(ctx, "using in-memory design storage")
		return designs.NewInMemory(&designs.InMemoryConfig{}), bindings.NewInMemory(nil), func() {}, nil
	}

	client, err := redisclient.New(cfg.RedisAddrs, &redisclient.Options{DB: cfg.RedisDB})
	if err != nil {
		return nil, nil, nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
	}

	repo, err := designs.NewRedis(&designs.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}

	bindingRepo, err := bindings.NewRedis(&bindings.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, err
	}

	slog.InfoContext(ctx, "using redis design storage", "addrs", cfg.RedisAddrs)
	return repo, bindingRepo, func() { _ = client.Close() }, nil
}

// newRedrawer publishes redraw requests on NATS when a broker is
// configured and only logs them otherwise
func newRedrawer(ctx context.Context, cfg *config.Config) (state.Redrawer, func(), error) {
	url := cfg.NatsURL
	cleanup := func() {}

	if cfg.NatsEmbedded {
		ns, err := redraw.NewEmbeddedServer(
			redraw.WithPort(cfg.NatsPort),
			redraw.WithStartTimeout(cfg.NatsStartupWait),
		)
		if err != nil {
			return nil, nil, err
		}
		if err := ns.Start(ctx); err != nil {
			ns.Shutdown()
			return nil, nil, err
		}
		url = ns.ClientURL()
		cleanup = ns.Shutdown
	}

	if url == "" {
		slog.InfoContext(ctx, "no nats configured, redraw requests are logged only")
		return redraw.LogNotifier{}, cleanup, nil
	}

	conn, err := redraw.Connect(ctx, url)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	notifier, err := redraw.NewNatsNotifier(&redraw.NatsConfig{
		Conn:          conn,
		SubjectPrefix: cfg.RedrawPrefix,
	})
	if err != nil {
		conn.Close()
		cleanup()
		return nil, nil, err
	}

	shutdown := cleanup
	return notifier, func() {
		_ = conn.Drain()
		shutdown()
	}, nil
}

func loadGearGuard(ctx context.Context, cfg *config.Config) (design.GearGuard, error) {
	if cfg.RestrictedGearFile == "" {
		return nil, nil
	}
	gear, err := design.LoadRestrictedGear(cfg.RestrictedGearFile)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "restricted gear loaded",
		"file", cfg.RestrictedGearFile,
		"rules", len(gear.Rules()))
	return gear, nil
}

// interceptorLogger adapts slog to the middleware logger. Middleware
// levels share slog's numbering.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
