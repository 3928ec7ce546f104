package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/KirkDiggler/rpg-bestiary/internal/config"
)

var (
	grpcPort    int
	redisAddrs  []string
	catalogPath string
	logLevel    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the bestiary gRPC server. Settings come from BESTIARY_* environment
variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringSliceVar(&redisAddrs, "redis", nil, "Redis addresses, empty for the in-memory store")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog to seed instead of the bundled one")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
}

// applyFlags lets explicitly set flags win over the environment
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("redis") {
		cfg.RedisAddrs = redisAddrs
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg.Validate()
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger, appDeps{})
	if err != nil {
		return err
	}
	defer a.close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return serve(ctx, a, lis, cfg.ShutdownGrace)
}

// serve runs the server until ctx is cancelled, then drains in-flight calls
// for at most grace before forcing a stop
func serve(ctx context.Context, a *app, lis net.Listener, grace time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.InfoContext(gctx, "gRPC server starting", "addr", lis.Addr().String())
		if err := a.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server")
		a.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)

		stopped := make(chan struct{})
		go func() {
			a.server.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(grace):
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			a.server.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}
