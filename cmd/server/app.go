package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/rpg-bestiary/internal/catalog"
	"github.com/KirkDiggler/rpg-bestiary/internal/config"
	"github.com/KirkDiggler/rpg-bestiary/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-bestiary/internal/handlers/bestiary/v1alpha1"
	"github.com/KirkDiggler/rpg-bestiary/internal/orchestrators/bestiary"
	"github.com/KirkDiggler/rpg-bestiary/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-bestiary/internal/redis"
	"github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters"
)

// app is a fully wired server that has not started listening yet
type app struct {
	server *grpc.Server
	health *health.Server
	close  func()
}

// appDeps lets tests swap the pieces that touch the outside world
type appDeps struct {
	roller      dice.Roller
	clock       clock.Clock
	redisClient redis.Client
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, deps appDeps) (*app, error) {
	if deps.roller == nil {
		deps.roller = dice.DefaultRoller
	}
	if deps.clock == nil {
		deps.clock = clock.New()
	}

	repo, closeRepo, err := newRepository(ctx, cfg, deps)
	if err != nil {
		return nil, err
	}

	creatures, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		closeRepo()
		return nil, err
	}
	if _, err := catalog.Seed(ctx, repo, creatures); err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to seed catalog")
	}

	engine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: deps.roller,
	})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create engine")
	}

	service, err := bestiary.New(&bestiary.Config{
		MonsterRepo: repo,
		Engine:      engine,
	})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create bestiary service")
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BestiaryService: service,
	})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create bestiary handler")
	}

	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.ErrorContext(ctx, "recovered from panic", "panic", p)
			return errors.ToGRPCError(errors.Internal("internal error"))
		}),
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	v1alpha1.RegisterBestiaryServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return &app{server: srv, health: healthServer, close: closeRepo}, nil
}

// newRepository picks Redis when addresses are configured and the
// in-memory store otherwise
func newRepository(ctx context.Context, cfg *config.Config, deps appDeps) (monsters.Repository, func(), error) {
	if !cfg.UsesRedis() && deps.redisClient == nil {
		slog.InfoContext(ctx, "using in-memory monster store")
		return monsters.NewInMemory(deps.clock), func() {}, nil
	}

	client := deps.redisClient
	if client == nil {
		var err error
		client, err = redis.Connect(ctx, cfg.RedisAddrs, &redis.Options{
			PoolSize:    cfg.RedisPoolSize,
			DialTimeout: cfg.RedisTimeout,
			UseTLS:      cfg.RedisTLS,
		})
		if err != nil {
			return nil, nil, err
		}
		slog.InfoContext(ctx, "connected to redis", "addrs", cfg.RedisAddrs)
	}

	repo, err := monsters.NewRedis(&monsters.RedisConfig{
		Client: client,
		Clock:  deps.clock,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return repo, func() { _ = client.Close() }, nil
}

func loadCatalog(path string) ([]*monster.Creature, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
