package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/cache"
	"github.com/oggyb/muzz-dating/internal/config"
	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/logger"
	"github.com/oggyb/muzz-dating/internal/repository"
	"github.com/oggyb/muzz-dating/internal/server"
	"github.com/oggyb/muzz-dating/internal/service"
	gateway "github.com/oggyb/muzz-dating/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB (optional)
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}
	if database == nil {
		log.Warn("[Database] DATABASE_URL not set, running without persistence")
	}

	// Init Redis (optional)
	redisCache := cache.NewRedisCache(cfg)
	if redisCache.Enabled() {
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Warn("redis unreachable, cache disabled", "err", err)
			_ = redisCache.Close()
			redisCache = nil
		}
	} else {
		log.Warn("REDIS_ADDR not set, cache disabled")
	}
	defer redisCache.Close()

	sessions := auth.NewSessionManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.SessionTTL)
	users := repository.NewUserRepository(database, cfg.App.OwnerOpenID)
	authn := auth.NewAuthenticator(sessions, users, redisCache)

	// Inject dependencies into app context
	appCtx := app.New(cfg, database, redisCache, authn, log)
	svcs := service.New(appCtx)

	// Seeding truncates every table, so it only runs on explicit request.
	if cfg.App.SeedOnBoot && database != nil {
		log.Warn("[Database] SEED_ON_BOOT set, replacing all rows with demo data")
		if _, err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	grpcServer := server.NewGRPCServer(appCtx, svcs.Registrars()...)
	httpGateway, err := gateway.NewGateway(appCtx, svcs)
	if err != nil {
		log.Error("failed to init http gateway", "err", err)
		_ = redisCache.Close()
		os.Exit(1)
	}

	errCh := make(chan error, 2)
	go func() {
		if err := grpcServer.Start(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
		}
	}()
	go func() {
		if err := httpGateway.Start(); err != nil {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		log.Error("server failed", "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpGateway.Shutdown(ctx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
	grpcServer.Stop()
	log.Info("bye")
}
