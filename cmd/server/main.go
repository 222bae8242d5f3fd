package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/machinery-catalog/internal/config"
	"github.com/light-bringer/machinery-catalog/internal/pkg/logger"
	"github.com/light-bringer/machinery-catalog/internal/services"
	"github.com/light-bringer/machinery-catalog/internal/transport/grpc/catalogsvc"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration (.env first, then the environment)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, flush, err := logger.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer flush()

	zlog.Info("starting machinery catalog",
		zap.String("environment", string(cfg.Environment)),
		zap.String("store", cfg.Store.Driver),
		zap.String("media", cfg.Media.Driver),
		zap.String("http_addr", cfg.HTTP.Addr),
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	errCh := make(chan error, 2)

	// 3. Start the gRPC catalog service
	var grpcServer *grpc.Server
	if cfg.GRPC.Enable {
		grpcServer = grpc.NewServer(catalogsvc.ServerOptions(zlog.Named("grpc"))...)
		catalogsvc.Register(grpcServer, serviceOpts.CatalogHandler)

		healthServer := health.NewServer()
		healthServer.SetServingStatus(catalogsvc.ServiceName, healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(grpcServer, healthServer)

		// Reflection for grpcurl and debugging
		reflection.Register(grpcServer)

		lis, err := net.Listen("tcp", cfg.GRPC.Addr)
		if err != nil {
			return fmt.Errorf("failed to listen on gRPC addr: %w", err)
		}
		go func() {
			zlog.Info("gRPC server listening", zap.String("addr", cfg.GRPC.Addr))
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("gRPC server: %w", err)
			}
		}()
	}

	// 4. Start the HTTP API
	go func() {
		zlog.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := serviceOpts.HTTPServer.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// 5. Wait for a signal or a server failure
	select {
	case <-ctx.Done():
		zlog.Info("shutting down gracefully")
	case err = <-errCh:
		zlog.Error("server failed, shutting down", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if shutdownErr := serviceOpts.HTTPServer.Shutdown(shutdownCtx); shutdownErr != nil {
		zlog.Warn("HTTP server shutdown error", zap.Error(shutdownErr))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	return err
}
