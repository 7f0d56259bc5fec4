package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/markethub/admin-decision-service/internal/config"
	adminHandler "github.com/markethub/admin-decision-service/internal/handlers/admin"
	restHandler "github.com/markethub/admin-decision-service/internal/handlers/rest"
	"github.com/markethub/admin-decision-service/internal/services/decision"
	"github.com/markethub/admin-decision-service/pkg/middleware"
	"github.com/markethub/admin-decision-service/pkg/observability"
)

func main() {
	// Initialize logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting admin decision service",
		zap.String("version", "0.1.0"),
	)

	// Load configuration from environment
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Load the decision policy: built-in defaults, optionally overridden
	// from a YAML file
	policy, policySource, err := loadPolicy(cfg)
	if err != nil {
		logger.Fatal("Failed to load policy", zap.Error(err))
	}
	logger.Info("Decision policy loaded", zap.String("source", policySource))

	engine := decision.NewEngine(&policy)
	decisions := adminHandler.NewHandler(engine, logger)

	// Initialize gRPC server with interceptors
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			loggingInterceptor(logger),
			recoveryInterceptor(logger),
			observability.UnaryServerInterceptor(),
		),
	)

	adminHandler.RegisterAdminDecisionServiceServer(grpcServer, decisions)

	// Register reflection service (for tools like grpcurl)
	reflection.Register(grpcServer)

	// Setup HTTP server for the JSON API
	httpMux := http.NewServeMux()
	restHandler.NewHandler(decisions, logger).Register(httpMux)

	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)
	defer rateLimiter.Shutdown()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: rateLimiter.Middleware(httpMux),
	}

	// Start metrics server with health checks
	healthChecker := observability.NewHealthChecker(policySource)
	metricsServer := observability.StartMetricsServer(fmt.Sprintf("%d", cfg.Server.MetricsPort), healthChecker)
	logger.Info("Metrics server listening", zap.Int("port", cfg.Server.MetricsPort))

	// Start gRPC server
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err != nil {
		logger.Fatal("Failed to listen", zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening",
			zap.String("address", listener.Addr().String()),
			zap.Int("port", cfg.Server.Port),
		)
		if err := grpcServer.Serve(listener); err != nil {
			logger.Fatal("Failed to serve", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("HTTP server listening",
			zap.Int("port", cfg.Server.HTTPPort),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to serve HTTP", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down servers...")

	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	if err := observability.ShutdownMetricsServer(metricsServer); err != nil {
		logger.Error("Metrics server shutdown error", zap.Error(err))
	}

	logger.Info("Servers stopped")
}

// loadPolicy resolves the active decision policy and where it came from.
func loadPolicy(cfg *config.Config) (decision.Policy, string, error) {
	if cfg.Policy.File == "" {
		return decision.DefaultPolicy(), "defaults", nil
	}
	policy, err := decision.LoadPolicyFile(cfg.Policy.File)
	if err != nil {
		return decision.Policy{}, "", err
	}
	return policy, cfg.Policy.File, nil
}

// initLogger initializes the logger
func initLogger() *zap.Logger {
	env := getEnv("ENVIRONMENT", "development")

	if env == "production" {
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		logger, _ := zapCfg.Build()
		return logger
	}

	logger, _ := zap.NewDevelopment()
	return logger
}

// Interceptors

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		if err != nil {
			logger.Error("gRPC request failed",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		} else {
			logger.Info("gRPC request",
				zap.String("method", info.FullMethod),
				zap.Duration("duration", time.Since(start)),
			)
		}

		return resp, err
	}
}

func recoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered in gRPC handler",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				err = fmt.Errorf("internal server error")
			}
		}()

		return handler(ctx, req)
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
