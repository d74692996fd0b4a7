package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"products_service/config"
	"products_service/internal/delivery"
	productgrpc "products_service/internal/delivery/grpc"
	"products_service/internal/repository"
	"products_service/internal/usecase"
	"products_service/pkg/db"
	"products_service/pkg/logging"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := logging.New("info", "json", "")

	cfg := config.LoadConfig(logger)
	logging.Configure(logger, cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	logger.Info("Starting Products Service...")

	gin.SetMode(gin.ReleaseMode)

	// --- Database Connection ---
	database, err := db.Connect(db.Options{
		DatabaseURL:     cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	productRepo := repository.NewPostgresProductRepository(database, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	productGrpcHandler := productgrpc.NewProductHandler(productUseCase, logger)
	logger.Info("Handlers initialized.")

	router := delivery.NewRouter(productHandler, pingCheck(database), logger)
	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on port %s: %v", cfg.GrpcPort, err)
	}
	grpcServer := productgrpc.NewServer(productGrpcHandler, logger)

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to serve HTTP: %v", err)
		}
		logger.Info("HTTP server stopped serving.")
	}()

	go func() {
		logger.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Fatalf("Failed to serve gRPC: %v", err)
		}
		logger.Info("gRPC server stopped serving.")
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.WithField("signal", sig.String()).Warn("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server shutdown: %v", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Products Service shut down gracefully.")
}

func pingCheck(database *gorm.DB) delivery.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
