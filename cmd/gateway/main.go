package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fiuber/gateway/internal/pkg/config"
	"github.com/fiuber/gateway/internal/pkg/health"
	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/middleware"
	nsqpkg "github.com/fiuber/gateway/internal/pkg/nsq"
	"github.com/fiuber/gateway/internal/pkg/server"
	"github.com/fiuber/gateway/services/gateway/gateway/http"
	"github.com/fiuber/gateway/services/gateway/gateway/queue"
	"github.com/fiuber/gateway/services/gateway/handler"
	httpHandler "github.com/fiuber/gateway/services/gateway/handler/http"
	"github.com/fiuber/gateway/services/gateway/usecase"
)

func main() {
	appName := "fiuber-gateway"

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/gateway.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Metrics queue producer, shared by all requests
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})

	// Backend service clients
	timeout := time.Duration(configs.Client.TimeoutSeconds) * time.Second
	usersGW := gateway_http.NewUsersClient(configs.Services.UsersURL, timeout)
	voyageGW := gateway_http.NewVoyageClient(configs.Services.VoyageURL, timeout)
	paymentsGW := gateway_http.NewPaymentsClient(configs.Services.PaymentsURL, timeout)
	pricingGW := gateway_http.NewPricingClient(configs.Services.PricingURL, timeout)
	metricsGW := gateway_http.NewMetricsClient(configs.Services.MetricsURL, timeout)
	metricsPub := gateway_queue.NewMetricsEmitter(producer, configs.NSQ.MetricsTopic)

	// Usecases
	authUC := usecase.NewAuthUC(usersGW, metricsPub)
	userUC := usecase.NewUserUC(authUC, usersGW)
	adminUC := usecase.NewAdminUC(authUC, usersGW, voyageGW, pricingGW, metricsGW)
	voyageUC := usecase.NewVoyageUC(authUC, usersGW, voyageGW, paymentsGW, metricsPub)
	paymentsUC := usecase.NewPaymentsUC(authUC, paymentsGW)

	// HTTP handlers
	handlers := handler.NewHandler(
		httpHandler.NewAuthHandler(authUC),
		httpHandler.NewUserHandler(userUC),
		httpHandler.NewAdminHandler(adminUC),
		httpHandler.NewVoyageHandler(voyageUC),
		httpHandler.NewPaymentsHandler(paymentsUC),
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = server.NewRequestValidator()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, health.NewNSQHealthChecker(producer))
	handlers.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger,
		configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second,
	)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
