package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openfleet/cabdispatch/internal/pkg/config"
	"github.com/openfleet/cabdispatch/internal/pkg/database"
	"github.com/openfleet/cabdispatch/internal/pkg/graph"
	"github.com/openfleet/cabdispatch/internal/pkg/health"
	"github.com/openfleet/cabdispatch/internal/pkg/logger"
	"github.com/openfleet/cabdispatch/internal/pkg/middleware"
	nsqpkg "github.com/openfleet/cabdispatch/internal/pkg/nsq"
	"github.com/openfleet/cabdispatch/services/dispatch/allocation"
	"github.com/openfleet/cabdispatch/services/dispatch/gateway"
	"github.com/openfleet/cabdispatch/services/dispatch/handler"
	httphandler "github.com/openfleet/cabdispatch/services/dispatch/handler/http"
	nsqhandler "github.com/openfleet/cabdispatch/services/dispatch/handler/nsq"
	"github.com/openfleet/cabdispatch/services/dispatch/repository"
	"github.com/openfleet/cabdispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// Load the road graph once at startup; it is immutable afterwards.
	roadGraph, err := graph.LoadFile(configs.Dispatch.GraphPath)
	if err != nil {
		log.Fatalf("Failed to load road graph from %s: %v", configs.Dispatch.GraphPath, err)
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		log.Fatalf("Failed to connect to NSQ: %v", err)
	}
	defer producer.Stop()

	// Initialize repositories
	dispatchRepo := repository.NewDispatchRepository(configs, postgresClient.GetDB())
	cabCache := repository.NewCabCache(redisClient, time.Duration(configs.Dispatch.LocationCacheTTL)*time.Second)

	// Initialize gateway
	dispatchGW := gateway.NewDispatchGW(producer)

	// Initialize allocation strategy and usecase
	strategy := allocation.NewGraphAllocation(
		roadGraph,
		configs.Dispatch.AverageSpeedMps,
		time.Duration(configs.Dispatch.StalenessWindow)*time.Second,
	)
	dispatchUC := usecase.NewDispatchUC(configs, roadGraph, strategy, dispatchRepo, cabCache, dispatchGW)

	// Initialize handlers
	tripHandler := httphandler.NewTripHandler(dispatchUC)
	cabHandler := httphandler.NewCabHandler(dispatchUC)
	h := handler.NewHandler(tripHandler, cabHandler, configs)

	// Start the auto-completion consumer when enabled
	if configs.Dispatch.AutoComplete {
		autoComplete, err := nsqhandler.NewAutoCompleteHandler(dispatchUC, configs)
		if err != nil {
			log.Fatalf("Failed to start auto-complete consumer: %v", err)
		}
		defer autoComplete.Stop()
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(appLogger.Logger))
	e.Use(logger.EchoMiddleware(appLogger))

	// Register health endpoints
	health.RegisterEndpoints(e, appName, map[string]health.Checker{
		"postgres": health.NewPostgresChecker(postgresClient),
		"redis":    health.NewRedisChecker(redisClient),
		"nsq":      health.NewNSQChecker(producer),
	})

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		appLogger.WithField("addr", addr).Infof("Starting %s", appName)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start %s: %v", appName, err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Server shutdown failed")
	}
	appLogger.Infof("%s stopped", appName)
}
