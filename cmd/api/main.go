package main

import (
	"context"
	"log"
	"os/signal"
	_ "phone_repair/docs"
	"phone_repair/internal/adapter/http/routes"
	"phone_repair/internal/infrastructure/config"
	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/infrastructure/logger"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Phone Repair API
// @version         1.0
// @description     Record keeping for a phone repair shop: customers, quotes, cash ledger and daily revenue.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("failed to connect to database", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := db.InitializeTables(ctx); err != nil {
		appLogger.Fatal("failed to initialize tables", zap.Error(err))
	}

	deps, err := routes.NewDependencies(ctx, cfg, db, appLogger)
	if err != nil {
		appLogger.Fatal("failed to wire dependencies", zap.Error(err))
	}

	if err := routes.Run(ctx, cfg.ServerPort, deps); err != nil {
		appLogger.Error("server stopped", zap.Error(err))
	}
}
