package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/InQaaaaGit/numtowords.git/internal/app"
	"github.com/InQaaaaGit/numtowords.git/internal/buildinfo"
	"github.com/InQaaaaGit/numtowords.git/internal/server"
	"go.uber.org/zap"
)

// Заполняются при сборке: -ldflags "-X main.buildVersion=v1.0.0 ..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// Инициализация логгера
	logger, cleanup := server.InitLogger()
	defer cleanup()

	logger.Info("Starting numtowords", buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Fields()...)

	// Инициализация конфигурации
	cfg := server.InitConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск сервера
	application := app.NewApp(cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
