// Package app содержит основную структуру приложения и логику инициализации.
// Предоставляет точку входа для запуска HTTP сервера с настроенными маршрутами и middleware.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/InQaaaaGit/numtowords.git/internal/config"
	"github.com/InQaaaaGit/numtowords.git/internal/handler"
	"github.com/InQaaaaGit/numtowords.git/internal/middleware"
	"github.com/InQaaaaGit/numtowords.git/internal/server"
	"github.com/InQaaaaGit/numtowords.git/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет сервис преобразования чисел в слова.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер для записи событий приложения
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает приложение: сервисный слой, обработчики и маршруты.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	svc := service.NewConversionService(cfg, logger)

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(svc, cfg, logger),
	}
	a.setupRoutes()
	return a
}

// setupRoutes регистрирует middleware и маршруты.
// Порядок middleware: ID запроса, логирование, CORS, сжатие, перехват паник.
// Перехват паник стоит внутри сжатия: ответ 500 должен пройти через
// gzip-поток до того, как он будет закрыт.
func (a *App) setupRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.CORSMiddleware(a.config.AllowedOrigins))
	if a.config.EnableGzip {
		a.router.Use(middleware.GzipMiddleware)
	}
	a.router.Use(middleware.RecoverMiddleware(a.logger))

	a.router.Get("/convert", a.handler.HandleConvert)
	a.router.Get("/numbertocurrency", a.handler.HandleNumberToCurrency)
	a.router.Get("/numbertotext", a.handler.HandleNumberToText)
	a.router.Get("/ping", a.handler.HandlePing)
}

// Router возвращает HTTP обработчик приложения.
func (a *App) Router() http.Handler {
	return a.router
}

// GetServer создает HTTP сервер с таймаутами.
// Адрес не задается: порт выбирает server.HTTPServer.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Run запускает HTTP сервер и блокируется до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	return a.NewServer().Start(ctx)
}

// NewServer создает server.HTTPServer для роутера приложения.
func (a *App) NewServer() *server.HTTPServer {
	return server.NewHTTPServer(a.GetServer(), a.config, a.logger)
}
