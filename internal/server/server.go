// Package server предоставляет запуск HTTP сервера с перебором портов.
// Если начальный порт занят, сервер пробует следующие порты, пока не
// исчерпает заданное в конфигурации число попыток.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"syscall"

	"github.com/InQaaaaGit/numtowords.git/internal/config"
	"go.uber.org/zap"
)

// ErrNoFreePort возвращается, когда все порты из диапазона заняты
var ErrNoFreePort = errors.New("no free port")

// Starter интерфейс для запуска сервера
type Starter interface {
	Start(ctx context.Context) error
}

// HTTPServer представляет HTTP сервер с общей логикой запуска
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger

	mu    sync.Mutex
	addr  net.Addr
	ready chan struct{}
}

// NewHTTPServer создает новый HTTP сервер
func NewHTTPServer(server *http.Server, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: server,
		config: cfg,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Listen открывает слушающий сокет на первом свободном порту из диапазона
// [Port, Port+PortAttempts). Занятый порт ведет к следующей попытке,
// любая другая ошибка возвращается сразу.
func (s *HTTPServer) Listen() (net.Listener, error) {
	first := s.config.Port
	last := first
	for i := 0; i < s.config.PortAttempts; i++ {
		port := first + i
		if port > 65535 {
			break
		}
		last = port

		addr := s.config.Addr(port)
		ln, err := net.Listen("tcp", addr)
		if err == nil {
			s.setAddr(ln.Addr())
			s.logger.Info("Server listening",
				zap.String("address", ln.Addr().String()),
				zap.Int("port", ln.Addr().(*net.TCPAddr).Port))
			return ln, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("listen on %s: %w", addr, err)
		}
		s.logger.Warn("Port is already in use, trying another port", zap.Int("port", port))
	}
	return nil, fmt.Errorf("%w in range %d-%d", ErrNoFreePort, first, last)
}

// Start слушает первый свободный порт и обслуживает запросы до отмены ctx,
// после чего плавно останавливает сервер.
func (s *HTTPServer) Start(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// Ready закрывается, когда сервер начал слушать порт
func (s *HTTPServer) Ready() <-chan struct{} {
	return s.ready
}

// Addr возвращает фактический адрес сервера или nil до вызова Listen
func (s *HTTPServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *HTTPServer) setAddr(addr net.Addr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addr == nil {
		s.addr = addr
		close(s.ready)
	}
}

// InitLogger инициализирует production логгер с defer функцией для синхронизации
func InitLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "Error syncing logger: %v\n", err)
		}
	}

	return logger, cleanup
}

// InitConfig инициализирует конфигурацию приложения
func InitConfig(logger *zap.Logger) *config.Config {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal("Error loading config", zap.Error(err))
	}
	return cfg
}
