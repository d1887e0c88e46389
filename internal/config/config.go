package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// DefaultAllowedOrigins - источники, которым разрешены кросс-доменные запросы по умолчанию.
var DefaultAllowedOrigins = []string{
	"https://localhost:44333",
	"https://localhost:3000",
	"https://www.numbertowordsexcel.com",
}

// Config хранит конфигурацию приложения.
type Config struct {
	Host            string        `env:"SERVER_HOST"`                           // Хост для запуска HTTP-сервера
	Port            int           `env:"PORT"`                                  // Начальный порт
	PortAttempts    int           `env:"PORT_ATTEMPTS"`                         // Сколько портов перебрать, если порт занят
	BatchSize       int           `env:"BATCH_SIZE"`                            // Размер чанка
	BatchWorkers    int           `env:"BATCH_WORKERS"`                         // Число параллельно обрабатываемых чанков
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE"`                      // Язык /numbertotext по умолчанию
	DefaultCurrency string        `env:"DEFAULT_CURRENCY"`                      // Валюта /numbertocurrency по умолчанию
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","` // Разрешенные CORS-источники
	EnableGzip      bool          `env:"ENABLE_GZIP"`                           // Сжатие ответов
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`                      // Таймаут плавной остановки
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
func NewConfig() (*Config, error) {
	cfg := Default()

	// 1. Флаги командной строки
	flag.StringVar(&cfg.Host, "host", cfg.Host, "Хост HTTP-сервера (env: SERVER_HOST)")
	flag.IntVar(&cfg.Port, "p", cfg.Port, "Начальный порт HTTP-сервера (env: PORT)")
	flag.IntVar(&cfg.PortAttempts, "port-attempts", cfg.PortAttempts, "Сколько портов перебрать (env: PORT_ATTEMPTS)")
	flag.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Размер чанка (env: BATCH_SIZE)")
	flag.IntVar(&cfg.BatchWorkers, "batch-workers", cfg.BatchWorkers, "Число параллельных чанков (env: BATCH_WORKERS)")
	origins := flag.String("origins", strings.Join(cfg.AllowedOrigins, ","), "Разрешенные CORS-источники через запятую (env: CORS_ALLOWED_ORIGINS)")

	flag.Parse()
	cfg.AllowedOrigins = splitList(*origins)

	// 2. Переменные окружения (имеют наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	return &Config{
		Host:            "",
		Port:            8000,
		PortAttempts:    10,
		BatchSize:       1000,
		BatchWorkers:    4,
		DefaultLanguage: "en-us",
		DefaultCurrency: "usd",
		AllowedOrigins:  append([]string(nil), DefaultAllowedOrigins...),
		EnableGzip:      true,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Validate проверяет значения, которые нельзя исправить молча.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.PortAttempts < 1 {
		return fmt.Errorf("port attempts must be positive, got %d", c.PortAttempts)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("batch workers must be positive, got %d", c.BatchWorkers)
	}
	return nil
}

// Addr возвращает адрес для порта port на сконфигурированном хосте.
func (c *Config) Addr(port int) string {
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
