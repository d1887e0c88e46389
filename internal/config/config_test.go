package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"SERVER_HOST", "PORT", "PORT_ATTEMPTS", "BATCH_SIZE", "BATCH_WORKERS",
	"DEFAULT_LANGUAGE", "DEFAULT_CURRENCY", "CORS_ALLOWED_ORIGINS", "ENABLE_GZIP", "SHUTDOWN_TIMEOUT",
}

// resetConfigEnv очищает переменные окружения и флаги, восстанавливая их после теста
func resetConfigEnv(t *testing.T, args ...string) {
	t.Helper()
	for _, name := range configEnv {
		if value, ok := os.LookupEnv(name); ok {
			t.Cleanup(func() { os.Setenv(name, value) })
		} else {
			t.Cleanup(func() { os.Unsetenv(name) })
		}
		os.Unsetenv(name)
	}

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"cmd"}, args...)
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

func TestNewConfigDefaults(t *testing.T) {
	resetConfigEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, 10, cfg.PortAttempts)
	assert.Equal(t, 1000, cfg.BatchSize)
	assert.Equal(t, 4, cfg.BatchWorkers)
	assert.Equal(t, "en-us", cfg.DefaultLanguage)
	assert.Equal(t, "usd", cfg.DefaultCurrency)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.True(t, cfg.EnableGzip)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestConfigPriority(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		args        []string
		wantPort    int
		wantBatch   int
		wantOrigins []string
	}{
		{
			name:        "Default values",
			wantPort:    8000,
			wantBatch:   1000,
			wantOrigins: DefaultAllowedOrigins,
		},
		{
			name:        "Environment variables override defaults",
			env:         map[string]string{"PORT": "9090", "BATCH_SIZE": "500", "CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example"},
			wantPort:    9090,
			wantBatch:   500,
			wantOrigins: []string{"https://a.example", "https://b.example"},
		},
		{
			name:        "Command line flags override defaults",
			args:        []string{"-p", "7070", "-batch-size", "250", "-origins", "https://c.example"},
			wantPort:    7070,
			wantBatch:   250,
			wantOrigins: []string{"https://c.example"},
		},
		{
			name:        "Environment variables override command line flags",
			env:         map[string]string{"PORT": "9090", "BATCH_SIZE": "500"},
			args:        []string{"-p", "7070", "-batch-size", "250"},
			wantPort:    9090,
			wantBatch:   500,
			wantOrigins: DefaultAllowedOrigins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConfigEnv(t, tt.args...)
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			assert.Equal(t, tt.wantPort, cfg.Port)
			assert.Equal(t, tt.wantBatch, cfg.BatchSize)
			assert.Equal(t, tt.wantOrigins, cfg.AllowedOrigins)
		})
	}
}

func TestNewConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "not a number", env: map[string]string{"PORT": "abc"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "zero batch size", env: map[string]string{"BATCH_SIZE": "0"}},
		{name: "zero workers", env: map[string]string{"BATCH_WORKERS": "0"}},
		{name: "zero attempts", env: map[string]string{"PORT_ATTEMPTS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetConfigEnv(t)
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigAddr(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8000", cfg.Addr(8000))

	cfg.Host = "127.0.0.1"
	assert.Equal(t, "127.0.0.1:8001", cfg.Addr(8001))
}
